package domain

import "github.com/google/uuid"

// Comment represents a reply attached to exactly one announcement
type Comment struct {
	BaseModel
	AnnouncementID uuid.UUID    `gorm:"type:uuid;not null;index:idx_comments_announcement_id" json:"announcement_id"`
	Author         string       `gorm:"type:varchar(100);not null" json:"author"`
	Text           string       `gorm:"type:varchar(200);not null" json:"text"`
	Announcement   Announcement `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"announcement,omitempty"`
}

// TableName specifies the table name for Comment
func (Comment) TableName() string {
	return "comments"
}
