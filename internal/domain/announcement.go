package domain

// Announcement represents a top-level board post
type Announcement struct {
	BaseModel
	Author   string    `gorm:"type:varchar(100);not null" json:"author"`
	Title    string    `gorm:"type:varchar(100);not null" json:"title"`
	Text     string    `gorm:"type:varchar(1000);not null" json:"text"`
	Comments []Comment `gorm:"foreignKey:AnnouncementID;constraint:OnDelete:CASCADE" json:"comments,omitempty"`
}

// TableName specifies the table name for Announcement
func (Announcement) TableName() string {
	return "announcements"
}
