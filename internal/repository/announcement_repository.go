package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"bboard-api/internal/domain"
)

// AnnouncementRepository defines the interface for announcement data access
type AnnouncementRepository interface {
	Create(ctx context.Context, announcement *domain.Announcement) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	FindAll(ctx context.Context) ([]*domain.Announcement, error)
	Exists(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
	Count(ctx context.Context) (int64, error)
}

// announcementRepositoryImpl is the GORM implementation of AnnouncementRepository
type announcementRepositoryImpl struct {
	db *gorm.DB
}

// NewAnnouncementRepository creates a new instance of AnnouncementRepository
func NewAnnouncementRepository(db *gorm.DB) AnnouncementRepository {
	return &announcementRepositoryImpl{db: db}
}

// Create creates a new announcement
func (r *announcementRepositoryImpl) Create(ctx context.Context, announcement *domain.Announcement) error {
	if err := r.db.WithContext(ctx).Create(announcement).Error; err != nil {
		return err
	}
	return nil
}

// FindByID finds an announcement by its ID with comments, newest first
func (r *announcementRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	var announcement domain.Announcement
	if err := r.db.WithContext(ctx).
		Preload("Comments", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at DESC")
		}).
		First(&announcement, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &announcement, nil
}

// FindAll returns all announcements, newest first
func (r *announcementRepositoryImpl) FindAll(ctx context.Context) ([]*domain.Announcement, error) {
	var announcements []*domain.Announcement
	if err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&announcements).Error; err != nil {
		return nil, err
	}
	return announcements, nil
}

// Exists reports whether an announcement with the given ID currently exists
func (r *announcementRepositoryImpl) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Announcement{}).
		Where("id = ?", id).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// Delete removes an announcement and its comments in one transaction.
// The cascade is explicit so the contract does not depend on the
// driver honoring FK constraints
func (r *announcementRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("announcement_id = ?", id).Delete(&domain.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("id = ?", id).Delete(&domain.Announcement{}).Error; err != nil {
			return err
		}
		return nil
	})
}

// Count returns the total number of announcements
func (r *announcementRepositoryImpl) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&domain.Announcement{}).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
