package service

import (
	"context"

	"github.com/google/uuid"

	"bboard-api/internal/domain"
)

// MockAnnouncementRepository is a mock implementation of AnnouncementRepository
type MockAnnouncementRepository struct {
	CreateFunc   func(ctx context.Context, announcement *domain.Announcement) error
	FindByIDFunc func(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	FindAllFunc  func(ctx context.Context) ([]*domain.Announcement, error)
	ExistsFunc   func(ctx context.Context, id uuid.UUID) (bool, error)
	DeleteFunc   func(ctx context.Context, id uuid.UUID) error
	CountFunc    func(ctx context.Context) (int64, error)
}

func (m *MockAnnouncementRepository) Create(ctx context.Context, announcement *domain.Announcement) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, announcement)
	}
	return nil
}

func (m *MockAnnouncementRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *MockAnnouncementRepository) FindAll(ctx context.Context) ([]*domain.Announcement, error) {
	if m.FindAllFunc != nil {
		return m.FindAllFunc(ctx)
	}
	return nil, nil
}

func (m *MockAnnouncementRepository) Exists(ctx context.Context, id uuid.UUID) (bool, error) {
	if m.ExistsFunc != nil {
		return m.ExistsFunc(ctx, id)
	}
	return true, nil
}

func (m *MockAnnouncementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, id)
	}
	return nil
}

func (m *MockAnnouncementRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}

// MockCommentRepository is a mock implementation of CommentRepository
type MockCommentRepository struct {
	CreateFunc               func(ctx context.Context, comment *domain.Comment) error
	FindByAnnouncementIDFunc func(ctx context.Context, announcementID uuid.UUID) ([]*domain.Comment, error)
	CountFunc                func(ctx context.Context) (int64, error)
}

func (m *MockCommentRepository) Create(ctx context.Context, comment *domain.Comment) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, comment)
	}
	return nil
}

func (m *MockCommentRepository) FindByAnnouncementID(ctx context.Context, announcementID uuid.UUID) ([]*domain.Comment, error) {
	if m.FindByAnnouncementIDFunc != nil {
		return m.FindByAnnouncementIDFunc(ctx, announcementID)
	}
	return nil, nil
}

func (m *MockCommentRepository) Count(ctx context.Context) (int64, error) {
	if m.CountFunc != nil {
		return m.CountFunc(ctx)
	}
	return 0, nil
}
