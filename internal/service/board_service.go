package service

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"bboard-api/internal/domain"
	"bboard-api/internal/metrics"
	"bboard-api/internal/repository"
	"bboard-api/internal/response"
	"bboard-api/internal/validation"
)

// CreateAnnouncementRequest carries the raw submitted announcement fields
type CreateAnnouncementRequest struct {
	Author string
	Title  string
	Text   string
}

// AddCommentRequest carries the raw submitted comment fields
type AddCommentRequest struct {
	Author string
	Text   string
}

// BoardService defines the interface for bulletin board business logic
type BoardService interface {
	ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error)
	CreateAnnouncement(ctx context.Context, req *CreateAnnouncementRequest) (*domain.Announcement, error)
	GetAnnouncement(ctx context.Context, id uuid.UUID) (*domain.Announcement, error)
	AddComment(ctx context.Context, announcementID uuid.UUID, req *AddCommentRequest) (*domain.Comment, error)
	DeleteAnnouncement(ctx context.Context, id uuid.UUID) error
}

// boardServiceImpl is the implementation of BoardService
type boardServiceImpl struct {
	announcementRepo repository.AnnouncementRepository
	commentRepo      repository.CommentRepository
	metrics          *metrics.Metrics
	logger           *zap.Logger
}

// NewBoardService creates a new instance of BoardService
func NewBoardService(
	announcementRepo repository.AnnouncementRepository,
	commentRepo repository.CommentRepository,
	m *metrics.Metrics,
	logger *zap.Logger,
) BoardService {
	return &boardServiceImpl{
		announcementRepo: announcementRepo,
		commentRepo:      commentRepo,
		metrics:          m,
		logger:           logger,
	}
}

// ListAnnouncements returns all announcements, newest first
func (s *boardServiceImpl) ListAnnouncements(ctx context.Context) ([]*domain.Announcement, error) {
	announcements, err := s.announcementRepo.FindAll(ctx)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch announcements", err.Error())
	}
	return announcements, nil
}

// CreateAnnouncement validates the submitted fields and persists a new
// announcement. Rejected submissions cause no state change
func (s *boardServiceImpl) CreateAnnouncement(ctx context.Context, req *CreateAnnouncementRequest) (*domain.Announcement, error) {
	fields, err := validation.ValidateAnnouncement(req.Author, req.Title, req.Text)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementValidationRejected()
		}
		return nil, response.NewAppError(response.ErrCodeValidation, err.Error(), "")
	}

	announcement := &domain.Announcement{
		Author: fields.Author,
		Title:  fields.Title,
		Text:   fields.Text,
	}

	if err := s.announcementRepo.Create(ctx, announcement); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create announcement", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementAnnouncementCreated()
	}

	s.logger.Info("Announcement created",
		zap.String("announcement_id", announcement.ID.String()),
		zap.String("author", announcement.Author),
	)

	return announcement, nil
}

// GetAnnouncement retrieves an announcement by ID with its comments
// ordered newest first
func (s *boardServiceImpl) GetAnnouncement(ctx context.Context, id uuid.UUID) (*domain.Announcement, error) {
	announcement, err := s.announcementRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, response.NewAppError(response.ErrCodeNotFound, "Announcement not found", "")
		}
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to fetch announcement", err.Error())
	}
	return announcement, nil
}

// AddComment validates the submitted fields and persists a new comment
// linked to the announcement. A comment on a nonexistent announcement
// is always rejected, surfaced the same way as a field rejection
func (s *boardServiceImpl) AddComment(ctx context.Context, announcementID uuid.UUID, req *AddCommentRequest) (*domain.Comment, error) {
	exists, err := s.announcementRepo.Exists(ctx, announcementID)
	if err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to verify announcement", err.Error())
	}
	if !exists {
		return nil, response.NewAppError(response.ErrCodeValidation, "Announcement no longer exists", "")
	}

	fields, err := validation.ValidateComment(req.Author, req.Text)
	if err != nil {
		if s.metrics != nil {
			s.metrics.IncrementValidationRejected()
		}
		return nil, response.NewAppError(response.ErrCodeValidation, err.Error(), "")
	}

	comment := &domain.Comment{
		AnnouncementID: announcementID,
		Author:         fields.Author,
		Text:           fields.Text,
	}

	if err := s.commentRepo.Create(ctx, comment); err != nil {
		return nil, response.NewAppError(response.ErrCodeInternal, "Failed to create comment", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementCommentCreated()
	}

	s.logger.Info("Comment created",
		zap.String("comment_id", comment.ID.String()),
		zap.String("announcement_id", announcementID.String()),
	)

	return comment, nil
}

// DeleteAnnouncement removes an announcement and its comments. Deleting
// an absent id is a no-op, never an error
func (s *boardServiceImpl) DeleteAnnouncement(ctx context.Context, id uuid.UUID) error {
	exists, err := s.announcementRepo.Exists(ctx, id)
	if err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to verify announcement", err.Error())
	}
	if !exists {
		return nil
	}

	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		return response.NewAppError(response.ErrCodeInternal, "Failed to delete announcement", err.Error())
	}

	if s.metrics != nil {
		s.metrics.IncrementAnnouncementDeleted()
	}

	s.logger.Info("Announcement deleted", zap.String("announcement_id", id.String()))
	return nil
}
