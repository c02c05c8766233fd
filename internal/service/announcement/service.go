package announcement

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/google/uuid"
	"github.com/hadirhq/hadir-backend-go/internal/domain/announcement"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/clock"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/database"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/timeutil"
	"github.com/hadirhq/hadir-backend-go/internal/repository/postgresql"
)

type ServiceImpl struct {
	announcementRepo announcement.AnnouncementRepository
	db               database.TxBeginner
	clock            clock.Clock
}

func NewAnnouncementService(announcementRepo announcement.AnnouncementRepository, db database.TxBeginner, clk clock.Clock) announcement.Service {
	return &ServiceImpl{
		announcementRepo: announcementRepo,
		db:               db,
		clock:            clk,
	}
}

// Create implements announcement.Service.
func (s *ServiceImpl) Create(ctx context.Context, req announcement.CreateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	if err := req.Validate(); err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return announcement.AnnouncementResponse{}, fmt.Errorf("user_id claim is missing or invalid")
	}

	publishAt := s.clock.Now()
	if req.PublishAt != nil && *req.PublishAt != "" {
		parsed, err := timeutil.ParseUTC(*req.PublishAt)
		if err != nil {
			return announcement.AnnouncementResponse{}, fmt.Errorf("invalid publish_at: %w", err)
		}
		publishAt = parsed
	}

	a := announcement.Announcement{
		ID:        uuid.NewString(),
		Title:     req.Title,
		Body:      req.Body,
		PublishAt: publishAt,
		CreatedBy: userID,
	}

	created, err := s.announcementRepo.Create(ctx, a)
	if err != nil {
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return mapAnnouncementToResponse(created), nil
}

// Get implements announcement.Service.
func (s *ServiceImpl) Get(ctx context.Context, id string) (announcement.AnnouncementResponse, error) {
	a, err := s.announcementRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return announcement.AnnouncementResponse{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.AnnouncementResponse{}, fmt.Errorf("failed to get announcement: %w", err)
	}

	return mapAnnouncementToResponse(a), nil
}

// ListPublished implements announcement.Service.
func (s *ServiceImpl) ListPublished(ctx context.Context, limit int) ([]announcement.AnnouncementResponse, error) {
	announcements, err := s.announcementRepo.ListPublished(ctx, s.clock.Now(), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list announcements: %w", err)
	}

	responses := make([]announcement.AnnouncementResponse, 0, len(announcements))
	for _, a := range announcements {
		responses = append(responses, mapAnnouncementToResponse(a))
	}
	return responses, nil
}

// Update implements announcement.Service. The read-modify-write runs in one
// transaction so a concurrent editor cannot interleave between the read and
// the write.
func (s *ServiceImpl) Update(ctx context.Context, req announcement.UpdateAnnouncementRequest) (announcement.AnnouncementResponse, error) {
	var updated announcement.Announcement
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		a, err := s.announcementRepo.GetByID(txCtx, req.ID)
		if err != nil {
			if errors.Is(err, announcement.ErrAnnouncementNotFound) {
				return announcement.ErrAnnouncementNotFound
			}
			return fmt.Errorf("failed to get announcement: %w", err)
		}

		if req.Title != nil && *req.Title != "" {
			a.Title = *req.Title
		}
		if req.Body != nil && *req.Body != "" {
			a.Body = *req.Body
		}
		if req.PublishAt != nil && *req.PublishAt != "" {
			parsed, err := timeutil.ParseUTC(*req.PublishAt)
			if err != nil {
				return fmt.Errorf("invalid publish_at: %w", err)
			}
			a.PublishAt = parsed
		}

		if err := s.announcementRepo.Update(txCtx, a); err != nil {
			return fmt.Errorf("failed to update announcement: %w", err)
		}

		updated, err = s.announcementRepo.GetByID(txCtx, req.ID)
		if err != nil {
			return fmt.Errorf("failed to get updated announcement: %w", err)
		}
		return nil
	})
	if err != nil {
		return announcement.AnnouncementResponse{}, err
	}

	return mapAnnouncementToResponse(updated), nil
}

// Delete implements announcement.Service.
func (s *ServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.announcementRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, announcement.ErrAnnouncementNotFound) {
			return announcement.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to delete announcement: %w", err)
	}
	return nil
}

func mapAnnouncementToResponse(a announcement.Announcement) announcement.AnnouncementResponse {
	return announcement.AnnouncementResponse{
		ID:        a.ID,
		Title:     a.Title,
		Body:      a.Body,
		PublishAt: a.PublishAt.UTC().Format(time.RFC3339),
		CreatedBy: a.CreatedBy,
		CreatedAt: a.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
