package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/hadirhq/hadir-backend-go/internal/domain/announcement"
	"github.com/hadirhq/hadir-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type announcementRepository struct {
	db *database.DB
}

func NewAnnouncementRepository(db *database.DB) announcement.AnnouncementRepository {
	return &announcementRepository{db: db}
}

// Create implements announcement.AnnouncementRepository.
func (r *announcementRepository) Create(ctx context.Context, a announcement.Announcement) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO announcements (id, title, body, publish_at, created_by)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		a.ID, a.Title, a.Body, a.PublishAt, a.CreatedBy,
	).Scan(&a.CreatedAt, &a.UpdatedAt)

	if err != nil {
		return announcement.Announcement{}, fmt.Errorf("failed to create announcement: %w", err)
	}

	return a, nil
}

// GetByID implements announcement.AnnouncementRepository.
func (r *announcementRepository) GetByID(ctx context.Context, id string) (announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, body, publish_at, created_by, created_at, updated_at
		FROM announcements
		WHERE id = $1
	`

	var a announcement.Announcement
	err := q.QueryRow(ctx, query, id).Scan(
		&a.ID, &a.Title, &a.Body, &a.PublishAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt,
	)

	if err != nil {
		if err == pgx.ErrNoRows {
			return announcement.Announcement{}, announcement.ErrAnnouncementNotFound
		}
		return announcement.Announcement{}, fmt.Errorf("failed to get announcement by ID: %w", err)
	}

	return a, nil
}

// ListPublished implements announcement.AnnouncementRepository.
func (r *announcementRepository) ListPublished(ctx context.Context, now time.Time, limit int) ([]announcement.Announcement, error) {
	q := GetQuerier(ctx, r.db)

	if limit <= 0 {
		limit = 20
	}

	query := `
		SELECT id, title, body, publish_at, created_by, created_at, updated_at
		FROM announcements
		WHERE publish_at <= $1
		ORDER BY publish_at DESC
		LIMIT $2
	`

	rows, err := q.Query(ctx, query, now, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query announcements: %w", err)
	}
	defer rows.Close()

	var announcements []announcement.Announcement
	for rows.Next() {
		var a announcement.Announcement
		err := rows.Scan(&a.ID, &a.Title, &a.Body, &a.PublishAt, &a.CreatedBy, &a.CreatedAt, &a.UpdatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan announcement: %w", err)
		}
		announcements = append(announcements, a)
	}

	return announcements, nil
}

// Update implements announcement.AnnouncementRepository.
func (r *announcementRepository) Update(ctx context.Context, a announcement.Announcement) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE announcements
		SET title = $1, body = $2, publish_at = $3, updated_at = $4
		WHERE id = $5
		RETURNING id
	`

	var updatedID string
	if err := q.QueryRow(ctx, query, a.Title, a.Body, a.PublishAt, time.Now().UTC(), a.ID).Scan(&updatedID); err != nil {
		if err == pgx.ErrNoRows {
			return announcement.ErrAnnouncementNotFound
		}
		return fmt.Errorf("failed to update announcement: %w", err)
	}

	return nil
}

// Delete implements announcement.AnnouncementRepository.
func (r *announcementRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	commandTag, err := q.Exec(ctx, `DELETE FROM announcements WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete announcement: %w", err)
	}

	if commandTag.RowsAffected() == 0 {
		return announcement.ErrAnnouncementNotFound
	}

	return nil
}
