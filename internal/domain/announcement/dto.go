package announcement

import (
	"github.com/hadirhq/hadir-backend-go/internal/pkg/validator"
)

type CreateAnnouncementRequest struct {
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	PublishAt *string `json:"publish_at"` // RFC 3339 or naked UTC; empty means publish now
}

func (r *CreateAnnouncementRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	}
	if validator.IsEmpty(r.Body) {
		errs = append(errs, validator.ValidationError{
			Field:   "body",
			Message: "body is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

type UpdateAnnouncementRequest struct {
	ID        string  `json:"-"`
	Title     *string `json:"title"`
	Body      *string `json:"body"`
	PublishAt *string `json:"publish_at"`
}

type AnnouncementResponse struct {
	ID        string `json:"id"`
	Title     string `json:"title"`
	Body      string `json:"body"`
	PublishAt string `json:"publish_at"`
	CreatedBy string `json:"created_by"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}
