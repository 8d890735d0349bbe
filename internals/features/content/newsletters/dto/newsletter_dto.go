package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/content/newsletters/model"
)

type UpsertNewsletterRequest struct {
	NewsletterTitle       string `json:"newsletter_title" validate:"required,min=3,max=180"`
	NewsletterBody        string `json:"newsletter_body" validate:"required,min=10"`
	NewsletterIsPublished *bool  `json:"newsletter_is_published" validate:"omitempty"`
}

type NewsletterResponse struct {
	NewsletterID          uuid.UUID  `json:"newsletter_id"`
	NewsletterTitle       string     `json:"newsletter_title"`
	NewsletterSlug        string     `json:"newsletter_slug"`
	NewsletterBody        string     `json:"newsletter_body,omitempty"`
	NewsletterIsPublished bool       `json:"newsletter_is_published"`
	NewsletterPublishedAt *time.Time `json:"newsletter_published_at,omitempty"`
	NewsletterCreatedAt   time.Time  `json:"newsletter_created_at"`
}

func ToNewsletterResponse(m *model.NewsletterModel, includeBody bool) NewsletterResponse {
	out := NewsletterResponse{
		NewsletterID:          m.NewsletterID,
		NewsletterTitle:       m.NewsletterTitle,
		NewsletterSlug:        m.NewsletterSlug,
		NewsletterIsPublished: m.NewsletterIsPublished,
		NewsletterPublishedAt: m.NewsletterPublishedAt,
		NewsletterCreatedAt:   m.NewsletterCreatedAt,
	}
	if includeBody {
		out.NewsletterBody = m.NewsletterBody
	}
	return out
}

func ToNewsletterResponseList(models []model.NewsletterModel) []NewsletterResponse {
	out := make([]NewsletterResponse, 0, len(models))
	for i := range models {
		out = append(out, ToNewsletterResponse(&models[i], false))
	}
	return out
}
