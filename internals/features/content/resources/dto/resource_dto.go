package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/content/resources/model"
)

type UpsertResourceRequest struct {
	ResourceTitle       string   `json:"resource_title" validate:"required,min=3,max=180"`
	ResourceDescription *string  `json:"resource_description" validate:"omitempty,max=5000"`
	ResourceURL         string   `json:"resource_url" validate:"required,url"`
	ResourceTags        []string `json:"resource_tags" validate:"omitempty,max=15,dive,min=1,max=40"`
	ResourceIsPublished *bool    `json:"resource_is_published" validate:"omitempty"`
}

type ResourceResponse struct {
	ResourceID          uuid.UUID `json:"resource_id"`
	ResourceTitle       string    `json:"resource_title"`
	ResourceSlug        string    `json:"resource_slug"`
	ResourceDescription *string   `json:"resource_description,omitempty"`
	ResourceURL         string    `json:"resource_url"`
	ResourceTags        []string  `json:"resource_tags"`
	ResourceIsPublished bool      `json:"resource_is_published"`
	ResourceCreatedAt   time.Time `json:"resource_created_at"`
}

func ToResourceResponse(m *model.ResourceModel) ResourceResponse {
	tags := []string(m.ResourceTags)
	if tags == nil {
		tags = []string{}
	}
	return ResourceResponse{
		ResourceID:          m.ResourceID,
		ResourceTitle:       m.ResourceTitle,
		ResourceSlug:        m.ResourceSlug,
		ResourceDescription: m.ResourceDescription,
		ResourceURL:         m.ResourceURL,
		ResourceTags:        tags,
		ResourceIsPublished: m.ResourceIsPublished,
		ResourceCreatedAt:   m.ResourceCreatedAt,
	}
}

func ToResourceResponseList(models []model.ResourceModel) []ResourceResponse {
	out := make([]ResourceResponse, 0, len(models))
	for i := range models {
		out = append(out, ToResourceResponse(&models[i]))
	}
	return out
}
