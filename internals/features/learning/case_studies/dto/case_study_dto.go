package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/learning/case_studies/model"
)

type UpsertCaseStudyRequest struct {
	CaseStudyTitle       string  `json:"case_study_title" validate:"required,min=3,max=180"`
	CaseStudySummary     *string `json:"case_study_summary" validate:"omitempty,max=500"`
	CaseStudyBody        string  `json:"case_study_body" validate:"required,min=10"`
	CaseStudyIsPublished *bool   `json:"case_study_is_published" validate:"omitempty"`
}

type SubmitReflectionRequest struct {
	CaseReflectionBody string `json:"case_reflection_body" validate:"required,min=10,max=20000"`
}

type CaseStudyResponse struct {
	CaseStudyID          uuid.UUID `json:"case_study_id"`
	CaseStudyTitle       string    `json:"case_study_title"`
	CaseStudySlug        string    `json:"case_study_slug"`
	CaseStudySummary     *string   `json:"case_study_summary,omitempty"`
	CaseStudyBody        string    `json:"case_study_body,omitempty"`
	CaseStudyIsPublished bool      `json:"case_study_is_published"`
	CaseStudyCreatedAt   time.Time `json:"case_study_created_at"`
}

func ToCaseStudyResponse(m *model.CaseStudyModel, includeBody bool) CaseStudyResponse {
	out := CaseStudyResponse{
		CaseStudyID:          m.CaseStudyID,
		CaseStudyTitle:       m.CaseStudyTitle,
		CaseStudySlug:        m.CaseStudySlug,
		CaseStudySummary:     m.CaseStudySummary,
		CaseStudyIsPublished: m.CaseStudyIsPublished,
		CaseStudyCreatedAt:   m.CaseStudyCreatedAt,
	}
	if includeBody {
		out.CaseStudyBody = m.CaseStudyBody
	}
	return out
}

func ToCaseStudyResponseList(models []model.CaseStudyModel) []CaseStudyResponse {
	out := make([]CaseStudyResponse, 0, len(models))
	for i := range models {
		out = append(out, ToCaseStudyResponse(&models[i], false))
	}
	return out
}

type CaseReflectionResponse struct {
	CaseReflectionID          uuid.UUID `json:"case_reflection_id"`
	CaseReflectionCaseStudyID uuid.UUID `json:"case_reflection_case_study_id"`
	CaseReflectionLearnerID   uuid.UUID `json:"case_reflection_learner_id"`
	CaseReflectionBody        string    `json:"case_reflection_body"`
	CaseReflectionCreatedAt   time.Time `json:"case_reflection_created_at"`
	CaseReflectionUpdatedAt   time.Time `json:"case_reflection_updated_at"`
}

func ToCaseReflectionResponse(m *model.CaseReflectionModel) CaseReflectionResponse {
	return CaseReflectionResponse{
		CaseReflectionID:          m.CaseReflectionID,
		CaseReflectionCaseStudyID: m.CaseReflectionCaseStudyID,
		CaseReflectionLearnerID:   m.CaseReflectionLearnerID,
		CaseReflectionBody:        m.CaseReflectionBody,
		CaseReflectionCreatedAt:   m.CaseReflectionCreatedAt,
		CaseReflectionUpdatedAt:   m.CaseReflectionUpdatedAt,
	}
}

func ToCaseReflectionResponseList(models []model.CaseReflectionModel) []CaseReflectionResponse {
	out := make([]CaseReflectionResponse, 0, len(models))
	for i := range models {
		out = append(out, ToCaseReflectionResponse(&models[i]))
	}
	return out
}
