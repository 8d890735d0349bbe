package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/learning/courses/model"
)

type CreateCourseRequest struct {
	CourseTitle       string     `json:"course_title" validate:"required,min=3,max=180"`
	CourseSummary     *string    `json:"course_summary" validate:"omitempty,max=500"`
	CourseDescription *string    `json:"course_description" validate:"omitempty"`
	CourseCategory    *string    `json:"course_category" validate:"omitempty,max=80"`
	CourseMentorID    *uuid.UUID `json:"course_mentor_id" validate:"omitempty"`
}

type UpdateCourseRequest struct {
	CourseTitle       *string    `json:"course_title" validate:"omitempty,min=3,max=180"`
	CourseSummary     *string    `json:"course_summary" validate:"omitempty,max=500"`
	CourseDescription *string    `json:"course_description" validate:"omitempty"`
	CourseCategory    *string    `json:"course_category" validate:"omitempty,max=80"`
	CourseMentorID    *uuid.UUID `json:"course_mentor_id" validate:"omitempty"`
	CourseIsPublished *bool      `json:"course_is_published" validate:"omitempty"`
}

type CourseResponse struct {
	CourseID          uuid.UUID  `json:"course_id"`
	CourseMentorID    *uuid.UUID `json:"course_mentor_id,omitempty"`
	CourseTitle       string     `json:"course_title"`
	CourseSlug        string     `json:"course_slug"`
	CourseSummary     *string    `json:"course_summary,omitempty"`
	CourseDescription *string    `json:"course_description,omitempty"`
	CourseCategory    *string    `json:"course_category,omitempty"`
	CourseIsPublished bool       `json:"course_is_published"`
	CourseCreatedAt   time.Time  `json:"course_created_at"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:          m.CourseID,
		CourseMentorID:    m.CourseMentorID,
		CourseTitle:       m.CourseTitle,
		CourseSlug:        m.CourseSlug,
		CourseSummary:     m.CourseSummary,
		CourseDescription: m.CourseDescription,
		CourseCategory:    m.CourseCategory,
		CourseIsPublished: m.CourseIsPublished,
		CourseCreatedAt:   m.CourseCreatedAt,
	}
}

func ToCourseResponseList(models []model.CourseModel) []CourseResponse {
	out := make([]CourseResponse, 0, len(models))
	for i := range models {
		out = append(out, ToCourseResponse(&models[i]))
	}
	return out
}
