package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/learning/quizzes/model"
)

// ------------------------
// Admin requests
// ------------------------

type CreateQuizRequest struct {
	QuizTitle       string     `json:"quiz_title" validate:"required,min=3,max=180"`
	QuizDescription *string    `json:"quiz_description" validate:"omitempty,max=5000"`
	QuizCourseID    *uuid.UUID `json:"quiz_course_id" validate:"omitempty"`
}

type UpdateQuizRequest struct {
	QuizTitle       *string    `json:"quiz_title" validate:"omitempty,min=3,max=180"`
	QuizDescription *string    `json:"quiz_description" validate:"omitempty,max=5000"`
	QuizCourseID    *uuid.UUID `json:"quiz_course_id" validate:"omitempty"`
	QuizIsPublished *bool      `json:"quiz_is_published" validate:"omitempty"`
}

type UpsertQuizQuestionRequest struct {
	QuizQuestionText         string   `json:"quiz_question_text" validate:"required,min=3"`
	QuizQuestionOptions      []string `json:"quiz_question_options" validate:"required,min=2,max=10,dive,required"`
	QuizQuestionCorrectIndex int      `json:"quiz_question_correct_index" validate:"gte=0"`
	QuizQuestionPosition     int      `json:"quiz_question_position" validate:"gte=0"`
}

// ------------------------
// Responses
// ------------------------

type QuizResponse struct {
	QuizID          uuid.UUID  `json:"quiz_id"`
	QuizCourseID    *uuid.UUID `json:"quiz_course_id,omitempty"`
	QuizTitle       string     `json:"quiz_title"`
	QuizSlug        string     `json:"quiz_slug"`
	QuizDescription *string    `json:"quiz_description,omitempty"`
	QuizIsPublished bool       `json:"quiz_is_published"`
	QuizCreatedAt   time.Time  `json:"quiz_created_at"`
}

func ToQuizResponse(m *model.QuizModel) QuizResponse {
	return QuizResponse{
		QuizID:          m.QuizID,
		QuizCourseID:    m.QuizCourseID,
		QuizTitle:       m.QuizTitle,
		QuizSlug:        m.QuizSlug,
		QuizDescription: m.QuizDescription,
		QuizIsPublished: m.QuizIsPublished,
		QuizCreatedAt:   m.QuizCreatedAt,
	}
}

func ToQuizResponseList(models []model.QuizModel) []QuizResponse {
	out := make([]QuizResponse, 0, len(models))
	for i := range models {
		out = append(out, ToQuizResponse(&models[i]))
	}
	return out
}

// LearnerQuestionResponse is the question shape learners receive. It carries
// the options but never the answer key.
type LearnerQuestionResponse struct {
	QuizQuestionID       uuid.UUID `json:"quiz_question_id"`
	QuizQuestionPosition int       `json:"quiz_question_position"`
	QuizQuestionText     string    `json:"quiz_question_text"`
	QuizQuestionOptions  []string  `json:"quiz_question_options"`
}

func ToLearnerQuestionResponse(m *model.QuizQuestionModel) (LearnerQuestionResponse, error) {
	options, err := m.OptionsList()
	if err != nil {
		return LearnerQuestionResponse{}, err
	}
	return LearnerQuestionResponse{
		QuizQuestionID:       m.QuizQuestionID,
		QuizQuestionPosition: m.QuizQuestionPosition,
		QuizQuestionText:     m.QuizQuestionText,
		QuizQuestionOptions:  options,
	}, nil
}

// AdminQuestionResponse includes the answer key; mentor/admin routes only.
type AdminQuestionResponse struct {
	QuizQuestionID           uuid.UUID `json:"quiz_question_id"`
	QuizQuestionQuizID       uuid.UUID `json:"quiz_question_quiz_id"`
	QuizQuestionPosition     int       `json:"quiz_question_position"`
	QuizQuestionText         string    `json:"quiz_question_text"`
	QuizQuestionOptions      []string  `json:"quiz_question_options"`
	QuizQuestionCorrectIndex int       `json:"quiz_question_correct_index"`
}

func ToAdminQuestionResponse(m *model.QuizQuestionModel) (AdminQuestionResponse, error) {
	options, err := m.OptionsList()
	if err != nil {
		return AdminQuestionResponse{}, err
	}
	return AdminQuestionResponse{
		QuizQuestionID:           m.QuizQuestionID,
		QuizQuestionQuizID:       m.QuizQuestionQuizID,
		QuizQuestionPosition:     m.QuizQuestionPosition,
		QuizQuestionText:         m.QuizQuestionText,
		QuizQuestionOptions:      options,
		QuizQuestionCorrectIndex: m.QuizQuestionCorrectIndex,
	}, nil
}
