package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/learning/journals/model"
)

type UpsertJournalRequest struct {
	JournalTitle string  `json:"journal_title" validate:"required,min=1,max=180"`
	JournalBody  string  `json:"journal_body" validate:"required,min=1,max=50000"`
	JournalMood  *string `json:"journal_mood" validate:"omitempty,max=40"`
}

type JournalResponse struct {
	JournalID        uuid.UUID `json:"journal_id"`
	JournalTitle     string    `json:"journal_title"`
	JournalBody      string    `json:"journal_body"`
	JournalMood      *string   `json:"journal_mood,omitempty"`
	JournalCreatedAt time.Time `json:"journal_created_at"`
	JournalUpdatedAt time.Time `json:"journal_updated_at"`
}

func ToJournalResponse(m *model.JournalModel) JournalResponse {
	return JournalResponse{
		JournalID:        m.JournalID,
		JournalTitle:     m.JournalTitle,
		JournalBody:      m.JournalBody,
		JournalMood:      m.JournalMood,
		JournalCreatedAt: m.JournalCreatedAt,
		JournalUpdatedAt: m.JournalUpdatedAt,
	}
}

func ToJournalResponseList(models []model.JournalModel) []JournalResponse {
	out := make([]JournalResponse, 0, len(models))
	for i := range models {
		out = append(out, ToJournalResponse(&models[i]))
	}
	return out
}
