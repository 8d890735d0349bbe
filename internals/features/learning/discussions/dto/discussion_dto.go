package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/learning/discussions/model"
)

type UpsertDiscussionRequest struct {
	DiscussionTitle  string `json:"discussion_title" validate:"required,min=3,max=180"`
	DiscussionBody   string `json:"discussion_body" validate:"required,min=10"`
	DiscussionIsOpen *bool  `json:"discussion_is_open" validate:"omitempty"`
}

type CreateReplyRequest struct {
	DiscussionReplyBody string `json:"discussion_reply_body" validate:"required,min=1,max=20000"`
}

type DiscussionResponse struct {
	DiscussionID        uuid.UUID `json:"discussion_id"`
	DiscussionAuthorID  uuid.UUID `json:"discussion_author_id"`
	DiscussionTitle     string    `json:"discussion_title"`
	DiscussionSlug      string    `json:"discussion_slug"`
	DiscussionBody      string    `json:"discussion_body"`
	DiscussionIsOpen    bool      `json:"discussion_is_open"`
	DiscussionCreatedAt time.Time `json:"discussion_created_at"`
}

func ToDiscussionResponse(m *model.DiscussionModel) DiscussionResponse {
	return DiscussionResponse{
		DiscussionID:        m.DiscussionID,
		DiscussionAuthorID:  m.DiscussionAuthorID,
		DiscussionTitle:     m.DiscussionTitle,
		DiscussionSlug:      m.DiscussionSlug,
		DiscussionBody:      m.DiscussionBody,
		DiscussionIsOpen:    m.DiscussionIsOpen,
		DiscussionCreatedAt: m.DiscussionCreatedAt,
	}
}

func ToDiscussionResponseList(models []model.DiscussionModel) []DiscussionResponse {
	out := make([]DiscussionResponse, 0, len(models))
	for i := range models {
		out = append(out, ToDiscussionResponse(&models[i]))
	}
	return out
}

type DiscussionReplyResponse struct {
	DiscussionReplyID        uuid.UUID `json:"discussion_reply_id"`
	DiscussionReplyUserID    uuid.UUID `json:"discussion_reply_user_id"`
	DiscussionReplyBody      string    `json:"discussion_reply_body"`
	DiscussionReplyCreatedAt time.Time `json:"discussion_reply_created_at"`
}

func ToDiscussionReplyResponse(m *model.DiscussionReplyModel) DiscussionReplyResponse {
	return DiscussionReplyResponse{
		DiscussionReplyID:        m.DiscussionReplyID,
		DiscussionReplyUserID:    m.DiscussionReplyUserID,
		DiscussionReplyBody:      m.DiscussionReplyBody,
		DiscussionReplyCreatedAt: m.DiscussionReplyCreatedAt,
	}
}

func ToDiscussionReplyResponseList(models []model.DiscussionReplyModel) []DiscussionReplyResponse {
	out := make([]DiscussionReplyResponse, 0, len(models))
	for i := range models {
		out = append(out, ToDiscussionReplyResponse(&models[i]))
	}
	return out
}
