package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/home/messages/model"
)

type CreateThreadRequest struct {
	MessageThreadStaffID uuid.UUID `json:"message_thread_staff_id" validate:"required"`
	MessageThreadSubject string    `json:"message_thread_subject" validate:"required,min=1,max=180"`
	MessageBody          string    `json:"message_body" validate:"required,min=1,max=20000"`
}

type SendMessageRequest struct {
	MessageBody string `json:"message_body" validate:"required,min=1,max=20000"`
}

type MessageThreadResponse struct {
	MessageThreadID            uuid.UUID `json:"message_thread_id"`
	MessageThreadLearnerID     uuid.UUID `json:"message_thread_learner_id"`
	MessageThreadStaffID       uuid.UUID `json:"message_thread_staff_id"`
	MessageThreadSubject       string    `json:"message_thread_subject"`
	MessageThreadLastMessageAt time.Time `json:"message_thread_last_message_at"`
	MessageThreadCreatedAt     time.Time `json:"message_thread_created_at"`
}

func ToMessageThreadResponse(m *model.MessageThreadModel) MessageThreadResponse {
	return MessageThreadResponse{
		MessageThreadID:            m.MessageThreadID,
		MessageThreadLearnerID:     m.MessageThreadLearnerID,
		MessageThreadStaffID:       m.MessageThreadStaffID,
		MessageThreadSubject:       m.MessageThreadSubject,
		MessageThreadLastMessageAt: m.MessageThreadLastMessageAt,
		MessageThreadCreatedAt:     m.MessageThreadCreatedAt,
	}
}

func ToMessageThreadResponseList(models []model.MessageThreadModel) []MessageThreadResponse {
	out := make([]MessageThreadResponse, 0, len(models))
	for i := range models {
		out = append(out, ToMessageThreadResponse(&models[i]))
	}
	return out
}

type MessageResponse struct {
	MessageID        uuid.UUID  `json:"message_id"`
	MessageThreadID  uuid.UUID  `json:"message_thread_id"`
	MessageSenderID  uuid.UUID  `json:"message_sender_id"`
	MessageBody      string     `json:"message_body"`
	MessageReadAt    *time.Time `json:"message_read_at,omitempty"`
	MessageCreatedAt time.Time  `json:"message_created_at"`
}

func ToMessageResponse(m *model.MessageModel) MessageResponse {
	return MessageResponse{
		MessageID:        m.MessageID,
		MessageThreadID:  m.MessageThreadID,
		MessageSenderID:  m.MessageSenderID,
		MessageBody:      m.MessageBody,
		MessageReadAt:    m.MessageReadAt,
		MessageCreatedAt: m.MessageCreatedAt,
	}
}

func ToMessageResponseList(models []model.MessageModel) []MessageResponse {
	out := make([]MessageResponse, 0, len(models))
	for i := range models {
		out = append(out, ToMessageResponse(&models[i]))
	}
	return out
}
