package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/home/notifications/model"
)

type NotificationResponse struct {
	NotificationID        uuid.UUID  `json:"notification_id"`
	NotificationTitle     string     `json:"notification_title"`
	NotificationBody      string     `json:"notification_body"`
	NotificationType      int        `json:"notification_type"`
	NotificationLink      *string    `json:"notification_link,omitempty"`
	NotificationIsRead    bool       `json:"notification_is_read"`
	NotificationReadAt    *time.Time `json:"notification_read_at,omitempty"`
	NotificationCreatedAt time.Time  `json:"notification_created_at"`
}

func ToNotificationResponse(m *model.NotificationModel) NotificationResponse {
	return NotificationResponse{
		NotificationID:        m.NotificationID,
		NotificationTitle:     m.NotificationTitle,
		NotificationBody:      m.NotificationBody,
		NotificationType:      m.NotificationType,
		NotificationLink:      m.NotificationLink,
		NotificationIsRead:    m.NotificationIsRead,
		NotificationReadAt:    m.NotificationReadAt,
		NotificationCreatedAt: m.NotificationCreatedAt,
	}
}

func ToNotificationResponseList(models []model.NotificationModel) []NotificationResponse {
	out := make([]NotificationResponse, 0, len(models))
	for i := range models {
		out = append(out, ToNotificationResponse(&models[i]))
	}
	return out
}
