package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Notification types
const (
	NotificationTypeSystem        = 1
	NotificationTypeQuizCompleted = 2
	NotificationTypeCertificate   = 3
	NotificationTypeMessage       = 4
)

type NotificationModel struct {
	NotificationID     uuid.UUID `gorm:"column:notification_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	NotificationUserID uuid.UUID `gorm:"column:notification_user_id;type:uuid;not null;index:idx_notifications_user" json:"notification_user_id"`

	NotificationTitle string  `gorm:"column:notification_title;type:varchar(180);not null" json:"notification_title"`
	NotificationBody  string  `gorm:"column:notification_body;type:text;not null" json:"notification_body"`
	NotificationType  int     `gorm:"column:notification_type;not null;default:1" json:"notification_type"`
	NotificationLink  *string `gorm:"column:notification_link;type:text" json:"notification_link,omitempty"`

	NotificationIsRead bool       `gorm:"column:notification_is_read;not null;default:false" json:"notification_is_read"`
	NotificationReadAt *time.Time `gorm:"column:notification_read_at;type:timestamptz" json:"notification_read_at,omitempty"`

	NotificationCreatedAt time.Time      `gorm:"column:notification_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"notification_created_at"`
	NotificationUpdatedAt time.Time      `gorm:"column:notification_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"notification_updated_at"`
	NotificationDeletedAt gorm.DeletedAt `gorm:"column:notification_deleted_at" json:"notification_deleted_at,omitempty"`
}

func (NotificationModel) TableName() string { return "notifications" }

// MarkRead flips the read flag once and stamps the time.
func (m *NotificationModel) MarkRead(at time.Time) bool {
	if m.NotificationIsRead {
		return false
	}
	at = at.UTC()
	m.NotificationIsRead = true
	m.NotificationReadAt = &at
	return true
}
