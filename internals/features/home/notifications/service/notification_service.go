package service

import (
	"context"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/home/notifications/model"
)

// Notify inserts a notification row for a user. Failures are the caller's to
// decide on; see NotifyBestEffort for fire-and-forget delivery.
func Notify(ctx context.Context, db *gorm.DB, userID uuid.UUID, notifType int, title, body string, link *string) error {
	notif := model.NotificationModel{
		NotificationUserID: userID,
		NotificationTitle:  title,
		NotificationBody:   body,
		NotificationType:   notifType,
		NotificationLink:   link,
	}
	return db.WithContext(ctx).Create(&notif).Error
}

// NotifyBestEffort delivers a notification without letting a failure ripple
// back into the triggering operation. The failure is logged and swallowed.
func NotifyBestEffort(ctx context.Context, db *gorm.DB, userID uuid.UUID, notifType int, title, body string, link *string) {
	if err := Notify(ctx, db, userID, notifType, title, body, link); err != nil {
		log.Printf("[NOTIFY ERROR] user=%s type=%d: %v", userID, notifType, err)
	}
}
