package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/home/notifications/controller"
)

// NotificationRoutes: the caller's notification feed.
func NotificationRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewNotificationController(db)

	router.Get("/notifications", ctrl.GetMyNotifications)
	router.Post("/notifications/read-all", ctrl.MarkAllRead)
	router.Post("/notifications/:id/read", ctrl.MarkRead)
}
