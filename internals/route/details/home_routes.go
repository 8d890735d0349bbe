package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	messageRoutes "counseltrack_backend/internals/features/home/messages/route"
	notificationRoutes "counseltrack_backend/internals/features/home/notifications/route"
)

func HomePrivateRoutes(api fiber.Router, db *gorm.DB) {
	notificationRoutes.NotificationRoutes(api, db)
	messageRoutes.MessageRoutes(api, db)
}
