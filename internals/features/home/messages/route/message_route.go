package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/home/messages/controller"
)

// MessageRoutes: learner↔staff inbox, all routes participant-scoped.
func MessageRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewMessageController(db)

	router.Post("/messages/threads", ctrl.CreateThread)
	router.Get("/messages/threads", ctrl.GetMyThreads)
	router.Get("/messages/threads/:id", ctrl.GetThreadMessages)
	router.Post("/messages/threads/:id", ctrl.SendMessage)
}
