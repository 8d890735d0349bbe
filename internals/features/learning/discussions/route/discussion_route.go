package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/learning/discussions/controller"
	authMiddleware "counseltrack_backend/internals/middlewares/auth"
)

// DiscussionUserRoutes: reading prompts and posting replies.
func DiscussionUserRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDiscussionController(db)
	router.Get("/discussions", ctrl.GetDiscussions)
	router.Get("/discussions/:slug", ctrl.GetDiscussionBySlug)
	router.Post("/discussions/:slug/replies", ctrl.CreateReply)
}

// DiscussionAdminRoutes: prompt management for mentors and admins.
func DiscussionAdminRoutes(router fiber.Router, db *gorm.DB) {
	ctrl := controller.NewDiscussionController(db)

	discussions := router.Group("/discussions",
		authMiddleware.RequireRoles(constants.RoleErrorMentor("discussion management"), constants.MentorAndAbove...),
	)
	discussions.Post("/", ctrl.CreateDiscussion)
	discussions.Patch("/:id", ctrl.UpdateDiscussion)
	discussions.Delete("/:id", ctrl.DeleteDiscussion)
}
