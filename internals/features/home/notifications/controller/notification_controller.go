package controller

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/home/notifications/dto"
	"counseltrack_backend/internals/features/home/notifications/model"
	helper "counseltrack_backend/internals/helpers"
)

type NotificationController struct {
	DB *gorm.DB
}

func NewNotificationController(db *gorm.DB) *NotificationController {
	return &NotificationController{DB: db}
}

// GET /api/u/notifications  (?unread=true filter; unread count always included)
func (ctrl *NotificationController) GetMyNotifications(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NotificationModel{}).Where("notification_user_id = ?", userID)
	if c.Query("unread") == "true" {
		q = q.Where("notification_is_read = FALSE")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count notifications")
	}

	var unread int64
	if err := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Count(&unread).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count unread notifications")
	}

	var notifications []model.NotificationModel
	if err := q.Order("notification_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&notifications).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list notifications")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Notifications", fiber.Map{
		"items":        dto.ToNotificationResponseList(notifications),
		"unread_count": unread,
	}, &pagination)
}

// POST /api/u/notifications/:id/read
func (ctrl *NotificationController) MarkRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid notification id")
	}

	var notif model.NotificationModel
	if err := ctrl.DB.
		Where("notification_id = ? AND notification_user_id = ?", id, userID).
		First(&notif).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Notification not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load notification")
	}

	if notif.MarkRead(time.Now()) {
		if err := ctrl.DB.Save(&notif).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notification as read")
		}
	}
	return helper.JsonUpdated(c, "Notification read", dto.ToNotificationResponse(&notif))
}

// POST /api/u/notifications/read-all
func (ctrl *NotificationController) MarkAllRead(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	res := ctrl.DB.Model(&model.NotificationModel{}).
		Where("notification_user_id = ? AND notification_is_read = FALSE", userID).
		Updates(map[string]any{
			"notification_is_read": true,
			"notification_read_at": now,
		})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to mark notifications as read")
	}

	return helper.JsonUpdated(c, "All notifications read", fiber.Map{"updated": res.RowsAffected})
}
