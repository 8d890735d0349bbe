package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/constants"
	"counseltrack_backend/internals/features/home/messages/dto"
	notifmodel "counseltrack_backend/internals/features/home/notifications/model"
	notifsvc "counseltrack_backend/internals/features/home/notifications/service"
	"counseltrack_backend/internals/features/home/messages/model"
	usermodel "counseltrack_backend/internals/features/users/user/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateMessage = validator.New()

type MessageController struct {
	DB *gorm.DB
}

func NewMessageController(db *gorm.DB) *MessageController {
	return &MessageController{DB: db}
}

// loadParticipantThread fetches a thread only if the caller participates.
func (ctrl *MessageController) loadParticipantThread(c *fiber.Ctx, userID uuid.UUID) (*model.MessageThreadModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid thread id")
	}
	var thread model.MessageThreadModel
	if err := ctrl.DB.
		Where("message_thread_id = ? AND (message_thread_learner_id = ? OR message_thread_staff_id = ?)",
			id, userID, userID).
		First(&thread).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Thread not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load thread")
	}
	return &thread, nil
}

// POST /api/u/messages/threads — learner opens a conversation with a staff
// member; the first message rides along.
func (ctrl *MessageController) CreateThread(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateThreadRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMessage.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	// The recipient must actually be staff.
	var staff usermodel.UserModel
	if err := ctrl.DB.
		Select("user_id", "user_role", "user_is_active").
		Where("user_id = ? AND user_role IN ? AND user_is_active = TRUE",
			req.MessageThreadStaffID, constants.MentorAndAbove).
		First(&staff).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusUnprocessableEntity, "Recipient is not an active staff member")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check recipient")
	}

	thread := model.MessageThreadModel{
		MessageThreadLearnerID:     learnerID,
		MessageThreadStaffID:       req.MessageThreadStaffID,
		MessageThreadSubject:       req.MessageThreadSubject,
		MessageThreadLastMessageAt: time.Now().UTC(),
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&thread).Error; err != nil {
			return err
		}
		first := model.MessageModel{
			MessageThreadID: thread.MessageThreadID,
			MessageSenderID: learnerID,
			MessageBody:     req.MessageBody,
		}
		return tx.Create(&first).Error
	})
	if err != nil {
		log.Printf("[ERROR] create thread learner=%s: %v", learnerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create thread")
	}

	link := "/messages/" + thread.MessageThreadID.String()
	notifsvc.NotifyBestEffort(c.Context(), ctrl.DB, thread.MessageThreadStaffID,
		notifmodel.NotificationTypeMessage,
		"New message",
		"You have a new message: "+thread.MessageThreadSubject,
		&link,
	)

	return helper.JsonCreated(c, "Thread created", dto.ToMessageThreadResponse(&thread))
}

// GET /api/u/messages/threads — threads the caller participates in.
func (ctrl *MessageController) GetMyThreads(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.MessageThreadModel{}).
		Where("message_thread_learner_id = ? OR message_thread_staff_id = ?", userID, userID)

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count threads")
	}

	var threads []model.MessageThreadModel
	if err := q.Order("message_thread_last_message_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&threads).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list threads")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Threads", dto.ToMessageThreadResponseList(threads), &pagination)
}

// GET /api/u/messages/threads/:id — messages in one thread; messages sent to
// the caller are marked read as a side effect of opening the thread.
func (ctrl *MessageController) GetThreadMessages(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	thread, errResp := ctrl.loadParticipantThread(c, userID)
	if thread == nil {
		return errResp
	}

	now := time.Now().UTC()
	if err := ctrl.DB.Model(&model.MessageModel{}).
		Where("message_thread_id = ? AND message_sender_id <> ? AND message_read_at IS NULL",
			thread.MessageThreadID, userID).
		Update("message_read_at", now).Error; err != nil {
		log.Printf("[ERROR] mark messages read thread=%s: %v", thread.MessageThreadID, err)
	}

	var messages []model.MessageModel
	if err := ctrl.DB.
		Where("message_thread_id = ?", thread.MessageThreadID).
		Order("message_created_at ASC").
		Find(&messages).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list messages")
	}

	return helper.JsonOK(c, "Thread messages", fiber.Map{
		"thread":   dto.ToMessageThreadResponse(thread),
		"messages": dto.ToMessageResponseList(messages),
	})
}

// POST /api/u/messages/threads/:id
func (ctrl *MessageController) SendMessage(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	thread, errResp := ctrl.loadParticipantThread(c, userID)
	if thread == nil {
		return errResp
	}

	var req dto.SendMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateMessage.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	message := model.MessageModel{
		MessageThreadID: thread.MessageThreadID,
		MessageSenderID: userID,
		MessageBody:     req.MessageBody,
	}

	err = ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&message).Error; err != nil {
			return err
		}
		return tx.Model(&model.MessageThreadModel{}).
			Where("message_thread_id = ?", thread.MessageThreadID).
			Update("message_thread_last_message_at", time.Now().UTC()).Error
	})
	if err != nil {
		log.Printf("[ERROR] send message thread=%s: %v", thread.MessageThreadID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to send message")
	}

	recipient := thread.MessageThreadLearnerID
	if recipient == userID {
		recipient = thread.MessageThreadStaffID
	}
	link := "/messages/" + thread.MessageThreadID.String()
	notifsvc.NotifyBestEffort(c.Context(), ctrl.DB, recipient,
		notifmodel.NotificationTypeMessage,
		"New message",
		"New reply in: "+thread.MessageThreadSubject,
		&link,
	)

	return helper.JsonCreated(c, "Message sent", dto.ToMessageResponse(&message))
}
