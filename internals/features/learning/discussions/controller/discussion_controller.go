package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/discussions/dto"
	"counseltrack_backend/internals/features/learning/discussions/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateDiscussion = validator.New()

type DiscussionController struct {
	DB *gorm.DB
}

func NewDiscussionController(db *gorm.DB) *DiscussionController {
	return &DiscussionController{DB: db}
}

// GET /api/u/discussions
func (ctrl *DiscussionController) GetDiscussions(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.DiscussionModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(discussion_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count discussions")
	}

	var discussions []model.DiscussionModel
	if err := q.Order("discussion_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&discussions).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list discussions")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Discussions", dto.ToDiscussionResponseList(discussions), &pagination)
}

// GET /api/u/discussions/:slug  (prompt + replies)
func (ctrl *DiscussionController) GetDiscussionBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var discussion model.DiscussionModel
	if err := ctrl.DB.
		Where("LOWER(discussion_slug) = ?", slug).
		First(&discussion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Discussion not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load discussion")
	}

	var replies []model.DiscussionReplyModel
	if err := ctrl.DB.
		Where("discussion_reply_discussion_id = ?", discussion.DiscussionID).
		Order("discussion_reply_created_at ASC").
		Find(&replies).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load replies")
	}

	return helper.JsonOK(c, "Discussion detail", fiber.Map{
		"discussion": dto.ToDiscussionResponse(&discussion),
		"replies":    dto.ToDiscussionReplyResponseList(replies),
	})
}

// POST /api/u/discussions/:slug/replies
func (ctrl *DiscussionController) CreateReply(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var req dto.CreateReplyRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDiscussion.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var discussion model.DiscussionModel
	if err := ctrl.DB.
		Where("LOWER(discussion_slug) = ?", slug).
		First(&discussion).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Discussion not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load discussion")
	}
	if !discussion.DiscussionIsOpen {
		return helper.JsonError(c, fiber.StatusConflict, "Discussion is closed for replies")
	}

	reply := model.DiscussionReplyModel{
		DiscussionReplyDiscussionID: discussion.DiscussionID,
		DiscussionReplyUserID:       userID,
		DiscussionReplyBody:         req.DiscussionReplyBody,
	}
	if err := ctrl.DB.Create(&reply).Error; err != nil {
		log.Printf("[ERROR] create reply discussion=%s: %v", discussion.DiscussionID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create reply")
	}
	return helper.JsonCreated(c, "Reply created", dto.ToDiscussionReplyResponse(&reply))
}

// POST /api/a/discussions
func (ctrl *DiscussionController) CreateDiscussion(c *fiber.Ctx) error {
	authorID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertDiscussionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDiscussion.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "discussions", "discussion_slug",
		helper.Slugify(req.DiscussionTitle, 120), nil, 120)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	discussion := model.DiscussionModel{
		DiscussionAuthorID: authorID,
		DiscussionTitle:    req.DiscussionTitle,
		DiscussionSlug:     slug,
		DiscussionBody:     req.DiscussionBody,
		DiscussionIsOpen:   true,
	}
	if req.DiscussionIsOpen != nil {
		discussion.DiscussionIsOpen = *req.DiscussionIsOpen
	}
	if err := ctrl.DB.Create(&discussion).Error; err != nil {
		log.Printf("[ERROR] create discussion: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create discussion")
	}
	return helper.JsonCreated(c, "Discussion created", dto.ToDiscussionResponse(&discussion))
}

// PATCH /api/a/discussions/:id
func (ctrl *DiscussionController) UpdateDiscussion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid discussion id")
	}

	var req dto.UpsertDiscussionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateDiscussion.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var discussion model.DiscussionModel
	if err := ctrl.DB.Where("discussion_id = ?", id).First(&discussion).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Discussion not found")
	}

	if req.DiscussionTitle != discussion.DiscussionTitle {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "discussions", "discussion_slug",
			helper.Slugify(req.DiscussionTitle, 120),
			func(q *gorm.DB) *gorm.DB { return q.Where("discussion_id <> ?", discussion.DiscussionID) },
			120)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		discussion.DiscussionSlug = slug
	}
	discussion.DiscussionTitle = req.DiscussionTitle
	discussion.DiscussionBody = req.DiscussionBody
	if req.DiscussionIsOpen != nil {
		discussion.DiscussionIsOpen = *req.DiscussionIsOpen
	}

	if err := ctrl.DB.Save(&discussion).Error; err != nil {
		log.Printf("[ERROR] update discussion %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update discussion")
	}
	return helper.JsonUpdated(c, "Discussion updated", dto.ToDiscussionResponse(&discussion))
}

// DELETE /api/a/discussions/:id (soft delete)
func (ctrl *DiscussionController) DeleteDiscussion(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid discussion id")
	}

	var discussion model.DiscussionModel
	if err := ctrl.DB.Where("discussion_id = ?", id).First(&discussion).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Discussion not found")
	}
	if err := ctrl.DB.Delete(&discussion).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete discussion")
	}
	return helper.JsonDeleted(c, "Discussion deleted", nil)
}
