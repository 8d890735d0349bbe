package controller

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/content/newsletters/dto"
	"counseltrack_backend/internals/features/content/newsletters/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateNewsletter = validator.New()

type NewsletterController struct {
	DB *gorm.DB
}

func NewNewsletterController(db *gorm.DB) *NewsletterController {
	return &NewsletterController{DB: db}
}

// GET /api/public/newsletters  (published)
func (ctrl *NewsletterController) GetPublishedNewsletters(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NewsletterModel{}).Where("newsletter_is_published = TRUE")

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count newsletters")
	}

	var newsletters []model.NewsletterModel
	if err := q.Order("newsletter_published_at DESC NULLS LAST").
		Limit(p.Limit).Offset(p.Offset).
		Find(&newsletters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list newsletters")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Newsletters", dto.ToNewsletterResponseList(newsletters), &pagination)
}

// GET /api/public/newsletters/:slug
func (ctrl *NewsletterController) GetPublishedNewsletterBySlug(c *fiber.Ctx) error {
	slug := strings.ToLower(strings.TrimSpace(c.Params("slug")))

	var newsletter model.NewsletterModel
	if err := ctrl.DB.
		Where("LOWER(newsletter_slug) = ? AND newsletter_is_published = TRUE", slug).
		First(&newsletter).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load newsletter")
	}
	return helper.JsonOK(c, "Newsletter detail", dto.ToNewsletterResponse(&newsletter, true))
}

// POST /api/a/newsletters
func (ctrl *NewsletterController) CreateNewsletter(c *fiber.Ctx) error {
	var req dto.UpsertNewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNewsletter.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "newsletters", "newsletter_slug",
		helper.Slugify(req.NewsletterTitle, 120), nil, 120)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	newsletter := model.NewsletterModel{
		NewsletterTitle: req.NewsletterTitle,
		NewsletterSlug:  slug,
		NewsletterBody:  req.NewsletterBody,
	}
	if req.NewsletterIsPublished != nil && *req.NewsletterIsPublished {
		now := time.Now().UTC()
		newsletter.NewsletterIsPublished = true
		newsletter.NewsletterPublishedAt = &now
	}
	if err := ctrl.DB.Create(&newsletter).Error; err != nil {
		log.Printf("[ERROR] create newsletter: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create newsletter")
	}
	return helper.JsonCreated(c, "Newsletter created", dto.ToNewsletterResponse(&newsletter, true))
}

// GET /api/a/newsletters
func (ctrl *NewsletterController) GetAllNewsletters(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.NewsletterModel{})

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count newsletters")
	}

	var newsletters []model.NewsletterModel
	if err := q.Order("newsletter_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&newsletters).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list newsletters")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Newsletters", dto.ToNewsletterResponseList(newsletters), &pagination)
}

// PATCH /api/a/newsletters/:id
func (ctrl *NewsletterController) UpdateNewsletter(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid newsletter id")
	}

	var req dto.UpsertNewsletterRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateNewsletter.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var newsletter model.NewsletterModel
	if err := ctrl.DB.Where("newsletter_id = ?", id).First(&newsletter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
	}

	if req.NewsletterTitle != newsletter.NewsletterTitle {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "newsletters", "newsletter_slug",
			helper.Slugify(req.NewsletterTitle, 120),
			func(q *gorm.DB) *gorm.DB { return q.Where("newsletter_id <> ?", newsletter.NewsletterID) },
			120)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		newsletter.NewsletterSlug = slug
	}
	newsletter.NewsletterTitle = req.NewsletterTitle
	newsletter.NewsletterBody = req.NewsletterBody
	if req.NewsletterIsPublished != nil {
		if *req.NewsletterIsPublished && !newsletter.NewsletterIsPublished {
			now := time.Now().UTC()
			newsletter.NewsletterPublishedAt = &now
		}
		newsletter.NewsletterIsPublished = *req.NewsletterIsPublished
	}

	if err := ctrl.DB.Save(&newsletter).Error; err != nil {
		log.Printf("[ERROR] update newsletter %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update newsletter")
	}
	return helper.JsonUpdated(c, "Newsletter updated", dto.ToNewsletterResponse(&newsletter, true))
}

// DELETE /api/a/newsletters/:id (soft delete)
func (ctrl *NewsletterController) DeleteNewsletter(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid newsletter id")
	}

	var newsletter model.NewsletterModel
	if err := ctrl.DB.Where("newsletter_id = ?", id).First(&newsletter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Newsletter not found")
	}
	if err := ctrl.DB.Delete(&newsletter).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete newsletter")
	}
	return helper.JsonDeleted(c, "Newsletter deleted", nil)
}
