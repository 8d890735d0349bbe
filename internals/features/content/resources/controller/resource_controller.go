package controller

import (
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/content/resources/dto"
	"counseltrack_backend/internals/features/content/resources/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateResource = validator.New()

type ResourceController struct {
	DB *gorm.DB
}

func NewResourceController(db *gorm.DB) *ResourceController {
	return &ResourceController{DB: db}
}

// GET /api/public/resources  (published, ?tag= filter via text[] containment)
func (ctrl *ResourceController) GetPublishedResources(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ResourceModel{}).Where("resource_is_published = TRUE")
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(resource_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}
	if tag := strings.TrimSpace(c.Query("tag")); tag != "" {
		q = q.Where("resource_tags @> ?", pq.StringArray{strings.ToLower(tag)})
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count resources")
	}

	var resources []model.ResourceModel
	if err := q.Order("resource_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&resources).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list resources")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Resources", dto.ToResourceResponseList(resources), &pagination)
}

// normalizeTags lowercases and dedupes, keeping first-seen order.
func normalizeTags(tags []string) pq.StringArray {
	seen := make(map[string]struct{}, len(tags))
	out := make(pq.StringArray, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" {
			continue
		}
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}

// POST /api/a/resources
func (ctrl *ResourceController) CreateResource(c *fiber.Ctx) error {
	var req dto.UpsertResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResource.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "resources", "resource_slug",
		helper.Slugify(req.ResourceTitle, 120), nil, 120)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
	}

	resource := model.ResourceModel{
		ResourceTitle:       req.ResourceTitle,
		ResourceSlug:        slug,
		ResourceDescription: req.ResourceDescription,
		ResourceURL:         req.ResourceURL,
		ResourceTags:        normalizeTags(req.ResourceTags),
	}
	if req.ResourceIsPublished != nil {
		resource.ResourceIsPublished = *req.ResourceIsPublished
	}
	if err := ctrl.DB.Create(&resource).Error; err != nil {
		log.Printf("[ERROR] create resource: %v", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create resource")
	}
	return helper.JsonCreated(c, "Resource created", dto.ToResourceResponse(&resource))
}

// GET /api/a/resources
func (ctrl *ResourceController) GetAllResources(c *fiber.Ctx) error {
	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.ResourceModel{})
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(resource_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count resources")
	}

	var resources []model.ResourceModel
	if err := q.Order("resource_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&resources).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list resources")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Resources", dto.ToResourceResponseList(resources), &pagination)
}

// PATCH /api/a/resources/:id
func (ctrl *ResourceController) UpdateResource(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource id")
	}

	var req dto.UpsertResourceRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateResource.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var resource model.ResourceModel
	if err := ctrl.DB.Where("resource_id = ?", id).First(&resource).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}

	if req.ResourceTitle != resource.ResourceTitle {
		slug, err := helper.EnsureUniqueSlugCI(c.Context(), ctrl.DB, "resources", "resource_slug",
			helper.Slugify(req.ResourceTitle, 120),
			func(q *gorm.DB) *gorm.DB { return q.Where("resource_id <> ?", resource.ResourceID) },
			120)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate slug")
		}
		resource.ResourceSlug = slug
	}
	resource.ResourceTitle = req.ResourceTitle
	resource.ResourceDescription = req.ResourceDescription
	resource.ResourceURL = req.ResourceURL
	resource.ResourceTags = normalizeTags(req.ResourceTags)
	if req.ResourceIsPublished != nil {
		resource.ResourceIsPublished = *req.ResourceIsPublished
	}

	if err := ctrl.DB.Save(&resource).Error; err != nil {
		log.Printf("[ERROR] update resource %s: %v", id, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update resource")
	}
	return helper.JsonUpdated(c, "Resource updated", dto.ToResourceResponse(&resource))
}

// DELETE /api/a/resources/:id (soft delete)
func (ctrl *ResourceController) DeleteResource(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid resource id")
	}

	var resource model.ResourceModel
	if err := ctrl.DB.Where("resource_id = ?", id).First(&resource).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Resource not found")
	}
	if err := ctrl.DB.Delete(&resource).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete resource")
	}
	return helper.JsonDeleted(c, "Resource deleted", nil)
}
