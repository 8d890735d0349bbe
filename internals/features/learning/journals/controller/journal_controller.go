package controller

import (
	"errors"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"counseltrack_backend/internals/features/learning/journals/dto"
	"counseltrack_backend/internals/features/learning/journals/model"
	helper "counseltrack_backend/internals/helpers"
)

var validateJournal = validator.New()

type JournalController struct {
	DB *gorm.DB
}

func NewJournalController(db *gorm.DB) *JournalController {
	return &JournalController{DB: db}
}

// loadOwned fetches a journal entry only if the caller owns it. A foreign id
// reads as not-found, never as forbidden, so entry ids don't leak.
func (ctrl *JournalController) loadOwned(c *fiber.Ctx, learnerID uuid.UUID) (*model.JournalModel, error) {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return nil, helper.JsonError(c, fiber.StatusBadRequest, "Invalid journal id")
	}
	var entry model.JournalModel
	if err := ctrl.DB.
		Where("journal_id = ? AND journal_learner_id = ?", id, learnerID).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, helper.JsonError(c, fiber.StatusNotFound, "Journal entry not found")
		}
		return nil, helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load journal entry")
	}
	return &entry, nil
}

// POST /api/u/journals
func (ctrl *JournalController) CreateEntry(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateJournal.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	entry := model.JournalModel{
		JournalLearnerID: learnerID,
		JournalTitle:     req.JournalTitle,
		JournalBody:      req.JournalBody,
		JournalMood:      req.JournalMood,
	}
	if err := ctrl.DB.Create(&entry).Error; err != nil {
		log.Printf("[ERROR] create journal learner=%s: %v", learnerID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create journal entry")
	}
	return helper.JsonCreated(c, "Journal entry created", dto.ToJournalResponse(&entry))
}

// GET /api/u/journals
func (ctrl *JournalController) GetMyEntries(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	p := helper.ResolvePaging(c, 20, 100)

	q := ctrl.DB.Model(&model.JournalModel{}).Where("journal_learner_id = ?", learnerID)
	if search := strings.TrimSpace(c.Query("q")); search != "" {
		q = q.Where("LOWER(journal_title) LIKE ?", "%"+strings.ToLower(search)+"%")
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count journal entries")
	}

	var entries []model.JournalModel
	if err := q.Order("journal_created_at DESC").
		Limit(p.Limit).Offset(p.Offset).
		Find(&entries).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to list journal entries")
	}

	pagination := helper.BuildPaginationFromPage(total, p.Page, p.PerPage)
	return helper.JsonList(c, "Journal entries", dto.ToJournalResponseList(entries), &pagination)
}

// GET /api/u/journals/:id
func (ctrl *JournalController) GetEntry(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	entry, errResp := ctrl.loadOwned(c, learnerID)
	if entry == nil {
		return errResp
	}
	return helper.JsonOK(c, "Journal entry", dto.ToJournalResponse(entry))
}

// PATCH /api/u/journals/:id
func (ctrl *JournalController) UpdateEntry(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.UpsertJournalRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateJournal.Struct(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	entry, errResp := ctrl.loadOwned(c, learnerID)
	if entry == nil {
		return errResp
	}

	entry.JournalTitle = req.JournalTitle
	entry.JournalBody = req.JournalBody
	entry.JournalMood = req.JournalMood
	if err := ctrl.DB.Save(entry).Error; err != nil {
		log.Printf("[ERROR] update journal %s: %v", entry.JournalID, err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update journal entry")
	}
	return helper.JsonUpdated(c, "Journal entry updated", dto.ToJournalResponse(entry))
}

// DELETE /api/u/journals/:id (soft delete)
func (ctrl *JournalController) DeleteEntry(c *fiber.Ctx) error {
	learnerID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	entry, errResp := ctrl.loadOwned(c, learnerID)
	if entry == nil {
		return errResp
	}
	if err := ctrl.DB.Delete(entry).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete journal entry")
	}
	return helper.JsonDeleted(c, "Journal entry deleted", nil)
}
