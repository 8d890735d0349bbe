package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// JournalModel is a private reflective entry. Rows are owned by their learner;
// every query filters on journal_learner_id, no one else reads them.
type JournalModel struct {
	JournalID        uuid.UUID `gorm:"column:journal_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"journal_id"`
	JournalLearnerID uuid.UUID `gorm:"column:journal_learner_id;type:uuid;not null;index:idx_journals_learner" json:"journal_learner_id"`

	JournalTitle string  `gorm:"column:journal_title;type:varchar(180);not null" json:"journal_title"`
	JournalBody  string  `gorm:"column:journal_body;type:text;not null" json:"journal_body"`
	JournalMood  *string `gorm:"column:journal_mood;type:varchar(40)" json:"journal_mood,omitempty"`

	JournalCreatedAt time.Time      `gorm:"column:journal_created_at;not null;autoCreateTime" json:"journal_created_at"`
	JournalUpdatedAt time.Time      `gorm:"column:journal_updated_at;not null;autoUpdateTime" json:"journal_updated_at"`
	JournalDeletedAt gorm.DeletedAt `gorm:"column:journal_deleted_at;index" json:"journal_deleted_at,omitempty"`
}

func (JournalModel) TableName() string { return "journals" }
