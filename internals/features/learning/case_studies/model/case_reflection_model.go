package model

import (
	"time"

	"github.com/google/uuid"
)

// CaseReflectionModel holds one learner's written reflection on a case study.
// One row per (case study, learner); re-submitting replaces the text.
type CaseReflectionModel struct {
	CaseReflectionID          uuid.UUID `gorm:"column:case_reflection_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"case_reflection_id"`
	CaseReflectionCaseStudyID uuid.UUID `gorm:"column:case_reflection_case_study_id;type:uuid;not null;uniqueIndex:uq_case_reflections_case_learner,priority:1" json:"case_reflection_case_study_id"`
	CaseReflectionLearnerID   uuid.UUID `gorm:"column:case_reflection_learner_id;type:uuid;not null;uniqueIndex:uq_case_reflections_case_learner,priority:2;index:idx_case_reflections_learner" json:"case_reflection_learner_id"`

	CaseReflectionBody string `gorm:"column:case_reflection_body;type:text;not null" json:"case_reflection_body"`

	CaseReflectionCreatedAt time.Time `gorm:"column:case_reflection_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"case_reflection_created_at"`
	CaseReflectionUpdatedAt time.Time `gorm:"column:case_reflection_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"case_reflection_updated_at"`
}

func (CaseReflectionModel) TableName() string { return "case_reflections" }
