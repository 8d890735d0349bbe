package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizAttemptModel maps quiz_attempts: exactly one row per (quiz, learner),
// enforced by a DB unique constraint so concurrent first visits cannot race
// into duplicates. Inserts go through ON CONFLICT DO NOTHING + fetch.
type QuizAttemptModel struct {
	QuizAttemptID        uuid.UUID `gorm:"column:quiz_attempt_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_attempt_id"`
	QuizAttemptQuizID    uuid.UUID `gorm:"column:quiz_attempt_quiz_id;type:uuid;not null;uniqueIndex:uq_quiz_attempts_quiz_learner,priority:1" json:"quiz_attempt_quiz_id"`
	QuizAttemptLearnerID uuid.UUID `gorm:"column:quiz_attempt_learner_id;type:uuid;not null;uniqueIndex:uq_quiz_attempts_quiz_learner,priority:2;index:idx_quiz_attempts_learner" json:"quiz_attempt_learner_id"`

	QuizAttemptStartedAt   time.Time  `gorm:"column:quiz_attempt_started_at;type:timestamptz;not null;default:now()" json:"quiz_attempt_started_at"`
	QuizAttemptCompletedAt *time.Time `gorm:"column:quiz_attempt_completed_at;type:timestamptz" json:"quiz_attempt_completed_at,omitempty"`

	QuizAttemptCreatedAt time.Time `gorm:"column:quiz_attempt_created_at;type:timestamptz;not null;default:now();autoCreateTime" json:"quiz_attempt_created_at"`
	QuizAttemptUpdatedAt time.Time `gorm:"column:quiz_attempt_updated_at;type:timestamptz;not null;default:now();autoUpdateTime" json:"quiz_attempt_updated_at"`
}

func (QuizAttemptModel) TableName() string { return "quiz_attempts" }

func (m *QuizAttemptModel) IsCompleted() bool {
	return m.QuizAttemptCompletedAt != nil
}

// MarkCompleted sets the completion timestamp once. The transition is one-way:
// a completed attempt never goes back to open, and the timestamp never moves.
func (m *QuizAttemptModel) MarkCompleted(at time.Time) bool {
	if m.QuizAttemptCompletedAt != nil {
		return false
	}
	at = at.UTC()
	m.QuizAttemptCompletedAt = &at
	return true
}
