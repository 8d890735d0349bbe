package model

import (
	"time"

	"github.com/google/uuid"
)

// QuizResponseModel maps quiz_responses: at most one row per
// (attempt, question), enforced by a unique constraint. A response is never
// updated or deleted — once recorded, the answer is locked.
type QuizResponseModel struct {
	QuizResponseID         uuid.UUID `gorm:"column:quiz_response_id;type:uuid;primaryKey;default:gen_random_uuid()" json:"quiz_response_id"`
	QuizResponseAttemptID  uuid.UUID `gorm:"column:quiz_response_attempt_id;type:uuid;not null;uniqueIndex:uq_quiz_responses_attempt_question,priority:1" json:"quiz_response_attempt_id"`
	QuizResponseQuestionID uuid.UUID `gorm:"column:quiz_response_question_id;type:uuid;not null;uniqueIndex:uq_quiz_responses_attempt_question,priority:2" json:"quiz_response_question_id"`

	QuizResponseSelectedIndex int  `gorm:"column:quiz_response_selected_index;not null" json:"quiz_response_selected_index"`
	QuizResponseIsCorrect     bool `gorm:"column:quiz_response_is_correct;not null" json:"quiz_response_is_correct"`

	QuizResponseSubmittedAt time.Time `gorm:"column:quiz_response_submitted_at;type:timestamptz;not null;default:now()" json:"quiz_response_submitted_at"`
}

func (QuizResponseModel) TableName() string { return "quiz_responses" }
