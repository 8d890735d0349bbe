package dto

import (
	"time"

	"github.com/google/uuid"

	"counseltrack_backend/internals/features/learning/quizzes/model"
)

type SubmitAnswerRequest struct {
	QuizQuestionID uuid.UUID `json:"quiz_question_id" validate:"required"`
	SelectedIndex  *int      `json:"selected_index" validate:"required,gte=0"`
}

type AttemptResponse struct {
	QuizAttemptID          uuid.UUID  `json:"quiz_attempt_id"`
	QuizAttemptQuizID      uuid.UUID  `json:"quiz_attempt_quiz_id"`
	QuizAttemptStartedAt   time.Time  `json:"quiz_attempt_started_at"`
	QuizAttemptCompletedAt *time.Time `json:"quiz_attempt_completed_at,omitempty"`
}

func ToAttemptResponse(m *model.QuizAttemptModel) AttemptResponse {
	return AttemptResponse{
		QuizAttemptID:          m.QuizAttemptID,
		QuizAttemptQuizID:      m.QuizAttemptQuizID,
		QuizAttemptStartedAt:   m.QuizAttemptStartedAt,
		QuizAttemptCompletedAt: m.QuizAttemptCompletedAt,
	}
}

// AnsweredQuestionResponse is the per-question slice of attempt state: which
// option the learner picked and whether the question is locked. Correctness is
// only exposed after completion, in the results view.
type AnsweredQuestionResponse struct {
	QuizQuestionID uuid.UUID `json:"quiz_question_id"`
	SelectedIndex  int       `json:"selected_index"`
	SubmittedAt    time.Time `json:"submitted_at"`
}

// AttemptStateResponse is the full resume payload: the attempt, the ordered
// question list, everything answered so far, and where the learner should be.
type AttemptStateResponse struct {
	Attempt      AttemptResponse            `json:"attempt"`
	Quiz         QuizResponse               `json:"quiz"`
	Questions    []LearnerQuestionResponse  `json:"questions"`
	Answered     []AnsweredQuestionResponse `json:"answered"`
	CurrentIndex int                        `json:"current_index"`
	IsCompleted  bool                       `json:"is_completed"`
}

type SubmitAnswerResponse struct {
	QuizQuestionID   uuid.UUID  `json:"quiz_question_id"`
	SelectedIndex    int        `json:"selected_index"`
	AlreadyAnswered  bool       `json:"already_answered"`
	NextIndex        int        `json:"next_index"`
	AttemptCompleted bool       `json:"attempt_completed"`
	CompletedAt      *time.Time `json:"completed_at,omitempty"`
}

// ResultItemResponse reveals per-question correctness once the attempt is
// done.
type ResultItemResponse struct {
	QuizQuestionID       uuid.UUID `json:"quiz_question_id"`
	QuizQuestionPosition int       `json:"quiz_question_position"`
	QuizQuestionText     string    `json:"quiz_question_text"`
	SelectedIndex        int       `json:"selected_index"`
	IsCorrect            bool      `json:"is_correct"`
}

type AttemptResultResponse struct {
	Attempt       AttemptResponse      `json:"attempt"`
	Quiz          QuizResponse         `json:"quiz"`
	Items         []ResultItemResponse `json:"items"`
	CorrectCount  int                  `json:"correct_count"`
	QuestionCount int                  `json:"question_count"`
	ScorePercent  float64              `json:"score_percent"`
}
