package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	notifmodel "counseltrack_backend/internals/features/home/notifications/model"
	notifsvc "counseltrack_backend/internals/features/home/notifications/service"
	"counseltrack_backend/internals/features/learning/quizzes/dto"
	"counseltrack_backend/internals/features/learning/quizzes/model"
)

var (
	ErrQuizNotFound       = errors.New("quiz not found or not published")
	ErrQuizHasNoQuestions = errors.New("quiz has no questions")
	ErrAttemptNotFound    = errors.New("attempt not found")
	ErrAttemptCompleted   = errors.New("attempt already completed")
	ErrAttemptNotDone     = errors.New("attempt not completed yet")
	ErrQuestionNotInQuiz  = errors.New("question does not belong to this quiz")
)

// AttemptService drives the attempt lifecycle: start-or-resume, answer
// submission with server-side grading, and the completion transition.
type AttemptService struct {
	DB *gorm.DB
}

func NewAttemptService(db *gorm.DB) *AttemptService {
	return &AttemptService{DB: db}
}

// loadPublishedQuiz resolves a quiz learners are allowed to take.
func (s *AttemptService) loadPublishedQuiz(ctx context.Context, quizID uuid.UUID) (*model.QuizModel, error) {
	var quiz model.QuizModel
	err := s.DB.WithContext(ctx).
		Where("quiz_id = ? AND quiz_is_published = TRUE", quizID).
		First(&quiz).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrQuizNotFound
	}
	if err != nil {
		return nil, err
	}
	return &quiz, nil
}

func (s *AttemptService) loadQuestions(ctx context.Context, quizID uuid.UUID) ([]model.QuizQuestionModel, error) {
	var questions []model.QuizQuestionModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_question_quiz_id = ?", quizID).
		Order("quiz_question_position ASC").
		Find(&questions).Error; err != nil {
		return nil, err
	}
	return questions, nil
}

func (s *AttemptService) loadResponses(ctx context.Context, attemptID uuid.UUID) ([]model.QuizResponseModel, error) {
	var responses []model.QuizResponseModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_response_attempt_id = ?", attemptID).
		Find(&responses).Error; err != nil {
		return nil, err
	}
	return responses, nil
}

// insertOrFetchAttempt creates the (quiz, learner) attempt row if it does not
// exist yet and returns the canonical row either way. The unique constraint
// plus ON CONFLICT DO NOTHING makes concurrent first requests converge on a
// single attempt without an advisory lock.
func (s *AttemptService) insertOrFetchAttempt(ctx context.Context, quizID, learnerID uuid.UUID) (*model.QuizAttemptModel, error) {
	if err := s.DB.WithContext(ctx).Exec(`
		INSERT INTO quiz_attempts (quiz_attempt_quiz_id, quiz_attempt_learner_id)
		VALUES (?, ?)
		ON CONFLICT (quiz_attempt_quiz_id, quiz_attempt_learner_id) DO NOTHING
	`, quizID, learnerID).Error; err != nil {
		return nil, err
	}

	var attempt model.QuizAttemptModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_learner_id = ?", quizID, learnerID).
		First(&attempt).Error; err != nil {
		return nil, err
	}
	return &attempt, nil
}

// buildState assembles the resume payload from already-loaded rows.
func buildState(quiz *model.QuizModel, attempt *model.QuizAttemptModel, questions []model.QuizQuestionModel, responses []model.QuizResponseModel) (*dto.AttemptStateResponse, error) {
	answered := AnsweredSet(responses)

	learnerQuestions := make([]dto.LearnerQuestionResponse, 0, len(questions))
	for i := range questions {
		lq, err := dto.ToLearnerQuestionResponse(&questions[i])
		if err != nil {
			return nil, fmt.Errorf("question %s: %w", questions[i].QuizQuestionID, err)
		}
		learnerQuestions = append(learnerQuestions, lq)
	}

	answeredOut := make([]dto.AnsweredQuestionResponse, 0, len(responses))
	for i := range questions {
		resp, ok := answered[questions[i].QuizQuestionID]
		if !ok {
			continue
		}
		answeredOut = append(answeredOut, dto.AnsweredQuestionResponse{
			QuizQuestionID: resp.QuizResponseQuestionID,
			SelectedIndex:  resp.QuizResponseSelectedIndex,
			SubmittedAt:    resp.QuizResponseSubmittedAt,
		})
	}

	return &dto.AttemptStateResponse{
		Attempt:      dto.ToAttemptResponse(attempt),
		Quiz:         dto.ToQuizResponse(quiz),
		Questions:    learnerQuestions,
		Answered:     answeredOut,
		CurrentIndex: CurrentIndex(questions, answered),
		IsCompleted:  attempt.IsCompleted(),
	}, nil
}

// StartOrResume is idempotent: the first call creates the learner's attempt,
// every later call returns the same attempt with its recorded progress.
func (s *AttemptService) StartOrResume(ctx context.Context, quizID, learnerID uuid.UUID) (*dto.AttemptStateResponse, error) {
	quiz, err := s.loadPublishedQuiz(ctx, quizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.loadQuestions(ctx, quizID)
	if err != nil {
		return nil, err
	}
	if len(questions) == 0 {
		return nil, ErrQuizHasNoQuestions
	}

	attempt, err := s.insertOrFetchAttempt(ctx, quizID, learnerID)
	if err != nil {
		return nil, err
	}

	responses, err := s.loadResponses(ctx, attempt.QuizAttemptID)
	if err != nil {
		return nil, err
	}

	return buildState(quiz, attempt, questions, responses)
}

// State returns the current attempt state for the owning learner.
func (s *AttemptService) State(ctx context.Context, attemptID, learnerID uuid.UUID) (*dto.AttemptStateResponse, error) {
	attempt, err := s.loadOwnedAttempt(ctx, attemptID, learnerID)
	if err != nil {
		return nil, err
	}

	quiz, err := s.loadPublishedQuiz(ctx, attempt.QuizAttemptQuizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.loadQuestions(ctx, quiz.QuizID)
	if err != nil {
		return nil, err
	}

	responses, err := s.loadResponses(ctx, attempt.QuizAttemptID)
	if err != nil {
		return nil, err
	}

	return buildState(quiz, attempt, questions, responses)
}

func (s *AttemptService) loadOwnedAttempt(ctx context.Context, attemptID, learnerID uuid.UUID) (*model.QuizAttemptModel, error) {
	var attempt model.QuizAttemptModel
	err := s.DB.WithContext(ctx).
		Where("quiz_attempt_id = ? AND quiz_attempt_learner_id = ?", attemptID, learnerID).
		First(&attempt).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrAttemptNotFound
	}
	if err != nil {
		return nil, err
	}
	return &attempt, nil
}

// SubmitAnswer records a graded response for one question.
//
// Resubmission of an already-answered question is a no-op: the stored answer
// stays as-is and the learner is simply advanced, so retried requests and
// double-clicks never change a grade. When the last open question is
// answered, the attempt completes in the same call and a best-effort
// notification goes out.
func (s *AttemptService) SubmitAnswer(ctx context.Context, attemptID, learnerID uuid.UUID, req *dto.SubmitAnswerRequest) (*dto.SubmitAnswerResponse, error) {
	attempt, err := s.loadOwnedAttempt(ctx, attemptID, learnerID)
	if err != nil {
		return nil, err
	}
	if attempt.IsCompleted() {
		return nil, ErrAttemptCompleted
	}

	quiz, err := s.loadPublishedQuiz(ctx, attempt.QuizAttemptQuizID)
	if err != nil {
		return nil, err
	}

	questions, err := s.loadQuestions(ctx, quiz.QuizID)
	if err != nil {
		return nil, err
	}

	qIdx := IndexOfQuestion(questions, req.QuizQuestionID)
	if qIdx < 0 {
		return nil, ErrQuestionNotInQuiz
	}
	question := &questions[qIdx]

	// Locked question → idempotent advance, nothing written.
	var existing model.QuizResponseModel
	err = s.DB.WithContext(ctx).
		Where("quiz_response_attempt_id = ? AND quiz_response_question_id = ?", attempt.QuizAttemptID, question.QuizQuestionID).
		First(&existing).Error
	if err == nil {
		return &dto.SubmitAnswerResponse{
			QuizQuestionID:   existing.QuizResponseQuestionID,
			SelectedIndex:    existing.QuizResponseSelectedIndex,
			AlreadyAnswered:  true,
			NextIndex:        NextIndexAfter(qIdx, len(questions)),
			AttemptCompleted: false,
			CompletedAt:      attempt.QuizAttemptCompletedAt,
		}, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	isCorrect, err := question.Grade(*req.SelectedIndex)
	if err != nil {
		return nil, err
	}

	// The unique constraint keeps a concurrent duplicate submit from creating
	// a second row; the loser of the race falls back to the stored answer.
	res := s.DB.WithContext(ctx).Exec(`
		INSERT INTO quiz_responses
			(quiz_response_attempt_id, quiz_response_question_id, quiz_response_selected_index, quiz_response_is_correct)
		VALUES (?, ?, ?, ?)
		ON CONFLICT (quiz_response_attempt_id, quiz_response_question_id) DO NOTHING
	`, attempt.QuizAttemptID, question.QuizQuestionID, *req.SelectedIndex, isCorrect)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		if err := s.DB.WithContext(ctx).
			Where("quiz_response_attempt_id = ? AND quiz_response_question_id = ?", attempt.QuizAttemptID, question.QuizQuestionID).
			First(&existing).Error; err != nil {
			return nil, err
		}
		return &dto.SubmitAnswerResponse{
			QuizQuestionID:  existing.QuizResponseQuestionID,
			SelectedIndex:   existing.QuizResponseSelectedIndex,
			AlreadyAnswered: true,
			NextIndex:       NextIndexAfter(qIdx, len(questions)),
			CompletedAt:     attempt.QuizAttemptCompletedAt,
		}, nil
	}

	out := &dto.SubmitAnswerResponse{
		QuizQuestionID: question.QuizQuestionID,
		SelectedIndex:  *req.SelectedIndex,
		NextIndex:      NextIndexAfter(qIdx, len(questions)),
	}

	responses, err := s.loadResponses(ctx, attempt.QuizAttemptID)
	if err != nil {
		return nil, err
	}
	if AllAnswered(questions, AnsweredSet(responses)) {
		completedAt, err := s.completeAttempt(ctx, attempt, quiz)
		if err != nil {
			return nil, err
		}
		out.AttemptCompleted = true
		out.CompletedAt = completedAt
	}

	return out, nil
}

// completeAttempt stamps quiz_attempt_completed_at exactly once. The guarded
// UPDATE keeps the timestamp monotonic under concurrent final submissions;
// whoever wins the race owns the completion and fires the notification.
func (s *AttemptService) completeAttempt(ctx context.Context, attempt *model.QuizAttemptModel, quiz *model.QuizModel) (*time.Time, error) {
	now := time.Now().UTC()
	res := s.DB.WithContext(ctx).
		Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_id = ? AND quiz_attempt_completed_at IS NULL", attempt.QuizAttemptID).
		Update("quiz_attempt_completed_at", now)
	if res.Error != nil {
		return nil, res.Error
	}

	if res.RowsAffected == 0 {
		// Lost the race; read back the winning timestamp.
		var fresh model.QuizAttemptModel
		if err := s.DB.WithContext(ctx).
			Where("quiz_attempt_id = ?", attempt.QuizAttemptID).
			First(&fresh).Error; err != nil {
			return nil, err
		}
		attempt.QuizAttemptCompletedAt = fresh.QuizAttemptCompletedAt
		return fresh.QuizAttemptCompletedAt, nil
	}

	attempt.QuizAttemptCompletedAt = &now

	// Delivery failure must not undo the completion.
	link := "/quizzes/" + quiz.QuizSlug + "/results"
	notifsvc.NotifyBestEffort(ctx, s.DB, attempt.QuizAttemptLearnerID,
		notifmodel.NotificationTypeQuizCompleted,
		"Quiz completed",
		fmt.Sprintf("You finished the quiz %q. Your results are ready.", quiz.QuizTitle),
		&link,
	)

	return &now, nil
}

// Results reveals per-question correctness and the score. Only available
// once the attempt is completed — open attempts must not leak grading.
func (s *AttemptService) Results(ctx context.Context, attemptID, learnerID uuid.UUID) (*dto.AttemptResultResponse, error) {
	attempt, err := s.loadOwnedAttempt(ctx, attemptID, learnerID)
	if err != nil {
		return nil, err
	}
	if !attempt.IsCompleted() {
		return nil, ErrAttemptNotDone
	}

	var quiz model.QuizModel
	if err := s.DB.WithContext(ctx).
		Where("quiz_id = ?", attempt.QuizAttemptQuizID).
		First(&quiz).Error; err != nil {
		return nil, err
	}

	questions, err := s.loadQuestions(ctx, quiz.QuizID)
	if err != nil {
		return nil, err
	}

	responses, err := s.loadResponses(ctx, attempt.QuizAttemptID)
	if err != nil {
		return nil, err
	}
	answered := AnsweredSet(responses)

	items := make([]dto.ResultItemResponse, 0, len(questions))
	correct := 0
	for i := range questions {
		resp, ok := answered[questions[i].QuizQuestionID]
		if !ok {
			continue
		}
		if resp.QuizResponseIsCorrect {
			correct++
		}
		items = append(items, dto.ResultItemResponse{
			QuizQuestionID:       questions[i].QuizQuestionID,
			QuizQuestionPosition: questions[i].QuizQuestionPosition,
			QuizQuestionText:     questions[i].QuizQuestionText,
			SelectedIndex:        resp.QuizResponseSelectedIndex,
			IsCorrect:            resp.QuizResponseIsCorrect,
		})
	}

	score := 0.0
	if len(questions) > 0 {
		score = float64(correct) / float64(len(questions)) * 100
	}

	return &dto.AttemptResultResponse{
		Attempt:       dto.ToAttemptResponse(attempt),
		Quiz:          dto.ToQuizResponse(&quiz),
		Items:         items,
		CorrectCount:  correct,
		QuestionCount: len(questions),
		ScorePercent:  score,
	}, nil
}
