package service

import (
	"context"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	notifmodel "counseltrack_backend/internals/features/home/notifications/model"
	"counseltrack_backend/internals/features/learning/quizzes/dto"
	"counseltrack_backend/internals/features/learning/quizzes/model"
)

// Exercises the whole attempt lifecycle against a real Postgres: single
// attempt row across repeated starts, graded responses, locked-question
// no-op resubmission, completion with exactly one notification.
func TestAttemptLifecycle_DBIntegration(t *testing.T) {
	if os.Getenv("COUNSELTRACK_INTEGRATION") != "1" {
		t.Skip("set COUNSELTRACK_INTEGRATION=1 to run integration tests")
	}

	dsn := os.Getenv("COUNSELTRACK_TEST_DSN")
	if strings.TrimSpace(dsn) == "" {
		dsn = "host=localhost port=5432 user=counseltrack password=counseltrack_dev dbname=counseltrack_test sslmode=disable"
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}

	if err := db.AutoMigrate(
		&model.QuizModel{},
		&model.QuizQuestionModel{},
		&model.QuizAttemptModel{},
		&model.QuizResponseModel{},
		&notifmodel.NotificationModel{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	suffix := time.Now().UnixNano()
	learnerID := uuid.New()

	quiz := model.QuizModel{
		QuizTitle:       fmt.Sprintf("ITEST Active Listening %d", suffix),
		QuizSlug:        fmt.Sprintf("itest-active-listening-%d", suffix),
		QuizIsPublished: true,
	}
	if err := db.WithContext(ctx).Create(&quiz).Error; err != nil {
		t.Fatalf("insert quiz: %v", err)
	}
	defer cleanupAttemptFixture(t, db, quiz.QuizID, learnerID)

	questions := make([]model.QuizQuestionModel, 3)
	for i := range questions {
		questions[i] = model.QuizQuestionModel{
			QuizQuestionQuizID:   quiz.QuizID,
			QuizQuestionPosition: i,
			QuizQuestionText:     fmt.Sprintf("Question %d", i+1),
		}
		if err := questions[i].SetOptions([]string{"option a", "option b", "option c"}, 1); err != nil {
			t.Fatalf("set options: %v", err)
		}
		if err := db.WithContext(ctx).Create(&questions[i]).Error; err != nil {
			t.Fatalf("insert question %d: %v", i, err)
		}
	}

	svc := NewAttemptService(db)

	// Start twice: both calls must land on the same attempt row.
	first, err := svc.StartOrResume(ctx, quiz.QuizID, learnerID)
	if err != nil {
		t.Fatalf("first start: %v", err)
	}
	second, err := svc.StartOrResume(ctx, quiz.QuizID, learnerID)
	if err != nil {
		t.Fatalf("second start: %v", err)
	}
	if first.Attempt.QuizAttemptID != second.Attempt.QuizAttemptID {
		t.Fatalf("start is not idempotent: %s vs %s", first.Attempt.QuizAttemptID, second.Attempt.QuizAttemptID)
	}

	var attemptRows int64
	if err := db.WithContext(ctx).Model(&model.QuizAttemptModel{}).
		Where("quiz_attempt_quiz_id = ? AND quiz_attempt_learner_id = ?", quiz.QuizID, learnerID).
		Count(&attemptRows).Error; err != nil {
		t.Fatalf("count attempts: %v", err)
	}
	if attemptRows != 1 {
		t.Fatalf("expected exactly 1 attempt row, got %d", attemptRows)
	}

	attemptID := first.Attempt.QuizAttemptID
	sel := func(i int) *int { return &i }

	// Answer Q1 correct, Q2 wrong.
	for i, selected := range []int{1, 0} {
		res, err := svc.SubmitAnswer(ctx, attemptID, learnerID, &dto.SubmitAnswerRequest{
			QuizQuestionID: questions[i].QuizQuestionID,
			SelectedIndex:  sel(selected),
		})
		if err != nil {
			t.Fatalf("submit answer %d: %v", i, err)
		}
		if res.AttemptCompleted {
			t.Fatalf("attempt completed too early at question %d", i)
		}
	}

	// Resubmitting Q1 with a different option must not change the grade.
	redo, err := svc.SubmitAnswer(ctx, attemptID, learnerID, &dto.SubmitAnswerRequest{
		QuizQuestionID: questions[0].QuizQuestionID,
		SelectedIndex:  sel(2),
	})
	if err != nil {
		t.Fatalf("resubmit answer: %v", err)
	}
	if !redo.AlreadyAnswered {
		t.Fatalf("expected already-answered flag on resubmit")
	}
	if redo.SelectedIndex != 1 {
		t.Fatalf("stored answer changed on resubmit: got %d", redo.SelectedIndex)
	}

	// Last answer completes the attempt.
	last, err := svc.SubmitAnswer(ctx, attemptID, learnerID, &dto.SubmitAnswerRequest{
		QuizQuestionID: questions[2].QuizQuestionID,
		SelectedIndex:  sel(1),
	})
	if err != nil {
		t.Fatalf("final submit: %v", err)
	}
	if !last.AttemptCompleted || last.CompletedAt == nil {
		t.Fatalf("expected completion on final answer")
	}

	// Submits after completion are refused.
	if _, err := svc.SubmitAnswer(ctx, attemptID, learnerID, &dto.SubmitAnswerRequest{
		QuizQuestionID: questions[0].QuizQuestionID,
		SelectedIndex:  sel(0),
	}); err != ErrAttemptCompleted {
		t.Fatalf("expected ErrAttemptCompleted, got %v", err)
	}

	results, err := svc.Results(ctx, attemptID, learnerID)
	if err != nil {
		t.Fatalf("results: %v", err)
	}
	if results.CorrectCount != 2 || results.QuestionCount != 3 {
		t.Fatalf("expected 2/3 correct, got %d/%d", results.CorrectCount, results.QuestionCount)
	}

	// Completion fires exactly one notification.
	var notifCount int64
	if err := db.WithContext(ctx).Model(&notifmodel.NotificationModel{}).
		Where("notification_user_id = ? AND notification_type = ?", learnerID, notifmodel.NotificationTypeQuizCompleted).
		Count(&notifCount).Error; err != nil {
		t.Fatalf("count notifications: %v", err)
	}
	if notifCount != 1 {
		t.Fatalf("expected exactly 1 completion notification, got %d", notifCount)
	}
}

func cleanupAttemptFixture(t *testing.T, db *gorm.DB, quizID, learnerID uuid.UUID) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_ = db.WithContext(ctx).Exec(`
		DELETE FROM quiz_responses WHERE quiz_response_attempt_id IN (
			SELECT quiz_attempt_id FROM quiz_attempts WHERE quiz_attempt_quiz_id = ?
		)`, quizID).Error
	_ = db.WithContext(ctx).Exec(`DELETE FROM quiz_attempts WHERE quiz_attempt_quiz_id = ?`, quizID).Error
	_ = db.WithContext(ctx).Exec(`DELETE FROM quiz_questions WHERE quiz_question_quiz_id = ?`, quizID).Error
	_ = db.WithContext(ctx).Exec(`DELETE FROM quizzes WHERE quiz_id = ?`, quizID).Error
	_ = db.WithContext(ctx).Exec(`DELETE FROM notifications WHERE notification_user_id = ?`, learnerID).Error
}
