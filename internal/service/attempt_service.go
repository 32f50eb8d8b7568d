package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"quizhub/internal/models"
)

// SubmitOutcome is the result of SubmitAttempt. A late submission is a normal
// outcome, not an error: Late is set, nothing is scored or persisted.
type SubmitOutcome struct {
	Late    bool            `json:"late"`
	Message string          `json:"message,omitempty"`
	Attempt *models.Attempt `json:"attempt,omitempty"`
	Result  *models.Result  `json:"result,omitempty"`
}

// AttemptService owns the attempt lifecycle: starting a timed attempt and
// scoring its single submission.
type AttemptService struct {
	attempts      AttemptStore
	quizzes       QuizStore
	questions     QuestionStore
	users         UserStore
	results       *ResultService
	notifications *NotificationService
	now           func() time.Time
}

func NewAttemptService(
	attempts AttemptStore,
	quizzes QuizStore,
	questions QuestionStore,
	users UserStore,
	results *ResultService,
	notifications *NotificationService,
) *AttemptService {
	return &AttemptService{
		attempts:      attempts,
		quizzes:       quizzes,
		questions:     questions,
		users:         users,
		results:       results,
		notifications: notifications,
		now:           time.Now,
	}
}

// StartAttempt creates a pending attempt for the user on the quiz and returns
// it with the quiz's questions. The duration budget and question count are
// snapshotted onto the attempt. Returned questions are sanitized so the
// correct answers never reach the quiz taker.
func (s *AttemptService) StartAttempt(ctx context.Context, userID, quizID string) (*models.Attempt, []models.Question, error) {
	if _, err := s.users.FindByID(ctx, userID); err != nil {
		return nil, nil, err
	}
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.questions.FindByQuiz(ctx, quizID)
	if err != nil {
		return nil, nil, fmt.Errorf("loading questions for quiz %s: %w", quizID, err)
	}

	now := s.now()
	attempt := &models.Attempt{
		UserID:          userID,
		QuizID:          quizID,
		Answers:         []models.AttemptAnswer{},
		Score:           0,
		TotalQuestions:  len(questions),
		StartTime:       now,
		DurationMinutes: quiz.DurationMinutes,
		Status:          models.AttemptStatusPending,
		CreatedAt:       now,
	}
	if err := s.attempts.Create(ctx, attempt); err != nil {
		return nil, nil, fmt.Errorf("creating attempt: %w", err)
	}

	sanitized := make([]models.Question, len(questions))
	for i, q := range questions {
		sanitized[i] = q.Sanitized()
	}
	return attempt, sanitized, nil
}

// SubmitAttempt scores the submitted answers against the quiz's questions and
// finalizes the attempt. Each answer earns one point when its selected option
// equals the question's correct answer exactly; no normalization, no partial
// credit. An attempt can only be submitted once.
func (s *AttemptService) SubmitAttempt(ctx context.Context, userID, quizID, attemptID string, answers []models.AttemptAnswer) (*SubmitOutcome, error) {
	attempt, err := s.attempts.FindByID(ctx, attemptID)
	if err != nil {
		return nil, err
	}
	if attempt.UserID != userID || attempt.QuizID != quizID {
		return nil, models.ErrAttemptNotFound
	}
	if attempt.Status != models.AttemptStatusPending {
		return nil, models.ErrAlreadySubmitted
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	quiz, err := s.quizzes.FindByID(ctx, quizID)
	if err != nil {
		return nil, err
	}

	if attempt.IsLate(s.now()) {
		return &SubmitOutcome{Late: true, Message: "submission window has expired"}, nil
	}

	score, err := s.scoreAnswers(ctx, answers)
	if err != nil {
		return nil, err
	}

	ok, err := s.attempts.SubmitPending(ctx, attempt.ID, answers, score)
	if err != nil {
		return nil, fmt.Errorf("finalizing attempt %s: %w", attempt.ID, err)
	}
	if !ok {
		// Lost the race against a concurrent submission of the same attempt.
		return nil, models.ErrAlreadySubmitted
	}
	attempt.Answers = answers
	attempt.Score = score
	attempt.Status = models.AttemptStatusSubmitted

	result, err := s.results.Record(ctx, attempt)
	if err != nil {
		// Without a result the score can never reach the leaderboard, so the
		// attempt is reopened and the caller can submit again.
		if rerr := s.attempts.RevertSubmission(ctx, attempt.ID); rerr != nil {
			log.Printf("reverting attempt %s after result failure: %v", attempt.ID, rerr)
		}
		return nil, fmt.Errorf("recording result for attempt %s: %w", attempt.ID, err)
	}

	if err := s.notifications.NotifyScore(ctx, user, quiz, attempt); err != nil {
		// Notification is best-effort and must never abort a scored submission.
		log.Printf("notify user %s about attempt %s: %v", user.ID, attempt.ID, err)
	}

	return &SubmitOutcome{Attempt: attempt, Result: result}, nil
}

func (s *AttemptService) scoreAnswers(ctx context.Context, answers []models.AttemptAnswer) (int, error) {
	score := 0
	for _, answer := range answers {
		question, err := s.questions.FindByID(ctx, answer.QuestionID)
		if errors.Is(err, models.ErrQuestionNotFound) {
			continue // unknown question ids contribute nothing
		}
		if err != nil {
			return 0, fmt.Errorf("loading question %s: %w", answer.QuestionID, err)
		}
		if question.CorrectAnswer == answer.SelectedOption {
			score++
		}
	}
	return score, nil
}
