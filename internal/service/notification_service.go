package service

import (
	"context"
	"fmt"
	"log"
	"time"

	"quizhub/internal/models"
)

// NotificationService keeps the in-app notification feed and pushes score
// summaries out by email and domain event. Both mailer and events may be nil
// when the deployment has no SMTP relay or broker configured.
type NotificationService struct {
	store  NotificationStore
	mailer Notifier
	events EventPublisher
	now    func() time.Time
}

func NewNotificationService(store NotificationStore, mailer Notifier, events EventPublisher) *NotificationService {
	return &NotificationService{store: store, mailer: mailer, events: events, now: time.Now}
}

// NotifyScore records an in-app notification for a scored submission and
// fires the email and broker event. The email send runs off the request path;
// its failure is logged, never surfaced.
func (s *NotificationService) NotifyScore(ctx context.Context, user *models.User, quiz *models.Quiz, attempt *models.Attempt) error {
	message := fmt.Sprintf("You scored %d out of %d on %q.", attempt.Score, attempt.TotalQuestions, quiz.Title)
	record := &models.Notification{
		UserID:    user.ID,
		Message:   message,
		CreatedAt: s.now(),
	}
	if err := s.store.Create(ctx, record); err != nil {
		return fmt.Errorf("storing notification: %w", err)
	}

	if s.events != nil {
		if err := s.events.Publish("quiz.attempt.submitted", map[string]any{
			"user_id":    user.ID,
			"quiz_id":    quiz.ID,
			"attempt_id": attempt.ID,
			"score":      attempt.Score,
		}); err != nil {
			log.Printf("publish quiz.attempt.submitted: %v", err)
		}
	}

	if s.mailer != nil {
		subject := fmt.Sprintf("Quiz result: %s", quiz.Title)
		body := fmt.Sprintf(
			"Hello,\n\nThank you for participating in the quiz!\n\nYour score: %d out of %d\n\nBest regards,\nQuiz Team\n",
			attempt.Score, attempt.TotalQuestions)
		to := user.Email
		go func() {
			if err := s.mailer.Send(to, subject, body); err != nil {
				log.Printf("sending score email to %s: %v", to, err)
			}
		}()
	}
	return nil
}

func (s *NotificationService) ListByUser(ctx context.Context, userID string) ([]models.Notification, error) {
	return s.store.FindByUser(ctx, userID)
}

// MarkRead only touches the caller's own notification; a foreign id reads as
// not found.
func (s *NotificationService) MarkRead(ctx context.Context, id, userID string) error {
	return s.store.MarkRead(ctx, id, userID)
}
