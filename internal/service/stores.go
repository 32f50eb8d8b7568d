package service

import (
	"context"

	"quizhub/internal/models"
)

// Store interfaces consumed by the services. The Mongo repositories satisfy
// them in production; tests substitute in-memory fakes.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	FindByID(ctx context.Context, id string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindAll(ctx context.Context) ([]models.User, error)
	Update(ctx context.Context, user *models.User) error
	Deactivate(ctx context.Context, id string) error
}

type QuizStore interface {
	Create(ctx context.Context, quiz *models.Quiz) error
	FindByID(ctx context.Context, id string) (*models.Quiz, error)
	FindAll(ctx context.Context) ([]models.Quiz, error)
	Update(ctx context.Context, quiz *models.Quiz) error
	Delete(ctx context.Context, id string) error
}

type QuestionStore interface {
	Create(ctx context.Context, question *models.Question) error
	FindByID(ctx context.Context, id string) (*models.Question, error)
	FindByQuiz(ctx context.Context, quizID string) ([]models.Question, error)
	Update(ctx context.Context, question *models.Question) error
	Delete(ctx context.Context, id string) error
}

type AttemptStore interface {
	Create(ctx context.Context, attempt *models.Attempt) error
	FindByID(ctx context.Context, id string) (*models.Attempt, error)
	SubmitPending(ctx context.Context, id string, answers []models.AttemptAnswer, score int) (bool, error)
	RevertSubmission(ctx context.Context, id string) error
}

type ResultStore interface {
	Create(ctx context.Context, result *models.Result) error
	FindByQuiz(ctx context.Context, quizID string) ([]models.Result, error)
	FindByUser(ctx context.Context, userID string) ([]models.Result, error)
}

type NotificationStore interface {
	Create(ctx context.Context, n *models.Notification) error
	FindByUser(ctx context.Context, userID string) ([]models.Notification, error)
	MarkRead(ctx context.Context, id, userID string) error
}

// Notifier delivers a message out of band, typically over SMTP.
type Notifier interface {
	Send(to, subject, body string) error
}

// EventPublisher mirrors the RabbitMQ publisher; nil-able at wiring time.
type EventPublisher interface {
	Publish(eventType string, payload any) error
}
