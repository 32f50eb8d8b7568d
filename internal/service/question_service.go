package service

import (
	"context"
	"time"

	"quizhub/internal/models"
)

type QuestionService struct {
	questions QuestionStore
	quizzes   QuizStore
	now       func() time.Time
}

func NewQuestionService(questions QuestionStore, quizzes QuizStore) *QuestionService {
	return &QuestionService{questions: questions, quizzes: quizzes, now: time.Now}
}

func (s *QuestionService) CreateQuestion(ctx context.Context, question *models.Question) error {
	if _, err := s.quizzes.FindByID(ctx, question.QuizID); err != nil {
		return err
	}
	now := s.now()
	question.CreatedAt = now
	question.UpdatedAt = now
	return s.questions.Create(ctx, question)
}

// GetQuestion is the authoring read: the correct answer stays in the payload.
func (s *QuestionService) GetQuestion(ctx context.Context, id string) (*models.Question, error) {
	return s.questions.FindByID(ctx, id)
}

func (s *QuestionService) ListByQuiz(ctx context.Context, quizID string) ([]models.Question, error) {
	return s.questions.FindByQuiz(ctx, quizID)
}

func (s *QuestionService) UpdateQuestion(ctx context.Context, question *models.Question) error {
	current, err := s.questions.FindByID(ctx, question.ID)
	if err != nil {
		return err
	}
	question.QuizID = current.QuizID
	question.CreatedAt = current.CreatedAt
	question.UpdatedAt = s.now()
	return s.questions.Update(ctx, question)
}

func (s *QuestionService) DeleteQuestion(ctx context.Context, id string) error {
	return s.questions.Delete(ctx, id)
}
