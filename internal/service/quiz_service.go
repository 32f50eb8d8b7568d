package service

import (
	"context"
	"time"

	"quizhub/internal/models"
)

type QuizService struct {
	quizzes   QuizStore
	questions QuestionStore
	users     UserStore
	now       func() time.Time
}

func NewQuizService(quizzes QuizStore, questions QuestionStore, users UserStore) *QuizService {
	return &QuizService{quizzes: quizzes, questions: questions, users: users, now: time.Now}
}

func (s *QuizService) CreateQuiz(ctx context.Context, title, description string, durationMinutes int, createdBy string) (*models.Quiz, error) {
	if _, err := s.users.FindByID(ctx, createdBy); err != nil {
		return nil, err
	}
	now := s.now()
	quiz := &models.Quiz{
		Title:           title,
		Description:     description,
		DurationMinutes: durationMinutes,
		CreatedBy:       createdBy,
		IsActive:        true,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := s.quizzes.Create(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) ListQuizzes(ctx context.Context) ([]models.Quiz, error) {
	return s.quizzes.FindAll(ctx)
}

// GetQuiz returns the quiz and its questions with correct answers stripped;
// this is the read path quiz takers see. Authoring reads go through the
// question service instead.
func (s *QuizService) GetQuiz(ctx context.Context, id string) (*models.Quiz, []models.Question, error) {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	questions, err := s.questions.FindByQuiz(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	sanitized := make([]models.Question, len(questions))
	for i, q := range questions {
		sanitized[i] = q.Sanitized()
	}
	return quiz, sanitized, nil
}

func (s *QuizService) UpdateQuiz(ctx context.Context, id, title, description string, durationMinutes int, isActive bool) (*models.Quiz, error) {
	quiz, err := s.quizzes.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	quiz.Title = title
	quiz.Description = description
	quiz.DurationMinutes = durationMinutes
	quiz.IsActive = isActive
	quiz.UpdatedAt = s.now()
	if err := s.quizzes.Update(ctx, quiz); err != nil {
		return nil, err
	}
	return quiz, nil
}

func (s *QuizService) DeleteQuiz(ctx context.Context, id string) error {
	return s.quizzes.Delete(ctx, id)
}
