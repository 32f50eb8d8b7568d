package service

import (
	"context"
	"fmt"
	"log"
	"sort"
	"time"

	"quizhub/internal/models"
)

const leaderboardSize = 10

// ResultService derives durable results from completed attempts and answers
// the leaderboard and history queries. Recording has a single path: it is
// only invoked from AttemptService.SubmitAttempt.
type ResultService struct {
	results ResultStore
	users   UserStore
	quizzes QuizStore
	now     func() time.Time
}

func NewResultService(results ResultStore, users UserStore, quizzes QuizStore) *ResultService {
	return &ResultService{results: results, users: users, quizzes: quizzes, now: time.Now}
}

// Record snapshots a submitted attempt into an append-only result.
func (s *ResultService) Record(ctx context.Context, attempt *models.Attempt) (*models.Result, error) {
	result := &models.Result{
		UserID:         attempt.UserID,
		QuizID:         attempt.QuizID,
		AttemptID:      attempt.ID,
		Score:          attempt.Score,
		TotalQuestions: attempt.TotalQuestions,
		CreatedAt:      s.now(),
	}
	if err := s.results.Create(ctx, result); err != nil {
		return nil, err
	}
	return result, nil
}

// GetLeaderboard reduces all results for a quiz to the best score per user,
// ordered by score descending, at most ten entries. Equal scores rank the
// earlier result first. A quiz with no results yields an empty list.
func (s *ResultService) GetLeaderboard(ctx context.Context, quizID string) ([]models.LeaderboardEntry, error) {
	results, err := s.results.FindByQuiz(ctx, quizID)
	if err != nil {
		return nil, fmt.Errorf("loading results for quiz %s: %w", quizID, err)
	}

	best := make(map[string]models.Result)
	for _, res := range results {
		cur, seen := best[res.UserID]
		if !seen || res.Score > cur.Score ||
			(res.Score == cur.Score && res.CreatedAt.Before(cur.CreatedAt)) {
			best[res.UserID] = res
		}
	}

	entries := make([]models.LeaderboardEntry, 0, len(best))
	for userID, res := range best {
		entry := models.LeaderboardEntry{
			UserID:         userID,
			Score:          res.Score,
			TotalQuestions: res.TotalQuestions,
			AchievedAt:     res.CreatedAt,
		}
		if user, err := s.users.FindByID(ctx, userID); err == nil {
			entry.UserName = user.Name
		} else {
			log.Printf("leaderboard: resolving user %s: %v", userID, err)
		}
		entries = append(entries, entry)
	}

	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Score != entries[j].Score {
			return entries[i].Score > entries[j].Score
		}
		return entries[i].AchievedAt.Before(entries[j].AchievedAt)
	})

	if len(entries) > leaderboardSize {
		entries = entries[:leaderboardSize]
	}
	return entries, nil
}

// GetResultsByUser returns a user's result history with quiz titles resolved.
func (s *ResultService) GetResultsByUser(ctx context.Context, userID string) ([]models.UserResult, error) {
	results, err := s.results.FindByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("loading results for user %s: %w", userID, err)
	}
	history := make([]models.UserResult, 0, len(results))
	for _, res := range results {
		item := models.UserResult{Result: res}
		if quiz, err := s.quizzes.FindByID(ctx, res.QuizID); err == nil {
			item.QuizTitle = quiz.Title
		}
		history = append(history, item)
	}
	return history, nil
}
