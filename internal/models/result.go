package models

import "time"

// Result is an append-only snapshot of one scored attempt. Several results
// may exist per (user, quiz) pair; the leaderboard deduplicates at read time.
type Result struct {
	ID             string    `bson:"_id,omitempty" json:"id"`
	UserID         string    `bson:"user_id" json:"user_id"`
	QuizID         string    `bson:"quiz_id" json:"quiz_id"`
	AttemptID      string    `bson:"attempt_id" json:"attempt_id"`
	Score          int       `bson:"score" json:"score"`
	TotalQuestions int       `bson:"total_questions" json:"total_questions"`
	CreatedAt      time.Time `bson:"created_at" json:"created_at"`
}

// LeaderboardEntry is one row of a quiz leaderboard: a user's best score.
type LeaderboardEntry struct {
	UserID         string    `json:"user_id"`
	UserName       string    `json:"user_name"`
	Score          int       `json:"score"`
	TotalQuestions int       `json:"total_questions"`
	AchievedAt     time.Time `json:"achieved_at"`
}

// UserResult is a result enriched with its quiz title for history views.
type UserResult struct {
	Result
	QuizTitle string `json:"quiz_title"`
}
