package models

import "time"

const (
	AttemptStatusPending   = "pending"
	AttemptStatusSubmitted = "submitted"
)

type AttemptAnswer struct {
	QuestionID     string `bson:"question_id" json:"question_id"`
	SelectedOption string `bson:"selected_option" json:"selected_option"`
}

// Attempt is a single user's timed pass at a quiz. It is created pending with
// no answers, and mutated exactly once at submission. DurationMinutes and
// TotalQuestions are copied from the quiz at creation time so later edits to
// the quiz cannot change the rules of a running attempt.
type Attempt struct {
	ID              string          `bson:"_id,omitempty" json:"id"`
	UserID          string          `bson:"user_id" json:"user_id"`
	QuizID          string          `bson:"quiz_id" json:"quiz_id"`
	Answers         []AttemptAnswer `bson:"answers" json:"answers"`
	Score           int             `bson:"score" json:"score"`
	TotalQuestions  int             `bson:"total_questions" json:"total_questions"`
	StartTime       time.Time       `bson:"start_time" json:"start_time"`
	DurationMinutes int             `bson:"duration_minutes" json:"duration_minutes"`
	Status          string          `bson:"status" json:"status"`
	CreatedAt       time.Time       `bson:"created_at" json:"created_at"`
}

func (a *Attempt) Deadline() time.Time {
	return a.StartTime.Add(time.Duration(a.DurationMinutes) * time.Minute)
}

// IsLate reports whether a submission at the given instant misses the
// deadline. The deadline itself is still on time.
func (a *Attempt) IsLate(now time.Time) bool {
	return now.After(a.Deadline())
}
