package models

import "time"

const (
	QuestionTypeMCQ       = "MCQ"
	QuestionTypeTrueFalse = "TRUE_FALSE"
)

type Question struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	QuizID        string    `bson:"quiz_id" json:"quiz_id"`
	Text          string    `bson:"text" json:"text"`
	Options       []string  `bson:"options" json:"options"`
	CorrectAnswer string    `bson:"correct_answer" json:"correct_answer,omitempty"`
	Type          string    `bson:"type" json:"type"`
	CreatedAt     time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt     time.Time `bson:"updated_at" json:"updated_at"`
}

// Sanitized returns a copy safe to hand to a quiz taker: the correct answer
// is stripped so it never leaks through the attempt-start payload.
func (q Question) Sanitized() Question {
	q.CorrectAnswer = ""
	return q
}
