package models

import "testing"

func TestQuestionSanitized(t *testing.T) {
	q := Question{
		ID:            "q1",
		QuizID:        "quiz1",
		Text:          "What is 2+2?",
		Options:       []string{"3", "4"},
		CorrectAnswer: "4",
		Type:          QuestionTypeMCQ,
	}

	s := q.Sanitized()
	if s.CorrectAnswer != "" {
		t.Errorf("sanitized question still carries the answer %q", s.CorrectAnswer)
	}
	if s.ID != q.ID || s.Text != q.Text || len(s.Options) != 2 {
		t.Errorf("sanitizing dropped fields: %+v", s)
	}
	if q.CorrectAnswer != "4" {
		t.Error("Sanitized mutated the original question")
	}
}
