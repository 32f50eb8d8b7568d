package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"quizhub/internal/models"
)

// In-memory stand-ins for the Mongo repositories.

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[string]*models.User{}}
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	if user.ID == "" {
		user.ID = fmt.Sprintf("user-%d", len(f.users)+1)
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, models.ErrUserNotFound
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, models.ErrUserNotFound
}

func (f *fakeUserStore) FindAll(_ context.Context) ([]models.User, error) {
	var out []models.User
	for _, u := range f.users {
		out = append(out, *u)
	}
	return out, nil
}

func (f *fakeUserStore) Update(_ context.Context, user *models.User) error {
	if _, ok := f.users[user.ID]; !ok {
		return models.ErrUserNotFound
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserStore) Deactivate(_ context.Context, id string) error {
	u, ok := f.users[id]
	if !ok {
		return models.ErrUserNotFound
	}
	u.IsActive = false
	return nil
}

type fakeQuizStore struct {
	quizzes map[string]*models.Quiz
}

func newFakeQuizStore() *fakeQuizStore {
	return &fakeQuizStore{quizzes: map[string]*models.Quiz{}}
}

func (f *fakeQuizStore) Create(_ context.Context, quiz *models.Quiz) error {
	if quiz.ID == "" {
		quiz.ID = fmt.Sprintf("quiz-%d", len(f.quizzes)+1)
	}
	cp := *quiz
	f.quizzes[quiz.ID] = &cp
	return nil
}

func (f *fakeQuizStore) FindByID(_ context.Context, id string) (*models.Quiz, error) {
	q, ok := f.quizzes[id]
	if !ok {
		return nil, models.ErrQuizNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuizStore) FindAll(_ context.Context) ([]models.Quiz, error) {
	var out []models.Quiz
	for _, q := range f.quizzes {
		if q.IsActive {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuizStore) Update(_ context.Context, quiz *models.Quiz) error {
	if _, ok := f.quizzes[quiz.ID]; !ok {
		return models.ErrQuizNotFound
	}
	cp := *quiz
	f.quizzes[quiz.ID] = &cp
	return nil
}

func (f *fakeQuizStore) Delete(_ context.Context, id string) error {
	q, ok := f.quizzes[id]
	if !ok {
		return models.ErrQuizNotFound
	}
	q.IsActive = false
	return nil
}

type fakeQuestionStore struct {
	questions map[string]*models.Question
}

func newFakeQuestionStore() *fakeQuestionStore {
	return &fakeQuestionStore{questions: map[string]*models.Question{}}
}

func (f *fakeQuestionStore) Create(_ context.Context, question *models.Question) error {
	if question.ID == "" {
		question.ID = fmt.Sprintf("question-%d", len(f.questions)+1)
	}
	cp := *question
	f.questions[question.ID] = &cp
	return nil
}

func (f *fakeQuestionStore) FindByID(_ context.Context, id string) (*models.Question, error) {
	q, ok := f.questions[id]
	if !ok {
		return nil, models.ErrQuestionNotFound
	}
	cp := *q
	return &cp, nil
}

func (f *fakeQuestionStore) FindByQuiz(_ context.Context, quizID string) ([]models.Question, error) {
	var out []models.Question
	for _, q := range f.questions {
		if q.QuizID == quizID {
			out = append(out, *q)
		}
	}
	return out, nil
}

func (f *fakeQuestionStore) Update(_ context.Context, question *models.Question) error {
	if _, ok := f.questions[question.ID]; !ok {
		return models.ErrQuestionNotFound
	}
	cp := *question
	f.questions[question.ID] = &cp
	return nil
}

func (f *fakeQuestionStore) Delete(_ context.Context, id string) error {
	if _, ok := f.questions[id]; !ok {
		return models.ErrQuestionNotFound
	}
	delete(f.questions, id)
	return nil
}

type fakeAttemptStore struct {
	attempts map[string]*models.Attempt
}

func newFakeAttemptStore() *fakeAttemptStore {
	return &fakeAttemptStore{attempts: map[string]*models.Attempt{}}
}

func (f *fakeAttemptStore) Create(_ context.Context, attempt *models.Attempt) error {
	if attempt.ID == "" {
		attempt.ID = fmt.Sprintf("attempt-%d", len(f.attempts)+1)
	}
	cp := *attempt
	f.attempts[attempt.ID] = &cp
	return nil
}

func (f *fakeAttemptStore) FindByID(_ context.Context, id string) (*models.Attempt, error) {
	a, ok := f.attempts[id]
	if !ok {
		return nil, models.ErrAttemptNotFound
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAttemptStore) SubmitPending(_ context.Context, id string, answers []models.AttemptAnswer, score int) (bool, error) {
	a, ok := f.attempts[id]
	if !ok || a.Status != models.AttemptStatusPending {
		return false, nil
	}
	a.Answers = answers
	a.Score = score
	a.Status = models.AttemptStatusSubmitted
	return true, nil
}

func (f *fakeAttemptStore) RevertSubmission(_ context.Context, id string) error {
	a, ok := f.attempts[id]
	if !ok || a.Status != models.AttemptStatusSubmitted {
		return models.ErrAttemptNotFound
	}
	a.Answers = nil
	a.Score = 0
	a.Status = models.AttemptStatusPending
	return nil
}

type fakeResultStore struct {
	results []models.Result
	err     error
}

func (f *fakeResultStore) Create(_ context.Context, result *models.Result) error {
	if f.err != nil {
		return f.err
	}
	result.ID = fmt.Sprintf("result-%d", len(f.results)+1)
	f.results = append(f.results, *result)
	return nil
}

func (f *fakeResultStore) FindByQuiz(_ context.Context, quizID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range f.results {
		if r.QuizID == quizID {
			out = append(out, r)
		}
	}
	return out, nil
}

func (f *fakeResultStore) FindByUser(_ context.Context, userID string) ([]models.Result, error) {
	var out []models.Result
	for _, r := range f.results {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakeNotificationStore struct {
	items []models.Notification
}

func (f *fakeNotificationStore) Create(_ context.Context, n *models.Notification) error {
	n.ID = fmt.Sprintf("notification-%d", len(f.items)+1)
	f.items = append(f.items, *n)
	return nil
}

func (f *fakeNotificationStore) FindByUser(_ context.Context, userID string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range f.items {
		if n.UserID == userID {
			out = append(out, n)
		}
	}
	return out, nil
}

func (f *fakeNotificationStore) MarkRead(_ context.Context, id, userID string) error {
	for i := range f.items {
		if f.items[i].ID == id && f.items[i].UserID == userID {
			f.items[i].IsRead = true
			return nil
		}
	}
	return models.ErrNotificationNotFound
}

type sentMail struct {
	to, subject, body string
}

// fakeMailer records sends and signals on a channel so tests can wait for
// the fire-and-forget goroutine.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
	err  error
	ch   chan sentMail
}

func newFakeMailer() *fakeMailer {
	return &fakeMailer{ch: make(chan sentMail, 8)}
}

func (f *fakeMailer) Send(to, subject, body string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m := sentMail{to: to, subject: subject, body: body}
	f.sent = append(f.sent, m)
	f.ch <- m
	return f.err
}

type fakeEvents struct {
	mu     sync.Mutex
	types  []string
	failed bool
}

func (f *fakeEvents) Publish(eventType string, _ any) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.types = append(f.types, eventType)
	if f.failed {
		return fmt.Errorf("broker unavailable")
	}
	return nil
}

// fakeClock makes the deadline check deterministic.
type fakeClock struct {
	current time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{current: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time { return c.current }

func (c *fakeClock) Advance(d time.Duration) { c.current = c.current.Add(d) }
