package models

import "errors"

var (
	// ErrUserNotFound is returned when a user id or email resolves to nothing.
	ErrUserNotFound = errors.New("user not found")
	// ErrQuizNotFound indicates the quiz does not exist or was deleted.
	ErrQuizNotFound = errors.New("quiz not found")
	// ErrQuestionNotFound indicates a question id is invalid.
	ErrQuestionNotFound = errors.New("question not found")
	// ErrAttemptNotFound indicates the attempt was never started or belongs
	// to a different user/quiz pair.
	ErrAttemptNotFound = errors.New("quiz attempt not found")
	// ErrNotificationNotFound indicates a notification id is invalid.
	ErrNotificationNotFound = errors.New("notification not found")
	// ErrAlreadySubmitted is returned when an attempt is submitted twice.
	ErrAlreadySubmitted = errors.New("quiz attempt already submitted")
	// ErrInvalidCredentials covers both unknown email and wrong password so
	// callers cannot probe which one failed.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrUserInactive is returned when a deactivated account logs in.
	ErrUserInactive = errors.New("user is not active")
	// ErrEmailTaken is returned on registration with a known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidToken covers expired, malformed or revoked refresh tokens.
	ErrInvalidToken = errors.New("invalid or expired token")
)
