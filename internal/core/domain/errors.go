package domain

import "errors"

var (
	ErrPollNotFound       = errors.New("poll not found")
	ErrOptionNotFound     = errors.New("option not found")
	ErrUserNotFound       = errors.New("user not found")
	ErrDuplicateVote      = errors.New("you have already voted for this option")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

// ValidationError reports a malformed or missing request field.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Field == "" {
		return e.Reason
	}
	return e.Field + ": " + e.Reason
}

func NewValidationError(field, reason string) *ValidationError {
	return &ValidationError{Field: field, Reason: reason}
}
