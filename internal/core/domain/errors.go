package domain

import "errors"

var (
	ErrUserNotFound = errors.New("user not found")
	ErrUserExists   = errors.New("user already exists")

	// ErrUnauthorized matches every *UnauthorizedError through errors.Is.
	ErrUnauthorized = errors.New("unauthorized")
)

// DefaultUnauthorizedMessage is used when a caller denies access without
// supplying its own message.
const DefaultUnauthorizedMessage = "Access denied. Admin role required."

// UnauthorizedError is returned at the access boundary when the caller is not
// allowed to invoke a protected operation.
type UnauthorizedError struct {
	Message string
}

// NewUnauthorized returns an UnauthorizedError carrying msg, or the default
// message when msg is empty.
func NewUnauthorized(msg string) *UnauthorizedError {
	if msg == "" {
		msg = DefaultUnauthorizedMessage
	}
	return &UnauthorizedError{Message: msg}
}

func (e *UnauthorizedError) Error() string {
	return e.Message
}

func (e *UnauthorizedError) Is(target error) bool {
	return target == ErrUnauthorized
}
