package api

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrSessionExpired is matched by responses with 401 Unauthorized status.
	ErrSessionExpired = errors.New("session expired")
	// ErrPlanLimit is matched by responses with 403 Forbidden status, user's plan or quota doesn't allow the operation.
	ErrPlanLimit = errors.New("plan limit reached")
	// ErrNotFound is matched by responses with 404 Not Found status.
	ErrNotFound = errors.New("not found")
	// ErrInvalidLogin is returned when login response doesn't contain token or user.
	ErrInvalidLogin = errors.New("login response without token or user")
)

// StatusError is returned when backend responds with non 2xx status.
type StatusError struct {
	StatusCode int
	// Message is error message sent by backend, it may be empty.
	Message string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("backend responded with status %d: %s", e.StatusCode, e.Message)
}

// Is matches status error with ErrSessionExpired, ErrPlanLimit and ErrNotFound.
func (e *StatusError) Is(target error) bool {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return target == ErrSessionExpired
	case http.StatusForbidden:
		return target == ErrPlanLimit
	case http.StatusNotFound:
		return target == ErrNotFound
	default:
		return false
	}
}
