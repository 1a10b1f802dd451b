package events

import "errors"

var (
	ErrUnauthenticated = errors.New("not authenticated")
	ErrNotFound        = errors.New("event not found")
	ErrUnauthorized    = errors.New("not authorized")
	ErrInvalidInput    = errors.New("invalid input")
)
