package models

import "errors"

// Error kinds. Callers test for them with errors.Is.
var (
	ErrNotFound   = errors.New("not found")
	ErrValidation = errors.New("validation failed")
)

var (
	ErrActorNotFound       = &Error{Kind: ErrNotFound, Message: "Actor not found"}
	ErrMovieNotFound       = &Error{Kind: ErrNotFound, Message: "Movie not found"}
	ErrDateOfBirthInFuture = &Error{Kind: ErrValidation, Message: "Date of birth cannot be in the future"}
)

// Error is a domain error whose Message is safe to return to API clients.
type Error struct {
	Kind    error
	Message string
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }
