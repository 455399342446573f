package util

import (
	"errors"
	"net/http"
)

// Kind classifies a failure crossing the service boundary.
type Kind string

const (
	InvalidCredentials Kind = "InvalidCredentials"
	NotApproved        Kind = "NotApproved"
	Forbidden          Kind = "Forbidden"
	InvalidToken       Kind = "InvalidToken"
	ExpiredToken       Kind = "ExpiredToken"
	MalformedToken     Kind = "MalformedToken"
	NotFound           Kind = "NotFound"
	DuplicateEmail     Kind = "DuplicateEmail"
	SlotConflict       Kind = "SlotConflict"
	InvalidReference   Kind = "InvalidReference"
	IntegrityFailure   Kind = "IntegrityFailure"
	InvalidInput       Kind = "InvalidInput"
	RateLimited        Kind = "RateLimited"
)

// AppError is the only error shape handed to the HTTP layer.
type AppError struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *AppError) Error() string {
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Is matches on Kind so callers can write errors.Is(err, util.E(util.NotFound, "")).
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

func E(kind Kind, message string) *AppError {
	return &AppError{Kind: kind, Message: message}
}

// Wrap keeps the cause for logging while only Message reaches the caller.
func Wrap(kind Kind, message string, err error) *AppError {
	return &AppError{Kind: kind, Message: message, Err: err}
}

// KindOf reports the Kind of err, or IntegrityFailure for anything unclassified.
func KindOf(err error) Kind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return IntegrityFailure
}

func IsKind(err error, kind Kind) bool {
	return err != nil && KindOf(err) == kind
}

var statusByKind = map[Kind]int{
	InvalidCredentials: http.StatusUnauthorized,
	InvalidToken:       http.StatusUnauthorized,
	ExpiredToken:       http.StatusUnauthorized,
	MalformedToken:     http.StatusUnauthorized,
	NotApproved:        http.StatusForbidden,
	Forbidden:          http.StatusForbidden,
	NotFound:           http.StatusNotFound,
	DuplicateEmail:     http.StatusConflict,
	SlotConflict:       http.StatusConflict,
	InvalidReference:   http.StatusBadRequest,
	InvalidInput:       http.StatusBadRequest,
	RateLimited:        http.StatusTooManyRequests,
	IntegrityFailure:   http.StatusInternalServerError,
}

func StatusFor(err error) int {
	if status, ok := statusByKind[KindOf(err)]; ok {
		return status
	}
	return http.StatusInternalServerError
}
