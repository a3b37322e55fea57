package errorutil

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/jackc/pgx/v5"
)

// DomainError standardizes application errors.
type DomainError struct {
	Code       string
	Message    string
	HTTPStatus int
	Details    map[string]any
	Err        error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewDomainError constructs a DomainError.
func NewDomainError(code, message string, status int, details map[string]any) *DomainError {
	return &DomainError{Code: code, Message: message, HTTPStatus: status, Details: details}
}

func NewValidationError(message string, details map[string]any) error {
	return NewDomainError("VALIDATION_FAILED", message, http.StatusBadRequest, details)
}

// NewDuplicateEnrollment signals a registration with an already-taken enrollment.
func NewDuplicateEnrollment() error {
	return NewDomainError("DUPLICATE_ENROLLMENT", "enrollment number already registered", http.StatusConflict, nil)
}

// NewAuthFailure signals a failed credential check.
func NewAuthFailure() error {
	return NewDomainError("AUTH_FAILURE", "invalid credentials", http.StatusUnauthorized, nil)
}

// NewUnauthenticated signals a missing or unknown session token.
func NewUnauthenticated() error {
	return NewDomainError("UNAUTHENTICATED", "not authenticated", http.StatusUnauthorized, nil)
}

// NewInvalidMessPass signals an order against a mess pass that does not exist.
func NewInvalidMessPass() error {
	return NewDomainError("INVALID_MESS_PASS", "invalid mess pass", http.StatusForbidden, nil)
}

// NewPreorderNotFound signals a decision against an absent preorder id.
func NewPreorderNotFound(id int64) error {
	return NewDomainError("PREORDER_NOT_FOUND", "preorder not found", http.StatusNotFound, map[string]any{"id": id})
}

// NewStudentNotFound signals a lookup miss on a write path that requires the student.
func NewStudentNotFound() error {
	return NewDomainError("STUDENT_NOT_FOUND", "student not found", http.StatusNotFound, nil)
}

// NewUnauthorized signals bad admin credentials.
func NewUnauthorized(message string) error {
	return NewDomainError("UNAUTHORIZED", message, http.StatusUnauthorized, nil)
}

// NewPersistenceFailure wraps storage errors that are not part of the taxonomy.
func NewPersistenceFailure(err error) error {
	return &DomainError{
		Code:       "PERSISTENCE_FAILURE",
		Message:    "persistence failure",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func NewInternalError(err error) error {
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

// ToDomainError converts generic errors to DomainError.
func ToDomainError(err error) *DomainError {
	if err == nil {
		return nil
	}
	var domainErr *DomainError
	if errors.As(err, &domainErr) {
		return domainErr
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return &DomainError{
			Code:       "NOT_FOUND",
			Message:    "resource not found",
			HTTPStatus: http.StatusNotFound,
		}
	}
	if de, ok := NewPersistenceFailure(err).(*DomainError); ok {
		return de
	}
	return &DomainError{
		Code:       "INTERNAL_ERROR",
		Message:    "internal server error",
		HTTPStatus: http.StatusInternalServerError,
		Err:        err,
	}
}

func MapError(err error) error {
	return ToDomainError(err)
}
