package apperrors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
// A repeated transfer idempotency key surfaces as this error.
var ErrDuplicate = errors.New("resource already exists")

// ErrInsufficientBalance indicates that a wallet cannot cover the requested amount.
var ErrInsufficientBalance = errors.New("insufficient balance")

// ErrBusinessRule indicates a request that is well formed but rejected by a business rule.
var ErrBusinessRule = errors.New("business rule violation")

// ErrContention indicates that the store could not acquire locks in time.
// Callers may retry after a backoff.
var ErrContention = errors.New("resource contention, retry later")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller lacks the role required for an action.
var ErrForbidden = errors.New("forbidden")

// ErrInternal indicates an unexpected failure.
var ErrInternal = errors.New("internal error")

// Violation is a single failed check on one field of an aggregate.
type Violation struct {
	Field   string `json:"field,omitempty"`
	Message string `json:"message"`
}

// ValidationError reports every violation found for one request or aggregate.
// It unwraps to Kind, which is ErrValidation unless a business rule produced it.
type ValidationError struct {
	Kind       error
	Violations []Violation
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Message
	}
	return fmt.Sprintf("%s: %s", e.Kind.Error(), strings.Join(msgs, "; "))
}

func (e *ValidationError) Unwrap() error {
	return e.Kind
}

// NewValidationError returns nil when violations is empty.
func NewValidationError(violations []Violation) error {
	if len(violations) == 0 {
		return nil
	}
	return &ValidationError{Kind: ErrValidation, Violations: violations}
}

// NewBusinessError wraps a single business-rule message.
func NewBusinessError(message string) error {
	return &ValidationError{Kind: ErrBusinessRule, Violations: []Violation{{Message: message}}}
}

// NewDuplicateError reports a uniqueness conflict. It unwraps to ErrDuplicate.
func NewDuplicateError(field, message string) error {
	return &ValidationError{Kind: ErrDuplicate, Violations: []Violation{{Field: field, Message: message}}}
}

// NewNotFoundError reports a missing reference with a caller-facing message.
func NewNotFoundError(field, message string) error {
	return &ValidationError{Kind: ErrNotFound, Violations: []Violation{{Field: field, Message: message}}}
}

// ViolationsOf extracts the violations carried by err, if any.
func ViolationsOf(err error) []Violation {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Violations
	}
	return nil
}

// AppError carries a status-like code alongside a wrapped cause.
type AppError struct {
	Code    int
	Message string
	Err     error
}

// NewAppError creates an AppError.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Err: err}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %v", e.Message, e.Err)
}

func (e *AppError) Unwrap() error {
	return e.Err
}
