package dto

import "github.com/SscSPs/pix_wallet/internal/apperrors"

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Error      string                `json:"error"`
	Violations []apperrors.Violation `json:"violations,omitempty"`
}
