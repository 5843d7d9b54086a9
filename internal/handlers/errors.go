package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/pix_wallet/internal/apperrors"
	"github.com/SscSPs/pix_wallet/internal/dto"
	"github.com/SscSPs/pix_wallet/internal/middleware"
	"github.com/gin-gonic/gin"
)

// contentionRetryAfter is sent with 409 responses caused by lock contention.
const contentionRetryAfter = "1"

// respondError maps a service error onto a status code and an error body.
// fallback is the message sent for unexpected failures, whose details stay in the log.
func respondError(c *gin.Context, err error, fallback string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	violations := apperrors.ViolationsOf(err)

	var appErr *apperrors.AppError
	switch {
	case errors.As(err, &appErr) && appErr.Code >= 400 && appErr.Code < 500:
		c.JSON(appErr.Code, dto.ErrorResponse{Error: appErr.Message})
	case errors.Is(err, apperrors.ErrContention):
		c.Header("Retry-After", contentionRetryAfter)
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: "Wallet is busy, please retry"})
	case errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, dto.ErrorResponse{Error: firstMessage(violations, "Resource already exists"), Violations: violations})
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, dto.ErrorResponse{Error: firstMessage(violations, "Resource not found")})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: "Validation failed", Violations: violations})
	case errors.Is(err, apperrors.ErrInsufficientBalance), errors.Is(err, apperrors.ErrBusinessRule):
		c.JSON(http.StatusUnprocessableEntity, dto.ErrorResponse{Error: firstMessage(violations, err.Error()), Violations: violations})
	case errors.Is(err, apperrors.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid username or password"})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, dto.ErrorResponse{Error: "Insufficient permissions"})
	default:
		logger.Error(fallback, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: fallback})
	}
}

func firstMessage(violations []apperrors.Violation, fallback string) string {
	if len(violations) > 0 {
		return violations[0].Message
	}
	return fallback
}

// respondBindError reports a request that could not be decoded or failed its binding tags.
func respondBindError(c *gin.Context, err error) {
	middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Failed to bind request", slog.String("error", err.Error()))
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid request format: " + err.Error()})
}
