package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"go-jobboard-backend/internal/delivery/http/response"
	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		// Check if there are errors appended to the context
		if len(c.Errors) == 0 {
			return
		}

		err := c.Errors.Last().Err
		appErr := toAppError(err)
		if appErr.Code >= http.StatusInternalServerError {
			// Never expose internal error details to clients
			logger.Log.Error("request failed",
				zap.Error(err),
				zap.String("request_id", c.GetString(RequestIDKey)),
				zap.String("path", c.FullPath()),
			)
			response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			return
		}
		response.Error(c, appErr.Code, appErr.Message, nil)
	}
}

// toAppError maps domain sentinels onto HTTP status codes.
func toAppError(err error) *apperror.AppError {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domain.ErrInvalidCredentials):
		return apperror.Unauthorized("Invalid credentials")
	case errors.Is(err, domain.ErrEmailInUse):
		return apperror.Conflict("Email already in use")
	case errors.Is(err, domain.ErrAlreadyApplied):
		return apperror.Conflict("You have already applied to this job")
	case errors.Is(err, domain.ErrNoAccount):
		return apperror.NotFound("No account found with this email")
	case errors.Is(err, domain.ErrNotFound):
		return apperror.NotFound("Resource not found")
	}
	return apperror.Internal(err)
}
