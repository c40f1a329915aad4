package responses

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/milestone-mania/game-api/internal/interfaces/httpserver/middlewares"
	"github.com/milestone-mania/game-api/internal/utils/platformerrors"
)

const genericInternalMessage = "An unexpected error occurred. Please try again later."

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Timestamp     time.Time `json:"timestamp"`
	Status        int       `json:"status"`
	Error         string    `json:"error"`
	Message       string    `json:"message"`
	Path          string    `json:"path"`
	CorrelationID string    `json:"correlationId,omitempty"`
	Retryable     bool      `json:"retryable,omitempty"`
}

// HandleError maps err to a status code and writes the error body. Server side
// failures are logged with details and answered with a generic message.
func HandleError(reqCtx *gin.Context, err error, message string) {
	var platformErr *platformerrors.PlatformError
	if !errors.As(err, &platformErr) {
		platformErr = platformerrors.NewError(reqCtx.Request.Context(), platformerrors.LayerHandler,
			platformerrors.ErrorTypeInternal, message, err, "")
	}

	status := platformerrors.ErrorTypeToHTTPStatus(platformErr.GetErrorType())
	body := platformErr.Message
	if status >= http.StatusInternalServerError && status != http.StatusServiceUnavailable {
		platformerrors.LogError(*zerolog.Ctx(reqCtx.Request.Context()), platformErr)
		body = genericInternalMessage
	}

	_ = reqCtx.Error(err)
	write(reqCtx, status, body, platformerrors.IsRetryable(err))
}

// HandleValidationError answers 400 for binding failures.
func HandleValidationError(reqCtx *gin.Context, err error) {
	write(reqCtx, http.StatusBadRequest, describeValidation(err), false)
}

func write(reqCtx *gin.Context, status int, message string, retryable bool) {
	reqCtx.AbortWithStatusJSON(status, ErrorResponse{
		Timestamp:     time.Now().UTC(),
		Status:        status,
		Error:         http.StatusText(status),
		Message:       message,
		Path:          reqCtx.Request.URL.Path,
		CorrelationID: middlewares.CorrelationIDFromContext(reqCtx),
		Retryable:     retryable,
	})
}

func describeValidation(err error) string {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) {
		return "malformed request body"
	}

	parts := make([]string, 0, len(validationErrs))
	for _, fe := range validationErrs {
		parts = append(parts, describeField(fe))
	}
	return strings.Join(parts, "; ")
}

func describeField(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "len":
		return fmt.Sprintf("%s must contain exactly %s items", field, fe.Param())
	case "slug":
		return fmt.Sprintf("%s must match ^[a-zA-Z0-9-]{3,50}$", field)
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
