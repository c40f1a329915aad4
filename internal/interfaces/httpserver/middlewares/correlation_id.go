package middlewares

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/milestone-mania/game-api/internal/utils/platformerrors"
)

const (
	CorrelationIDHeader = "X-Correlation-ID"
	CorrelationIDKey    = "correlation_id"

	maxCorrelationIDLength = 128
)

// CorrelationID echoes a caller supplied X-Correlation-ID or generates one, and
// makes it available to handlers, logs and errors.
func CorrelationID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(CorrelationIDHeader))
		if id == "" || len(id) > maxCorrelationIDLength {
			id = NewCorrelationID()
		}
		c.Writer.Header().Set(CorrelationIDHeader, id)
		c.Set(CorrelationIDKey, id)
		c.Request = c.Request.WithContext(platformerrors.WithRequestID(c.Request.Context(), id))
		c.Next()
	}
}

// NewCorrelationID returns a short id of the form req-xxxxxxxx.
func NewCorrelationID() string {
	return "req-" + uuid.NewString()[:8]
}

// CorrelationIDFromContext returns the id stored by CorrelationID.
func CorrelationIDFromContext(c *gin.Context) string {
	return c.GetString(CorrelationIDKey)
}
