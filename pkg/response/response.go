package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Stable machine-checkable failure kinds. Clients branch on these, never on
// the human-readable message.
const (
	KindValidation         = "validation_error"
	KindDuplicateEmail     = "duplicate_email"
	KindInvalidCredentials = "invalid_credentials"
	KindUnauthenticated    = "unauthenticated"
	KindInvalidToken       = "invalid_token"
	KindForbidden          = "forbidden"
	KindNotFound           = "not_found"
	KindStorageUnavailable = "storage_unavailable"
	KindInternal           = "internal_error"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Kind      string      `json:"kind,omitempty"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Meta      interface{} `json:"meta,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

// Success writes a success envelope to the client.
func Success[T any](ctx *gin.Context, status int, data T, message string, meta interface{}) {
	if status == 0 {
		status = http.StatusOK
	}
	ctx.JSON(status, APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
		Meta:      meta,
	})
}

// Fail writes a failure envelope to the client.
func Fail(ctx *gin.Context, status int, kind, message string, details interface{}) {
	ctx.JSON(status, failure(ctx, status, kind, message, details))
}

// Abort writes a failure envelope and stops the handler chain; used by middleware.
func Abort(ctx *gin.Context, status int, kind, message string) {
	ctx.AbortWithStatusJSON(status, failure(ctx, status, kind, message, nil))
}

func failure(ctx *gin.Context, status int, kind, message string, details interface{}) APIResponse[any] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[any]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Kind:      kind,
		Message:   message,
		Error:     details,
	}
}
