package handlers

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/rajshah0904/Liquicity-sub002/internal/errors"
)

// Error responses
//
// SendError is for client and business errors whose code maps to a 4xx status
// (and for the few 5xx codes that carry a fixed, non-leaking message such as TRANSACTION_002).
//
// SendSystemError is for anything unexpected. The internal error is logged with the
// trace id and the client only sees the generic SYSTEM_001 message.
//
// Handlers never return echo.NewHTTPError or write error bodies with c.JSON directly.

const (
	// TraceIDContextKey is the context key for storing the trace ID
	TraceIDContextKey = "trace_id"

	// AccountIDContextKey is set by the auth middleware to the authenticated account's uuid.UUID
	AccountIDContextKey = "account_id"
)

// ErrorResponse is an alias for the standardized error response type
type ErrorResponse = errors.ErrorResponse

// getTraceID extracts the trace ID from the Echo context
func getTraceID(c echo.Context) string {
	traceID, ok := c.Get(TraceIDContextKey).(string)
	if !ok {
		return ""
	}
	return traceID
}

// SendError sends a standardized error response with trace ID from context
func SendError(c echo.Context, code errors.ErrorCode, opts ...errors.ErrorOption) error {
	traceID := getTraceID(c)
	errorResponse := errors.NewErrorResponse(code, traceID, opts...)
	return c.JSON(errorResponse.GetHTTPStatus(), errorResponse)
}

// SendSystemError wraps a system error with generic message and logs the internal error
func SendSystemError(c echo.Context, err error) error {
	traceID := getTraceID(c)
	errorResponse, internal := errors.WrapSystemError(err, traceID)

	slog.Error("internal error",
		"trace_id", traceID,
		"method", c.Request().Method,
		"path", c.Path(),
		"error", internal,
	)

	return c.JSON(http.StatusInternalServerError, errorResponse)
}
