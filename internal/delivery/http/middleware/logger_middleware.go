// Package middleware contains the Echo middleware for authentication,
// request scoping and error translation.
package middleware

import (
	"log/slog"

	deliverycontext "agromon/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// RequestScopeMiddleware tags every request with an ID and a
// request-scoped logger the service layer picks up from the context.
type RequestScopeMiddleware struct {
	logger *slog.Logger
}

// NewRequestScopeMiddleware creates a new request scope middleware.
func NewRequestScopeMiddleware(logger *slog.Logger) *RequestScopeMiddleware {
	return &RequestScopeMiddleware{logger: logger}
}

// Process extracts or generates the request ID and installs the scoped logger.
func (m *RequestScopeMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		requestID := c.Request().Header.Get(deliverycontext.HeaderXRequestID)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		reqLogger := m.logger.With(slog.String("request_id", requestID))

		ctx := c.Request().Context()
		ctx = deliverycontext.WithRequestID(ctx, requestID)
		ctx = deliverycontext.WithLogger(ctx, reqLogger)
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}
