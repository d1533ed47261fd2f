// Package middleware holds the echo middleware shared by the API and worker servers.
package middleware

import (
	"log/slog"

	deliverycontext "enginex/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// maxRequestIDLength bounds ids accepted from callers; longer ones are replaced.
const maxRequestIDLength = 128

// RequestIDMiddleware tags every request with an id, taken from X-Request-Id when the caller
// sent a usable one, and puts a logger carrying it on the request context.
type RequestIDMiddleware struct {
	logger *slog.Logger
}

func NewRequestIDMiddleware(logger *slog.Logger) *RequestIDMiddleware {
	return &RequestIDMiddleware{logger: logger}
}

func (m *RequestIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		requestID := req.Header.Get(deliverycontext.HeaderXRequestID)
		if !acceptableRequestID(requestID) {
			requestID = uuid.NewString()
		}

		deliverycontext.SetRequestID(c, requestID)
		c.Response().Header().Set(deliverycontext.HeaderXRequestID, requestID)

		ctx := deliverycontext.WithRequestID(req.Context(), requestID)
		ctx = deliverycontext.WithLogger(ctx, m.logger.With(
			slog.String("request_id", requestID),
			slog.String("method", req.Method),
			slog.String("route", c.Path()),
		))
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}

// acceptableRequestID admits printable ASCII ids of sane length, keeping caller input out of
// log lines and headers otherwise.
func acceptableRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}
