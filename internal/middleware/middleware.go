package middleware

import (
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// HeaderCorrelationID carries the request correlation id in both directions.
const HeaderCorrelationID = "X-Correlation-ID"

// ContextCorrelationIDKey is the echo context key the correlation id is
// stored under.
const ContextCorrelationIDKey = "correlation_id"

// CorrelationID must wrap the entire request lifecycle: it runs before
// routing and sets the response header before any handler or error path can
// write, so no response and no log line escapes without an id. An id sent by
// the caller on the request header is propagated instead of generated.
func CorrelationID(log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cid := c.Request().Header.Get(HeaderCorrelationID)
			if cid == "" {
				cid = uuid.NewString()
			}
			c.Set(ContextCorrelationIDKey, cid)
			c.Response().Header().Set(HeaderCorrelationID, cid)

			reqLog := log.With().Str("correlation_id", cid).Logger()
			c.SetRequest(c.Request().WithContext(reqLog.WithContext(c.Request().Context())))
			return next(c)
		}
	}
}

// CorrelationIDFrom returns the id assigned by CorrelationID, or "" when the
// middleware did not run.
func CorrelationIDFrom(c echo.Context) string {
	cid, _ := c.Get(ContextCorrelationIDKey).(string)
	return cid
}

// RequestLogger emits one structured completion event per request. It logs
// through the context logger, so every event carries the correlation id.
func RequestLogger() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)
			if err != nil {
				// Let the error handler write the response first so the
				// logged status is the one actually sent.
				c.Error(err)
			}

			zerolog.Ctx(c.Request().Context()).Info().
				Str("method", c.Request().Method).
				Str("path", c.Request().URL.Path).
				Int("status", c.Response().Status).
				Int64("bytes_out", c.Response().Size).
				Dur("duration", time.Since(start)).
				Str("remote_ip", c.RealIP()).
				Str("user_agent", c.Request().UserAgent()).
				Msg("request completed")
			return nil
		}
	}
}
