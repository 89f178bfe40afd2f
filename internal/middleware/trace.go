package middleware

import (
	"mixMaster/business/mixer"

	"github.com/labstack/echo/v4"
)

// TraceContext copies the request id set by echo's RequestID middleware into
// the request context so services can log it as trace_id. It must run after
// RequestID.
func TraceContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rid := c.Response().Header().Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Request().Header.Get(echo.HeaderXRequestID)
			}
			if rid != "" {
				req := c.Request()
				c.SetRequest(req.WithContext(mixer.WithTraceID(req.Context(), rid)))
			}
			return next(c)
		}
	}
}
