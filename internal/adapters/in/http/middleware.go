package http

import (
	"net/http"
	"strconv"

	"transcription/internal/core/domain/model/auth"
	"transcription/internal/core/domain/model/kernel"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	headerUserID   = "X-User-Id"
	headerUserRole = "X-User-Role"

	principalKey = "principal"
)

// PrincipalMiddleware resolves the caller identity from the gateway headers
// and stores a typed Principal in the request context. Requests without
// valid identity headers are rejected with 401 before reaching a handler.
func PrincipalMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			rawID := c.Request().Header.Get(headerUserID)
			rawRole := c.Request().Header.Get(headerUserRole)
			if rawID == "" || rawRole == "" {
				return c.JSON(http.StatusUnauthorized, Response{
					Success: false,
					Message: "missing identity headers",
				})
			}

			id, err := kernel.UUIDFromString(rawID)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Response{
					Success: false,
					Message: "invalid " + headerUserID + " header",
				})
			}

			role, err := auth.ParseRole(rawRole)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Response{
					Success: false,
					Message: "invalid " + headerUserRole + " header",
				})
			}

			principal, err := auth.NewPrincipal(id, role)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, Response{
					Success: false,
					Message: "invalid identity",
				})
			}

			c.Set(principalKey, principal)
			return next(c)
		}
	}
}

// principalFrom retrieves the Principal stored by PrincipalMiddleware.
func principalFrom(c echo.Context) auth.Principal {
	principal, _ := c.Get(principalKey).(auth.Principal)
	return principal
}

var requestsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "HTTP requests by method, route and status code.",
	},
	[]string{"method", "route", "status"},
)

// MetricsMiddleware counts every request by method, matched route and status.
func MetricsMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			status := c.Response().Status
			if err != nil {
				if httpErr, okErr := err.(*echo.HTTPError); okErr {
					status = httpErr.Code
				}
			}
			requestsTotal.WithLabelValues(
				c.Request().Method,
				c.Path(),
				strconv.Itoa(status),
			).Inc()
			return err
		}
	}
}
