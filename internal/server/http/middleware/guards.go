package middleware

import (
	"net/http"

	"github.com/cryptolink/solkit/pkg/api-toolkit/v1/model"
	"github.com/labstack/echo/v4"
	"go.uber.org/atomic"
)

// GuardsDraining responds 503 while the server is shutting down.
func GuardsDraining(draining *atomic.Bool) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if draining.Load() {
				return c.JSON(http.StatusServiceUnavailable, &model.ErrorResponse{
					Success: false,
					Error:   "server is shutting down",
				})
			}

			return next(c)
		}
	}
}
