package middleware

import (
	"net/http"
	"time"

	"github.com/cryptolink/solkit/pkg/api-toolkit/v1/model"
	"github.com/labstack/echo/v4"
	mw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

// NewRateLimiterStore returns token buckets keyed by client identifier.
// Idle buckets expire after 3 minutes.
func NewRateLimiterStore(perSecond float64, burst int) *mw.RateLimiterMemoryStore {
	return mw.NewRateLimiterMemoryStoreWithConfig(mw.RateLimiterMemoryStoreConfig{
		Rate:      rate.Limit(perSecond),
		Burst:     burst,
		ExpiresIn: 3 * time.Minute,
	})
}

// RateLimiter is a per client IP token bucket.
func RateLimiter(perSecond float64, burst int) echo.MiddlewareFunc {
	return mw.RateLimiterWithConfig(mw.RateLimiterConfig{
		Store: NewRateLimiterStore(perSecond, burst),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		DenyHandler: func(c echo.Context, _ string, _ error) error {
			return c.JSON(http.StatusTooManyRequests, &model.ErrorResponse{
				Success: false,
				Error:   "too many requests",
			})
		},
		ErrorHandler: func(c echo.Context, _ error) error {
			return c.JSON(http.StatusForbidden, &model.ErrorResponse{
				Success: false,
				Error:   "unable to identify client",
			})
		},
	})
}
