package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
	mw "github.com/labstack/echo/v4/middleware"
)

// SecurityHeaders sets hardening headers on every response, errors included.
// HSTS is sent regardless of scheme: TLS is expected to end at the proxy.
func SecurityHeaders() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			h := c.Response().Header()
			h.Set(echo.HeaderXContentTypeOptions, "nosniff")
			h.Set(echo.HeaderXFrameOptions, "DENY")
			h.Set(echo.HeaderXXSSProtection, "1; mode=block")
			h.Set(echo.HeaderStrictTransportSecurity, "max-age=31536000; includeSubDomains")

			return next(c)
		}
	}
}

// CORS ignores requests without Origin so that bare OPTIONS reach route handlers.
func CORS(allowOrigins []string) echo.MiddlewareFunc {
	return mw.CORSWithConfig(mw.CORSConfig{
		Skipper: func(c echo.Context) bool {
			return c.Request().Header.Get(echo.HeaderOrigin) == ""
		},
		AllowOrigins: allowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
		MaxAge:       3600,
	})
}
