package mux

import (
	"net"
	"net/http"
	"time"

	"github.com/cryptolink/solkit/pkg/api-toolkit/v1/model"
	"github.com/gorilla/handlers"
	"github.com/rs/cors"
	"github.com/rs/zerolog/hlog"
)

const headerRequestID = "X-Request-Id"

// wrap applies middleware around the whole router, so unmatched routes
// get the same headers, request id and limits as matched ones.
func (s *Server) wrap(router http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins:       s.config.CORS.AllowOrigins,
		AllowedMethods:       []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:       []string{"Content-Type", "Accept", "Authorization"},
		MaxAge:               3600,
		OptionsSuccessStatus: http.StatusNoContent,
	})

	h := s.rateLimit(router)
	h = c.Handler(h)
	h = securityHeaders(h)
	h = hlog.AccessHandler(logAccess)(h)
	h = hlog.RequestIDHandler("request_id", headerRequestID)(h)
	h = hlog.NewHandler(*s.logger)(h)

	return handlers.ProxyHeaders(h)
}

func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("X-XSS-Protection", "1; mode=block")
		h.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")

		next.ServeHTTP(w, r)
	})
}

func logAccess(r *http.Request, status, size int, duration time.Duration) {
	hlog.FromRequest(r).Info().
		Str("method", r.Method).
		Str("uri", r.RequestURI).
		Int("status", status).
		Int("size", size).
		Dur("latency", duration).
		Msg("request")
}

// rateLimit keys token buckets by client IP. ProxyHeaders has already
// replaced RemoteAddr with the forwarded address when present.
func (s *Server) rateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		allowed, err := s.limiter.Allow(clientIP(r))
		if err != nil {
			s.writeJSON(w, http.StatusForbidden, &model.ErrorResponse{Error: "unable to identify client"})
			return
		}

		if !allowed {
			s.writeJSON(w, http.StatusTooManyRequests, &model.ErrorResponse{Error: "too many requests"})
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}

	return host
}
