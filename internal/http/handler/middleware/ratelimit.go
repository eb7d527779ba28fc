package middleware

import (
	"net/http"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type RateLimitMiddleware struct {
	logs    *zap.SugaredLogger
	limiter *rate.Limiter
}

// NewRateLimitMiddleware allows limit requests per second with the given burst.
func NewRateLimitMiddleware(logger *zap.SugaredLogger, limit rate.Limit, burst int) *RateLimitMiddleware {
	return &RateLimitMiddleware{
		logs:    logger,
		limiter: rate.NewLimiter(limit, burst),
	}
}

func (m *RateLimitMiddleware) Limit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !m.limiter.Allow() {
			m.logs.Warnw("request rate limited",
				"path", r.URL.Path,
				"request_id", RequestIDFrom(r.Context()))

			w.Header().Set("Retry-After", "1")
			writeError(w, http.StatusTooManyRequests,
				"Request failed",
				"too many requests")
			return
		}

		next.ServeHTTP(w, r)
	})
}
