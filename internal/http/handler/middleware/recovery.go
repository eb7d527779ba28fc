package middleware

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"
)

type RecoveryMiddleware struct {
	logs *zap.SugaredLogger
}

func NewRecoveryMiddleware(logger *zap.SugaredLogger) *RecoveryMiddleware {
	return &RecoveryMiddleware{
		logs: logger,
	}
}

// Recover turns a panic in next into a 500 response.
func (m *RecoveryMiddleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			requestId := RequestIDFrom(r.Context())
			if requestId == "" {
				requestId = w.Header().Get(RequestIDHeader)
			}
			m.logs.Errorw("panic while serving request",
				"panic", rec,
				"path", r.URL.Path,
				"request_id", requestId)

			writeError(w, http.StatusInternalServerError,
				"Request failed",
				fmt.Sprintf("unexpected failure: %v", rec))
		}()

		next.ServeHTTP(w, r)
	})
}
