package middlewares

import (
	"context"
	"net/http"

	"carelink-agent/internal/pkg/constvars"
	"carelink-agent/internal/pkg/utils"
)

// RequestID reuses the caller's X-Request-ID when present, otherwise
// generates one, and carries it in both the context and the response.
func (m *Middlewares) RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderRequestID)
		if requestID == "" {
			requestID = utils.GenerateRequestID()
		}

		w.Header().Set(constvars.HeaderRequestID, requestID)
		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
