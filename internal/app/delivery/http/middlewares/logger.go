package middlewares

import (
	"net/http"
	"time"

	"carelink-agent/internal/pkg/constvars"

	"go.uber.org/zap"
)

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (rec *statusRecorder) WriteHeader(code int) {
	rec.status = code
	rec.ResponseWriter.WriteHeader(code)
}

func (m *Middlewares) RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		recorder := &statusRecorder{ResponseWriter: w, status: constvars.StatusOK}

		next.ServeHTTP(recorder, r)

		requestID, _ := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
		m.Log.Info("request handled",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int(constvars.LoggingStatusCodeKey, recorder.status),
			zap.Duration("duration", time.Since(start)),
		)
	})
}
