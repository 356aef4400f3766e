package middleware

import (
	"net/http"
	"sync/atomic"
)

// MetricsCollector counts requests, client errors and server errors.
type MetricsCollector struct {
	requests     *atomic.Int64
	clientErrors *atomic.Int64
	serverErrors *atomic.Int64
}

func NewMetricsCollector(requests, clientErrors, serverErrors *atomic.Int64) *MetricsCollector {
	return &MetricsCollector{
		requests:     requests,
		clientErrors: clientErrors,
		serverErrors: serverErrors,
	}
}

func (mc *MetricsCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mc.requests.Add(1)

		rec := newStatusRecorder(w)
		next.ServeHTTP(rec, r)

		switch {
		case rec.status >= 500:
			mc.serverErrors.Add(1)
		case rec.status >= 400:
			mc.clientErrors.Add(1)
		}
	})
}
