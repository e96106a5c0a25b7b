package handler

import (
	"net/http"
	"time"

	"github.com/NattanSilva/curd-user-and-admin/internal/metrics"
)

// Instrument records request count, status and latency for every request.
func Instrument(collector *metrics.Collector, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

		next.ServeHTTP(rec, r)

		collector.RecordRequest(r.Method, rec.status, time.Since(start))
	})
}
