package http

import (
	"fmt"
	"net/http"
	"sync/atomic"
	"time"
)

// appMetrics holds lifetime counters exposed on /metrics.
type appMetrics struct {
	totalRequests int64
	writeRequests int64
	rateLimitHits int64
	cacheHits     int64
	cacheMisses   int64
	startedAt     time.Time
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	fmt.Fprintf(w, "# HELP http_requests_total Total number of HTTP requests\n")
	fmt.Fprintf(w, "# TYPE http_requests_total counter\n")
	fmt.Fprintf(w, "http_requests_total %d\n\n", atomic.LoadInt64(&s.metrics.totalRequests))

	fmt.Fprintf(w, "# HELP http_write_requests_total Total number of mutating HTTP requests\n")
	fmt.Fprintf(w, "# TYPE http_write_requests_total counter\n")
	fmt.Fprintf(w, "http_write_requests_total %d\n\n", atomic.LoadInt64(&s.metrics.writeRequests))

	fmt.Fprintf(w, "# HELP rate_limit_hits_total Requests rejected by the rate limiter\n")
	fmt.Fprintf(w, "# TYPE rate_limit_hits_total counter\n")
	fmt.Fprintf(w, "rate_limit_hits_total %d\n\n", atomic.LoadInt64(&s.metrics.rateLimitHits))

	fmt.Fprintf(w, "# HELP report_cache_hits_total Derived-report cache hits\n")
	fmt.Fprintf(w, "# TYPE report_cache_hits_total counter\n")
	fmt.Fprintf(w, "report_cache_hits_total %d\n\n", atomic.LoadInt64(&s.metrics.cacheHits))

	fmt.Fprintf(w, "# HELP report_cache_misses_total Derived-report cache misses\n")
	fmt.Fprintf(w, "# TYPE report_cache_misses_total counter\n")
	fmt.Fprintf(w, "report_cache_misses_total %d\n\n", atomic.LoadInt64(&s.metrics.cacheMisses))

	fmt.Fprintf(w, "# HELP report_cache_size Entries currently cached\n")
	fmt.Fprintf(w, "# TYPE report_cache_size gauge\n")
	fmt.Fprintf(w, "report_cache_size %d\n\n", s.budgetCache.Size()+s.reportCache.Size())

	fmt.Fprintf(w, "# HELP uptime_seconds Seconds since the server started\n")
	fmt.Fprintf(w, "# TYPE uptime_seconds gauge\n")
	fmt.Fprintf(w, "uptime_seconds %.0f\n", time.Since(s.metrics.startedAt).Seconds())
}

func (s *Server) recordCacheLookup(hit bool) {
	if hit {
		atomic.AddInt64(&s.metrics.cacheHits, 1)
	} else {
		atomic.AddInt64(&s.metrics.cacheMisses, 1)
	}
}
