package ratelimit

import (
	"io"
	"net"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"rjcouriers-service-booking/internal/logx"
)

// Middleware rejects clients that exceed their request budget with 429.
type Middleware struct {
	logger  logx.Logger
	counter prometheus.Counter
	limiter Limiter
	exempt  map[string]struct{}
}

// New creates a Middleware. Requests to exempt paths are never limited.
func New(logger logx.Logger, counter prometheus.Counter, limiter Limiter, exempt ...string) *Middleware {
	if limiter == nil {
		limiter = NopLimiter{}
	}
	logger = logx.OrNop(logger)
	m := &Middleware{
		logger:  logger,
		counter: counter,
		limiter: limiter,
		exempt:  make(map[string]struct{}, len(exempt)),
	}
	for _, p := range exempt {
		m.exempt[p] = struct{}{}
	}
	return m
}

// Handler returns chi-style middleware.
func (m *Middleware) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, ok := m.exempt[r.URL.Path]; ok {
				next.ServeHTTP(w, r)
				return
			}
			ip := clientIP(r)
			if m.limiter.Allow(ip) {
				next.ServeHTTP(w, r)
				return
			}

			if m.counter != nil {
				m.counter.Inc()
			}
			m.logger.Warn("rate limit exceeded",
				logx.String("req_id", chimw.GetReqID(r.Context())),
				logx.String("ip", ip),
				logx.String("method", r.Method),
				logx.String("path", r.URL.Path),
			)
			w.Header().Set("Content-Type", "application/json")
			w.Header().Set("Retry-After", "1")
			w.WriteHeader(http.StatusTooManyRequests)
			if _, err := io.WriteString(w, `{"error":"too many requests"}`); err != nil {
				// client went away
				m.logger.Debug("rate limit response write failed",
					logx.String("ip", ip),
					logx.Err(err),
				)
			}
		})
	}
}

// clientIP expects chi RealIP to have normalized RemoteAddr already.
func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	if r.RemoteAddr != "" {
		return r.RemoteAddr
	}
	return "unknown"
}
