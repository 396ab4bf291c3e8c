package app

import (
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"rjcouriers-service-booking/internal/config"
	"rjcouriers-service-booking/internal/http/middleware/ratelimit"
	"rjcouriers-service-booking/internal/http/router"
	"rjcouriers-service-booking/internal/logx"
)

// newRateLimiter builds the per-client limiter for the public booking API.
// Probe paths are exempted later, in the middleware.
func newRateLimiter(cfg *config.Config, logger logx.Logger) ratelimit.Limiter {
	rl := cfg.RateLimit
	if !rl.Enabled {
		logger.Info("rate limiting disabled")
		return ratelimit.NopLimiter{}
	}
	logger.Info("rate limiting enabled",
		logx.Float64("rate", rl.Rate),
		logx.Int("burst", rl.Burst),
		logx.Duration("bucket_ttl", rl.TTL),
		logx.Int("max_clients", rl.MaxBuckets),
	)
	return ratelimit.NewTokenBucketLimiter(nil, ratelimit.Config{
		Rate:       rl.Rate,
		Burst:      rl.Burst,
		TTL:        rl.TTL,
		MaxBuckets: rl.MaxBuckets,
	})
}

type rateLimitIn struct {
	dig.In
	Logger   logx.Logger
	Rejected prometheus.Counter `name:"rate_limit_exceeded_total"`
	Limiter  ratelimit.Limiter
}

func newRateLimitMiddleware(in rateLimitIn) *ratelimit.Middleware {
	return ratelimit.New(in.Logger, in.Rejected, in.Limiter, router.ProbePaths...)
}
