package config

import "time"

// Supported logging backends.
const (
	LogBackendSlog = "slog"
	LogBackendZap  = "zap"
)

const defaultPort = 8080

const defaultOperationTimeout = 3 * time.Second

var defaultLog = Log{
	Backend: LogBackendSlog,
	Level:   "info",
}

var defaultRateLimit = RateLimit{
	Enabled:    true,
	Rate:       10,
	Burst:      20,
	TTL:        5 * time.Minute,
	MaxBuckets: 10000,
}

var defaultKafka = Kafka{
	EventsTopic: "booking-events",
	StatusTopic: "shipment-status",
	GroupID:     "service-booking",
	Publish: Retry{
		MaxAttempts: 4,
		BaseDelay:   150 * time.Millisecond,
		MaxDelay:    time.Second,
	},
	QueueSize: 256,
}

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultOperationTimeout returns the default per-operation timeout.
func DefaultOperationTimeout() time.Duration {
	return defaultOperationTimeout
}

// DefaultLog returns the default logging settings.
func DefaultLog() Log {
	return defaultLog
}

// DefaultRateLimit returns the default rate limit settings.
func DefaultRateLimit() RateLimit {
	return defaultRateLimit
}

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}
