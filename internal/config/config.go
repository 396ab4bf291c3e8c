package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// Config stores service settings.
type Config struct {
	Port             int
	OperationTimeout time.Duration
	SeedSampleData   bool
	Log              Log
	RateLimit        RateLimit
	Kafka            Kafka
}

// Log selects the logging backend.
type Log struct {
	Backend string // slog or zap
	Level   string // debug, info, warn, error
}

// RateLimit stores per-client token bucket settings.
type RateLimit struct {
	Enabled    bool
	Rate       float64
	Burst      int
	TTL        time.Duration
	MaxBuckets int
}

// Kafka stores broker settings. Empty Brokers disables messaging.
type Kafka struct {
	Brokers     []string
	EventsTopic string
	StatusTopic string
	GroupID     string
	Publish     Retry
	// QueueSize bounds the events waiting to be published.
	QueueSize int
}

// Retry describes publish retry behaviour.
type Retry struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
}

// Enabled reports whether brokers are configured.
func (k Kafka) Enabled() bool { return len(k.Brokers) > 0 }

// Load reads configuration in order: .env (if present) → environment → flags.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: .env not loaded: %v", err)
	}

	cfg := &Config{
		Port:             DefaultPort(),
		OperationTimeout: DefaultOperationTimeout(),
		SeedSampleData:   true,
		Log:              DefaultLog(),
		RateLimit:        DefaultRateLimit(),
		Kafka:            DefaultKafka(),
	}

	var err error
	if cfg.Port, err = envInt("PORT", cfg.Port); err != nil {
		return nil, err
	}
	if cfg.OperationTimeout, err = envDuration("OPERATION_TIMEOUT", cfg.OperationTimeout); err != nil {
		return nil, err
	}
	if cfg.SeedSampleData, err = envBool("SEED_SAMPLE_DATA", cfg.SeedSampleData); err != nil {
		return nil, err
	}
	cfg.Log.Backend = envString("LOG_BACKEND", cfg.Log.Backend)
	cfg.Log.Level = envString("LOG_LEVEL", cfg.Log.Level)

	if err := loadRateLimit(&cfg.RateLimit); err != nil {
		return nil, err
	}
	if err := loadKafka(&cfg.Kafka); err != nil {
		return nil, err
	}

	pflag.IntVarP(&cfg.Port, "port", "p", cfg.Port, "port to listen on")
	pflag.StringVar(&cfg.Log.Backend, "log-backend", cfg.Log.Backend, "logging backend: slog or zap")
	pflag.StringVar(&cfg.Log.Level, "log-level", cfg.Log.Level, "log level")
	pflag.BoolVar(&cfg.SeedSampleData, "seed", cfg.SeedSampleData, "start with sample bookings")
	pflag.Parse()

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func loadRateLimit(rl *RateLimit) error {
	var err error
	if rl.Enabled, err = envBool("RATE_LIMIT_ENABLED", rl.Enabled); err != nil {
		return err
	}
	if rl.Rate, err = envFloat("RATE_LIMIT_RATE", rl.Rate); err != nil {
		return err
	}
	if rl.Burst, err = envInt("RATE_LIMIT_BURST", rl.Burst); err != nil {
		return err
	}
	if rl.TTL, err = envDuration("RATE_LIMIT_TTL", rl.TTL); err != nil {
		return err
	}
	if rl.MaxBuckets, err = envInt("RATE_LIMIT_MAX_BUCKETS", rl.MaxBuckets); err != nil {
		return err
	}
	return nil
}

func loadKafka(k *Kafka) error {
	if v := os.Getenv("KAFKA_BROKERS"); v != "" {
		k.Brokers = splitList(v)
	}
	k.EventsTopic = envString("KAFKA_EVENTS_TOPIC", k.EventsTopic)
	k.StatusTopic = envString("KAFKA_STATUS_TOPIC", k.StatusTopic)
	k.GroupID = envString("KAFKA_GROUP_ID", k.GroupID)

	var err error
	if k.Publish.MaxAttempts, err = envInt("KAFKA_PUBLISH_MAX_ATTEMPTS", k.Publish.MaxAttempts); err != nil {
		return err
	}
	if k.Publish.BaseDelay, err = envDuration("KAFKA_PUBLISH_BASE_DELAY", k.Publish.BaseDelay); err != nil {
		return err
	}
	if k.Publish.MaxDelay, err = envDuration("KAFKA_PUBLISH_MAX_DELAY", k.Publish.MaxDelay); err != nil {
		return err
	}
	if k.QueueSize, err = envInt("KAFKA_PUBLISH_QUEUE_SIZE", k.QueueSize); err != nil {
		return err
	}
	return nil
}

func (c *Config) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port: %d", c.Port)
	}
	if c.OperationTimeout <= 0 {
		return fmt.Errorf("invalid operation timeout: %s", c.OperationTimeout)
	}
	switch c.Log.Backend {
	case LogBackendSlog, LogBackendZap:
	default:
		return fmt.Errorf("invalid log backend: %q", c.Log.Backend)
	}
	if c.Kafka.Publish.MaxAttempts <= 0 {
		return fmt.Errorf("invalid publish max attempts: %d", c.Kafka.Publish.MaxAttempts)
	}
	if c.Kafka.QueueSize <= 0 {
		return fmt.Errorf("invalid publish queue size: %d", c.Kafka.QueueSize)
	}
	return nil
}

func envString(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) (int, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func envFloat(key string, def float64) (float64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return f, nil
}

func envBool(key string, def bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return d, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
