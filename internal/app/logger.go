package app

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"rjcouriers-service-booking/internal/config"
	"rjcouriers-service-booking/internal/logx"
)

// NewLogger builds the JSON logger selected by cfg.Log.
func NewLogger(cfg *config.Config) (logx.Logger, error) {
	switch cfg.Log.Backend {
	case config.LogBackendZap:
		return newZapLogger(cfg.Log.Level)
	case config.LogBackendSlog, "":
		return newSlogLogger(cfg.Log.Level)
	default:
		return nil, fmt.Errorf("unknown log backend %q", cfg.Log.Backend)
	}
}

func newSlogLogger(level string) (logx.Logger, error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToUpper(levelOrInfo(level)))); err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	base := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))
	return logx.NewSlogAdapter(base), nil
}

func newZapLogger(level string) (logx.Logger, error) {
	lvl, err := zapcore.ParseLevel(levelOrInfo(level))
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}
	zc := zap.NewProductionConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	zc.Encoding = "json"
	l, err := zc.Build()
	if err != nil {
		return nil, fmt.Errorf("build zap logger: %w", err)
	}
	return logx.NewZapAdapter(l), nil
}

func levelOrInfo(level string) string {
	if strings.TrimSpace(level) == "" {
		return "info"
	}
	return strings.ToLower(strings.TrimSpace(level))
}
