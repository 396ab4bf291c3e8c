package logx

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFields_Constructors(t *testing.T) {
	now := time.Now()

	require.Equal(t, Field{Key: "k", Value: "v"}, String("k", "v"))
	require.Equal(t, Field{Key: "k", Value: 1}, Int("k", 1))
	require.Equal(t, Field{Key: "k", Value: int64(2)}, Int64("k", int64(2)))
	require.Equal(t, Field{Key: "k", Value: now}, Time("k", now))
	require.Equal(t, Field{Key: "k", Value: time.Second}, Duration("k", time.Second))
	require.Equal(t, Field{Key: "k", Value: struct{ A int }{A: 1}}, Any("k", struct{ A int }{A: 1}))
	require.Equal(t, Field{Key: "k", Value: 1.5}, Float64("k", 1.5))
	require.Equal(t, Field{Key: "k", Value: true}, Bool("k", true))

	boom := errors.New("boom")
	require.Equal(t, Field{Key: "err", Value: boom}, Err(boom))
}

func TestNopLogger_NoPanic(t *testing.T) {
	l := Nop()
	l.Debug("d", String("k", "v"))
	l.Info("i", Int("n", 1))
	l.Warn("w")
	l.Error("e")

	l2 := l.With(String("x", "y"))
	require.NotNil(t, l2)

	require.NoError(t, l.Sync())
	require.NoError(t, l2.Sync())
}

func TestSlogAdapter_WritesJSON(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	l.With(String("booking_id", "RJ002")).Warn("booking event not published", Err(errors.New("broker down")))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	require.Equal(t, "WARN", got["level"])
	require.Equal(t, "booking event not published", got["msg"])
	require.Equal(t, "RJ002", got["booking_id"])
	require.Equal(t, "broker down", got["err"])
}

func TestSlogAdapter_Levels(t *testing.T) {
	var buf bytes.Buffer
	l := NewSlogAdapter(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo})))

	l.Debug("hidden")
	require.Zero(t, buf.Len())

	l.Info("i", Int("n", 1))
	l.Error("e")
	out := buf.String()
	require.Contains(t, out, "level=INFO msg=i n=1")
	require.Contains(t, out, "level=ERROR msg=e")
	require.NoError(t, l.Sync())
}

func TestSlogAdapter_NilUsesDefault(t *testing.T) {
	l := NewSlogAdapter(nil)
	require.NotNil(t, l)
	require.Len(t, toSlogArgs([]Field{String("a", "b"), Int("n", 1)}), 2)
}

func TestZapAdapter_WritesFields(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	l := NewZapAdapter(zap.New(core))

	l.With(String("booking_id", "RJ004")).Info("booking created", Float64("cost", 10), Err(errors.New("boom")))
	l.Debug("d")
	l.Warn("w")
	l.Error("e")

	require.Equal(t, 4, logs.Len())
	entry := logs.All()[0]
	require.Equal(t, "booking created", entry.Message)
	ctx := entry.ContextMap()
	require.Equal(t, "RJ004", ctx["booking_id"])
	require.Equal(t, 10.0, ctx["cost"])
	require.Equal(t, "boom", ctx["err"])
}

func TestOrNop(t *testing.T) {
	require.Equal(t, Nop(), OrNop(nil))

	l := NewSlogAdapter(slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.Same(t, l, OrNop(l))

	n := OrNop(nil)
	n.Info("dropped", String("k", "v"))
	require.NoError(t, n.With(String("k", "v")).Sync())
}
