package app

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"go.uber.org/dig"

	"rjcouriers-service-booking/internal/logx"
	"rjcouriers-service-booking/internal/transport/kafka"
)

const shutdownTimeout = 15 * time.Second

// Runner runs the booking service: HTTP server plus the carrier status consumer.
type Runner struct {
	runFn  func(*dig.Container) error
	fatalf func(string, ...interface{})
}

// NewRunner returns a new Runner
func NewRunner() *Runner {
	return &Runner{runFn: run, fatalf: log.Fatalf}
}

// MustRun starts the service using the provided DI container and blocks until shutdown
func (r *Runner) MustRun(container *dig.Container) {
	err := r.runFn(container)
	if err == nil {
		return
	}

	logger := logx.Nop()
	_ = container.Invoke(func(l logx.Logger) { logger = l })

	switch {
	case errors.Is(err, context.Canceled):
		logger.Info("shutdown requested, exiting")
	case errors.Is(err, context.DeadlineExceeded):
		logger.Warn("startup aborted: startup timeout exceeded")
	default:
		logger.Error("run error", logx.Err(err))
		if r.fatalf != nil {
			r.fatalf("run error: %v", err)
		}
	}
}

func run(container *dig.Container) error {
	return container.Invoke(appRun)
}

func appRun(
	ctx context.Context,
	logger logx.Logger,
	server *http.Server,
	consumer *kafka.Consumer,
	closeProducer producerCloser,
) error {
	serveErr := startServer(server, logger)

	var wg sync.WaitGroup
	if consumer != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			logger.Info("carrier status consumer started")
			if err := consumer.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				logger.Error("carrier status consumer stopped", logx.Err(err))
			}
		}()
	}

	var err error
	select {
	case <-ctx.Done():
		logger.Info("shutting down service-booking")
		err = ctx.Err()
	case err = <-serveErr:
		logger.Error("listen error", logx.Err(err))
	}

	gracefulShutdown(server, logger, shutdownTimeout)
	if consumer != nil {
		if cerr := consumer.Close(); cerr != nil {
			logger.Error("kafka consumer close error", logx.Err(cerr))
		}
	}
	wg.Wait()
	if closeProducer != nil {
		if perr := closeProducer(); perr != nil {
			logger.Error("kafka producer close error", logx.Err(perr))
		}
	}
	_ = logger.Sync()
	return err
}

func startServer(server *http.Server, logger logx.Logger) <-chan error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("service-booking listening", logx.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()
	return errCh
}

func gracefulShutdown(srv *http.Server, logger logx.Logger, timeout time.Duration) {
	shCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	if err := srv.Shutdown(shCtx); err != nil {
		logger.Error("graceful shutdown error", logx.Err(err))
	}
}
