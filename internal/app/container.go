package app

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/dig"

	"rjcouriers-service-booking/internal/config"
	"rjcouriers-service-booking/internal/http/handlers"
	"rjcouriers-service-booking/internal/http/router"
	"rjcouriers-service-booking/internal/logx"
	"rjcouriers-service-booking/internal/metrics"
	"rjcouriers-service-booking/internal/repository"
	"rjcouriers-service-booking/internal/service/booking"
	"rjcouriers-service-booking/internal/service/carrier"
	"rjcouriers-service-booking/internal/transport/kafka"
)

// ContainerBuilder is a dig container builder.
type ContainerBuilder struct {
	loadConfig    func() (*config.Config, error)
	registerer    prometheus.Registerer
	dialPublisher dialPublisherFunc
	logFatalf     func(string, ...interface{})
}

// NewContainerBuilder returns a new dig container builder
func NewContainerBuilder() *ContainerBuilder {
	return &ContainerBuilder{
		loadConfig:    config.Load,
		registerer:    prometheus.DefaultRegisterer,
		dialPublisher: kafka.NewPublisher,
		logFatalf:     log.Fatalf,
	}
}

// WithConfig replaces config loading with a fixed config.
func (b *ContainerBuilder) WithConfig(cfg *config.Config) *ContainerBuilder {
	if cfg != nil {
		b.loadConfig = func() (*config.Config, error) { return cfg, nil }
	}
	return b
}

// WithRegisterer sets the Prometheus registerer for service metrics
func (b *ContainerBuilder) WithRegisterer(reg prometheus.Registerer) *ContainerBuilder {
	if reg != nil {
		b.registerer = reg
	}
	return b
}

// WithPublisherDialer sets the function that connects the Kafka event publisher
func (b *ContainerBuilder) WithPublisherDialer(fn func([]string, string) (*kafka.Publisher, error)) *ContainerBuilder {
	if fn != nil {
		b.dialPublisher = fn
	}
	return b
}

// WithLogFatalf sets the log.Fatalf function
func (b *ContainerBuilder) WithLogFatalf(fn func(string, ...interface{})) *ContainerBuilder {
	if fn != nil {
		b.logFatalf = fn
	}
	return b
}

// MustBuild builds and returns a new dig container
func (b *ContainerBuilder) MustBuild(ctx context.Context) *dig.Container {
	container, err := b.build(ctx)
	if err != nil {
		b.logFatalf("failed to build container: %v", err)
	}
	return container
}

func (b *ContainerBuilder) build(ctx context.Context) (*dig.Container, error) {
	container := dig.New()

	if err := registerCore(container, ctx, b.loadConfig, b.registerer); err != nil {
		return nil, fmt.Errorf("core: %w", err)
	}
	if err := registerStore(container); err != nil {
		return nil, fmt.Errorf("store: %w", err)
	}
	if err := registerService(container); err != nil {
		return nil, fmt.Errorf("service: %w", err)
	}
	if err := registerMessaging(container, b.dialPublisher); err != nil {
		return nil, fmt.Errorf("messaging: %w", err)
	}
	if err := registerHTTP(container); err != nil {
		return nil, fmt.Errorf("http: %w", err)
	}
	return container, nil
}

// MustBuildContainer builds and returns a new dig container
func MustBuildContainer(ctx context.Context) *dig.Container {
	return NewContainerBuilder().MustBuild(ctx)
}

func provideAll(container *dig.Container, providers ...any) error {
	for _, provider := range providers {
		if err := container.Provide(provider); err != nil {
			return fmt.Errorf("provide %T: %w", provider, err)
		}
	}
	return nil
}

func registerCore(
	container *dig.Container,
	ctx context.Context,
	loadConfig func() (*config.Config, error),
	reg prometheus.Registerer,
) error {
	return provideAll(container,
		func() context.Context { return ctx },
		loadConfig,
		NewLogger,
		func() prometheus.Registerer { return reg },
		newMetrics,
	)
}

func newBookingRepo(cfg *config.Config) *repository.BookingRepo {
	if cfg.SeedSampleData {
		return repository.NewSampleBookingRepo()
	}
	return repository.NewBookingRepo(nil, 1)
}

func registerStore(container *dig.Container) error {
	return provideAll(container, newBookingRepo)
}

func registerService(container *dig.Container) error {
	return provideAll(container,
		func(
			cfg *config.Config,
			repo *repository.BookingRepo,
			events booking.EventPublisher,
			m *metrics.Booking,
			logger logx.Logger,
		) *booking.Service {
			return booking.NewService(repo, events, m, logger, cfg.OperationTimeout)
		},
		carrier.NewProcessor,
	)
}

func registerMessaging(container *dig.Container, dial dialPublisherFunc) error {
	return provideAll(container,
		newEventPublisher(dial),
		newStatusConsumer,
	)
}

func registerHTTP(container *dig.Container) error {
	serverProvider := func(cfg *config.Config, mux http.Handler) *http.Server {
		return &http.Server{
			Addr:              fmt.Sprintf(":%d", cfg.Port),
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
			ReadTimeout:       15 * time.Second,
			WriteTimeout:      15 * time.Second,
			IdleTimeout:       60 * time.Second,
		}
	}
	return provideAll(container,
		handlers.New,
		handlers.NewBookingUsecase,
		handlers.NewBookingHandler,
		handlers.NewAdminUsecase,
		handlers.NewAdminHandler,
		newRateLimiter,
		newRateLimitMiddleware,
		router.New,
		serverProvider,
	)
}
