package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"rjcouriers-service-booking/internal/http/handlers"
	appmw "rjcouriers-service-booking/internal/http/middleware"
	"rjcouriers-service-booking/internal/http/middleware/ratelimit"
)

// RequestTimeout bounds the handling time of a single request.
const RequestTimeout = 5 * time.Second

// ProbePaths are served without rate limiting.
var ProbePaths = []string{"/ping", "/healthcheck", "/metrics"}

// New constructs a chi-based http.Handler with base middleware and routes.
func New(
	h *handlers.Handlers,
	bookings *handlers.BookingHandler,
	admin *handlers.AdminHandler,
	rl *ratelimit.Middleware,
) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmw.Observability(h.Logger))
	r.Use(middleware.Recoverer)
	if rl != nil {
		r.Use(rl.Handler())
	}
	r.Use(middleware.Timeout(RequestTimeout))

	r.Get("/ping", h.Ping)
	r.Method(http.MethodHead, "/healthcheck", http.HandlerFunc(h.HealthcheckHead))
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Get("/estimate", bookings.Estimate)

	r.Route("/bookings", func(r chi.Router) {
		r.Post("/", bookings.Create)
		r.Get("/", bookings.List)
		r.Get("/payable", bookings.Payable)
		r.Get("/{id}", bookings.Get)
		r.Get("/{id}/tracking", bookings.Track)
		r.Get("/{id}/receipt", bookings.Receipt)
	})
	r.Post("/payments", bookings.Pay)

	r.Route("/admin", func(r chi.Router) {
		r.Get("/stats", admin.Stats)
		r.Patch("/bookings/{id}/status", admin.SetStatus)
	})

	r.NotFound(http.HandlerFunc(h.NotFound))
	r.MethodNotAllowed(http.HandlerFunc(h.MethodNotAllowed))

	return r
}
