package http

import (
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	tbotel "github.com/Strob0t/timerbridge/internal/adapter/otel"
	"github.com/Strob0t/timerbridge/internal/config"
	"github.com/Strob0t/timerbridge/internal/middleware"
)

// NewRouter builds the webhook listener router.
func NewRouter(h *Handlers, server config.Server, serviceName string) chi.Router {
	r := chi.NewRouter()

	r.Use(tbotel.HTTPMiddleware(serviceName))
	r.Use(chimw.RealIP)
	r.Use(middleware.DeliveryID)
	r.Use(Logger)
	r.Use(chimw.Recoverer)

	r.Get("/health", h.HandleHealth)

	// GitHub webhooks (HMAC-SHA256 verified)
	r.With(middleware.WebhookHMAC(server.WebhookSecret)).
		Post("/webhooks/github", h.HandleGitHubWebhook)

	return r
}
