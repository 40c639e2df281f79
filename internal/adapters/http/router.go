package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/streamlift/campaign-service/internal/application"
)

type Handler struct {
	service *application.Service
}

func NewHandler(service *application.Service) *Handler {
	return &Handler{service: service}
}

func NewRouter(handler *Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(requestIDMiddleware)
	r.Use(recoverMiddleware)
	r.Use(loggingMiddleware(logger))

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ok") })
	r.Get("/readyz", func(w http.ResponseWriter, _ *http.Request) { writeMessage(w, http.StatusOK, "ready") })

	r.Route("/v1", func(r chi.Router) {
		r.Route("/allocations", func(r chi.Router) {
			r.Post("/plan", handler.planAllocation)
			r.Post("/validate", handler.validatePlan)
			r.Post("/commit", handler.commitPlan)
		})
		r.Get("/campaigns/{campaign_id}/allocations", handler.getCampaignAllocations)
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/playlists", handler.listPlaylists)
			r.Get("/vendors", handler.listVendors)
		})
	})
	return r
}
