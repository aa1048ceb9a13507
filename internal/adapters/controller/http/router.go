package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"golang.org/x/time/rate"

	"github.com/parkwatch/parkwatch/internal/adapters/controller/http/middleware"
)

// NewRouter wires the CRUD surface. Report submission is rate limited per
// client so a single reporter cannot flood the fan-out.
func NewRouter(h *Handler) chi.Router {
	r := chi.NewRouter()
	r.Use(chiMiddleware.RequestID)
	r.Use(chiMiddleware.Recoverer)

	limiter := middleware.NewRateLimiter(rate.Limit(2), 5)

	r.Route("/api", func(r chi.Router) {
		r.With(limiter.Limit).Post("/tickets", h.reportTicket)
		r.Get("/tickets", h.listTickets)
		r.Delete("/tickets/{id}", h.deleteTicket)

		r.Post("/parking-sessions", h.startParkingSession)
		r.Delete("/parking-sessions", h.endParkingSession)
		r.Get("/parking-sessions", h.getParkingSession)

		r.Post("/bookmarks", h.createBookmark)
		r.Delete("/bookmarks/{id}", h.deleteBookmark)
		r.Get("/bookmarks", h.listBookmarks)

		r.Put("/settings/notifications", h.updateSettings)
	})

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	return r
}
