package http

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/parkwatch/parkwatch/internal/domain/dto"
	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

// heatMapWindow is how far back the pin listing for the map reaches.
const heatMapWindow = 14 * 24 * time.Hour

// reportTicket handles POST /api/tickets. Reports may be anonymous. The
// proximity fan-out runs detached; a fan-out failure never fails this
// response.
func (h *Handler) reportTicket(w http.ResponseWriter, r *http.Request) {
	var req dto.ReportTicket
	if err := h.decode(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid report payload")
		return
	}

	ticket := entity.Ticket{
		Kind:      entity.ReportKind(req.Kind),
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}
	if req.ObservedAt != nil {
		ticket.ObservedAt = *req.ObservedAt
	}
	if id, ok := userID(r); ok {
		ticket.ReporterID = &id
	}

	created, err := h.tickets.Report(r.Context(), ticket)
	if err != nil {
		h.logger.Errorf("failed to store report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "failed to store report")
		return
	}

	h.respond(w, http.StatusCreated, created)
}

// listTickets handles GET /api/tickets and feeds the heat map.
func (h *Handler) listTickets(w http.ResponseWriter, r *http.Request) {
	tickets, err := h.tickets.GetSince(r.Context(), time.Now().Add(-heatMapWindow))
	if err != nil {
		h.logger.Errorf("failed to list reports: %v", err)
		h.respondError(w, http.StatusInternalServerError, "failed to list reports")
		return
	}
	h.respond(w, http.StatusOK, tickets)
}

func (h *Handler) deleteTicket(w http.ResponseWriter, r *http.Request) {
	if _, ok := userID(r); !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.tickets.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		h.logger.Errorf("failed to delete report: %v", err)
		h.respondError(w, http.StatusInternalServerError, "failed to delete report")
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}
