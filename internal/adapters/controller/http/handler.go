// Package http exposes the thin CRUD surface the map UI talks to.
// Authentication happens upstream; the gateway forwards the authenticated
// user id in the X-User-ID header.
package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"

	"github.com/parkwatch/parkwatch/internal/domain/service"
	"github.com/parkwatch/parkwatch/pkg/logger"
)

type Handler struct {
	tickets   *service.TicketService
	sessions  *service.ParkingSessionService
	bookmarks *service.BookmarkService
	users     *service.UserService

	validate *validator.Validate
	logger   *logger.Logger
}

func NewHandler(
	tickets *service.TicketService,
	sessions *service.ParkingSessionService,
	bookmarks *service.BookmarkService,
	users *service.UserService,
	log *logger.Logger,
) *Handler {
	return &Handler{
		tickets:   tickets,
		sessions:  sessions,
		bookmarks: bookmarks,
		users:     users,
		validate:  validator.New(),
		logger:    log,
	}
}

// decode unmarshals and validates a JSON request body.
func (h *Handler) decode(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return h.validate.Struct(v)
}

func (h *Handler) respond(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Errorf("failed to encode response: %v", err)
	}
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	h.respond(w, status, map[string]string{"error": message})
}

// userID extracts the authenticated user from the gateway header.
func userID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.Header.Get("X-User-ID"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
