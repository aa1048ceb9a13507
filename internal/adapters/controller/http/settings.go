package http

import (
	"net/http"

	"github.com/parkwatch/parkwatch/internal/domain/dto"
	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

// updateSettings handles PUT /api/settings/notifications.
func (h *Handler) updateSettings(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.UpdateNotificationSettings
	if err := h.decode(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid settings payload")
		return
	}

	updated, err := h.users.UpdateSettings(r.Context(), entity.User{
		ID:             id,
		Email:          req.Email,
		ParkingNotify:  req.ParkingNotify,
		BookmarkNotify: req.BookmarkNotify,
		RadiusMiles:    req.RadiusMiles,
	})
	if err != nil {
		h.logger.Errorf("failed to update settings for user %d: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "failed to update settings")
		return
	}
	h.respond(w, http.StatusOK, updated)
}
