package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"

	"github.com/parkwatch/parkwatch/internal/domain/dto"
	"github.com/parkwatch/parkwatch/internal/domain/entity"
)

func (h *Handler) startParkingSession(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.StartParkingSession
	if err := h.decode(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid session payload")
		return
	}

	session, err := h.sessions.Start(r.Context(), id, entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude})
	if err != nil {
		h.logger.Errorf("failed to start parking session for user %d: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "failed to start parking session")
		return
	}
	h.respond(w, http.StatusCreated, session)
}

func (h *Handler) endParkingSession(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	if err := h.sessions.End(r.Context(), id); err != nil {
		h.logger.Errorf("failed to end parking session for user %d: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "failed to end parking session")
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}

func (h *Handler) getParkingSession(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	session, err := h.sessions.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			h.respondError(w, http.StatusNotFound, "no active parking session")
			return
		}
		h.logger.Errorf("failed to get parking session for user %d: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "failed to get parking session")
		return
	}
	h.respond(w, http.StatusOK, session)
}

func (h *Handler) createBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	var req dto.CreateBookmark
	if err := h.decode(r, &req); err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid bookmark payload")
		return
	}

	bookmark, err := h.bookmarks.Create(r.Context(), id, req.Name, entity.Coordinate{Latitude: req.Latitude, Longitude: req.Longitude})
	if err != nil {
		h.logger.Errorf("failed to create bookmark for user %d: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "failed to create bookmark")
		return
	}
	h.respond(w, http.StatusCreated, bookmark)
}

func (h *Handler) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookmarkID, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, "invalid bookmark id")
		return
	}

	if err := h.bookmarks.Delete(r.Context(), uint(bookmarkID), id); err != nil {
		h.logger.Errorf("failed to delete bookmark %d for user %d: %v", bookmarkID, id, err)
		h.respondError(w, http.StatusInternalServerError, "failed to delete bookmark")
		return
	}
	h.respond(w, http.StatusNoContent, nil)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	id, ok := userID(r)
	if !ok {
		h.respondError(w, http.StatusUnauthorized, "authentication required")
		return
	}

	bookmarks, err := h.bookmarks.GetByUserID(r.Context(), id)
	if err != nil {
		h.logger.Errorf("failed to list bookmarks for user %d: %v", id, err)
		h.respondError(w, http.StatusInternalServerError, "failed to list bookmarks")
		return
	}
	h.respond(w, http.StatusOK, bookmarks)
}
