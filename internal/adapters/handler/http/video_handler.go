package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type VideoHandler struct {
	service ports.VideoService
}

func NewVideoHandler(service ports.VideoService) *VideoHandler {
	return &VideoHandler{service: service}
}

func (h *VideoHandler) ListVideos(w http.ResponseWriter, r *http.Request) {
	videos, err := h.service.List(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch videos")
		return
	}

	if videos == nil {
		videos = []*domain.Video{}
	}
	respondJSON(w, http.StatusOK, videos)
}

func (h *VideoHandler) GetVideo(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	video, err := h.service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, domain.ErrVideoNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to fetch video")
		return
	}

	respondJSON(w, http.StatusOK, video)
}
