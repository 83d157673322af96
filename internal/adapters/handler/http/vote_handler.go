package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type VoteHandler struct {
	service ports.VoteService
}

func NewVoteHandler(service ports.VoteService) *VoteHandler {
	return &VoteHandler{service: service}
}

type voteRequest struct {
	VoteType string `json:"voteType"`
}

type dailyLimitResponse struct {
	Error               string `json:"error"`
	DailyVotesRemaining int    `json:"dailyVotesRemaining"`
}

func (h *VoteHandler) CastVote(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing account context")
		return
	}

	videoID := chi.URLParam(r, "id")

	var req voteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.service.CastVote(r.Context(), accountID, videoID, req.VoteType)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidVoteType):
			respondError(w, http.StatusBadRequest, err.Error())
		case errors.Is(err, domain.ErrVideoNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrAccountNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrDailyLimitExceeded):
			respondJSON(w, http.StatusBadRequest, dailyLimitResponse{
				Error:               err.Error(),
				DailyVotesRemaining: 0,
			})
		default:
			respondError(w, http.StatusInternalServerError, "failed to process vote")
		}
		return
	}

	respondJSON(w, http.StatusOK, result)
}

func (h *VoteHandler) DailyVotes(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing account context")
		return
	}

	votes, err := h.service.DailyVotes(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to fetch daily votes")
		return
	}

	respondJSON(w, http.StatusOK, votes)
}
