package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type WithdrawalHandler struct {
	service ports.WithdrawalService
}

func NewWithdrawalHandler(service ports.WithdrawalService) *WithdrawalHandler {
	return &WithdrawalHandler{service: service}
}

type withdrawalRequest struct {
	Amount json.Number `json:"amount"`
	Method string      `json:"method"`
}

func (h *WithdrawalHandler) Create(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing account context")
		return
	}

	var req withdrawalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Amount == "" || req.Method == "" {
		respondError(w, http.StatusBadRequest, "amount and method are required")
		return
	}

	withdrawal, err := h.service.Request(r.Context(), accountID, req.Amount.String(), req.Method)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrAccountNotFound):
			respondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, domain.ErrNoEarningsYet),
			errors.Is(err, domain.ErrCooldownNotElapsed),
			errors.Is(err, domain.ErrPendingWithdrawalExists),
			errors.Is(err, domain.ErrInvalidAmount),
			errors.Is(err, domain.ErrInsufficientBalance):
			respondError(w, http.StatusBadRequest, err.Error())
		default:
			respondError(w, http.StatusInternalServerError, "failed to process withdrawal request")
		}
		return
	}

	respondJSON(w, http.StatusOK, withdrawal)
}

func (h *WithdrawalHandler) List(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing account context")
		return
	}

	withdrawals, err := h.service.List(r.Context(), accountID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch withdrawals")
		return
	}

	if withdrawals == nil {
		withdrawals = []*domain.Withdrawal{}
	}
	respondJSON(w, http.StatusOK, withdrawals)
}
