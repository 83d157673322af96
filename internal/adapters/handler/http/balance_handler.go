package http

import (
	"errors"
	"net/http"

	"github.com/watchearn/watchearn/internal/core/domain"
	"github.com/watchearn/watchearn/internal/core/ports"
)

type BalanceHandler struct {
	accounts    ports.AccountService
	withdrawals ports.WithdrawalService
}

func NewBalanceHandler(accounts ports.AccountService, withdrawals ports.WithdrawalService) *BalanceHandler {
	return &BalanceHandler{accounts: accounts, withdrawals: withdrawals}
}

func (h *BalanceHandler) GetBalance(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing account context")
		return
	}

	info, err := h.withdrawals.BalanceInfo(r.Context(), accountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		respondError(w, http.StatusInternalServerError, "failed to fetch balance")
		return
	}

	respondJSON(w, http.StatusOK, info)
}

func (h *BalanceHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	accountID, ok := accountIDFrom(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "missing account context")
		return
	}

	txs, err := h.accounts.Transactions(r.Context(), accountID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "failed to fetch transactions")
		return
	}

	if txs == nil {
		txs = []*domain.Transaction{}
	}
	respondJSON(w, http.StatusOK, txs)
}
