package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithdrawal(t *testing.T, app *TestApp, token string, amount, method string) *http.Response {
	t.Helper()

	body, _ := json.Marshal(map[string]any{"amount": json.RawMessage(amount), "method": method})
	req, err := http.NewRequest("POST", app.Server.URL+"/api/withdrawals", bytes.NewReader(body))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := app.Client.Do(req)
	require.NoError(t, err)
	return resp
}

type balanceResponse struct {
	User struct {
		ID      string      `json:"id"`
		Balance json.Number `json:"balance"`
	} `json:"user"`
	DaysUntilWithdrawal int             `json:"daysUntilWithdrawal"`
	WithdrawalEligible  bool            `json:"withdrawalEligible"`
	PendingWithdrawal   json.RawMessage `json:"pendingWithdrawal"`
}

func getBalance(t *testing.T, app *TestApp, token string) balanceResponse {
	t.Helper()

	resp := getAuthed(t, app, token, "/api/balance")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var info balanceResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&info))
	resp.Body.Close()
	return info
}

func TestWithdrawalRequiresEarnings(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	_, token := app.createAccountAndToken(t)

	info := getBalance(t, app, token)
	assert.Equal(t, 20, info.DaysUntilWithdrawal)
	assert.False(t, info.WithdrawalEligible)

	resp := requestWithdrawal(t, app, token, "50.00", "pix")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestWithdrawalCooldown(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	accountID, token := app.createAccountAndToken(t)

	// First reward 5 days ago: still 15 days to go.
	_, err := app.DB.Exec(
		"UPDATE accounts SET first_earn_at = NOW() - INTERVAL '5 days' WHERE id = $1",
		accountID,
	)
	require.NoError(t, err)

	info := getBalance(t, app, token)
	assert.Equal(t, 15, info.DaysUntilWithdrawal)
	assert.False(t, info.WithdrawalEligible)

	resp := requestWithdrawal(t, app, token, "50.00", "pix")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestWithdrawalFlow(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	accountID, token := app.createAccountAndToken(t)
	app.markEligible(t, accountID)

	info := getBalance(t, app, token)
	assert.Equal(t, 0, info.DaysUntilWithdrawal)
	assert.True(t, info.WithdrawalEligible)
	assert.Equal(t, "null", string(info.PendingWithdrawal))

	// 1. Request a withdrawal
	resp := requestWithdrawal(t, app, token, "50.00", "pix")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var withdrawal struct {
		ID     string      `json:"id"`
		Amount json.Number `json:"amount"`
		Status string      `json:"status"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&withdrawal))
	resp.Body.Close()
	assert.Equal(t, "pending", withdrawal.Status)
	assert.Equal(t, "50.00", withdrawal.Amount.String())

	// 2. The balance is untouched and the pending withdrawal is projected
	info = getBalance(t, app, token)
	assert.Equal(t, "213.19", info.User.Balance.String())
	assert.NotEqual(t, "null", string(info.PendingWithdrawal))

	// 3. A second request is rejected while one is pending
	resp = requestWithdrawal(t, app, token, "10.00", "pix")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()

	// 4. Settlement completes it and debits the balance
	require.NoError(t, app.SettlementSvc.SettleAllPending(context.Background()))

	info = getBalance(t, app, token)
	assert.Equal(t, "163.19", info.User.Balance.String())
	assert.Equal(t, "null", string(info.PendingWithdrawal))

	resp = getAuthed(t, app, token, "/api/withdrawals")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var withdrawals []struct {
		ID          string `json:"id"`
		Status      string `json:"status"`
		ProcessedAt any    `json:"processedAt"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&withdrawals))
	resp.Body.Close()
	require.Len(t, withdrawals, 1)
	assert.Equal(t, "completed", withdrawals[0].Status)
	assert.NotNil(t, withdrawals[0].ProcessedAt)

	// 5. A new request can follow once the previous one settled
	resp = requestWithdrawal(t, app, token, "10.00", "pix")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()
}

func TestWithdrawalRejectedOnInsufficientBalance(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	accountID, token := app.createAccountAndToken(t)
	app.markEligible(t, accountID)

	resp := requestWithdrawal(t, app, token, "9999.00", "pix")
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var errResp map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	resp.Body.Close()
	assert.Contains(t, errResp["error"], "insufficient")
}

func TestWithdrawalInvalidAmounts(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	app := setupTestApp(t)
	defer app.Teardown(t)

	accountID, token := app.createAccountAndToken(t)
	app.markEligible(t, accountID)

	for _, amount := range []string{"0", "-5"} {
		resp := requestWithdrawal(t, app, token, amount, "pix")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, fmt.Sprintf("amount %s", amount))
		resp.Body.Close()
	}
}
