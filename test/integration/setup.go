package integration

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	handler "github.com/watchearn/watchearn/internal/adapters/handler/http"
	repo "github.com/watchearn/watchearn/internal/adapters/repository/postgres"
	"github.com/watchearn/watchearn/internal/core/ports"
	"github.com/watchearn/watchearn/internal/core/services"
)

const testJWTSecret = "test-secret"

type TestApp struct {
	DB            *sql.DB
	Server        *httptest.Server
	Client        *http.Client
	SettlementSvc ports.SettlementService
	DBContainer   testcontainers.Container
}

func setupPostgresContainer(ctx context.Context) (testcontainers.Container, string, error) {
	dbName := "testdb"
	user := "user"
	password := "password"

	pgContainer, err := postgres.Run(ctx, "postgres:15-alpine",
		postgres.WithDatabase(dbName),
		postgres.WithUsername(user),
		postgres.WithPassword(password),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(5*time.Second),
		),
	)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start postgres container: %w", err)
	}

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return nil, "", err
	}

	return pgContainer, connStr, nil
}

func applyMigrations(db *sql.DB) error {
	dirPath := "../../internal/adapters/repository/postgres/migrations"

	entries, err := os.ReadDir(dirPath)
	if err != nil {
		return fmt.Errorf("failed to read migrations directory: %w", err)
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}

		if !strings.HasSuffix(entry.Name(), "up.sql") {
			continue
		}

		fullPath := filepath.Join(dirPath, entry.Name())
		content, err := os.ReadFile(fullPath)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", entry.Name(), err)
		}

		_, err = db.Exec(string(content))
		if err != nil {
			return fmt.Errorf("failed to execute migration %s: %w", entry.Name(), err)
		}
	}

	return nil
}

func setupTestApp(t *testing.T) *TestApp {
	decimal.MarshalJSONWithoutQuotes = true

	ctx := context.Background()
	dbContainer, dbURL, err := setupPostgresContainer(ctx)
	require.NoError(t, err)

	db, err := sql.Open("postgres", dbURL)
	require.NoError(t, err)

	err = applyMigrations(db)
	require.NoError(t, err)

	accountRepo := repo.NewAccountRepository(db)
	videoRepo := repo.NewVideoRepository(db)
	voteRepo := repo.NewVoteRepository(db)
	txRepo := repo.NewTransactionRepository(db)
	withdrawalRepo := repo.NewWithdrawalRepository(db)
	authRepo := repo.NewAuthRepository(db)

	authSvc := services.NewAuthService(accountRepo, authRepo, testJWTSecret)
	videoSvc := services.NewVideoService(videoRepo)
	voteSvc := services.NewVoteService(accountRepo, videoRepo, voteRepo, txRepo)
	accountSvc := services.NewAccountService(accountRepo, txRepo)
	withdrawalSvc := services.NewWithdrawalService(accountRepo, withdrawalRepo, txRepo)
	settlementSvc := services.NewSettlementService(accountRepo, withdrawalRepo, txRepo)

	router := handler.NewHandler(handler.RouterConfig{
		Auth:        handler.NewAuthHandler(authSvc),
		Videos:      handler.NewVideoHandler(videoSvc),
		Votes:       handler.NewVoteHandler(voteSvc),
		Balance:     handler.NewBalanceHandler(accountSvc, withdrawalSvc),
		Withdrawals: handler.NewWithdrawalHandler(withdrawalSvc),
		JWTSecret:   []byte(testJWTSecret),
	})

	server := httptest.NewServer(router)

	return &TestApp{
		DB:            db,
		Server:        server,
		Client:        server.Client(),
		SettlementSvc: settlementSvc,
		DBContainer:   dbContainer,
	}
}

// createAccountAndToken inserts an account directly and signs an access token
// for it, skipping the signup endpoint.
func (app *TestApp) createAccountAndToken(t *testing.T) (uuid.UUID, string) {
	t.Helper()

	accountID := uuid.New()
	email := fmt.Sprintf("account-%s@example.com", accountID)
	name := fmt.Sprintf("Account %s", accountID)
	_, err := app.DB.Exec(
		"INSERT INTO accounts (id, name, email, balance) VALUES ($1, $2, $3, $4)",
		accountID, name, email, "213.19",
	)
	require.NoError(t, err)

	claims := jwt.MapClaims{
		"sub":   accountID.String(),
		"email": email,
		"exp":   time.Now().Add(15 * time.Minute).Unix(),
		"iat":   time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString([]byte(testJWTSecret))
	require.NoError(t, err)
	return accountID, signedToken
}

// markEligible backdates first_earn_at far enough for the withdrawal cooldown
// to have elapsed.
func (app *TestApp) markEligible(t *testing.T, accountID uuid.UUID) {
	t.Helper()

	_, err := app.DB.Exec(
		"UPDATE accounts SET first_earn_at = NOW() - INTERVAL '21 days' WHERE id = $1",
		accountID,
	)
	require.NoError(t, err)
}

func (app *TestApp) Teardown(t *testing.T) {
	app.Server.Close()
	app.DB.Close()
	if err := app.DBContainer.Terminate(context.Background()); err != nil {
		t.Logf("failed to terminate container: %v", err)
	}
}
