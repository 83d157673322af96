package main

import (
	"context"
	"database/sql"
	"errors"
	stdhttp "net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/watchearn/watchearn/internal/adapters/handler/http"
	"github.com/watchearn/watchearn/internal/adapters/repository/postgres"
	"github.com/watchearn/watchearn/internal/config"
	"github.com/watchearn/watchearn/internal/core/services"
	"github.com/watchearn/watchearn/internal/logger"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New(cfg.LogLevel)
	defer log.Sync()

	if cfg.JWTSecret == "" {
		log.Warn("JWT_SECRET not set")
	}

	// Monetary amounts go over the wire as JSON numbers, not strings.
	decimal.MarshalJSONWithoutQuotes = true

	db, err := sql.Open("postgres", cfg.DatabaseURL())
	if err != nil {
		log.Fatal("failed to open database", zap.Error(err))
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	accountRepo := postgres.NewAccountRepository(db)
	videoRepo := postgres.NewVideoRepository(db)
	voteRepo := postgres.NewVoteRepository(db)
	txRepo := postgres.NewTransactionRepository(db)
	withdrawalRepo := postgres.NewWithdrawalRepository(db)
	authRepo := postgres.NewAuthRepository(db)

	authService := services.NewAuthService(accountRepo, authRepo, cfg.JWTSecret)
	accountService := services.NewAccountService(accountRepo, txRepo)
	videoService := services.NewVideoService(videoRepo)
	voteService := services.NewVoteService(accountRepo, videoRepo, voteRepo, txRepo)
	withdrawalService := services.NewWithdrawalService(accountRepo, withdrawalRepo, txRepo)

	handler := http.NewHandler(http.RouterConfig{
		Auth:        http.NewAuthHandler(authService),
		Videos:      http.NewVideoHandler(videoService),
		Votes:       http.NewVoteHandler(voteService),
		Balance:     http.NewBalanceHandler(accountService, withdrawalService),
		Withdrawals: http.NewWithdrawalHandler(withdrawalService),
		JWTSecret:   []byte(cfg.JWTSecret),
		Logger:      log,
	})

	server := &stdhttp.Server{Addr: "0.0.0.0:" + cfg.Port, Handler: handler}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info("server starting", zap.String("port", cfg.Port))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, stdhttp.ErrServerClosed) {
			log.Fatal("server error", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("gracefully shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatal("shutdown error", zap.Error(err))
	}
}
