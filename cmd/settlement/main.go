package main

import (
	"context"
	"database/sql"
	"log"
	"time"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/watchearn/watchearn/internal/adapters/repository/postgres"
	"github.com/watchearn/watchearn/internal/config"
	"github.com/watchearn/watchearn/internal/core/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	cfg := config.Load()

	db, err := sql.Open("postgres", cfg.DatabaseURL())
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal(err)
	}

	accountRepo := postgres.NewAccountRepository(db)
	withdrawalRepo := postgres.NewWithdrawalRepository(db)
	txRepo := postgres.NewTransactionRepository(db)

	settlementService := services.NewSettlementService(accountRepo, withdrawalRepo, txRepo)

	// Use a timeout for the job execution to prevent it from hanging indefinitely
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	log.Println("Starting withdrawal settlement job...")

	if err := settlementService.SettleAllPending(ctx); err != nil {
		log.Fatalf("Error settling withdrawals: %v", err)
	}

	log.Println("Withdrawal settlement completed successfully.")
}
