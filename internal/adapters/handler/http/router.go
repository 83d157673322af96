package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

type RouterConfig struct {
	Auth        *AuthHandler
	Videos      *VideoHandler
	Votes       *VoteHandler
	Balance     *BalanceHandler
	Withdrawals *WithdrawalHandler
	JWTSecret   []byte
	Logger      *zap.Logger
}

func NewHandler(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	if cfg.Logger != nil {
		r.Use(RequestLogger(cfg.Logger))
	}

	r.Route("/api", func(r chi.Router) {
		r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
			respondJSON(w, http.StatusOK, map[string]string{"message": "ping"})
		})

		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", cfg.Auth.Signup)
			r.Post("/login", cfg.Auth.Login)
			r.Post("/refresh", cfg.Auth.Refresh)
			r.Post("/logout", cfg.Auth.Logout)
		})

		r.Get("/videos", cfg.Videos.ListVideos)
		r.Get("/videos/{id}", cfg.Videos.GetVideo)

		// Everything below requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(Authenticator(cfg.JWTSecret))

			r.Post("/videos/{id}/vote", cfg.Votes.CastVote)
			r.Get("/daily-votes", cfg.Votes.DailyVotes)

			r.Get("/balance", cfg.Balance.GetBalance)
			r.Get("/transactions", cfg.Balance.GetTransactions)

			r.Post("/withdrawals", cfg.Withdrawals.Create)
			r.Get("/withdrawals", cfg.Withdrawals.List)
		})
	})

	return r
}
