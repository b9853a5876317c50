package handlers

import (
	"net/http"

	_ "github.com/GlebRadaev/refledger/docs"
	authhandlers "github.com/GlebRadaev/refledger/internal/handlers/auth"
	balancehandlers "github.com/GlebRadaev/refledger/internal/handlers/balance"
	referralhandlers "github.com/GlebRadaev/refledger/internal/handlers/referral"
	"github.com/GlebRadaev/refledger/internal/metrics"
	"github.com/GlebRadaev/refledger/internal/service"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"github.com/GlebRadaev/refledger/pkg/ratelimit"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	httpSwagger "github.com/swaggo/http-swagger"
)

//go:generate mockgen -source=handlers.go -destination=mock_handlers.go -package=handlers

type AuthHandler interface {
	Register(w http.ResponseWriter, r *http.Request)
	Login(w http.ResponseWriter, r *http.Request)
}

type ReferralHandler interface {
	AddReferral(w http.ResponseWriter, r *http.Request)
	RedeemReferral(w http.ResponseWriter, r *http.Request)
	GetReferrals(w http.ResponseWriter, r *http.Request)
}

type BalanceHandler interface {
	GetBalance(w http.ResponseWriter, r *http.Request)
	Withdraw(w http.ResponseWriter, r *http.Request)
	ConvertReferralToMoney(w http.ResponseWriter, r *http.Request)
	GetWithdrawals(w http.ResponseWriter, r *http.Request)
}

type Handlers struct {
	AuthHandler     AuthHandler
	ReferralHandler ReferralHandler
	BalanceHandler  BalanceHandler
	limiter         *ratelimit.Limiter
}

// New builds the handlers. A nil limiter disables rate limiting.
func New(s *service.Services, limiter *ratelimit.Limiter) *Handlers {
	return &Handlers{
		AuthHandler:     authhandlers.New(s.AuthService),
		ReferralHandler: referralhandlers.New(s.ReferralService),
		BalanceHandler:  balancehandlers.New(s.BalanceService),
		limiter:         limiter,
	}
}

func (h *Handlers) InitRoutes(r chi.Router) chi.Router {
	r.Use(
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.StripSlashes,
		metrics.Middleware,
	)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("doc.json"),
	))
	r.Handle("/metrics", metrics.Handler())

	r.Group(func(r chi.Router) {
		r.Use(h.limiter.Handler)

		r.Post("/register", h.AuthHandler.Register)
		r.Post("/auth", h.AuthHandler.Login)

		r.Group(func(r chi.Router) {
			r.Use(auth.SessionMiddleware)
			r.Post("/add-referral", h.ReferralHandler.AddReferral)
			r.Post("/redeem-referral", h.ReferralHandler.RedeemReferral)
			r.Get("/referrals", h.ReferralHandler.GetReferrals)
			r.Post("/withdraw", h.BalanceHandler.Withdraw)
			r.Post("/convert-referral-to-money", h.BalanceHandler.ConvertReferralToMoney)
			r.Get("/balance", h.BalanceHandler.GetBalance)
			r.Get("/withdrawals", h.BalanceHandler.GetWithdrawals)
		})
	})

	return r
}
