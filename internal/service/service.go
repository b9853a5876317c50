package service

import (
	"github.com/GlebRadaev/refledger/internal/handlers/auth"
	"github.com/GlebRadaev/refledger/internal/handlers/balance"
	"github.com/GlebRadaev/refledger/internal/handlers/referral"

	pkgauth "github.com/GlebRadaev/refledger/pkg/auth"

	"github.com/GlebRadaev/refledger/internal/repo"
	authservice "github.com/GlebRadaev/refledger/internal/service/authservice"
	balanceservice "github.com/GlebRadaev/refledger/internal/service/balanceservice"
	referralservice "github.com/GlebRadaev/refledger/internal/service/referralservice"
)

type Services struct {
	AuthService     auth.Service
	ReferralService referral.Service
	BalanceService  balance.Service
}

func New(repo *repo.Repositories, strictWithdraw bool) *Services {
	referralService := referralservice.New(repo.ReferralRepo)
	balanceService := balanceservice.New(repo.BalanceRepo, repo.Withdrawal, repo.ScoreRepo, repo.TxManager, strictWithdraw)
	authService := authservice.New(
		repo.UserRepo,
		repo.SessionRepo,
		referralService,
		balanceService,
		&pkgauth.HashService{},
		repo.TxManager,
	)

	return &Services{
		AuthService:     authService,
		ReferralService: referralService,
		BalanceService:  balanceService,
	}
}
