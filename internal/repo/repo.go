package repo

import (
	balancerepo "github.com/GlebRadaev/refledger/internal/repo/balance-repo"
	referralrepo "github.com/GlebRadaev/refledger/internal/repo/referral-repo"
	sessionrepo "github.com/GlebRadaev/refledger/internal/repo/session-repo"
	userrepo "github.com/GlebRadaev/refledger/internal/repo/user-repo"
	withdrawalrepo "github.com/GlebRadaev/refledger/internal/repo/withdrawal-repo"
	"github.com/GlebRadaev/refledger/internal/service/authservice"
	"github.com/GlebRadaev/refledger/internal/service/balanceservice"
	"github.com/GlebRadaev/refledger/internal/service/referralservice"
	"github.com/GlebRadaev/refledger/internal/storage"
	"github.com/GlebRadaev/refledger/pkg/auth"
)

type Repositories struct {
	UserRepo     authservice.UserRepo
	SessionRepo  authservice.SessionRepo
	ReferralRepo referralservice.Repo
	ScoreRepo    balanceservice.ScoreRepo
	BalanceRepo  balanceservice.BalanceRepo
	Withdrawal   balanceservice.WithdrawalRepo
	TxManager    storage.TXManager
}

// New wires the in-memory stores. The referral store also serves the score
// side of conversions.
func New(txManager storage.TXManager) *Repositories {
	referralRepo := referralrepo.New()

	return &Repositories{
		UserRepo:     userrepo.New(),
		SessionRepo:  sessionrepo.New(&auth.UUIDGenerator{}),
		ReferralRepo: referralRepo,
		ScoreRepo:    referralRepo,
		BalanceRepo:  balancerepo.New(),
		Withdrawal:   withdrawalrepo.New(),
		TxManager:    txManager,
	}
}
