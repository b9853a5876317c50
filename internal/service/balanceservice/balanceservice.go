package balanceservice

import (
	"context"
	"math"
	"time"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/metrics"
	"github.com/GlebRadaev/refledger/internal/storage"
	"go.uber.org/zap"
)

//go:generate mockgen -source=balanceservice.go -destination=mock_balanceservice.go -package=balanceservice

type BalanceRepo interface {
	GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error)
	CreateBalance(ctx context.Context, sessionID string) (*domain.Balance, error)
	Debit(ctx context.Context, sessionID string, amount float64) (*domain.Balance, error)
	Credit(ctx context.Context, sessionID string, amount float64) (*domain.Balance, error)
}

type WithdrawalRepo interface {
	CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error)
	GetWithdrawalsBySessionID(ctx context.Context, sessionID string) ([]domain.Withdrawal, error)
}

type ScoreRepo interface {
	DrainScore(ctx context.Context, sessionID string) (int, error)
}

type Service struct {
	balanceRepo    BalanceRepo
	withdrawalRepo WithdrawalRepo
	scoreRepo      ScoreRepo
	txManager      storage.TXManager
	strict         bool
}

// New builds the balance service. In strict mode withdrawals of non-positive
// or non-finite amounts are rejected.
func New(
	balanceRepo BalanceRepo,
	withdrawalRepo WithdrawalRepo,
	scoreRepo ScoreRepo,
	txManager storage.TXManager,
	strict bool,
) *Service {
	return &Service{
		balanceRepo:    balanceRepo,
		withdrawalRepo: withdrawalRepo,
		scoreRepo:      scoreRepo,
		txManager:      txManager,
		strict:         strict,
	}
}

func (s *Service) GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.GetBalance(ctx, sessionID)
	if err != nil {
		zap.L().Info("failed to get balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

// CreateBalance never starts a unit of work, so registration can call it
// from inside its own.
func (s *Service) CreateBalance(ctx context.Context, sessionID string) (*domain.Balance, error) {
	balance, err := s.balanceRepo.CreateBalance(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to create balance", zap.Error(err))
		return nil, err
	}
	return balance, nil
}

func (s *Service) Withdraw(ctx context.Context, sessionID string, amount float64) (*domain.Balance, error) {
	if s.strict && (amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0)) {
		metrics.RecordOperation(metrics.OpWithdraw, domain.ErrInvalidAmount)
		zap.L().Info("invalid withdrawal amount", zap.Float64("amount", amount))
		return nil, domain.ErrInvalidAmount
	}

	var balance *domain.Balance
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		current, err := s.balanceRepo.GetBalance(ctx, sessionID)
		if err != nil {
			zap.L().Info("failed to get balance", zap.Error(err))
			return err
		}
		if amount > current.Current {
			return domain.ErrInsufficientBalance
		}

		balance, err = s.balanceRepo.Debit(ctx, sessionID, amount)
		if err != nil {
			zap.L().Error("failed to debit balance", zap.Error(err))
			return err
		}

		_, err = s.withdrawalRepo.CreateWithdrawal(ctx, &domain.Withdrawal{
			SessionID:   sessionID,
			Amount:      amount,
			ProcessedAt: time.Now(),
		})
		if err != nil {
			zap.L().Error("failed to create withdrawal record", zap.Error(err))
			return err
		}
		return nil
	})
	metrics.RecordOperation(metrics.OpWithdraw, err)
	if err != nil {
		return nil, err
	}

	metrics.AddWithdrawn(amount)
	zap.L().Info("withdrawal processed",
		zap.String("session_id", sessionID),
		zap.Float64("amount", amount),
		zap.Float64("new_balance", balance.Current),
	)
	return balance, nil
}

// ConvertReferralToMoney credits score × ReferralUnitRate and resets the
// score. A zero score leaves the balance unchanged.
func (s *Service) ConvertReferralToMoney(ctx context.Context, sessionID string) (*domain.Balance, error) {
	var (
		balance *domain.Balance
		credit  float64
	)
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		if _, err := s.balanceRepo.GetBalance(ctx, sessionID); err != nil {
			zap.L().Info("failed to get balance", zap.Error(err))
			return err
		}

		score, err := s.scoreRepo.DrainScore(ctx, sessionID)
		if err != nil {
			zap.L().Info("failed to drain referral score", zap.Error(err))
			return err
		}

		credit = float64(score * domain.ReferralUnitRate)
		balance, err = s.balanceRepo.Credit(ctx, sessionID, credit)
		if err != nil {
			zap.L().Error("failed to credit balance", zap.Error(err))
			return err
		}
		return nil
	})
	metrics.RecordOperation(metrics.OpConvertReferral, err)
	if err != nil {
		return nil, err
	}

	metrics.AddReferralCredit(credit)
	zap.L().Info("referral score converted",
		zap.String("session_id", sessionID),
		zap.Float64("credit", credit),
	)
	return balance, nil
}

func (s *Service) GetWithdrawals(ctx context.Context, sessionID string) ([]domain.Withdrawal, error) {
	if _, err := s.balanceRepo.GetBalance(ctx, sessionID); err != nil {
		zap.L().Info("failed to get balance", zap.Error(err))
		return nil, err
	}

	withdrawals, err := s.withdrawalRepo.GetWithdrawalsBySessionID(ctx, sessionID)
	if err != nil {
		zap.L().Error("failed to get withdrawals", zap.Error(err))
		return nil, err
	}
	return withdrawals, nil
}
