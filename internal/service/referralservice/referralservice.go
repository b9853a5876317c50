package referralservice

import (
	"context"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/metrics"
	"go.uber.org/zap"
)

//go:generate mockgen -source=referralservice.go -destination=mock_referralservice.go -package=referralservice

type Repo interface {
	Open(ctx context.Context, sessionID string) error
	Add(ctx context.Context, sessionID, code string) error
	Redeem(ctx context.Context, requesterID, code string) (string, error)
	Get(ctx context.Context, sessionID string) (*domain.Referrals, error)
}

type Service struct {
	repo Repo
}

func New(repo Repo) *Service {
	return &Service{
		repo: repo,
	}
}

func (s *Service) OpenLedger(ctx context.Context, sessionID string) error {
	if err := s.repo.Open(ctx, sessionID); err != nil {
		zap.L().Error("can't open referral ledger", zap.Error(err))
		return err
	}
	return nil
}

func (s *Service) AddReferral(ctx context.Context, sessionID, code string) error {
	err := s.repo.Add(ctx, sessionID, code)
	metrics.RecordOperation(metrics.OpAddReferral, err)
	if err != nil {
		zap.L().Info("can't add referral", zap.Error(err))
		return err
	}
	return nil
}

// RedeemReferral credits the calling session even when the code was pending
// on another session's list.
func (s *Service) RedeemReferral(ctx context.Context, sessionID, code string) error {
	ownerID, err := s.repo.Redeem(ctx, sessionID, code)
	metrics.RecordOperation(metrics.OpRedeemReferral, err)
	if err != nil {
		zap.L().Info("can't redeem referral", zap.Error(err))
		return err
	}
	if ownerID != sessionID {
		zap.L().Info("referral redeemed from another session's list",
			zap.String("owner_session_id", ownerID),
			zap.String("session_id", sessionID),
		)
	}
	return nil
}

func (s *Service) GetReferrals(ctx context.Context, sessionID string) (*domain.Referrals, error) {
	referrals, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		zap.L().Info("failed to get referrals", zap.Error(err))
		return nil, err
	}
	return referrals, nil
}
