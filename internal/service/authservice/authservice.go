package authservice

import (
	"context"
	"fmt"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/internal/handlers/balance"
	"github.com/GlebRadaev/refledger/internal/handlers/referral"
	"github.com/GlebRadaev/refledger/internal/metrics"
	"github.com/GlebRadaev/refledger/internal/storage"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"go.uber.org/zap"
)

//go:generate mockgen -source=authservice.go -destination=mock_authservice.go -package=authservice

type UserRepo interface {
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
}

type SessionRepo interface {
	Create(ctx context.Context, key domain.SessionKey) (string, error)
	Find(ctx context.Context, key domain.SessionKey) (string, error)
}

type Service struct {
	userRepo        UserRepo
	sessionRepo     SessionRepo
	referralService referral.Service
	balanceService  balance.Service
	hashService     auth.HashServiceInterface
	txManager       storage.TXManager
}

func New(
	userRepo UserRepo,
	sessionRepo SessionRepo,
	referralService referral.Service,
	balanceService balance.Service,
	hashService auth.HashServiceInterface,
	txManager storage.TXManager,
) *Service {
	return &Service{
		userRepo:        userRepo,
		sessionRepo:     sessionRepo,
		referralService: referralService,
		balanceService:  balanceService,
		hashService:     hashService,
		txManager:       txManager,
	}
}

// Register creates the account and its first session, then opens the
// referral ledger and the balance for that session.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	var sessionID string
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		existing, err := s.userRepo.FindByUsername(ctx, username)
		if err != nil {
			zap.L().Error("can't find user: ", zap.Error(err))
			return err
		}
		if existing != nil {
			zap.L().Info("user already exists", zap.String("username", username))
			return domain.ErrDuplicateUsername
		}

		account, err := s.userRepo.Create(ctx, &domain.Account{
			Username:    username,
			Fingerprint: s.hashService.HashPassword(password),
		})
		if err != nil {
			zap.L().Error("can't create user: ", zap.Error(err))
			return err
		}

		sessionID, err = s.sessionRepo.Create(ctx, domain.SessionKey{
			Username:    account.Username,
			Fingerprint: account.Fingerprint,
		})
		if err != nil {
			zap.L().Error("can't create session: ", zap.Error(err))
			return fmt.Errorf("can't create session: %w", err)
		}

		if err := s.referralService.OpenLedger(ctx, sessionID); err != nil {
			zap.L().Error("can't open referral ledger: ", zap.Error(err))
			return err
		}
		if _, err := s.balanceService.CreateBalance(ctx, sessionID); err != nil {
			zap.L().Error("can't create balance: ", zap.Error(err))
			return err
		}
		return nil
	})
	metrics.RecordOperation(metrics.OpRegister, err)
	if err != nil {
		return "", err
	}

	zap.L().Info("user successfully registered", zap.String("username", username))
	return sessionID, nil
}

// Authenticate returns the session bound to the credentials. When the pair
// has no session yet a new one is minted without ledger state.
func (s *Service) Authenticate(ctx context.Context, username, password string) (string, error) {
	var sessionID string
	err := s.txManager.Begin(ctx, func(ctx context.Context) error {
		account, err := s.userRepo.FindByUsername(ctx, username)
		if err != nil {
			zap.L().Error("can't find user: ", zap.Error(err))
			return err
		}
		if account == nil {
			zap.L().Info("unknown user", zap.String("username", username))
			return domain.ErrUnknownUser
		}
		if ok := s.hashService.ComparePassword(account.Fingerprint, password); !ok {
			zap.L().Info("invalid credentials", zap.String("username", username))
			return domain.ErrInvalidCredentials
		}

		key := domain.SessionKey{Username: account.Username, Fingerprint: account.Fingerprint}
		sessionID, err = s.sessionRepo.Find(ctx, key)
		if err != nil {
			zap.L().Error("can't find session: ", zap.Error(err))
			return err
		}
		if sessionID != "" {
			return nil
		}

		sessionID, err = s.sessionRepo.Create(ctx, key)
		if err != nil {
			zap.L().Error("can't create session: ", zap.Error(err))
			return fmt.Errorf("can't create session: %w", err)
		}
		zap.L().Warn("session minted without ledger state", zap.String("username", username))
		return nil
	})
	metrics.RecordOperation(metrics.OpAuthenticate, err)
	if err != nil {
		return "", err
	}

	zap.L().Info("user successfully authenticated", zap.String("username", username))
	return sessionID, nil
}
