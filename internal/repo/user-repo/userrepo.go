package userrepo

import (
	"context"
	"sync"
	"time"

	"github.com/GlebRadaev/refledger/internal/domain"
	"go.uber.org/zap"
)

type Repository struct {
	mu       sync.RWMutex
	accounts map[string]domain.Account
}

func New() *Repository {
	return &Repository{
		accounts: make(map[string]domain.Account),
	}
}

func (repo *Repository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	repo.mu.RLock()
	defer repo.mu.RUnlock()

	account, ok := repo.accounts[username]
	if !ok {
		return nil, nil
	}
	return &account, nil
}

func (repo *Repository) Create(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.accounts[account.Username]; ok {
		zap.L().Debug("username already taken", zap.String("username", account.Username))
		return nil, domain.ErrDuplicateUsername
	}
	if account.CreatedAt.IsZero() {
		account.CreatedAt = time.Now()
	}
	repo.accounts[account.Username] = *account
	return account, nil
}
