package balancerepo

import (
	"context"
	"sync"

	"github.com/GlebRadaev/refledger/internal/domain"
	"go.uber.org/zap"
)

type Repository struct {
	mu       sync.Mutex
	balances map[string]*domain.Balance
}

func New() *Repository {
	return &Repository{
		balances: make(map[string]*domain.Balance),
	}
}

func (r *Repository) GetBalance(ctx context.Context, sessionID string) (*domain.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[sessionID]
	if !ok {
		return nil, domain.ErrInvalidSession
	}
	copied := *balance
	return &copied, nil
}

// CreateBalance opens a zero balance for the session, or returns the
// existing one.
func (r *Repository) CreateBalance(ctx context.Context, sessionID string) (*domain.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[sessionID]
	if !ok {
		balance = &domain.Balance{SessionID: sessionID}
		r.balances[sessionID] = balance
	}
	copied := *balance
	return &copied, nil
}

// Debit fails without side effects when amount exceeds the current balance.
func (r *Repository) Debit(ctx context.Context, sessionID string, amount float64) (*domain.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[sessionID]
	if !ok {
		return nil, domain.ErrInvalidSession
	}
	if amount > balance.Current {
		zap.L().Debug("insufficient balance",
			zap.String("session_id", sessionID),
			zap.Float64("current", balance.Current),
			zap.Float64("amount", amount),
		)
		return nil, domain.ErrInsufficientBalance
	}
	balance.Current -= amount
	balance.Withdrawn += amount

	copied := *balance
	return &copied, nil
}

func (r *Repository) Credit(ctx context.Context, sessionID string, amount float64) (*domain.Balance, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	balance, ok := r.balances[sessionID]
	if !ok {
		return nil, domain.ErrInvalidSession
	}
	balance.Current += amount

	copied := *balance
	return &copied, nil
}
