package withdrawalrepo

import (
	"context"
	"sort"
	"sync"

	"github.com/GlebRadaev/refledger/internal/domain"
)

type Repository struct {
	mu          sync.RWMutex
	lastID      int
	withdrawals map[string][]domain.Withdrawal
}

func New() *Repository {
	return &Repository{
		withdrawals: make(map[string][]domain.Withdrawal),
	}
}

func (r *Repository) CreateWithdrawal(ctx context.Context, withdrawal *domain.Withdrawal) (*domain.Withdrawal, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.lastID++
	withdrawal.ID = r.lastID
	r.withdrawals[withdrawal.SessionID] = append(r.withdrawals[withdrawal.SessionID], *withdrawal)
	return withdrawal, nil
}

// GetWithdrawalsBySessionID lists the session's withdrawals, newest first.
func (r *Repository) GetWithdrawalsBySessionID(ctx context.Context, sessionID string) ([]domain.Withdrawal, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	stored := r.withdrawals[sessionID]
	withdrawals := make([]domain.Withdrawal, len(stored))
	copy(withdrawals, stored)

	sort.SliceStable(withdrawals, func(i, j int) bool {
		if withdrawals[i].ProcessedAt.Equal(withdrawals[j].ProcessedAt) {
			return withdrawals[i].ID > withdrawals[j].ID
		}
		return withdrawals[i].ProcessedAt.After(withdrawals[j].ProcessedAt)
	})
	return withdrawals, nil
}
