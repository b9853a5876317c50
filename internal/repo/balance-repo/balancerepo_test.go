package balancerepo

import (
	"context"
	"sync"
	"testing"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_GetBalance(t *testing.T) {
	repo := New()
	_, err := repo.CreateBalance(context.Background(), "A")
	require.NoError(t, err)

	tests := []struct {
		name      string
		sessionID string
		expectErr error
		result    *domain.Balance
	}{
		{
			name:      "Known session returns balance",
			sessionID: "A",
			result:    &domain.Balance{SessionID: "A"},
		},
		{
			name:      "Unknown session",
			sessionID: "B",
			expectErr: domain.ErrInvalidSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			balance, err := repo.GetBalance(context.Background(), tt.sessionID)
			assert.ErrorIs(t, err, tt.expectErr)
			assert.Equal(t, tt.result, balance)
		})
	}
}

func TestRepository_CreateBalanceKeepsExisting(t *testing.T) {
	repo := New()
	_, _ = repo.CreateBalance(context.Background(), "A")
	_, err := repo.Credit(context.Background(), "A", 100)
	require.NoError(t, err)

	balance, err := repo.CreateBalance(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, 100.0, balance.Current)
}

func TestRepository_Debit(t *testing.T) {
	tests := []struct {
		name      string
		sessionID string
		amount    float64
		expectErr error
		current   float64
		withdrawn float64
	}{
		{
			name:      "Partial debit",
			sessionID: "A",
			amount:    40,
			current:   60,
			withdrawn: 40,
		},
		{
			name:      "Exact debit",
			sessionID: "A",
			amount:    100,
			current:   0,
			withdrawn: 100,
		},
		{
			name:      "Insufficient balance",
			sessionID: "A",
			amount:    1000,
			expectErr: domain.ErrInsufficientBalance,
			current:   100,
		},
		{
			name:      "Negative amount raises balance",
			sessionID: "A",
			amount:    -5,
			current:   105,
			withdrawn: -5,
		},
		{
			name:      "Unknown session",
			sessionID: "B",
			amount:    1,
			expectErr: domain.ErrInvalidSession,
			current:   100,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := New()
			_, _ = repo.CreateBalance(context.Background(), "A")
			_, _ = repo.Credit(context.Background(), "A", 100)

			balance, err := repo.Debit(context.Background(), tt.sessionID, tt.amount)
			assert.ErrorIs(t, err, tt.expectErr)
			if tt.expectErr == nil {
				assert.Equal(t, tt.current, balance.Current)
				assert.Equal(t, tt.withdrawn, balance.Withdrawn)
			}

			stored, _ := repo.GetBalance(context.Background(), "A")
			assert.Equal(t, tt.current, stored.Current)
		})
	}
}

func TestRepository_SequentialDebits(t *testing.T) {
	repo := New()
	_, _ = repo.CreateBalance(context.Background(), "A")
	_, _ = repo.Credit(context.Background(), "A", 100)

	_, err := repo.Debit(context.Background(), "A", 70)
	require.NoError(t, err)
	_, err = repo.Debit(context.Background(), "A", 31)
	assert.ErrorIs(t, err, domain.ErrInsufficientBalance)
	balance, err := repo.Debit(context.Background(), "A", 30)
	require.NoError(t, err)
	assert.Equal(t, 0.0, balance.Current)
}

func TestRepository_Credit(t *testing.T) {
	repo := New()
	_, _ = repo.CreateBalance(context.Background(), "A")

	balance, err := repo.Credit(context.Background(), "A", 200)
	require.NoError(t, err)
	assert.Equal(t, 200.0, balance.Current)

	_, err = repo.Credit(context.Background(), "B", 200)
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestRepository_ConcurrentDebitNeverOverdraws(t *testing.T) {
	repo := New()
	_, _ = repo.CreateBalance(context.Background(), "A")
	_, _ = repo.Credit(context.Background(), "A", 100)

	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := repo.Debit(context.Background(), "A", 10); err == nil {
				mu.Lock()
				succeeded++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	balance, _ := repo.GetBalance(context.Background(), "A")
	assert.Equal(t, 10, succeeded)
	assert.Equal(t, 0.0, balance.Current)
}
