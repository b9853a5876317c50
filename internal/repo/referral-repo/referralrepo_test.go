package referralrepo

import (
	"context"
	"sync"
	"testing"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newOpened(t *testing.T, sessions ...string) *Repository {
	repo := New()
	for _, s := range sessions {
		require.NoError(t, repo.Open(context.Background(), s))
	}
	return repo
}

func TestRepository_Add(t *testing.T) {
	repo := newOpened(t, "A")

	tests := []struct {
		name      string
		sessionID string
		code      string
		expectErr error
	}{
		{
			name:      "Known session",
			sessionID: "A",
			code:      "X",
		},
		{
			name:      "Duplicate code allowed",
			sessionID: "A",
			code:      "X",
		},
		{
			name:      "Unknown session",
			sessionID: "nope",
			code:      "X",
			expectErr: domain.ErrInvalidSession,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := repo.Add(context.Background(), tt.sessionID, tt.code)
			assert.ErrorIs(t, err, tt.expectErr)
		})
	}

	refs, err := repo.Get(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "X"}, refs.Pending)
}

func TestRepository_OpenIsIdempotent(t *testing.T) {
	repo := newOpened(t, "A")
	require.NoError(t, repo.Add(context.Background(), "A", "X"))

	require.NoError(t, repo.Open(context.Background(), "A"))

	refs, err := repo.Get(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, []string{"X"}, refs.Pending)
}

func TestRepository_RedeemRemovesOneOccurrence(t *testing.T) {
	repo := newOpened(t, "A")
	require.NoError(t, repo.Add(context.Background(), "A", "X"))
	require.NoError(t, repo.Add(context.Background(), "A", "Y"))
	require.NoError(t, repo.Add(context.Background(), "A", "X"))

	owner, err := repo.Redeem(context.Background(), "A", "X")
	require.NoError(t, err)
	assert.Equal(t, "A", owner)

	refs, _ := repo.Get(context.Background(), "A")
	assert.Equal(t, []string{"Y", "X"}, refs.Pending)
	assert.Equal(t, 1, refs.Score)

	_, err = repo.Redeem(context.Background(), "A", "X")
	require.NoError(t, err)

	_, err = repo.Redeem(context.Background(), "A", "X")
	assert.ErrorIs(t, err, domain.ErrReferralCodeNotFound)

	refs, _ = repo.Get(context.Background(), "A")
	assert.Equal(t, []string{"Y"}, refs.Pending)
	assert.Equal(t, 2, refs.Score)
}

func TestRepository_RedeemCreditsRequester(t *testing.T) {
	repo := newOpened(t, "A", "B")
	require.NoError(t, repo.Add(context.Background(), "A", "X"))

	owner, err := repo.Redeem(context.Background(), "B", "X")
	require.NoError(t, err)
	assert.Equal(t, "A", owner)

	a, _ := repo.Get(context.Background(), "A")
	b, _ := repo.Get(context.Background(), "B")
	assert.Empty(t, a.Pending)
	assert.Equal(t, 0, a.Score)
	assert.Equal(t, 1, b.Score)
}

func TestRepository_RedeemScansInOpenOrder(t *testing.T) {
	repo := newOpened(t, "C", "A", "B")
	require.NoError(t, repo.Add(context.Background(), "B", "X"))
	require.NoError(t, repo.Add(context.Background(), "A", "X"))

	owner, err := repo.Redeem(context.Background(), "C", "X")
	require.NoError(t, err)
	assert.Equal(t, "A", owner)

	owner, err = repo.Redeem(context.Background(), "C", "X")
	require.NoError(t, err)
	assert.Equal(t, "B", owner)
}

func TestRepository_RedeemUnknownRequester(t *testing.T) {
	repo := newOpened(t, "A")
	require.NoError(t, repo.Add(context.Background(), "A", "X"))

	_, err := repo.Redeem(context.Background(), "ghost", "X")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)

	refs, _ := repo.Get(context.Background(), "A")
	assert.Equal(t, []string{"X"}, refs.Pending)
}

func TestRepository_DrainScore(t *testing.T) {
	repo := newOpened(t, "A")
	require.NoError(t, repo.Add(context.Background(), "A", "X"))
	require.NoError(t, repo.Add(context.Background(), "A", "Y"))
	_, _ = repo.Redeem(context.Background(), "A", "X")
	_, _ = repo.Redeem(context.Background(), "A", "Y")

	score, err := repo.DrainScore(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, 2, score)

	score, err = repo.DrainScore(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, 0, score)

	_, err = repo.DrainScore(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestRepository_GetReturnsCopy(t *testing.T) {
	repo := newOpened(t, "A")
	require.NoError(t, repo.Add(context.Background(), "A", "X"))

	refs, _ := repo.Get(context.Background(), "A")
	refs.Pending[0] = "tampered"

	again, _ := repo.Get(context.Background(), "A")
	assert.Equal(t, []string{"X"}, again.Pending)

	_, err := repo.Get(context.Background(), "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidSession)
}

func TestRepository_ConcurrentRedeem(t *testing.T) {
	repo := newOpened(t, "A", "B")
	for i := 0; i < 100; i++ {
		require.NoError(t, repo.Add(context.Background(), "A", "X"))
	}

	var wg sync.WaitGroup
	for i := 0; i < 150; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = repo.Redeem(context.Background(), "B", "X")
		}()
	}
	wg.Wait()

	a, _ := repo.Get(context.Background(), "A")
	b, _ := repo.Get(context.Background(), "B")
	assert.Empty(t, a.Pending)
	assert.Equal(t, 100, b.Score)
}
