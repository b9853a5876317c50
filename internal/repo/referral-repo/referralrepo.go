package referralrepo

import (
	"context"
	"sync"

	"github.com/GlebRadaev/refledger/internal/domain"
)

// Repository holds the pending referral codes and the referral score of every
// session. Sessions are scanned in the order they were opened.
type Repository struct {
	mu      sync.Mutex
	order   []string
	pending map[string][]string
	scores  map[string]int
}

func New() *Repository {
	return &Repository{
		pending: make(map[string][]string),
		scores:  make(map[string]int),
	}
}

// Open starts an empty ledger for the session. Opening an existing ledger
// leaves it untouched.
func (r *Repository) Open(ctx context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.pending[sessionID]; ok {
		return nil
	}
	r.order = append(r.order, sessionID)
	r.pending[sessionID] = []string{}
	r.scores[sessionID] = 0
	return nil
}

func (r *Repository) Add(ctx context.Context, sessionID, code string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes, ok := r.pending[sessionID]
	if !ok {
		return domain.ErrInvalidSession
	}
	r.pending[sessionID] = append(codes, code)
	return nil
}

// Redeem removes the first occurrence of code from the first session list
// holding it and credits the requester, whichever list it came from. It
// returns the session the code was taken from.
func (r *Repository) Redeem(ctx context.Context, requesterID, code string) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.scores[requesterID]; !ok {
		return "", domain.ErrInvalidSession
	}
	for _, ownerID := range r.order {
		codes := r.pending[ownerID]
		for i, c := range codes {
			if c != code {
				continue
			}
			r.pending[ownerID] = append(codes[:i:i], codes[i+1:]...)
			r.scores[requesterID]++
			return ownerID, nil
		}
	}
	return "", domain.ErrReferralCodeNotFound
}

func (r *Repository) Get(ctx context.Context, sessionID string) (*domain.Referrals, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	codes, ok := r.pending[sessionID]
	if !ok {
		return nil, domain.ErrInvalidSession
	}
	return &domain.Referrals{
		SessionID: sessionID,
		Score:     r.scores[sessionID],
		Pending:   append([]string{}, codes...),
	}, nil
}

// DrainScore returns the session score and resets it to zero.
func (r *Repository) DrainScore(ctx context.Context, sessionID string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	score, ok := r.scores[sessionID]
	if !ok {
		return 0, domain.ErrInvalidSession
	}
	r.scores[sessionID] = 0
	return score, nil
}
