package sessionrepo

import (
	"context"
	"errors"
	"sync"

	"github.com/GlebRadaev/refledger/internal/domain"
	"github.com/GlebRadaev/refledger/pkg/auth"
	"go.uber.org/zap"
)

const maxGenerateAttempts = 8

var ErrSessionIDExhausted = errors.New("can't generate unique session id")

type Repository struct {
	mu        sync.RWMutex
	byKey     map[domain.SessionKey]string
	ids       map[string]domain.SessionKey
	generator auth.IDGenerator
}

func New(generator auth.IDGenerator) *Repository {
	return &Repository{
		byKey:     make(map[domain.SessionKey]string),
		ids:       make(map[string]domain.SessionKey),
		generator: generator,
	}
}

// Create mints a session id that no earlier session has used and binds it to
// key, replacing any previous binding.
func (r *Repository) Create(ctx context.Context, key domain.SessionKey) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for attempt := 0; attempt < maxGenerateAttempts; attempt++ {
		id := r.generator.NewID()
		if _, taken := r.ids[id]; taken || id == "" {
			zap.L().Warn("session id collision, regenerating", zap.Int("attempt", attempt+1))
			continue
		}
		r.ids[id] = key
		r.byKey[key] = id
		return id, nil
	}
	return "", ErrSessionIDExhausted
}

func (r *Repository) Find(ctx context.Context, key domain.SessionKey) (string, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.byKey[key], nil
}
