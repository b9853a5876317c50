package storage

import (
	"context"
	"sync"
)

// TXManager runs a unit of work spanning several stores. Units never
// interleave with each other; single-store operations outside a unit are
// still atomic on their own store.
type TXManager interface {
	Begin(ctx context.Context, fn func(ctx context.Context) error) error
}

type LockManager struct {
	mu sync.Mutex
}

func NewTXManager() *LockManager {
	return &LockManager{}
}

// Begin is not reentrant: fn must not start another unit.
func (m *LockManager) Begin(ctx context.Context, fn func(ctx context.Context) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()

	return fn(ctx)
}
