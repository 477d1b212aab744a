package game

import (
	"context"
	"sync"
	"time"

	"termcaster/internal/texture"
)

// Animator advances the animated textures of a set that several viewers
// render from. Step takes the write lock; viewers hold the read lock while
// rendering so no frame mixes two animation steps.
type Animator struct {
	mu  sync.RWMutex
	set *texture.Set
}

// NewAnimator wraps set.
func NewAnimator(set *texture.Set) *Animator {
	return &Animator{set: set}
}

// Step advances every animated texture by one frame.
func (a *Animator) Step() {
	a.mu.Lock()
	a.set.Step()
	a.mu.Unlock()
}

// Swap replaces the animated set, e.g. after a scene reload.
func (a *Animator) Swap(set *texture.Set) {
	a.mu.Lock()
	a.set = set
	a.mu.Unlock()
}

// RLock blocks Step until RUnlock.
func (a *Animator) RLock() { a.mu.RLock() }

// RUnlock releases RLock.
func (a *Animator) RUnlock() { a.mu.RUnlock() }

// Run steps the set every interval until ctx is done.
func (a *Animator) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			a.Step()
		}
	}
}
