package services

import (
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// InflightGuard tracks form instances whose submission is still being
// delivered. A second POST for the same instance is refused until the first
// finishes.
type InflightGuard struct {
	cache *gocache.Cache
}

// Inflight is the process-wide guard used by the form handlers
var Inflight *InflightGuard

// InitializeInflight sets up the global guard. maxHold bounds how long an
// entry can survive if End is never called.
func InitializeInflight(maxHold time.Duration) {
	Inflight = NewInflightGuard(maxHold)
}

// NewInflightGuard creates a guard
func NewInflightGuard(maxHold time.Duration) *InflightGuard {
	return &InflightGuard{cache: gocache.New(maxHold, maxHold)}
}

// Begin marks id as sending. It returns ErrSubmissionInFlight when id is
// already marked.
func (g *InflightGuard) Begin(id string) error {
	if id == "" {
		return nil
	}
	if err := g.cache.Add(id, struct{}{}, gocache.DefaultExpiration); err != nil {
		return ErrSubmissionInFlight
	}
	return nil
}

// End clears the mark set by Begin
func (g *InflightGuard) End(id string) {
	if id == "" {
		return
	}
	g.cache.Delete(id)
}

// Sending reports whether id is marked
func (g *InflightGuard) Sending(id string) bool {
	_, ok := g.cache.Get(id)
	return ok
}
