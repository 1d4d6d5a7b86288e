package cache

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/codehook/dashboard/internal/model"
)

// ErrBreakerOpen is returned while the backing cache is being skipped.
var ErrBreakerOpen = errors.New("card cache unavailable")

type breakerState int

const (
	closed breakerState = iota
	open
	halfOpen
)

// Breaker stops calling a failing cache for a while so page loads do not
// pay a dial timeout on every request.
type Breaker struct {
	mu        sync.Mutex
	st        breakerState
	fails     int
	threshold int
	openFor   time.Duration
	retryAt   time.Time
	probing   bool
	now       func() time.Time
}

func NewBreaker(threshold int, openFor time.Duration) *Breaker {
	if threshold <= 0 {
		threshold = 3
	}
	if openFor <= 0 {
		openFor = 30 * time.Second
	}
	return &Breaker{threshold: threshold, openFor: openFor, now: time.Now}
}

// acquire reports whether a call may go through. In the open state one
// probe is let through after openFor has elapsed.
func (b *Breaker) acquire() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.st {
	case open:
		if b.now().Before(b.retryAt) || b.probing {
			return false
		}
		b.st = halfOpen
		b.probing = true
		return true
	case halfOpen:
		if b.probing {
			return false
		}
		b.probing = true
		return true
	default:
		return true
	}
}

func (b *Breaker) done(err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if err == nil {
		b.fails = 0
		b.st = closed
		b.probing = false
		return
	}

	if b.st == halfOpen {
		b.trip()
		return
	}
	b.fails++
	if b.fails >= b.threshold {
		b.trip()
	}
}

func (b *Breaker) trip() {
	b.st = open
	b.retryAt = b.now().Add(b.openFor)
	b.probing = false
}

// Open reports whether calls are currently being skipped.
func (b *Breaker) Open() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.st != closed
}

// GuardedCardCache wraps a CardCache with a Breaker.
type GuardedCardCache struct {
	next CardCache
	b    *Breaker
}

func NewGuardedCardCache(next CardCache, b *Breaker) *GuardedCardCache {
	if b == nil {
		b = NewBreaker(0, 0)
	}
	return &GuardedCardCache{next: next, b: b}
}

var _ CardCache = (*GuardedCardCache)(nil)

func (g *GuardedCardCache) Get(ctx context.Context) (model.CardData, bool, error) {
	if !g.b.acquire() {
		return model.CardData{}, false, ErrBreakerOpen
	}
	d, ok, err := g.next.Get(ctx)
	g.b.done(err)
	return d, ok, err
}

func (g *GuardedCardCache) Set(ctx context.Context, data model.CardData, ttl time.Duration) error {
	if !g.b.acquire() {
		return ErrBreakerOpen
	}
	err := g.next.Set(ctx, data, ttl)
	g.b.done(err)
	return err
}
