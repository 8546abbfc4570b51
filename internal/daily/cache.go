// internal/daily/cache.go
//
// Timezone-keyed cache of the puzzle of the day. One entry per fixed UTC
// offset ever requested; entries expire at the next local midnight of their
// offset and are replaced, never mutated. Entries live for the process
// lifetime.
//
// Concurrency: reads share an RWMutex; generation runs outside any lock, so
// a slow corpus round trip for one offset never blocks readers of another.
// Racing regenerations for the same offset may each run the generator, but
// publication is a single map store of a fully built Config and never
// replaces a fresher entry with a staler one.

package daily

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/lettergrid/beehive/internal/puzzle"
)

// GenerateFunc builds a fresh puzzle. The provider calls it on cache miss
// or expiry and publishes whatever it returns.
type GenerateFunc func(ctx context.Context) (*puzzle.Config, error)

type entry struct {
	cfg       *puzzle.Config
	expiresAt time.Time
}

// Provider hands out the active puzzle for a UTC offset, regenerating once
// per local day.
type Provider struct {
	generate GenerateFunc
	now      func() time.Time

	mu      sync.RWMutex
	entries map[int]entry // keyed by offset seconds east of UTC
}

// NewProvider wraps a generate function with a fresh, empty cache.
func NewProvider(generate GenerateFunc) *Provider {
	return &Provider{
		generate: generate,
		now:      time.Now,
		entries:  make(map[int]entry),
	}
}

// Config returns the puzzle for the given UTC offset (seconds east),
// generating and publishing a new one when none is cached or the cached
// entry has passed its local midnight.
func (p *Provider) Config(ctx context.Context, offsetSeconds int) (*puzzle.Config, error) {
	loc := time.FixedZone(offsetName(offsetSeconds), offsetSeconds)
	now := p.now().In(loc)

	p.mu.RLock()
	e, ok := p.entries[offsetSeconds]
	p.mu.RUnlock()
	if ok && !e.expiresAt.Before(now) {
		return e.cfg, nil
	}

	expiresAt := nextMidnight(now)
	cfg, err := p.generate(ctx)
	if err != nil {
		return nil, fmt.Errorf("generate puzzle for offset %s: %w", offsetName(offsetSeconds), err)
	}

	p.mu.Lock()
	if cur, ok := p.entries[offsetSeconds]; ok && !cur.expiresAt.Before(expiresAt) && !cur.expiresAt.Before(now) {
		// A racing caller already published an entry at least as fresh.
		p.mu.Unlock()
		return cur.cfg, nil
	}
	p.entries[offsetSeconds] = entry{cfg: cfg, expiresAt: expiresAt}
	p.mu.Unlock()

	log.Info().
		Str("offset", offsetName(offsetSeconds)).
		Time("expires_at", expiresAt).
		Int("words", len(cfg.ValidWords)).
		Msg("published daily puzzle")
	return cfg, nil
}

// nextMidnight returns the first local midnight strictly after t.
func nextMidnight(t time.Time) time.Time {
	d := t.Add(24 * time.Hour)
	return time.Date(d.Year(), d.Month(), d.Day(), 0, 0, 0, 0, d.Location())
}

func offsetName(sec int) string {
	sign := "+"
	if sec < 0 {
		sign = "-"
		sec = -sec
	}
	return fmt.Sprintf("UTC%s%02d:%02d", sign, sec/3600, sec%3600/60)
}
