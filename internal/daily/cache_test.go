package daily

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lettergrid/beehive/internal/puzzle"
)

// countingGen returns a fresh config on every call and counts invocations.
func countingGen(calls *int32) GenerateFunc {
	return func(ctx context.Context) (*puzzle.Config, error) {
		atomic.AddInt32(calls, 1)
		return puzzle.NewConfig('c', []byte{'e', 'i', 'l', 'n', 'o', 'x'}, []puzzle.Word{
			{Text: "lexicon", IsPangram: true},
		}, nil), nil
	}
}

func providerAt(gen GenerateFunc, now time.Time) *Provider {
	p := NewProvider(gen)
	p.now = func() time.Time { return now }
	return p
}

func TestConfigIsCachedWithinOneLocalDay(t *testing.T) {
	var calls int32
	now := time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC)
	p := providerAt(countingGen(&calls), now)

	a, err := p.Config(context.Background(), 0)
	require.NoError(t, err)
	b, err := p.Config(context.Background(), 0)
	require.NoError(t, err)

	assert.Same(t, a, b)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// Still the same entry just before local midnight.
	p.now = func() time.Time { return time.Date(2026, 8, 27, 23, 59, 59, 0, time.UTC) }
	c, err := p.Config(context.Background(), 0)
	require.NoError(t, err)
	assert.Same(t, a, c)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestConfigRegeneratesAfterLocalMidnight(t *testing.T) {
	var calls int32
	p := providerAt(countingGen(&calls), time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC))

	a, err := p.Config(context.Background(), 0)
	require.NoError(t, err)

	// One second past local midnight the old entry has expired.
	p.now = func() time.Time { return time.Date(2026, 8, 28, 0, 0, 1, 0, time.UTC) }
	b, err := p.Config(context.Background(), 0)
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestConfigKeysEntriesByOffset(t *testing.T) {
	var calls int32
	p := providerAt(countingGen(&calls), time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC))

	a, err := p.Config(context.Background(), 5*3600+1800) // +05:30
	require.NoError(t, err)
	b, err := p.Config(context.Background(), -8*3600) // -08:00
	require.NoError(t, err)

	assert.NotSame(t, a, b)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))

	// Each offset hits its own cached entry afterwards.
	_, _ = p.Config(context.Background(), 5*3600+1800)
	_, _ = p.Config(context.Background(), -8*3600)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

// Local midnight is computed in the caller's offset: 23:30 UTC on the 27th
// is already the 28th at +05:30, so a +05:30 entry generated then expires at
// the 29th's midnight of that zone.
func TestConfigUsesLocalMidnightOfOffset(t *testing.T) {
	var calls int32
	offset := 5*3600 + 1800
	p := providerAt(countingGen(&calls), time.Date(2026, 8, 27, 23, 30, 0, 0, time.UTC))

	_, err := p.Config(context.Background(), offset)
	require.NoError(t, err)

	// 2026-08-28 18:29 UTC is 23:59 on the 28th at +05:30: still cached.
	p.now = func() time.Time { return time.Date(2026, 8, 28, 18, 29, 0, 0, time.UTC) }
	_, err = p.Config(context.Background(), offset)
	require.NoError(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))

	// 18:31 UTC is past that local midnight: regenerate.
	p.now = func() time.Time { return time.Date(2026, 8, 28, 18, 31, 0, 0, time.UTC) }
	_, err = p.Config(context.Background(), offset)
	require.NoError(t, err)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestConfigPropagatesGeneratorErrors(t *testing.T) {
	wantErr := errors.New("corpus unreachable")
	p := providerAt(func(ctx context.Context) (*puzzle.Config, error) {
		return nil, wantErr
	}, time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC))

	_, err := p.Config(context.Background(), 0)
	assert.ErrorIs(t, err, wantErr)

	// A failed generation publishes nothing; the next call tries again.
	_, err = p.Config(context.Background(), 0)
	assert.ErrorIs(t, err, wantErr)
}

// Concurrent readers of a cold offset may race the generator, but every one
// of them must observe a fully formed config with identical content.
func TestConfigConcurrentColdStart(t *testing.T) {
	var calls int32
	p := providerAt(countingGen(&calls), time.Date(2026, 8, 27, 10, 0, 0, 0, time.UTC))

	const readers = 16
	results := make([]*puzzle.Config, readers)
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(i int) {
			defer wg.Done()
			cfg, err := p.Config(context.Background(), 0)
			assert.NoError(t, err)
			results[i] = cfg
		}(i)
	}
	wg.Wait()

	for _, cfg := range results {
		require.NotNil(t, cfg)
		assert.Equal(t, "c", cfg.RequiredLetter)
		assert.Equal(t, []string{"e", "i", "l", "n", "o", "x"}, cfg.OtherLetters)
		assert.Len(t, cfg.ValidWords, 1)
	}

	// Once warm, a new reader sees the published entry without regenerating.
	before := atomic.LoadInt32(&calls)
	_, err := p.Config(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, before, atomic.LoadInt32(&calls))
}

func TestNextMidnight(t *testing.T) {
	loc := time.FixedZone("UTC+02:00", 2*3600)
	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{
			"evening rolls to next day",
			time.Date(2026, 8, 27, 22, 10, 5, 123, loc),
			time.Date(2026, 8, 28, 0, 0, 0, 0, loc),
		},
		{
			"exact midnight rolls a full day",
			time.Date(2026, 8, 27, 0, 0, 0, 0, loc),
			time.Date(2026, 8, 28, 0, 0, 0, 0, loc),
		},
		{
			"month boundary",
			time.Date(2026, 8, 31, 13, 0, 0, 0, loc),
			time.Date(2026, 9, 1, 0, 0, 0, 0, loc),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := nextMidnight(tt.now)
			assert.True(t, got.Equal(tt.want), "got %v, want %v", got, tt.want)
			assert.True(t, got.After(tt.now))
		})
	}
}
