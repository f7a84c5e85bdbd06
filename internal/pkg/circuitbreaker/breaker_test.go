package circuitbreaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var errDown = errors.New("downstream unavailable")

func fail(context.Context) error { return errDown }
func succeed(context.Context) error { return nil }

func newTestBreaker(clock *time.Time) *CircuitBreaker {
	cfg := DefaultConfig("payments")
	cfg.FailureThreshold = 3
	cfg.Timeout = time.Minute
	cb := New(cfg)
	cb.now = func() time.Time { return *clock }
	cb.expiry = clock.Add(cfg.Interval)
	return cb
}

func TestCircuitBreaker_OpensAfterConsecutiveFailures(t *testing.T) {
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&clock)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		assert.ErrorIs(t, cb.Execute(ctx, fail), errDown)
		assert.Equal(t, StateClosed, cb.State())
	}
	assert.ErrorIs(t, cb.Execute(ctx, fail), errDown)
	assert.Equal(t, StateOpen, cb.State())

	called := false
	err := cb.Execute(ctx, func(context.Context) error { called = true; return nil })
	assert.ErrorIs(t, err, ErrCircuitBreakerOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureStreak(t *testing.T) {
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	cb := newTestBreaker(&clock)
	ctx := context.Background()

	_ = cb.Execute(ctx, fail)
	_ = cb.Execute(ctx, fail)
	assert.NoError(t, cb.Execute(ctx, succeed))
	_ = cb.Execute(ctx, fail)

	assert.Equal(t, StateClosed, cb.State())
	assert.EqualValues(t, 1, cb.Counts().ConsecutiveFailures)
}

func TestCircuitBreaker_HalfOpenProbe(t *testing.T) {
	clock := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	ctx := context.Background()

	t.Run("probe success closes", func(t *testing.T) {
		cb := newTestBreaker(&clock)
		for i := 0; i < 3; i++ {
			_ = cb.Execute(ctx, fail)
		}
		clock = clock.Add(2 * time.Minute)

		assert.NoError(t, cb.Execute(ctx, succeed))
		assert.Equal(t, StateClosed, cb.State())
	})

	t.Run("probe failure reopens", func(t *testing.T) {
		cb := newTestBreaker(&clock)
		for i := 0; i < 3; i++ {
			_ = cb.Execute(ctx, fail)
		}
		clock = clock.Add(2 * time.Minute)

		assert.ErrorIs(t, cb.Execute(ctx, fail), errDown)
		assert.Equal(t, StateOpen, cb.State())
	})
}

func TestCircuitBreaker_IgnoresNonFailures(t *testing.T) {
	cfg := DefaultConfig("users")
	cfg.FailureThreshold = 1
	notFound := errors.New("not found")
	cfg.IsFailure = func(err error) bool { return err != nil && !errors.Is(err, notFound) }
	cb := New(cfg)

	_ = cb.Execute(context.Background(), func(context.Context) error { return notFound })
	assert.Equal(t, StateClosed, cb.State())
}

func TestManager(t *testing.T) {
	m := NewManager(DefaultConfig(""))
	assert.Same(t, m.Get("users"), m.Get("users"))
	assert.NotSame(t, m.Get("users"), m.Get("trips"))
	assert.Equal(t, map[string]string{"users": "CLOSED", "trips": "CLOSED"}, m.Stats())
}
