package app

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type countingPurger struct {
	calls atomic.Int32
}

func (p *countingPurger) PurgeExpired() int {
	p.calls.Add(1)
	return 1
}

func TestScheduler_PurgesUntilStopped(t *testing.T) {
	purger := &countingPurger{}
	s := NewScheduler(purger, 5*time.Millisecond, zap.NewNop())

	s.Start(context.Background())
	assert.Eventually(t, func() bool { return purger.calls.Load() >= 2 }, time.Second, 5*time.Millisecond)
	s.Stop()
}

func TestScheduler_StopsOnContextCancel(t *testing.T) {
	purger := &countingPurger{}
	s := NewScheduler(purger, time.Hour, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	s.Start(ctx)
	cancel()

	assert.Never(t, func() bool { return purger.calls.Load() > 0 }, 20*time.Millisecond, 5*time.Millisecond)
}
