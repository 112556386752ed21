package state

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/Freeeeeet/mentor_scheduler/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

func newTestManager(ttl time.Duration) (*Manager, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, time.March, 4, 10, 0, 0, 0, time.UTC)}
	m := NewManager(ttl)
	m.now = clock.Now
	return m, clock
}

func TestManager_SaveGetClear(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(time.Hour)

	got, err := m.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)

	limit := 4
	draft := &Draft{State: StatePickDate, Origin: model.OriginOffer, MaxParticipants: &limit}
	require.NoError(t, m.Save(ctx, 1, draft))

	got, err = m.Get(ctx, 1)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, StatePickDate, got.State)
	assert.True(t, got.IsOffer())

	// изменения копии не затрагивают сохранённый черновик
	got.State = StateConfirm
	*got.MaxParticipants = 99
	again, err := m.Get(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, StatePickDate, again.State)
	assert.Equal(t, 4, *again.MaxParticipants)

	require.NoError(t, m.Clear(ctx, 1))
	got, err = m.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestManager_Expiry(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestManager(30 * time.Minute)

	require.NoError(t, m.Save(ctx, 1, &Draft{State: StatePickTime}))
	require.NoError(t, m.Save(ctx, 2, &Draft{State: StatePickTime}))

	clock.Advance(20 * time.Minute)
	require.NoError(t, m.Save(ctx, 2, &Draft{State: StatePickSubject}))

	clock.Advance(15 * time.Minute)
	got, err := m.Get(ctx, 1)
	require.NoError(t, err)
	assert.Nil(t, got, "draft 1 is older than ttl")

	got, err = m.Get(ctx, 2)
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, 1, m.PurgeExpired())
	assert.Equal(t, 0, m.PurgeExpired())
}

func TestManager_ConcurrentAccess(t *testing.T) {
	ctx := context.Background()
	m, _ := newTestManager(0)

	var wg sync.WaitGroup
	for i := int64(0); i < 20; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			_ = m.Save(ctx, id, &Draft{State: StatePickDate})
			_, _ = m.Get(ctx, id)
			_ = m.Clear(ctx, id)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 0, m.PurgeExpired())
}

func TestManager_SubmitGuard(t *testing.T) {
	ctx := context.Background()
	m, clock := newTestManager(time.Hour)

	ok, err := m.AcquireSubmit(ctx, 1, 15*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = m.AcquireSubmit(ctx, 1, 15*time.Second)
	require.NoError(t, err)
	assert.False(t, ok)

	// другой пользователь не ждёт
	ok, err = m.AcquireSubmit(ctx, 2, 15*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, m.ReleaseSubmit(ctx, 2))
	ok, err = m.AcquireSubmit(ctx, 2, 15*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)

	// неосвобождённое право истекает
	clock.Advance(15 * time.Second)
	ok, err = m.AcquireSubmit(ctx, 1, 15*time.Second)
	require.NoError(t, err)
	assert.True(t, ok)
}
