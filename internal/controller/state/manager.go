package state

import (
	"context"
	"sync"
	"time"
)

// Store хранит черновики пользователей между нажатиями кнопок
type Store interface {
	Get(ctx context.Context, telegramID int64) (*Draft, error)
	Save(ctx context.Context, telegramID int64, draft *Draft) error
	Clear(ctx context.Context, telegramID int64) error

	// AcquireSubmit атомарно занимает право на отправку на ttl, false если оно уже занято
	AcquireSubmit(ctx context.Context, telegramID int64, ttl time.Duration) (bool, error)
	ReleaseSubmit(ctx context.Context, telegramID int64) error
}

// Manager хранит черновики в памяти процесса
type Manager struct {
	mu     sync.RWMutex
	drafts map[int64]*Draft    // telegramID -> Draft
	guards map[int64]time.Time // telegramID -> когда истекает право на отправку
	ttl    time.Duration
	now    func() time.Time
}

// NewManager создаёт новый менеджер состояний
func NewManager(ttl time.Duration) *Manager {
	return &Manager{
		drafts: make(map[int64]*Draft),
		guards: make(map[int64]time.Time),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Get возвращает копию черновика или nil, если его нет либо он устарел
func (sm *Manager) Get(_ context.Context, telegramID int64) (*Draft, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	draft, exists := sm.drafts[telegramID]
	if !exists || sm.expired(draft) {
		return nil, nil
	}

	// Возвращаем копию, чтобы избежать race condition
	cp := *draft
	if draft.MaxParticipants != nil {
		limit := *draft.MaxParticipants
		cp.MaxParticipants = &limit
	}
	return &cp, nil
}

// Save сохраняет черновик
func (sm *Manager) Save(_ context.Context, telegramID int64, draft *Draft) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	cp := *draft
	cp.UpdatedAt = sm.now()
	sm.drafts[telegramID] = &cp
	return nil
}

// Clear удаляет черновик пользователя
func (sm *Manager) Clear(_ context.Context, telegramID int64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.drafts, telegramID)
	return nil
}

// AcquireSubmit занимает право на отправку, истёкшее право можно занять заново
func (sm *Manager) AcquireSubmit(_ context.Context, telegramID int64, ttl time.Duration) (bool, error) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	now := sm.now()
	if until, held := sm.guards[telegramID]; held && now.Before(until) {
		return false, nil
	}
	sm.guards[telegramID] = now.Add(ttl)
	return true, nil
}

// ReleaseSubmit освобождает право на отправку
func (sm *Manager) ReleaseSubmit(_ context.Context, telegramID int64) error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	delete(sm.guards, telegramID)
	return nil
}

// PurgeExpired удаляет устаревшие черновики и возвращает их количество
func (sm *Manager) PurgeExpired() int {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	purged := 0
	for id, draft := range sm.drafts {
		if sm.expired(draft) {
			delete(sm.drafts, id)
			purged++
		}
	}

	now := sm.now()
	for id, until := range sm.guards {
		if !now.Before(until) {
			delete(sm.guards, id)
		}
	}
	return purged
}

func (sm *Manager) expired(d *Draft) bool {
	return sm.ttl > 0 && sm.now().Sub(d.UpdatedAt) > sm.ttl
}
