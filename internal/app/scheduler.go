package app

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// DraftPurger удаляет устаревшие черновики (реализует state.Manager)
type DraftPurger interface {
	PurgeExpired() int
}

// Scheduler управляет фоновыми задачами
type Scheduler struct {
	drafts   DraftPurger
	interval time.Duration
	logger   *zap.Logger
	stopChan chan struct{}
}

// NewScheduler создаёт новый планировщик
func NewScheduler(drafts DraftPurger, interval time.Duration, logger *zap.Logger) *Scheduler {
	return &Scheduler{
		drafts:   drafts,
		interval: interval,
		logger:   logger,
		stopChan: make(chan struct{}),
	}
}

// Start запускает фоновые задачи
func (s *Scheduler) Start(ctx context.Context) {
	s.logger.Info("Starting background scheduler", zap.Duration("interval", s.interval))

	go s.runDraftPurgeTask(ctx)
}

// Stop останавливает фоновые задачи
func (s *Scheduler) Stop() {
	s.logger.Info("Stopping background scheduler")
	close(s.stopChan)
}

// runDraftPurgeTask периодически чистит брошенные диалоги.
// Redis удаляет их сам по TTL, поэтому задача нужна только для хранения в памяти.
func (s *Scheduler) runDraftPurgeTask(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.purgeDrafts()
		case <-s.stopChan:
			s.logger.Info("Draft purge task stopped")
			return
		case <-ctx.Done():
			s.logger.Info("Draft purge task cancelled")
			return
		}
	}
}

func (s *Scheduler) purgeDrafts() {
	if n := s.drafts.PurgeExpired(); n > 0 {
		s.logger.Info("Expired drafts purged", zap.Int("count", n))
	}
}
