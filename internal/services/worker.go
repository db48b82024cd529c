package services

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"alfredoptarigan/career-fit/internal/logger"
)

// Janitor periodically removes idle sessions from a SessionStore.
type Janitor interface {
	Start(ctx context.Context)
	Stop()
}

type janitor struct {
	store    SessionStore
	interval time.Duration
	logger   *zap.Logger

	wg       sync.WaitGroup
	stopChan chan struct{}
	stopOnce sync.Once
}

func NewJanitor(store SessionStore, interval time.Duration, log *zap.Logger) Janitor {
	if interval <= 0 {
		interval = time.Minute
	}
	return &janitor{
		store:    store,
		interval: interval,
		logger:   logger.OrNop(log),
		stopChan: make(chan struct{}),
	}
}

// Start implements Janitor.
func (j *janitor) Start(ctx context.Context) {
	j.wg.Add(1)
	go j.sweepExpired(ctx)
	j.logger.Info("session janitor started", zap.Duration("interval", j.interval))
}

// Stop implements Janitor. It is safe to call more than once.
func (j *janitor) Stop() {
	j.stopOnce.Do(func() {
		close(j.stopChan)
	})
	j.wg.Wait()
	j.logger.Info("session janitor stopped")
}

func (j *janitor) sweepExpired(ctx context.Context) {
	defer j.wg.Done()
	ticker := time.NewTicker(j.interval)
	defer ticker.Stop()

	for {
		select {
		case <-j.stopChan:
			return
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := j.store.Sweep(); removed > 0 {
				j.logger.Info("expired sessions removed",
					zap.Int("removed", removed),
					zap.Int("remaining", j.store.Len()),
				)
			}
		}
	}
}
