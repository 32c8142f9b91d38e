// Package scheduler runs the periodic background refresh of the local
// registry collections.
package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/siga-greffe/greffe-api/store"
)

// Scheduler handles the periodic pull of cases and hearings from the
// registry backend
type Scheduler struct {
	cron  *cron.Cron
	store *store.Store
	spec  string
}

// NewScheduler creates a new scheduler instance. spec is a cron expression
// or an @every duration.
func NewScheduler(s *store.Store, spec string) *Scheduler {
	return &Scheduler{
		cron:  cron.New(cron.WithLocation(time.UTC)),
		store: s,
		spec:  spec,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	_, err := s.cron.AddFunc(s.spec, s.refresh)
	if err != nil {
		zap.S().Errorw("failed to register refresh job", "spec", s.spec, "error", err)
		return
	}

	s.cron.Start()
	zap.S().Infow("registry refresh scheduler started", "spec", s.spec)
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("registry refresh scheduler stopped")
}

// refresh pulls both collections; a failing pull keeps the previous data.
func (s *Scheduler) refresh() {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	if err := s.store.RefreshAffaires(ctx); err != nil {
		zap.S().Errorw("scheduled case refresh failed", "error", err)
	}
	if err := s.store.RefreshAudiences(ctx); err != nil {
		zap.S().Errorw("scheduled hearing refresh failed", "error", err)
	}
}
