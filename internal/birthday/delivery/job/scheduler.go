package job

import (
	"context"
	"sync"

	"birthday-calendar-sync/internal/birthday"
)

// Run schedules the sync and blocks until ctx is cancelled. It waits for a
// running sync to finish before returning.
func (s *Scheduler) Run(ctx context.Context) error {
	s.mu.Lock()
	s.ctx = ctx
	s.mu.Unlock()

	if _, err := s.cron.AddJob(s.schedule, s.job); err != nil {
		return err
	}

	s.cron.Start()
	s.l.Infof(ctx, "Birthday sync scheduled: %s", s.schedule)

	var startup sync.WaitGroup
	if s.runOnStart {
		startup.Go(s.job.Run)
	}

	<-ctx.Done()
	s.l.Info(ctx, "Stopping birthday sync scheduler...")
	<-s.cron.Stop().Done()
	startup.Wait()
	return nil
}

func (s *Scheduler) runSync() {
	s.mu.Lock()
	ctx := s.ctx
	s.mu.Unlock()
	if ctx == nil || ctx.Err() != nil {
		return
	}

	out, err := s.uc.Sync(ctx, birthday.SyncInput{})
	if err != nil {
		s.l.Errorf(ctx, "scheduled sync failed: %v", err)
		return
	}
	if out.Failed() {
		s.l.Warnf(ctx, "scheduled sync %s finished with failures, retrying on the next tick", out.RunID)
	}
}
