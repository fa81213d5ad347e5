package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/internal/birthday/metrics"
	"birthday-calendar-sync/internal/model"
	pkgLog "birthday-calendar-sync/pkg/log"
)

// Sync reconciles the selected calendars. Calendars run in parallel; a failing
// calendar never stops the others and is reported in its CalendarResult.
func (uc *implUseCase) Sync(ctx context.Context, input birthday.SyncInput) (birthday.SyncOutput, error) {
	targets, err := uc.selectTargets(input.Calendars)
	if err != nil {
		return birthday.SyncOutput{}, err
	}

	runID := uuid.NewString()
	ctx = pkgLog.WithRunID(ctx, runID)
	uc.l.Infof(ctx, "birthday: sync run started for %d calendar(s), dry_run=%v", len(targets), input.DryRun)

	results := make([]birthday.CalendarResult, len(targets))
	g := new(errgroup.Group)
	g.SetLimit(uc.cfg.Parallelism)
	for i, target := range targets {
		g.Go(func() error {
			results[i] = uc.syncCalendar(ctx, target, input.DryRun)
			return nil
		})
	}
	_ = g.Wait()

	out := birthday.SyncOutput{RunID: runID, Results: results}
	if out.Failed() {
		uc.l.Warnf(ctx, "birthday: sync run finished with failures")
	} else {
		uc.l.Infof(ctx, "birthday: sync run finished")
	}
	return out, nil
}

// Plan computes the operations for one calendar without applying them.
func (uc *implUseCase) Plan(ctx context.Context, calendar string) (birthday.CalendarResult, error) {
	target, err := uc.findTarget(calendar)
	if err != nil {
		return birthday.CalendarResult{}, err
	}

	res := uc.syncCalendar(ctx, target, true)
	return res, res.Err
}

// syncCalendar runs one reconciliation pass: fetch, diff, apply.
func (uc *implUseCase) syncCalendar(ctx context.Context, target model.CalendarTarget, dryRun bool) birthday.CalendarResult {
	lock := uc.lockFor(target.NameOrID)
	lock.Lock()
	defer lock.Unlock()

	ctx = pkgLog.WithCalendar(ctx, target.NameOrID)
	start := time.Now()
	res := birthday.CalendarResult{Calendar: target.NameOrID, DryRun: dryRun}

	p, err := uc.prepare(ctx, target)
	res.CalendarID = p.calendarID
	if err != nil {
		uc.l.Errorf(ctx, "birthday: pass aborted: %v", err)
		res.Err = err
		uc.metrics.ObservePass(start, metrics.ResultFailed)
		return res
	}

	res.Existing = countExisting(p.existing)
	res.Malformed = len(p.malformed)
	res.Operations = p.ops

	creates, deletes := birthday.CountOps(p.ops)
	uc.l.Infof(ctx, "birthday: %d people, %d existing events, %d to create, %d to delete",
		len(p.roster.People), res.Existing, creates, deletes)

	if dryRun {
		return res
	}

	uc.apply(ctx, p, &res)

	if uc.cfg.Verify && ctx.Err() == nil {
		converged := uc.verify(ctx, p)
		res.Converged = &converged
	}

	result := metrics.ResultOK
	if res.Failed > 0 || res.Skipped > 0 {
		result = metrics.ResultFailed
	}
	uc.metrics.ObservePass(start, result)
	uc.l.Infof(ctx, "birthday: pass done in %s: created=%d deleted=%d already_gone=%d failed=%d skipped=%d",
		time.Since(start).Round(time.Millisecond), res.Created, res.Deleted, res.AlreadyGone, res.Failed, res.Skipped)
	return res
}

// verify re-fetches the calendar and reports whether nothing is left to do.
func (uc *implUseCase) verify(ctx context.Context, p pass) bool {
	existing, _, err := uc.fetchExisting(ctx, p.calendarID)
	if err != nil {
		uc.l.Warnf(ctx, "birthday: verification fetch failed: %v", err)
		return false
	}

	remaining := birthday.Reconcile(p.expected, existing, birthday.ReconcileOptions{Prune: uc.cfg.Prune, Today: p.today})
	if len(remaining) > 0 {
		uc.l.Warnf(ctx, "birthday: calendar not converged, %d operation(s) left for the next run", len(remaining))
		return false
	}
	uc.l.Debugf(ctx, "birthday: calendar converged")
	return true
}
