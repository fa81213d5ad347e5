package usecase

import (
	"context"
	"errors"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/internal/birthday/metrics"
	"birthday-calendar-sync/internal/model"
	"birthday-calendar-sync/pkg/gcalendar"
)

// apply executes ops in order. A failed operation is logged and skipped; it is
// retried by the next run since the calendar still lacks it.
func (uc *implUseCase) apply(ctx context.Context, p pass, res *birthday.CalendarResult) {
	for i, op := range p.ops {
		if err := ctx.Err(); err != nil {
			res.Skipped = len(p.ops) - i
			for _, rest := range p.ops[i:] {
				uc.metrics.ObserveOperation(string(rest.Kind), metrics.ResultSkipped)
			}
			uc.l.Warnf(ctx, "birthday: interrupted, %d operation(s) left for the next run: %v", res.Skipped, err)
			return
		}

		switch op.Kind {
		case birthday.OpCreate:
			uc.applyCreate(ctx, p, op, res)
		case birthday.OpDelete:
			uc.applyDelete(ctx, p, op, res)
		}
	}
}

func (uc *implUseCase) applyCreate(ctx context.Context, p pass, op birthday.Operation, res *birthday.CalendarResult) {
	person, ok := p.roster.People[op.PID]
	if !ok {
		uc.l.Errorf(ctx, "birthday: create for unknown pid %s", op.PID)
		res.Failed++
		return
	}

	day := op.Occurrence.Date.Format(model.DateLayout)
	ev, err := uc.calendar.CreateEvent(ctx, birthday.EncodeEvent(p.calendarID, person, op.Occurrence))
	if err != nil {
		uc.l.Errorf(ctx, "birthday: failed to create event for %s on %s: %v", op.PID, day, err)
		uc.metrics.ObserveOperation(string(op.Kind), metrics.ResultFailed)
		res.Failed++
		return
	}

	uc.l.Infof(ctx, "birthday: created event %s for %s on %s (age %d)", ev.ID, op.PID, day, op.Occurrence.Age)
	uc.metrics.ObserveOperation(string(op.Kind), metrics.ResultOK)
	res.Created++
}

func (uc *implUseCase) applyDelete(ctx context.Context, p pass, op birthday.Operation, res *birthday.CalendarResult) {
	err := uc.calendar.DeleteEvent(ctx, p.calendarID, op.EventID)
	switch {
	case err == nil:
		uc.l.Infof(ctx, "birthday: deleted event %s of %s", op.EventID, op.PID)
		uc.metrics.ObserveOperation(string(op.Kind), metrics.ResultOK)
		res.Deleted++
	case errors.Is(err, gcalendar.ErrNotFound):
		uc.l.Debugf(ctx, "birthday: event %s of %s already gone", op.EventID, op.PID)
		uc.metrics.ObserveOperation(string(op.Kind), metrics.ResultAlreadyGone)
		res.AlreadyGone++
	default:
		uc.l.Errorf(ctx, "birthday: failed to delete event %s of %s: %v", op.EventID, op.PID, err)
		uc.metrics.ObserveOperation(string(op.Kind), metrics.ResultFailed)
		res.Failed++
	}
}
