package birthday

import (
	"sort"
	"time"

	"birthday-calendar-sync/internal/model"
)

// Reconcile computes the operations converging existing onto expected.
//
// Matching is by date only: an occurrence with an existing event on the same
// date is left alone whatever its visible content. Every event of a PID that is
// absent from expected is deleted. Events are never updated. Creates come first,
// then deletes. The result is deterministic for a given input.
func Reconcile(expected ExpectedSet, existing ExistingSet, opts ReconcileOptions) []Operation {
	var creates, deletes []Operation

	for _, pid := range sortedKeys(expected) {
		have := datesOf(existing[pid])
		for _, o := range expected[pid] {
			if _, ok := have[dateKey(o.Date)]; ok {
				continue
			}
			creates = append(creates, Operation{Kind: OpCreate, PID: pid, Occurrence: o, Date: o.Date})
		}
		if opts.Prune {
			deletes = append(deletes, pruneOps(pid, expected[pid], existing[pid], opts.Today)...)
		}
	}

	for _, pid := range sortedKeys(existing) {
		if _, ok := expected[pid]; ok {
			continue
		}
		for _, e := range sortedEvents(existing[pid]) {
			deletes = append(deletes, Operation{Kind: OpDelete, PID: pid, EventID: e.EventID, Date: e.Date})
		}
	}

	return append(creates, deletes...)
}

// pruneOps deletes duplicates on an expected date, keeping the smallest event
// id, and events on or after today whose date is not expected.
func pruneOps(pid string, want []model.Occurrence, have []model.ManagedEvent, today time.Time) []Operation {
	wanted := make(map[string]struct{}, len(want))
	for _, o := range want {
		wanted[dateKey(o.Date)] = struct{}{}
	}
	today = model.CivilDate(today)

	var ops []Operation
	kept := make(map[string]struct{})
	for _, e := range sortedEvents(have) {
		key := dateKey(e.Date)
		if _, ok := wanted[key]; ok {
			if _, dup := kept[key]; !dup {
				kept[key] = struct{}{}
				continue
			}
		} else if e.Date.Before(today) {
			continue
		}
		ops = append(ops, Operation{Kind: OpDelete, PID: pid, EventID: e.EventID, Date: e.Date})
	}
	return ops
}

func dateKey(t time.Time) string {
	return t.Format(model.DateLayout)
}

func datesOf(events []model.ManagedEvent) map[string]struct{} {
	out := make(map[string]struct{}, len(events))
	for _, e := range events {
		out[dateKey(e.Date)] = struct{}{}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func sortedEvents(events []model.ManagedEvent) []model.ManagedEvent {
	out := append([]model.ManagedEvent(nil), events...)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.Before(out[j].Date)
		}
		return out[i].EventID < out[j].EventID
	})
	return out
}

// CountOps returns the number of creates and deletes in ops.
func CountOps(ops []Operation) (creates, deletes int) {
	for _, op := range ops {
		switch op.Kind {
		case OpCreate:
			creates++
		case OpDelete:
			deletes++
		}
	}
	return creates, deletes
}
