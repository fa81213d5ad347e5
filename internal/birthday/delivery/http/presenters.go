package http

import (
	"errors"
	"strings"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/pkg/gcalendar"
	"birthday-calendar-sync/pkg/response"
)

// --- Request DTOs ---

type syncReq struct {
	Calendars []string `json:"calendars"`
	DryRun    bool     `json:"dry_run"`
}

func (r syncReq) validate() error {
	for _, name := range r.Calendars {
		if strings.TrimSpace(name) == "" {
			return errors.New("calendars must not contain empty names")
		}
	}
	return nil
}

func (r syncReq) toInput() birthday.SyncInput {
	return birthday.SyncInput{
		Calendars: r.Calendars,
		DryRun:    r.DryRun,
	}
}

// --- Response DTOs ---

type operationResp struct {
	Kind    string        `json:"kind"`
	PID     string        `json:"pid"`
	Date    response.Date `json:"date"`
	Age     *int          `json:"age,omitempty"`
	EventID string        `json:"event_id,omitempty"`
}

func newOperationResp(op birthday.Operation) operationResp {
	resp := operationResp{
		Kind:    string(op.Kind),
		PID:     op.PID,
		Date:    response.Date(op.Date),
		EventID: op.EventID,
	}
	if op.Kind == birthday.OpCreate {
		age := op.Occurrence.Age
		resp.Age = &age
	}
	return resp
}

type calendarResultResp struct {
	Calendar    string          `json:"calendar"`
	CalendarID  string          `json:"calendar_id,omitempty"`
	DryRun      bool            `json:"dry_run"`
	Existing    int             `json:"existing"`
	Malformed   int             `json:"malformed"`
	Operations  []operationResp `json:"operations"`
	Created     int             `json:"created"`
	Deleted     int             `json:"deleted"`
	AlreadyGone int             `json:"already_gone"`
	Failed      int             `json:"failed"`
	Skipped     int             `json:"skipped"`
	Converged   *bool           `json:"converged,omitempty"`
	Error       string          `json:"error,omitempty"`
}

func newCalendarResultResp(res birthday.CalendarResult) calendarResultResp {
	ops := make([]operationResp, len(res.Operations))
	for i, op := range res.Operations {
		ops[i] = newOperationResp(op)
	}

	resp := calendarResultResp{
		Calendar:    res.Calendar,
		CalendarID:  res.CalendarID,
		DryRun:      res.DryRun,
		Existing:    res.Existing,
		Malformed:   res.Malformed,
		Operations:  ops,
		Created:     res.Created,
		Deleted:     res.Deleted,
		AlreadyGone: res.AlreadyGone,
		Failed:      res.Failed,
		Skipped:     res.Skipped,
		Converged:   res.Converged,
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	return resp
}

type syncResp struct {
	RunID   string               `json:"run_id"`
	Failed  bool                 `json:"failed"`
	Results []calendarResultResp `json:"results"`
}

func (h *handler) newSyncResp(out birthday.SyncOutput) syncResp {
	results := make([]calendarResultResp, len(out.Results))
	for i, res := range out.Results {
		results[i] = newCalendarResultResp(res)
	}
	return syncResp{
		RunID:   out.RunID,
		Failed:  out.Failed(),
		Results: results,
	}
}

type planResp struct {
	Result calendarResultResp `json:"result"`
}

func (h *handler) newPlanResp(res birthday.CalendarResult) planResp {
	return planResp{Result: newCalendarResultResp(res)}
}

type calendarResp struct {
	ID      string `json:"id"`
	Summary string `json:"summary"`
	Primary bool   `json:"primary"`
}

type listCalendarsResp struct {
	Calendars []calendarResp `json:"calendars"`
}

func (h *handler) newListCalendarsResp(cals []gcalendar.Calendar) listCalendarsResp {
	items := make([]calendarResp, len(cals))
	for i, cal := range cals {
		items[i] = calendarResp{ID: cal.ID, Summary: cal.Summary, Primary: cal.Primary}
	}
	return listCalendarsResp{Calendars: items}
}
