package job_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"birthday-calendar-sync/internal/birthday"
	"birthday-calendar-sync/internal/birthday/delivery/job"
	"birthday-calendar-sync/pkg/gcalendar"
	"birthday-calendar-sync/pkg/log"
)

type mockUseCase struct {
	calls   atomic.Int32
	started chan struct{}
}

func (m *mockUseCase) Sync(ctx context.Context, input birthday.SyncInput) (birthday.SyncOutput, error) {
	if m.calls.Add(1) == 1 {
		close(m.started)
	}
	return birthday.SyncOutput{RunID: "run"}, nil
}

func (m *mockUseCase) Plan(ctx context.Context, calendar string) (birthday.CalendarResult, error) {
	return birthday.CalendarResult{}, nil
}

func (m *mockUseCase) ExportICS(ctx context.Context, calendar string) ([]byte, error) {
	return nil, nil
}

func (m *mockUseCase) ListCalendars(ctx context.Context) ([]gcalendar.Calendar, error) {
	return nil, nil
}

func TestNew(t *testing.T) {
	uc := &mockUseCase{started: make(chan struct{})}

	_, err := job.New(log.NewNop(), uc, job.Config{Schedule: "not a schedule"})
	assert.Error(t, err)

	_, err = job.New(log.NewNop(), nil, job.Config{})
	assert.Error(t, err)

	for _, schedule := range []string{"", "@hourly", "*/15 * * * *"} {
		_, err := job.New(log.NewNop(), uc, job.Config{Schedule: schedule})
		assert.NoError(t, err, schedule)
	}
}

func TestRunOnStart(t *testing.T) {
	uc := &mockUseCase{started: make(chan struct{})}
	s, err := job.New(log.NewNop(), uc, job.Config{Schedule: "@yearly", RunOnStart: true})
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Run(ctx) }()

	select {
	case <-uc.started:
	case <-time.After(5 * time.Second):
		t.Fatal("sync was not triggered on start")
	}

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("scheduler did not stop")
	}
	assert.Equal(t, int32(1), uc.calls.Load())
}

func TestRunWithoutStartupSync(t *testing.T) {
	uc := &mockUseCase{started: make(chan struct{})}
	s, err := job.New(log.NewNop(), uc, job.Config{Schedule: "@yearly"})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	require.NoError(t, s.Run(ctx))
	assert.Equal(t, int32(0), uc.calls.Load())
}
