package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/ecollajta/smarttwin/internal/app"
	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/scheduler"
	"github.com/ecollajta/smarttwin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObserver struct {
	mu     sync.Mutex
	events []UseCaseEvent
}

func (r *recordingObserver) ObserveUseCase(_ context.Context, event UseCaseEvent) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, event)
}

func (r *recordingObserver) last(t *testing.T) UseCaseEvent {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	require.NotEmpty(t, r.events)
	return r.events[len(r.events)-1]
}

var fixedNow = time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

func newTestPlanService(t *testing.T, opts ...testutil.ProcessConfigOption) (*planService, *recordingObserver) {
	t.Helper()
	cfg := testutil.NewTestProcessConfig(opts...)
	planner := scheduler.NewPlanner(cfg)
	obs := &recordingObserver{}
	svc := NewPlanService(planner, scheduler.NewResourceOptimizer(cfg, planner), obs).(*planService)
	svc.now = func() time.Time { return fixedNow }
	svc.newID = func() string { return "req-1" }
	return svc, obs
}

func allocationRequest(target int, hours float64, staff, molds int) app.AllocationRequest {
	req := contract.NewAllocationRequest(target, hours)
	req.StaffCount = staff
	req.MoldsAvailable = molds
	return req
}

func TestPlanService_Allocate(t *testing.T) {
	svc, obs := newTestPlanService(t)

	resp, err := svc.Allocate(context.Background(), allocationRequest(100, 8, 11, 20))
	require.NoError(t, err)

	assert.Equal(t, "req-1", resp.RequestID)
	assert.Equal(t, fixedNow, resp.GeneratedAt)
	require.NotNil(t, resp.Report)
	assert.True(t, resp.Report.Feasibility.IsViable)

	event := obs.last(t)
	assert.Equal(t, "allocate", event.Name)
	assert.True(t, event.Success)
	assert.NoError(t, event.Err)
	assert.Equal(t, 100, event.Fields["target_units"])
	assert.Equal(t, true, event.Fields["viable"])
	assert.Equal(t, []string{}, event.Fields[AlertCodesField])
}

func TestPlanService_Allocate_ReportsAlertCodes(t *testing.T) {
	svc, obs := newTestPlanService(t)

	_, err := svc.Allocate(context.Background(), allocationRequest(100, 5, 11, 0))
	require.NoError(t, err)

	assert.Equal(t, []string{"MOLD_BOTTLENECK", "TIME_INSUFFICIENT"}, obs.last(t).Fields[AlertCodesField])
}

func TestPlanService_Allocate_InvalidInputIsObserved(t *testing.T) {
	svc, obs := newTestPlanService(t)

	resp, err := svc.Allocate(context.Background(), allocationRequest(0, 8, 11, 5))
	assert.Nil(t, resp)
	var planErr *app.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, app.ErrInvalidInput, planErr.Code)

	event := obs.last(t)
	assert.False(t, event.Success)
	assert.Equal(t, err, event.Err)
}

func TestPlanService_CancelledContext(t *testing.T) {
	svc, obs := newTestPlanService(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Allocate(ctx, allocationRequest(100, 8, 11, 5))
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.Optimize(ctx, app.OptimizeRequest{TargetUnits: 100})
	assert.ErrorIs(t, err, context.Canceled)
	_, err = svc.Schedule(ctx, allocationRequest(100, 8, 11, 5))
	assert.ErrorIs(t, err, context.Canceled)

	assert.False(t, obs.last(t).Success)
}

func TestPlanService_Optimize(t *testing.T) {
	svc, obs := newTestPlanService(t)

	resp, err := svc.Optimize(context.Background(), app.OptimizeRequest{TargetUnits: 500})
	require.NoError(t, err)

	assert.Equal(t, "req-1", resp.RequestID)
	rec := resp.Recommendation
	require.NotNil(t, rec)
	assert.Equal(t, 17, rec.Staff.RecommendedFor8h)
	assert.Equal(t, 13, rec.Molds.Optimal)

	event := obs.last(t)
	assert.Equal(t, "optimize", event.Name)
	assert.Equal(t, 17, event.Fields["staff_recommended"])
}

func TestPlanService_Optimize_InvalidTarget(t *testing.T) {
	svc, obs := newTestPlanService(t)

	_, err := svc.Optimize(context.Background(), app.OptimizeRequest{TargetUnits: 0})
	require.Error(t, err)
	assert.False(t, obs.last(t).Success)
}

func TestPlanService_Schedule(t *testing.T) {
	svc, obs := newTestPlanService(t)

	resp, err := svc.Schedule(context.Background(), allocationRequest(100, 8, 11, 20))
	require.NoError(t, err)

	require.NotNil(t, resp.Report)
	assert.Len(t, resp.Schedule.Phases, 4)
	assert.InDelta(t, resp.Report.Timeline.TotalMinutes, resp.Schedule.TotalMinutes(), 1e-9)
	assert.Equal(t, 4, obs.last(t).Fields["phase_count"])
}

func TestPlanService_Schedule_ConfigurationError(t *testing.T) {
	svc, _ := newTestPlanService(t, testutil.WithoutSetup())

	_, err := svc.Schedule(context.Background(), allocationRequest(100, 8, 11, 20))
	var planErr *app.PlanError
	require.True(t, errors.As(err, &planErr))
	assert.Equal(t, app.ErrConfiguration, planErr.Code)
}

func TestPlanService_ConcurrentCalls(t *testing.T) {
	cfg := testutil.NewTestProcessConfig()
	planner := scheduler.NewPlanner(cfg)
	svc := NewPlanService(planner, scheduler.NewResourceOptimizer(cfg, planner))

	var wg sync.WaitGroup
	results := make([]float64, 16)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := svc.Allocate(context.Background(), allocationRequest(100, 8, 11, 20))
			if err == nil {
				results[i] = resp.Report.Timeline.TotalMinutes
			}
		}(i)
	}
	wg.Wait()

	for _, total := range results {
		assert.InDelta(t, 343.333, total, 0.001)
	}
}

func TestPlanService_DefaultIDsAreUnique(t *testing.T) {
	cfg := testutil.NewTestProcessConfig()
	planner := scheduler.NewPlanner(cfg)
	svc := NewPlanService(planner, scheduler.NewResourceOptimizer(cfg, planner))

	a, err := svc.Allocate(context.Background(), allocationRequest(100, 8, 11, 20))
	require.NoError(t, err)
	b, err := svc.Allocate(context.Background(), allocationRequest(100, 8, 11, 20))
	require.NoError(t, err)
	assert.NotEqual(t, a.RequestID, b.RequestID)
	assert.NotEmpty(t, a.RequestID)
}
