package service

import (
	"context"
	"time"

	"github.com/ecollajta/smarttwin/internal/app"
	"github.com/ecollajta/smarttwin/internal/scheduler"
	"github.com/google/uuid"
)

type planService struct {
	planner   *scheduler.Planner
	optimizer *scheduler.ResourceOptimizer
	observer  UseCaseObserver

	now   func() time.Time
	newID func() string
}

func NewPlanService(
	planner *scheduler.Planner,
	optimizer *scheduler.ResourceOptimizer,
	observers ...UseCaseObserver,
) PlanService {
	return &planService{
		planner:   planner,
		optimizer: optimizer,
		observer:  useCaseObserverOrNoop(observers),
		now:       func() time.Time { return time.Now().UTC() },
		newID:     func() string { return uuid.New().String() },
	}
}

func (s *planService) Allocate(ctx context.Context, req app.AllocationRequest) (resp *app.AllocationResponse, err error) {
	fields := requestFields(req)
	defer s.observe(ctx, "allocate", s.now(), fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var report *app.AllocationReport
	report, err = s.planner.ComputeAllocation(req)
	if err != nil {
		return nil, err
	}
	reportFields(fields, report)

	return &app.AllocationResponse{
		RequestID:   s.newID(),
		GeneratedAt: s.now(),
		Report:      report,
	}, nil
}

func (s *planService) Optimize(ctx context.Context, req app.OptimizeRequest) (resp *app.RecommendationResponse, err error) {
	fields := map[string]any{"target_units": req.TargetUnits}
	defer s.observe(ctx, "optimize", s.now(), fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var rec *app.ResourceRecommendation
	rec, err = s.optimizer.Recommend(req.TargetUnits)
	if err != nil {
		return nil, err
	}
	fields["staff_recommended"] = rec.Staff.RecommendedFor8h
	fields["molds_optimal"] = rec.Molds.Optimal
	fields["trays_optimal"] = rec.Trays.Optimal
	fields["estimate_hours"] = rec.Time.EstimateHours

	return &app.RecommendationResponse{
		RequestID:      s.newID(),
		GeneratedAt:    s.now(),
		Recommendation: rec,
	}, nil
}

func (s *planService) Schedule(ctx context.Context, req app.AllocationRequest) (resp *app.ScheduleResponse, err error) {
	fields := requestFields(req)
	defer s.observe(ctx, "schedule", s.now(), fields, &err)

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	var report *app.AllocationReport
	report, err = s.planner.ComputeAllocation(req)
	if err != nil {
		return nil, err
	}
	reportFields(fields, report)

	sched := scheduler.BuildSchedule(s.planner.Config(), report)
	fields["phase_count"] = len(sched.Phases)

	return &app.ScheduleResponse{
		RequestID:   s.newID(),
		GeneratedAt: s.now(),
		Report:      report,
		Schedule:    sched,
	}, nil
}

func (s *planService) observe(ctx context.Context, name string, startedAt time.Time, fields map[string]any, errp *error) {
	err := *errp
	s.observer.ObserveUseCase(ctx, UseCaseEvent{
		Name:      name,
		StartedAt: startedAt,
		Duration:  s.now().Sub(startedAt),
		Success:   err == nil,
		Err:       err,
		Fields:    fields,
	})
}

func requestFields(req app.AllocationRequest) map[string]any {
	return map[string]any{
		"target_units":    req.TargetUnits,
		"staff_count":     req.StaffCount,
		"molds_available": req.MoldsAvailable,
		"hours_available": req.HoursAvailable,
	}
}

func reportFields(fields map[string]any, report *app.AllocationReport) {
	codes := make([]string, 0, len(report.Alerts))
	for _, a := range report.Alerts {
		codes = append(codes, string(a.Code))
	}
	fields["regime"] = string(report.Feasibility.Regime)
	fields["viable"] = report.Feasibility.IsViable
	fields["total_hours"] = report.Feasibility.TotalCycleHours
	fields[AlertCodesField] = codes
}
