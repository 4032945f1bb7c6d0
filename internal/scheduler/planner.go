package scheduler

import (
	"fmt"

	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/domain"
)

// Planner composes station allocation, timeline simulation and alerting
// into a full allocation report. It holds no mutable state and is safe for
// concurrent use.
type Planner struct {
	config   domain.ProcessConfig
	stations domain.StationTable
}

type PlannerOption func(*Planner)

// WithStationTable replaces the default station weights and rates.
func WithStationTable(table domain.StationTable) PlannerOption {
	return func(p *Planner) {
		p.stations = table
	}
}

func NewPlanner(cfg domain.ProcessConfig, opts ...PlannerOption) *Planner {
	p := &Planner{
		config:   cfg,
		stations: domain.DefaultStationTable(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Config returns the process constants the planner was built with.
func (p *Planner) Config() domain.ProcessConfig {
	return p.config
}

// ComputeAllocation plans a production run. Structurally invalid input and
// missing timing constants fail with a *contract.PlanError; undesirable but
// valid plans (no molds, tiny crews, unreachable targets) succeed and carry
// alerts instead.
func (p *Planner) ComputeAllocation(req contract.AllocationRequest) (*contract.AllocationReport, error) {
	if err := ValidateAllocationRequest(req); err != nil {
		return nil, err
	}
	if err := p.config.ValidateTiming(); err != nil {
		return nil, &contract.PlanError{Code: contract.ErrConfiguration, Message: err.Error()}
	}

	bakeMinutes := domain.Float64FromPtrWithDefault(p.config.BakeMinutes(), req.CustomBakeMinutes)
	moldRest := domain.ResolveMoldRestMinutes(p.config)

	allocations := AllocateStations(req.StaffCount, p.stations, p.config)
	sim := SimulateTimeline(TimelineInput{
		TargetUnits:    req.TargetUnits,
		StaffCount:     req.StaffCount,
		HoursAvailable: req.HoursAvailable,
		Allocations:    allocations,
		SetupMinutes:   p.config.SetupMinutes(),
		BakeMinutes:    bakeMinutes,
	}, p.stations)
	sim.Feasibility.MoldThroughputPerHour = MoldThroughputPerHour(req.MoldsAvailable, moldRest)

	alerts := GenerateAlerts(AlertInput{
		TargetUnits:      req.TargetUnits,
		StaffCount:       req.StaffCount,
		MoldsAvailable:   req.MoldsAvailable,
		HoursAvailable:   req.HoursAvailable,
		MoldRestMinutes:  moldRest,
		MaxUnitsPerGroup: p.config.Constraints.MaxUnitsPerGroup,
		Timeline:         sim.Timeline,
		Feasibility:      sim.Feasibility,
	})

	return &contract.AllocationReport{
		Request:          req,
		Allocations:      allocations,
		Timings:          sim.Timings,
		Timeline:         sim.Timeline,
		Feasibility:      sim.Feasibility,
		Efficiency:       computeEfficiency(req, sim.Timeline),
		RecommendedStaff: AlertRecommendedStaff(req.TargetUnits),
		Alerts:           alerts,
	}, nil
}

func computeEfficiency(req contract.AllocationRequest, tl contract.Timeline) contract.Efficiency {
	eff := contract.Efficiency{
		UnitsPerPerson: float64(req.TargetUnits) / float64(max(1, req.StaffCount)),
	}
	if hours := tl.ProductionHours(); hours > 0 {
		eff.UnitsPerHour = float64(req.TargetUnits) / hours
	}
	return eff
}

// ValidateAllocationRequest rejects inputs the formulas cannot divide by.
func ValidateAllocationRequest(req contract.AllocationRequest) error {
	switch {
	case req.TargetUnits <= 0:
		return invalidInput("target units must be positive, got %d", req.TargetUnits)
	case req.StaffCount < 0:
		return invalidInput("staff count must not be negative, got %d", req.StaffCount)
	case !(req.HoursAvailable >= 0):
		return invalidInput("hours available must not be negative, got %v", req.HoursAvailable)
	case req.MoldsAvailable < 0:
		return invalidInput("molds available must not be negative, got %d", req.MoldsAvailable)
	case req.CustomBakeMinutes != nil && !(*req.CustomBakeMinutes >= 0):
		return invalidInput("custom bake minutes must not be negative, got %v", *req.CustomBakeMinutes)
	}
	return nil
}

func invalidInput(format string, args ...any) error {
	return &contract.PlanError{Code: contract.ErrInvalidInput, Message: fmt.Sprintf(format, args...)}
}
