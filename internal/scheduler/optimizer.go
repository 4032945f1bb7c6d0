package scheduler

import (
	"fmt"
	"math"

	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/domain"
)

const (
	// ProductionWindowHours is the production share of a standard 8-hour day;
	// the rest goes to setup and baking.
	ProductionWindowHours = 3.5
	// moldingRatePerPerson is the manual molding throughput, units per hour.
	moldingRatePerPerson = 30
	// teamExtrapolation scales the molding headcount to a balanced crew
	// across all stations.
	teamExtrapolation = 3.33

	minOptimalMolds = 3
	maxOptimalMolds = 20
	minMolds        = 2

	// estimateCeilingHours is passed as available time when estimating, so
	// the simulation yields a duration rather than an infeasibility flag.
	estimateCeilingHours = 24
)

// AllocationPlanner produces allocation reports; *Planner implements it.
type AllocationPlanner interface {
	ComputeAllocation(req contract.AllocationRequest) (*contract.AllocationReport, error)
}

// ResourceOptimizer derives the trays, crew and molds that fit a target into
// the standard work window.
type ResourceOptimizer struct {
	config  domain.ProcessConfig
	planner AllocationPlanner
}

func NewResourceOptimizer(cfg domain.ProcessConfig, planner AllocationPlanner) *ResourceOptimizer {
	return &ResourceOptimizer{config: cfg, planner: planner}
}

// MoldingStaffForWindow is the molding headcount needed to mold targetUnits
// inside the production window.
func MoldingStaffForWindow(targetUnits int) int {
	throughput := float64(targetUnits) / ProductionWindowHours
	return int(math.Ceil(throughput / moldingRatePerPerson))
}

// WindowRecommendedStaff extrapolates the molding headcount to a full crew,
// never below four. See AlertRecommendedStaff for the alert-side formula.
func WindowRecommendedStaff(targetUnits int) int {
	return max(parallelMinimumCrew, int(math.Ceil(float64(MoldingStaffForWindow(targetUnits))*teamExtrapolation)))
}

// Recommend derives trays, crew and molds independently, then simulates the
// recommended crew and molds to report a realistic total time.
func (o *ResourceOptimizer) Recommend(targetUnits int) (*contract.ResourceRecommendation, error) {
	if targetUnits <= 0 {
		return nil, invalidInput("target units must be positive, got %d", targetUnits)
	}
	if err := o.config.ValidateGeometry(); err != nil {
		return nil, &contract.PlanError{Code: contract.ErrConfiguration, Message: err.Error()}
	}

	trays := recommendTrays(targetUnits, o.config.Dehydrator)
	staff := recommendStaff(targetUnits)
	molds := recommendMolds(targetUnits, staff.MoldingStaff, domain.ResolveMoldRestMinutes(o.config))

	req := contract.NewAllocationRequest(targetUnits, estimateCeilingHours)
	req.StaffCount = staff.RecommendedFor8h
	req.MoldsAvailable = molds.Optimal
	report, err := o.planner.ComputeAllocation(req)
	if err != nil {
		return nil, fmt.Errorf("simulating recommended resources: %w", err)
	}

	tl := report.Timeline
	return &contract.ResourceRecommendation{
		TargetUnits: targetUnits,
		Trays:       trays,
		Staff:       staff,
		Molds:       molds,
		Time: contract.TimeEstimate{
			EstimateHours:   tl.TotalHours(),
			ProductionHours: tl.ProductionHours(),
			Rationale: fmt.Sprintf("With %d people and %d molds the full cycle takes %.1fh",
				staff.RecommendedFor8h, molds.Optimal, tl.TotalHours()),
			Breakdown: contract.TimeBreakdown{
				SetupMinutes:      tl.SetupMinutes,
				ProductionMinutes: tl.ProductionMinutes,
				BakeMinutes:       tl.BakeMinutes,
			},
			Simulation: report,
		},
	}, nil
}

func recommendTrays(targetUnits int, geo domain.DehydratorGeometry) contract.TrayRecommendation {
	optimal := ceilDiv(targetUnits, geo.EdgePositions())
	minimum := ceilDiv(targetUnits, geo.CapacityPerTray)
	return contract.TrayRecommendation{
		Optimal: optimal,
		Minimum: minimum,
		Rationale: fmt.Sprintf("For the best drying quality use %d trays with units on the edges only; the absolute minimum is %d",
			optimal, minimum),
	}
}

func recommendStaff(targetUnits int) contract.StaffRecommendation {
	recommended := WindowRecommendedStaff(targetUnits)
	return contract.StaffRecommendation{
		RecommendedFor8h: recommended,
		MoldingStaff:     MoldingStaffForWindow(targetUnits),
		Rationale: fmt.Sprintf("To finish in an 8-hour day (%.1fh of production plus baking) you need about %d people",
			ProductionWindowHours, recommended),
	}
}

func recommendMolds(targetUnits, moldingStaff int, restMinutes float64) contract.MoldRecommendation {
	cyclesPerHour := 60 / restMinutes
	teamRate := float64(moldingRatePerPerson * moldingStaff)

	optimal := clamp(int(math.Ceil(teamRate/cyclesPerHour)), minOptimalMolds, maxOptimalMolds)
	minimum := max(minMolds, int(math.Ceil(float64(targetUnits)/(cyclesPerHour*ProductionWindowHours))))

	return contract.MoldRecommendation{
		Optimal:       optimal,
		Minimum:       minimum,
		RestMinutes:   restMinutes,
		CyclesPerHour: cyclesPerHour,
		Rationale: fmt.Sprintf("With %d molds rotating every %g min, molding will not be the bottleneck",
			optimal, restMinutes),
	}
}

func ceilDiv(a, b int) int {
	return int(math.Ceil(float64(a) / float64(b)))
}
