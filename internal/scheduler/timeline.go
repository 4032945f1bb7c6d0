package scheduler

import (
	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/domain"
)

const (
	// parallelOverhead models pipeline fill and coordination between
	// concurrently staffed stations.
	parallelOverhead = 1.1

	// SafetyMarginHours is subtracted from the available hours before the
	// viability comparison (about 36 seconds).
	SafetyMarginHours = 0.01
)

type TimelineInput struct {
	TargetUnits    int
	StaffCount     int
	HoursAvailable float64
	Allocations    []contract.StationAllocation
	SetupMinutes   float64
	BakeMinutes    float64
}

type TimelineResult struct {
	Timings     []contract.StationTiming
	Timeline    contract.Timeline
	Feasibility contract.Feasibility
}

// SimulateTimeline turns an allocation into station timings, the three-phase
// cycle timeline and its feasibility.
//
// Sequential crews work every station with the whole crew, one station after
// another, so production is the sum of station times. Parallel crews are
// bounded by the slowest station plus the coordination overhead. A crew of
// zero is simulated as one worker.
func SimulateTimeline(in TimelineInput, table domain.StationTable) TimelineResult {
	regime := domain.RegimeFor(in.StaffCount)
	assigned := make(map[domain.Station]int, len(in.Allocations))
	for _, a := range in.Allocations {
		assigned[a.Station] = a.StaffAssigned
	}

	timings := make([]contract.StationTiming, 0, len(table))
	var sequentialMin, slowestMin float64
	for _, p := range table {
		staff := in.StaffCount
		if regime == domain.RegimeParallel {
			if s, ok := assigned[p.Station]; ok {
				staff = s
			} else {
				staff = 1
			}
		}
		staff = max(1, staff)

		minutes := float64(in.TargetUnits) / (p.RatePerWorker * float64(staff)) * 60
		timings = append(timings, contract.StationTiming{
			Station:       p.Station,
			StaffAssigned: staff,
			MinutesNeeded: minutes,
			Regime:        regime,
		})

		sequentialMin += minutes
		if minutes > slowestMin {
			slowestMin = minutes
		}
	}

	productionMin := sequentialMin
	if regime == domain.RegimeParallel {
		productionMin = slowestMin * parallelOverhead
	}

	timeline := contract.Timeline{
		SetupMinutes:      in.SetupMinutes,
		ProductionMinutes: productionMin,
		BakeMinutes:       in.BakeMinutes,
		TotalMinutes:      in.SetupMinutes + productionMin + in.BakeMinutes,
	}

	return TimelineResult{
		Timings:  timings,
		Timeline: timeline,
		Feasibility: contract.Feasibility{
			IsViable:              IsViable(timeline.TotalHours(), in.HoursAvailable),
			HoursAvailable:        in.HoursAvailable,
			ProductionHoursNeeded: timeline.ProductionHours(),
			TotalCycleHours:       timeline.TotalHours(),
			Regime:                regime,
		},
	}
}

// IsViable compares unrounded cycle hours against the available hours minus
// the safety margin.
func IsViable(totalCycleHours, hoursAvailable float64) bool {
	return totalCycleHours <= hoursAvailable-SafetyMarginHours
}

// Bottleneck returns the slowest station timing.
func Bottleneck(timings []contract.StationTiming) (contract.StationTiming, bool) {
	if len(timings) == 0 {
		return contract.StationTiming{}, false
	}
	slowest := timings[0]
	for _, t := range timings[1:] {
		if t.MinutesNeeded > slowest.MinutesNeeded {
			slowest = t
		}
	}
	return slowest, true
}
