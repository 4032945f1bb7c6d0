package scheduler

import (
	"fmt"
	"math"

	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/domain"
)

const (
	// moldCheckHours is the working day the mold capacity is checked against.
	moldCheckHours = 8
	// parallelMinimumCrew is the smallest crew that can staff stations in parallel.
	parallelMinimumCrew = 4
	// unitsPerSuggestedWorker drives the staffing suggestion.
	unitsPerSuggestedWorker = 15
	// saturationGroups is how many batch groups the dehydrator takes before
	// saturating.
	saturationGroups = 10
)

type AlertInput struct {
	TargetUnits      int
	StaffCount       int
	MoldsAvailable   int
	HoursAvailable   float64
	MoldRestMinutes  float64
	MaxUnitsPerGroup int
	Timeline         contract.Timeline
	Feasibility      contract.Feasibility
}

// MoldThroughputPerHour is the most units the molds can release per hour.
func MoldThroughputPerHour(moldsAvailable int, moldRestMinutes float64) float64 {
	return float64(moldsAvailable) * (60 / moldRestMinutes)
}

// AlertRecommendedStaff is the crew the staffing suggestion points to:
// max(4, ceil(target/15)). It intentionally differs from
// WindowRecommendedStaff, which sizes a crew for the standard work window.
func AlertRecommendedStaff(targetUnits int) int {
	return max(parallelMinimumCrew, int(math.Ceil(float64(targetUnits)/unitsPerSuggestedWorker)))
}

// GenerateAlerts evaluates every diagnostic rule independently; several
// alerts may be raised for the same plan.
func GenerateAlerts(in AlertInput) []contract.Alert {
	var alerts []contract.Alert

	dayCapacity := MoldThroughputPerHour(in.MoldsAvailable, in.MoldRestMinutes) * moldCheckHours
	if dayCapacity < float64(in.TargetUnits) {
		alerts = append(alerts, contract.Alert{
			Severity: domain.SeverityWarning,
			Code:     contract.AlertMoldBottleneck,
			Message: fmt.Sprintf("Molds are limiting: with %d molds only ~%d units fit in an %d-hour day",
				in.MoldsAvailable, int(math.Round(dayCapacity)), moldCheckHours),
		})
	}

	switch {
	case in.StaffCount <= rotatingCrewLimit:
		alerts = append(alerts, contract.Alert{
			Severity: domain.SeverityError,
			Code:     contract.AlertStaffCritical,
			Message: fmt.Sprintf("Critical staffing (%d): work is fully sequential and every station adds to the total; at least %d people are needed to parallelize",
				in.StaffCount, parallelMinimumCrew),
		})
	case in.StaffCount <= domain.SequentialStaffLimit:
		alerts = append(alerts, contract.Alert{
			Severity: domain.SeverityWarning,
			Code:     contract.AlertStaffLimited,
			Message:  fmt.Sprintf("Limited staffing (%d): work is mostly sequential with little parallelism", in.StaffCount),
		})
	}

	if !in.Feasibility.IsViable {
		alerts = append(alerts, contract.Alert{
			Severity: domain.SeverityError,
			Code:     contract.AlertTimeInsufficient,
			Message: fmt.Sprintf("Not enough time: needs %.1fh, %.1fh available (short by %d min)",
				in.Feasibility.TotalCycleHours, in.HoursAvailable,
				ShortfallMinutes(in.Timeline.TotalMinutes, in.HoursAvailable)),
		})
		if recommended := AlertRecommendedStaff(in.TargetUnits); in.StaffCount < recommended {
			alerts = append(alerts, contract.Alert{
				Severity: domain.SeverityInfo,
				Code:     contract.AlertStaffSuggestion,
				Message:  fmt.Sprintf("Raising the crew to %d would allow effective parallel work", recommended),
			})
		}
	}

	if in.MaxUnitsPerGroup > 0 && in.TargetUnits > saturationGroups*in.MaxUnitsPerGroup {
		alerts = append(alerts, contract.Alert{
			Severity: domain.SeverityWarning,
			Code:     contract.AlertDehydratorSaturation,
			Message:  "Mass production: the dehydrator risks saturation",
		})
	}

	return alerts
}

// ShortfallMinutes is how many whole minutes the cycle overruns the
// available hours, never less than one.
func ShortfallMinutes(totalMinutes, hoursAvailable float64) int {
	return max(1, int(math.Ceil(totalMinutes-hoursAvailable*60)))
}
