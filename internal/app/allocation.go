package app

import (
	"time"

	"github.com/ecollajta/smarttwin/internal/domain"
)

// Request defaults used when the caller omits a resource.
const (
	DefaultStaffCount     = 11
	DefaultMoldsAvailable = 5
)

type AllocationRequest struct {
	TargetUnits    int     `json:"target_units"`
	HoursAvailable float64 `json:"hours_available"`
	StaffCount     int     `json:"staff_count"`
	MoldsAvailable int     `json:"molds_available"`
	// CustomBakeMinutes overrides the configured bake duration when set.
	CustomBakeMinutes *float64 `json:"custom_bake_minutes,omitempty"`
}

func NewAllocationRequest(targetUnits int, hoursAvailable float64) AllocationRequest {
	return AllocationRequest{
		TargetUnits:    targetUnits,
		HoursAvailable: hoursAvailable,
		StaffCount:     DefaultStaffCount,
		MoldsAvailable: DefaultMoldsAvailable,
	}
}

type StationAllocation struct {
	Station       domain.Station `json:"station"`
	StaffAssigned int            `json:"staff_assigned"`
	// Share is the station's workload fraction.
	Share float64 `json:"share"`
	// Rotating is set when the whole crew rotates through every station.
	Rotating bool `json:"rotating"`
}

type StationTiming struct {
	Station       domain.Station `json:"station"`
	StaffAssigned int            `json:"staff_assigned"`
	MinutesNeeded float64        `json:"minutes_needed"`
	Regime        domain.Regime  `json:"regime"`
}

// Timeline holds the three strictly additive phases of a production cycle,
// in minutes.
type Timeline struct {
	SetupMinutes      float64 `json:"setup_minutes"`
	ProductionMinutes float64 `json:"production_minutes"`
	BakeMinutes       float64 `json:"bake_minutes"`
	TotalMinutes      float64 `json:"total_minutes"`
}

func (t Timeline) SetupHours() float64      { return t.SetupMinutes / 60 }
func (t Timeline) ProductionHours() float64 { return t.ProductionMinutes / 60 }
func (t Timeline) BakeHours() float64       { return t.BakeMinutes / 60 }
func (t Timeline) TotalHours() float64      { return t.TotalMinutes / 60 }

type Feasibility struct {
	IsViable              bool          `json:"is_viable"`
	HoursAvailable        float64       `json:"hours_available"`
	ProductionHoursNeeded float64       `json:"production_hours_needed"`
	TotalCycleHours       float64       `json:"total_cycle_hours"`
	Regime                domain.Regime `json:"regime"`
	// MoldThroughputPerHour is the ceiling imposed by mold rest cycles.
	MoldThroughputPerHour float64 `json:"mold_throughput_per_hour"`
}

type AlertCode string

const (
	AlertMoldBottleneck       AlertCode = "MOLD_BOTTLENECK"
	AlertStaffCritical        AlertCode = "STAFF_CRITICAL"
	AlertStaffLimited         AlertCode = "STAFF_LIMITED"
	AlertTimeInsufficient     AlertCode = "TIME_INSUFFICIENT"
	AlertStaffSuggestion      AlertCode = "STAFF_SUGGESTION"
	AlertDehydratorSaturation AlertCode = "DEHYDRATOR_SATURATION"
)

type Alert struct {
	Severity domain.Severity `json:"severity"`
	Code     AlertCode       `json:"code"`
	Message  string          `json:"message"`
}

type Efficiency struct {
	UnitsPerPerson float64 `json:"units_per_person"`
	UnitsPerHour   float64 `json:"units_per_hour"`
}

type AllocationReport struct {
	Request     AllocationRequest   `json:"request"`
	Allocations []StationAllocation `json:"allocations"`
	Timings     []StationTiming     `json:"timings"`
	Timeline    Timeline            `json:"timeline"`
	Feasibility Feasibility         `json:"feasibility"`
	Efficiency  Efficiency          `json:"efficiency"`
	// RecommendedStaff is max(4, ceil(target/15)), the figure used by the
	// staffing suggestion alert.
	RecommendedStaff int     `json:"recommended_staff"`
	Alerts           []Alert `json:"alerts"`
}

// TotalAllocated sums staff across stations. It may differ from the
// requested crew after bound clamping.
func (r *AllocationReport) TotalAllocated() int {
	total := 0
	for _, a := range r.Allocations {
		total += a.StaffAssigned
	}
	return total
}

// Allocation returns the allocation of station s.
func (r *AllocationReport) Allocation(s domain.Station) (StationAllocation, bool) {
	for _, a := range r.Allocations {
		if a.Station == s {
			return a, true
		}
	}
	return StationAllocation{}, false
}

// HasAlert reports whether an alert with the given code was raised.
func (r *AllocationReport) HasAlert(code AlertCode) bool {
	for _, a := range r.Alerts {
		if a.Code == code {
			return true
		}
	}
	return false
}

type AllocationResponse struct {
	RequestID   string            `json:"request_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Report      *AllocationReport `json:"report,omitempty"`
}
