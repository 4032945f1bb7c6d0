package contract

import "github.com/ecollajta/smarttwin/internal/app"

const (
	DefaultStaffCount     = app.DefaultStaffCount
	DefaultMoldsAvailable = app.DefaultMoldsAvailable
)

type AllocationRequest = app.AllocationRequest

func NewAllocationRequest(targetUnits int, hoursAvailable float64) AllocationRequest {
	return app.NewAllocationRequest(targetUnits, hoursAvailable)
}

type StationAllocation = app.StationAllocation

type StationTiming = app.StationTiming

type Timeline = app.Timeline

type Feasibility = app.Feasibility

type AlertCode = app.AlertCode

const (
	AlertMoldBottleneck       AlertCode = app.AlertMoldBottleneck
	AlertStaffCritical        AlertCode = app.AlertStaffCritical
	AlertStaffLimited         AlertCode = app.AlertStaffLimited
	AlertTimeInsufficient     AlertCode = app.AlertTimeInsufficient
	AlertStaffSuggestion      AlertCode = app.AlertStaffSuggestion
	AlertDehydratorSaturation AlertCode = app.AlertDehydratorSaturation
)

type Alert = app.Alert

type Efficiency = app.Efficiency

type AllocationReport = app.AllocationReport

type AllocationResponse = app.AllocationResponse

type PlanErrorCode = app.PlanErrorCode

const (
	ErrInvalidInput  PlanErrorCode = app.ErrInvalidInput
	ErrConfiguration PlanErrorCode = app.ErrConfiguration
)

type PlanError = app.PlanError
