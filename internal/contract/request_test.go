package contract

import (
	"testing"

	"github.com/ecollajta/smarttwin/internal/domain"
	"github.com/stretchr/testify/assert"
)

// --- AllocationRequest constructor defaults ---

func TestNewAllocationRequest_SetsDefaults(t *testing.T) {
	req := NewAllocationRequest(100, 8)

	assert.Equal(t, 100, req.TargetUnits)
	assert.Equal(t, 8.0, req.HoursAvailable)
	assert.Equal(t, 11, req.StaffCount)
	assert.Equal(t, 5, req.MoldsAvailable)
	assert.Nil(t, req.CustomBakeMinutes)
}

func TestNewAllocationRequest_ZeroTarget_Preserved(t *testing.T) {
	// Zero is preserved in the DTO; the engine validates it
	req := NewAllocationRequest(0, 8)
	assert.Equal(t, 0, req.TargetUnits)
}

func TestNewAllocationRequest_NegativeHours_Preserved(t *testing.T) {
	req := NewAllocationRequest(10, -1)
	assert.Equal(t, -1.0, req.HoursAvailable)
}

// --- Report helpers ---

func TestAllocationReport_TotalAllocatedAndLookup(t *testing.T) {
	report := &AllocationReport{
		Allocations: []StationAllocation{
			{Station: domain.StationMilling, StaffAssigned: 2},
			{Station: domain.StationMolding, StaffAssigned: 4},
		},
		Alerts: []Alert{{Severity: domain.SeverityWarning, Code: AlertMoldBottleneck}},
	}

	assert.Equal(t, 6, report.TotalAllocated())

	molding, ok := report.Allocation(domain.StationMolding)
	assert.True(t, ok)
	assert.Equal(t, 4, molding.StaffAssigned)

	_, ok = report.Allocation(domain.StationQuality)
	assert.False(t, ok)

	assert.True(t, report.HasAlert(AlertMoldBottleneck))
	assert.False(t, report.HasAlert(AlertTimeInsufficient))
}

func TestTimeline_HourConversions(t *testing.T) {
	tl := Timeline{SetupMinutes: 30, ProductionMinutes: 90, BakeMinutes: 240, TotalMinutes: 360}
	assert.Equal(t, 0.5, tl.SetupHours())
	assert.Equal(t, 1.5, tl.ProductionHours())
	assert.Equal(t, 4.0, tl.BakeHours())
	assert.Equal(t, 6.0, tl.TotalHours())
}

func TestSchedule_TotalMinutes(t *testing.T) {
	assert.Equal(t, 0.0, Schedule{}.TotalMinutes())

	s := Schedule{Phases: []SchedulePhase{
		{Name: "Setup", StartMinute: 0, EndMinute: 30},
		{Name: "Production", StartMinute: 30, EndMinute: 100},
	}}
	assert.Equal(t, 100.0, s.TotalMinutes())
	assert.Equal(t, 70.0, s.Phases[1].DurationMinutes())
}

func TestPlanError_Message(t *testing.T) {
	err := &PlanError{Code: ErrInvalidInput, Message: "target units must be positive"}
	assert.Equal(t, "INVALID_INPUT: target units must be positive", err.Error())
}
