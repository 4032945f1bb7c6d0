package scheduler

import (
	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/domain"
)

const flipCheckpoint = "Critical point: flip the units and dry residual liquid"

// BuildSchedule lays the report's timeline out as consecutive phases. The
// bake is split at the flip checkpoint; the second bake phase is omitted
// when the flip time covers the whole bake.
func BuildSchedule(cfg domain.ProcessConfig, report *contract.AllocationReport) contract.Schedule {
	tl := report.Timeline
	flip := domain.ResolveBakeFlipMinutes(cfg, tl.BakeMinutes)

	var phases []contract.SchedulePhase
	cursor := 0.0
	add := func(phase contract.SchedulePhase, minutes float64) {
		phase.StartMinute = cursor
		phase.EndMinute = cursor + minutes
		cursor = phase.EndMinute
		phases = append(phases, phase)
	}

	add(contract.SchedulePhase{
		Name:       "Setup",
		Activities: []string{"Preheat the oven", "Prepare molds", "Weigh raw materials"},
	}, tl.SetupMinutes)

	add(contract.SchedulePhase{
		Name:       "Production",
		Activities: []string{"Milling", "Dosing", "Mixing", "Molding"},
	}, tl.ProductionMinutes)

	add(contract.SchedulePhase{
		Name:       "Bake phase 1",
		Activities: []string{"Initial dehydration", "Temperature monitoring"},
		Critical:   true,
		Checkpoint: flipCheckpoint,
	}, flip)

	if rest := tl.BakeMinutes - flip; rest > 0 {
		add(contract.SchedulePhase{
			Name:       "Bake phase 2",
			Activities: []string{"Final dehydration", "Visual quality check"},
		}, rest)
	}

	return contract.Schedule{Phases: phases}
}
