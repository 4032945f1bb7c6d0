package service

import "github.com/ecollajta/smarttwin/internal/app"

// PlanService bundles the planning use cases behind one entry point.
type PlanService interface {
	app.AllocateUseCase
	app.OptimizeUseCase
	app.ScheduleUseCase
}
