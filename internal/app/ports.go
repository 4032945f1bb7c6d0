package app

import "context"

type AllocateUseCase interface {
	Allocate(ctx context.Context, req AllocationRequest) (*AllocationResponse, error)
}

type OptimizeUseCase interface {
	Optimize(ctx context.Context, req OptimizeRequest) (*RecommendationResponse, error)
}

type ScheduleUseCase interface {
	Schedule(ctx context.Context, req AllocationRequest) (*ScheduleResponse, error)
}
