package app

import "time"

type OptimizeRequest struct {
	TargetUnits int `json:"target_units"`
}

type TrayRecommendation struct {
	Optimal   int    `json:"optimal"`
	Minimum   int    `json:"minimum"`
	Rationale string `json:"rationale"`
}

type StaffRecommendation struct {
	RecommendedFor8h int `json:"recommended_for_8h"`
	// MoldingStaff is the molding headcount the window requires.
	MoldingStaff int    `json:"molding_staff"`
	Rationale    string `json:"rationale"`
}

type MoldRecommendation struct {
	Optimal       int     `json:"optimal"`
	Minimum       int     `json:"minimum"`
	RestMinutes   float64 `json:"rest_minutes"`
	CyclesPerHour float64 `json:"cycles_per_hour"`
	Rationale     string  `json:"rationale"`
}

type TimeBreakdown struct {
	SetupMinutes      float64 `json:"setup_minutes"`
	ProductionMinutes float64 `json:"production_minutes"`
	BakeMinutes       float64 `json:"bake_minutes"`
}

type TimeEstimate struct {
	EstimateHours   float64       `json:"estimate_hours"`
	ProductionHours float64       `json:"production_hours"`
	Rationale       string        `json:"rationale"`
	Breakdown       TimeBreakdown `json:"breakdown"`
	// Simulation is the allocation report the estimate was read from.
	Simulation *AllocationReport `json:"simulation,omitempty"`
}

type ResourceRecommendation struct {
	TargetUnits int                 `json:"target_units"`
	Trays       TrayRecommendation  `json:"trays"`
	Staff       StaffRecommendation `json:"staff"`
	Molds       MoldRecommendation  `json:"molds"`
	Time        TimeEstimate        `json:"time"`
}

type RecommendationResponse struct {
	RequestID      string                  `json:"request_id"`
	GeneratedAt    time.Time               `json:"generated_at"`
	Recommendation *ResourceRecommendation `json:"recommendation,omitempty"`
}
