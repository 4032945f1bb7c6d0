package contract

import "github.com/ecollajta/smarttwin/internal/app"

type OptimizeRequest = app.OptimizeRequest

type TrayRecommendation = app.TrayRecommendation

type StaffRecommendation = app.StaffRecommendation

type MoldRecommendation = app.MoldRecommendation

type TimeBreakdown = app.TimeBreakdown

type TimeEstimate = app.TimeEstimate

type ResourceRecommendation = app.ResourceRecommendation

type RecommendationResponse = app.RecommendationResponse

type SchedulePhase = app.SchedulePhase

type Schedule = app.Schedule

type ScheduleResponse = app.ScheduleResponse
