package app

import "time"

type SchedulePhase struct {
	Name        string   `json:"name"`
	StartMinute float64  `json:"start_minute"`
	EndMinute   float64  `json:"end_minute"`
	Activities  []string `json:"activities,omitempty"`
	Critical    bool     `json:"critical"`
	// Checkpoint describes the action due when the phase ends.
	Checkpoint string `json:"checkpoint,omitempty"`
}

func (p SchedulePhase) DurationMinutes() float64 {
	return p.EndMinute - p.StartMinute
}

type Schedule struct {
	Phases []SchedulePhase `json:"phases"`
}

// TotalMinutes returns the end of the last phase.
func (s Schedule) TotalMinutes() float64 {
	if len(s.Phases) == 0 {
		return 0
	}
	return s.Phases[len(s.Phases)-1].EndMinute
}

type ScheduleResponse struct {
	RequestID   string            `json:"request_id"`
	GeneratedAt time.Time         `json:"generated_at"`
	Report      *AllocationReport `json:"report,omitempty"`
	Schedule    Schedule          `json:"schedule"`
}
