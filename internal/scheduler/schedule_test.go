package scheduler

import (
	"testing"

	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/domain"
	"github.com/ecollajta/smarttwin/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scheduleFor(t *testing.T, opts ...testutil.ProcessConfigOption) contract.Schedule {
	t.Helper()
	cfg := testutil.NewTestProcessConfig(opts...)
	report, err := NewPlanner(cfg).ComputeAllocation(request(100, 8, 11, 20))
	require.NoError(t, err)
	return BuildSchedule(cfg, report)
}

func TestBuildSchedule_PhasesCoverTimeline(t *testing.T) {
	s := scheduleFor(t)

	require.Len(t, s.Phases, 4)
	assert.Equal(t, "Setup", s.Phases[0].Name)
	assert.Equal(t, 0.0, s.Phases[0].StartMinute)
	assert.Equal(t, 30.0, s.Phases[0].EndMinute)
	for i := 1; i < len(s.Phases); i++ {
		assert.Equal(t, s.Phases[i-1].EndMinute, s.Phases[i].StartMinute, "phase %d is contiguous", i)
	}
	assert.InDelta(t, 343.333, s.TotalMinutes(), 0.001)
}

func TestBuildSchedule_SplitsBakeAtFlip(t *testing.T) {
	s := scheduleFor(t, testutil.WithBakeFlipMin(90))

	first, second := s.Phases[2], s.Phases[3]
	assert.True(t, first.Critical)
	assert.Equal(t, flipCheckpoint, first.Checkpoint)
	assert.Equal(t, 90.0, first.DurationMinutes())
	assert.False(t, second.Critical)
	assert.Equal(t, 150.0, second.DurationMinutes())
}

func TestBuildSchedule_FlipCoversWholeBake(t *testing.T) {
	s := scheduleFor(t, testutil.WithBakeFlipMin(300))

	require.Len(t, s.Phases, 3)
	assert.Equal(t, 240.0, s.Phases[2].DurationMinutes())
}

func TestBuildSchedule_DefaultFlipIsHalfTheBake(t *testing.T) {
	s := scheduleFor(t, func(c *domain.ProcessConfig) { c.Times.BakeFlipMin = nil })

	require.Len(t, s.Phases, 4)
	assert.Equal(t, 120.0, s.Phases[2].DurationMinutes())
	assert.Equal(t, 120.0, s.Phases[3].DurationMinutes())
}
