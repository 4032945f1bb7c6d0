package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func intp(v int) *int        { return &v }

func TestDefaultStationTable_WeightsSumToOne(t *testing.T) {
	table := DefaultStationTable()
	assert.Len(t, table, len(Stations))
	assert.Equal(t, 1.0, table.TotalWeight())
	assert.True(t, table.Balanced())
}

func TestDefaultStationTable_FollowsProcessOrder(t *testing.T) {
	table := DefaultStationTable()
	for i, s := range Stations {
		assert.Equal(t, s, table[i].Station)
		assert.True(t, ValidStations[string(s)], "station %s", s)
	}
}

func TestStationTable_Profile(t *testing.T) {
	table := DefaultStationTable()

	p, ok := table.Profile(StationMolding)
	require.True(t, ok)
	assert.Equal(t, 0.30, p.Weight)
	assert.Equal(t, 30.0, p.RatePerWorker)

	_, ok = table.Profile(Station("packing"))
	assert.False(t, ok)
}

func TestRegimeFor_Boundary(t *testing.T) {
	cases := []struct {
		staff  int
		regime Regime
	}{
		{0, RegimeSequential},
		{1, RegimeSequential},
		{3, RegimeSequential},
		{4, RegimeParallel},
		{40, RegimeParallel},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.regime, RegimeFor(tc.staff), "staff=%d", tc.staff)
	}
}

func TestResolveMoldRestMinutes_Precedence(t *testing.T) {
	cases := []struct {
		name string
		cfg  ProcessConfig
		want float64
	}{
		{
			name: "molds section wins",
			cfg: ProcessConfig{
				Molds: &MoldSettings{RestTimeMin: f64(4)},
				Times: ProcessTimes{MoldRestMin: f64(6)},
			},
			want: 4,
		},
		{
			name: "timing section when molds unset",
			cfg: ProcessConfig{
				Molds: &MoldSettings{},
				Times: ProcessTimes{MoldRestMin: f64(6)},
			},
			want: 6,
		},
		{
			name: "zero counts as unset",
			cfg: ProcessConfig{
				Molds: &MoldSettings{RestTimeMin: f64(0)},
				Times: ProcessTimes{MoldRestMin: f64(7.5)},
			},
			want: 7.5,
		},
		{
			name: "default",
			cfg:  ProcessConfig{},
			want: DefaultMoldRestMinutes,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ResolveMoldRestMinutes(tc.cfg))
		})
	}
}

func TestResolveStationBounds(t *testing.T) {
	cfg := ProcessConfig{
		Stations: map[Station]StationConstraints{
			StationMolding: {MinStaff: intp(2), MaxStaff: intp(6)},
			StationQuality: {MaxStaff: intp(0)},
		},
	}

	lo, hi := ResolveStationBounds(cfg, StationMolding, 11)
	assert.Equal(t, 2, lo)
	assert.Equal(t, 6, hi)

	lo, hi = ResolveStationBounds(cfg, StationQuality, 11)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 11, hi, "zero max falls back to the crew size")

	lo, hi = ResolveStationBounds(cfg, StationMilling, 9)
	assert.Equal(t, 1, lo)
	assert.Equal(t, 9, hi)
}

func TestResolveBakeFlipMinutes(t *testing.T) {
	cfg := ProcessConfig{Times: ProcessTimes{BakeFlipMin: f64(120)}}
	assert.Equal(t, 120.0, ResolveBakeFlipMinutes(cfg, 240))
	assert.Equal(t, 90.0, ResolveBakeFlipMinutes(cfg, 90), "flip is capped at the bake time")
	assert.Equal(t, 100.0, ResolveBakeFlipMinutes(ProcessConfig{}, 200))
}

func TestValidateTiming(t *testing.T) {
	ok := ProcessConfig{Times: ProcessTimes{SetupMin: f64(30), BakeTotalMin: f64(240)}}
	assert.NoError(t, ok.ValidateTiming())
	assert.Equal(t, 30.0, ok.SetupMinutes())
	assert.Equal(t, 240.0, ok.BakeMinutes())

	missingBake := ProcessConfig{Times: ProcessTimes{SetupMin: f64(30)}}
	err := missingBake.ValidateTiming()
	require.Error(t, err)
	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "times.bake_total_min", cfgErr.Field)

	missingSetup := ProcessConfig{Times: ProcessTimes{BakeTotalMin: f64(240)}}
	assert.ErrorContains(t, missingSetup.ValidateTiming(), "setup_min")
}

func TestValidateGeometry(t *testing.T) {
	cfg := ProcessConfig{Dehydrator: DehydratorGeometry{GridRows: 6, GridCols: 8, CapacityPerTray: 40}}
	assert.NoError(t, cfg.ValidateGeometry())
	assert.Equal(t, 24, cfg.Dehydrator.EdgePositions())

	cfg.Dehydrator.CapacityPerTray = 0
	assert.Error(t, cfg.ValidateGeometry())
}

func TestPositiveIntFromPtrWithDefault(t *testing.T) {
	assert.Equal(t, 3, PositiveIntFromPtrWithDefault(9, nil, intp(-1), intp(3)))
	assert.Equal(t, 9, PositiveIntFromPtrWithDefault(9))
}

func TestFloat64FromPtrWithDefault_KeepsZero(t *testing.T) {
	assert.Equal(t, 0.0, Float64FromPtrWithDefault(5, f64(0)))
	assert.Equal(t, 5.0, Float64FromPtrWithDefault(5, nil))
}
