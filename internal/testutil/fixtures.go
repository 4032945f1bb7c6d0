package testutil

import "github.com/ecollajta/smarttwin/internal/domain"

func Float64(v float64) *float64 { return &v }

func Int(v int) *int { return &v }

// Process config options
type ProcessConfigOption func(*domain.ProcessConfig)

func WithSetupMin(m float64) ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		c.Times.SetupMin = Float64(m)
	}
}

func WithBakeTotalMin(m float64) ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		c.Times.BakeTotalMin = Float64(m)
	}
}

func WithBakeFlipMin(m float64) ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		c.Times.BakeFlipMin = Float64(m)
	}
}

func WithoutSetup() ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		c.Times.SetupMin = nil
	}
}

func WithoutBake() ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		c.Times.BakeTotalMin = nil
	}
}

func WithMoldRestMin(m float64) ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		c.Molds = &domain.MoldSettings{RestTimeMin: Float64(m)}
	}
}

func WithStationBounds(s domain.Station, minStaff, maxStaff int) ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		if c.Stations == nil {
			c.Stations = make(map[domain.Station]domain.StationConstraints)
		}
		c.Stations[s] = domain.StationConstraints{MinStaff: Int(minStaff), MaxStaff: Int(maxStaff)}
	}
}

func WithMaxUnitsPerGroup(n int) ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		c.Constraints.MaxUnitsPerGroup = n
	}
}

func WithDehydrator(rows, cols, capacity int) ProcessConfigOption {
	return func(c *domain.ProcessConfig) {
		c.Dehydrator = domain.DehydratorGeometry{GridRows: rows, GridCols: cols, CapacityPerTray: capacity}
	}
}

// NewTestProcessConfig returns the reference fixture: setup 30, bake 240,
// flip 120, mold rest 5, a 6x8 grid holding 40 per tray, no station
// overrides and 50 units per batch group.
func NewTestProcessConfig(opts ...ProcessConfigOption) domain.ProcessConfig {
	cfg := domain.ProcessConfig{
		Times: domain.ProcessTimes{
			SetupMin:     Float64(30),
			BakeTotalMin: Float64(240),
			BakeFlipMin:  Float64(120),
			MoldRestMin:  Float64(5),
		},
		Dehydrator: domain.DehydratorGeometry{
			GridRows:        6,
			GridCols:        8,
			CapacityPerTray: 40,
		},
		Constraints: domain.ProcessConstraints{MaxUnitsPerGroup: 50},
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
