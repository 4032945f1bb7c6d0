package domain

import "fmt"

// DefaultMoldRestMinutes applies when neither the molds section nor the
// timing section configures a rest time.
const DefaultMoldRestMinutes = 5.0

// ProcessConfig carries the physical and process constants of the line.
// It is supplied by the caller and treated as immutable.
type ProcessConfig struct {
	Times       ProcessTimes                   `yaml:"times"`
	Dehydrator  DehydratorGeometry             `yaml:"dehydrator"`
	Stations    map[Station]StationConstraints `yaml:"stations,omitempty"`
	Constraints ProcessConstraints             `yaml:"constraints"`
	Molds       *MoldSettings                  `yaml:"molds,omitempty"`
}

// ProcessTimes are durations in minutes. Setup and bake have no safe
// default and must be present.
type ProcessTimes struct {
	SetupMin     *float64 `yaml:"setup_min"`
	BakeTotalMin *float64 `yaml:"bake_total_min"`
	BakeFlipMin  *float64 `yaml:"bake_flip_min,omitempty"`
	MoldRestMin  *float64 `yaml:"mold_rest_min,omitempty"`
}

type DehydratorGeometry struct {
	GridRows        int `yaml:"grid_rows"`
	GridCols        int `yaml:"grid_cols"`
	CapacityPerTray int `yaml:"capacity_per_tray"`
}

// EdgePositions counts the perimeter slots of one tray.
func (g DehydratorGeometry) EdgePositions() int {
	return 2*g.GridRows + 2*(g.GridCols-2)
}

type StationConstraints struct {
	MinStaff *int `yaml:"min_staff,omitempty"`
	MaxStaff *int `yaml:"max_staff,omitempty"`
}

type ProcessConstraints struct {
	MaxUnitsPerGroup int `yaml:"max_units_per_group"`
}

type MoldSettings struct {
	RestTimeMin *float64 `yaml:"rest_time_min,omitempty"`
}

// ConfigError reports a process constant that the engine cannot run without.
type ConfigError struct {
	Field string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("process config: %s is required", e.Field)
}

// ValidateTiming checks the constants needed to simulate a timeline.
func (c ProcessConfig) ValidateTiming() error {
	if c.Times.SetupMin == nil || *c.Times.SetupMin < 0 {
		return &ConfigError{Field: "times.setup_min"}
	}
	if c.Times.BakeTotalMin == nil || *c.Times.BakeTotalMin < 0 {
		return &ConfigError{Field: "times.bake_total_min"}
	}
	return nil
}

// ValidateGeometry checks the dehydrator constants needed for tray planning.
func (c ProcessConfig) ValidateGeometry() error {
	if c.Dehydrator.GridRows <= 0 || c.Dehydrator.GridCols < 2 {
		return &ConfigError{Field: "dehydrator.grid_rows/grid_cols"}
	}
	if c.Dehydrator.CapacityPerTray <= 0 {
		return &ConfigError{Field: "dehydrator.capacity_per_tray"}
	}
	return nil
}

// SetupMinutes returns the configured setup time. Call ValidateTiming first.
func (c ProcessConfig) SetupMinutes() float64 {
	return Float64FromPtrWithDefault(0, c.Times.SetupMin)
}

// BakeMinutes returns the configured total bake time. Call ValidateTiming first.
func (c ProcessConfig) BakeMinutes() float64 {
	return Float64FromPtrWithDefault(0, c.Times.BakeTotalMin)
}

// ResolveMoldRestMinutes picks the mold rest time with this precedence:
// molds.rest_time_min, then times.mold_rest_min, then DefaultMoldRestMinutes.
// Non-positive values count as unset.
func ResolveMoldRestMinutes(c ProcessConfig) float64 {
	var fromMolds *float64
	if c.Molds != nil {
		fromMolds = c.Molds.RestTimeMin
	}
	return PositiveFloat64FromPtrWithDefault(DefaultMoldRestMinutes, fromMolds, c.Times.MoldRestMin)
}

// ResolveBakeFlipMinutes returns the length of the first bake phase: the
// configured flip time capped at bakeMinutes, or half of bakeMinutes.
func ResolveBakeFlipMinutes(c ProcessConfig, bakeMinutes float64) float64 {
	flip := PositiveFloat64FromPtrWithDefault(bakeMinutes/2, c.Times.BakeFlipMin)
	if flip > bakeMinutes {
		return bakeMinutes
	}
	return flip
}

// ResolveStationBounds returns the staff bounds of station s for a crew of
// staffCount. Unset or non-positive bounds default to min 1 and
// max staffCount.
func ResolveStationBounds(c ProcessConfig, s Station, staffCount int) (lo, hi int) {
	var minPtr, maxPtr *int
	if sc, ok := c.Stations[s]; ok {
		minPtr, maxPtr = sc.MinStaff, sc.MaxStaff
	}
	lo = PositiveIntFromPtrWithDefault(1, minPtr)
	hi = PositiveIntFromPtrWithDefault(staffCount, maxPtr)
	return lo, hi
}
