package domain

import "math"

// StationProfile is the fixed workload share and per-worker throughput of a
// station. Rates are units per worker per hour.
type StationProfile struct {
	Station       Station
	Weight        float64
	RatePerWorker float64
}

// StationTable holds one profile per station, in process order.
type StationTable []StationProfile

// DefaultStationTable returns the workload weights and rates of the
// reference molding line. Molding is the manual bottleneck.
func DefaultStationTable() StationTable {
	return StationTable{
		{Station: StationMilling, Weight: 0.15, RatePerWorker: 60},
		{Station: StationDosing, Weight: 0.10, RatePerWorker: 90},
		{Station: StationMixing, Weight: 0.25, RatePerWorker: 40},
		{Station: StationMolding, Weight: 0.30, RatePerWorker: 30},
		{Station: StationBaking, Weight: 0.10, RatePerWorker: 100},
		{Station: StationQuality, Weight: 0.10, RatePerWorker: 100},
	}
}

// Profile returns the profile for station s.
func (t StationTable) Profile(s Station) (StationProfile, bool) {
	for _, p := range t {
		if p.Station == s {
			return p, true
		}
	}
	return StationProfile{}, false
}

// TotalWeight sums the workload fractions of every station.
func (t StationTable) TotalWeight() float64 {
	var sum float64
	for _, p := range t {
		sum += p.Weight
	}
	return sum
}

// Balanced reports whether the weights add up to 1 within float tolerance.
func (t StationTable) Balanced() bool {
	return math.Abs(t.TotalWeight()-1) < 1e-9
}
