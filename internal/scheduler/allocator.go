package scheduler

import (
	"math"

	"github.com/ecollajta/smarttwin/internal/contract"
	"github.com/ecollajta/smarttwin/internal/domain"
)

// rotatingCrewLimit is the largest crew that rotates through every station
// instead of being split.
const rotatingCrewLimit = 2

// AllocateStations splits staffCount across the stations of table.
//
// Crews of two or fewer rotate through every station, so each station shows
// the whole crew. Larger crews get round(staff*weight) per station, clamped
// to the configured bounds; molding is rounded up to an even headcount of at
// least two for paired unmolding. Any surplus goes to mixing, any deficit
// comes out of quality control (floored at one). Molding is never reduced,
// so the total can still differ from staffCount when bounds are tight.
func AllocateStations(staffCount int, table domain.StationTable, cfg domain.ProcessConfig) []contract.StationAllocation {
	allocations := make([]contract.StationAllocation, 0, len(table))

	if staffCount <= rotatingCrewLimit {
		for _, p := range table {
			allocations = append(allocations, contract.StationAllocation{
				Station:       p.Station,
				StaffAssigned: staffCount,
				Share:         1,
				Rotating:      true,
			})
		}
		return allocations
	}

	totalAllocated := 0
	for _, p := range table {
		raw := int(math.Round(float64(staffCount) * p.Weight))
		if p.Station == domain.StationMolding {
			raw = evenAtLeastTwo(raw)
		}

		lo, hi := domain.ResolveStationBounds(cfg, p.Station, staffCount)
		staff := clamp(raw, lo, hi)

		allocations = append(allocations, contract.StationAllocation{
			Station:       p.Station,
			StaffAssigned: staff,
			Share:         p.Weight,
		})
		totalAllocated += staff
	}

	difference := staffCount - totalAllocated
	switch {
	case difference > 0:
		adjustStation(allocations, domain.StationMixing, func(staff int) int {
			return staff + difference
		})
	case difference < 0:
		adjustStation(allocations, domain.StationQuality, func(staff int) int {
			return max(1, staff+difference)
		})
	}

	return allocations
}

func adjustStation(allocations []contract.StationAllocation, s domain.Station, fn func(int) int) {
	for i := range allocations {
		if allocations[i].Station == s {
			allocations[i].StaffAssigned = fn(allocations[i].StaffAssigned)
			return
		}
	}
}

// evenAtLeastTwo rounds n up to the next even number, never below two.
func evenAtLeastTwo(n int) int {
	even := int(math.Ceil(float64(n)/2)) * 2
	return max(2, even)
}

// clamp bounds val to [lo, hi]. When the bounds cross, lo wins.
func clamp(val, lo, hi int) int {
	if val > hi {
		val = hi
	}
	if val < lo {
		return lo
	}
	return val
}
