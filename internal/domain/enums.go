package domain

type Station string

const (
	StationMilling Station = "milling"
	StationDosing  Station = "dosing"
	StationMixing  Station = "mixing"
	StationMolding Station = "molding"
	StationBaking  Station = "baking"
	StationQuality Station = "quality"
)

// Stations lists every work station in process order.
var Stations = []Station{
	StationMilling,
	StationDosing,
	StationMixing,
	StationMolding,
	StationBaking,
	StationQuality,
}

// ValidStations is the canonical set of accepted station keys.
var ValidStations = map[string]bool{
	"milling": true, "dosing": true, "mixing": true,
	"molding": true, "baking": true, "quality": true,
}

type Regime string

const (
	RegimeSequential Regime = "sequential"
	RegimeParallel   Regime = "parallel"
)

// SequentialStaffLimit is the largest crew that still works stations one
// after another.
const SequentialStaffLimit = 3

// RegimeFor returns the scheduling regime implied by a crew size.
func RegimeFor(staffCount int) Regime {
	if staffCount <= SequentialStaffLimit {
		return RegimeSequential
	}
	return RegimeParallel
}

type Severity string

const (
	SeverityError   Severity = "error"
	SeverityWarning Severity = "warning"
	SeverityInfo    Severity = "info"
)
