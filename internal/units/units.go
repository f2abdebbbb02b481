// Package units converts raw snapshot quantities from the host's native
// unit system to the units requested for export. The host stores lengths in
// decimal feet (imperial snapshots) or meters (metric snapshots); derived
// areas and volumes follow the same base.
package units

import "fmt"

// Kind is the dimensional kind of a numeric attribute
type Kind int

const (
	None Kind = iota
	Length
	Area
	Volume
)

// System is the native unit system of a snapshot
type System string

const (
	Imperial System = "imperial"
	Metric   System = "metric"
)

// feet-based factors
const (
	footToMeter = 0.3048
	sqftToSqm   = footToMeter * footToMeter
	cuftToCum   = footToMeter * footToMeter * footToMeter
)

// conversion factors from native base unit to target unit, per system
var factors = map[System]map[Kind]map[string]float64{
	Imperial: {
		Length: {"ft": 1, "m": footToMeter, "cm": footToMeter * 100, "mm": footToMeter * 1000},
		Area:   {"ft2": 1, "m2": sqftToSqm},
		Volume: {"ft3": 1, "m3": cuftToCum},
	},
	Metric: {
		Length: {"m": 1, "cm": 100, "mm": 1000, "ft": 1 / footToMeter},
		Area:   {"m2": 1, "ft2": 1 / sqftToSqm},
		Volume: {"m3": 1, "ft3": 1 / cuftToCum},
	},
}

// Converter converts native quantities of each kind to one fixed target
// unit per kind, decided once per export run.
type Converter struct {
	length float64
	area   float64
	volume float64
}

// NewConverter builds a converter from a native system to the requested
// target units. Unknown systems or units are configuration errors.
func NewConverter(system System, lengthUnit, areaUnit, volumeUnit string) (*Converter, error) {
	bySystem, ok := factors[system]
	if !ok {
		return nil, fmt.Errorf("unknown unit system %q", system)
	}

	length, ok := bySystem[Length][lengthUnit]
	if !ok {
		return nil, fmt.Errorf("unsupported length unit %q", lengthUnit)
	}
	area, ok := bySystem[Area][areaUnit]
	if !ok {
		return nil, fmt.Errorf("unsupported area unit %q", areaUnit)
	}
	volume, ok := bySystem[Volume][volumeUnit]
	if !ok {
		return nil, fmt.Errorf("unsupported volume unit %q", volumeUnit)
	}

	return &Converter{length: length, area: area, volume: volume}, nil
}

// Convert converts a native-unit quantity of the given kind. Kind None
// passes the value through unchanged.
func (c *Converter) Convert(v float64, kind Kind) (float64, error) {
	switch kind {
	case None:
		return v, nil
	case Length:
		return v * c.length, nil
	case Area:
		return v * c.area, nil
	case Volume:
		return v * c.volume, nil
	default:
		return 0, fmt.Errorf("unknown unit kind %d", kind)
	}
}
