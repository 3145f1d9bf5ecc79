package hydro

import "fmt"

// Unit tags travel with the raw value up to the parameter-record boundary
// and are normalized to SI exactly once there. Evaluators never see them.

const AtmPa = 101325.0

type FlowUnit int

const (
	LitersPerSecond FlowUnit = iota
	CubicMetersPerHour
	KilogramsPerSecond
)

type PressureUnit int

const (
	KiloPascal PressureUnit = iota
	Atmosphere
)

func ParseFlowUnit(s string) (FlowUnit, error) {
	switch s {
	case "L/s", "l/s", "":
		return LitersPerSecond, nil
	case "m3/h", "m³/h":
		return CubicMetersPerHour, nil
	case "kg/s":
		return KilogramsPerSecond, nil
	}
	return LitersPerSecond, fmt.Errorf("unknown flow unit %q", s)
}

func ParsePressureUnit(s string) (PressureUnit, error) {
	switch s {
	case "kPa", "":
		return KiloPascal, nil
	case "atm":
		return Atmosphere, nil
	}
	return KiloPascal, fmt.Errorf("unknown pressure unit %q", s)
}

// NormalizeFlow converts a tagged flow rate to m³/s. Mass flow needs the
// fluid density; zero density yields the zero sentinel.
func NormalizeFlow(value float64, unit FlowUnit, density float64) float64 {
	switch unit {
	case LitersPerSecond:
		return value / 1000.0
	case CubicMetersPerHour:
		return value / 3600.0
	case KilogramsPerSecond:
		if density == 0 {
			return 0
		}
		return value / density
	}
	return 0
}

// NormalizePressure converts a tagged gauge pressure to Pa.
func NormalizePressure(value float64, unit PressureUnit) float64 {
	switch unit {
	case KiloPascal:
		return value * 1000.0
	case Atmosphere:
		return value * AtmPa
	}
	return 0
}
