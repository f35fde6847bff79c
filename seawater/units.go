package seawater

import "math"

// Unit and temperature-scale conversions shared by all formula groups.
// Each published formula was fitted on the temperature scale of its era;
// inputs arrive as ITS-90 and are converted here, in one place, so that the
// magic constants are not duplicated per formula file.

const (
	dbarPerBar   = 10.0
	dbarPerKgCm2 = 9.80665
	dbarPerAtm   = 10.132501
)

// T90ToT68 converts an ITS-90 temperature (°C) to IPTS-68.
func T90ToT68(t90 float64) float64 {
	return 1.00024 * t90
}

// T68ToT48 converts an IPTS-68 temperature (°C) to IPTS-48 by inverting
//
//	t68 = 0.99956*t48 + 4.4e-6*t48²
//
// using the principal root. Temperatures below the parabola vertex have no
// real root and are a domain error.
func T68ToT48(t68 float64) (float64, error) {
	d := 0.9991202 + 1.76e-5*t68
	if d < 0 {
		return 0, &DomainError{Input: "t68", Value: t68,
			Reason: "no real IPTS-48 equivalent (negative discriminant)"}
	}
	return (-0.99956 + math.Sqrt(d)) / 8.8e-6, nil
}

// T90ToT48 converts an ITS-90 temperature (°C) to IPTS-48.
func T90ToT48(t90 float64) (float64, error) {
	return T68ToT48(T90ToT68(t90))
}

// DbarToBar converts pressure from decibar to bar.
func DbarToBar(p float64) float64 { return p / dbarPerBar }

// DbarToKgCm2 converts pressure from decibar to kg-force per cm².
func DbarToKgCm2(p float64) float64 { return p / dbarPerKgCm2 }

// DbarToAtm converts pressure from decibar to standard atmospheres.
func DbarToAtm(p float64) float64 { return p / dbarPerAtm }

// DepthToAtm approximates the gauge pressure (atm) at depth z (m). Several
// absorption formulas use this shortcut instead of a full depth-pressure
// variant.
func DepthToAtm(z float64) float64 { return z / 10.0 }

// Gravity returns the surface gravitational acceleration (m/s²) at the given
// latitude (deg), as used by the Leroy-Parthiot depth-pressure family.
func Gravity(lat float64) float64 {
	s2 := math.Sin(degreeToRad(lat))
	s2 *= s2
	return 9.780318 * (1 + (-2.36e-5*s2+5.2788e-3)*s2)
}

// gravity45 is the reference gravity of the "common oceans at 45° latitude"
// base curves.
var gravity45 = Gravity(45)

func degreeToRad(deg float64) float64 {
	return deg * math.Pi / 180.0
}
