package seawater

// Sample bundles the physical inputs of one evaluation call. Every field is
// a slice of values; a length-1 slice acts as a scalar and is broadcast
// against the other inputs. Fields a variant does not use are ignored; most
// optional fields fall back to a documented default when nil (salinity 35
// ppt, pH 8, depth 0 m, latitude 45°).
type Sample struct {
	T   []float64 // temperature, °C, ITS-90
	S   []float64 // salinity, ppt
	Z   []float64 // depth, m
	P   []float64 // pressure, dbar
	F   []float64 // acoustic frequency, kHz
	PH  []float64 // pH
	Lat []float64 // latitude, deg
}

// Scalar wraps a single value as a broadcastable input.
func Scalar(v float64) []float64 { return []float64{v} }

type namedInput struct {
	name string
	vals []float64
}

// broadcastLen returns the common broadcast length of the given inputs.
// Nil inputs are skipped; every other input must have length 1 or the common
// length.
func broadcastLen(inputs ...namedInput) (int, error) {
	n := 1
	for _, in := range inputs {
		if in.vals == nil || len(in.vals) <= 1 {
			continue
		}
		if n == 1 {
			n = len(in.vals)
		} else if len(in.vals) != n {
			return 0, &ShapeMismatchError{Input: in.name, Len: len(in.vals), Want: n}
		}
	}
	for _, in := range inputs {
		if in.vals != nil && len(in.vals) == 0 {
			return 0, &ShapeMismatchError{Input: in.name, Len: 0, Want: n}
		}
	}
	return n, nil
}

// at reads the i-th broadcast element of x.
func at(x []float64, i int) float64 {
	if len(x) == 1 {
		return x[0]
	}
	return x[i]
}

// orDefault substitutes a scalar default for a nil input.
func orDefault(x []float64, def float64) []float64 {
	if x == nil {
		return []float64{def}
	}
	return x
}

// depthOrPressure resolves the depth input (m) for depth-parameterized
// formulas: explicit depth wins; otherwise pressure is taken at the
// 1 dbar ≈ 1 m shortcut; otherwise surface.
func depthOrPressure(s Sample) []float64 {
	if s.Z != nil {
		return s.Z
	}
	if s.P != nil {
		return s.P
	}
	return []float64{0}
}

// pressureOrDepth resolves the pressure input (dbar) for
// pressure-parameterized formulas, mirroring depthOrPressure.
func pressureOrDepth(s Sample) []float64 {
	if s.P != nil {
		return s.P
	}
	if s.Z != nil {
		return s.Z
	}
	return []float64{0}
}
