package seawater

import "math"

// Depth-to-pressure and pressure-to-depth conversions. The variants are
// independent empirical fits to different datasets: a pressure-to-depth
// variant by one author composed with a depth-to-pressure variant by another
// will NOT round-trip exactly. Only the Leroy-Parthiot 1998 pair is designed
// to invert within its stated standard deviation. Depth in m, pressure in
// dbar, latitude in deg.

type depthPressureVariant struct {
	toPressure func(z, lat []float64, o options) ([]float64, error)
	toDepth    func(p, lat []float64, o options) ([]float64, error)
}

var depthPressureVariants = map[string]depthPressureVariant{}

// DepthToPressure converts depth (m) to pressure (dbar) with the named
// variant. Not every variant was published in this direction; unsupported
// ones are rejected.
func DepthToPressure(tag string, z, lat []float64, opts ...Option) ([]float64, error) {
	v, ok := depthPressureVariants[tag]
	if !ok || v.toPressure == nil {
		return nil, invalidSelector("variant", tag, directionTags(true))
	}
	if z == nil {
		return nil, &MissingInputError{Input: "depth"}
	}
	return v.toPressure(z, orDefault(lat, 45), applyOptions(opts))
}

// PressureToDepth converts pressure (dbar) to depth (m) with the named
// variant.
func PressureToDepth(tag string, p, lat []float64, opts ...Option) ([]float64, error) {
	v, ok := depthPressureVariants[tag]
	if !ok || v.toDepth == nil {
		return nil, invalidSelector("variant", tag, directionTags(false))
	}
	if p == nil {
		return nil, &MissingInputError{Input: "pressure"}
	}
	return v.toDepth(p, orDefault(lat, 45), applyOptions(opts))
}

func directionTags(toPressure bool) []string {
	var tags []string
	for tag, v := range depthPressureVariants {
		if (toPressure && v.toPressure != nil) || (!toPressure && v.toDepth != nil) {
			tags = append(tags, tag)
		}
	}
	return tags
}

func evalPair(x, lat []float64, fn func(x, lat float64) float64) ([]float64, error) {
	n, err := broadcastLen(namedInput{"value", x}, namedInput{"latitude", lat})
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = fn(at(x, i), at(lat, i))
	}
	return out, nil
}

func sin2(lat float64) float64 {
	s := math.Sin(degreeToRad(lat))
	return s * s
}

// Leroy (1968): early two-term depth-to-pressure fit in kg/cm².
func leroy68Pressure(z, lat float64) float64 {
	pk := 0.1027*(1+5.3e-3*sin2(lat))*z + 2.4e-7*z*z
	return pk * dbarPerKgCm2
}

// Bisset-Berman (1971): CTD calibration fit, directly in dbar.
func bissetBermanPressure(z, lat float64) float64 {
	return 1.0052405*(1+5.28e-3*sin2(lat))*z + 2.36e-6*z*z
}

// Ross (1978): two-term pressure-to-depth fit with the cos(2φ) gravity
// factor.
func rossDepth(p, lat float64) float64 {
	z45 := 0.99180*p - 2.26e-6*p*p
	return z45 / (1 - 2.6e-3*math.Cos(2*degreeToRad(lat)))
}

// Lovett (1978): three-term pressure-to-depth fit.
func lovettDepth(p, lat float64) float64 {
	z45 := 0.991873*p - 2.394e-6*p*p + 2.056e-11*p*p*p
	return z45 * gravity45 / Gravity(lat)
}

// Leroy (1988): full four-term form with the latitude gravity formula in
// the denominator.
func leroy88Depth(p, lat float64) float64 {
	num := ((((-1.82e-15*p)+2.279e-10)*p-2.2512e-5)*p + 9.72659) * p
	return num / (Gravity(lat) + 1.092e-6*p)
}

func init() {
	depthPressureVariants["leroy-1968"] = depthPressureVariant{
		toPressure: func(z, lat []float64, _ options) ([]float64, error) {
			return evalPair(z, lat, leroy68Pressure)
		},
	}
	depthPressureVariants["bisset-berman-1971"] = depthPressureVariant{
		toPressure: func(z, lat []float64, _ options) ([]float64, error) {
			return evalPair(z, lat, bissetBermanPressure)
		},
	}
	depthPressureVariants["ross-1978"] = depthPressureVariant{
		toDepth: func(p, lat []float64, _ options) ([]float64, error) {
			return evalPair(p, lat, rossDepth)
		},
	}
	depthPressureVariants["lovett-1978"] = depthPressureVariant{
		toDepth: func(p, lat []float64, _ options) ([]float64, error) {
			return evalPair(p, lat, lovettDepth)
		},
	}
	depthPressureVariants["leroy-1988"] = depthPressureVariant{
		toDepth: func(p, lat []float64, _ options) ([]float64, error) {
			return evalPair(p, lat, leroy88Depth)
		},
	}

	register(VariantInfo{
		Quantity: QuantityDepthPressure, Tag: "leroy-1968", Year: 1968,
		Unit:   "dbar",
		Domain: map[string]Range{"depth": {0, 10000}, "latitude": {-90, 90}},
	})
	register(VariantInfo{
		Quantity: QuantityDepthPressure, Tag: "bisset-berman-1971", Year: 1971,
		Unit:   "dbar",
		Domain: map[string]Range{"depth": {0, 10000}, "latitude": {-90, 90}},
	})
	register(VariantInfo{
		Quantity: QuantityDepthPressure, Tag: "ross-1978", Year: 1978,
		Unit:   "m",
		Domain: map[string]Range{"pressure": {0, 10000}, "latitude": {-90, 90}},
	})
	register(VariantInfo{
		Quantity: QuantityDepthPressure, Tag: "lovett-1978", Year: 1978,
		Unit:   "m",
		Domain: map[string]Range{"pressure": {0, 10000}, "latitude": {-90, 90}},
	})
	register(VariantInfo{
		Quantity: QuantityDepthPressure, Tag: "leroy-1988", Year: 1988,
		Unit:   "m",
		Domain: map[string]Range{"pressure": {0, 12000}, "latitude": {-90, 90}},
	})
}
