package seawater

import "math"

// Sound speed in seawater. Each variant evaluates a polynomial in
// temperature, salinity (often referenced to 35 ppt) and depth or pressure
// around a base speed constant, on the temperature scale and in the pressure
// unit the original fit used. Output is m/s.

type soundSpeedFunc func(s Sample, o options) ([]float64, error)

var soundSpeedVariants = map[string]soundSpeedFunc{}

// SoundSpeed evaluates a sound-speed variant. Variants with historical
// sub-equations take an Equation option (default 1); the Leroy 1969 family
// additionally takes an Accuracy option (default AccuracyComplete).
func SoundSpeed(tag string, s Sample, opts ...Option) ([]float64, error) {
	fn, ok := soundSpeedVariants[tag]
	if !ok {
		return nil, invalidSelector("variant", tag, variantTags(QuantitySoundSpeed))
	}
	return fn(s, applyOptions(opts))
}

func checkAccuracy(level string) error {
	switch level {
	case AccuracySimple, AccuracyBasic, AccuracyComplete:
		return nil
	}
	return invalidSelector("accuracy", level,
		[]string{AccuracySimple, AccuracyBasic, AccuracyComplete})
}

// Mackenzie (1981), "Nine-term equation for sound speed in the oceans",
// J. Acoust. Soc. Am. 70(3). Temperature on IPTS-68, depth in m.
func mackenzie(t, sal, z float64) float64 {
	ds := sal - 35
	return 1448.96 + 4.591*t - 5.304e-2*t*t + 2.374e-4*t*t*t +
		1.340*ds + 1.630e-2*z + 1.675e-7*z*z -
		1.025e-2*t*ds - 7.139e-13*t*z*z*z
}

func mackenzieSoundSpeed(s Sample, _ options) ([]float64, error) {
	t := orDefault(s.T, 0)
	sal := orDefault(s.S, 35)
	z := depthOrPressure(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"salinity", sal},
		namedInput{"depth", z},
	)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = mackenzie(T90ToT68(at(t, i)), at(sal, i), at(z, i))
	}
	return out, nil
}

// Coppens (1981), "Simple equations for the speed of sound in Neptunian
// waters", J. Acoust. Soc. Am. 69(3). Temperature on IPTS-68 in units of
// 10 °C, depth in km corrected for latitude-dependent gravity.
func coppens(t68, sal, zm, lat float64) float64 {
	t := t68 / 10
	ds := sal - 35
	d := (zm / 1000) * (1 - 2.6e-3*math.Cos(2*degreeToRad(lat)))

	c0 := 1449.05 + 45.7*t - 5.21*t*t + 0.23*t*t*t +
		(1.333-0.126*t+0.009*t*t)*ds
	return c0 + (16.23+0.253*t)*d + (0.213-0.1*t)*d*d +
		(0.016+0.0002*ds)*ds*t*d
}

func coppensSoundSpeed(s Sample, _ options) ([]float64, error) {
	t := orDefault(s.T, 0)
	sal := orDefault(s.S, 35)
	lat := orDefault(s.Lat, 45)
	z := depthOrPressure(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"salinity", sal},
		namedInput{"depth", z},
		namedInput{"latitude", lat},
	)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = coppens(T90ToT68(at(t, i)), at(sal, i), at(z, i), at(lat, i))
	}
	return out, nil
}

// Leroy (1969), "Development of simple equations for accurate and more
// realistic calculation of the speed of sound in seawater",
// J. Acoust. Soc. Am. 46(1B). Two depth forms (eq 1: z/61 gradient,
// eq 2: 1.63e-2 z gradient) sharing the base polynomial; the accuracy level
// controls how many of the high-order depth/latitude correction terms are
// added (sim: 1, bas: 3, com: 5). Temperature on IPTS-68, depth corrected
// for latitude-dependent gravity.
func leroy69(t68, sal, zm, lat float64, eq int, ac string) float64 {
	zc := zm * Gravity(lat) / gravity45
	ds := sal - 35
	t10 := t68 - 10
	t18 := t68 - 18

	c := 3*t10 - 6e-3*t10*t10 - 4e-2*t18*t18 + 1.2*ds - 1e-2*t18*ds
	if eq == 1 {
		c += 1492.9 + zc/61
	} else {
		c += 1493.0 + 1.63e-2*zc
	}

	// cumulative high-order corrections
	c += 2.55e-7 * zc * zc
	if ac == AccuracySimple {
		return c
	}
	c += -7.3e-12*zc*zc*zc + 1.2e-6*zc*(lat-45)
	if ac == AccuracyBasic {
		return c
	}
	return c + -9.5e-13*t68*zc*zc*zc + 3e-7*t68*t68*zc + 1.43e-5*sal*zc
}

func leroy69SoundSpeed(s Sample, o options) ([]float64, error) {
	info := variantInfos[QuantitySoundSpeed]["leroy-1969"]
	if err := checkEquation(info, o.equation); err != nil {
		return nil, err
	}
	if err := checkAccuracy(o.accuracy); err != nil {
		return nil, err
	}
	t := orDefault(s.T, 0)
	sal := orDefault(s.S, 35)
	lat := orDefault(s.Lat, 45)
	z := depthOrPressure(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"salinity", sal},
		namedInput{"depth", z},
		namedInput{"latitude", lat},
	)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = leroy69(T90ToT68(at(t, i)), at(sal, i), at(z, i), at(lat, i),
			o.equation, o.accuracy)
	}
	return out, nil
}

// Leroy, Robinson & Goldsmith (2008), "A new equation for the accurate
// calculation of sound speed in all oceans", J. Acoust. Soc. Am. 124(5).
// Temperature on ITS-90 (passthrough), depth in m, latitude in deg.
func leroy08(t, sal, z, lat float64) float64 {
	return 1402.5 + 5*t - 5.44e-2*t*t + 2.1e-4*t*t*t +
		1.33*sal - 1.23e-2*sal*t + 8.7e-5*sal*t*t +
		1.56e-2*z + 2.55e-7*z*z - 7.3e-12*z*z*z +
		1.2e-6*z*(lat-45) - 9.5e-13*t*z*z*z +
		3e-7*t*t*z + 1.43e-5*sal*z
}

func leroy08SoundSpeed(s Sample, _ options) ([]float64, error) {
	t := orDefault(s.T, 0)
	sal := orDefault(s.S, 35)
	lat := orDefault(s.Lat, 45)
	z := depthOrPressure(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"salinity", sal},
		namedInput{"depth", z},
		namedInput{"latitude", lat},
	)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		out[i] = leroy08(at(t, i), at(sal, i), at(z, i), at(lat, i))
	}
	return out, nil
}

func init() {
	soundSpeedVariants["mackenzie-1981"] = mackenzieSoundSpeed
	soundSpeedVariants["coppens-1981"] = coppensSoundSpeed
	soundSpeedVariants["leroy-1969"] = leroy69SoundSpeed
	soundSpeedVariants["leroy-2008"] = leroy08SoundSpeed

	register(VariantInfo{
		Quantity: QuantitySoundSpeed, Tag: "mackenzie-1981", Year: 1981,
		Unit: "m/s",
		Domain: map[string]Range{
			"temperature": {-2, 30}, "salinity": {25, 40}, "depth": {0, 8000},
		},
	})
	register(VariantInfo{
		Quantity: QuantitySoundSpeed, Tag: "coppens-1981", Year: 1981,
		Unit: "m/s",
		Domain: map[string]Range{
			"temperature": {0, 35}, "salinity": {0, 45}, "depth": {0, 4000},
		},
	})
	register(VariantInfo{
		Quantity: QuantitySoundSpeed, Tag: "leroy-1969", Year: 1969,
		Unit:      "m/s",
		Equations: []int{1, 2},
		Accuracies: []string{
			AccuracySimple, AccuracyBasic, AccuracyComplete,
		},
		Domain: map[string]Range{
			"temperature": {-2, 23}, "salinity": {30, 40}, "depth": {0, 8000},
		},
	})
	register(VariantInfo{
		Quantity: QuantitySoundSpeed, Tag: "leroy-2008", Year: 2008,
		Unit: "m/s",
		Domain: map[string]Range{
			"temperature": {-1, 30}, "salinity": {5, 42}, "depth": {0, 12000},
		},
	})
}
