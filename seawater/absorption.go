package seawater

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Sound absorption in seawater. Every variant is the sum of three additive
// contributors with the usual relaxation form
//
//	A * P * fr * f² / (fr² + f²)
//
// for the ionic terms (boric acid, magnesium sulphate) and A * P * f² for
// pure water, which has no relaxation frequency in the covered band. A is
// the surface absorption coefficient, fr the relaxation frequency and P a
// depth-correction polynomial. Results are in dB/km for all variants; the
// Fisher-Simmons family computes in Np/m and is rescaled by npmToDbkm.

// npmToDbkm converts Np/m to dB/km (20/ln(10) * 1000, rounded as published).
const npmToDbkm = 8686.0

// Contributions holds the per-contributor absorption terms in the fixed
// order boric acid, magnesium sulphate, pure water. All in dB/km.
type Contributions struct {
	BoricAcid         []float64
	MagnesiumSulphate []float64
	PureWater         []float64
}

type absorptionFunc func(s Sample) (Contributions, error)

var absorptionVariants = map[string]absorptionFunc{}

// AbsorptionParts evaluates an absorption variant in per-contributor mode.
func AbsorptionParts(tag string, s Sample) (Contributions, error) {
	fn, ok := absorptionVariants[tag]
	if !ok {
		return Contributions{}, invalidSelector("variant", tag, variantTags(QuantityAbsorption))
	}
	return fn(s)
}

// Absorption evaluates an absorption variant in total mode: the elementwise
// sum of the three contributors, dB/km. The summation order is fixed
// (boric acid, then magnesium sulphate, then pure water).
func Absorption(tag string, s Sample) ([]float64, error) {
	c, err := AbsorptionParts(tag, s)
	if err != nil {
		return nil, err
	}
	total := make([]float64, len(c.BoricAcid))
	copy(total, c.BoricAcid)
	floats.Add(total, c.MagnesiumSulphate)
	floats.Add(total, c.PureWater)
	return total, nil
}

// EvalAbsorption dispatches on an OutputMode selector. Exactly one of the
// two results is populated; an unknown mode is rejected.
func EvalAbsorption(tag string, s Sample, mode OutputMode) ([]float64, *Contributions, error) {
	switch mode {
	case ModeTotal:
		total, err := Absorption(tag, s)
		return total, nil, err
	case ModePerContributor:
		c, err := AbsorptionParts(tag, s)
		if err != nil {
			return nil, nil, err
		}
		return nil, &c, nil
	}
	return nil, nil, invalidSelector("output mode", string(mode),
		[]string{string(ModeTotal), string(ModePerContributor)})
}

// Fisher & Simmons (1977), "Sound absorption in sea water",
// J. Acoust. Soc. Am. 62(3). Fitted at salinity 35 ppt and pH 8; salinity
// and pH inputs are ignored. Temperature on IPTS-68, frequency in Hz
// internally, pressure from the z/10 atm shortcut. Computes Np/m.
func fisherSimmons(t68, patm, fHz float64) (bor, mg, wat float64) {
	theta := t68 + 273.1
	ff := fHz * fHz

	a1 := 1.03e-8 + 2.36e-10*t68 - 5.22e-12*t68*t68
	f1 := 1.32e3 * theta * math.Exp(-1700/theta)

	a2 := 5.62e-8 + 7.52e-10*t68
	f2 := 1.55e7 * theta * math.Exp(-3052/theta)
	p2 := 1 - 10.3e-4*patm + 3.7e-7*patm*patm

	a3 := (55.9 - 2.37*t68 + 4.77e-2*t68*t68 - 3.48e-4*t68*t68*t68) * 1e-15
	p3 := 1 - 3.84e-4*patm + 7.57e-8*patm*patm

	bor = a1 * f1 * ff / (f1*f1 + ff)
	mg = a2 * p2 * f2 * ff / (f2*f2 + ff)
	wat = a3 * p3 * ff
	return bor, mg, wat
}

func fisherSimmonsAbsorption(s Sample) (Contributions, error) {
	if s.F == nil {
		return Contributions{}, &MissingInputError{Input: "frequency"}
	}
	t := orDefault(s.T, 0)
	z := depthOrPressure(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"depth", z},
		namedInput{"frequency", s.F},
	)
	if err != nil {
		return Contributions{}, err
	}
	c := newContributions(n)
	for i := 0; i < n; i++ {
		t68 := T90ToT68(at(t, i))
		patm := DepthToAtm(at(z, i))
		bor, mg, wat := fisherSimmons(t68, patm, at(s.F, i)*1000)
		c.BoricAcid[i] = bor
		c.MagnesiumSulphate[i] = mg
		c.PureWater[i] = wat
	}
	c.scale(npmToDbkm)
	return c, nil
}

// Kinsler, Frey, Coppens & Sanders (2000), "Fundamentals of Acoustics",
// 4th ed., ch. 8: the Fisher-Simmons coefficient set generalized to
// arbitrary salinity and pH (S/35 on the ionic terms, 10^(0.78(pH-8)) on
// the borate term). Reduces exactly to Fisher-Simmons at S=35, pH=8.
func kinslerAbsorption(s Sample) (Contributions, error) {
	if s.F == nil {
		return Contributions{}, &MissingInputError{Input: "frequency"}
	}
	t := orDefault(s.T, 0)
	sal := orDefault(s.S, 35)
	ph := orDefault(s.PH, 8)
	z := depthOrPressure(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"salinity", sal},
		namedInput{"depth", z},
		namedInput{"frequency", s.F},
		namedInput{"pH", ph},
	)
	if err != nil {
		return Contributions{}, err
	}
	c := newContributions(n)
	for i := 0; i < n; i++ {
		t68 := T90ToT68(at(t, i))
		patm := DepthToAtm(at(z, i))
		bor, mg, wat := fisherSimmons(t68, patm, at(s.F, i)*1000)
		salScale := at(sal, i) / 35
		c.BoricAcid[i] = bor * salScale * math.Pow(10, 0.78*(at(ph, i)-8))
		c.MagnesiumSulphate[i] = mg * salScale
		c.PureWater[i] = wat
	}
	c.scale(npmToDbkm)
	return c, nil
}

// Francois & Garrison (1982), "Sound absorption based on ocean
// measurements", J. Acoust. Soc. Am. 72(6), part II. Temperature on
// IPTS-68, frequency in kHz, depth in m. Computes dB/km directly.
func francoisGarrison(t68, sal, z, ph, f float64) (bor, mg, wat float64) {
	theta := t68 + 273.0
	ff := f * f

	// sound speed estimate used by the fit itself
	c := 1412 + 3.21*t68 + 1.19*sal + 0.0167*z

	a1 := (8.86 / c) * math.Pow(10, 0.78*ph-5)
	f1 := 2.8 * math.Sqrt(sal/35) * math.Pow(10, 4-1245/theta)

	a2 := 21.44 * (sal / c) * (1 + 0.025*t68)
	f2 := 8.17 * math.Pow(10, 8-1990/theta) / (1 + 0.0018*(sal-35))
	p2 := 1 - 1.37e-4*z + 6.2e-9*z*z

	var a3 float64
	if t68 <= 20 {
		a3 = 4.937e-4 - 2.59e-5*t68 + 9.11e-7*t68*t68 - 1.50e-8*t68*t68*t68
	} else {
		a3 = 3.964e-4 - 1.146e-5*t68 + 1.45e-7*t68*t68 - 6.5e-10*t68*t68*t68
	}
	p3 := 1 - 3.83e-5*z + 4.9e-10*z*z

	bor = a1 * f1 * ff / (f1*f1 + ff)
	mg = a2 * p2 * f2 * ff / (f2*f2 + ff)
	wat = a3 * p3 * ff
	return bor, mg, wat
}

func francoisGarrisonAbsorption(s Sample) (Contributions, error) {
	if s.F == nil {
		return Contributions{}, &MissingInputError{Input: "frequency"}
	}
	t := orDefault(s.T, 0)
	sal := orDefault(s.S, 35)
	ph := orDefault(s.PH, 8)
	z := depthOrPressure(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"salinity", sal},
		namedInput{"depth", z},
		namedInput{"frequency", s.F},
		namedInput{"pH", ph},
	)
	if err != nil {
		return Contributions{}, err
	}
	c := newContributions(n)
	for i := 0; i < n; i++ {
		bor, mg, wat := francoisGarrison(
			T90ToT68(at(t, i)), at(sal, i), at(z, i), at(ph, i), at(s.F, i))
		c.BoricAcid[i] = bor
		c.MagnesiumSulphate[i] = mg
		c.PureWater[i] = wat
	}
	return c, nil
}

// Ainslie & McColm (1998), "A simplified formula for viscous and chemical
// absorption in sea water", J. Acoust. Soc. Am. 103(3). Temperature in °C
// (ITS-90 passthrough), depth in km, frequency in kHz. dB/km.
func ainslieMcColm(t, sal, zkm, ph, f float64) (bor, mg, wat float64) {
	ff := f * f

	f1 := 0.78 * math.Sqrt(sal/35) * math.Exp(t/26)
	f2 := 42 * math.Exp(t/17)

	bor = 0.106 * (f1 * ff / (f1*f1 + ff)) * math.Exp((ph-8)/0.56)
	mg = 0.52 * (1 + t/43) * (sal / 35) * (f2 * ff / (f2*f2 + ff)) * math.Exp(-zkm/6)
	wat = 4.9e-4 * ff * math.Exp(-(t/27 + zkm/17))
	return bor, mg, wat
}

func ainslieMcColmAbsorption(s Sample) (Contributions, error) {
	if s.F == nil {
		return Contributions{}, &MissingInputError{Input: "frequency"}
	}
	t := orDefault(s.T, 0)
	sal := orDefault(s.S, 35)
	ph := orDefault(s.PH, 8)
	z := depthOrPressure(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"salinity", sal},
		namedInput{"depth", z},
		namedInput{"frequency", s.F},
		namedInput{"pH", ph},
	)
	if err != nil {
		return Contributions{}, err
	}
	c := newContributions(n)
	for i := 0; i < n; i++ {
		bor, mg, wat := ainslieMcColm(
			at(t, i), at(sal, i), at(z, i)/1000, at(ph, i), at(s.F, i))
		c.BoricAcid[i] = bor
		c.MagnesiumSulphate[i] = mg
		c.PureWater[i] = wat
	}
	return c, nil
}

func newContributions(n int) Contributions {
	return Contributions{
		BoricAcid:         make([]float64, n),
		MagnesiumSulphate: make([]float64, n),
		PureWater:         make([]float64, n),
	}
}

func (c *Contributions) scale(factor float64) {
	floats.Scale(factor, c.BoricAcid)
	floats.Scale(factor, c.MagnesiumSulphate)
	floats.Scale(factor, c.PureWater)
}

func init() {
	absorptionVariants["fisher-simmons-1977"] = fisherSimmonsAbsorption
	absorptionVariants["francois-garrison-1982"] = francoisGarrisonAbsorption
	absorptionVariants["ainslie-mccolm-1998"] = ainslieMcColmAbsorption
	absorptionVariants["kinsler-2000"] = kinslerAbsorption

	register(VariantInfo{
		Quantity: QuantityAbsorption, Tag: "fisher-simmons-1977", Year: 1977,
		Unit: "dB/km",
		Domain: map[string]Range{
			"temperature": {-2, 35}, "depth": {0, 8000}, "frequency": {10, 400},
		},
	})
	register(VariantInfo{
		Quantity: QuantityAbsorption, Tag: "francois-garrison-1982", Year: 1982,
		Unit: "dB/km",
		Domain: map[string]Range{
			"temperature": {-2, 30}, "salinity": {30, 40}, "depth": {0, 7000},
			"frequency": {0.2, 1000}, "pH": {7.7, 8.3},
		},
	})
	register(VariantInfo{
		Quantity: QuantityAbsorption, Tag: "ainslie-mccolm-1998", Year: 1998,
		Unit: "dB/km",
		Domain: map[string]Range{
			"temperature": {-6, 35}, "salinity": {5, 50}, "depth": {0, 7000},
			"frequency": {0.1, 1000}, "pH": {7.7, 8.3},
		},
	})
	register(VariantInfo{
		Quantity: QuantityAbsorption, Tag: "kinsler-2000", Year: 2000,
		Unit: "dB/km",
		Domain: map[string]Range{
			"temperature": {-2, 35}, "salinity": {30, 40}, "depth": {0, 8000},
			"frequency": {10, 400}, "pH": {7.7, 8.3},
		},
	})
}
