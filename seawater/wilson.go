package seawater

// Wilson (1960), "Speed of sound in sea water as a function of temperature,
// pressure, and salinity" / "Equation for the speed of sound in sea water",
// J. Acoust. Soc. Am. 32. Temperature on IPTS-48, pressure in kg/cm² gauge.
// Equation 1 is the June 1960 fit, equation 2 the revised October 1960 fit.

func wilsonEq1(t, s, p float64) float64 {
	ds := s - 35
	dct := 4.6233*t - 5.4585e-2*t*t + 2.822e-4*t*t*t - 5.07e-7*t*t*t*t
	dcp := 1.60518e-1*p + 1.0279e-5*p*p + 3.451e-9*p*p*p - 3.503e-12*p*p*p*p
	dcs := 1.391*ds - 7.8e-2*ds*ds
	dcstp := ds*(-1.197e-2*t+2.61e-4*p-1.96e-7*p*p-2.09e-6*p*t) +
		p*(-2.796e-4*t+1.3302e-5*t*t-6.644e-8*t*t*t) +
		p*p*(-2.391e-7*t+9.286e-10*t*t) -
		1.745e-10*p*p*p*t
	return 1449.22 + dct + dcp + dcs + dcstp
}

func wilsonEq2(t, s, p float64) float64 {
	ds := s - 35
	dct := 4.5721*t - 4.4532e-2*t*t - 2.6045e-4*t*t*t + 7.9851e-6*t*t*t*t
	dcs := 1.39799*ds + 1.69202e-3*ds*ds
	dcp := 1.60272e-1*p + 1.0268e-5*p*p + 3.5216e-9*p*p*p - 3.3603e-12*p*p*p*p
	dcstp := ds*(-1.1244e-2*t+7.7711e-7*t*t+7.7016e-5*p-1.2943e-7*p*p+
		3.1580e-8*p*t+1.5790e-9*p*t*t) +
		p*(-1.8607e-4*t+7.4812e-6*t*t+4.5283e-8*t*t*t) +
		p*p*(-2.5294e-7*t+1.8563e-9*t*t) +
		p*p*p*(-1.9646e-10*t)
	return 1449.14 + dct + dcs + dcp + dcstp
}

func wilsonSoundSpeed(s Sample, o options) ([]float64, error) {
	info := variantInfos[QuantitySoundSpeed]["wilson-1960"]
	if err := checkEquation(info, o.equation); err != nil {
		return nil, err
	}
	t := orDefault(s.T, 0)
	sal := orDefault(s.S, 35)
	p := pressureOrDepth(s)
	n, err := broadcastLen(
		namedInput{"temperature", t},
		namedInput{"salinity", sal},
		namedInput{"pressure", p},
	)
	if err != nil {
		return nil, err
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		t48, err := T90ToT48(at(t, i))
		if err != nil {
			return nil, err
		}
		pk := DbarToKgCm2(at(p, i))
		if o.equation == 1 {
			out[i] = wilsonEq1(t48, at(sal, i), pk)
		} else {
			out[i] = wilsonEq2(t48, at(sal, i), pk)
		}
	}
	return out, nil
}

func init() {
	soundSpeedVariants["wilson-1960"] = wilsonSoundSpeed

	register(VariantInfo{
		Quantity: QuantitySoundSpeed, Tag: "wilson-1960", Year: 1960,
		Unit:      "m/s",
		Equations: []int{1, 2}, // 1: June fit, 2: revised October fit
		Domain: map[string]Range{
			"temperature": {-4, 30}, "salinity": {0, 37}, "pressure": {0, 10000},
		},
	})
}
