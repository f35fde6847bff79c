package seawater

import "math"

// Chen & Millero (1977), "Speed of sound in seawater at high pressures",
// J. Acoust. Soc. Am. 62(5), in the UNESCO (1983) algorithm form
//
//	c(S,t,p) = Cw(t,p) + A(t,p)·S + B(t,p)·S^1.5 + D(t,p)·S²
//
// with temperature on IPTS-68 and pressure in bar. Sub-equation 2 selects
// the Wong & Zhu (1995) recoefficiented fit on ITS-90.

type chenMilleroCoeffs struct {
	c [4][6]float64 // Cw rows: P^0..P^3, columns T^0..T^5
	a [4][5]float64 // A  rows: P^0..P^3, columns T^0..T^4
	b [2][2]float64 // B  rows: P^0..P^1, columns T^0..T^1
	d [2]float64    // D: constant term, P term
}

func (k *chenMilleroCoeffs) eval(t, s, p float64) float64 {
	poly := func(row []float64, t float64) float64 {
		v := 0.0
		for i := len(row) - 1; i >= 0; i-- {
			v = v*t + row[i]
		}
		return v
	}
	cw := poly(k.c[0][:], t) + poly(k.c[1][:], t)*p +
		poly(k.c[2][:], t)*p*p + poly(k.c[3][:], t)*p*p*p
	a := poly(k.a[0][:], t) + poly(k.a[1][:], t)*p +
		poly(k.a[2][:], t)*p*p + poly(k.a[3][:], t)*p*p*p
	b := k.b[0][0] + k.b[0][1]*t + (k.b[1][0]+k.b[1][1]*t)*p
	d := k.d[0] + k.d[1]*p
	return cw + a*s + b*s*math.Sqrt(s) + d*s*s
}

// UNESCO (1983) coefficients of the original IPTS-68 fit
var chenMillero77 = chenMilleroCoeffs{
	c: [4][6]float64{
		{1402.388, 5.03711, -5.80852e-2, 3.3420e-4, -1.47800e-6, 3.1464e-9},
		{0.153563, 6.8982e-4, -8.1788e-6, 1.3621e-7, -6.1185e-10, 0},
		{3.1260e-5, -1.7107e-6, 2.5974e-8, -2.5335e-10, 1.0405e-12, 0},
		{-9.7729e-9, 3.8504e-10, -2.3643e-12, 0, 0, 0},
	},
	a: [4][5]float64{
		{1.389, -1.262e-2, 7.164e-5, 2.006e-6, -3.21e-8},
		{9.4742e-5, -1.2580e-5, -6.4885e-8, 1.0507e-8, -2.0122e-10},
		{-3.9064e-7, 9.1041e-9, -1.6002e-10, 7.988e-12, 0},
		{1.100e-10, 6.649e-12, -3.389e-13, 0, 0},
	},
	b: [2][2]float64{
		{-1.922e-2, -4.42e-5},
		{7.3637e-5, 1.7945e-7},
	},
	d: [2]float64{1.727e-3, -7.9836e-6},
}

// Wong & Zhu (1995) recoefficiented fit on ITS-90
var chenMilleroWZ95 = chenMilleroCoeffs{
	c: [4][6]float64{
		{1402.388, 5.03830, -5.81090e-2, 3.3432e-4, -1.47797e-6, 3.1419e-9},
		{0.153563, 6.8999e-4, -8.1829e-6, 1.3632e-7, -6.1260e-10, 0},
		{3.1260e-5, -1.7111e-6, 2.5986e-8, -2.5353e-10, 1.0415e-12, 0},
		{-9.7729e-9, 3.8513e-10, -2.3654e-12, 0, 0, 0},
	},
	a: [4][5]float64{
		{1.389, -1.262e-2, 7.166e-5, 2.008e-6, -3.21e-8},
		{9.4742e-5, -1.2583e-5, -6.4928e-8, 1.0515e-8, -2.0142e-10},
		{-3.9064e-7, 9.1061e-9, -1.6009e-10, 7.994e-12, 0},
		{1.100e-10, 6.651e-12, -3.391e-13, 0, 0},
	},
	b: [2][2]float64{
		{-1.922e-2, -4.42e-5},
		{7.3637e-5, 1.7950e-7},
	},
	d: [2]float64{1.727e-3, -7.9836e-6},
}

func chenMilleroSoundSpeed(s Sample, o options) ([]float64, error) {
	info := variantInfos[QuantitySoundSpeed]["chen-millero-1977"]
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
		pb := DbarToBar(at(p, i))
		switch o.equation {
		case 1:
			out[i] = chenMillero77.eval(T90ToT68(at(t, i)), at(sal, i), pb)
		default:
			out[i] = chenMilleroWZ95.eval(at(t, i), at(sal, i), pb)
		}
	}
	return out, nil
}

func init() {
	soundSpeedVariants["chen-millero-1977"] = chenMilleroSoundSpeed

	register(VariantInfo{
		Quantity: QuantitySoundSpeed, Tag: "chen-millero-1977", Year: 1977,
		Unit:      "m/s",
		Equations: []int{1, 2}, // 1: UNESCO 1983 fit, 2: Wong-Zhu 1995 revision
		Domain: map[string]Range{
			"temperature": {0, 40}, "salinity": {0, 40}, "pressure": {0, 10000},
		},
	})
}
