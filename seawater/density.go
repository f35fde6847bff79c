package seawater

import "math"

// Seawater density per the UNESCO EOS-80 equation of state
// (Fofonoff & Millard 1983, UNESCO Technical Papers in Marine Science 44).
// Temperature on IPTS-68, pressure in bar internally. Density follows from
// the one-atmosphere density and the secant bulk modulus:
//
//	rho(S,t,p) = rho(S,t,0) / (1 - p/K(S,t,p))
//
// Fitted range 0 < S < 42 ppt, -2 < t < 40 °C, 0 < p < 10000 dbar; inputs
// outside it are evaluated anyway (see ValidateDomain).

// rhoSMOW is the density of standard mean ocean water (Bigg 1967).
func rhoSMOW(t float64) float64 {
	return 999.842594 + 6.793952e-2*t - 9.095290e-3*t*t +
		1.001685e-4*t*t*t - 1.120083e-6*t*t*t*t + 6.536332e-9*t*t*t*t*t
}

// rhoSurface is the one-atmosphere density rho(S,t,0).
func rhoSurface(t, s float64) float64 {
	b := 8.24493e-1 - 4.0899e-3*t + 7.6438e-5*t*t - 8.2467e-7*t*t*t +
		5.3875e-9*t*t*t*t
	c := -5.72466e-3 + 1.0227e-4*t - 1.6546e-6*t*t
	const d = 4.8314e-4
	return rhoSMOW(t) + b*s + c*s*math.Sqrt(s) + d*s*s
}

// secantBulkModulus is K(S,t,p) with p in bar.
func secantBulkModulus(t, s, p float64) float64 {
	kw := 19652.21 + 148.4206*t - 2.327105*t*t + 1.360477e-2*t*t*t -
		5.155288e-5*t*t*t*t
	k0 := kw +
		s*(54.6746-0.603459*t+1.09987e-2*t*t-6.1670e-5*t*t*t) +
		s*math.Sqrt(s)*(7.944e-2+1.6483e-2*t-5.3009e-4*t*t)

	aw := 3.239908 + 1.43713e-3*t + 1.16092e-4*t*t - 5.77905e-7*t*t*t
	a := aw +
		s*(2.2838e-3-1.0981e-5*t-1.6078e-6*t*t) +
		1.91075e-4*s*math.Sqrt(s)

	bw := 8.50935e-5 - 6.12293e-6*t + 5.2787e-8*t*t
	b := bw + s*(-9.9348e-7+2.0816e-8*t+9.1697e-10*t*t)

	return k0 + a*p + b*p*p
}

// densityT68 evaluates EOS-80 directly on an IPTS-68 temperature,
// with pressure in dbar.
func densityT68(t68, s, pDbar float64) float64 {
	p := DbarToBar(pDbar)
	rho0 := rhoSurface(t68, s)
	if p == 0 {
		return rho0
	}
	return rho0 / (1 - p/secantBulkModulus(t68, s, p))
}

// Density evaluates the EOS-80 seawater density, kg/m³. Temperature is
// taken as ITS-90 and converted; salinity defaults to 35 ppt and pressure
// to 0 dbar (surface).
func Density(s Sample) ([]float64, error) {
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
		out[i] = densityT68(T90ToT68(at(t, i)), at(sal, i), at(p, i))
	}
	return out, nil
}

func init() {
	register(VariantInfo{
		Quantity: QuantityDensity, Tag: "eos-80", Year: 1983,
		Unit: "kg/m³",
		Domain: map[string]Range{
			"temperature": {-2, 40}, "salinity": {0, 42}, "pressure": {0, 10000},
		},
	})
}
