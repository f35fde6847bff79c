package seawater

import "math"

// Lovett (1978), "Merged seawater sound-speed equations",
// J. Acoust. Soc. Am. 63(6). Three equations fitted on the merged
// Del Grosso / NODC datasets: eq 1 in Del Grosso's NTG polynomial form,
// eq 2 a compact exponential form, eq 3 a simplified Wilson-form polynomial.
// Temperature on IPTS-48, pressure in kg/cm² gauge.
//
// Deep-water reference point (t48=2 °C, S=34.7 ppt, p=6000 dbar):
// eq 1 ≈ 1559.462, eq 2 ≈ 1559.393, eq 3 ≈ 1559.499 m/s.

// eq 1: refit of the NTG form on the merged dataset. Lovett's revision of
// Del Grosso's pressure conversion moves the pressure terms; the temperature
// and salinity terms survive nearly unchanged.
var lovettEq1 = ntgCoeffs{
	c000:  1402.394,
	ct1:   5.011094,
	ct2:   -5.509468e-2,
	ct3:   2.215360e-4,
	cs1:   1.329523,
	cs2:   1.289558e-4,
	cp1:   1.551593e-1,
	cp2:   2.421987e-5,
	cp3:   -8.833923e-9,
	cts:   -1.275628e-2,
	ctp:   6.335916e-3,
	ct2p2: 2.654847e-8,
	ctp2:  -1.593495e-7,
	ctp3:  5.221164e-10,
	ct3p:  -4.380311e-7,
	cs2p2: -1.616745e-9,
	ct2s:  9.684032e-5,
	cts2p: 4.856396e-6,
	ctsp:  -3.405970e-4,
}

func lovettEq2(t, s, p float64) float64 {
	ds := s - 35
	return 1449.08 +
		4.57*t*math.Exp(-t/86.9-(t/360)*(t/360)) +
		1.33*ds*math.Exp(-t/120) +
		0.1582*p*math.Exp(t/1200+ds/400) +
		1.46e-5*p*p*math.Exp(-t/20+ds/10)
}

func lovettEq3(t, s, p float64) float64 {
	ds := s - 35
	dct := 4.5721*t - 4.4532e-2*t*t - 2.6045e-4*t*t*t + 7.9851e-6*t*t*t*t
	dcs := 1.39799*ds + 1.69202e-3*ds*ds
	dcp := 1.60272e-1*p + 1.0268e-5*p*p + 3.5216e-9*p*p*p - 3.3603e-12*p*p*p*p
	dcstp := ds*(7.7016e-5*p-1.2943e-7*p*p-1.1244e-2*t+3.1580e-8*p*t) +
		p*(-1.8607e-4*t+7.4812e-6*t*t+4.5283e-8*t*t*t) +
		p*p*(-2.5294e-7*t+1.8563e-9*t*t) -
		1.9646e-10*p*p*p*t
	return 1449.05 + dct + dcs + dcp + dcstp
}

func lovettSoundSpeed(s Sample, o options) ([]float64, error) {
	info := variantInfos[QuantitySoundSpeed]["lovett-1978"]
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
		switch o.equation {
		case 1:
			out[i] = lovettEq1.eval(t48, at(sal, i), pk)
		case 2:
			out[i] = lovettEq2(t48, at(sal, i), pk)
		default:
			out[i] = lovettEq3(t48, at(sal, i), pk)
		}
	}
	return out, nil
}

func init() {
	soundSpeedVariants["lovett-1978"] = lovettSoundSpeed

	register(VariantInfo{
		Quantity: QuantitySoundSpeed, Tag: "lovett-1978", Year: 1978,
		Unit:      "m/s",
		Equations: []int{1, 2, 3},
		Domain: map[string]Range{
			"temperature": {-2, 30}, "salinity": {30, 37}, "pressure": {0, 10000},
		},
	})
}
