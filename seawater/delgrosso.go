package seawater

// Del Grosso (1974), "New equation for the speed of sound in natural waters
// (with comparisons to other equations)", J. Acoust. Soc. Am. 56(4).
// Temperature on IPTS-68, pressure in kg/cm² gauge. Sub-equation 2 selects
// the Wong & Zhu (1995) refit of the same form directly on ITS-90.

// ntgCoeffs is the coefficient table of Del Grosso's NTG polynomial form,
// also used by Lovett's merged eq 1 (same form, merged dataset).
type ntgCoeffs struct {
	c000                   float64
	ct1, ct2, ct3          float64
	cs1, cs2               float64
	cp1, cp2, cp3          float64
	cts, ctp, ct2p2, ctp2  float64
	ctp3, ct3p, cs2p2      float64
	ct2s, cts2p, ctsp      float64
}

func (k *ntgCoeffs) eval(t, s, p float64) float64 {
	dct := k.ct1*t + k.ct2*t*t + k.ct3*t*t*t
	dcs := k.cs1*s + k.cs2*s*s
	dcp := k.cp1*p + k.cp2*p*p + k.cp3*p*p*p
	dcstp := k.cts*t*s + k.ctp*t*p + k.ct2p2*t*t*p*p + k.ctp2*t*p*p +
		k.ctp3*t*p*p*p + k.ct3p*t*t*t*p + k.cs2p2*s*s*p*p +
		k.ct2s*t*t*s + k.cts2p*t*s*s*p + k.ctsp*t*s*p
	return k.c000 + dct + dcs + dcp + dcstp
}

// original 1974 fit (IPTS-68)
var delGrosso74 = ntgCoeffs{
	c000:  1402.392,
	ct1:   0.501109398873e1,
	ct2:   -0.550946843172e-1,
	ct3:   0.221535969240e-3,
	cs1:   0.132952290781e1,
	cs2:   0.128955756844e-3,
	cp1:   0.156059257041e0,
	cp2:   0.244998688441e-4,
	cp3:   -0.883392332513e-8,
	cts:   -0.127562783426e-1,
	ctp:   0.635191613389e-2,
	ct2p2: 0.265484716608e-7,
	ctp2:  -0.159349479045e-6,
	ctp3:  0.522116437235e-9,
	ct3p:  -0.438031096213e-6,
	cs2p2: -0.161674495909e-8,
	ct2s:  0.968403156410e-4,
	cts2p: 0.485639620015e-5,
	ctsp:  -0.340597039004e-3,
}

// Wong & Zhu (1995) refit on ITS-90
var delGrossoWZ95 = ntgCoeffs{
	c000:  1402.392,
	ct1:   5.012285,
	ct2:   -0.551184e-1,
	ct3:   0.221649e-3,
	cs1:   1.329530,
	cs2:   0.1288598e-3,
	cp1:   0.1560592,
	cp2:   0.2449993e-4,
	cp3:   -0.8833959e-8,
	cts:   -0.1275936e-1,
	ctp:   0.6353509e-2,
	ct2p2: 0.2656174e-7,
	ctp2:  -0.1593895e-6,
	ctp3:  0.5222483e-9,
	ct3p:  -0.4383615e-6,
	cs2p2: -0.1616745e-8,
	ct2s:  0.9688441e-4,
	cts2p: 0.4857614e-5,
	ctsp:  -0.3406824e-3,
}

func delGrossoSoundSpeed(s Sample, o options) ([]float64, error) {
	info := variantInfos[QuantitySoundSpeed]["del-grosso-1974"]
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
		pk := DbarToKgCm2(at(p, i))
		switch o.equation {
		case 1:
			out[i] = delGrosso74.eval(T90ToT68(at(t, i)), at(sal, i), pk)
		default:
			out[i] = delGrossoWZ95.eval(at(t, i), at(sal, i), pk)
		}
	}
	return out, nil
}

func init() {
	soundSpeedVariants["del-grosso-1974"] = delGrossoSoundSpeed

	register(VariantInfo{
		Quantity: QuantitySoundSpeed, Tag: "del-grosso-1974", Year: 1974,
		Unit:      "m/s",
		Equations: []int{1, 2}, // 1: original fit, 2: Wong-Zhu 1995 revision
		Domain: map[string]Range{
			"temperature": {0, 30}, "salinity": {29, 43}, "pressure": {0, 10000},
		},
	})
}
