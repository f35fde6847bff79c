package seawater

import (
	"github.com/hhkbp2/go-logging"
)

// Leroy & Parthiot (1998), "Depth-pressure relationships in the oceans and
// seas", J. Acoust. Soc. Am. 103(3). Both directions share a "common oceans
// at 45° latitude" base curve, corrected by the latitude-dependent gravity
// factor, with a per-region correction term layered on top. The pair is
// designed to invert within the paper's stated standard deviation.
//
// Supplying a latitude outside a region's declared validity band is not an
// error: the conversion proceeds and a warning is logged.

var logger = logging.GetLogger("seawater")

// Region codes of the Leroy-Parthiot 1998 pair.
const (
	RegionCommon        = "common"         // open ("Neptunian") oceans
	RegionAtlanticNE    = "atlantic-ne"    // north-eastern Atlantic
	RegionAntarctic     = "antarctic"      // circumpolar Antarctic waters
	RegionMediterranean = "mediterranean"  // Mediterranean Sea
	RegionRedSea        = "red-sea"        // Red Sea
	RegionArctic        = "arctic"         // Arctic Ocean
	RegionJapanSea      = "japan-sea"      // Sea of Japan
	RegionSuluSea       = "sulu-sea"       // Sulu Sea
	RegionHalmahera     = "halmahera"      // Halmahera basin
	RegionCelebes       = "celebes"        // Celebes basin
	RegionWeberDeep     = "weber-deep"     // Weber deep (Banda Sea)
	RegionBlackSea      = "black-sea"      // Black Sea
	RegionBalticSea     = "baltic-sea"     // Baltic Sea
)

type lpRegion struct {
	name             string
	latMin, latMax   float64
	deltaP           func(z float64) float64 // MPa, subtracted from the base curve
}

var lpRegions = map[string]lpRegion{
	RegionCommon: {"common oceans", -90, 90,
		func(z float64) float64 { return 1.0e-2*z/(z+100) + 6.2e-6*z }},
	RegionAtlanticNE: {"north-eastern Atlantic", 30, 35,
		func(z float64) float64 { return 8e-3*z/(z+200) + 4e-6*z }},
	RegionAntarctic: {"circumpolar Antarctic waters", -90, -55,
		func(z float64) float64 { return 8e-3*z/(z+1000) + 1.6e-6*z }},
	RegionMediterranean: {"Mediterranean Sea", 30, 46,
		func(z float64) float64 { return -8.5e-6*z + 1.4e-9*z*z }},
	RegionRedSea: {"Red Sea", 10, 30,
		func(z float64) float64 { return 0 }},
	RegionArctic: {"Arctic Ocean", 65, 90,
		func(z float64) float64 { return 0 }},
	RegionJapanSea: {"Sea of Japan", 33, 52,
		func(z float64) float64 { return 7.8e-6 * z }},
	RegionSuluSea: {"Sulu Sea", 5, 10,
		func(z float64) float64 { return 1.0e-2*z/(z+100) + 1.6e-5*z + 1.0e-9*z*z }},
	RegionHalmahera: {"Halmahera basin", -2, 2,
		func(z float64) float64 { return 8e-3*z/(z+50) + 1.3e-5*z }},
	RegionCelebes: {"Celebes basin", 0, 10,
		func(z float64) float64 { return 1.2e-2*z/(z+100) + 7e-6*z + 2.5e-10*z*z }},
	RegionWeberDeep: {"Weber deep", -8, -4,
		func(z float64) float64 { return 1.2e-2*z/(z+100) + 7e-6*z + 2.5e-10*z*z }},
	RegionBlackSea: {"Black Sea", 41, 47,
		func(z float64) float64 { return 1.13e-4 * z }},
	RegionBalticSea: {"Baltic Sea", 53, 66,
		func(z float64) float64 { return 1.8e-4 * z }},
}

func lpRegionCodes() []string {
	codes := make([]string, 0, len(lpRegions))
	for code := range lpRegions {
		codes = append(codes, code)
	}
	return codes
}

// base depth-to-pressure curve for common oceans at 45° latitude, MPa.
func lpBasePressure(z float64) float64 {
	return 1.00818e-2*z + 2.465e-8*z*z - 1.25e-13*z*z*z + 2.8e-19*z*z*z*z
}

// base pressure-to-depth curve at the given latitude, m, p in MPa.
func lpBaseDepth(p, lat float64) float64 {
	num := 9.72659e2*p - 2.2512e-1*p*p + 2.279e-4*p*p*p - 1.82e-7*p*p*p*p
	return num / (Gravity(lat) + 1.092e-4*p)
}

// latitude correction factor of the depth-to-pressure direction.
func lpLatFactor(z, lat float64) float64 {
	return (Gravity(lat) - 2e-5*z) / (gravity45 - 2e-5*z)
}

// deltaZ is the pressure-domain image of the region's published pressure
// correction: the depth equivalent of deltaP evaluated near the depth the
// pressure corresponds to. Keeps the pair inverting sub-meter.
func (r lpRegion) deltaZ(pMPa float64) float64 {
	return 98.7 * r.deltaP(98.1*pMPa)
}

func (r lpRegion) checkLatitude(code string, lat []float64) {
	for i := 0; i < len(lat); i++ {
		if lat[i] < r.latMin || lat[i] > r.latMax {
			logger.Warnf("latitude %.1f outside validity band [%.0f, %.0f] of region %s (%s); result is extrapolated",
				lat[i], r.latMin, r.latMax, code, r.name)
			return
		}
	}
}

func leroyParthiotPressure(z, lat []float64, o options) ([]float64, error) {
	region, ok := lpRegions[o.region]
	if !ok {
		return nil, invalidSelector("region", o.region, lpRegionCodes())
	}
	n, err := broadcastLen(namedInput{"depth", z}, namedInput{"latitude", lat})
	if err != nil {
		return nil, err
	}
	region.checkLatitude(o.region, lat)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		zi, li := at(z, i), at(lat, i)
		pMPa := lpBasePressure(zi)*lpLatFactor(zi, li) - region.deltaP(zi)
		out[i] = pMPa * 100 // MPa -> dbar
	}
	return out, nil
}

func leroyParthiotDepth(p, lat []float64, o options) ([]float64, error) {
	region, ok := lpRegions[o.region]
	if !ok {
		return nil, invalidSelector("region", o.region, lpRegionCodes())
	}
	n, err := broadcastLen(namedInput{"pressure", p}, namedInput{"latitude", lat})
	if err != nil {
		return nil, err
	}
	region.checkLatitude(o.region, lat)
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		pMPa := at(p, i) / 100 // dbar -> MPa
		out[i] = lpBaseDepth(pMPa, at(lat, i)) + region.deltaZ(pMPa)
	}
	return out, nil
}

func init() {
	depthPressureVariants["leroy-parthiot-1998"] = depthPressureVariant{
		toPressure: leroyParthiotPressure,
		toDepth:    leroyParthiotDepth,
	}

	register(VariantInfo{
		Quantity: QuantityDepthPressure, Tag: "leroy-parthiot-1998", Year: 1998,
		Unit:    "dbar / m",
		Regions: lpRegionCodes(),
		Domain:  map[string]Range{"depth": {0, 12000}, "latitude": {-90, 90}},
	})
}
