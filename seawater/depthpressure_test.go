package seawater

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// UNESCO check value for the 1988 equation: 10000 dbar at 30° latitude.
func Test_leroy88_check_value(t *testing.T) {
	assert.True(t, math.Abs(leroy88Depth(10000, 30)-9712.653) < 1e-1)
}

// The 1998 pair is built to invert within its stated standard deviation;
// round trips stay sub-meter over each region's real depth range.
func Test_leroy_parthiot_round_trip(t *testing.T) {
	depths := map[string][]float64{
		RegionCommon:        {100, 1000, 5000, 9700},
		RegionMediterranean: {200, 2000, 4000},
		RegionJapanSea:      {500, 3500},
		RegionBlackSea:      {100, 2000},
		RegionBalticSea:     {50, 450},
	}
	for region, zs := range depths {
		for _, z := range zs {
			p, err := DepthToPressure("leroy-parthiot-1998",
				Scalar(z), Scalar(45), Region(region))
			assert.NoError(t, err)

			back, err := PressureToDepth("leroy-parthiot-1998",
				p, Scalar(45), Region(region))
			assert.NoError(t, err)

			assert.True(t, math.Abs(back[0]-z) < 1.0, region)
		}
	}
}

// Independently-authored fits do not round-trip: each was fitted to its own
// dataset.
func Test_cross_author_pairs_do_not_round_trip(t *testing.T) {
	const z = 5000.0
	p, err := DepthToPressure("leroy-1968", Scalar(z), Scalar(45))
	assert.NoError(t, err)

	back, err := PressureToDepth("ross-1978", p, Scalar(45))
	assert.NoError(t, err)

	assert.True(t, math.Abs(back[0]-z) > 2.0)
}

func Test_depth_pressure_direction_support(t *testing.T) {
	// ross-1978 was only published pressure-to-depth
	_, err := DepthToPressure("ross-1978", Scalar(1000), nil)
	assert.Error(t, err)

	var selErr *InvalidSelectorError
	assert.True(t, errors.As(err, &selErr))

	// leroy-1968 was only published depth-to-pressure
	_, err = PressureToDepth("leroy-1968", Scalar(1000), nil)
	assert.Error(t, err)
}

// A missing value slice is a typed error, never an index panic.
func Test_depth_pressure_missing_input(t *testing.T) {
	for _, tag := range []string{"leroy-1968", "bisset-berman-1971", "leroy-parthiot-1998"} {
		_, err := DepthToPressure(tag, nil, Scalar(45))
		assert.Error(t, err, tag)

		var missingErr *MissingInputError
		assert.True(t, errors.As(err, &missingErr))
		assert.Equal(t, "depth", missingErr.Input)
	}

	for _, tag := range []string{"ross-1978", "lovett-1978", "leroy-1988", "leroy-parthiot-1998"} {
		_, err := PressureToDepth(tag, nil, Scalar(45))
		assert.Error(t, err, tag)

		var missingErr *MissingInputError
		assert.True(t, errors.As(err, &missingErr))
		assert.Equal(t, "pressure", missingErr.Input)
	}
}

func Test_leroy_parthiot_unknown_region(t *testing.T) {
	_, err := DepthToPressure("leroy-parthiot-1998",
		Scalar(1000), Scalar(45), Region("atlantis"))
	assert.Error(t, err)

	var selErr *InvalidSelectorError
	assert.True(t, errors.As(err, &selErr))
	assert.Equal(t, "region", selErr.Selector)
}

// A latitude outside a region's validity band is extrapolated with a
// warning, never rejected.
func Test_leroy_parthiot_out_of_band_latitude(t *testing.T) {
	p, err := DepthToPressure("leroy-parthiot-1998",
		Scalar(1000), Scalar(0), Region(RegionMediterranean))
	assert.NoError(t, err)
	assert.Equal(t, 1, len(p))
	assert.True(t, p[0] > 0)
}

func Test_depth_to_pressure_magnitude(t *testing.T) {
	// 1 dbar per meter holds to about 2% down to abyssal depth
	for _, tag := range []string{"leroy-1968", "bisset-berman-1971", "leroy-parthiot-1998"} {
		p, err := DepthToPressure(tag, Scalar(5000), Scalar(45))
		assert.NoError(t, err, tag)
		assert.True(t, math.Abs(p[0]/5000-1) < 0.03, tag)
	}
}

func Test_pressure_to_depth_variants_agree(t *testing.T) {
	const p = 6000.0
	var depths []float64
	for _, tag := range []string{"ross-1978", "lovett-1978", "leroy-1988", "leroy-parthiot-1998"} {
		z, err := PressureToDepth(tag, Scalar(p), Scalar(45))
		assert.NoError(t, err, tag)
		depths = append(depths, z[0])
	}
	for i := 1; i < len(depths); i++ {
		assert.True(t, math.Abs(depths[i]-depths[0]) < 20.0)
	}
}

func Test_depth_pressure_latitude_default(t *testing.T) {
	withDefault, err := DepthToPressure("leroy-parthiot-1998", Scalar(3000), nil)
	assert.NoError(t, err)

	at45, err := DepthToPressure("leroy-parthiot-1998", Scalar(3000), Scalar(45))
	assert.NoError(t, err)

	assert.Equal(t, at45, withDefault)
}
