package seawater

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Published check values (IPTS-68 temperature directly, so the scalar core
// is exercised without the ITS-90 conversion).
func Test_francois_garrison_check_values(t *testing.T) {
	sum := func(t68, sal, z, ph, f float64) float64 {
		bor, mg, wat := francoisGarrison(t68, sal, z, ph, f)
		return bor + mg + wat
	}

	assert.True(t, math.Abs(sum(0, 30, 0, 8, 1)-0.0610) < 1e-3)
	assert.True(t, math.Abs(sum(0, 35, 0, 8, 10)-1.29) < 2e-2)
	assert.True(t, math.Abs(sum(10, 35, 0, 8, 100)-33.6) < 3e-1)
}

func Test_absorption_total_is_sum_of_contributors(t *testing.T) {
	sample := Sample{
		T: []float64{0, 10, 20},
		S: Scalar(35),
		Z: Scalar(1000),
		F: Scalar(50),
	}
	for _, tag := range []string{
		"fisher-simmons-1977", "francois-garrison-1982",
		"ainslie-mccolm-1998", "kinsler-2000",
	} {
		total, err := Absorption(tag, sample)
		assert.NoError(t, err)

		parts, err := AbsorptionParts(tag, sample)
		assert.NoError(t, err)

		for i := range total {
			sum := parts.BoricAcid[i] + parts.MagnesiumSulphate[i] + parts.PureWater[i]
			assert.Equal(t, sum, total[i], tag)
		}
	}
}

// The Kinsler coefficient set is the Fisher-Simmons one generalized by S/35
// and the pH factor, so at S=35 and pH=8 the two must agree bit for bit.
func Test_kinsler_reduces_to_fisher_simmons(t *testing.T) {
	sample := Sample{
		T:  []float64{0, 5, 15, 25},
		S:  Scalar(35),
		PH: Scalar(8),
		Z:  Scalar(2000),
		F:  Scalar(100),
	}
	fs, err := Absorption("fisher-simmons-1977", sample)
	assert.NoError(t, err)

	kin, err := Absorption("kinsler-2000", sample)
	assert.NoError(t, err)

	assert.Equal(t, fs, kin)
}

func Test_absorption_requires_frequency(t *testing.T) {
	for _, tag := range []string{
		"fisher-simmons-1977", "francois-garrison-1982",
		"ainslie-mccolm-1998", "kinsler-2000",
	} {
		_, err := Absorption(tag, Sample{T: Scalar(10)})
		assert.Error(t, err, tag)

		var missingErr *MissingInputError
		assert.True(t, errors.As(err, &missingErr))
		assert.Equal(t, "frequency", missingErr.Input)
	}
}

func Test_absorption_unknown_variant(t *testing.T) {
	_, err := Absorption("thorp-1967", Sample{F: Scalar(10)})
	assert.Error(t, err)

	var selErr *InvalidSelectorError
	assert.True(t, errors.As(err, &selErr))
	assert.Equal(t, "variant", selErr.Selector)
}

func Test_absorption_output_modes(t *testing.T) {
	sample := Sample{T: Scalar(10), F: Scalar(10)}

	total, parts, err := EvalAbsorption("francois-garrison-1982", sample, ModeTotal)
	assert.NoError(t, err)
	assert.NotNil(t, total)
	assert.Nil(t, parts)

	total, parts, err = EvalAbsorption("francois-garrison-1982", sample, ModePerContributor)
	assert.NoError(t, err)
	assert.Nil(t, total)
	assert.NotNil(t, parts)

	_, _, err = EvalAbsorption("francois-garrison-1982", sample, OutputMode("split"))
	assert.Error(t, err)
}

func Test_parse_output_mode(t *testing.T) {
	mode, err := ParseOutputMode("total")
	assert.NoError(t, err)
	assert.Equal(t, ModeTotal, mode)

	mode, err = ParseOutputMode("contributors")
	assert.NoError(t, err)
	assert.Equal(t, ModePerContributor, mode)

	_, err = ParseOutputMode("both")
	assert.Error(t, err)
}

func Test_absorption_is_deterministic(t *testing.T) {
	sample := Sample{
		T: []float64{3, 13, 23},
		S: Scalar(34),
		Z: Scalar(500),
		F: Scalar(25),
	}
	first, err := Absorption("francois-garrison-1982", sample)
	assert.NoError(t, err)

	second, err := Absorption("francois-garrison-1982", sample)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

// Absorption grows with frequency over the covered band for all variants.
func Test_absorption_monotonic_in_frequency(t *testing.T) {
	for _, tag := range []string{
		"fisher-simmons-1977", "francois-garrison-1982",
		"ainslie-mccolm-1998", "kinsler-2000",
	} {
		a, err := Absorption(tag, Sample{
			T: Scalar(10),
			F: []float64{1, 10, 100},
		})
		assert.NoError(t, err)
		assert.True(t, a[0] < a[1], tag)
		assert.True(t, a[1] < a[2], tag)
	}
}
