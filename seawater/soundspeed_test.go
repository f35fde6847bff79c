package seawater

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Mackenzie's published check value (IPTS-68 temperature directly).
func Test_mackenzie_check_value(t *testing.T) {
	assert.True(t, math.Abs(mackenzie(25, 35, 1000)-1550.744) < 1e-2)
}

func Test_coppens_surface_reference(t *testing.T) {
	// at t=0, S=35, z=0 only the base constant survives
	assert.True(t, math.Abs(coppens(0, 35, 0, 45)-1449.05) < 1e-9)
}

// All accuracy levels coincide when the depth correction terms vanish and
// diverge once they do not.
func Test_leroy69_accuracy_levels(t *testing.T) {
	surfSim := leroy69(10, 35, 0, 45, 1, AccuracySimple)
	surfBas := leroy69(10, 35, 0, 45, 1, AccuracyBasic)
	surfCom := leroy69(10, 35, 0, 45, 1, AccuracyComplete)
	assert.Equal(t, surfSim, surfBas)
	assert.Equal(t, surfBas, surfCom)

	deepSim := leroy69(10, 35, 5000, 30, 1, AccuracySimple)
	deepBas := leroy69(10, 35, 5000, 30, 1, AccuracyBasic)
	deepCom := leroy69(10, 35, 5000, 30, 1, AccuracyComplete)
	assert.NotEqual(t, deepSim, deepBas)
	assert.NotEqual(t, deepBas, deepCom)
}

func Test_leroy69_depth_forms_agree_roughly(t *testing.T) {
	eq1 := leroy69(10, 35, 3000, 45, 1, AccuracyComplete)
	eq2 := leroy69(10, 35, 3000, 45, 2, AccuracyComplete)
	assert.True(t, math.Abs(eq1-eq2) < 1.0)
}

func Test_leroy69_rejects_unknown_equation(t *testing.T) {
	_, err := SoundSpeed("leroy-1969", Sample{T: Scalar(10)}, Equation(3))
	assert.Error(t, err)

	var selErr *InvalidSelectorError
	assert.True(t, errors.As(err, &selErr))
	assert.Equal(t, "equation", selErr.Selector)
}

func Test_leroy69_rejects_unknown_accuracy(t *testing.T) {
	_, err := SoundSpeed("leroy-1969", Sample{T: Scalar(10)}, Accuracy("max"))
	assert.Error(t, err)

	var selErr *InvalidSelectorError
	assert.True(t, errors.As(err, &selErr))
	assert.Equal(t, "accuracy", selErr.Selector)
}

func Test_del_grosso_surface_reference(t *testing.T) {
	assert.True(t, math.Abs(delGrosso74.eval(0, 35, 0)-1449.08) < 1e-2)
	// the Wong-Zhu refit shares the surface constant
	assert.True(t, math.Abs(delGrossoWZ95.eval(0, 35, 0)-1449.08) < 1e-2)
}

func Test_chen_millero_surface_reference(t *testing.T) {
	assert.True(t, math.Abs(chenMillero77.eval(0, 35, 0)-1449.14) < 1e-2)
	assert.True(t, math.Abs(chenMilleroWZ95.eval(0, 35, 0)-1449.14) < 1e-2)
}

func Test_wilson_surface_reference(t *testing.T) {
	assert.True(t, math.Abs(wilsonEq2(0, 35, 0)-1449.14) < 1e-9)
	assert.True(t, math.Abs(wilsonEq1(0, 35, 0)-1449.22) < 1e-9)
}

// Published check values of the merged equations (IPTS-48 temperature
// directly, pressure 6000 dbar in kg/cm²).
func Test_lovett_check_values(t *testing.T) {
	pk := DbarToKgCm2(6000)
	assert.True(t, math.Abs(lovettEq1.eval(2, 34.7, pk)-1559.462) < 0.1)
	assert.True(t, math.Abs(lovettEq2(2, 34.7, pk)-1559.393) < 0.15)
	assert.True(t, math.Abs(lovettEq3(2, 34.7, pk)-1559.499) < 0.2)
}

// eq 1 is a refit, not Del Grosso's table: deep water separates the two by
// several tenths of a m/s.
func Test_lovett_eq1_differs_from_del_grosso(t *testing.T) {
	pk := DbarToKgCm2(6000)
	diff := math.Abs(lovettEq1.eval(2, 34.7, pk) - delGrosso74.eval(2, 34.7, pk))
	assert.True(t, diff > 0.3)
}

// Independent fits of the same physics agree to within a m/s in the middle
// of their common range.
func Test_sound_speed_variants_agree(t *testing.T) {
	sample := Sample{T: Scalar(10), S: Scalar(35), Z: Scalar(0)}

	ref, err := SoundSpeed("leroy-2008", sample)
	assert.NoError(t, err)

	for _, tag := range []string{
		"mackenzie-1981", "coppens-1981", "leroy-1969",
		"del-grosso-1974", "chen-millero-1977",
	} {
		c, err := SoundSpeed(tag, sample)
		assert.NoError(t, err, tag)
		assert.True(t, math.Abs(c[0]-ref[0]) < 1.0, tag)
	}
}

func Test_sound_speed_unknown_variant(t *testing.T) {
	_, err := SoundSpeed("medwin-1975", Sample{T: Scalar(10)})
	assert.Error(t, err)

	var selErr *InvalidSelectorError
	assert.True(t, errors.As(err, &selErr))
}

func Test_sound_speed_is_deterministic(t *testing.T) {
	sample := Sample{
		T: []float64{2, 12, 22},
		S: Scalar(34.5),
		Z: Scalar(2000),
	}
	first, err := SoundSpeed("del-grosso-1974", sample)
	assert.NoError(t, err)

	second, err := SoundSpeed("del-grosso-1974", sample)
	assert.NoError(t, err)

	assert.Equal(t, first, second)
}

func Test_sound_speed_increases_with_depth(t *testing.T) {
	c, err := SoundSpeed("mackenzie-1981", Sample{
		T: Scalar(4),
		S: Scalar(35),
		Z: []float64{0, 1000, 3000, 5000},
	})
	assert.NoError(t, err)
	for i := 1; i < len(c); i++ {
		assert.True(t, c[i] > c[i-1])
	}
}
