package seawater

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_t90_to_t68(t *testing.T) {
	assert.True(t, math.Abs(T90ToT68(10)-10.0024) < 1e-12)
	assert.Equal(t, 0.0, T90ToT68(0))
}

// t68(t48) = 0.99956*t48 + 4.4e-6*t48² must invert through the principal
// root over the whole oceanographic range.
func Test_t68_to_t48_round_trip(t *testing.T) {
	for _, t48 := range []float64{-5, -2, 0, 2, 10, 25, 35} {
		t68 := 0.99956*t48 + 4.4e-6*t48*t48
		got, err := T68ToT48(t68)
		assert.NoError(t, err)
		assert.True(t, math.Abs(got-t48) < 1e-6)
	}
}

func Test_t68_to_t48_negative_discriminant(t *testing.T) {
	_, err := T68ToT48(-60000)
	assert.Error(t, err)

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
}

func Test_pressure_unit_conversions(t *testing.T) {
	assert.Equal(t, 10.0, DbarToBar(100))
	assert.True(t, math.Abs(DbarToKgCm2(9.80665)-1) < 1e-12)
	assert.True(t, math.Abs(DbarToAtm(10.132501)-1) < 1e-12)
	assert.Equal(t, 10.0, DepthToAtm(100))
}

func Test_gravity_by_latitude(t *testing.T) {
	assert.True(t, math.Abs(Gravity(0)-9.780318) < 1e-9)
	assert.True(t, Gravity(90) > Gravity(45))
	assert.True(t, Gravity(45) > Gravity(0))
	assert.True(t, math.Abs(Gravity(-30)-Gravity(30)) < 1e-12)
	assert.True(t, gravity45 > 9.80 && gravity45 < 9.81)
}
