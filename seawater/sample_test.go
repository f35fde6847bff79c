package seawater

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_broadcast_scalar_inputs(t *testing.T) {
	n, err := broadcastLen(
		namedInput{"temperature", Scalar(10)},
		namedInput{"salinity", Scalar(35)},
	)
	assert.NoError(t, err)
	assert.Equal(t, 1, n)
}

func Test_broadcast_array_against_scalars(t *testing.T) {
	n, err := broadcastLen(
		namedInput{"temperature", []float64{0, 5, 10, 15, 20}},
		namedInput{"salinity", Scalar(35)},
		namedInput{"depth", nil},
	)
	assert.NoError(t, err)
	assert.Equal(t, 5, n)
}

func Test_broadcast_length_mismatch(t *testing.T) {
	_, err := broadcastLen(
		namedInput{"temperature", []float64{0, 5}},
		namedInput{"salinity", []float64{30, 35, 40}},
	)
	assert.Error(t, err)

	var shapeErr *ShapeMismatchError
	assert.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, "salinity", shapeErr.Input)
}

func Test_broadcast_rejects_empty_input(t *testing.T) {
	_, err := broadcastLen(namedInput{"temperature", []float64{}})
	assert.Error(t, err)
}

func Test_at_broadcasts_length_one(t *testing.T) {
	x := Scalar(7)
	assert.Equal(t, 7.0, at(x, 0))
	assert.Equal(t, 7.0, at(x, 3))

	y := []float64{1, 2, 3}
	assert.Equal(t, 2.0, at(y, 1))
}

func Test_depth_pressure_resolution_order(t *testing.T) {
	// explicit depth wins over pressure
	s := Sample{Z: Scalar(100), P: Scalar(200)}
	assert.Equal(t, 100.0, depthOrPressure(s)[0])
	assert.Equal(t, 200.0, pressureOrDepth(s)[0])

	// pressure doubles as depth at the 1 dbar ≈ 1 m shortcut
	s = Sample{P: Scalar(200)}
	assert.Equal(t, 200.0, depthOrPressure(s)[0])

	// neither given means surface
	assert.Equal(t, 0.0, depthOrPressure(Sample{})[0])
	assert.Equal(t, 0.0, pressureOrDepth(Sample{})[0])
}

func Test_sound_speed_output_shape(t *testing.T) {
	c, err := SoundSpeed("mackenzie-1981", Sample{
		T: []float64{0, 5, 10, 15, 20},
		S: Scalar(35),
		Z: Scalar(1000),
	})
	assert.NoError(t, err)
	assert.Equal(t, 5, len(c))

	c, err = SoundSpeed("mackenzie-1981", Sample{T: Scalar(10)})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(c))
}
