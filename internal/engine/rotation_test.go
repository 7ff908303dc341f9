package engine

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piwi3910/anchorage/internal/model"
)

func TestRotate_AdvancesClockwise(t *testing.T) {
	v := vesselAt(0, 0, 100, 50)

	expected := []model.Rotation{model.Rotate90, model.Rotate180, model.Rotate270, model.Rotate0}
	for _, want := range expected {
		require.NoError(t, Rotate(v))
		assert.Equal(t, want, v.Rotation)
	}
	assert.Equal(t, 100.0, v.Width, "nominal width unchanged")
	assert.Equal(t, 50.0, v.Height, "nominal height unchanged")
}

func TestRotate_SwapsEffectiveFootprint(t *testing.T) {
	v := vesselAt(0, 0, 100, 50)
	before := BoundingBox(v)

	require.NoError(t, Rotate(v))
	after := BoundingBox(v)

	assert.Equal(t, before.Width, after.Height)
	assert.Equal(t, before.Height, after.Width)
	bx, by := before.Center()
	ax, ay := after.Center()
	assert.Equal(t, bx, ax, "rotation keeps the center")
	assert.Equal(t, by, ay)
}

func TestRotate_DoesNotMove(t *testing.T) {
	v := vesselAt(42, 17, 30, 10)

	require.NoError(t, Rotate(v))

	assert.Equal(t, 42.0, v.X)
	assert.Equal(t, 17.0, v.Y)
}

func TestRotate_NilVessel(t *testing.T) {
	err := Rotate(nil)

	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
	assert.ErrorIs(t, err, ErrNilVessel)
}
