package lumber

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryStandardSizes(t *testing.T) {
	r := NewRegistry()
	pt, ok := r.Lookup("2x4")
	require.True(t, ok)
	assert.Equal(t, 89.0, pt.Shape.Width)
	assert.Equal(t, 38.0, pt.Shape.Height)

	_, ok = r.Lookup("3x3")
	assert.False(t, ok)
}

func TestRegistryRegisterOverride(t *testing.T) {
	r := NewRegistry()
	r.Register(PieceType{Tag: "2x4", Shape: Shape2D{Width: 1, Height: 1}})
	pt, ok := r.Lookup("2x4")
	require.True(t, ok)
	assert.Equal(t, 1.0, pt.Shape.Width)
}

func TestNewPieceRejectsNonPositiveLength(t *testing.T) {
	r := NewRegistry()
	pt, _ := r.Lookup("2x4")
	_, err := NewPiece("p1", pt, 0)
	require.Error(t, err)
}

func TestShapeOfAndBox(t *testing.T) {
	r := NewRegistry()
	pt, _ := r.Lookup("2x4")
	p, err := NewPiece("p1", pt, 1000)
	require.NoError(t, err)

	shape, err := ShapeOf(p)
	require.NoError(t, err)
	assert.Equal(t, 89.0, shape.Width)
	assert.Equal(t, 38.0, shape.Height)
	assert.Equal(t, 1000.0, shape.Length)

	_, err = Box(p)
	require.NoError(t, err)
}
