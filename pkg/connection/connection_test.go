package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nichiyou-daiku/kernel/pkg/anchor"
	"github.com/nichiyou-daiku/kernel/pkg/face"
	"github.com/nichiyou-daiku/kernel/pkg/geometry"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
	"github.com/nichiyou-daiku/kernel/pkg/lumber"
)

func twoByFour(t *testing.T, id string, length float64) lumber.Piece {
	t.Helper()
	r := lumber.NewRegistry()
	pt, ok := r.Lookup("2x4")
	require.True(t, ok)
	p, err := lumber.NewPiece(id, pt, length)
	require.NoError(t, err)
	return p
}

// boundAnchor binds a FromMax anchor. The tests below keep offsets within a
// 2x4's 89mm front-top/back-top edge (see DESIGN.md).
func boundAnchor(t *testing.T, p lumber.Piece, contact, edgeShared face.Face, offset float64) anchor.BoundAnchor {
	t.Helper()
	off, err := geometry.NewFromMax(offset)
	require.NoError(t, err)
	a, err := anchor.New(contact, edgeShared, off)
	require.NoError(t, err)
	ba, err := anchor.Bind(p, a)
	require.NoError(t, err)
	return ba
}

// Screw length exactly at target thickness is rejected; just above is
// accepted; past combined thickness is rejected again.
func TestScrewLengthBoundary(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)

	base := boundAnchor(t, p1, face.Front, face.Top, 50)
	target := boundAnchor(t, p2, face.Back, face.Top, 50)

	kind, err := NewScrew(3.5, 38.0)
	require.NoError(t, err)
	_, err = New(base, target, kind)
	require.Error(t, err)
	var invLen kerrors.InvalidScrewLength
	require.ErrorAs(t, err, &invLen)

	kind, err = NewScrew(3.5, 38.1)
	require.NoError(t, err)
	_, err = New(base, target, kind)
	require.NoError(t, err)

	kind, err = NewScrew(3.5, 76.1)
	require.NoError(t, err)
	_, err = New(base, target, kind)
	require.Error(t, err)
}

func TestScrewRejectsNonFrontBackTargetFace(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)

	base := boundAnchor(t, p1, face.Front, face.Top, 50)
	target := boundAnchor(t, p2, face.Top, face.Front, 50)

	kind, err := NewScrew(3.5, 38.1)
	require.NoError(t, err)
	_, err = New(base, target, kind)
	require.Error(t, err)
	var invFace kerrors.InvalidScrewFace
	require.ErrorAs(t, err, &invFace)
}

func TestDowelRejectsOversizedDiameter(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)

	base := boundAnchor(t, p1, face.Top, face.Front, 50)
	target := boundAnchor(t, p2, face.Down, face.Front, 50)

	kind, err := NewDowel(40, 20)
	require.NoError(t, err)
	_, err = New(base, target, kind)
	require.Error(t, err)
	var tooLarge kerrors.FastenerTooLarge
	require.ErrorAs(t, err, &tooLarge)
	assert.Equal(t, "diameter", tooLarge.Dimension)
}

func TestVanillaHasNoFastenerConstraints(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)

	base := boundAnchor(t, p1, face.Front, face.Top, 50)
	target := boundAnchor(t, p2, face.Down, face.Front, 50)

	_, err := New(base, target, NewVanilla())
	require.NoError(t, err)
}
