package assembly

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nichiyou-daiku/kernel/pkg/anchor"
	"github.com/nichiyou-daiku/kernel/pkg/connection"
	"github.com/nichiyou-daiku/kernel/pkg/face"
	"github.com/nichiyou-daiku/kernel/pkg/geometry"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
	"github.com/nichiyou-daiku/kernel/pkg/lumber"
	"github.com/nichiyou-daiku/kernel/pkg/model"
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

func offsetFromMax(t *testing.T, v float64) geometry.Offset {
	t.Helper()
	o, err := geometry.NewFromMax(v)
	require.NoError(t, err)
	return o
}

func offsetFromMin(t *testing.T, v float64) geometry.Offset {
	t.Helper()
	o, err := geometry.NewFromMin(v)
	require.NoError(t, err)
	return o
}

func boundAnchor(t *testing.T, p lumber.Piece, contact, edgeShared face.Face, off geometry.Offset) anchor.BoundAnchor {
	t.Helper()
	a, err := anchor.New(contact, edgeShared, off)
	require.NoError(t, err)
	ba, err := anchor.Bind(p, a)
	require.NoError(t, err)
	return ba
}

// TestProjectionSelfIdentity checks that projecting a joint onto its own
// anchor reproduces its position and sets the orientation to that anchor's
// orientation with up flipped.
func TestProjectionSelfIdentity(t *testing.T) {
	p := twoByFour(t, "p1", 1000)
	a := boundAnchor(t, p, face.Top, face.Front, offsetFromMax(t, 50))

	sp, err := a.AsSurfacePoint()
	require.NoError(t, err)
	orientation, err := a.Anchor.AsOrientation(false)
	require.NoError(t, err)
	j := Joint{Position: sp, Orientation: orientation}

	projected, err := projectJoint(a, a, j)
	require.NoError(t, err)

	assert.InDelta(t, j.Position.Pos.U, projected.Position.Pos.U, 1e-10)
	assert.InDelta(t, j.Position.Pos.V, projected.Position.Pos.V, 1e-10)
	assert.Equal(t, j.Position.Face, projected.Position.Face)

	wantOrientation, err := a.Anchor.AsOrientation(true)
	require.NoError(t, err)
	assert.InDelta(t, wantOrientation.Up.X(), projected.Orientation.Up.X(), 1e-10)
	assert.InDelta(t, wantOrientation.Up.Y(), projected.Orientation.Up.Y(), 1e-10)
	assert.InDelta(t, wantOrientation.Up.Z(), projected.Orientation.Up.Z(), 1e-10)
}

// TestProjectionReciprocity checks that projecting a point from base to
// target and back recovers it.
func TestProjectionReciprocity(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)
	base := boundAnchor(t, p1, face.Top, face.Front, offsetFromMax(t, 50))
	target := boundAnchor(t, p2, face.Down, face.Front, offsetFromMin(t, 50))

	baseSP, err := base.AsSurfacePoint()
	require.NoError(t, err)
	p := geometry.SurfacePoint{Face: baseSP.Face, Pos: geometry.Point2D{U: baseSP.Pos.U + 10, V: baseSP.Pos.V - 4}}

	toTarget, err := projectSurfacePoint(base, target, p)
	require.NoError(t, err)
	back, err := projectSurfacePoint(target, base, toTarget)
	require.NoError(t, err)

	assert.Equal(t, p.Face, back.Face)
	assert.InDelta(t, p.Pos.U, back.Pos.U, 1e-10)
	assert.InDelta(t, p.Pos.V, back.Pos.V, 1e-10)
}

// TestProjectionReciprocityAxisTranspose checks reciprocity across a
// front/top to top/front connection, which exercises the axis-transpose
// branch of the projection transform: offsets are kept within a 2x4's
// 89mm front-top edge (see DESIGN.md for the reasoning behind these
// particular offset values).
func TestProjectionReciprocityAxisTranspose(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)
	base := boundAnchor(t, p1, face.Front, face.Top, offsetFromMax(t, 50))
	target := boundAnchor(t, p2, face.Top, face.Front, offsetFromMin(t, 30))

	baseSP, err := base.AsSurfacePoint()
	require.NoError(t, err)
	p := geometry.SurfacePoint{Face: baseSP.Face, Pos: geometry.Point2D{U: baseSP.Pos.U + 25.4, V: baseSP.Pos.V}}

	toTarget, err := projectSurfacePoint(base, target, p)
	require.NoError(t, err)
	back, err := projectSurfacePoint(target, base, toTarget)
	require.NoError(t, err)

	assert.InDelta(t, p.Pos.U, back.Pos.U, 1e-10)
	assert.InDelta(t, p.Pos.V, back.Pos.V, 1e-10)
}

// TestVanillaSingleJointPair checks a single vanilla joint, front-to-down:
// exactly one joint pair with the expected ids, the target orientation
// matching the target contact face's outward normal, and no pilot holes.
// The base offset stays within a 2x4's 89mm front-top edge (see DESIGN.md).
func TestVanillaSingleJointPair(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)

	m := model.New()
	require.NoError(t, m.AddPiece(p1))
	require.NoError(t, m.AddPiece(p2))

	base := boundAnchor(t, p1, face.Front, face.Top, offsetFromMax(t, 50))
	target := boundAnchor(t, p2, face.Down, face.Front, offsetFromMin(t, 50))
	conn, err := connection.New(base, target, connection.NewVanilla())
	require.NoError(t, err)
	require.NoError(t, m.AddConnection("p1", "p2", conn))

	a, err := Of(m)
	require.NoError(t, err)

	require.Len(t, a.Joints, 2)
	require.Contains(t, a.Joints, "p1_j0")
	require.Contains(t, a.Joints, "p2_j0")
	require.Len(t, a.JointPairs, 1)
	assert.Equal(t, JointPairIDs{BaseID: "p1_j0", TargetID: "p2_j0"}, a.JointPairs[0])

	wantDir := face.Normal(face.Down)
	gotDir := a.Joints["p2_j0"].Orientation.Direction
	assert.InDelta(t, wantDir.X(), gotDir.X(), 1e-10)
	assert.InDelta(t, wantDir.Y(), gotDir.Y(), 1e-10)
	assert.InDelta(t, wantDir.Z(), gotDir.Z(), 1e-10)

	assert.Empty(t, a.PilotHoles["p1"])
	assert.Empty(t, a.PilotHoles["p2"])
}

// TestDowelSymmetryAndPilotHoles checks that a dowel connection on the top
// face yields exactly two joint pairs symmetric about the anchor, and two
// pilot holes per piece. As in TestVanillaSingleJointPair, the base offset
// fits within the true 89mm edge.
func TestDowelSymmetryAndPilotHoles(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)

	m := model.New()
	require.NoError(t, m.AddPiece(p1))
	require.NoError(t, m.AddPiece(p2))

	base := boundAnchor(t, p1, face.Top, face.Front, offsetFromMax(t, 50))
	target := boundAnchor(t, p2, face.Down, face.Front, offsetFromMin(t, 50))
	kind, err := connection.NewDowel(8, 20)
	require.NoError(t, err)
	conn, err := connection.New(base, target, kind)
	require.NoError(t, err)
	require.NoError(t, m.AddConnection("p1", "p2", conn))

	a, err := Of(m)
	require.NoError(t, err)

	require.Len(t, a.JointPairs, 2)
	require.Len(t, a.Joints, 4)

	baseAnchorSP, err := base.AsSurfacePoint()
	require.NoError(t, err)

	var baseUs []float64
	for _, pair := range a.JointPairs {
		j := a.Joints[pair.BaseID]
		assert.Equal(t, face.Top, j.Position.Face)
		assert.InDelta(t, baseAnchorSP.Pos.V, j.Position.Pos.V, 1e-10)
		baseUs = append(baseUs, j.Position.Pos.U-baseAnchorSP.Pos.U)
	}
	require.Len(t, baseUs, 2)
	assert.InDelta(t, 0, baseUs[0]+baseUs[1], 1e-10)
	assert.InDelta(t, dowelHorizontalOffset, absF64(baseUs[0]), 1e-10)

	assert.Len(t, a.PilotHoles["p1"], 2)
	assert.Len(t, a.PilotHoles["p2"], 2)
	for _, h := range a.PilotHoles["p1"] {
		assert.Equal(t, defaultPilotHole, h.Hole)
	}
}

func absF64(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}

// TestDeterminism checks that two Assembly builds over equal models
// produce byte-equal canonical output and identical joint ids.
func TestDeterminism(t *testing.T) {
	build := func() *model.Model {
		p1 := twoByFour(t, "p1", 1000)
		p2 := twoByFour(t, "p2", 800)
		m := model.New()
		require.NoError(t, m.AddPiece(p1))
		require.NoError(t, m.AddPiece(p2))
		base := boundAnchor(t, p1, face.Front, face.Top, offsetFromMax(t, 50))
		target := boundAnchor(t, p2, face.Down, face.Front, offsetFromMin(t, 50))
		conn, err := connection.New(base, target, connection.NewVanilla())
		require.NoError(t, err)
		require.NoError(t, m.AddConnection("p1", "p2", conn))
		return m
	}

	m1, m2 := build(), build()
	a1, err := Of(m1)
	require.NoError(t, err)
	a2, err := Of(m2)
	require.NoError(t, err)

	assert.Equal(t, a1.JointPairs, a2.JointPairs)
	assert.Equal(t, a1.Joints, a2.Joints)

	c1, err := m1.Canonical()
	require.NoError(t, err)
	c2, err := m2.Canonical()
	require.NoError(t, err)
	assert.Equal(t, c1, c2)
}

// TestFrontBackLeftRightDowelUnsupported checks that two front/back
// contacts whose shared faces are both left/right are rejected, not
// silently given an incomplete layout.
func TestFrontBackLeftRightDowelUnsupported(t *testing.T) {
	p1 := twoByFour(t, "p1", 1000)
	p2 := twoByFour(t, "p2", 800)

	m := model.New()
	require.NoError(t, m.AddPiece(p1))
	require.NoError(t, m.AddPiece(p2))

	base := boundAnchor(t, p1, face.Front, face.Left, offsetFromMax(t, 10))
	target := boundAnchor(t, p2, face.Back, face.Right, offsetFromMin(t, 10))
	kind, err := connection.NewDowel(8, 20)
	require.NoError(t, err)
	conn, err := connection.New(base, target, kind)
	require.NoError(t, err)
	require.NoError(t, m.AddConnection("p1", "p2", conn))

	_, err = Of(m)
	require.Error(t, err)
	var unsupported kerrors.UnsupportedConnection
	require.ErrorAs(t, err, &unsupported)
}
