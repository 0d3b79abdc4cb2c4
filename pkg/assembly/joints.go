package assembly

import (
	"github.com/nichiyou-daiku/kernel/pkg/anchor"
	"github.com/nichiyou-daiku/kernel/pkg/face"
	"github.com/nichiyou-daiku/kernel/pkg/geometry"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
)

// Fastener placement constants: the entire configuration surface of the
// kernel.
const (
	dowelHorizontalOffset = 25.4 // common 2x4 case, along the face's width axis
	dowelEdgeOffset       = 44.5 // front/back case, away from the anchor edge
)

// jointPair is a (base, target) Joint pair before joint ids are allocated.
type jointPair struct {
	Base, Target Joint
}

func isTopOrDown(f face.Face) bool   { return f == face.Top || f == face.Down }
func isLeftOrRight(f face.Face) bool { return f == face.Left || f == face.Right }
func isFrontOrBack(f face.Face) bool { return f == face.Front || f == face.Back }

func orientationOf(a anchor.Anchor) (anchor.Orientation3D, error) {
	return a.AsOrientation(false)
}

// createVanillaJointPairs is the Vanilla placement policy: one joint pair,
// the base joint sitting at the base anchor and the target joint its
// projection.
func createVanillaJointPairs(base, target anchor.BoundAnchor) ([]jointPair, error) {
	baseOrientation, err := orientationOf(base.Anchor)
	if err != nil {
		return nil, err
	}
	baseSP, err := base.AsSurfacePoint()
	if err != nil {
		return nil, err
	}
	baseJoint := Joint{Position: baseSP, Orientation: baseOrientation}

	targetJoint, err := projectJoint(base, target, baseJoint)
	if err != nil {
		return nil, err
	}
	return []jointPair{{Base: baseJoint, Target: targetJoint}}, nil
}

// createTopDownDowelJoints places the two dowel joints on a top/down contact
// face at u = +-25.4mm from the anchor, keeping the anchor's v.
func createTopDownDowelJoints(a anchor.BoundAnchor) (Joint, Joint, error) {
	orientation, err := orientationOf(a.Anchor)
	if err != nil {
		return Joint{}, Joint{}, err
	}
	anchorSP, err := a.AsSurfacePoint()
	if err != nil {
		return Joint{}, Joint{}, err
	}
	face0 := geometry.SurfacePoint{Face: a.Anchor.ContactFace, Pos: geometry.Point2D{U: anchorSP.Pos.U + dowelHorizontalOffset, V: anchorSP.Pos.V}}
	face1 := geometry.SurfacePoint{Face: a.Anchor.ContactFace, Pos: geometry.Point2D{U: anchorSP.Pos.U - dowelHorizontalOffset, V: anchorSP.Pos.V}}
	return Joint{Position: face0, Orientation: orientation}, Joint{Position: face1, Orientation: orientation}, nil
}

// createLeftRightDowelJoints places the two dowel joints on a left/right
// contact face along its v-axis, symmetric about the anchor.
func createLeftRightDowelJoints(src anchor.BoundAnchor) (Joint, Joint, error) {
	orientation, err := orientationOf(src.Anchor)
	if err != nil {
		return Joint{}, Joint{}, err
	}
	anchorSP, err := src.AsSurfacePoint()
	if err != nil {
		return Joint{}, Joint{}, err
	}
	pos0 := geometry.SurfacePoint{Face: src.Anchor.ContactFace, Pos: geometry.Point2D{U: anchorSP.Pos.U, V: anchorSP.Pos.V + dowelHorizontalOffset}}
	pos1 := geometry.SurfacePoint{Face: src.Anchor.ContactFace, Pos: geometry.Point2D{U: anchorSP.Pos.U, V: anchorSP.Pos.V - dowelHorizontalOffset}}
	return Joint{Position: pos0, Orientation: orientation}, Joint{Position: pos1, Orientation: orientation}, nil
}

// createFrontBackDowelJoints places the two dowel joints on a front/back
// contact face whose shared edge is top/down: offset horizontally by
// dowelHorizontalOffset and shifted dowelEdgeOffset away from the anchor
// edge, to avoid splitting the narrow dimension.
func createFrontBackDowelJoints(src anchor.BoundAnchor) (Joint, Joint, error) {
	orientation, err := orientationOf(src.Anchor)
	if err != nil {
		return Joint{}, Joint{}, err
	}
	anchorSP, err := src.AsSurfacePoint()
	if err != nil {
		return Joint{}, Joint{}, err
	}
	offsetDir := geometry.ProjectDirection(src.Anchor.ContactFace, face.Normal(src.Anchor.EdgeSharedFace))
	dowelV := anchorSP.Pos.V - offsetDir.V*dowelEdgeOffset
	pos0 := geometry.SurfacePoint{Face: src.Anchor.ContactFace, Pos: geometry.Point2D{U: dowelHorizontalOffset, V: dowelV}}
	pos1 := geometry.SurfacePoint{Face: src.Anchor.ContactFace, Pos: geometry.Point2D{U: -dowelHorizontalOffset, V: dowelV}}
	return Joint{Position: pos0, Orientation: orientation}, Joint{Position: pos1, Orientation: orientation}, nil
}

func projectPair(src, dst anchor.BoundAnchor, j0, j1 Joint) (Joint, Joint, error) {
	dst0, err := projectJoint(src, dst, j0)
	if err != nil {
		return Joint{}, Joint{}, err
	}
	dst1, err := projectJoint(src, dst, j1)
	if err != nil {
		return Joint{}, Joint{}, err
	}
	return dst0, dst1, nil
}

// createFastenerJointPairs is the Dowel placement policy (Screw connections
// use identical surface placements, differing only in their validated
// fastener parameters). It dispatches on which side's contact face owns the
// placement logic.
func createFastenerJointPairs(base, target anchor.BoundAnchor) ([]jointPair, error) {
	baseFace := base.Anchor.ContactFace
	targetFace := target.Anchor.ContactFace

	switch {
	case isTopOrDown(baseFace):
		b0, b1, err := createTopDownDowelJoints(base)
		if err != nil {
			return nil, err
		}
		t0, t1, err := projectPair(base, target, b0, b1)
		if err != nil {
			return nil, err
		}
		return []jointPair{{Base: b0, Target: t0}, {Base: b1, Target: t1}}, nil

	case isTopOrDown(targetFace):
		t0, t1, err := createTopDownDowelJoints(target)
		if err != nil {
			return nil, err
		}
		b0, b1, err := projectPair(target, base, t0, t1)
		if err != nil {
			return nil, err
		}
		return []jointPair{{Base: b0, Target: t0}, {Base: b1, Target: t1}}, nil

	case isLeftOrRight(baseFace):
		b0, b1, err := createLeftRightDowelJoints(base)
		if err != nil {
			return nil, err
		}
		t0, t1, err := projectPair(base, target, b0, b1)
		if err != nil {
			return nil, err
		}
		return []jointPair{{Base: b0, Target: t0}, {Base: b1, Target: t1}}, nil

	case isLeftOrRight(targetFace):
		t0, t1, err := createLeftRightDowelJoints(target)
		if err != nil {
			return nil, err
		}
		b0, b1, err := projectPair(target, base, t0, t1)
		if err != nil {
			return nil, err
		}
		return []jointPair{{Base: b0, Target: t0}, {Base: b1, Target: t1}}, nil

	case isFrontOrBack(baseFace) && isFrontOrBack(targetFace):
		baseSharedTopDown := isTopOrDown(base.Anchor.EdgeSharedFace)
		targetSharedTopDown := isTopOrDown(target.Anchor.EdgeSharedFace)

		switch {
		case baseSharedTopDown:
			b0, b1, err := createFrontBackDowelJoints(base)
			if err != nil {
				return nil, err
			}
			t0, t1, err := projectPair(base, target, b0, b1)
			if err != nil {
				return nil, err
			}
			return []jointPair{{Base: b0, Target: t0}, {Base: b1, Target: t1}}, nil

		case targetSharedTopDown:
			t0, t1, err := createFrontBackDowelJoints(target)
			if err != nil {
				return nil, err
			}
			b0, b1, err := projectPair(target, base, t0, t1)
			if err != nil {
				return nil, err
			}
			return []jointPair{{Base: b0, Target: t0}, {Base: b1, Target: t1}}, nil

		default:
			// Both contacts are front/back and both shared faces are
			// left/right: no placement axis remains to split the dowel
			// pair along, so this configuration is rejected rather than
			// silently emitting an incomplete layout.
			return nil, kerrors.UnsupportedConnection{
				BaseFace: baseFace.String(), TargetFace: targetFace.String(),
				BaseEdge: base.Anchor.EdgeSharedFace.String(), TargetEdge: target.Anchor.EdgeSharedFace.String(),
			}
		}

	default:
		return nil, kerrors.UnsupportedConnection{
			BaseFace: baseFace.String(), TargetFace: targetFace.String(),
			BaseEdge: base.Anchor.EdgeSharedFace.String(), TargetEdge: target.Anchor.EdgeSharedFace.String(),
		}
	}
}
