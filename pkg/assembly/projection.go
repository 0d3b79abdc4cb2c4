package assembly

import (
	"math"

	"github.com/nichiyou-daiku/kernel/pkg/anchor"
	"github.com/nichiyou-daiku/kernel/pkg/face"
	"github.com/nichiyou-daiku/kernel/pkg/geometry"
)

// Joint is a placed anchor: a surface point with a full 3D orientation.
type Joint struct {
	Position    geometry.SurfacePoint `json:"position"`
	Orientation anchor.Orientation3D  `json:"orientation"`
}

// mat2 is a row-major 2x2 matrix, used only to carry a signed-axis
// transform through its construction.
type mat2 [2][2]float64

func (m mat2) inverse() mat2 {
	det := m[0][0]*m[1][1] - m[0][1]*m[1][0]
	return mat2{
		{m[1][1] / det, -m[0][1] / det},
		{-m[1][0] / det, m[0][0] / det},
	}
}

func (m mat2) mul(o mat2) mat2 {
	var r mat2
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j]
		}
	}
	return r
}

// transposeEpsilon tolerates floating-point noise around zero: the matrix
// entries this is compared against are exact +-1 or 0, so this threshold is
// defensive programming only, never a real decision boundary.
const transposeEpsilon = 1e-7

// axisTransform is the decomposition of T = M_target^-1 . M_base into the
// three booleans that fully describe how base and target frames relate.
type axisTransform struct {
	transposeAxes bool
	flipU, flipV  bool
}

func computeAxisTransform(base, target anchor.Anchor) (axisTransform, error) {
	baseOrientation, err := base.AsOrientation(false)
	if err != nil {
		return axisTransform{}, err
	}
	targetOrientation, err := target.AsOrientation(true)
	if err != nil {
		return axisTransform{}, err
	}

	baseContactDir := geometry.ProjectDirection(base.ContactFace, face.Normal(base.EdgeSharedFace))
	baseUpDir := geometry.ProjectDirection(base.ContactFace, baseOrientation.Up)
	targetContactDir := geometry.ProjectDirection(target.ContactFace, face.Normal(target.EdgeSharedFace))
	targetUpDir := geometry.ProjectDirection(target.ContactFace, targetOrientation.Up)

	baseMat := mat2{{baseContactDir.U, baseContactDir.V}, {baseUpDir.U, baseUpDir.V}}
	targetMat := mat2{{targetContactDir.U, targetContactDir.V}, {targetUpDir.U, targetUpDir.V}}

	t := targetMat.inverse().mul(baseMat)

	transposeAxes := math.Abs(t[0][0]*t[1][1]) < transposeEpsilon
	flipU := t[0][0] < 0 || t[1][0] < 0
	flipV := t[0][1] < 0 || t[1][1] < 0
	return axisTransform{transposeAxes: transposeAxes, flipU: flipU, flipV: flipV}, nil
}

// projectSurfacePoint transports p (expressed on base.Anchor.ContactFace) to
// the matching point on target.Anchor.ContactFace, under the convention that
// the two anchors physically coincide once the target is turned to mate
// with the base.
func projectSurfacePoint(base, target anchor.BoundAnchor, p geometry.SurfacePoint) (geometry.SurfacePoint, error) {
	t, err := computeAxisTransform(base.Anchor, target.Anchor)
	if err != nil {
		return geometry.SurfacePoint{}, err
	}

	baseAnchorSP, err := base.AsSurfacePoint()
	if err != nil {
		return geometry.SurfacePoint{}, err
	}
	targetAnchorSP, err := target.AsSurfacePoint()
	if err != nil {
		return geometry.SurfacePoint{}, err
	}

	du := p.Pos.U - baseAnchorSP.Pos.U
	dv := p.Pos.V - baseAnchorSP.Pos.V
	if t.flipU {
		du = -du
	}
	if t.flipV {
		dv = -dv
	}
	if t.transposeAxes {
		du, dv = dv, du
	}

	return geometry.SurfacePoint{
		Face: target.Anchor.ContactFace,
		Pos:  geometry.Point2D{U: targetAnchorSP.Pos.U + du, V: targetAnchorSP.Pos.V + dv},
	}, nil
}

// projectJoint projects baseJoint's position as projectSurfacePoint does,
// and sets the output orientation to target's orientation with its up
// direction flipped — the target piece is turned over to mate with the
// base, so its "up" points the opposite way.
func projectJoint(base, target anchor.BoundAnchor, baseJoint Joint) (Joint, error) {
	pos, err := projectSurfacePoint(base, target, baseJoint.Position)
	if err != nil {
		return Joint{}, err
	}
	orientation, err := target.Anchor.AsOrientation(true)
	if err != nil {
		return Joint{}, err
	}
	return Joint{Position: pos, Orientation: orientation}, nil
}
