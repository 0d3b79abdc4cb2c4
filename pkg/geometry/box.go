package geometry

import (
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"

	"github.com/nichiyou-daiku/kernel/pkg/face"
)

// Box is a Shape3D placed at the origin of a local frame, centered so it
// spans [-H/2,+H/2] along X (front/back), [-W/2,+W/2] along Y (left/right)
// and [-L/2,+L/2] along Z (top/down). A Box carries no pose —
// pose only exists at the assembly boundary, per spec.
type Box struct {
	Shape Shape3D
}

// NewBox wraps a validated Shape3D as a Box.
func NewBox(s Shape3D) Box { return Box{Shape: s} }

// faceBasis returns the fixed (u_dir, v_dir) convention for f, chosen once
// so that u x v = normal(f) exactly for every face — the right-handed
// surface-frame invariant every face must satisfy.
func faceBasis(f face.Face) (u, v Vector3D) {
	switch f {
	case face.Top:
		return Vector3D{1, 0, 0}, Vector3D{0, 1, 0}
	case face.Down:
		return Vector3D{0, 1, 0}, Vector3D{1, 0, 0}
	case face.Right:
		return Vector3D{0, 0, 1}, Vector3D{1, 0, 0}
	case face.Left:
		return Vector3D{1, 0, 0}, Vector3D{0, 0, 1}
	case face.Front:
		return Vector3D{0, 1, 0}, Vector3D{0, 0, 1}
	case face.Back:
		return Vector3D{0, 0, 1}, Vector3D{0, 1, 0}
	default:
		panic("geometry: invalid face")
	}
}

// axisOfUnit classifies an axis-aligned unit vector (as used by faceBasis)
// to the box axis it lies on.
func axisOfUnit(v Vector3D) face.Axis {
	switch {
	case v.X() != 0:
		return face.AxisBackToFront
	case v.Y() != 0:
		return face.AxisLeftToRight
	default:
		return face.AxisVertical
	}
}

// UDir returns the u-axis direction of f's intrinsic 2D frame.
func UDir(f face.Face) Vector3D { u, _ := faceBasis(f); return u }

// VDir returns the v-axis direction of f's intrinsic 2D frame.
func VDir(f face.Face) Vector3D { _, v := faceBasis(f); return v }

// FaceCenter3D returns the 3D center of face f on b.
func (b Box) FaceCenter3D(f face.Face) Point3D {
	half := b.Shape.AlongNormal(f) / 2
	return PointFromVec(face.Normal(f).Mul(half))
}

// ToSDF converts b to an sdf.SDF3 box primitive whose minimum corner sits at
// the origin: sdf.Box3D centers the box, so we translate by the box's own
// half-dimensions along each axis, so the solid spans [0,H] x [0,W] x [0,L]
// rather than b's own centered frame. It is provided for a downstream
// exporter that already depends on sdfx; nothing in the kernel calls it.
func (b Box) ToSDF() (sdf.SDF3, error) {
	height := b.Shape.Height // X extent (front/back axis)
	width := b.Shape.Width   // Y extent (left/right axis)
	length := b.Shape.Length // Z extent (top/down axis)

	s, err := sdf.Box3D(v3.Vec{X: height, Y: width, Z: length}, 0)
	if err != nil {
		return nil, err
	}
	m := sdf.Translate3d(v3.Vec{X: height / 2, Y: width / 2, Z: length / 2})
	return sdf.Transform3D(s, m), nil
}

// ToSDFVec converts a Point3D to the sdfx v3.Vec the CAD exporter expects.
func ToSDFVec(p Point3D) v3.Vec { return v3.Vec{X: p.X, Y: p.Y, Z: p.Z} }

// FromSDFVec converts an sdfx v3.Vec to a Point3D.
func FromSDFVec(v v3.Vec) Point3D { return Point3D{X: v.X, Y: v.Y, Z: v.Z} }

// Point3DOfSurface is Point3D::of(Box, SurfacePoint): the 3D position of a
// point named in a face's intrinsic 2D frame.
func (b Box) Point3DOfSurface(sp SurfacePoint) Point3D {
	u, v := faceBasis(sp.Face)
	center := b.FaceCenter3D(sp.Face)
	return center.Add(u.Mul(sp.Pos.U)).Add(v.Mul(sp.Pos.V))
}

// SurfaceOfPoint3D is the inverse of Point3DOfSurface: recovers the (u, v)
// coordinate of a 3D point known to lie on face f's plane.
func (b Box) SurfaceOfPoint3D(f face.Face, p Point3D) SurfacePoint {
	u, v := faceBasis(f)
	rel := p.Sub(b.FaceCenter3D(f))
	return SurfacePoint{Face: f, Pos: Point2D{U: rel.Dot(u), V: rel.Dot(v)}}
}

// ProjectDirection returns the (u, v) coordinates of a 3D direction vector
// expressed in face f's intrinsic 2D frame. Used by the connection-
// resolution projection engine to build signed-axis matrices from the
// faces' fixed normal/up directions.
func ProjectDirection(f face.Face, dir Vector3D) Point2D {
	u, v := faceBasis(f)
	return Point2D{U: dir.Dot(u), V: dir.Dot(v)}
}
