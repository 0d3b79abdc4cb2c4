package geometry

import "github.com/go-gl/mathgl/mgl64"

// Vector3D is a 3D direction/displacement in a piece's local frame. It is a
// thin alias over mgl64.Vec3 so face-normal and edge-direction arithmetic
// throughout this kernel (Cross, Dot, Normalize) is real vector algebra
// rather than hand-rolled float triples.
type Vector3D = mgl64.Vec3

// Vector2D is a 2D direction/displacement in a face's intrinsic frame.
type Vector2D = mgl64.Vec2

// Point3D is a coordinate in a piece's local frame.
type Point3D struct {
	X, Y, Z float64
}

// Point2D is a coordinate in a face's intrinsic (u, v) frame.
type Point2D struct {
	U, V float64
}

// Vec returns p as an mgl64.Vec3 for use in vector arithmetic.
func (p Point3D) Vec() Vector3D { return Vector3D{p.X, p.Y, p.Z} }

// PointFromVec builds a Point3D from an mgl64.Vec3.
func PointFromVec(v Vector3D) Point3D { return Point3D{v.X(), v.Y(), v.Z()} }

// Add returns p translated by v.
func (p Point3D) Add(v Vector3D) Point3D {
	return PointFromVec(p.Vec().Add(v))
}

// Sub returns the displacement from q to p.
func (p Point3D) Sub(q Point3D) Vector3D {
	return p.Vec().Sub(q.Vec())
}

// ApproxEqual reports whether p and q are equal within tolerance (the
// kernel's invariants are checked to 1e-10 per spec).
func (p Point3D) ApproxEqual(q Point3D, tolerance float64) bool {
	d := p.Sub(q)
	return d.Dot(d) <= tolerance*tolerance
}

// Add returns p translated by v.
func (p Point2D) Add(v Point2D) Point2D {
	return Point2D{U: p.U + v.U, V: p.V + v.V}
}

// Sub returns the displacement from q to p.
func (p Point2D) Sub(q Point2D) Point2D {
	return Point2D{U: p.U - q.U, V: p.V - q.V}
}

// ApproxEqual reports whether p and q are equal within tolerance.
func (p Point2D) ApproxEqual(q Point2D, tolerance float64) bool {
	du, dv := p.U-q.U, p.V-q.V
	return du*du+dv*dv <= tolerance*tolerance
}
