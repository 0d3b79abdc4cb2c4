package geometry

import (
	"fmt"

	"github.com/nichiyou-daiku/kernel/pkg/face"
)

// SurfacePoint is a point on a single face, in that face's intrinsic 2D
// frame.
type SurfacePoint struct {
	Face face.Face
	Pos  Point2D
}

// Edge is an ordered pair of adjacent faces. Its 3D direction is
// normal(lhs) x normal(rhs), so (top, front) and (front, top) are
// opposite-directed edges sharing the same geometric line.
type Edge struct {
	Lhs, Rhs face.Face
}

// NewEdge builds an Edge, rejecting non-adjacent face pairs.
func NewEdge(lhs, rhs face.Face) (Edge, error) {
	if !face.IsAdjacent(lhs, rhs) {
		return Edge{}, fmt.Errorf("geometry: edge faces must be adjacent: %w", adjacencyErr(lhs, rhs))
	}
	return Edge{Lhs: lhs, Rhs: rhs}, nil
}

// Direction returns the unit 3D direction of e: normal(cross(lhs, rhs)).
func (e Edge) Direction() Vector3D {
	return face.Normal(face.MustCross(e.Lhs, e.Rhs))
}

// Length returns e's length in s: the piece dimension along cross(lhs, rhs).
func (e Edge) Length(s Shape3D) float64 {
	return s.AlongNormal(face.MustCross(e.Lhs, e.Rhs))
}

// Reversed returns the edge with lhs/rhs swapped (the opposite-directed
// edge sharing the same line).
func (e Edge) Reversed() Edge { return Edge{Lhs: e.Rhs, Rhs: e.Lhs} }

// EdgePoint names a point on an Edge at a signed Offset from the edge's
// origin corner.
type EdgePoint struct {
	Edge   Edge
	Offset Offset
}

// Corner identifies one of a box's eight vertices by one face per axis.
type Corner struct {
	faces [3]face.Face // indexed by face.Axis
}

// NewCorner builds a Corner from three faces that must cover the three
// distinct box axes exactly once.
func NewCorner(a, b, c face.Face) (Corner, error) {
	var out [3]face.Face
	var seen [3]bool
	for _, f := range [3]face.Face{a, b, c} {
		axis := face.AxisOf(f)
		if seen[axis] {
			return Corner{}, fmt.Errorf("geometry: corner faces %v, %v, %v do not cover three distinct axes", a, b, c)
		}
		seen[axis] = true
		out[axis] = f
	}
	return Corner{faces: out}, nil
}

// Face returns the corner's face on the given axis.
func (c Corner) Face(a face.Axis) face.Face { return c.faces[a] }

// Position returns c's 3D coordinate in b's local frame.
func (c Corner) Position(b Box) Point3D {
	var v Vector3D
	for _, f := range c.faces {
		half := b.Shape.AlongNormal(f) / 2
		v = v.Add(face.Normal(f).Mul(half))
	}
	return PointFromVec(v)
}

// CornerOf builds the Corner completed by f together with e's two faces.
// f must classify to the axis not already covered by e (e's own two faces
// already cover two of the three axes); this lets a caller pick either end
// of the edge by choosing f or face.Opposite(f).
func CornerOf(f face.Face, e Edge) (Corner, error) {
	return NewCorner(e.Lhs, e.Rhs, f)
}

// OriginOf returns the vertex that is the origin of e's positive direction:
// the corner reached by tracing back along cross(lhs, rhs), i.e. the corner
// on the negative side of that axis.
func OriginOf(e Edge) Corner {
	thirdAxisFace := face.Opposite(face.MustCross(e.Lhs, e.Rhs))
	c, err := CornerOf(thirdAxisFace, e)
	if err != nil {
		// e.Lhs/e.Rhs/thirdAxisFace are constructed to cover three
		// distinct axes by definition of MustCross; this cannot fail.
		panic(err)
	}
	return c
}

// Point3DOfEdgePoint is Point3D::of(Box, EdgePoint).
func (b Box) Point3DOfEdgePoint(ep EdgePoint) Point3D {
	origin := OriginOf(ep.Edge).Position(b)
	length := ep.Edge.Length(b.Shape)
	t := ep.Offset.Evaluate(length)
	return origin.Add(ep.Edge.Direction().Mul(t))
}

// SurfacePointOfEdgePoint is SurfacePoint::of(Box, contact_face, EdgePoint):
// the coordinate on contact_face whose 3D position equals ep's 3D position.
// contact_face must be one of ep.Edge's two faces (the edge must be
// incident to the face).
func (b Box) SurfacePointOfEdgePoint(contactFace face.Face, ep EdgePoint) (SurfacePoint, error) {
	if contactFace != ep.Edge.Lhs && contactFace != ep.Edge.Rhs {
		return SurfacePoint{}, fmt.Errorf("geometry: face %s is not incident to edge (%s, %s)", contactFace, ep.Edge.Lhs, ep.Edge.Rhs)
	}
	p := b.Point3DOfEdgePoint(ep)
	return b.SurfaceOfPoint3D(contactFace, p), nil
}

func adjacencyErr(lhs, rhs face.Face) error {
	_, err := face.Cross(lhs, rhs)
	return err
}
