// Package anchor implements Anchor and BoundAnchor: a point on a piece
// named by two adjacent faces and a signed edge offset, and its binding to
// a concrete Piece.
package anchor

import (
	"github.com/nichiyou-daiku/kernel/pkg/face"
	"github.com/nichiyou-daiku/kernel/pkg/geometry"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
	"github.com/nichiyou-daiku/kernel/pkg/lumber"
)

// Anchor designates an edge (shared between ContactFace and EdgeSharedFace)
// and a point on that edge at Offset. ContactFace additionally fixes the
// outward direction of the joint.
type Anchor struct {
	ContactFace    face.Face     `json:"contact_face"`
	EdgeSharedFace face.Face     `json:"edge_shared_face"`
	Offset         geometry.Offset `json:"offset"`
}

// New builds an Anchor, rejecting a ContactFace/EdgeSharedFace pair that
// is not adjacent.
func New(contactFace, edgeSharedFace face.Face, offset geometry.Offset) (Anchor, error) {
	if !face.IsAdjacent(contactFace, edgeSharedFace) {
		return Anchor{}, kerrors.NotAdjacent{A: contactFace.String(), B: edgeSharedFace.String()}
	}
	return Anchor{ContactFace: contactFace, EdgeSharedFace: edgeSharedFace, Offset: offset}, nil
}

// AsEdgePoint orients the edge between ContactFace and EdgeSharedFace so
// that cross(lhs, rhs) is positive along its axis, then couples it with the
// anchor's offset.
func (a Anchor) AsEdgePoint() geometry.EdgePoint {
	cross := face.MustCross(a.ContactFace, a.EdgeSharedFace)
	var e geometry.Edge
	if face.IsPositive(cross) {
		e = geometry.Edge{Lhs: a.ContactFace, Rhs: a.EdgeSharedFace}
	} else {
		e = geometry.Edge{Lhs: a.EdgeSharedFace, Rhs: a.ContactFace}
	}
	return geometry.EdgePoint{Edge: e, Offset: a.Offset}
}

// UpFace returns cross(ContactFace, EdgeSharedFace): the face whose normal
// is this anchor's canonical "up" direction.
func (a Anchor) UpFace() face.Face {
	return face.MustCross(a.ContactFace, a.EdgeSharedFace)
}

// BoundAnchor is an Anchor bound to a concrete Piece.
type BoundAnchor struct {
	Piece  lumber.Piece `json:"piece"`
	Anchor Anchor       `json:"anchor"`
}

// Bind validates that a's offset, evaluated against the edge length implied
// by p's shape, lies in [0, edge_length].
func Bind(p lumber.Piece, a Anchor) (BoundAnchor, error) {
	shape, err := lumber.ShapeOf(p)
	if err != nil {
		return BoundAnchor{}, err
	}

	ep := a.AsEdgePoint()
	edgeLength := ep.Edge.Length(shape)
	value := ep.Offset.Evaluate(edgeLength)
	if value < 0 || value > edgeLength {
		return BoundAnchor{}, kerrors.OffsetOutOfRange{
			Edge:       edgeName(ep.Edge),
			EdgeLength: edgeLength,
			Offset:     value,
		}
	}

	return BoundAnchor{Piece: p, Anchor: a}, nil
}

// AsSurfacePoint is as_surface_point(bound_anchor): the point on
// ContactFace where this anchor sits, in the piece's local frame.
func (b BoundAnchor) AsSurfacePoint() (geometry.SurfacePoint, error) {
	box, err := lumber.Box(b.Piece)
	if err != nil {
		return geometry.SurfacePoint{}, err
	}
	ep := b.Anchor.AsEdgePoint()
	return box.SurfacePointOfEdgePoint(b.Anchor.ContactFace, ep)
}

// Orientation3D stores two orthogonal unit vectors describing a pose:
// Direction is the outward normal, Up is the in-plane reference direction.
type Orientation3D struct {
	Direction geometry.Vector3D `json:"direction"`
	Up        geometry.Vector3D `json:"up"`
}

// NewOrientation3D orthogonalises up against direction (Gram-Schmidt) and
// rejects inputs where up is parallel to direction (nothing to
// orthogonalise against).
func NewOrientation3D(direction, up geometry.Vector3D) (Orientation3D, error) {
	direction = direction.Normalize()
	proj := direction.Mul(up.Dot(direction))
	ortho := up.Sub(proj)
	if ortho.Dot(ortho) < 1e-18 {
		return Orientation3D{}, kerrors.ParallelOrientation{
			Direction: [3]float64{direction.X(), direction.Y(), direction.Z()},
			Up:        [3]float64{up.X(), up.Y(), up.Z()},
		}
	}
	return Orientation3D{Direction: direction, Up: ortho.Normalize()}, nil
}

// AsOrientation is as_orientation(bound_anchor, flip_up): the joint's
// canonical pose on its own piece. When flipUp is true, Up is negated —
// the convention project_joint uses on the target side of a connection.
func (a Anchor) AsOrientation(flipUp bool) (Orientation3D, error) {
	direction := face.Normal(a.ContactFace)
	up := face.Normal(a.UpFace())
	if flipUp {
		up = up.Mul(-1)
	}
	return NewOrientation3D(direction, up)
}

func edgeName(e geometry.Edge) string {
	return e.Lhs.String() + "-" + e.Rhs.String()
}
