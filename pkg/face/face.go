// Package face implements the six-face oriented-box algebra: the closed
// enumeration of faces, their outward normals, and the adjacency/cross
// operations every other kernel package builds on.
//
// Face normals are fixed once, here, in a single right-handed assignment
// (top=+Z, down=-Z, right=+Y, left=-Y, front=+X, back=-X). Cross is derived
// from that table by vector arithmetic rather than hand-matched per pair;
// opposite, axis classification and positivity are small per-face switches
// over the same assignment.
package face

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
)

// Face is a closed enumeration of the six faces of a rectangular piece.
type Face int

const (
	Top Face = iota
	Down
	Left
	Right
	Front
	Back
)

// Axis identifies one of the three box axes.
type Axis int

const (
	AxisVertical     Axis = iota // top/down
	AxisLeftToRight              // left/right
	AxisBackToFront              // front/back
)

// All lists the six faces in a stable, enumeration order.
var All = [6]Face{Top, Down, Left, Right, Front, Back}

func (f Face) String() string {
	switch f {
	case Top:
		return "top"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	case Front:
		return "front"
	case Back:
		return "back"
	default:
		return fmt.Sprintf("Face(%d)", int(f))
	}
}

// Parse maps the DSL's closed set of face tags to a Face, returning false
// for any string outside {top, down, left, right, front, back}.
func Parse(s string) (Face, bool) {
	for _, f := range All {
		if f.String() == s {
			return f, true
		}
	}
	return 0, false
}

// normals is the face-normal table: Cross is derived from it via real vector
// arithmetic (mgl64.Vec3.Cross), not a memorized combination table.
var normals = [6]mgl64.Vec3{
	Top:   {0, 0, 1},
	Down:  {0, 0, -1},
	Right: {0, 1, 0},
	Left:  {0, -1, 0},
	Front: {1, 0, 0},
	Back:  {-1, 0, 0},
}

// Normal returns the outward unit normal of f in piece-local coordinates.
func Normal(f Face) mgl64.Vec3 {
	return normals[f]
}

// Opposite returns the antiparallel face.
func Opposite(f Face) Face {
	switch f {
	case Top:
		return Down
	case Down:
		return Top
	case Left:
		return Right
	case Right:
		return Left
	case Front:
		return Back
	case Back:
		return Front
	default:
		panic(fmt.Sprintf("face: invalid face %d", int(f)))
	}
}

// IsAdjacent reports whether a and b are neither equal nor opposite.
func IsAdjacent(a, b Face) bool {
	return a != b && Opposite(a) != b
}

// AxisOf classifies f to one of the three box axes.
func AxisOf(f Face) Axis {
	switch f {
	case Top, Down:
		return AxisVertical
	case Left, Right:
		return AxisLeftToRight
	case Front, Back:
		return AxisBackToFront
	default:
		panic(fmt.Sprintf("face: invalid face %d", int(f)))
	}
}

// IsVerticalAxis reports whether f is top or down.
func IsVerticalAxis(f Face) bool { return AxisOf(f) == AxisVertical }

// IsLeftToRightAxis reports whether f is left or right.
func IsLeftToRightAxis(f Face) bool { return AxisOf(f) == AxisLeftToRight }

// IsBackToFrontAxis reports whether f is front or back.
func IsBackToFrontAxis(f Face) bool { return AxisOf(f) == AxisBackToFront }

// IsPositive reports whether f's normal points along the positive
// direction of its axis.
func IsPositive(f Face) bool {
	switch f {
	case Top, Right, Front:
		return true
	default:
		return false
	}
}

// SameAxis reports whether a and b classify to the same axis (i.e. one is
// the Opposite of the other, or a == b).
func SameAxis(a, b Face) bool {
	return AxisOf(a) == AxisOf(b)
}

// Cross returns the face whose normal equals normal(a) x normal(b) under
// the right-hand rule. It is defined only for adjacent faces.
func Cross(a, b Face) (Face, error) {
	if !IsAdjacent(a, b) {
		return 0, kerrors.NotAdjacent{A: a.String(), B: b.String()}
	}
	n := Normal(a).Cross(Normal(b))
	for _, f := range All {
		if approxEqual(Normal(f), n) {
			return f, nil
		}
	}
	// Unreachable for a closed right-handed assignment over adjacent faces.
	panic(fmt.Sprintf("face: cross(%s, %s) produced non-axis-aligned vector %v", a, b, n))
}

// MustCross is Cross without the error return, for call sites that have
// already validated adjacency.
func MustCross(a, b Face) Face {
	f, err := Cross(a, b)
	if err != nil {
		panic(err)
	}
	return f
}

const epsilon = 1e-9

func approxEqual(a, b mgl64.Vec3) bool {
	d := a.Sub(b)
	return d.Dot(d) < epsilon*epsilon
}
