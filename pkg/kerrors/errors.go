// Package kerrors defines the structured error taxonomy raised by the
// geometric kernel. Every kernel error is a field-carrying struct, not a
// bare sentinel, because callers need the offending values (the exact
// offset, the exceeded limit) to render a useful diagnostic.
package kerrors

import "fmt"

// NotAdjacent is raised when an anchor is built from two faces that are
// equal or opposite; only adjacent faces share an edge.
type NotAdjacent struct {
	A, B string
}

func (e NotAdjacent) Error() string {
	return fmt.Sprintf("kernel: faces %q and %q are not adjacent", e.A, e.B)
}

// OffsetOutOfRange is raised when a BoundAnchor's evaluated offset falls
// outside [0, edge_length] for the piece it is bound to.
type OffsetOutOfRange struct {
	Edge       string
	EdgeLength float64
	Offset     float64
}

func (e OffsetOutOfRange) Error() string {
	return fmt.Sprintf("kernel: offset %.4f on edge %s is out of range [0, %.4f]", e.Offset, e.Edge, e.EdgeLength)
}

// UnsupportedConnection is raised when the joint-placement policy cannot
// place a connection between two contact faces.
type UnsupportedConnection struct {
	BaseFace, TargetFace string
	BaseEdge, TargetEdge string
}

func (e UnsupportedConnection) Error() string {
	return fmt.Sprintf("kernel: unsupported connection base=%s/%s target=%s/%s",
		e.BaseFace, e.BaseEdge, e.TargetFace, e.TargetEdge)
}

// FastenerTooLarge is raised when a dowel or screw's diameter or length
// exceeds the envelope of the pieces it joins.
type FastenerTooLarge struct {
	Dimension string // "diameter" or "length"
	Value     float64
	Limit     float64
}

func (e FastenerTooLarge) Error() string {
	return fmt.Sprintf("kernel: fastener %s %.4f exceeds limit %.4f", e.Dimension, e.Value, e.Limit)
}

// InvalidScrewLength is raised when a screw's length does not reach the
// base piece, or exceeds the combined thickness of both pieces.
type InvalidScrewLength struct {
	Length            float64
	TargetThickness   float64
	CombinedThickness float64
}

func (e InvalidScrewLength) Error() string {
	return fmt.Sprintf("kernel: screw length %.4f must be > %.4f (target thickness) and <= %.4f (combined thickness)",
		e.Length, e.TargetThickness, e.CombinedThickness)
}

// InvalidScrewFace is raised when a screw's target contact face is not
// front or back.
type InvalidScrewFace struct {
	Face string
}

func (e InvalidScrewFace) Error() string {
	return fmt.Sprintf("kernel: screw target contact face %q must be front or back", e.Face)
}

// DuplicatePieceID is raised when a model is built with two pieces sharing
// an id.
type DuplicatePieceID struct {
	ID string
}

func (e DuplicatePieceID) Error() string {
	return fmt.Sprintf("kernel: duplicate piece id %q", e.ID)
}

// UnknownPieceID is raised when a connection references a piece id that is
// not present in the model.
type UnknownPieceID struct {
	ID string
}

func (e UnknownPieceID) Error() string {
	return fmt.Sprintf("kernel: unknown piece id %q", e.ID)
}

// InvalidOffset is raised at Offset construction when a negative value is
// supplied to FromMin/FromMax.
type InvalidOffset struct {
	Value float64
}

func (e InvalidOffset) Error() string {
	return fmt.Sprintf("kernel: offset value %.4f must be >= 0", e.Value)
}

// InvalidShape is raised when a Shape3D/Shape2D dimension is not strictly
// positive.
type InvalidShape struct {
	Field string
	Value float64
}

func (e InvalidShape) Error() string {
	return fmt.Sprintf("kernel: shape dimension %s=%.4f must be > 0", e.Field, e.Value)
}

// ParallelOrientation is raised when Orientation3D is constructed with an
// "up" vector parallel to "direction" — there is no way to orthogonalise it.
type ParallelOrientation struct {
	Direction, Up [3]float64
}

func (e ParallelOrientation) Error() string {
	return fmt.Sprintf("kernel: orientation up %v is parallel to direction %v", e.Up, e.Direction)
}
