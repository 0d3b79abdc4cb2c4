// Package lumber defines piece types and pieces: a PieceType names a
// cross-section (e.g. a "2x4"), and a Piece bundles an id, a PieceType, and
// a length. This is the kernel's DSL-facing vocabulary: a parser maps a
// closed set of piece_type_tag strings to a PieceType via Lookup before
// anything reaches the geometric kernel.
package lumber

import (
	"github.com/nichiyou-daiku/kernel/pkg/geometry"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
)

// Shape2D is a cross-section: the width/height of a piece's milled stock,
// before a length is chosen.
type Shape2D struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// PieceType names a cross-section.
type PieceType struct {
	Tag   string  `json:"tag"`
	Shape Shape2D `json:"shape"`
}

// Registry holds the closed set of piece-type tags the kernel recognises,
// mirroring original_source's core/lumber.py preset table. Unlike that
// table, which is fixed at import time, Registry is a value a caller can
// extend with Register so a DSL front-end can add project-specific stock.
type Registry struct {
	byTag map[string]PieceType
}

// NewRegistry returns a Registry pre-populated with the standard nominal
// dimensional-lumber sizes (actual milled dimensions, in mm).
func NewRegistry() *Registry {
	r := &Registry{byTag: make(map[string]PieceType)}
	for _, pt := range standardPieceTypes {
		r.byTag[pt.Tag] = pt
	}
	return r
}

// standardPieceTypes are the actual (milled, not nominal) cross-sections of
// common dimensional lumber, in millimetres.
var standardPieceTypes = []PieceType{
	{Tag: "1x2", Shape: Shape2D{Width: 38, Height: 19}},
	{Tag: "1x4", Shape: Shape2D{Width: 89, Height: 19}},
	{Tag: "1x6", Shape: Shape2D{Width: 140, Height: 19}},
	{Tag: "2x2", Shape: Shape2D{Width: 38, Height: 38}},
	{Tag: "2x4", Shape: Shape2D{Width: 89, Height: 38}},
	{Tag: "2x6", Shape: Shape2D{Width: 140, Height: 38}},
	{Tag: "2x8", Shape: Shape2D{Width: 184, Height: 38}},
	{Tag: "4x4", Shape: Shape2D{Width: 89, Height: 89}},
}

// Register adds or replaces a PieceType under the given tag.
func (r *Registry) Register(pt PieceType) {
	r.byTag[pt.Tag] = pt
}

// Lookup returns the PieceType for tag, and whether it was found.
func (r *Registry) Lookup(tag string) (PieceType, bool) {
	pt, ok := r.byTag[tag]
	return pt, ok
}

// Piece is a named piece of lumber: a PieceType cross-section cut to Length.
type Piece struct {
	ID     string    `json:"id"`
	Type   PieceType `json:"type"`
	Length float64   `json:"length"`
}

// NewPiece validates that Length is strictly positive.
func NewPiece(id string, pt PieceType, length float64) (Piece, error) {
	if length <= 0 {
		return Piece{}, kerrors.InvalidShape{Field: "length", Value: length}
	}
	return Piece{ID: id, Type: pt, Length: length}, nil
}

// ShapeOf returns p's full Shape3D (width/height from its PieceType, length
// from the piece itself).
func ShapeOf(p Piece) (geometry.Shape3D, error) {
	return geometry.NewShape3D(p.Type.Shape.Width, p.Type.Shape.Height, p.Length)
}

// Box returns p's geometry.Box.
func Box(p Piece) (geometry.Box, error) {
	s, err := ShapeOf(p)
	if err != nil {
		return geometry.Box{}, err
	}
	return geometry.NewBox(s), nil
}
