// Package connection defines ConnectionKind and Connection: two bound
// anchors on two pieces plus the fastening policy between them, with
// dimensional validation enforced at construction.
package connection

import (
	"github.com/nichiyou-daiku/kernel/pkg/anchor"
	"github.com/nichiyou-daiku/kernel/pkg/face"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
	"github.com/nichiyou-daiku/kernel/pkg/lumber"
)

// Kind distinguishes the three connection policies.
type Kind int

const (
	Vanilla Kind = iota
	Dowel
	Screw
)

func (k Kind) String() string {
	switch k {
	case Vanilla:
		return "vanilla"
	case Dowel:
		return "dowel"
	case Screw:
		return "screw"
	default:
		return "unknown"
	}
}

// FastenerParams holds the diameter/length of a Dowel or Screw connection.
type FastenerParams struct {
	Diameter float64 `json:"diameter"`
	Length   float64 `json:"length"`
}

// ConnectionKind is the tagged union of Vanilla | Dowel{params} | Screw{params}.
type ConnectionKind struct {
	Kind   Kind            `json:"kind"`
	Params *FastenerParams `json:"params,omitempty"` // nil for Vanilla
}

// NewVanilla builds a plain-contact connection kind.
func NewVanilla() ConnectionKind { return ConnectionKind{Kind: Vanilla} }

// NewDowel builds a Dowel connection kind, validating diameter/length are
// positive.
func NewDowel(diameter, length float64) (ConnectionKind, error) {
	if err := validateFastenerShape(diameter, length); err != nil {
		return ConnectionKind{}, err
	}
	return ConnectionKind{Kind: Dowel, Params: &FastenerParams{Diameter: diameter, Length: length}}, nil
}

// NewScrew builds a Screw connection kind, validating diameter/length are
// positive.
func NewScrew(diameter, length float64) (ConnectionKind, error) {
	if err := validateFastenerShape(diameter, length); err != nil {
		return ConnectionKind{}, err
	}
	return ConnectionKind{Kind: Screw, Params: &FastenerParams{Diameter: diameter, Length: length}}, nil
}

func validateFastenerShape(diameter, length float64) error {
	if diameter <= 0 {
		return kerrors.InvalidShape{Field: "diameter", Value: diameter}
	}
	if length <= 0 {
		return kerrors.InvalidShape{Field: "length", Value: length}
	}
	return nil
}

// Connection is a base/target BoundAnchor pair plus the ConnectionKind
// between them.
type Connection struct {
	Base   anchor.BoundAnchor `json:"base"`
	Target anchor.BoundAnchor `json:"target"`
	Kind   ConnectionKind     `json:"kind"`
}

// New builds a Connection, enforcing the per-kind dimensional invariants.
func New(base, target anchor.BoundAnchor, kind ConnectionKind) (Connection, error) {
	switch kind.Kind {
	case Dowel:
		if err := validateDowel(base, target, *kind.Params); err != nil {
			return Connection{}, err
		}
	case Screw:
		if err := validateScrew(base, target, *kind.Params); err != nil {
			return Connection{}, err
		}
	}
	return Connection{Base: base, Target: target, Kind: kind}, nil
}

func validateDowel(base, target anchor.BoundAnchor, params FastenerParams) error {
	baseShape, err := lumber.ShapeOf(base.Piece)
	if err != nil {
		return err
	}
	targetShape, err := lumber.ShapeOf(target.Piece)
	if err != nil {
		return err
	}

	baseThickness := baseShape.AlongNormal(base.Anchor.ContactFace)
	targetThickness := targetShape.AlongNormal(target.Anchor.ContactFace)
	if params.Length > baseThickness {
		return kerrors.FastenerTooLarge{Dimension: "length", Value: params.Length, Limit: baseThickness}
	}
	if params.Length > targetThickness {
		return kerrors.FastenerTooLarge{Dimension: "length", Value: params.Length, Limit: targetThickness}
	}

	baseU, baseV := baseShape.CrossSectionAt(base.Anchor.ContactFace)
	targetU, targetV := targetShape.CrossSectionAt(target.Anchor.ContactFace)
	limit := min4(baseU, baseV, targetU, targetV)
	if params.Diameter > limit {
		return kerrors.FastenerTooLarge{Dimension: "diameter", Value: params.Diameter, Limit: limit}
	}
	return nil
}

func validateScrew(base, target anchor.BoundAnchor, params FastenerParams) error {
	if target.Anchor.ContactFace != face.Front && target.Anchor.ContactFace != face.Back {
		return kerrors.InvalidScrewFace{Face: target.Anchor.ContactFace.String()}
	}

	baseShape, err := lumber.ShapeOf(base.Piece)
	if err != nil {
		return err
	}
	targetShape, err := lumber.ShapeOf(target.Piece)
	if err != nil {
		return err
	}

	baseThickness := baseShape.AlongNormal(base.Anchor.ContactFace)
	targetThickness := targetShape.AlongNormal(target.Anchor.ContactFace)
	combined := baseThickness + targetThickness

	if params.Length <= targetThickness || params.Length > combined {
		return kerrors.InvalidScrewLength{
			Length:            params.Length,
			TargetThickness:   targetThickness,
			CombinedThickness: combined,
		}
	}

	baseU, baseV := baseShape.CrossSectionAt(base.Anchor.ContactFace)
	targetU, targetV := targetShape.CrossSectionAt(target.Anchor.ContactFace)
	limit := min4(baseU, baseV, targetU, targetV)
	if params.Diameter > limit {
		return kerrors.FastenerTooLarge{Dimension: "diameter", Value: params.Diameter, Limit: limit}
	}
	return nil
}

func min4(a, b, c, d float64) float64 {
	m := a
	for _, v := range [3]float64{b, c, d} {
		if v < m {
			m = v
		}
	}
	return m
}
