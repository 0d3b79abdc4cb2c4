package geometry

import "github.com/nichiyou-daiku/kernel/pkg/kerrors"

// OffsetKind distinguishes whether an Offset is measured from the start or
// the end of whatever length it is evaluated against.
type OffsetKind int

const (
	FromMin OffsetKind = iota
	FromMax
)

// Offset is a signed position along a length, expressed relative to either
// end. Both variants require a non-negative value; construction rejects
// negative values so a caller can never build an Offset that would evaluate
// to an out-of-range position before it is even bound to a piece.
type Offset struct {
	kind  OffsetKind
	value float64
}

// NewOffset builds an Offset, rejecting a negative value.
func NewOffset(kind OffsetKind, value float64) (Offset, error) {
	if value < 0 {
		return Offset{}, kerrors.InvalidOffset{Value: value}
	}
	return Offset{kind: kind, value: value}, nil
}

// NewFromMin builds an Offset measured from the minimum end.
func NewFromMin(value float64) (Offset, error) { return NewOffset(FromMin, value) }

// NewFromMax builds an Offset measured from the maximum end.
func NewFromMax(value float64) (Offset, error) { return NewOffset(FromMax, value) }

// Kind reports which variant this Offset is.
func (o Offset) Kind() OffsetKind { return o.kind }

// Value reports the raw (always non-negative) magnitude.
func (o Offset) Value() float64 { return o.value }

// Evaluate resolves the offset against a length, returning the absolute
// position measured from the minimum end.
func (o Offset) Evaluate(length float64) float64 {
	if o.kind == FromMax {
		return length - o.value
	}
	return o.value
}
