package geometry

import (
	"github.com/nichiyou-daiku/kernel/pkg/face"
	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
)

// Shape3D is three strictly positive lengths, in millimetres, describing a
// rectangular solid.
type Shape3D struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Length float64 `json:"length"`
}

// NewShape3D validates that all three dimensions are strictly positive.
func NewShape3D(width, height, length float64) (Shape3D, error) {
	s := Shape3D{Width: width, Height: height, Length: length}
	if width <= 0 {
		return Shape3D{}, kerrors.InvalidShape{Field: "width", Value: width}
	}
	if height <= 0 {
		return Shape3D{}, kerrors.InvalidShape{Field: "height", Value: height}
	}
	if length <= 0 {
		return Shape3D{}, kerrors.InvalidShape{Field: "length", Value: length}
	}
	return s, nil
}

// AlongAxis returns the shape's extent along the given box axis: length for
// the vertical (top/down) axis, width for left-to-right, height for
// back-to-front. This fixed mapping is the one piece of global
// configuration in the kernel — changing it anywhere is a global change.
func (s Shape3D) AlongAxis(a face.Axis) float64 {
	switch a {
	case face.AxisVertical:
		return s.Length
	case face.AxisLeftToRight:
		return s.Width
	case face.AxisBackToFront:
		return s.Height
	default:
		panic("geometry: invalid axis")
	}
}

// AlongNormal returns the shape's extent along the axis of f's normal —
// i.e. the piece dimension a fastener entering through f would travel.
func (s Shape3D) AlongNormal(f face.Face) float64 {
	return s.AlongAxis(face.AxisOf(f))
}

// CrossSectionAt returns the two in-plane extents of the face f (its width
// and height as a 2D rectangle), in (u-axis, v-axis) order.
func (s Shape3D) CrossSectionAt(f face.Face) (uExtent, vExtent float64) {
	u, v := faceBasis(f)
	return s.AlongAxis(axisOfUnit(u)), s.AlongAxis(axisOfUnit(v))
}
