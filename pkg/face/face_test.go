package face

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/nichiyou-daiku/kernel/pkg/kerrors"
)

func TestOppositeRoundTrip(t *testing.T) {
	for _, f := range All {
		t.Run(f.String(), func(t *testing.T) {
			assert.Equal(t, f, Opposite(Opposite(f)))
		})
	}
}

func TestCrossAdjacentPairs(t *testing.T) {
	tests := []struct {
		a, b Face
	}{
		{Top, Front}, {Front, Top},
		{Top, Right}, {Right, Top},
		{Left, Top}, {Top, Left},
		{Front, Right}, {Right, Front},
	}
	for _, tt := range tests {
		t.Run(tt.a.String()+"_"+tt.b.String(), func(t *testing.T) {
			got, err := Cross(tt.a, tt.b)
			require.NoError(t, err)

			reverse, err := Cross(tt.b, tt.a)
			require.NoError(t, err)
			assert.Equal(t, got, Opposite(reverse), "cross(a,b) must equal opposite(cross(b,a))")

			assert.True(t, IsAdjacent(got, tt.a))
			assert.True(t, IsAdjacent(got, tt.b))
		})
	}
}

func TestCrossRejectsNonAdjacent(t *testing.T) {
	tests := []struct {
		name string
		a, b Face
	}{
		{"equal", Top, Top},
		{"opposite", Top, Down},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cross(tt.a, tt.b)
			require.Error(t, err)
			assert.IsType(t, kerrors.NotAdjacent{}, err)
		})
	}
}

func TestAxisClassification(t *testing.T) {
	assert.True(t, IsVerticalAxis(Top))
	assert.True(t, IsVerticalAxis(Down))
	assert.False(t, IsVerticalAxis(Left))

	assert.True(t, IsLeftToRightAxis(Left))
	assert.True(t, IsLeftToRightAxis(Right))

	assert.True(t, IsBackToFrontAxis(Front))
	assert.True(t, IsBackToFrontAxis(Back))

	assert.True(t, SameAxis(Top, Down))
	assert.False(t, SameAxis(Top, Left))
}

func TestIsPositive(t *testing.T) {
	tests := []struct {
		f    Face
		want bool
	}{
		{Top, true}, {Down, false},
		{Right, true}, {Left, false},
		{Front, true}, {Back, false},
	}
	for _, tt := range tests {
		t.Run(tt.f.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, IsPositive(tt.f))
		})
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, f := range All {
		got, ok := Parse(f.String())
		require.True(t, ok)
		assert.Equal(t, f, got)
	}
	_, ok := Parse("diagonal")
	assert.False(t, ok)
}

func TestNormalUnitLength(t *testing.T) {
	for _, f := range All {
		n := Normal(f)
		assert.InDelta(t, 1.0, n.Len(), 1e-12)
	}
}
