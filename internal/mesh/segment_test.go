package mesh

import (
	"testing"

	"strokeview/internal/drawing"
	"strokeview/internal/geom"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var red = drawing.Color{R: 1}

func line(n int) drawing.Stroke {
	s := drawing.Stroke{Width: 0.02, Color: red}
	for i := 0; i < n; i++ {
		s.Positions = append(s.Positions, geom.V3(float32(i), float32(i*i), 1))
	}
	return s
}

func TestBuildStrokeCount(t *testing.T) {
	for n := 0; n < 6; n++ {
		segs := BuildStroke(line(n), geom.Zero)
		want := n - 1
		if n < 2 {
			want = 0
		}
		assert.Len(t, segs, want, "points=%d", n)
	}
}

func TestBuildStrokeSegment(t *testing.T) {
	s := drawing.Stroke{
		Positions: []drawing.Point{geom.V3(1, 1, 1), geom.V3(1, 1, 3)},
		Width:     0.5,
		Color:     drawing.Color{R: 0.2, G: 0.4, B: 0.6},
	}
	segs := BuildStroke(s, geom.V3(1, 1, 1))
	require.Len(t, segs, 1)
	seg := segs[0]

	// capture +Z is render +Y, so this segment stands upright from the origin
	assert.Equal(t, geom.V3(0, 0, 0), seg.Start)
	assert.Equal(t, geom.V3(0, 2, 0), seg.End)
	assert.Equal(t, geom.V3(0, 1, 0), seg.Position)
	assert.InDelta(t, 2, seg.Length, 1e-6)
	assert.InDelta(t, 0.25, seg.Radius, 1e-6)
	assert.Equal(t, geom.IdentityQuat, seg.Rotation)
	assert.Equal(t, s.Color, seg.Color)
}

func TestBuildStrokeOrientation(t *testing.T) {
	segs := BuildStroke(line(5), geom.V3(0.5, -1, 2))
	require.Len(t, segs, 4)
	for _, seg := range segs {
		dir := seg.End.Sub(seg.Start)
		axis := seg.Rotation.Rotate(geom.UnitY).Scale(seg.Length)
		assert.InDelta(t, dir.X, axis.X, 1e-4)
		assert.InDelta(t, dir.Y, axis.Y, 1e-4)
		assert.InDelta(t, dir.Z, axis.Z, 1e-4)
		assert.InDelta(t, dir.Length(), seg.Length, 1e-5)
	}
}

func TestBuildStrokeCoincidentPoints(t *testing.T) {
	s := drawing.Stroke{Positions: []drawing.Point{geom.V3(2, 2, 2), geom.V3(2, 2, 2)}}
	segs := BuildStroke(s, geom.Zero)
	require.Len(t, segs, 1)
	assert.Equal(t, float32(0), segs[0].Length)
	assert.Equal(t, geom.IdentityQuat, segs[0].Rotation)
}

func TestRadiusClamp(t *testing.T) {
	assert.InDelta(t, drawing.DefaultStrokeWidth/2, Radius(0), 1e-7)
	assert.InDelta(t, drawing.DefaultStrokeWidth/2, Radius(-1), 1e-7)
	assert.Equal(t, float32(MinRadius), Radius(0.0001))
	assert.InDelta(t, 0.05, Radius(0.1), 1e-7)
}

func TestBuildDrawingScenario(t *testing.T) {
	strokes := []drawing.Stroke{
		{Positions: []drawing.Point{geom.V3(0, 0, 0), geom.V3(1, 0, 0)}, Width: 0.01, Color: red},
		{Positions: []drawing.Point{geom.V3(5, 5, 5)}},
	}
	segs, counts := BuildDrawing(strokes, geom.V3(2.5, 2.5, 2.5))
	assert.Equal(t, []int{1, 0}, counts)
	require.Len(t, segs, 1)
	assert.Equal(t, geom.V3(-2.5, -2.5, 2.5), segs[0].Start)
	assert.Equal(t, geom.V3(-1.5, -2.5, 2.5), segs[0].End)
	assert.Equal(t, red, segs[0].Color)
}
