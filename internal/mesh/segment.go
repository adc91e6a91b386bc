// Package mesh turns strokes into render-ready tube segments. Every stroke becomes a chain of
// cylinders, one per pair of consecutive points.
package mesh

import (
	"github.com/chewxy/math32"

	"strokeview/internal/drawing"
	"strokeview/internal/geom"
)

// MinRadius keeps very thin strokes from producing zero-radius geometry.
const MinRadius = 0.001

// Segment describes one cylinder of a stroke, in render space. The unit cylinder it is applied
// to has its length along +Y and is centered on the origin.
type Segment struct {
	Start    geom.Vec3
	End      geom.Vec3
	Position geom.Vec3 // midpoint of Start and End
	Length   float32
	Radius   float32
	Rotation geom.Quat // takes +Y onto End-Start
	Color    drawing.Color
}

// Radius returns the tube radius for a stroke of the given width.
func Radius(width float32) float32 {
	if width <= 0 {
		width = drawing.DefaultStrokeWidth
	}
	return math32.Max(width/2, MinRadius)
}

// BuildStroke maps s into render space around origin and returns one Segment per consecutive
// point pair. Strokes with fewer than two points yield no segments.
func BuildStroke(s drawing.Stroke, origin geom.Vec3) []Segment {
	if len(s.Positions) < 2 {
		return nil
	}
	radius := Radius(s.Width)
	out := make([]Segment, 0, len(s.Positions)-1)
	prev := geom.ToRenderSpace(s.Positions[0], origin)
	for _, p := range s.Positions[1:] {
		cur := geom.ToRenderSpace(p, origin)
		dir := cur.Sub(prev)
		length := dir.Length()
		rot := geom.IdentityQuat
		if length > 0 {
			rot = geom.QuatBetween(geom.UnitY, dir.Scale(1/length))
		}
		out = append(out, Segment{
			Start:    prev,
			End:      cur,
			Position: prev.Lerp(cur, 0.5),
			Length:   length,
			Radius:   radius,
			Rotation: rot,
			Color:    s.Color,
		})
		prev = cur
	}
	return out
}

// BuildDrawing builds every stroke of strokes around origin. counts[i] is the number of segments
// stroke i contributed.
func BuildDrawing(strokes []drawing.Stroke, origin geom.Vec3) (segs []Segment, counts []int) {
	counts = make([]int, len(strokes))
	for i, s := range strokes {
		built := BuildStroke(s, origin)
		counts[i] = len(built)
		segs = append(segs, built...)
	}
	return segs, counts
}
