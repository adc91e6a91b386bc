package geom

import "github.com/chewxy/math32"

// BoundingBox is an axis-aligned box. Min <= Max on every axis for any box returned by
// ComputeBounds.
type BoundingBox struct {
	Min Vec3
	Max Vec3
}

// Size returns Max-Min per axis.
func (b BoundingBox) Size() Vec3 {
	return b.Max.Sub(b.Min)
}

// Center returns the midpoint of Min and Max. Halving before adding keeps it finite for any
// finite box, even one whose Size overflows.
func (b BoundingBox) Center() Vec3 {
	return b.Min.Scale(0.5).Add(b.Max.Scale(0.5))
}

// MaxExtent returns the largest of the three sizes.
func (b BoundingBox) MaxExtent() float32 {
	s := b.Size()
	return math32.Max(s.X, math32.Max(s.Y, s.Z))
}

// Union returns the smallest box containing both b and o.
func (b BoundingBox) Union(o BoundingBox) BoundingBox {
	return BoundingBox{
		Min: Vec3{math32.Min(b.Min.X, o.Min.X), math32.Min(b.Min.Y, o.Min.Y), math32.Min(b.Min.Z, o.Min.Z)},
		Max: Vec3{math32.Max(b.Max.X, o.Max.X), math32.Max(b.Max.Y, o.Max.Y), math32.Max(b.Max.Z, o.Max.Z)},
	}
}

// ComputeBounds returns the bounds of every point of every stroke. It fails with
// *EmptyDrawingError when there are no points, with *MalformedPointError on the first
// non-finite coordinate and with *BoundsOverflowError when the points are finite but their span
// is not, so infinities never reach a caller as bounds.
func ComputeBounds(strokes [][]Vec3) (BoundingBox, error) {
	var b BoundingBox
	seen := false
	for si, pts := range strokes {
		for pi, p := range pts {
			if !p.IsFinite() {
				return BoundingBox{}, &MalformedPointError{Stroke: si, Point: pi, Value: p}
			}
			if !seen {
				b = BoundingBox{Min: p, Max: p}
				seen = true
				continue
			}
			b = b.Union(BoundingBox{Min: p, Max: p})
		}
	}
	if !seen {
		return BoundingBox{}, &EmptyDrawingError{Strokes: len(strokes)}
	}
	if !b.Size().IsFinite() {
		return BoundingBox{}, &BoundsOverflowError{Min: b.Min, Max: b.Max}
	}
	return b, nil
}
