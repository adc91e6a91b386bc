package geom

import "fmt"

// EmptyDrawingError is returned when a set of strokes contains no points at all, so no bounds
// can be computed.
type EmptyDrawingError struct {
	Strokes int
}

func (e *EmptyDrawingError) Error() string {
	if e.Strokes == 0 {
		return "empty drawing: no strokes"
	}
	return fmt.Sprintf("empty drawing: %d stroke(s) with no points", e.Strokes)
}

// MalformedPointError reports a non-finite coordinate at the given stroke and point index.
type MalformedPointError struct {
	Stroke int
	Point  int
	Value  Vec3
}

func (e *MalformedPointError) Error() string {
	return fmt.Sprintf("malformed point: stroke %d point %d has non-finite coordinates (%v, %v, %v)",
		e.Stroke, e.Point, e.Value.X, e.Value.Y, e.Value.Z)
}

// BoundsOverflowError reports finite points spread so far apart that the box size does not fit
// in a float32.
type BoundsOverflowError struct {
	Min Vec3
	Max Vec3
}

func (e *BoundsOverflowError) Error() string {
	return fmt.Sprintf("bounds overflow: extent from (%v, %v, %v) to (%v, %v, %v) is not finite",
		e.Min.X, e.Min.Y, e.Min.Z, e.Max.X, e.Max.Y, e.Max.Z)
}
