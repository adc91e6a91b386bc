package drawing

import (
	"encoding/json"
	"fmt"
	"strconv"

	"strokeview/internal/geom"

	"github.com/jinzhu/copier"
)

// DefaultStrokeWidth is used for strokes recorded without a width (or with width 0).
const DefaultStrokeWidth = 0.01

// Point is a capture-space position.
type Point = geom.Vec3

// Color is a normalized RGBA color. A is optional on the wire; Alpha reports 1 when absent.
type Color struct {
	R float32  `json:"r"`
	G float32  `json:"g"`
	B float32  `json:"b"`
	A *float32 `json:"a,omitempty"`
}

// Alpha returns A, or 1 when the color was sent without alpha.
func (c Color) Alpha() float32 {
	if c.A == nil {
		return 1
	}
	return *c.A
}

// Stroke is one pen-down to pen-up sequence of points.
type Stroke struct {
	Positions []Point `json:"positions"`
	Width     float32 `json:"width,omitempty"`
	Color     Color   `json:"color"`
}

// EffectiveWidth returns Width, or DefaultStrokeWidth when Width is unset or not positive.
func (s Stroke) EffectiveWidth() float32 {
	if s.Width <= 0 {
		return DefaultStrokeWidth
	}
	return s.Width
}

// Strokes decodes draw_lines either as a JSON array or as a string holding that array, which is
// how rows read straight from the drawings table arrive.
type Strokes []Stroke

func (s *Strokes) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var inner string
		if err := json.Unmarshal(data, &inner); err != nil {
			return err
		}
		data = []byte(inner)
	}
	var out []Stroke
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("draw_lines: %w", err)
	}
	*s = out
	return nil
}

// Timestamp keeps draw_timestamp as text whether it was sent as an ISO string or a number.
type Timestamp string

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*t = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*t = Timestamp(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("draw_timestamp: %w", err)
	}
	*t = Timestamp(n.String())
	return nil
}

// Drawing is one recorded drawing as served by the drawings API. Only Strokes feed the viewer;
// the classification fields are carried through for display.
type Drawing struct {
	DrawingID     string         `json:"drawing_id"`
	SceneID       string         `json:"scene_id"`
	DrawTimestamp Timestamp      `json:"draw_timestamp"`
	Strokes       Strokes        `json:"draw_lines"`
	CenterX       *float32       `json:"center_x,omitempty"`
	CenterY       *float32       `json:"center_y,omitempty"`
	CenterZ       *float32       `json:"center_z,omitempty"`
	Metadata      map[string]any `json:"metadata,omitempty"`

	ShapeID      any      `json:"shape_id,omitempty"`
	Success      *bool    `json:"success,omitempty"`
	Score        *float64 `json:"score,omitempty"`
	Reasoning    string   `json:"reasoning,omitempty"`
	ErrorMessage string   `json:"error_message,omitempty"`
}

// Center returns the precomputed center sent with the drawing, if all three parts are present.
func (d *Drawing) Center() (Point, bool) {
	if d.CenterX == nil || d.CenterY == nil || d.CenterZ == nil {
		return Point{}, false
	}
	return geom.V3(*d.CenterX, *d.CenterY, *d.CenterZ), true
}

// ShapeLabel formats the classification shape id for display, or "" when unclassified.
func (d *Drawing) ShapeLabel() string {
	switch v := d.ShapeID.(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

// Clone returns a deep copy so the caller's drawing can change without affecting a loaded scene.
func (d *Drawing) Clone() (*Drawing, error) {
	out := &Drawing{}
	if err := copier.CopyWithOption(out, d, copier.Option{DeepCopy: true}); err != nil {
		return nil, fmt.Errorf("drawing: clone: %w", err)
	}
	return out, nil
}

// PointSets returns the positions of every stroke, in stroke order.
func (d *Drawing) PointSets() [][]Point {
	out := make([][]Point, len(d.Strokes))
	for i, s := range d.Strokes {
		out[i] = s.Positions
	}
	return out
}

// Bounds returns the capture-space bounds of every point of d. See geom.ComputeBounds for the
// errors it returns.
func (d *Drawing) Bounds() (geom.BoundingBox, error) {
	return geom.ComputeBounds(d.PointSets())
}

// Summary is one row of the drawings list endpoint.
type Summary struct {
	DrawingID     string    `json:"drawing_id"`
	DrawTimestamp Timestamp `json:"draw_timestamp"`
	CreatedAt     Timestamp `json:"created_at"`
	UseAI         bool      `json:"use_ai"`
}
