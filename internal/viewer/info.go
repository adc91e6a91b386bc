package viewer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"strokeview/internal/viewport"
)

// HelpLine lists the viewer's mouse and key bindings.
const HelpLine = "L-drag rotate | R-drag pan | wheel zoom | R reset | N/P next/prev | G grid | F3 fps | C copy | H help"

// Selection describes where the shown drawing sits in the list.
type Selection struct {
	Index int
	Total int
}

// maxInfoLength caps free-text lines such as classification reasoning.
const maxInfoLength = 160

// Truncate shortens s to at most max runes, ending in "..." when cut. It never splits a
// multi-byte character.
func Truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	if max <= 0 {
		return ""
	}
	if max <= 3 {
		return "..."[:max]
	}
	r := []rune(s)
	return string(r[:max-3]) + "..."
}

// InfoLines describes the loaded drawing: id, timestamp, position in the list, geometry
// statistics and any classification result sent with it.
func InfoLines(s *viewport.Scene, sel Selection) []string {
	d := s.Drawing()
	if d == nil {
		return []string{"no drawing loaded"}
	}
	head := "drawing " + d.DrawingID
	if sel.Total > 0 && sel.Index >= 0 {
		head += fmt.Sprintf("  (%d/%d)", sel.Index+1, sel.Total)
	}
	lines := []string{head}
	if d.DrawTimestamp != "" {
		lines = append(lines, "drawn "+string(d.DrawTimestamp))
	}
	st := s.Stats()
	lines = append(lines, fmt.Sprintf("%d strokes, %d points, %d segments, length %.3f, %d closed",
		st.Strokes, st.Points, st.Segments, st.TotalLength, st.ClosedStrokes))
	size := s.Bounds().Size()
	lines = append(lines, fmt.Sprintf("size %.3f x %.3f x %.3f", size.X, size.Y, size.Z))

	var cls []string
	if shape := d.ShapeLabel(); shape != "" {
		cls = append(cls, "shape "+shape)
	}
	if d.Score != nil {
		cls = append(cls, fmt.Sprintf("score %.2f", *d.Score))
	}
	if d.Success != nil && !*d.Success {
		cls = append(cls, "classification failed")
	}
	if len(cls) > 0 {
		lines = append(lines, strings.Join(cls, ", "))
	}
	if d.Reasoning != "" {
		lines = append(lines, Truncate(d.Reasoning, maxInfoLength))
	}
	if d.ErrorMessage != "" {
		lines = append(lines, Truncate("error: "+d.ErrorMessage, maxInfoLength))
	}
	return lines
}

// PoseText is the text copied to the clipboard: drawing id, camera pose and group rotation,
// one per line.
func PoseText(s *viewport.Scene) string {
	v := s.View()
	id := ""
	if d := s.Drawing(); d != nil {
		id = d.DrawingID
	}
	p, t := v.Camera.Position, v.Camera.Target
	return fmt.Sprintf("drawing %s\ncamera %.4f %.4f %.4f\ntarget %.4f %.4f %.4f\nyaw %.4f pitch %.4f\n",
		id, p.X, p.Y, p.Z, t.X, t.Y, t.Z, v.Yaw, v.Pitch)
}
