package drawing

import "github.com/chewxy/math32"

// closedThreshold is the start-to-end distance under which a stroke counts as closed.
const closedThreshold = 0.05

// Stats summarises a drawing's geometry for display.
type Stats struct {
	Strokes       int
	Points        int
	Segments      int
	TotalLength   float32
	ClosedStrokes int
}

// ComputeStats walks every stroke of d. Non-finite points are counted but contribute no length.
func ComputeStats(d *Drawing) Stats {
	var st Stats
	st.Strokes = len(d.Strokes)
	for _, s := range d.Strokes {
		n := len(s.Positions)
		st.Points += n
		if n < 2 {
			continue
		}
		st.Segments += n - 1
		for i := 1; i < n; i++ {
			l := s.Positions[i].Sub(s.Positions[i-1]).Length()
			if !math32.IsNaN(l) && !math32.IsInf(l, 0) {
				st.TotalLength += l
			}
		}
		if s.Positions[n-1].Sub(s.Positions[0]).Length() < closedThreshold {
			st.ClosedStrokes++
		}
	}
	return st
}
