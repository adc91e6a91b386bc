// Package viewport holds the engine-independent state of the 3D view: the loaded drawing, its
// tube segments, the camera and the drawing group's transform. A renderer reads it every frame;
// input reaches it as control intents.
package viewport

import (
	"errors"
	"fmt"

	"github.com/chewxy/math32"

	"strokeview/internal/camera"
	"strokeview/internal/control"
	"strokeview/internal/drawing"
	"strokeview/internal/geom"
	"strokeview/internal/mesh"
)

// ErrNoDrawing is returned by LoadDrawing when given nil.
var ErrNoDrawing = errors.New("no drawing")

// ViewState is everything that decides what the viewer shows for the loaded drawing.
type ViewState struct {
	Camera camera.Pose
	// Drawing group rotation in radians, yaw about +Y applied before pitch about +X.
	Yaw   float32
	Pitch float32
	// GroupPosition is where the recentered drawing sits in render space.
	GroupPosition geom.Vec3
	// Origin is the capture-space point mapped to GroupPosition.
	Origin geom.Vec3
	Width  int
	Height int
}

// Aspect returns Width/Height, or 1 before the first resize.
func (v ViewState) Aspect() float32 {
	if v.Width <= 0 || v.Height <= 0 {
		return 1
	}
	return float32(v.Width) / float32(v.Height)
}

// Config holds the scene's tunables.
type Config struct {
	MinDistance float32
	Width       int
	Height      int
}

// Scene owns the loaded drawing and the view onto it. It is not safe for concurrent use; the
// render loop owns it.
type Scene struct {
	minDistance float32

	drawing  *drawing.Drawing
	bounds   geom.BoundingBox
	segments []mesh.Segment
	counts   []int
	stats    drawing.Stats

	view    ViewState
	home    camera.Pose
	gesture control.Button
}

// New returns a scene with no drawing and the camera at camera.DefaultPose.
func New(cfg Config) *Scene {
	if cfg.MinDistance <= 0 {
		cfg.MinDistance = camera.DefaultMinDistance
	}
	s := &Scene{
		minDistance: cfg.MinDistance,
		home:        camera.DefaultPose(),
		gesture:     control.ButtonNone,
	}
	s.view.Camera = s.home
	s.view.Width, s.view.Height = cfg.Width, cfg.Height
	return s
}

// LoadDrawing replaces the displayed drawing with d. The drawing is recentered so its bounds
// center sits at the render-space origin, the camera is framed on it, and that framing becomes
// the pose ResetView returns to. On error nothing changes and the previous drawing stays up.
func (s *Scene) LoadDrawing(d *drawing.Drawing) error {
	if d == nil {
		return ErrNoDrawing
	}
	bounds, err := d.Bounds()
	if err != nil {
		return fmt.Errorf("load drawing %q: %w", d.DrawingID, err)
	}
	owned, err := d.Clone()
	if err != nil {
		return fmt.Errorf("load drawing %q: %w", d.DrawingID, err)
	}

	pose, center := camera.Frame(bounds, s.minDistance)
	if !pose.Position.IsFinite() {
		// the span fits a float32 but twice it does not
		return fmt.Errorf("load drawing %q: %w", d.DrawingID, &geom.BoundsOverflowError{Min: bounds.Min, Max: bounds.Max})
	}
	segs, counts := mesh.BuildDrawing(owned.Strokes, center)

	s.drawing = owned
	s.bounds = bounds
	s.segments = segs
	s.counts = counts
	s.stats = drawing.ComputeStats(owned)
	s.home = pose
	s.view.Origin = center
	s.view.GroupPosition = geom.ToRenderSpace(center, center)
	s.ResetView()
	return nil
}

// ResetView puts the camera back on the pose framed at the last load and clears the drawing
// group's rotation.
func (s *Scene) ResetView() {
	s.view.Camera = s.home
	s.view.Yaw = 0
	s.view.Pitch = 0
}

// OnResize records the new viewport size. Non-positive sizes (a minimized window) are ignored.
func (s *Scene) OnResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	s.view.Width, s.view.Height = width, height
}

// Apply changes the view according to one controller intent.
func (s *Scene) Apply(in control.Intent) {
	switch in := in.(type) {
	case control.DragStart:
		s.gesture = in.Button
	case control.DragEnd:
		s.gesture = control.ButtonNone
	case control.RotateBy:
		s.view.Yaw += in.Yaw
		s.view.Pitch += in.Pitch
	case control.PanBy:
		d := geom.V3(in.DX, in.DY, 0)
		s.view.Camera.Position = s.view.Camera.Position.Add(d)
		s.view.Camera.Target = s.view.Camera.Target.Add(d)
	case control.ZoomBy:
		s.zoom(in.Scale)
	}
}

func (s *Scene) zoom(scale float32) {
	if math32.IsNaN(scale) || math32.IsInf(scale, 0) {
		return
	}
	cam := &s.view.Camera
	offset := cam.Position.Sub(cam.Target)
	dist := offset.Length()
	if dist == 0 {
		offset, dist = geom.UnitZ, 1
	}
	next := math32.Max(dist*scale, s.minDistance)
	cam.Position = cam.Target.Add(offset.Scale(next / dist))
}

// View returns the current view state.
func (s *Scene) View() ViewState {
	return s.view
}

// HomePose returns the pose ResetView restores.
func (s *Scene) HomePose() camera.Pose {
	return s.home
}

// Gesture returns the button of the drag in progress, or control.ButtonNone.
func (s *Scene) Gesture() control.Button {
	return s.gesture
}

// Drawing returns the loaded drawing, or nil.
func (s *Scene) Drawing() *drawing.Drawing {
	return s.drawing
}

// Bounds returns the capture-space bounds of the loaded drawing.
func (s *Scene) Bounds() geom.BoundingBox {
	return s.bounds
}

// Segments returns the tube segments of the loaded drawing, relative to the drawing group.
func (s *Scene) Segments() []mesh.Segment {
	return s.segments
}

// SegmentCounts returns how many segments each stroke produced.
func (s *Scene) SegmentCounts() []int {
	return s.counts
}

// Stats returns statistics of the loaded drawing.
func (s *Scene) Stats() drawing.Stats {
	return s.stats
}

// MinDistance returns the zoom floor.
func (s *Scene) MinDistance() float32 {
	return s.minDistance
}

// HandleEvent runs ev through c and applies the resulting intents. It reports whether the event
// was consumed.
func (s *Scene) HandleEvent(c *control.Controller, ev control.Event) bool {
	intents, consumed := c.Handle(ev)
	for _, in := range intents {
		s.Apply(in)
	}
	return consumed
}
