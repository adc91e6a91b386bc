package viewport

import (
	"errors"
	"testing"

	"github.com/chewxy/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"strokeview/internal/camera"
	"strokeview/internal/control"
	"strokeview/internal/drawing"
	"strokeview/internal/geom"
)

func scenarioDrawing() *drawing.Drawing {
	return &drawing.Drawing{
		DrawingID: "scenario",
		Strokes: drawing.Strokes{
			{Positions: []drawing.Point{geom.V3(0, 0, 0), geom.V3(1, 0, 0)}, Width: 0.01, Color: drawing.Color{R: 1}},
			{Positions: []drawing.Point{geom.V3(5, 5, 5)}, Color: drawing.Color{B: 1}},
		},
	}
}

func TestLoadDrawingScenario(t *testing.T) {
	s := New(Config{})
	require.NoError(t, s.LoadDrawing(scenarioDrawing()))

	assert.Equal(t, geom.V3(0, 0, 0), s.Bounds().Min)
	assert.Equal(t, geom.V3(5, 5, 5), s.Bounds().Max)
	assert.Equal(t, []int{1, 0}, s.SegmentCounts())
	assert.Len(t, s.Segments(), 1)

	v := s.View()
	assert.Equal(t, geom.V3(2.5, 2.5, 2.5), v.Origin)
	assert.Equal(t, geom.Zero, v.GroupPosition)
	assert.Equal(t, geom.Zero, v.Camera.Target)
	assert.InDelta(t, 10, v.Camera.Distance(), 1e-5)
	assert.Equal(t, v.Camera, s.HomePose())
	assert.Equal(t, 2, s.Stats().Strokes)
}

func TestLoadDrawingOwnsCopy(t *testing.T) {
	s := New(Config{})
	d := scenarioDrawing()
	require.NoError(t, s.LoadDrawing(d))
	d.Strokes[0].Positions[0].X = 100
	assert.Equal(t, float32(0), s.Drawing().Strokes[0].Positions[0].X)
}

func TestLoadDrawingFailureKeepsPrevious(t *testing.T) {
	s := New(Config{})
	require.NoError(t, s.LoadDrawing(scenarioDrawing()))
	before := s.View()

	err := s.LoadDrawing(&drawing.Drawing{DrawingID: "empty", Strokes: drawing.Strokes{{}}})
	var empty *geom.EmptyDrawingError
	require.True(t, errors.As(err, &empty))

	bad := &drawing.Drawing{DrawingID: "bad", Strokes: drawing.Strokes{
		{Positions: []drawing.Point{geom.V3(0, math32.Inf(-1), 0), geom.V3(1, 1, 1)}},
	}}
	err = s.LoadDrawing(bad)
	var malformed *geom.MalformedPointError
	require.True(t, errors.As(err, &malformed))

	assert.ErrorIs(t, s.LoadDrawing(nil), ErrNoDrawing)
	assert.Equal(t, "scenario", s.Drawing().DrawingID)
	assert.Equal(t, before, s.View())
}

func TestLoadDrawingRejectsOverflowingSpan(t *testing.T) {
	s := New(Config{})
	require.NoError(t, s.LoadDrawing(scenarioDrawing()))
	before := s.View()

	err := s.LoadDrawing(&drawing.Drawing{DrawingID: "huge", Strokes: drawing.Strokes{
		{Positions: []drawing.Point{geom.V3(-3e38, 0, 0), geom.V3(3e38, 0, 0)}},
	}})
	var overflow *geom.BoundsOverflowError
	require.True(t, errors.As(err, &overflow), "got %v", err)

	err = s.LoadDrawing(&drawing.Drawing{DrawingID: "wide", Strokes: drawing.Strokes{
		{Positions: []drawing.Point{geom.V3(-1.5e38, 0, 0), geom.V3(1.5e38, 0, 0)}},
	}})
	require.True(t, errors.As(err, &overflow), "got %v", err)

	v := s.View()
	assert.Equal(t, before, v)
	assert.True(t, v.Origin.IsFinite())
	assert.True(t, v.Camera.Position.IsFinite())
	assert.Equal(t, "scenario", s.Drawing().DrawingID)
}

func TestLoadReplacesWholeDrawing(t *testing.T) {
	s := New(Config{})
	require.NoError(t, s.LoadDrawing(scenarioDrawing()))
	next := &drawing.Drawing{DrawingID: "line", Strokes: drawing.Strokes{
		{Positions: []drawing.Point{geom.V3(-1, 0, 0), geom.V3(0, 0, 0), geom.V3(1, 0, 0)}},
	}}
	require.NoError(t, s.LoadDrawing(next))
	assert.Len(t, s.Segments(), 2)
	assert.Equal(t, []int{2}, s.SegmentCounts())
	assert.InDelta(t, 4, s.View().Camera.Distance(), 1e-5)
}

func TestResetViewIdempotent(t *testing.T) {
	s := New(Config{})
	require.NoError(t, s.LoadDrawing(scenarioDrawing()))
	c := control.New(control.DefaultSpeeds())

	s.HandleEvent(c, control.Event{Kind: control.Press, Button: control.ButtonLeft})
	s.HandleEvent(c, control.Event{Kind: control.Move, X: 40, Y: 30})
	s.HandleEvent(c, control.Event{Kind: control.Release, Button: control.ButtonLeft})
	s.HandleEvent(c, control.Event{Kind: control.Press, Button: control.ButtonRight})
	s.HandleEvent(c, control.Event{Kind: control.Move, X: 10, Y: 10})
	s.HandleEvent(c, control.Event{Kind: control.Wheel, DeltaY: 250})
	assert.NotEqual(t, s.HomePose(), s.View().Camera)

	s.ResetView()
	once := s.View()
	s.ResetView()
	assert.Equal(t, once, s.View())
	assert.Equal(t, s.HomePose(), once.Camera)
	assert.Equal(t, float32(0), once.Yaw)
	assert.Equal(t, float32(0), once.Pitch)
}

func TestOrbitRotatesGroup(t *testing.T) {
	s := New(Config{})
	c := control.New(control.DefaultSpeeds())
	s.HandleEvent(c, control.Event{Kind: control.Press, Button: control.ButtonLeft, X: 0, Y: 0})
	assert.Equal(t, control.ButtonLeft, s.Gesture())
	s.HandleEvent(c, control.Event{Kind: control.Move, X: 100, Y: 0})
	assert.InDelta(t, 0.5, s.View().Yaw, 1e-6)
	assert.Equal(t, float32(0), s.View().Pitch)
	s.HandleEvent(c, control.Event{Kind: control.Release, Button: control.ButtonLeft})
	assert.Equal(t, control.ButtonNone, s.Gesture())
}

func TestPanMovesCameraAndTarget(t *testing.T) {
	s := New(Config{})
	start := s.View().Camera
	s.Apply(control.PanBy{DX: -1, DY: 2})
	cam := s.View().Camera
	assert.Equal(t, start.Position.Add(geom.V3(-1, 2, 0)), cam.Position)
	assert.Equal(t, start.Target.Add(geom.V3(-1, 2, 0)), cam.Target)
}

func TestZoomFloor(t *testing.T) {
	s := New(Config{MinDistance: 0.25})
	c := control.New(control.DefaultSpeeds())
	for i := 0; i < 200; i++ {
		s.HandleEvent(c, control.Event{Kind: control.Wheel, DeltaY: -500})
		require.GreaterOrEqual(t, s.View().Camera.Distance(), float32(0.25)-1e-6)
	}
	// a delta large enough to flip the scale negative still stops at the floor
	s.HandleEvent(c, control.Event{Kind: control.Wheel, DeltaY: -1e6})
	assert.InDelta(t, 0.25, s.View().Camera.Distance(), 1e-5)
	assert.Greater(t, s.View().Camera.Position.Z, s.View().Camera.Target.Z)
}

func TestZoomOutScalesDistance(t *testing.T) {
	s := New(Config{})
	before := s.View().Camera.Distance()
	s.Apply(control.ZoomBy{Scale: 1.5})
	assert.InDelta(t, before*1.5, s.View().Camera.Distance(), 1e-5)
}

func TestOnResize(t *testing.T) {
	s := New(Config{Width: 800, Height: 600})
	assert.InDelta(t, 800.0/600.0, s.View().Aspect(), 1e-6)
	cam := s.View().Camera
	s.OnResize(1920, 1080)
	assert.Equal(t, 1920, s.View().Width)
	assert.Equal(t, cam, s.View().Camera)
	s.OnResize(0, 0)
	assert.Equal(t, 1080, s.View().Height)
}

func TestNewUsesDefaultPose(t *testing.T) {
	s := New(Config{})
	assert.Equal(t, camera.DefaultPose(), s.View().Camera)
	assert.Equal(t, float32(camera.DefaultMinDistance), s.MinDistance())
	assert.Nil(t, s.Drawing())
}
