// Package control turns raw pointer and wheel events into view intents. It knows nothing
// about the scene; callers apply the returned intents.
package control

import "github.com/chewxy/math32"

// Default speeds, per pixel of pointer movement or wheel delta.
const (
	DefaultRotationSpeed = 0.005
	DefaultMovementSpeed = 0.01
	DefaultZoomSpeed     = 0.001
)

// Button identifies a mouse button using the browser numbering (0 left, 2 right).
type Button int

const (
	ButtonNone  Button = -1
	ButtonLeft  Button = 0
	ButtonRight Button = 2
)

// State is the drag state of the controller.
type State int

const (
	Idle State = iota
	Orbiting
	Panning
)

func (s State) String() string {
	switch s {
	case Orbiting:
		return "orbiting"
	case Panning:
		return "panning"
	default:
		return "idle"
	}
}

// EventKind selects which fields of an Event are meaningful.
type EventKind int

const (
	Press EventKind = iota
	Release
	Move
	Wheel
	ContextMenu
)

// Event is one pointer, wheel or context-menu event in window pixel coordinates.
type Event struct {
	Kind   EventKind
	Button Button
	X, Y   float32
	DeltaY float32 // wheel only; positive scrolls away from the user (zoom out)
}

// Speeds scales pointer and wheel deltas into intents.
type Speeds struct {
	Rotation float32
	Movement float32
	Zoom     float32
}

// DefaultSpeeds returns the stock speeds.
func DefaultSpeeds() Speeds {
	return Speeds{Rotation: DefaultRotationSpeed, Movement: DefaultMovementSpeed, Zoom: DefaultZoomSpeed}
}

// DragState is the button held for the current gesture and where the pointer was last seen.
type DragState struct {
	Button Button
	LastX  float32
	LastY  float32
}

// Controller is the orbit/pan/zoom state machine. Left drag orbits the drawing, right drag pans
// the camera, and the wheel zooms at any time.
type Controller struct {
	speeds Speeds
	drag   DragState
}

// New returns an idle controller.
func New(speeds Speeds) *Controller {
	return &Controller{speeds: speeds, drag: DragState{Button: ButtonNone}}
}

// State reports the current gesture.
func (c *Controller) State() State {
	switch c.drag.Button {
	case ButtonLeft:
		return Orbiting
	case ButtonRight:
		return Panning
	default:
		return Idle
	}
}

// Drag returns the current drag state.
func (c *Controller) Drag() DragState {
	return c.drag
}

// Handle feeds one event through the state machine. It returns the intents to apply, in
// order, and whether the event was consumed (context menus always are so right-drag can pan).
// Malformed events are ignored.
func (c *Controller) Handle(ev Event) (intents []Intent, consumed bool) {
	switch ev.Kind {
	case Press:
		if !finite(ev.X, ev.Y) || (ev.Button != ButtonLeft && ev.Button != ButtonRight) {
			return nil, false
		}
		c.drag = DragState{Button: ev.Button, LastX: ev.X, LastY: ev.Y}
		return []Intent{DragStart{Button: ev.Button, X: ev.X, Y: ev.Y}}, true
	case Release:
		// Any release ends whatever gesture is active, even if another button is still held.
		if c.drag.Button == ButtonNone {
			return nil, false
		}
		c.drag.Button = ButtonNone
		return []Intent{DragEnd{}}, true
	case Move:
		if !finite(ev.X, ev.Y) || c.drag.Button == ButtonNone {
			return nil, false
		}
		dx, dy := ev.X-c.drag.LastX, ev.Y-c.drag.LastY
		c.drag.LastX, c.drag.LastY = ev.X, ev.Y
		if dx == 0 && dy == 0 {
			return nil, true
		}
		if c.drag.Button == ButtonLeft {
			return []Intent{RotateBy{Yaw: dx * c.speeds.Rotation, Pitch: dy * c.speeds.Rotation}}, true
		}
		return []Intent{PanBy{DX: -dx * c.speeds.Movement, DY: dy * c.speeds.Movement}}, true
	case Wheel:
		if !finite(ev.DeltaY) || ev.DeltaY == 0 {
			return nil, false
		}
		return []Intent{ZoomBy{Scale: 1 + ev.DeltaY*c.speeds.Zoom}}, true
	case ContextMenu:
		return nil, true
	}
	return nil, false
}

func finite(vs ...float32) bool {
	for _, v := range vs {
		if math32.IsNaN(v) || math32.IsInf(v, 0) {
			return false
		}
	}
	return true
}
