package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"strokeview/internal/control"
)

// wheelPixels converts one raylib wheel notch into the pixel-style delta the controller's zoom
// speed is tuned for. raylib reports wheel-up as positive; browsers report scroll-up as negative.
const wheelPixels = -100

var mouseButtons = []struct {
	rl  rl.MouseButton
	btn control.Button
}{
	{rl.MouseButtonLeft, control.ButtonLeft},
	{rl.MouseButtonRight, control.ButtonRight},
}

// PollInput reads this frame's mouse state and returns it as controller events, in the order a
// browser would deliver them: presses, movement, releases, then the wheel. Right presses also
// emit a ContextMenu event, which the controller swallows.
func PollInput() []control.Event {
	var evs []control.Event
	pos := rl.GetMousePosition()
	for _, b := range mouseButtons {
		if rl.IsMouseButtonPressed(b.rl) {
			evs = append(evs, control.Event{Kind: control.Press, Button: b.btn, X: pos.X, Y: pos.Y})
			if b.btn == control.ButtonRight {
				evs = append(evs, control.Event{Kind: control.ContextMenu, X: pos.X, Y: pos.Y})
			}
		}
	}
	if d := rl.GetMouseDelta(); d.X != 0 || d.Y != 0 {
		evs = append(evs, control.Event{Kind: control.Move, X: pos.X, Y: pos.Y})
	}
	for _, b := range mouseButtons {
		if rl.IsMouseButtonReleased(b.rl) {
			evs = append(evs, control.Event{Kind: control.Release, Button: b.btn, X: pos.X, Y: pos.Y})
		}
	}
	if w := rl.GetMouseWheelMove(); w != 0 {
		evs = append(evs, control.Event{Kind: control.Wheel, DeltaY: w * wheelPixels})
	}
	return evs
}
