package graphics

import rl "github.com/gen2brain/raylib-go/raylib"

// Window describes the window Run opens.
type Window struct {
	Title      string
	Width      int
	Height     int
	Background func() rl.Color
	// Close, if set, runs after the last frame while the GL context is still alive.
	Close func()
}

// Run opens a resizable window and runs the frame loop until the window is closed. Each frame
// it calls update (input, finished fetches), then clears the screen and calls draw. There is no
// pause state: one update and one draw per display refresh.
func Run(w Window, update, draw func()) {
	rl.SetConfigFlags(rl.FlagWindowResizable | rl.FlagMsaa4xHint | rl.FlagVsyncHint)
	rl.InitWindow(int32(w.Width), int32(w.Height), w.Title)
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyNull) // close via the window button
	rl.SetTargetFPS(60)

	bg := rl.Black
	for !rl.WindowShouldClose() {
		update()

		if w.Background != nil {
			bg = w.Background()
		}
		rl.BeginDrawing()
		rl.ClearBackground(bg)
		draw()
		rl.EndDrawing()
	}
	if w.Close != nil {
		w.Close()
	}
}

// SetTitle changes the window title.
func SetTitle(title string) {
	rl.SetWindowTitle(title)
}
