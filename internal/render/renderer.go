// Package render draws a viewport.Scene with raylib and turns raylib input into controller
// events.
package render

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"strokeview/internal/config"
	"strokeview/internal/geom"
	"strokeview/internal/viewport"
)

// Renderer draws the background, grid and stroke tubes of a scene each frame.
type Renderer struct {
	Camera      rl.Camera3D
	GridVisible bool
	background  rl.Color
	tubes       *Tubes
}

// New returns a renderer with a perspective camera using the configured field of view.
func New(cfg config.Config) *Renderer {
	r := &Renderer{
		GridVisible: cfg.GridVisible,
		background:  rl.NewColor(cfg.Background[0], cfg.Background[1], cfg.Background[2], 255),
		tubes:       NewTubes(),
	}
	r.Camera.Fovy = cfg.FOV
	r.Camera.Projection = rl.CameraPerspective
	r.Camera.Up = rl.NewVector3(0, 1, 0)
	return r
}

// SetGridVisible sets whether the floor grid is drawn.
func (r *Renderer) SetGridVisible(visible bool) {
	r.GridVisible = visible
}

// Background returns the clear color.
func (r *Renderer) Background() rl.Color {
	return r.background
}

// GroupMatrix returns the drawing group transform: yaw, then pitch, then the group position.
func GroupMatrix(v viewport.ViewState) rl.Matrix {
	m := rl.MatrixMultiply(rl.MatrixRotateY(v.Yaw), rl.MatrixRotateX(v.Pitch))
	return rl.MatrixMultiply(m, rl.MatrixTranslate(v.GroupPosition.X, v.GroupPosition.Y, v.GroupPosition.Z))
}

// Draw renders the scene. Call after ClearBackground and before any 2D overlay.
func (r *Renderer) Draw(s *viewport.Scene) {
	v := s.View()
	r.Camera.Position = toVector3(v.Camera.Position)
	r.Camera.Target = toVector3(v.Camera.Target)
	r.Camera.Up = toVector3(v.Camera.Up)

	pos := v.Camera.Position
	r.tubes.SetView([3]float32{pos.X, pos.Y, pos.Z}, [3]float32{0.5, 1, 0.5})

	rl.BeginMode3D(r.Camera)
	if r.GridVisible {
		b := s.Bounds()
		floor := geom.ToRenderSpace(b.Min, v.Origin).Y + v.GroupPosition.Y
		if s.Drawing() == nil {
			floor = 0
		}
		drawGrid(floor, gridStep(s.HomePose().Distance()))
	}
	r.tubes.Draw(s.Segments(), GroupMatrix(v))
	rl.EndMode3D()
}

// Unload frees GPU resources.
func (r *Renderer) Unload() {
	r.tubes.Unload()
}
