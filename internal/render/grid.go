package render

import rl "github.com/gen2brain/raylib-go/raylib"

const (
	gridExtent     = 10
	gridMajorEvery = 5
	gridMinorAlpha = 60
	gridMajorAlpha = 130
	axisLineAlpha  = 220
)

// gridStep picks a power-of-ten spacing so roughly ten minor cells span the framed distance.
func gridStep(distance float32) float32 {
	step := float32(1)
	for step*gridExtent > distance*2 && step > 1e-3 {
		step /= 10
	}
	for step*gridExtent < distance/2 {
		step *= 10
	}
	return step
}

// drawGrid draws a floor grid on the render-space XZ plane at height y, with X and Z axis lines
// through the grid origin. Vectors are reused to avoid per-frame allocations.
func drawGrid(y, step float32) {
	minor := rl.NewColor(150, 150, 150, gridMinorAlpha)
	major := rl.NewColor(120, 120, 120, gridMajorAlpha)
	axisX := rl.NewColor(220, 80, 80, axisLineAlpha)
	axisZ := rl.NewColor(80, 80, 220, axisLineAlpha)

	ext := float32(gridExtent) * step
	var start, end rl.Vector3
	for i := -gridExtent; i <= gridExtent; i++ {
		c := minor
		if i%gridMajorEvery == 0 {
			c = major
		}
		o := float32(i) * step
		start.X, start.Y, start.Z = o, y, -ext
		end.X, end.Y, end.Z = o, y, ext
		rl.DrawLine3D(start, end, c)
		start.X, start.Y, start.Z = -ext, y, o
		end.X, end.Y, end.Z = ext, y, o
		rl.DrawLine3D(start, end, c)
	}
	start.X, start.Y, start.Z = -ext, y, 0
	end.X, end.Y, end.Z = ext, y, 0
	rl.DrawLine3D(start, end, axisX)
	start.X, start.Y, start.Z = 0, y, -ext
	end.X, end.Y, end.Z = 0, y, ext
	rl.DrawLine3D(start, end, axisZ)
}
