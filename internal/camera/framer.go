// Package camera derives camera poses from drawing bounds.
package camera

import (
	"github.com/chewxy/math32"

	"strokeview/internal/geom"
)

// DistanceFactor multiplies the largest bounds extent to get the framing distance.
const DistanceFactor = 2

// DefaultMinDistance is the closest the camera may sit to its target.
const DefaultMinDistance = 0.1

// Pose is a camera placement in render space.
type Pose struct {
	Position geom.Vec3
	Target   geom.Vec3
	Up       geom.Vec3
}

// Distance returns the distance from Position to Target.
func (p Pose) Distance() float32 {
	return p.Position.Sub(p.Target).Length()
}

// DefaultPose is used before any drawing is loaded.
func DefaultPose() Pose {
	return Pose{Position: geom.V3(0, 0, 5), Target: geom.Zero, Up: geom.UnitY}
}

// Frame returns the pose that shows all of b, together with the capture-space center the
// drawing is recentered on. The drawing's center maps to the render-space origin and the
// camera looks at it along -Z from DistanceFactor times the largest extent, never closer than
// minDistance.
//
// The distance is not derived from the field of view, so long thin drawings can still clip at
// narrow aspect ratios.
func Frame(b geom.BoundingBox, minDistance float32) (Pose, geom.Vec3) {
	if minDistance <= 0 {
		minDistance = DefaultMinDistance
	}
	center := b.Center()
	target := geom.ToRenderSpace(center, center)
	distance := math32.Max(b.MaxExtent()*DistanceFactor, minDistance)
	return Pose{
		Position: target.Add(geom.V3(0, 0, distance)),
		Target:   target,
		Up:       geom.UnitY,
	}, center
}
