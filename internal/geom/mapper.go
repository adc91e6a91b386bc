package geom

import "github.com/chewxy/math32"

// ToRenderSpace converts a capture-space point into render space, recentered on origin.
//
// The capture client is Z-up; the viewer is Y-up with Z toward the viewer. The axis swap and
// sign flip below must match the capture client exactly or drawings appear mirrored.
func ToRenderSpace(p, origin Vec3) Vec3 {
	return Vec3{
		X: p.X - origin.X,
		Y: p.Z - origin.Z,
		Z: -(p.Y - origin.Y),
	}
}

// ToCaptureSpace is the inverse of ToRenderSpace.
func ToCaptureSpace(r, origin Vec3) Vec3 {
	return Vec3{
		X: r.X + origin.X,
		Y: -r.Z + origin.Y,
		Z: r.Y + origin.Z,
	}
}

// RotateEuler rotates v by yaw about +Y and then by pitch about +X, the order used for the
// drawing group.
func RotateEuler(v Vec3, pitch, yaw float32) Vec3 {
	sy, cy := math32.Sin(yaw), math32.Cos(yaw)
	v = Vec3{v.X*cy + v.Z*sy, v.Y, -v.X*sy + v.Z*cy}
	sp, cp := math32.Sin(pitch), math32.Cos(pitch)
	return Vec3{v.X, v.Y*cp - v.Z*sp, v.Y*sp + v.Z*cp}
}
