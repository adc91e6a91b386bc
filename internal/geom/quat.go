package geom

import "github.com/chewxy/math32"

// Quat is a rotation quaternion (X, Y, Z vector part, W scalar part).
type Quat struct {
	X, Y, Z, W float32
}

// IdentityQuat is the rotation that leaves every vector unchanged.
var IdentityQuat = Quat{W: 1}

// QuatAxisAngle returns the rotation of angle radians about the unit vector axis.
func QuatAxisAngle(axis Vec3, angle float32) Quat {
	s := math32.Sin(angle / 2)
	return Quat{axis.X * s, axis.Y * s, axis.Z * s, math32.Cos(angle / 2)}
}

// QuatBetween returns the shortest rotation taking unit vector from onto unit vector to.
// Antiparallel inputs rotate half a turn about an axis perpendicular to from.
func QuatBetween(from, to Vec3) Quat {
	d := from.Dot(to)
	if d >= 1-1e-6 {
		return IdentityQuat
	}
	if d <= -1+1e-6 {
		axis := UnitX.Cross(from)
		if axis.Length() < 1e-6 {
			axis = UnitY.Cross(from)
		}
		return QuatAxisAngle(axis.Normal(), math32.Pi)
	}
	c := from.Cross(to)
	q := Quat{c.X, c.Y, c.Z, 1 + d}
	return q.Normal()
}

// Normal returns q scaled to unit length.
func (q Quat) Normal() Quat {
	l := math32.Sqrt(q.X*q.X + q.Y*q.Y + q.Z*q.Z + q.W*q.W)
	if l == 0 {
		return IdentityQuat
	}
	return Quat{q.X / l, q.Y / l, q.Z / l, q.W / l}
}

// Rotate applies q to v.
func (q Quat) Rotate(v Vec3) Vec3 {
	u := Vec3{q.X, q.Y, q.Z}
	t := u.Cross(v).Scale(2)
	return v.Add(t.Scale(q.W)).Add(u.Cross(t))
}

// AxisAngle returns the rotation axis and angle in radians. The identity yields (+Y, 0).
func (q Quat) AxisAngle() (Vec3, float32) {
	q = q.Normal()
	angle := 2 * math32.Acos(math32.Max(-1, math32.Min(1, q.W)))
	s := math32.Sqrt(1 - q.W*q.W)
	if s < 1e-6 {
		return UnitY, 0
	}
	return Vec3{q.X / s, q.Y / s, q.Z / s}, angle
}
