// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pose

import (
	"cogentcore.org/core/math32"
)

// Rotation is a rotation by Angle radians around Axis, the increment
// of spinning.
type Rotation struct {
	Axis  math32.Vector3
	Angle float32
}

// NewRotation returns a rotation by angle radians around the given axis.
func NewRotation(axis math32.Vector3, angle float32) Rotation {
	return Rotation{Axis: axis, Angle: angle}
}

// IsZero returns whether the rotation does nothing.
func (r Rotation) IsZero() bool {
	return r.Angle == 0 || r.Axis == (math32.Vector3{})
}

// Scaled returns the rotation around the same axis by f times the angle.
func (r Rotation) Scaled(f float32) Rotation {
	return Rotation{Axis: r.Axis, Angle: r.Angle * f}
}

// Quat returns the rotation as a unit quaternion.
func (r Rotation) Quat() math32.Quat {
	if r.IsZero() {
		var q math32.Quat
		q.SetIdentity()
		return q
	}
	return math32.NewQuatAxisAngle(r.Axis.Normal(), r.Angle)
}

// Translation is a displacement, the increment of tossing.
type Translation struct {
	Delta math32.Vector3
}

// NewTranslation returns a translation by the given displacement.
func NewTranslation(x, y, z float32) Translation {
	return Translation{Delta: math32.Vec3(x, y, z)}
}

// Scaled returns the translation along the same direction, f times as long.
func (t Translation) Scaled(f float32) Translation {
	return Translation{Delta: t.Delta.MulScalar(f)}
}
