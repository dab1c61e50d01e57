// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package pose provides the [Pose] of an interactive frame and the
// [Rotation] and [Translation] increments that momentum engines apply
// to it.
package pose

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Pose contains the full description of position and orientation,
// relative to the parent frame.
type Pose struct {

	// Pos is the position of the center of the frame.
	Pos math32.Vector3

	// Scale is the scale of the frame.
	Scale math32.Vector3

	// Quat is the rotation of the frame.
	Quat math32.Quat
}

// Defaults sets defaults only if current values are unset.
func (ps *Pose) Defaults() {
	if ps.Scale == (math32.Vector3{}) {
		ps.Scale = math32.Vec3(1, 1, 1)
	}
	if ps.Quat == (math32.Quat{}) {
		ps.Quat.SetIdentity()
	}
}

// Reset sets the pose back to the origin, with no rotation and unit scale.
func (ps *Pose) Reset() {
	*ps = Pose{}
	ps.Defaults()
}

// CopyFrom copies the pose from the other pose.
func (ps *Pose) CopyFrom(op *Pose) {
	ps.Pos = op.Pos
	ps.Scale = op.Scale
	ps.Quat = op.Quat
}

// Rotate rotates the frame in place by the given rotation, expressed in
// the parent coordinates.
func (ps *Pose) Rotate(r Rotation) {
	if r.IsZero() {
		return
	}
	q := r.Quat()
	q.SetMul(ps.Quat)
	ps.Quat = q
}

// RotateAround rotates the frame by the given rotation around the given
// center point, moving its position as well as its orientation.
func (ps *Pose) RotateAround(r Rotation, center math32.Vector3) {
	if r.IsZero() {
		return
	}
	ps.Pos = ps.Pos.Sub(center).MulQuat(r.Quat()).Add(center)
	ps.Rotate(r)
}

// Translate moves the frame by the given translation, expressed in the
// parent coordinates.
func (ps *Pose) Translate(t Translation) {
	ps.Pos = ps.Pos.Add(t.Delta)
}

// MoveOnAxis moves the specified distance on the specified local axis,
// relative to the current orientation.
func (ps *Pose) MoveOnAxis(x, y, z, dist float32) {
	ps.Pos = ps.Pos.Add(math32.Vec3(x, y, z).Normal().MulQuat(ps.Quat).MulScalar(dist))
}

// ScaleBy multiplies the scale uniformly by the given factor.
// Non-positive factors are ignored.
func (ps *Pose) ScaleBy(f float32) {
	if f <= 0 {
		return
	}
	ps.Scale = ps.Scale.MulScalar(f)
}

// LookAt points the frame at the given target location using the given
// up direction.
func (ps *Pose) LookAt(target, upDir math32.Vector3) {
	ps.Quat.SetFromRotationMatrix(math32.NewLookAt(ps.Pos, target, upDir))
}

// Align resets the rotation, aligning the frame axes with its parent.
func (ps *Pose) Align() {
	ps.Quat.SetIdentity()
}

func (ps Pose) String() string {
	return fmt.Sprintf("pos: (%.4g, %.4g, %.4g) quat: (%.4g, %.4g, %.4g, %.4g) scale: (%.4g, %.4g, %.4g)",
		ps.Pos.X, ps.Pos.Y, ps.Pos.Z, ps.Quat.X, ps.Quat.Y, ps.Quat.Z, ps.Quat.W, ps.Scale.X, ps.Scale.Y, ps.Scale.Z)
}
