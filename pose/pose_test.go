// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pose

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const tol = 1e-5

func assertVec(t *testing.T, want, got math32.Vector3) {
	t.Helper()
	assert.InDelta(t, want.X, got.X, tol)
	assert.InDelta(t, want.Y, got.Y, tol)
	assert.InDelta(t, want.Z, got.Z, tol)
}

func TestDefaults(t *testing.T) {
	var ps Pose
	ps.Defaults()
	assert.Equal(t, math32.Vec3(1, 1, 1), ps.Scale)
	assert.Equal(t, float32(1), ps.Quat.W)

	ps.Scale = math32.Vec3(2, 2, 2)
	ps.Defaults()
	assert.Equal(t, math32.Vec3(2, 2, 2), ps.Scale)
}

func TestRotate(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.Rotate(NewRotation(math32.Vec3(0, 0, 1), math32.Pi/2))
	assertVec(t, math32.Vec3(0, 1, 0), math32.Vec3(1, 0, 0).MulQuat(ps.Quat))

	// the axis need not be normalized
	ps.Rotate(NewRotation(math32.Vec3(0, 0, 5), math32.Pi/2))
	assertVec(t, math32.Vec3(-1, 0, 0), math32.Vec3(1, 0, 0).MulQuat(ps.Quat))

	before := ps.Quat
	ps.Rotate(Rotation{})
	assert.Equal(t, before, ps.Quat)
}

func TestRotateAround(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.Pos = math32.Vec3(2, 0, 0)
	ps.RotateAround(NewRotation(math32.Vec3(0, 0, 1), math32.Pi), math32.Vec3(1, 0, 0))
	assertVec(t, math32.Vec3(0, 0, 0), ps.Pos)
}

func TestTranslateScale(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.Translate(NewTranslation(1, 2, 3))
	ps.Translate(NewTranslation(1, 0, 0).Scaled(2))
	assertVec(t, math32.Vec3(3, 2, 3), ps.Pos)

	ps.ScaleBy(2)
	ps.ScaleBy(0)
	ps.ScaleBy(-1)
	assertVec(t, math32.Vec3(2, 2, 2), ps.Scale)
}

func TestMoveOnAxis(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.Rotate(NewRotation(math32.Vec3(0, 0, 1), math32.Pi/2))
	ps.MoveOnAxis(1, 0, 0, 3)
	assertVec(t, math32.Vec3(0, 3, 0), ps.Pos)
}

func TestAlignReset(t *testing.T) {
	var ps Pose
	ps.Defaults()
	ps.Rotate(NewRotation(math32.Vec3(0, 1, 0), 1))
	ps.Align()
	assert.Equal(t, float32(1), ps.Quat.W)

	ps.Pos = math32.Vec3(1, 1, 1)
	ps.ScaleBy(3)
	ps.Reset()
	assert.Equal(t, math32.Vector3{}, ps.Pos)
	assert.Equal(t, math32.Vec3(1, 1, 1), ps.Scale)

	var cp Pose
	cp.CopyFrom(&ps)
	assert.Equal(t, ps, cp)
}

func TestIncrements(t *testing.T) {
	r := NewRotation(math32.Vec3(0, 1, 0), 2).Scaled(0.5)
	assert.Equal(t, float32(1), r.Angle)
	assert.Equal(t, math32.Vec3(0, 1, 0), r.Axis)
	assert.True(t, Rotation{}.IsZero())
	assert.Equal(t, float32(1), Rotation{}.Quat().W)

	tr := NewTranslation(2, 0, -2).Scaled(0.25)
	assert.Equal(t, math32.Vec3(0.5, 0, -0.5), tr.Delta)
}
