// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"testing"
	"time"

	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/momentum"
	"cogentcore.org/interact/shortcuts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dofs = events.DefaultDOFs()

func drag(dev shortcuts.Devices, dx, dy float32) *events.Event {
	ev := events.NewMotion(dofs, dev, dx, dy)
	ev.Speed = 1
	ev.Delay = 10 * time.Millisecond
	return ev
}

func TestFrameDefaultBindings(t *testing.T) {
	fr := NewFrame(&momentum.Loop{}, nil)
	tb := fr.Bindings
	assert.Equal(t, 6, tb.Len())
	for _, name := range []string{Rotate, Translate, Scale, Align, Center, Stop} {
		assert.True(t, tb.IsOperationBound(fr, name), name)
	}
	assert.True(t, tb.IsStaged(events.Motion2))
	assert.False(t, tb.IsStaged(events.Motion1))
	assert.Equal(t, 11, fr.Actions().Len())
}

func TestFrameSpinContinues(t *testing.T) {
	lp := &momentum.Loop{}
	fr := NewFrame(lp, nil)

	assert.True(t, fr.Handle(drag(shortcuts.Left, 10, 0)))
	assert.True(t, fr.InGesture())
	assert.True(t, fr.Handle(drag(shortcuts.Left, 10, 0)))
	rotated := fr.Pose.Quat
	assert.NotEqual(t, float32(1), rotated.W)
	assert.True(t, fr.Handle(events.NewRelease(dofs, shortcuts.Left)))
	assert.False(t, fr.InGesture())
	require.True(t, fr.Spin.IsActive())
	assert.False(t, fr.Toss.IsActive())

	lp.Advance(10 * time.Millisecond)
	assert.NotEqual(t, rotated, fr.Pose.Quat)
	assert.Less(t, fr.Spin.Speed(), float32(1))

	assert.True(t, fr.Handle(events.NewKey(key.CodeSpacebar)))
	assert.False(t, fr.Spin.IsActive())
	stopped := fr.Pose.Quat
	lp.Advance(time.Second)
	assert.Equal(t, stopped, fr.Pose.Quat)
}

func TestFrameTossDecays(t *testing.T) {
	lp := &momentum.Loop{}
	fr := NewFrame(lp, nil)
	fr.Handle(drag(shortcuts.Right, 10, 0))
	fr.Handle(drag(shortcuts.Right, 10, 0))
	assert.InDelta(t, 0.2, fr.Pose.Pos.X, 1e-5)
	fr.Handle(events.NewRelease(dofs, shortcuts.Right))
	require.True(t, fr.Toss.IsActive())

	for range 1000 {
		if !fr.Toss.IsActive() {
			break
		}
		lp.Advance(10 * time.Millisecond)
	}
	assert.False(t, fr.Toss.IsActive())
	x := fr.Pose.Pos.X
	assert.Greater(t, x, float32(0.2))
	// the decaying increments add up to a bounded distance
	assert.Less(t, x, float32(0.2+0.1/0.125))
	assert.Equal(t, 0, lp.Len())
}

func TestFrameSiblingEngines(t *testing.T) {
	lp := &momentum.Loop{}
	fr := NewFrame(lp, nil)
	fr.Handle(drag(shortcuts.Left, 5, 5))
	fr.Handle(events.NewRelease(dofs, shortcuts.Left))
	fr.Handle(drag(shortcuts.Right, 5, 5))
	fr.Handle(events.NewRelease(dofs, shortcuts.Right))
	assert.True(t, fr.Spin.IsActive())
	assert.True(t, fr.Toss.IsActive())
	assert.True(t, fr.IsMoving())

	fr.StopMomentum()
	assert.False(t, fr.IsMoving())
}

func TestFrameNoSpeedNoSpin(t *testing.T) {
	fr := NewFrame(&momentum.Loop{}, nil)
	fr.Handle(events.NewMotion(dofs, shortcuts.Left, 5, 0))
	fr.Handle(events.NewRelease(dofs, shortcuts.Left))
	assert.False(t, fr.Spin.IsActive())

	// spin restarts from the last drag when it has a speed
	fr.Handle(drag(shortcuts.Left, 5, 0))
	fr.Handle(events.NewRelease(dofs, shortcuts.Left))
	fr.StopMomentum()
	assert.True(t, fr.StartSpinning())
	assert.False(t, fr.StartTossing())
}

func TestFrameFlatOps(t *testing.T) {
	fr := NewFrame(&momentum.Loop{}, nil)
	fr.Handle(events.NewMotion(dofs, shortcuts.Wheel, 1))
	assert.InDelta(t, 1.1, fr.Pose.Scale.X, 1e-5)
	assert.False(t, fr.InGesture())

	fr.Handle(drag(shortcuts.Left, 3, 4))
	fr.Handle(events.NewRelease(dofs, shortcuts.Left))
	fr.Handle(drag(shortcuts.Right, 3, 4))
	fr.Handle(events.NewRelease(dofs, shortcuts.Right))
	fr.StopMomentum()

	fr.Handle(events.NewClick(shortcuts.Left, 2, math32.Vector2{}))
	assert.Equal(t, float32(1), fr.Pose.Quat.W)
	fr.Handle(events.NewClick(shortcuts.Right, 2, math32.Vector2{}))
	assert.Equal(t, math32.Vector3{}, fr.Pose.Pos)
}

func TestFrameSixAxis(t *testing.T) {
	fr := NewFrame(&momentum.Loop{}, nil)
	ev := events.NewMotion(dofs, shortcuts.SpaceNav, 0, 0, 0, 0, 0, 1)
	r := fr.RotationOf(ev)
	assert.Equal(t, math32.Vec3(0, 0, 1), r.Axis)
	assert.InDelta(t, 0.01, r.Angle, 1e-6)
}

func TestFramePicker(t *testing.T) {
	fr := NewFrame(&momentum.Loop{}, nil)
	ev := events.NewClick(shortcuts.Left, 1, math32.Vec2(5, 5))
	assert.False(t, fr.CheckIfGrabsInput(ev))
	fr.Picker = func(ev *events.Event) bool { return ev.Pos.X < 10 }
	assert.True(t, fr.CheckIfGrabsInput(ev))
}

func TestCameraDefaults(t *testing.T) {
	cm := NewCamera(&momentum.Loop{}, nil)
	assert.Equal(t, math32.Vec3(0, 0, 10), cm.Pose.Pos)
	assert.Equal(t, math32.Vec3(0, 1, 0), cm.UpDir)
	assert.InDelta(t, 10, cm.Distance(), 1e-5)
	assert.True(t, cm.Bindings.IsOperationBound(cm, Orbit))
	assert.True(t, cm.Bindings.IsStaged(events.Motion2))
}

func TestCameraOrbit(t *testing.T) {
	cm := NewCamera(&momentum.Loop{}, nil)
	cm.Orbit(90, 0)
	assert.InDelta(t, 10, cm.Distance(), 1e-4)
	assert.InDelta(t, 10, math32.Abs(cm.Pose.Pos.X), 1e-4)
	assert.InDelta(t, 0, cm.Pose.Pos.Z, 1e-4)

	cm.Orbit(0, 45)
	assert.InDelta(t, 10, cm.Distance(), 1e-4)
	assert.InDelta(t, 1, cm.UpDir.Length(), 1e-4)
}

func TestCameraPanZoom(t *testing.T) {
	cm := NewCamera(&momentum.Loop{}, nil)
	cm.Pan(1, 0)
	assert.InDelta(t, cm.Pose.Pos.X, cm.Target.X, 1e-5)
	assert.InDelta(t, 1, math32.Abs(cm.Target.X), 1e-5)
	assert.InDelta(t, 10, cm.Distance(), 1e-5)

	cm.Zoom(-0.5)
	assert.InDelta(t, 5, cm.Distance(), 1e-4)
	cm.Zoom(1)
	assert.InDelta(t, 10, cm.Distance(), 1e-4)
}

func TestCameraSpin(t *testing.T) {
	lp := &momentum.Loop{}
	cm := NewCamera(lp, nil)
	cm.Handle(drag(shortcuts.Left, 10, 0))
	cm.Handle(drag(shortcuts.Left, 10, 0))
	cm.Handle(events.NewRelease(dofs, shortcuts.Left))
	require.True(t, cm.Spin.IsActive())

	before := cm.Pose.Pos
	lp.Advance(10 * time.Millisecond)
	assert.NotEqual(t, before, cm.Pose.Pos)
	assert.InDelta(t, 10, cm.Distance(), 1e-3)

	cm.Handle(events.NewClick(shortcuts.Left, 2, math32.Vector2{}))
	assert.False(t, cm.Spin.IsActive())
	assert.Equal(t, math32.Vec3(0, 0, 10), cm.Pose.Pos)
}
