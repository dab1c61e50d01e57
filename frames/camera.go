// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"cogentcore.org/interact/actions"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/grabber"
	"cogentcore.org/interact/momentum"
	"cogentcore.org/interact/pose"
	"cogentcore.org/interact/shortcuts"
)

// Names of the operations of a [Camera].
const (
	Orbit  = "orbit"
	Pan    = "pan"
	Zoom   = "zoom"
	LookAt = "lookat"
	Home   = "home"
)

// Camera is an eye frame looking at a target. Drags orbit around the
// target and pan, the wheel zooms, and releasing a drag keeps it
// orbiting or panning with decaying speed.
type Camera struct {
	grabber.Base

	// Pose is the pose of the camera, with its position in world
	// coordinates.
	Pose pose.Pose

	// Target is the point the camera looks at and orbits around.
	Target math32.Vector3

	// UpDir is the up direction of the camera.
	UpDir math32.Vector3

	// OrbitFactor is the orbit angle in degrees per unit of motion.
	OrbitFactor float32

	// PanFactor is the pan distance per unit of motion.
	PanFactor float32

	// ZoomFactor is the zoom fraction per unit of wheel motion.
	ZoomFactor float32

	// Picker returns whether the camera wants the input at the event.
	// A camera with no picker never grabs the input by itself, and is
	// typically the default grabber of the agent.
	Picker func(ev *events.Event) bool

	last    lastMotion
	actions *actions.Registry
}

// NewCamera returns a new camera at the default pose, whose momentum
// engines tick on the given scheduler, with the default bindings for
// the given device degrees of freedom (the defaults if nil).
func NewCamera(sch momentum.Scheduler, dofs events.DOFMap) *Camera {
	cm := &Camera{}
	cm.InitBase(cm, dofs, sch)
	cm.OrbitFactor = 0.2
	cm.PanFactor = 0.01
	cm.ZoomFactor = 0.05
	cm.DefaultPose()
	cm.Spin.Apply = cm.OrbitBy
	cm.Toss.Apply = cm.PanBy
	cm.actions = actions.NewRegistry(cm.ops()...)
	cm.DefaultBindings()
	return cm
}

// Actions returns the registry of the named operations and stage
// handlers of the camera.
func (cm *Camera) Actions() *actions.Registry {
	return cm.actions
}

func (cm *Camera) ops() []actions.Ref {
	refs := []actions.Ref{
		actions.New(Orbit, cm, func(ev *events.Event) bool {
			r := cm.OrbitRotation(-ev.Delta(events.DX)*cm.OrbitFactor, -ev.Delta(events.DY)*cm.OrbitFactor)
			if r.IsZero() {
				return false
			}
			cm.OrbitBy(r)
			cm.last.rotated(r, ev)
			return true
		}),
		actions.New(Pan, cm, func(ev *events.Event) bool {
			t := cm.PanTranslation(ev.Delta(events.DX)*cm.PanFactor, -ev.Delta(events.DY)*cm.PanFactor)
			cm.PanBy(t)
			cm.last.translated(t, ev)
			return true
		}),
		actions.New(Zoom, cm, func(ev *events.Event) bool {
			cm.Zoom(-ev.Delta(events.DX) * cm.ZoomFactor)
			return true
		}),
		actions.New(LookAt, cm, func(ev *events.Event) bool { cm.LookAtTarget(); return true }),
		actions.New(Home, cm, func(ev *events.Event) bool { cm.StopMomentum(); cm.DefaultPose(); return true }),
		actions.New(Stop, cm, func(ev *events.Event) bool { cm.StopMomentum(); return true }),
	}
	return append(refs, stageOps(&cm.Base, cm, &cm.last)...)
}

// DefaultBindings replaces the bindings with the default ones: Left
// drag orbits, Right drag pans, the wheel zooms, a Left double click
// goes back to the default pose, and Space stops the momentum.
func (cm *Camera) DefaultBindings() {
	tb := cm.Bindings
	tb.RemoveBindings()
	tb.RemoveStageHandlers()
	bind := func(sc shortcuts.Shortcut, name string) {
		errors.Log(tb.SetBinding(sc, errors.Log1(cm.actions.Ref(name))))
	}
	bind(shortcuts.Motion(shortcuts.Left), Orbit)
	bind(shortcuts.Motion(shortcuts.Right), Pan)
	bind(shortcuts.Motion(shortcuts.Wheel), Zoom)
	bind(shortcuts.Click(shortcuts.Left, 2), Home)
	bind(shortcuts.Key(key.CodeSpacebar), Stop)
	setStages(tb, cm.actions)
}

// CheckIfGrabsInput returns whether the picker accepts the event.
func (cm *Camera) CheckIfGrabsInput(ev *events.Event) bool {
	return cm.Picker != nil && cm.Picker(ev)
}

// DefaultPose resets the camera pose to the default location and
// orientation, looking at the origin from 0,0,10, with up Y axis.
func (cm *Camera) DefaultPose() {
	cm.Pose.Reset()
	cm.Pose.Pos = math32.Vec3(0, 0, 10)
	cm.LookAtOrigin()
}

// LookAt points the camera at the given target location, using the given
// up direction (Y if zero), and sets the Target and UpDir fields for
// future camera movements.
func (cm *Camera) LookAt(target, upDir math32.Vector3) {
	cm.Target = target
	if upDir == (math32.Vector3{}) {
		upDir = math32.Vec3(0, 1, 0)
	}
	cm.UpDir = upDir
	cm.Pose.LookAt(target, upDir)
}

// LookAtOrigin points the camera at the origin with the Y axis up.
func (cm *Camera) LookAtOrigin() {
	cm.LookAt(math32.Vector3{}, math32.Vec3(0, 1, 0))
}

// LookAtTarget points the camera at the current target using the
// current up direction.
func (cm *Camera) LookAtTarget() {
	cm.LookAt(cm.Target, cm.UpDir)
}

// ViewVector is the vector between the camera position and target.
func (cm *Camera) ViewVector() math32.Vector3 {
	return cm.Pose.Pos.Sub(cm.Target)
}

// Distance returns the distance between the camera and its target.
func (cm *Camera) Distance() float32 {
	return cm.ViewVector().Length()
}

// OrbitRotation returns the rotation around the target moving the
// camera along the given 2D axes in degrees (delX = left/right,
// delY = up/down), relative to the current position and orientation.
func (cm *Camera) OrbitRotation(delX, delY float32) pose.Rotation {
	ctdir := cm.ViewVector()
	if ctdir == (math32.Vector3{}) {
		ctdir = math32.Vec3(0, 0, 1)
	}
	dir := ctdir.Normal()
	right := cm.UpDir.Cross(dir).Normal()
	// delX rotates around the up vector and delY around the right vector
	axis := cm.UpDir.Normal().MulScalar(delX).Add(right.MulScalar(delY))
	angle := math32.DegToRad(math32.Sqrt(delX*delX + delY*delY))
	return pose.NewRotation(axis, angle)
}

// Orbit moves the camera along the given 2D axes in degrees, keeping
// the same distance from the target, and rotating the camera and the
// up direction to keep looking at the target.
func (cm *Camera) Orbit(delX, delY float32) {
	cm.OrbitBy(cm.OrbitRotation(delX, delY))
}

// OrbitBy rotates the camera position and up direction around the target.
func (cm *Camera) OrbitBy(r pose.Rotation) {
	if r.IsZero() {
		return
	}
	cm.Pose.Pos = cm.ViewVector().MulQuat(r.Quat()).Add(cm.Target)
	cm.UpDir = cm.UpDir.MulQuat(r.Quat())
	cm.LookAtTarget()
}

// PanTranslation returns the translation moving the camera along its
// own X and Y axes by the given amounts.
func (cm *Camera) PanTranslation(delX, delY float32) pose.Translation {
	dx := math32.Vec3(-delX, 0, 0).MulQuat(cm.Pose.Quat)
	dy := math32.Vec3(0, -delY, 0).MulQuat(cm.Pose.Quat)
	return pose.Translation{Delta: dx.Add(dy)}
}

// Pan moves the camera along its own X and Y axes, moving the target
// as well.
func (cm *Camera) Pan(delX, delY float32) {
	cm.PanBy(cm.PanTranslation(delX, delY))
}

// PanBy moves the camera and its target by the given translation.
func (cm *Camera) PanBy(t pose.Translation) {
	cm.Pose.Translate(t)
	cm.Target = cm.Target.Add(t.Delta)
}

// Zoom moves the camera along the view axis by the given fraction of
// the distance to the target, closer for negative values. The target
// moves back as well when the camera gets closer than 1 from it.
func (cm *Camera) Zoom(zoomPct float32) {
	ctaxis := cm.ViewVector()
	if ctaxis == (math32.Vector3{}) {
		ctaxis = math32.Vec3(0, 0, 1)
	}
	dist := ctaxis.Length()
	del := ctaxis.MulScalar(zoomPct)
	cm.Pose.Pos = cm.Pose.Pos.Add(del)
	if zoomPct < 0 && dist < 1 {
		cm.Target = cm.Target.Add(del)
	}
}
