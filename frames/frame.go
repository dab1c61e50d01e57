// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frames provides the concrete grabbers: [Frame], an
// interactive frame that can be rotated, translated and scaled, and
// [Camera], an eye frame orbiting around a target.
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

// Names of the operations of a [Frame].
const (
	Rotate    = "rotate"
	Translate = "translate"
	Scale     = "scale"
	Spin      = "spin"
	Toss      = "toss"
	Align     = "align"
	Center    = "center"
	Stop      = "stop"
)

// Frame is an interactive frame with a [pose.Pose]. Drags rotate and
// translate it, the wheel scales it, and releasing a drag keeps it
// spinning or tossing with decaying speed.
type Frame struct {
	grabber.Base

	// Pose is the pose of the frame relative to its parent.
	Pose pose.Pose

	// Picker returns whether the frame is under the position of the
	// event, for [Frame.CheckIfGrabsInput]. A frame with no picker
	// never grabs the input by itself.
	Picker func(ev *events.Event) bool

	// RotationFactor is the rotation angle in radians per unit of motion.
	RotationFactor float32

	// TranslationFactor is the translation distance per unit of motion.
	TranslationFactor float32

	// WheelFactor is the relative scale change per unit of wheel motion.
	WheelFactor float32

	last    lastMotion
	actions *actions.Registry
}

// NewFrame returns a new frame whose momentum engines tick on the given
// scheduler, with the default bindings for the given device degrees of
// freedom (the defaults if nil).
func NewFrame(sch momentum.Scheduler, dofs events.DOFMap) *Frame {
	fr := &Frame{}
	fr.InitBase(fr, dofs, sch)
	fr.Pose.Defaults()
	fr.RotationFactor = 0.01
	fr.TranslationFactor = 0.01
	fr.WheelFactor = 0.1
	fr.Spin.Apply = fr.Pose.Rotate
	fr.Toss.Apply = fr.Pose.Translate
	fr.actions = actions.NewRegistry(fr.ops()...)
	fr.DefaultBindings()
	return fr
}

// Actions returns the registry of the named operations and stage
// handlers of the frame.
func (fr *Frame) Actions() *actions.Registry {
	return fr.actions
}

func (fr *Frame) ops() []actions.Ref {
	refs := []actions.Ref{
		actions.New(Rotate, fr, fr.rotate),
		actions.New(Translate, fr, fr.translate),
		actions.New(Scale, fr, fr.scale),
		actions.New(Spin, fr, func(ev *events.Event) bool { return fr.StartSpinning() }),
		actions.New(Toss, fr, func(ev *events.Event) bool { return fr.StartTossing() }),
		actions.New(Align, fr, func(ev *events.Event) bool { fr.Pose.Align(); return true }),
		actions.New(Center, fr, func(ev *events.Event) bool { fr.Pose.Pos = math32.Vector3{}; return true }),
		actions.New(Stop, fr, func(ev *events.Event) bool { fr.StopMomentum(); return true }),
	}
	return append(refs, stageOps(&fr.Base, fr, &fr.last)...)
}

// DefaultBindings replaces the bindings with the default ones: Left
// drag rotates, Right drag translates, the wheel scales, a Left double
// click aligns, a Right double click centers, and Space stops the
// momentum.
func (fr *Frame) DefaultBindings() {
	tb := fr.Bindings
	tb.RemoveBindings()
	tb.RemoveStageHandlers()
	bind := func(sc shortcuts.Shortcut, name string) {
		errors.Log(tb.SetBinding(sc, errors.Log1(fr.actions.Ref(name))))
	}
	bind(shortcuts.Motion(shortcuts.Left), Rotate)
	bind(shortcuts.Motion(shortcuts.Right), Translate)
	bind(shortcuts.Motion(shortcuts.Wheel), Scale)
	bind(shortcuts.Click(shortcuts.Left, 2), Align)
	bind(shortcuts.Click(shortcuts.Right, 2), Center)
	bind(shortcuts.Key(key.CodeSpacebar), Stop)
	setStages(tb, fr.actions)
}

// CheckIfGrabsInput returns whether the picker accepts the event.
func (fr *Frame) CheckIfGrabsInput(ev *events.Event) bool {
	return fr.Picker != nil && fr.Picker(ev)
}

// RotationOf returns the rotation for the given motion event. Two axis
// drags rotate around the axis orthogonal to the drag in the screen
// plane, and six axis motions use their rotation axes.
func (fr *Frame) RotationOf(ev *events.Event) pose.Rotation {
	var axis math32.Vector3
	if ev.Category == events.Motion6 {
		axis = math32.Vec3(ev.Delta(events.RX), ev.Delta(events.RY), ev.Delta(events.RZ))
	} else {
		axis = math32.Vec3(ev.Delta(events.DY), ev.Delta(events.DX), 0)
	}
	return pose.NewRotation(axis, axis.Length()*fr.RotationFactor)
}

// TranslationOf returns the translation for the given motion event.
// The screen Y axis points down.
func (fr *Frame) TranslationOf(ev *events.Event) pose.Translation {
	d := math32.Vec3(ev.Delta(events.DX), -ev.Delta(events.DY), ev.Delta(events.DZ))
	return pose.Translation{Delta: d.MulScalar(fr.TranslationFactor)}
}

func (fr *Frame) rotate(ev *events.Event) bool {
	r := fr.RotationOf(ev)
	if r.IsZero() {
		return false
	}
	fr.Pose.Rotate(r)
	fr.last.rotated(r, ev)
	return true
}

func (fr *Frame) translate(ev *events.Event) bool {
	t := fr.TranslationOf(ev)
	fr.Pose.Translate(t)
	fr.last.translated(t, ev)
	return true
}

func (fr *Frame) scale(ev *events.Event) bool {
	f := 1 + ev.Delta(events.DX)*fr.WheelFactor
	if f <= 0 {
		return false
	}
	fr.Pose.ScaleBy(f)
	return true
}

// StartSpinning starts spinning with the last rotation of the current
// drag session, if any, and returns whether it did.
func (fr *Frame) StartSpinning() bool {
	if fr.last.kind != rotating {
		return false
	}
	fr.Spin.Start(fr.last.rot, fr.last.speed, fr.last.delay)
	return fr.Spin.IsActive()
}

// StartTossing starts tossing with the last translation of the current
// drag session, if any, and returns whether it did.
func (fr *Frame) StartTossing() bool {
	if fr.last.kind != translating {
		return false
	}
	fr.Toss.Start(fr.last.tr, fr.last.speed, fr.last.delay)
	return fr.Toss.IsActive()
}
