// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package grabber defines the [Grabber] and [Agent] contracts, and the
// [Base] type that concrete grabbers embed to get a binding table, a
// gesture dispatcher and the spin and toss momentum engines.
package grabber

import (
	"cogentcore.org/interact/bindings"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/gesture"
	"cogentcore.org/interact/momentum"
	"cogentcore.org/interact/pose"
)

// Grabber is an interactive object that receives input events.
type Grabber interface {

	// Handle dispatches the event and returns whether it was consumed.
	Handle(ev *events.Event) bool

	// CheckIfGrabsInput returns whether the grabber wants the input
	// at the position of the event, for instance because it is under
	// the pointer.
	CheckIfGrabsInput(ev *events.Event) bool

	// GrabsInput returns whether the grabber is the current input
	// grabber of the given agent.
	GrabsInput(ag Agent) bool
}

// Agent is an input source that routes events to one grabber at a time.
type Agent interface {

	// InputGrabber returns the grabber currently receiving the input,
	// or nil.
	InputGrabber() Grabber
}

// Base provides the state shared by all grabbers. Concrete grabbers
// embed it and call [Base.InitBase] with themselves.
type Base struct {

	// This is the concrete grabber embedding this Base, passed to
	// external operations.
	This Grabber

	// Bindings is the binding table of the grabber.
	Bindings *bindings.Table

	// Gestures is the gesture dispatcher running on Bindings.
	Gestures gesture.Dispatcher

	// Spin is the momentum engine of rotations.
	Spin momentum.Engine[pose.Rotation]

	// Toss is the momentum engine of translations.
	Toss momentum.Engine[pose.Translation]
}

// InitBase initializes the base with an empty binding table using the
// given device degrees of freedom (the defaults if nil), and momentum
// engines ticking on the given scheduler.
func (gb *Base) InitBase(this Grabber, dofs events.DOFMap, sch momentum.Scheduler) {
	gb.This = this
	gb.Bindings = bindings.New(dofs)
	gb.Gestures = gesture.Dispatcher{Table: gb.Bindings}
	gb.Spin.Defaults()
	gb.Spin.Scheduler = sch
	gb.Toss.Defaults()
	gb.Toss.Scheduler = sch
}

// AsBase returns the base.
func (gb *Base) AsBase() *Base {
	return gb
}

// BindingTable returns the binding table.
func (gb *Base) BindingTable() *bindings.Table {
	return gb.Bindings
}

// Handle dispatches the event through the gesture dispatcher.
func (gb *Base) Handle(ev *events.Event) bool {
	return gb.Gestures.Handle(gb.This, ev)
}

// GrabsInput returns whether this is the current input grabber of the agent.
func (gb *Base) GrabsInput(ag Agent) bool {
	if ag == nil || gb.This == nil {
		return false
	}
	return ag.InputGrabber() == gb.This
}

// InGesture returns whether a gesture session is in progress.
func (gb *Base) InGesture() bool {
	return gb.Gestures.State() == gesture.Active
}

// StopMomentum stops both spinning and tossing.
func (gb *Base) StopMomentum() {
	gb.Spin.Stop()
	gb.Toss.Stop()
}

// IsMoving returns whether the grabber is spinning or tossing.
func (gb *Base) IsMoving() bool {
	return gb.Spin.IsActive() || gb.Toss.IsActive()
}

// SetDamping sets the damping of both momentum engines.
func (gb *Base) SetDamping(f float32) {
	gb.Spin.SetDamping(f)
	gb.Toss.SetDamping(f)
}

// SetSensitivity sets the sensitivity of both momentum engines.
func (gb *Base) SetSensitivity(f float32) {
	gb.Spin.SetSensitivity(f)
	gb.Toss.SetSensitivity(f)
}
