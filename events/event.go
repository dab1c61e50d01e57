// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides the input events delivered to grabbers:
// key, click and motion events identified by a shortcut and
// classified into [Categories].
package events

import (
	"fmt"
	"time"

	"cogentcore.org/core/events/key"
	"cogentcore.org/core/math32"
	"cogentcore.org/interact/shortcuts"
)

// Axes index the motion deltas of an [Event].
type Axes int32

const (
	DX Axes = iota
	DY
	DZ
	RX
	RY
	RZ
	AxesN
)

// Event is an input event addressed to a grabber. Events are values
// produced by the host adaptation layer; grabbers never modify them.
type Event struct {

	// Shortcut identifies what produced the event.
	Shortcut shortcuts.Shortcut

	// Category is the category of the event.
	Category Categories

	// Terminal marks the last event of a gesture (button release,
	// end of touch), which flushes the gesture session.
	Terminal bool

	// Speed is the motion speed, in units per millisecond,
	// for motion events. See [Tracker].
	Speed float32

	// Delay is the time since the previous event of the same gesture,
	// for motion events.
	Delay time.Duration

	// Pos is the screen position of the event, when known.
	Pos math32.Vector2

	// Deltas are the motion deltas for motion events, indexed by [Axes].
	// Only the first Category.DOF() values are meaningful, except for
	// [Motion6] where all are.
	Deltas [AxesN]float32

	// Time is when the event happened.
	Time time.Time
}

// NewKey returns a key event for the given code and modifiers.
func NewKey(code key.Codes, mods ...key.Modifiers) *Event {
	return &Event{Shortcut: shortcuts.Key(code, mods...), Category: Key, Time: time.Now()}
}

// NewClick returns a click event of the given device at the given position.
func NewClick(dev shortcuts.Devices, clicks int, where math32.Vector2) *Event {
	return &Event{Shortcut: shortcuts.Click(dev, clicks), Category: Click, Pos: where, Time: time.Now()}
}

// NewMotion returns a non-terminal motion event of the given device,
// categorized by the degrees of freedom that dofs records for it.
// Deltas beyond [AxesN] are ignored.
func NewMotion(dofs DOFMap, dev shortcuts.Devices, deltas ...float32) *Event {
	sc := shortcuts.Motion(dev)
	ev := &Event{Shortcut: sc, Category: dofs.Category(sc), Time: time.Now()}
	copy(ev.Deltas[:], deltas)
	return ev
}

// NewRelease returns the terminal motion event ending a gesture
// of the given device.
func NewRelease(dofs DOFMap, dev shortcuts.Devices) *Event {
	ev := NewMotion(dofs, dev)
	ev.Terminal = true
	return ev
}

// NewFromShortcut returns a non-terminal event for the given shortcut,
// with no motion.
func NewFromShortcut(dofs DOFMap, sc shortcuts.Shortcut) *Event {
	return &Event{Shortcut: sc, Category: dofs.Category(sc), Time: time.Now()}
}

// Delta returns the delta of the given axis.
func (ev *Event) Delta(ax Axes) float32 {
	return ev.Deltas[ax]
}

// Distance returns the length of the translation deltas of a motion event.
func (ev *Event) Distance() float32 {
	switch ev.Category {
	case Motion1:
		return math32.Abs(ev.Deltas[DX])
	case Motion2:
		return math32.Vec2(ev.Deltas[DX], ev.Deltas[DY]).Length()
	}
	return math32.Vec3(ev.Deltas[DX], ev.Deltas[DY], ev.Deltas[DZ]).Length()
}

func (ev *Event) String() string {
	term := ""
	if ev.Terminal {
		term = ", Terminal"
	}
	if ev.Category.IsMotion() {
		return fmt.Sprintf("%v{%v, Deltas: %v, Speed: %g, Delay: %v%s}", ev.Category, ev.Shortcut, ev.Deltas[:ev.Category.DOF()], ev.Speed, ev.Delay, term)
	}
	return fmt.Sprintf("%v{%v%s}", ev.Category, ev.Shortcut, term)
}
