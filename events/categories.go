// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

//go:generate core generate

// Categories determine the category of an input event, which is
// the level at which staged (Init / Exec / Flush) gesture handlers
// are registered. Motion events are split by the number of degrees
// of freedom of the device that produced them; see [DOFMap].
type Categories int32 //enums:enum

const (
	// UnknownCategory is the zero value.
	UnknownCategory Categories = iota

	// Key is a key press, with modifiers.
	Key

	// Click is one or more presses of a device button.
	Click

	// Motion1 is a single axis motion, such as a scroll wheel.
	Motion1

	// Motion2 is a two axis motion, such as a mouse drag.
	Motion2

	// Motion3 is a three axis motion.
	Motion3

	// Motion6 is a six axis motion (three translations and
	// three rotations), such as a space navigator.
	Motion6
)

// IsMotion returns whether the category is one of the motion categories.
func (c Categories) IsMotion() bool {
	return c >= Motion1 && c <= Motion6
}

// DOF returns the number of degrees of freedom of a motion category,
// and 0 for the other categories.
func (c Categories) DOF() int {
	switch c {
	case Motion1:
		return 1
	case Motion2:
		return 2
	case Motion3:
		return 3
	case Motion6:
		return 6
	}
	return 0
}

// MotionCategory returns the motion category for the given number
// of degrees of freedom, rounding up to the next supported one,
// and [UnknownCategory] for a non-positive or too large value.
func MotionCategory(dof int) Categories {
	switch {
	case dof <= 0:
		return UnknownCategory
	case dof == 1:
		return Motion1
	case dof == 2:
		return Motion2
	case dof == 3:
		return Motion3
	case dof <= 6:
		return Motion6
	}
	return UnknownCategory
}
