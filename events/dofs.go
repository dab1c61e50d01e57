// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"cogentcore.org/interact/shortcuts"
)

// DOFMap records the number of degrees of freedom of each motion device.
// It is an explicit configuration value, given to the binding tables and
// event builders that need it, rather than a process wide registry.
// Devices missing from the map have two degrees of freedom.
type DOFMap map[shortcuts.Devices]int

// DefaultDOFs returns the degrees of freedom of the standard devices.
func DefaultDOFs() DOFMap {
	return DOFMap{
		shortcuts.Left:     2,
		shortcuts.Middle:   2,
		shortcuts.Right:    2,
		shortcuts.Pointer:  2,
		shortcuts.Touch:    2,
		shortcuts.Wheel:    1,
		shortcuts.SpaceNav: 6,
	}
}

// DOF returns the degrees of freedom of the given device.
func (dm DOFMap) DOF(dev shortcuts.Devices) int {
	if n, ok := dm[dev]; ok {
		return n
	}
	return 2
}

// Category returns the event category produced by the given shortcut.
func (dm DOFMap) Category(sc shortcuts.Shortcut) Categories {
	switch sc.Kind {
	case shortcuts.KindKey:
		return Key
	case shortcuts.KindClick:
		return Click
	case shortcuts.KindMotion:
		return MotionCategory(dm.DOF(sc.Device))
	}
	return UnknownCategory
}
