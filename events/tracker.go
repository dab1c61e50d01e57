// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"time"

	"cogentcore.org/interact/shortcuts"
)

// Tracker fills in the Delay and Speed of motion events from the time
// of the previous event of the same device. A terminal event ends the
// gesture, so the next event of that device starts with no delay.
// Events already carrying a Speed or Delay, set by the host, are only
// recorded and keep their values. The zero value is ready to use.
type Tracker struct {
	last map[shortcuts.Devices]time.Time
}

// Stamp sets the Delay and Speed of the given motion event, using its
// Time field, unless the event already has them. Non-motion events are
// left unchanged.
func (tr *Tracker) Stamp(ev *Event) {
	if !ev.Category.IsMotion() {
		return
	}
	if tr.last == nil {
		tr.last = make(map[shortcuts.Devices]time.Time)
	}
	dev := ev.Shortcut.Device
	prev, has := tr.last[dev]
	switch {
	case ev.Terminal:
		delete(tr.last, dev)
	default:
		tr.last[dev] = ev.Time
	}
	if ev.Speed != 0 || ev.Delay != 0 {
		return
	}
	if !has || !ev.Time.After(prev) {
		ev.Delay = 0
		ev.Speed = 0
		return
	}
	ev.Delay = ev.Time.Sub(prev)
	ms := float32(ev.Delay) / float32(time.Millisecond)
	ev.Speed = ev.Distance() / ms
}

// Reset forgets all gestures in progress.
func (tr *Tracker) Reset() {
	tr.last = nil
}
