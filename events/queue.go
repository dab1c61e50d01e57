// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import (
	"sync"
	"time"
)

// Queue is a FIFO inbox of events. Host callbacks on any goroutine
// [Queue.Send] events to it, and the frame loop takes them out in
// arrival order with [Queue.NextEvent]. The zero value is ready to use.
//
// With Coalesce set, a non-terminal motion event sent while the last
// queued event is a non-terminal motion of the same shortcut is merged
// into it (see [Coalesced]), so that a slow frame loop handles one
// motion per gesture and frame instead of lagging behind the device.
type Queue struct {

	// Coalesce merges consecutive motion events of the same gesture.
	// It must be set before events are sent.
	Coalesce bool

	mu     sync.Mutex
	events []*Event
}

// Send adds an event to the end of the queue, or merges it into the
// last queued event when coalescing.
func (q *Queue) Send(ev *Event) {
	q.mu.Lock()
	defer q.mu.Unlock()
	if n := len(q.events); q.Coalesce && n > 0 {
		if m, ok := Coalesced(q.events[n-1], ev); ok {
			q.events[n-1] = m
			return
		}
	}
	q.events = append(q.events, ev)
}

// NextEvent removes and returns the next event in the queue.
// It returns nil if the queue is empty.
func (q *Queue) NextEvent() *Event {
	q.mu.Lock()
	defer q.mu.Unlock()
	if len(q.events) == 0 {
		return nil
	}
	ev := q.events[0]
	q.events[0] = nil
	q.events = q.events[1:]
	if len(q.events) == 0 {
		q.events = nil
	}
	return ev
}

// Len returns the number of queued events.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.events)
}

// Coalesced returns a new event merging next into prev, and whether
// they could be merged: both must be non-terminal motion events of the
// same shortcut and category. The deltas and delays add up, the time
// and position are those of next, and the speed is recomputed from the
// merged distance and delay when either event carried one. Neither
// event is modified.
func Coalesced(prev, next *Event) (*Event, bool) {
	if prev == nil || next == nil || prev.Terminal || next.Terminal {
		return nil, false
	}
	if !prev.Category.IsMotion() || prev.Category != next.Category || prev.Shortcut != next.Shortcut {
		return nil, false
	}
	m := *prev
	for i := range m.Deltas {
		m.Deltas[i] += next.Deltas[i]
	}
	m.Time = next.Time
	m.Pos = next.Pos
	m.Delay += next.Delay
	if (prev.Speed != 0 || next.Speed != 0) && m.Delay > 0 {
		m.Speed = m.Distance() / (float32(m.Delay) / float32(time.Millisecond))
	}
	return &m, true
}
