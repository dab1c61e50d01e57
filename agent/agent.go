// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package agent provides [Agent], which routes input events to the
// grabber that wants them among a pool of grabbers.
package agent

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/grabber"
	"github.com/google/uuid"
)

// gesturer is implemented by grabbers that can report a gesture in
// progress, such as those embedding [grabber.Base].
type gesturer interface {
	InGesture() bool
}

// Agent routes events to one of its grabbers. Grabbers are addressed by
// uuid handles and are not owned by the agent. The tracked grabber is
// the first one whose CheckIfGrabsInput accepts an event, and it keeps
// the input until its gesture ends. Without a tracked grabber, events
// go to the default grabber, if any.
//
// Host callbacks on any goroutine can [Agent.Send] events, which are
// handled by [Agent.ProcessEvents] on the host loop goroutine. All
// other methods must be called on the host loop goroutine.
type Agent struct {
	grabbers *ordmap.Map[uuid.UUID, grabber.Grabber]
	tracked  uuid.UUID
	def      uuid.UUID
	inbox    events.Queue

	// Tracker stamps events going through the inbox with their speed
	// and delay.
	Tracker events.Tracker
}

// New returns a new agent with no grabbers.
func New() *Agent {
	return &Agent{grabbers: ordmap.New[uuid.UUID, grabber.Grabber]()}
}

// Add adds the grabber and returns its handle.
func (ag *Agent) Add(g grabber.Grabber) uuid.UUID {
	id := uuid.New()
	ag.grabbers.Add(id, g)
	return id
}

// Remove removes the grabber with the given handle, which stops being
// the tracked or default grabber. It returns false if there is none.
func (ag *Agent) Remove(id uuid.UUID) bool {
	if !ag.grabbers.DeleteKey(id) {
		return false
	}
	if ag.tracked == id {
		ag.tracked = uuid.Nil
	}
	if ag.def == id {
		ag.def = uuid.Nil
	}
	return true
}

// Len returns the number of grabbers.
func (ag *Agent) Len() int {
	return ag.grabbers.Len()
}

// Handles returns the handles of the grabbers, in the order they were added.
func (ag *Agent) Handles() []uuid.UUID {
	return ag.grabbers.Keys()
}

// Grabber returns the grabber with the given handle.
func (ag *Agent) Grabber(id uuid.UUID) (grabber.Grabber, bool) {
	if id == uuid.Nil {
		return nil, false
	}
	return ag.grabbers.ValueByKeyTry(id)
}

// HandleOf returns the handle of the given grabber, or [uuid.Nil].
func (ag *Agent) HandleOf(g grabber.Grabber) uuid.UUID {
	for _, kv := range ag.grabbers.Order {
		if kv.Value == g {
			return kv.Key
		}
	}
	return uuid.Nil
}

// SetDefaultGrabber sets the grabber receiving the events no other
// grabber wants. [uuid.Nil] clears it.
func (ag *Agent) SetDefaultGrabber(id uuid.UUID) error {
	if id != uuid.Nil {
		if _, ok := ag.grabbers.ValueByKeyTry(id); !ok {
			return fmt.Errorf("agent: no grabber with handle %v", id)
		}
	}
	ag.def = id
	return nil
}

// DefaultGrabber returns the default grabber, or nil.
func (ag *Agent) DefaultGrabber() grabber.Grabber {
	g, _ := ag.Grabber(ag.def)
	return g
}

// TrackedGrabber returns the tracked grabber, or nil.
func (ag *Agent) TrackedGrabber() grabber.Grabber {
	g, _ := ag.Grabber(ag.tracked)
	return g
}

// UpdateTrackedGrabber asks each grabber, in order, whether it wants
// the input at the event, and tracks the first that does. It returns
// the tracked grabber, or nil if none wants it.
func (ag *Agent) UpdateTrackedGrabber(ev *events.Event) grabber.Grabber {
	ag.tracked = uuid.Nil
	for _, kv := range ag.grabbers.Order {
		if kv.Value.CheckIfGrabsInput(ev) {
			ag.tracked = kv.Key
			return kv.Value
		}
	}
	return nil
}

// ResetTracked stops tracking any grabber.
func (ag *Agent) ResetTracked() {
	ag.tracked = uuid.Nil
}

// InputGrabber returns the grabber currently receiving the input: the
// tracked grabber if any, else the default one, else nil.
func (ag *Agent) InputGrabber() grabber.Grabber {
	if g := ag.TrackedGrabber(); g != nil {
		return g
	}
	return ag.DefaultGrabber()
}

// HandleEvent routes the event to the input grabber and returns whether
// it was consumed. The tracked grabber is kept while it is in a gesture
// and updated from the event otherwise.
func (ag *Agent) HandleEvent(ev *events.Event) bool {
	tg := ag.TrackedGrabber()
	busy := false
	if gs, ok := tg.(gesturer); ok {
		busy = gs.InGesture()
	}
	if !busy {
		ag.UpdateTrackedGrabber(ev)
	}
	g := ag.InputGrabber()
	if g == nil {
		slog.Debug("agent: no grabber for event", "event", ev)
		return false
	}
	return g.Handle(ev)
}

// Send queues the event for [Agent.ProcessEvents]. It is safe to call
// from any goroutine.
func (ag *Agent) Send(ev *events.Event) {
	if ev == nil {
		errors.Log(errors.New("agent: nil event sent"))
		return
	}
	ag.inbox.Send(ev)
}

// Pending returns the number of queued events.
func (ag *Agent) Pending() int {
	return ag.inbox.Len()
}

// SetCoalesce sets whether consecutive queued motion events of the same
// gesture are merged into one, see [events.Queue]. It must be called
// before events are sent.
func (ag *Agent) SetCoalesce(on bool) {
	ag.inbox.Coalesce = on
}

// ProcessEvents handles all the queued events in arrival order,
// stamping them with the tracker, and returns how many were consumed.
// Events whose speed or delay was set by the host keep them.
func (ag *Agent) ProcessEvents() int {
	n := 0
	for ev := ag.inbox.NextEvent(); ev != nil; ev = ag.inbox.NextEvent() {
		ag.Tracker.Stamp(ev)
		if ag.HandleEvent(ev) {
			n++
		}
	}
	return n
}
