// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package gesture provides the [Dispatcher], the state machine that
// turns the stream of events delivered to one grabber into staged
// (Init / Exec / Flush) gesture handler calls, or single-shot calls
// of flat bindings.
package gesture

//go:generate core generate

import (
	"log/slog"

	"cogentcore.org/interact/actions"
	"cogentcore.org/interact/bindings"
	"cogentcore.org/interact/events"
)

// States are the states of a [Dispatcher].
type States int32 //enums:enum

const (
	// Idle is when no gesture is in progress.
	Idle States = iota

	// Active is when a gesture bound to an operation is in progress.
	Active
)

// Dispatcher runs the gesture session of one grabber. Events must be
// given to [Dispatcher.Handle] in arrival order, on one goroutine.
//
// An event whose shortcut resolves to an operation starts a session
// when the table has staged handlers for the event category; otherwise
// the operation is invoked once and no session starts. Following events
// resolving to the same operation run the Exec handler; a terminal
// event, or one resolving to another operation (or to none), runs the
// Flush handler and ends the session, the latter then being handled
// as if the dispatcher were idle.
type Dispatcher struct {

	// Table is the binding table consulted for every event.
	Table *bindings.Table

	current  actions.Ref
	category events.Categories
	active   bool
}

// NewDispatcher returns a dispatcher using the given table.
func NewDispatcher(tb *bindings.Table) *Dispatcher {
	return &Dispatcher{Table: tb}
}

// State returns the current state.
func (d *Dispatcher) State() States {
	if d.active {
		return Active
	}
	return Idle
}

// Current returns the operation of the gesture in progress, if any.
func (d *Dispatcher) Current() (actions.Ref, bool) {
	return d.current, d.active
}

// Category returns the event category that started the gesture in progress.
func (d *Dispatcher) Category() events.Categories {
	return d.category
}

// Reset ends any gesture in progress without running its Flush handler.
func (d *Dispatcher) Reset() {
	d.current = actions.Ref{}
	d.category = events.UnknownCategory
	d.active = false
}

// Handle dispatches the event, passing the grabber to external
// operations. It returns whether the event was consumed: an ignored
// event is not, and otherwise the result of the Init or Exec handler
// or flat operation that ran is returned. Operation failures never
// change the transitions, which only depend on binding lookups.
func (d *Dispatcher) Handle(grabber any, ev *events.Event) bool {
	ref, bound := d.Table.Lookup(ev.Shortcut)
	if d.active {
		if ev.Terminal {
			d.flush(grabber, ev)
			return true
		}
		if bound && ref.Equal(d.current) {
			return d.exec(grabber, ev)
		}
		d.flush(grabber, ev)
	} else if ev.Terminal {
		return false
	}
	if !bound {
		return false
	}
	return d.begin(grabber, ref, ev)
}

// begin handles a bound, non-terminal event while idle.
func (d *Dispatcher) begin(grabber any, ref actions.Ref, ev *events.Event) bool {
	if !d.Table.IsStaged(ev.Category) {
		slog.Debug("gesture: flat invocation", "action", ref.Name, "event", ev)
		return ref.Invoke(grabber, ev)
	}
	d.current = ref
	d.category = ev.Category
	d.active = true
	slog.Debug("gesture: init", "action", ref.Name, "event", ev)
	if h, ok := d.Table.StageHandler(bindings.Init, ev.Category); ok {
		return h.Invoke(grabber, ev)
	}
	return true
}

// exec handles a non-terminal event resolving to the current operation.
func (d *Dispatcher) exec(grabber any, ev *events.Event) bool {
	if !d.Table.IsStaged(ev.Category) {
		return d.current.Invoke(grabber, ev)
	}
	if h, ok := d.Table.StageHandler(bindings.Exec, ev.Category); ok {
		return h.Invoke(grabber, ev)
	}
	return true
}

// flush runs the Flush handler of the session category and goes idle.
// The session is still current while the handler runs.
func (d *Dispatcher) flush(grabber any, ev *events.Event) {
	slog.Debug("gesture: flush", "action", d.current.Name, "event", ev)
	if h, ok := d.Table.StageHandler(bindings.Flush, d.category); ok {
		h.Invoke(grabber, ev)
	}
	d.Reset()
}
