// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package actions provides [Ref], a named reference to an operation
// that a grabber (or an external object acting on a grabber) performs
// in response to an input event.
package actions

import (
	"fmt"
	"log/slog"
	"reflect"

	"cogentcore.org/interact/events"
)

// Func is an operation performed by the target object itself.
// It returns whether it consumed the event.
type Func func(ev *events.Event) bool

// ExternalFunc is an operation performed by an external object,
// which receives the grabber the event was delivered to.
// It returns whether it consumed the event.
type ExternalFunc func(grabber any, ev *events.Event) bool

// Ref is a reference to an operation together with the identity of the
// object performing it. The engine never owns the target: it only
// compares it and passes events to the operation.
// The zero Ref refers to no operation.
type Ref struct {

	// Name is the operation name, unique within a target. Together with
	// Target it is the identity of the operation, see [Ref.Equal].
	Name string

	// Target is the identity of the object performing the operation,
	// typically a pointer. It must be comparable. Pointers to distinct
	// zero-size values may compare equal, so targets should have a size.
	Target any

	fun Func
	ext ExternalFunc
}

// New returns a Ref to an operation that the target performs itself.
func New(name string, target any, fun Func) Ref {
	return Ref{Name: name, Target: target, fun: fun}
}

// NewExternal returns a Ref to an operation that the target performs
// on the grabber that receives the event.
func NewExternal(name string, target any, fun ExternalFunc) Ref {
	return Ref{Name: name, Target: target, ext: fun}
}

// IsZero returns whether the Ref refers to no operation.
func (r Ref) IsZero() bool {
	return r.fun == nil && r.ext == nil
}

// IsExternal returns whether the operation is performed by an external
// object that receives the grabber as a parameter.
func (r Ref) IsExternal() bool {
	return r.ext != nil
}

// Equal returns whether both refer to the same operation of the same
// target, that is the same name and target. The functions are not
// compared, see [Ref.SameFunc].
func (r Ref) Equal(o Ref) bool {
	return r.Name == o.Name && r.IsZero() == o.IsZero() && sameTarget(r.Target, o.Target)
}

// SameFunc returns whether both call the same function code. Closures
// made by the same function literal share their code, so they are the
// same for SameFunc even when they capture different values.
func (r Ref) SameFunc(o Ref) bool {
	return reflect.ValueOf(r.fun).Pointer() == reflect.ValueOf(o.fun).Pointer() &&
		reflect.ValueOf(r.ext).Pointer() == reflect.ValueOf(o.ext).Pointer()
}

// Is returns whether the Ref refers to the named operation of the given target.
func (r Ref) Is(target any, name string) bool {
	return r.Name == name && sameTarget(r.Target, target)
}

func sameTarget(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb || !ta.Comparable() {
		return false
	}
	return a == b
}

// Invoke calls the operation with the given event, passing the grabber
// to external operations. A failing call (a missing grabber for an
// external operation, or a panic inside the operation) is logged with
// the operation name and reported as not consuming the event; it never
// propagates to the caller.
func (r Ref) Invoke(grabber any, ev *events.Event) (consumed bool) {
	defer func() {
		if rec := recover(); rec != nil {
			slog.Error("actions: operation failed", "action", r.Name, "event", ev, "panic", rec)
			consumed = false
		}
	}()
	switch {
	case r.fun != nil:
		return r.fun(ev)
	case r.ext != nil:
		if grabber == nil {
			slog.Error("actions: external operation invoked without a grabber", "action", r.Name)
			return false
		}
		return r.ext(grabber, ev)
	}
	slog.Error("actions: invoked a reference to no operation", "action", r.Name)
	return false
}

func (r Ref) String() string {
	if r.IsZero() {
		return "<none>"
	}
	if r.Target == nil {
		return r.Name
	}
	return fmt.Sprintf("%s (%T)", r.Name, r.Target)
}
