// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package bindings provides the binding [Table] of a grabber: flat
// bindings from a shortcut to an operation, and staged handlers that
// run at the Init, Exec and Flush stages of a gesture of a given
// event category.
package bindings

//go:generate core generate

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/base/ordmap"
	"cogentcore.org/interact/actions"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/shortcuts"
)

// Stages are the three stages (tempi) of a multi-event gesture.
type Stages int32 //enums:enum

const (
	// Init runs on the first event of a gesture.
	Init Stages = iota

	// Exec runs on each following event of the same gesture.
	Exec

	// Flush runs when the gesture ends, on a terminal event or when
	// an event resolves to a different operation.
	Flush
)

// Table maps shortcuts to operations (flat bindings), and event
// categories to the handlers of each gesture stage. It holds at most
// one operation per shortcut and per (stage, category) pair; binding
// over an existing entry overwrites it. Iteration follows insertion order.
type Table struct {

	// DOFs gives the event category of motion shortcuts.
	DOFs events.DOFMap

	flat   *ordmap.Map[shortcuts.Shortcut, actions.Ref]
	staged [StagesN]*ordmap.Map[events.Categories, actions.Ref]
}

// New returns a new empty table using the given degrees of freedom
// configuration, or [events.DefaultDOFs] if it is nil.
func New(dofs events.DOFMap) *Table {
	if dofs == nil {
		dofs = events.DefaultDOFs()
	}
	tb := &Table{DOFs: dofs, flat: ordmap.New[shortcuts.Shortcut, actions.Ref]()}
	for i := range tb.staged {
		tb.staged[i] = ordmap.New[events.Categories, actions.Ref]()
	}
	return tb
}

// SetBinding binds the shortcut to the operation. A zero ref removes
// the binding instead. Binding the operation already bound (same name,
// target and function) leaves the table unchanged; binding another
// operation overwrites the previous one, including a new function
// under the name already bound. Both cases are reported as notices.
// It returns an error only for a malformed shortcut.
func (tb *Table) SetBinding(sc shortcuts.Shortcut, ref actions.Ref) error {
	if err := sc.Validate(); err != nil {
		return fmt.Errorf("bindings: SetBinding: %w", err)
	}
	if ref.IsZero() {
		tb.RemoveBinding(sc)
		return nil
	}
	if old, has := tb.flat.ValueByKeyTry(sc); has {
		if old.Equal(ref) && old.SameFunc(ref) {
			slog.Info("bindings: already bound", "shortcut", sc, "action", ref.Name)
			return nil
		}
		slog.Warn("bindings: binding overwritten", "shortcut", sc, "old", old.Name, "new", ref.Name)
	}
	tb.flat.Add(sc, ref)
	return nil
}

// RemoveBinding removes the binding of the shortcut, if any.
func (tb *Table) RemoveBinding(sc shortcuts.Shortcut) {
	tb.flat.DeleteKey(sc)
}

// RemoveBindings removes all flat bindings. Staged handlers are kept.
func (tb *Table) RemoveBindings() {
	tb.flat.Reset()
	tb.flat.Init()
}

// RemoveBindingsOfCategory removes the flat bindings of all shortcuts
// producing events of the given category.
func (tb *Table) RemoveBindingsOfCategory(cat events.Categories) {
	for _, sc := range tb.flat.Keys() {
		if tb.DOFs.Category(sc) == cat {
			tb.flat.DeleteKey(sc)
		}
	}
}

// Lookup returns the operation bound to the shortcut.
func (tb *Table) Lookup(sc shortcuts.Shortcut) (actions.Ref, bool) {
	return tb.flat.ValueByKeyTry(sc)
}

// HasBinding returns whether the shortcut is bound.
func (tb *Table) HasBinding(sc shortcuts.Shortcut) bool {
	_, ok := tb.flat.ValueByKeyTry(sc)
	return ok
}

// IsActionBound returns whether any shortcut is bound to an
// operation with the given name.
func (tb *Table) IsActionBound(name string) bool {
	for _, kv := range tb.flat.Order {
		if kv.Value.Name == name {
			return true
		}
	}
	return false
}

// IsOperationBound returns whether any shortcut is bound to the named
// operation of the given target.
func (tb *Table) IsOperationBound(target any, name string) bool {
	for _, kv := range tb.flat.Order {
		if kv.Value.Is(target, name) {
			return true
		}
	}
	return false
}

// Shortcuts returns the bound shortcuts, in insertion order.
func (tb *Table) Shortcuts() []shortcuts.Shortcut {
	return tb.flat.Keys()
}

// ShortcutsOf returns the shortcuts bound to operations with the
// given name, in insertion order.
func (tb *Table) ShortcutsOf(name string) []shortcuts.Shortcut {
	var scs []shortcuts.Shortcut
	for _, kv := range tb.flat.Order {
		if kv.Value.Name == name {
			scs = append(scs, kv.Key)
		}
	}
	return scs
}

// Len returns the number of flat bindings.
func (tb *Table) Len() int {
	return tb.flat.Len()
}

// AddStageHandler sets the handler of the given stage for events of the
// given category, with the same overwrite and removal rules as
// [Table.SetBinding]. It returns an error for an invalid stage or category.
func (tb *Table) AddStageHandler(stage Stages, cat events.Categories, ref actions.Ref) error {
	if stage < Init || stage >= StagesN {
		return fmt.Errorf("bindings: AddStageHandler: invalid stage %d", stage)
	}
	if cat <= events.UnknownCategory || cat >= events.CategoriesN {
		return fmt.Errorf("bindings: AddStageHandler: invalid category %d", cat)
	}
	if ref.IsZero() {
		tb.RemoveStageHandler(stage, cat)
		return nil
	}
	sm := tb.staged[stage]
	if old, has := sm.ValueByKeyTry(cat); has {
		if old.Equal(ref) && old.SameFunc(ref) {
			slog.Info("bindings: stage handler already set", "stage", stage, "category", cat, "action", ref.Name)
			return nil
		}
		slog.Warn("bindings: stage handler overwritten", "stage", stage, "category", cat, "old", old.Name, "new", ref.Name)
	}
	sm.Add(cat, ref)
	return nil
}

// RemoveStageHandler removes the handler of the given stage and category, if any.
func (tb *Table) RemoveStageHandler(stage Stages, cat events.Categories) {
	if stage < Init || stage >= StagesN {
		return
	}
	tb.staged[stage].DeleteKey(cat)
}

// RemoveStageHandlers removes all staged handlers.
func (tb *Table) RemoveStageHandlers() {
	for _, sm := range tb.staged {
		sm.Reset()
		sm.Init()
	}
}

// HasStageHandler returns whether a handler is set for the given stage and category.
func (tb *Table) HasStageHandler(stage Stages, cat events.Categories) bool {
	_, ok := tb.StageHandler(stage, cat)
	return ok
}

// StageHandler returns the handler of the given stage and category.
func (tb *Table) StageHandler(stage Stages, cat events.Categories) (actions.Ref, bool) {
	if stage < Init || stage >= StagesN {
		return actions.Ref{}, false
	}
	return tb.staged[stage].ValueByKeyTry(cat)
}

// IsStaged returns whether any stage has a handler for the category,
// in which case events of that category drive the staged protocol
// instead of flat single-shot invocation.
func (tb *Table) IsStaged(cat events.Categories) bool {
	for st := Init; st < StagesN; st++ {
		if tb.HasStageHandler(st, cat) {
			return true
		}
	}
	return false
}

// CopyFrom replaces the contents of the table with those of the other
// table. The operation refs are shared, not their targets.
func (tb *Table) CopyFrom(o *Table) {
	tb.DOFs = o.DOFs
	tb.RemoveBindings()
	for _, kv := range o.flat.Order {
		tb.flat.Add(kv.Key, kv.Value)
	}
	tb.RemoveStageHandlers()
	for st, sm := range o.staged {
		for _, kv := range sm.Order {
			tb.staged[st].Add(kv.Key, kv.Value)
		}
	}
}
