// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bindings

import (
	"testing"

	"cogentcore.org/core/events/key"
	"cogentcore.org/interact/actions"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/shortcuts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type target struct{ name string }

func nop(ev *events.Event) bool { return true }

func allShortcuts() []shortcuts.Shortcut {
	return []shortcuts.Shortcut{
		shortcuts.Key(key.CodeA),
		shortcuts.Key(key.CodeA, key.Control),
		shortcuts.Click(shortcuts.Left, 1),
		shortcuts.Click(shortcuts.Left, 2),
		shortcuts.Motion(shortcuts.Left),
		shortcuts.Motion(shortcuts.Wheel),
		shortcuts.Motion(shortcuts.SpaceNav),
	}
}

func TestBindingRoundTrip(t *testing.T) {
	tg := &target{}
	tb := New(nil)
	for _, sc := range allShortcuts() {
		for _, name := range []string{"rotate", "translate"} {
			op := actions.New(name, tg, nop)
			require.NoError(t, tb.SetBinding(sc, op))
			got, ok := tb.Lookup(sc)
			require.True(t, ok, sc.String())
			assert.True(t, got.Equal(op))
			assert.True(t, tb.HasBinding(sc))

			tb.RemoveBinding(sc)
			_, ok = tb.Lookup(sc)
			assert.False(t, ok)
			assert.False(t, tb.HasBinding(sc))
		}
	}
}

func TestSetBindingIdempotent(t *testing.T) {
	tg := &target{}
	tb := New(nil)
	sc := shortcuts.Motion(shortcuts.Left)
	op := actions.New("rotate", tg, nop)
	require.NoError(t, tb.SetBinding(sc, op))
	require.NoError(t, tb.SetBinding(sc, op))
	assert.Equal(t, 1, tb.Len())
	assert.Equal(t, "motion:Left -> rotate\n", tb.Describe())

	// a different operation overwrites in place
	require.NoError(t, tb.SetBinding(sc, actions.New("translate", tg, nop)))
	assert.Equal(t, 1, tb.Len())
	got, _ := tb.Lookup(sc)
	assert.Equal(t, "translate", got.Name)
}

func TestSetBindingNewFunc(t *testing.T) {
	tg := &target{}
	tb := New(nil)
	sc := shortcuts.Key(key.CodeR)
	var calls []string
	first := actions.New("op", tg, func(ev *events.Event) bool { calls = append(calls, "first"); return true })
	second := actions.New("op", tg, func(ev *events.Event) bool { calls = append(calls, "second"); return true })
	require.NoError(t, tb.SetBinding(sc, first))
	require.NoError(t, tb.SetBinding(sc, second))
	assert.Equal(t, 1, tb.Len())
	got, ok := tb.Lookup(sc)
	require.True(t, ok)
	got.Invoke(nil, events.NewFromShortcut(nil, sc))
	assert.Equal(t, []string{"second"}, calls)

	require.NoError(t, tb.AddStageHandler(Exec, events.Motion2, first))
	require.NoError(t, tb.AddStageHandler(Exec, events.Motion2, second))
	h, ok := tb.StageHandler(Exec, events.Motion2)
	require.True(t, ok)
	h.Invoke(nil, events.NewMotion(events.DefaultDOFs(), shortcuts.Left, 1, 1))
	assert.Equal(t, []string{"second", "second"}, calls)
}

func TestSetBindingZeroRemoves(t *testing.T) {
	tb := New(nil)
	sc := shortcuts.Click(shortcuts.Left, 2)
	require.NoError(t, tb.SetBinding(sc, actions.New("align", &target{}, nop)))
	require.NoError(t, tb.SetBinding(sc, actions.Ref{}))
	assert.False(t, tb.HasBinding(sc))
	assert.Equal(t, 0, tb.Len())
}

func TestSetBindingMalformed(t *testing.T) {
	tb := New(nil)
	err := tb.SetBinding(shortcuts.Click(shortcuts.Left, 0), actions.New("align", &target{}, nop))
	assert.Error(t, err)
	assert.Equal(t, 0, tb.Len())
}

func TestRemoveIdempotent(t *testing.T) {
	tb := New(nil)
	sc := shortcuts.Motion(shortcuts.Right)
	require.NoError(t, tb.SetBinding(sc, actions.New("translate", &target{}, nop)))
	before := tb.Describe()
	assert.NotPanics(t, func() {
		tb.RemoveBinding(shortcuts.Motion(shortcuts.Left))
		tb.RemoveStageHandler(Exec, events.Motion3)
		tb.RemoveStageHandler(Stages(42), events.Motion3)
	})
	assert.Equal(t, before, tb.Describe())
}

func TestQueries(t *testing.T) {
	a, b := &target{name: "a"}, &target{name: "b"}
	tb := New(nil)
	require.NoError(t, tb.SetBinding(shortcuts.Motion(shortcuts.Left), actions.New("rotate", a, nop)))
	require.NoError(t, tb.SetBinding(shortcuts.Key(key.CodeR), actions.New("rotate", a, nop)))
	require.NoError(t, tb.SetBinding(shortcuts.Motion(shortcuts.Right), actions.New("translate", b, nop)))

	assert.True(t, tb.IsActionBound("rotate"))
	assert.False(t, tb.IsActionBound("scale"))
	assert.True(t, tb.IsOperationBound(a, "rotate"))
	assert.False(t, tb.IsOperationBound(b, "rotate"))
	assert.True(t, tb.IsOperationBound(b, "translate"))
	assert.Len(t, tb.ShortcutsOf("rotate"), 2)
}

func TestRemoveBindingsOfCategory(t *testing.T) {
	tg := &target{}
	tb := New(nil)
	for _, sc := range allShortcuts() {
		require.NoError(t, tb.SetBinding(sc, actions.New("op", tg, nop)))
	}
	tb.RemoveBindingsOfCategory(events.Motion2)
	assert.False(t, tb.HasBinding(shortcuts.Motion(shortcuts.Left)))
	assert.True(t, tb.HasBinding(shortcuts.Motion(shortcuts.Wheel)))
	assert.True(t, tb.HasBinding(shortcuts.Motion(shortcuts.SpaceNav)))

	tb.RemoveBindingsOfCategory(events.Key)
	assert.False(t, tb.HasBinding(shortcuts.Key(key.CodeA)))
	assert.False(t, tb.HasBinding(shortcuts.Key(key.CodeA, key.Control)))
	assert.True(t, tb.HasBinding(shortcuts.Click(shortcuts.Left, 2)))

	tb.RemoveBindings()
	assert.Equal(t, 0, tb.Len())
	require.NoError(t, tb.SetBinding(shortcuts.Motion(shortcuts.Left), actions.New("op", tg, nop)))
	assert.Equal(t, 1, tb.Len())
}

func TestStageHandlers(t *testing.T) {
	tg := &target{}
	tb := New(nil)
	assert.False(t, tb.IsStaged(events.Motion2))

	require.NoError(t, tb.AddStageHandler(Init, events.Motion2, actions.New("init", tg, nop)))
	require.NoError(t, tb.AddStageHandler(Flush, events.Motion2, actions.New("flush", tg, nop)))
	assert.True(t, tb.IsStaged(events.Motion2))
	assert.True(t, tb.HasStageHandler(Init, events.Motion2))
	assert.False(t, tb.HasStageHandler(Exec, events.Motion2))
	assert.False(t, tb.IsStaged(events.Motion1))

	// same handler again changes nothing; a new one overwrites
	require.NoError(t, tb.AddStageHandler(Init, events.Motion2, actions.New("init", tg, nop)))
	require.NoError(t, tb.AddStageHandler(Init, events.Motion2, actions.New("start", tg, nop)))
	ref, ok := tb.StageHandler(Init, events.Motion2)
	require.True(t, ok)
	assert.Equal(t, "start", ref.Name)

	require.NoError(t, tb.AddStageHandler(Init, events.Motion2, actions.Ref{}))
	assert.False(t, tb.HasStageHandler(Init, events.Motion2))

	assert.Error(t, tb.AddStageHandler(StagesN, events.Motion2, actions.New("x", tg, nop)))
	assert.Error(t, tb.AddStageHandler(Exec, events.UnknownCategory, actions.New("x", tg, nop)))

	tb.RemoveStageHandlers()
	assert.False(t, tb.IsStaged(events.Motion2))
}

func TestDescribe(t *testing.T) {
	tg := &target{}
	tb := New(nil)
	require.NoError(t, tb.SetBinding(shortcuts.Motion(shortcuts.Left), actions.New("rotate", tg, nop)))
	require.NoError(t, tb.SetBinding(shortcuts.Click(shortcuts.Left, 2), actions.New("align", tg, nop)))
	require.NoError(t, tb.SetBinding(shortcuts.Motion(shortcuts.Wheel), actions.New("scale", tg, nop)))
	require.NoError(t, tb.AddStageHandler(Exec, events.Motion2, actions.New("exec", tg, nop)))

	want := "click:Left:2 -> align\n" +
		"motion:Left -> rotate\n" +
		"motion:Wheel -> scale\n" +
		"Exec Motion2 -> exec\n"
	assert.Equal(t, want, tb.Describe())

	md := tb.MarkdownDoc()
	assert.Contains(t, md, "### Click")
	assert.Contains(t, md, "| `motion:Wheel` | scale |")
	assert.Contains(t, md, "| Motion2 |   | exec |   |")
	assert.NotContains(t, md, "### Key")
}

func TestCopyFrom(t *testing.T) {
	tg := &target{}
	src := New(nil)
	require.NoError(t, src.SetBinding(shortcuts.Motion(shortcuts.Left), actions.New("rotate", tg, nop)))
	require.NoError(t, src.AddStageHandler(Init, events.Motion2, actions.New("init", tg, nop)))

	dst := New(nil)
	require.NoError(t, dst.SetBinding(shortcuts.Motion(shortcuts.Right), actions.New("translate", tg, nop)))
	dst.CopyFrom(src)
	assert.Equal(t, src.Describe(), dst.Describe())
	assert.False(t, dst.HasBinding(shortcuts.Motion(shortcuts.Right)))

	// the copy is independent
	dst.RemoveBindings()
	assert.Equal(t, 1, src.Len())
}
