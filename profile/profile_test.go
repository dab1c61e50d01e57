// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"cogentcore.org/interact/bindings"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/frames"
	"cogentcore.org/interact/momentum"
	"cogentcore.org/interact/shortcuts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const frameTOML = `
name = "frame"
damping = 0.25

[[bindings]]
shortcut = "motion:Left"
action = "translate"

[[bindings]]
shortcut = "click:Middle:2"
action = "center"

[[stages]]
stage = "Init"
category = "Motion2"
action = "init"

[[stages]]
stage = "Exec"
category = "Motion2"
action = "exec"

[[stages]]
stage = "Flush"
category = "Motion2"
action = "flush"
`

const frameYAML = `
name: frame
sensitivity: 0.1
bindings:
  - shortcut: motion:Right
    action: rotate
stages:
  - stage: Exec
    category: Motion2
    action: exec
`

func TestDefaults(t *testing.T) {
	p := New()
	assert.Equal(t, "default", p.Name)
	assert.Equal(t, float32(0.5), p.Damping)
	assert.Equal(t, float32(0.3), p.Sensitivity)
	assert.Empty(t, p.Bindings)
}

func TestDecodeTOML(t *testing.T) {
	p, err := Decode(strings.NewReader(frameTOML), TOML)
	require.NoError(t, err)
	assert.Equal(t, "frame", p.Name)
	assert.Equal(t, float32(0.25), p.Damping)
	assert.Equal(t, float32(0.3), p.Sensitivity)
	require.Len(t, p.Bindings, 2)
	assert.Equal(t, Binding{Shortcut: "click:Middle:2", Action: "center"}, p.Bindings[1])
	require.Len(t, p.Stages, 3)
	assert.Equal(t, Stage{Stage: "Flush", Category: "Motion2", Action: "flush"}, p.Stages[2])

	_, err = Decode(strings.NewReader("name = "), TOML)
	assert.Error(t, err)
}

func TestDecodeYAML(t *testing.T) {
	p, err := Decode(strings.NewReader(frameYAML), YAML)
	require.NoError(t, err)
	assert.Equal(t, "frame", p.Name)
	assert.Equal(t, float32(0.5), p.Damping)
	assert.Equal(t, float32(0.1), p.Sensitivity)
	assert.Equal(t, []Binding{{Shortcut: "motion:Right", Action: "rotate"}}, p.Bindings)

	p, err = Decode(strings.NewReader(""), YAML)
	require.NoError(t, err)
	assert.Equal(t, "default", p.Name)
}

func TestFormatOf(t *testing.T) {
	f, err := FormatOf("a/b.TOML")
	assert.NoError(t, err)
	assert.Equal(t, TOML, f)
	f, err = FormatOf("b.yml")
	assert.NoError(t, err)
	assert.Equal(t, YAML, f)
	_, err = FormatOf("b.json")
	assert.Error(t, err)
}

func TestSaveOpen(t *testing.T) {
	dir := t.TempDir()
	p, err := Decode(strings.NewReader(frameTOML), TOML)
	require.NoError(t, err)
	for _, name := range []string{"frame.toml", "frame.yaml"} {
		fn := filepath.Join(dir, name)
		require.NoError(t, p.Save(fn))
		op, err := Open(fn)
		require.NoError(t, err, name)
		assert.Equal(t, p, op, name)
	}
	_, err = Open(filepath.Join(dir, "missing.toml"))
	assert.Error(t, err)
	assert.Error(t, p.Save(filepath.Join(dir, "frame.txt")))
}

func TestClone(t *testing.T) {
	p, err := Decode(strings.NewReader(frameTOML), TOML)
	require.NoError(t, err)
	cp := p.Clone()
	assert.Equal(t, p, cp)
	cp.Bindings[0].Action = "rotate"
	cp.Stages = cp.Stages[:1]
	assert.Equal(t, "translate", p.Bindings[0].Action)
	assert.Len(t, p.Stages, 3)
}

func TestApplyTo(t *testing.T) {
	fr := frames.NewFrame(&momentum.Loop{}, nil)
	p, err := Decode(strings.NewReader(frameTOML), TOML)
	require.NoError(t, err)
	require.NoError(t, p.ApplyTo(fr))

	tb := fr.Bindings
	assert.Equal(t, 2, tb.Len())
	ref, ok := tb.Lookup(shortcuts.Motion(shortcuts.Left))
	require.True(t, ok)
	assert.Equal(t, frames.Translate, ref.Name)
	assert.True(t, tb.HasBinding(shortcuts.Click(shortcuts.Middle, 2)))
	assert.True(t, tb.HasStageHandler(bindings.Flush, events.Motion2))
	assert.Equal(t, float32(0.25), fr.Spin.Damping())
	assert.Equal(t, float32(0.25), fr.Toss.Damping())

	// the left drag now translates
	ev := events.NewMotion(events.DefaultDOFs(), shortcuts.Left, 100, 0)
	fr.Handle(ev)
	assert.InDelta(t, 1, fr.Pose.Pos.X, 1e-5)
}

func TestApplyErrors(t *testing.T) {
	fr := frames.NewFrame(&momentum.Loop{}, nil)
	p := New()
	p.Bindings = []Binding{
		{Shortcut: "motion:Left", Action: "rotate"},
		{Shortcut: "click:Left:0", Action: "align"},
		{Shortcut: "motion:Right", Action: "rotat"},
		{Shortcut: "key:Spacebar", Action: "nope"},
	}
	p.Stages = []Stage{
		{Stage: "Exec", Category: "Motion2", Action: "exec"},
		{Stage: "Later", Category: "Motion2", Action: "exec"},
		{Stage: "Exec", Category: "Motion9", Action: "exec"},
	}
	err := p.ApplyTo(fr)
	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "binding 1")
	assert.Contains(t, msg, `did you mean "rotate"?`)
	assert.Contains(t, msg, "binding 3")
	assert.Contains(t, msg, "stage 1")
	assert.Contains(t, msg, "stage 2")

	// valid entries are applied
	assert.Equal(t, 1, fr.Bindings.Len())
	assert.True(t, fr.Bindings.HasStageHandler(bindings.Exec, events.Motion2))
}

func TestFromTable(t *testing.T) {
	fr := frames.NewFrame(&momentum.Loop{}, nil)
	p := FromTable("frame", fr.Bindings)
	assert.Equal(t, "frame", p.Name)
	assert.Len(t, p.Bindings, 6)
	assert.Equal(t, Binding{Shortcut: "motion:Left", Action: frames.Rotate}, p.Bindings[0])
	assert.Equal(t, []Stage{
		{Stage: "Init", Category: "Motion2", Action: frames.InitStage},
		{Stage: "Exec", Category: "Motion2", Action: frames.ExecStage},
		{Stage: "Flush", Category: "Motion2", Action: frames.FlushStage},
	}, p.Stages)

	// applying it to another frame gives the same table
	other := frames.NewFrame(&momentum.Loop{}, nil)
	other.Bindings.RemoveBindings()
	require.NoError(t, p.ApplyTo(other))
	assert.Equal(t, fr.Bindings.Describe(), other.Bindings.Describe())
}

func TestWatcher(t *testing.T) {
	dir := t.TempDir()
	fn := filepath.Join(dir, "frame.toml")
	require.NoError(t, New().Save(fn))

	w, err := Watch(fn)
	require.NoError(t, err)
	defer w.Close()
	assert.Equal(t, fn, w.Filename())

	require.NoError(t, os.WriteFile(fn, []byte(frameTOML), 0666))
	timeout := time.After(5 * time.Second)
	for {
		select {
		case p := <-w.Updates:
			if p.Name != "frame" {
				continue
			}
			assert.Len(t, p.Bindings, 2)
			assert.NoError(t, w.Close())
			return
		case err := <-w.Errors:
			// a partially written file can fail to parse
			t.Log(err)
		case <-timeout:
			t.Fatal("no profile update")
		}
	}
}
