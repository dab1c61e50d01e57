// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package profile provides binding profiles: the bindings, staged
// handlers and momentum settings of a grabber, stored in TOML or YAML
// files, and applied to a binding table by operation name.
package profile

//go:generate core generate

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/reflectx"
	"cogentcore.org/interact/actions"
	"cogentcore.org/interact/bindings"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/shortcuts"
	"github.com/jinzhu/copier"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Formats are the file formats of profiles.
type Formats int32 //enums:enum

const (
	// TOML is the TOML format, for .toml files.
	TOML Formats = iota

	// YAML is the YAML format, for .yaml and .yml files.
	YAML
)

// FormatOf returns the format of the given file name from its extension.
func FormatOf(filename string) (Formats, error) {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".toml":
		return TOML, nil
	case ".yaml", ".yml":
		return YAML, nil
	}
	return TOML, fmt.Errorf("profile: unknown format for file %q", filename)
}

// Profile is a named set of bindings, staged handlers and momentum
// settings.
type Profile struct {

	// Name is the name of the profile.
	Name string `toml:"name" yaml:"name" default:"default"`

	// Damping is the damping of the momentum engines.
	Damping float32 `toml:"damping" yaml:"damping" default:"0.5"`

	// Sensitivity is the sensitivity of the momentum engines.
	Sensitivity float32 `toml:"sensitivity" yaml:"sensitivity" default:"0.3"`

	// Bindings are the flat bindings, in order.
	Bindings []Binding `toml:"bindings" yaml:"bindings"`

	// Stages are the staged handlers, in order.
	Stages []Stage `toml:"stages" yaml:"stages"`
}

// Binding binds a shortcut, in the text form of [shortcuts.Shortcut],
// to an operation name.
type Binding struct {
	Shortcut string `toml:"shortcut" yaml:"shortcut"`
	Action   string `toml:"action" yaml:"action"`
}

// Stage sets the handler of a stage for an event category.
type Stage struct {
	Stage    string `toml:"stage" yaml:"stage"`
	Category string `toml:"category" yaml:"category"`
	Action   string `toml:"action" yaml:"action"`
}

// New returns a new empty profile with default settings.
func New() *Profile {
	p := &Profile{}
	errors.Log(reflectx.SetFromDefaultTags(p))
	return p
}

// Open reads the profile from the given file, in the format given by
// its extension.
func Open(filename string) (*Profile, error) {
	format, err := FormatOf(filename)
	if err != nil {
		return nil, err
	}
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	p, err := Decode(f, format)
	if err != nil {
		return nil, fmt.Errorf("profile: %s: %w", filename, err)
	}
	return p, nil
}

// Decode reads a profile in the given format. Settings missing from
// the input keep their defaults.
func Decode(r io.Reader, format Formats) (*Profile, error) {
	p := New()
	var err error
	switch format {
	case YAML:
		err = yaml.NewDecoder(r).Decode(p)
		if err == io.EOF {
			err = nil
		}
	default:
		err = toml.NewDecoder(r).Decode(p)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Save writes the profile to the given file, in the format given by
// its extension.
func (p *Profile) Save(filename string) error {
	format, err := FormatOf(filename)
	if err != nil {
		return err
	}
	var b bytes.Buffer
	if err := p.Encode(&b, format); err != nil {
		return err
	}
	return os.WriteFile(filename, b.Bytes(), 0666)
}

// Encode writes the profile in the given format.
func (p *Profile) Encode(w io.Writer, format Formats) error {
	switch format {
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(p); err != nil {
			return err
		}
		return enc.Close()
	default:
		return toml.NewEncoder(w).Encode(p)
	}
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	cp := &Profile{}
	errors.Log(copier.CopyWithOption(cp, p, copier.Option{DeepCopy: true}))
	return cp
}

// Bind appends a binding of the given shortcut to the given operation.
func (p *Profile) Bind(sc shortcuts.Shortcut, action string) {
	p.Bindings = append(p.Bindings, Binding{Shortcut: sc.String(), Action: action})
}

// SetStage appends a staged handler of the given stage and category.
func (p *Profile) SetStage(stage bindings.Stages, cat events.Categories, action string) {
	p.Stages = append(p.Stages, Stage{Stage: stage.String(), Category: cat.String(), Action: action})
}

// Apply replaces the bindings and staged handlers of the table with
// those of the profile, resolving operation names in the registry.
// Every invalid entry is skipped, and reported in the returned error.
func (p *Profile) Apply(tb *bindings.Table, reg *actions.Registry) error {
	tb.RemoveBindings()
	tb.RemoveStageHandlers()
	var errs []error
	for i, bd := range p.Bindings {
		sc, err := shortcuts.Parse(bd.Shortcut)
		if err != nil {
			errs = append(errs, fmt.Errorf("binding %d: %w", i, err))
			continue
		}
		ref, err := reg.Ref(bd.Action)
		if err != nil {
			errs = append(errs, fmt.Errorf("binding %d (%s): %w", i, bd.Shortcut, err))
			continue
		}
		if err := tb.SetBinding(sc, ref); err != nil {
			errs = append(errs, fmt.Errorf("binding %d: %w", i, err))
		}
	}
	for i, sg := range p.Stages {
		var stage bindings.Stages
		if err := stage.SetString(sg.Stage); err != nil {
			errs = append(errs, fmt.Errorf("stage %d: %w", i, err))
			continue
		}
		var cat events.Categories
		if err := cat.SetString(sg.Category); err != nil {
			errs = append(errs, fmt.Errorf("stage %d: %w", i, err))
			continue
		}
		ref, err := reg.Ref(sg.Action)
		if err != nil {
			errs = append(errs, fmt.Errorf("stage %d (%s %s): %w", i, sg.Stage, sg.Category, err))
			continue
		}
		if err := tb.AddStageHandler(stage, cat, ref); err != nil {
			errs = append(errs, fmt.Errorf("stage %d: %w", i, err))
		}
	}
	return errors.Join(errs...)
}

// Target is a grabber that a profile can be applied to, such as
// [frames.Frame] and [frames.Camera].
type Target interface {
	BindingTable() *bindings.Table
	Actions() *actions.Registry
	SetDamping(f float32)
	SetSensitivity(f float32)
}

// ApplyTo applies the bindings and momentum settings of the profile
// to the given target.
func (p *Profile) ApplyTo(t Target) error {
	t.SetDamping(p.Damping)
	t.SetSensitivity(p.Sensitivity)
	return p.Apply(t.BindingTable(), t.Actions())
}

// FromTable returns a profile with the given name holding the bindings
// and staged handlers of the table, and default settings.
func FromTable(name string, tb *bindings.Table) *Profile {
	p := New()
	p.Name = name
	for _, sc := range tb.Shortcuts() {
		ref, _ := tb.Lookup(sc)
		p.Bind(sc, ref.Name)
	}
	for _, st := range bindings.StagesValues() {
		for _, cat := range events.CategoriesValues() {
			if ref, ok := tb.StageHandler(st, cat); ok {
				p.SetStage(st, cat, ref.Name)
			}
		}
	}
	return p
}
