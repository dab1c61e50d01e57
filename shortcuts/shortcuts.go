// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package shortcuts provides the identity of an input trigger:
// which key (with modifiers), which button clicked how many times,
// or which motion device produced an event.
package shortcuts

//go:generate core generate

import (
	"fmt"
	"strconv"
	"strings"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/events"
	"cogentcore.org/core/events/key"
)

// Kinds are the kinds of [Shortcut].
type Kinds int32 //enums:enum -trim-prefix Kind

const (
	// NoKind is the zero value, an invalid shortcut.
	NoKind Kinds = iota

	// KindKey is a key code with a modifier mask.
	KindKey

	// KindClick is a device button pressed a number of times.
	KindClick

	// KindMotion is a motion of a device (drag, wheel, space navigator).
	KindMotion
)

// Devices identify an input device, or the button of a device,
// that produces click and motion events.
type Devices int32 //enums:enum

const (
	NoDevice Devices = iota

	// Left is the left mouse button.
	Left

	// Middle is the middle mouse button.
	Middle

	// Right is the right mouse button.
	Right

	// Wheel is the mouse scroll wheel.
	Wheel

	// Pointer is the pointer moving with no button down.
	Pointer

	// Touch is a touch surface contact.
	Touch

	// SpaceNav is a six degrees of freedom navigation device.
	SpaceNav
)

// FromButton returns the device for the given mouse button.
func FromButton(but events.Buttons) Devices {
	switch but {
	case events.Left:
		return Left
	case events.Middle:
		return Middle
	case events.Right:
		return Right
	}
	return Pointer
}

// Shortcut identifies what produced an event. It is a comparable
// value, so it can be used directly as a map key, and two shortcuts
// are equal when all of their fields are equal.
type Shortcut struct {

	// Kind is the kind of shortcut, which determines the relevant fields.
	Kind Kinds

	// Code is the key code, for [KindKey].
	Code key.Codes

	// Mods are the key modifiers, for [KindKey].
	Mods key.Modifiers

	// Device is the device, for [KindClick] and [KindMotion].
	Device Devices

	// Clicks is the number of clicks, for [KindClick].
	Clicks int
}

// Key returns a key shortcut for the given code and modifiers.
func Key(code key.Codes, mods ...key.Modifiers) Shortcut {
	sc := Shortcut{Kind: KindKey, Code: code}
	for _, m := range mods {
		sc.Mods.SetFlag(true, m)
	}
	return sc
}

// Click returns a click shortcut for the given device and click count.
func Click(dev Devices, clicks int) Shortcut {
	return Shortcut{Kind: KindClick, Device: dev, Clicks: clicks}
}

// Motion returns a motion shortcut for the given device.
func Motion(dev Devices) Shortcut {
	return Shortcut{Kind: KindMotion, Device: dev}
}

// modifierNames lists the modifiers in the order they are written.
var modifierNames = []struct {
	mod  key.Modifiers
	name string
}{
	{key.Shift, "Shift"},
	{key.Control, "Control"},
	{key.Alt, "Alt"},
	{key.Meta, "Meta"},
}

// Validate returns an error if the shortcut is malformed.
func (sc Shortcut) Validate() error {
	switch sc.Kind {
	case KindKey:
		if sc.Code == key.CodeUnknown {
			return errors.New("shortcuts: key shortcut has no key code")
		}
		if sc.Device != NoDevice || sc.Clicks != 0 {
			return fmt.Errorf("shortcuts: key shortcut %v has device fields set", sc.Code)
		}
	case KindClick:
		if sc.Device == NoDevice {
			return errors.New("shortcuts: click shortcut has no device")
		}
		if sc.Clicks < 1 {
			return fmt.Errorf("shortcuts: click shortcut has invalid click count %d", sc.Clicks)
		}
		if sc.Code != key.CodeUnknown || sc.Mods != 0 {
			return errors.New("shortcuts: click shortcut has key fields set")
		}
	case KindMotion:
		if sc.Device == NoDevice {
			return errors.New("shortcuts: motion shortcut has no device")
		}
		if sc.Clicks != 0 || sc.Code != key.CodeUnknown || sc.Mods != 0 {
			return errors.New("shortcuts: motion shortcut has click or key fields set")
		}
	default:
		return fmt.Errorf("shortcuts: invalid shortcut kind %d", sc.Kind)
	}
	return nil
}

// IsValid returns whether [Shortcut.Validate] succeeds.
func (sc Shortcut) IsValid() bool {
	return sc.Validate() == nil
}

// Chord returns the modifiers and key code of a key shortcut
// in the form "Control+Shift+A" (modifiers in a fixed order).
func (sc Shortcut) Chord() string {
	var b strings.Builder
	for _, mn := range modifierNames {
		if sc.Mods.HasFlag(mn.mod) {
			b.WriteString(mn.name)
			b.WriteString("+")
		}
	}
	b.WriteString(sc.Code.String())
	return b.String()
}

// String returns the text form of the shortcut, which [Parse] reads back:
// "key:Control+A", "click:Left:2" or "motion:Right".
func (sc Shortcut) String() string {
	switch sc.Kind {
	case KindKey:
		return "key:" + sc.Chord()
	case KindClick:
		return "click:" + sc.Device.String() + ":" + strconv.Itoa(sc.Clicks)
	case KindMotion:
		return "motion:" + sc.Device.String()
	}
	return "invalid"
}

// Parse parses the text form of a shortcut, as returned by [Shortcut.String].
// A click shortcut without a count is a single click.
func Parse(s string) (Shortcut, error) {
	kind, rest, ok := strings.Cut(strings.TrimSpace(s), ":")
	if !ok || rest == "" {
		return Shortcut{}, fmt.Errorf("shortcuts: %q is not of the form kind:value", s)
	}
	var sc Shortcut
	switch strings.ToLower(kind) {
	case "key":
		sc.Kind = KindKey
		parts := strings.Split(rest, "+")
		for _, p := range parts[:len(parts)-1] {
			mod, err := parseModifier(p)
			if err != nil {
				return Shortcut{}, fmt.Errorf("shortcuts: %q: %w", s, err)
			}
			sc.Mods.SetFlag(true, mod)
		}
		if err := sc.Code.SetString(parts[len(parts)-1]); err != nil {
			return Shortcut{}, fmt.Errorf("shortcuts: %q: %w", s, err)
		}
	case "click":
		sc.Kind = KindClick
		dev, count, hasCount := strings.Cut(rest, ":")
		if err := sc.Device.SetString(dev); err != nil {
			return Shortcut{}, fmt.Errorf("shortcuts: %q: %w", s, err)
		}
		sc.Clicks = 1
		if hasCount {
			n, err := strconv.Atoi(count)
			if err != nil {
				return Shortcut{}, fmt.Errorf("shortcuts: %q: invalid click count: %w", s, err)
			}
			sc.Clicks = n
		}
	case "motion":
		sc.Kind = KindMotion
		if err := sc.Device.SetString(rest); err != nil {
			return Shortcut{}, fmt.Errorf("shortcuts: %q: %w", s, err)
		}
	default:
		return Shortcut{}, fmt.Errorf("shortcuts: %q has unknown kind %q", s, kind)
	}
	return sc, sc.Validate()
}

// MustParse is like [Parse] but panics on an error.
// It is meant for shortcuts written in source code.
func MustParse(s string) Shortcut {
	return errors.Must1(Parse(s))
}

func parseModifier(s string) (key.Modifiers, error) {
	for _, mn := range modifierNames {
		if strings.EqualFold(s, mn.name) {
			return mn.mod, nil
		}
	}
	return 0, fmt.Errorf("unknown modifier %q", s)
}
