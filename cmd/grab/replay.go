// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/math32"
	"cogentcore.org/interact/agent"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/momentum"
	"cogentcore.org/interact/shortcuts"
	"github.com/mattn/go-shellwords"
)

// DefaultDelay is the delay between drag events of a replay script
// when none is given.
var DefaultDelay = 16 * time.Millisecond

// Replayer replays scripts of input events on a grabber. Each line of a
// script is one of:
//
//	drag <device> <dx> <dy> [delay]
//	release <device>
//	click <device> <count> [x y]
//	key <chord>
//	wheel <delta>
//	tick [n]
//	pose
//
// Blank lines and lines starting with # are ignored. Drags and ticks
// advance the script clock, which drives the momentum loop, and events
// go through an agent so that their speed is computed from that clock.
type Replayer struct {

	// Agent routes the events to the grabber.
	Agent *agent.Agent

	// Loop is the momentum loop of the grabber.
	Loop *momentum.Loop

	// Out receives the poses printed by the script.
	Out io.Writer

	// DOFs are the degrees of freedom of the devices.
	DOFs events.DOFMap

	tg  target
	now time.Time
}

// NewReplayer returns a replayer driving the given grabber, whose
// momentum engines tick on the given loop.
func NewReplayer(tg target, lp *momentum.Loop, out io.Writer) *Replayer {
	rp := &Replayer{Agent: agent.New(), Loop: lp, Out: out, DOFs: events.DefaultDOFs(), tg: tg}
	errors.Log(rp.Agent.SetDefaultGrabber(rp.Agent.Add(tg)))
	rp.now = time.Unix(0, 0)
	return rp
}

// Run runs the script read from r, stopping at the first invalid line.
func (rp *Replayer) Run(r io.Reader) error {
	sc := bufio.NewScanner(r)
	ln := 0
	for sc.Scan() {
		ln++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		args, err := shellwords.Parse(line)
		if err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
		if err := rp.Exec(args...); err != nil {
			return fmt.Errorf("line %d: %w", ln, err)
		}
	}
	return sc.Err()
}

// Exec runs one script command.
func (rp *Replayer) Exec(args ...string) error {
	if len(args) == 0 {
		return nil
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "drag":
		if len(args) < 3 || len(args) > 4 {
			return errors.New("usage: drag <device> <dx> <dy> [delay]")
		}
		dev, err := parseDevice(args[0])
		if err != nil {
			return err
		}
		d, err := parseFloats(args[1:3]...)
		if err != nil {
			return err
		}
		delay := DefaultDelay
		if len(args) == 4 {
			if delay, err = time.ParseDuration(args[3]); err != nil {
				return err
			}
		}
		rp.advance(delay)
		rp.send(events.NewMotion(rp.DOFs, dev, d...))
	case "release":
		if len(args) != 1 {
			return errors.New("usage: release <device>")
		}
		dev, err := parseDevice(args[0])
		if err != nil {
			return err
		}
		rp.send(events.NewRelease(rp.DOFs, dev))
	case "click":
		if len(args) != 2 && len(args) != 4 {
			return errors.New("usage: click <device> <count> [x y]")
		}
		sc, err := shortcuts.Parse("click:" + args[0] + ":" + args[1])
		if err != nil {
			return err
		}
		var pos math32.Vector2
		if len(args) == 4 {
			xy, err := parseFloats(args[2:]...)
			if err != nil {
				return err
			}
			pos = math32.Vec2(xy[0], xy[1])
		}
		rp.send(events.NewClick(sc.Device, sc.Clicks, pos))
	case "key":
		if len(args) != 1 {
			return errors.New("usage: key <chord>")
		}
		sc, err := shortcuts.Parse("key:" + args[0])
		if err != nil {
			return err
		}
		rp.send(events.NewFromShortcut(rp.DOFs, sc))
	case "wheel":
		if len(args) != 1 {
			return errors.New("usage: wheel <delta>")
		}
		d, err := parseFloats(args[0])
		if err != nil {
			return err
		}
		rp.send(events.NewMotion(rp.DOFs, shortcuts.Wheel, d...))
	case "tick":
		n := 1
		if len(args) == 1 {
			var err error
			if n, err = strconv.Atoi(args[0]); err != nil {
				return err
			}
		}
		for range n {
			rp.advance(momentum.DefaultPeriod)
		}
	case "pose":
		fmt.Fprintln(rp.Out, poseOf(rp.tg))
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}
	return nil
}

// advance moves the script clock and the momentum loop forward.
func (rp *Replayer) advance(dt time.Duration) {
	rp.now = rp.now.Add(dt)
	rp.Loop.Advance(dt)
}

// send handles the event at the current script time.
func (rp *Replayer) send(ev *events.Event) {
	ev.Time = rp.now
	rp.Agent.Send(ev)
	rp.Agent.ProcessEvents()
}

func parseDevice(s string) (shortcuts.Devices, error) {
	var dev shortcuts.Devices
	err := dev.SetString(s)
	return dev, err
}

func parseFloats(ss ...string) ([]float32, error) {
	fs := make([]float32, len(ss))
	for i, s := range ss {
		f, err := strconv.ParseFloat(s, 32)
		if err != nil {
			return nil, err
		}
		fs[i] = float32(f)
	}
	return fs, nil
}
