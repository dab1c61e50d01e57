// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package frames

import (
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/interact/actions"
	"cogentcore.org/interact/bindings"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/grabber"
	"cogentcore.org/interact/pose"
)

// Names of the stage handlers shared by all frames.
const (
	InitStage  = "init"
	ExecStage  = "exec"
	FlushStage = "flush"
)

// motionKinds are the kinds of the last motion of a drag session.
type motionKinds int

const (
	noMotion motionKinds = iota
	rotating
	translating
)

// lastMotion is the last increment applied during a drag session,
// handed off to the momentum engines when the session ends.
type lastMotion struct {
	kind  motionKinds
	rot   pose.Rotation
	tr    pose.Translation
	speed float32
	delay time.Duration
}

func (lm *lastMotion) reset() {
	*lm = lastMotion{}
}

func (lm *lastMotion) rotated(r pose.Rotation, ev *events.Event) {
	lm.kind = rotating
	lm.rot = r
	lm.speed = ev.Speed
	lm.delay = ev.Delay
}

func (lm *lastMotion) translated(t pose.Translation, ev *events.Event) {
	lm.kind = translating
	lm.tr = t
	lm.speed = ev.Speed
	lm.delay = ev.Delay
}

// stageOps returns the init, exec and flush stage handlers of the
// given grabber. Init starts a session and Exec runs the operation of
// the session. Flush starts spinning or tossing with the last
// increment, speed and delay of the session, which are kept until the
// next session starts.
func stageOps(gb *grabber.Base, target any, lm *lastMotion) []actions.Ref {
	exec := func(ev *events.Event) bool {
		cur, ok := gb.Gestures.Current()
		if !ok {
			return false
		}
		return cur.Invoke(gb.This, ev)
	}
	return []actions.Ref{
		actions.New(InitStage, target, func(ev *events.Event) bool {
			lm.reset()
			return exec(ev)
		}),
		actions.New(ExecStage, target, exec),
		actions.New(FlushStage, target, func(ev *events.Event) bool {
			if lm.speed <= 0 {
				return true
			}
			switch lm.kind {
			case rotating:
				gb.Spin.Start(lm.rot, lm.speed, lm.delay)
			case translating:
				gb.Toss.Start(lm.tr, lm.speed, lm.delay)
			}
			return true
		}),
	}
}

// setStages registers the stage handlers of the registry for the
// two axis motion category.
func setStages(tb *bindings.Table, reg *actions.Registry) {
	for i, name := range []string{InitStage, ExecStage, FlushStage} {
		ref, err := reg.Ref(name)
		if err != nil {
			continue
		}
		errors.Log(tb.AddStageHandler(bindings.StagesValues()[i], events.Motion2, ref))
	}
}
