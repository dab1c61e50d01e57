// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package momentum provides a damped momentum [Engine] that keeps
// applying an increment (a rotation for spinning, a translation for
// tossing) on periodic ticks after the gesture that started it ended,
// shrinking it as its speed decays.
package momentum

import (
	"time"

	"github.com/chewxy/math32"
)

// Epsilon is the speed under which the motion stops.
const Epsilon = 0.001

// DefaultPeriod is the tick period used when none is given.
var DefaultPeriod = time.Second / 60

// Increment is a value applied on every tick that can be rescaled
// while keeping its direction.
type Increment[T any] interface {
	Scaled(f float32) T
}

// Engine is a momentum engine for one physical quantity. Set Apply
// and Scheduler before starting it. It is not safe for concurrent use:
// Start, Stop and Tick must all be called on the host loop goroutine.
type Engine[T Increment[T]] struct {

	// Apply applies one increment to the moving object.
	Apply func(inc T)

	// Scheduler calls Tick periodically while the engine is active.
	Scheduler Scheduler

	increment   T
	speed       float32
	damping     float32
	sensitivity float32
	active      bool
	task        Task
}

// Defaults sets the default damping and sensitivity.
func (en *Engine[T]) Defaults() {
	en.damping = 0.5
	en.sensitivity = 0.3
}

// Damping returns the damping (friction) in [0, 1], where 0 is no decay
// and 1 is the fastest decay.
func (en *Engine[T]) Damping() float32 {
	return en.damping
}

// SetDamping sets the damping. Values outside [0, 1] are ignored.
//
// Note that the decay per tick is damping cubed, so a damping of 1
// stops the motion almost at once.
func (en *Engine[T]) SetDamping(f float32) {
	if f < 0 || f > 1 {
		return
	}
	en.damping = f
}

// Sensitivity returns the minimum speed needed to start a motion
// that never decays (damping 0).
func (en *Engine[T]) Sensitivity() float32 {
	return en.sensitivity
}

// SetSensitivity sets the sensitivity. Negative values are ignored.
func (en *Engine[T]) SetSensitivity(f float32) {
	if f < 0 {
		return
	}
	en.sensitivity = f
}

// Speed returns the current speed.
func (en *Engine[T]) Speed() float32 {
	return en.speed
}

// Increment returns the current increment.
func (en *Engine[T]) Increment() T {
	return en.increment
}

// IsActive returns whether the engine is moving.
func (en *Engine[T]) IsActive() bool {
	return en.active
}

// Start starts moving by the given increment at the given speed,
// ticking every period (DefaultPeriod if it is not positive), typically
// the delay between the last events of the originating gesture. A motion
// that would never decay (damping 0) is not started if the speed is
// below the sensitivity. Starting an active engine restarts it.
func (en *Engine[T]) Start(inc T, speed float32, period time.Duration) {
	if en.damping == 0 && speed < en.sensitivity {
		return
	}
	en.cancel()
	en.increment = inc
	en.speed = speed
	en.active = true
	if period <= 0 {
		period = DefaultPeriod
	}
	if en.Scheduler != nil {
		en.task = en.Scheduler.Every(period, en.Tick)
	}
}

// Stop stops the motion and cancels its ticks.
func (en *Engine[T]) Stop() {
	en.active = false
	en.cancel()
}

func (en *Engine[T]) cancel() {
	if en.task != nil {
		en.task.Stop()
		en.task = nil
	}
}

// Tick applies the increment once and decays the speed. With no
// damping the increment is applied unchanged until [Engine.Stop].
// Otherwise the speed is multiplied by 1 - damping³, the motion stops
// when it falls under [Epsilon], and the increment is rescaled by the
// speed ratio so that only its magnitude follows the decay.
func (en *Engine[T]) Tick() {
	if !en.active {
		return
	}
	if en.damping == 0 {
		en.apply()
		return
	}
	if en.speed == 0 {
		en.Stop()
		return
	}
	en.apply()
	prev := en.speed
	en.speed *= 1 - math32.Pow(en.damping, 3)
	if math32.Abs(en.speed) < Epsilon {
		en.speed = 0
		en.Stop()
		return
	}
	en.increment = en.increment.Scaled(en.speed / prev)
}

func (en *Engine[T]) apply() {
	if en.Apply != nil {
		en.Apply(en.increment)
	}
}
