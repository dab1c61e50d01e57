// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package momentum

import (
	"slices"
	"time"
)

// Task is a periodic call registered with a [Scheduler].
type Task interface {

	// Stop cancels the task. No call happens after Stop returns.
	Stop()
}

// Scheduler is the periodic task facility of the host loop.
// A task is called no more often than once per period, on the
// host loop goroutine, until it is stopped.
type Scheduler interface {
	Every(period time.Duration, fun func()) Task
}

// Loop is a [Scheduler] driven by the host frame loop, which advances
// its clock with [Loop.Advance]. The zero value is ready to use.
type Loop struct {
	now   time.Duration
	tasks []*loopTask
}

type loopTask struct {
	period  time.Duration
	next    time.Duration
	fun     func()
	stopped bool
}

func (lt *loopTask) Stop() {
	lt.stopped = true
}

// Every registers fun to be called every period, the first time
// one period from now.
func (lp *Loop) Every(period time.Duration, fun func()) Task {
	lt := &loopTask{period: period, next: lp.now + period, fun: fun}
	lp.tasks = append(lp.tasks, lt)
	return lt
}

// Now returns the loop clock.
func (lp *Loop) Now() time.Duration {
	return lp.now
}

// Advance moves the clock forward by dt and calls each task that is
// due, once, in registration order. Tasks registered during the calls
// first run on a later Advance. It returns the number of calls made.
func (lp *Loop) Advance(dt time.Duration) int {
	lp.now += dt
	n := 0
	due := slices.Clone(lp.tasks)
	for _, lt := range due {
		if lt.stopped || lt.next > lp.now {
			continue
		}
		lt.next = lp.now + lt.period
		lt.fun()
		n++
	}
	lp.tasks = slices.DeleteFunc(lp.tasks, func(lt *loopTask) bool { return lt.stopped })
	return n
}

// Len returns the number of tasks that have not been stopped.
func (lp *Loop) Len() int {
	n := 0
	for _, lt := range lp.tasks {
		if !lt.stopped {
			n++
		}
	}
	return n
}
