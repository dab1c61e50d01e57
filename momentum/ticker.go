// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package momentum

import (
	"context"
	"sync/atomic"
	"time"
)

// Ticker is a real time [Scheduler]. Each task runs a [time.Ticker]
// goroutine that posts the task to a channel, and the calls happen on
// the goroutine running [Ticker.Run] or [Ticker.Drain], which should be
// the host loop goroutine. A task is posted at most once until it is
// called, so a late host loop makes one call per task, not a burst.
// Use [NewTicker] to make one.
type Ticker struct {
	due chan *tickerTask
}

type tickerTask struct {
	fun     func()
	stopped atomic.Bool
	pending atomic.Bool
	done    chan struct{}
}

func (tt *tickerTask) Stop() {
	if tt.stopped.CompareAndSwap(false, true) {
		close(tt.done)
	}
}

// NewTicker returns a new real time scheduler.
func NewTicker() *Ticker {
	return &Ticker{due: make(chan *tickerTask, 64)}
}

// Every starts calling fun every period, until the task is stopped.
func (tk *Ticker) Every(period time.Duration, fun func()) Task {
	tt := &tickerTask{fun: fun, done: make(chan struct{})}
	go func() {
		ticker := time.NewTicker(period)
		defer ticker.Stop()
		for {
			select {
			case <-tt.done:
				return
			case <-ticker.C:
				if !tt.pending.CompareAndSwap(false, true) {
					continue
				}
				select {
				case tk.due <- tt:
				case <-tt.done:
					return
				}
			}
		}
	}()
	return tt
}

// Run calls the due tasks as they come, until the context is done.
func (tk *Ticker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case tt := <-tk.due:
			tk.call(tt)
		}
	}
}

// Drain calls the tasks that are due now without blocking, and returns
// the number of calls made. It is for host loops that poll once a frame.
func (tk *Ticker) Drain() int {
	n := 0
	for {
		select {
		case tt := <-tk.due:
			if tk.call(tt) {
				n++
			}
		default:
			return n
		}
	}
}

func (tk *Ticker) call(tt *tickerTask) bool {
	tt.pending.Store(false)
	if tt.stopped.Load() {
		return false
	}
	tt.fun()
	return true
}
