// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package profile

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a profile file when it changes, and sends the new
// profile on Updates, or the error on Errors if it could not be read.
// The receiver applies the profile on its own goroutine, typically the
// host loop goroutine.
type Watcher struct {

	// Updates receives the profile each time the file changes.
	Updates chan *Profile

	// Errors receives the errors of reading the file and of watching.
	Errors chan error

	filename string
	watcher  *fsnotify.Watcher
	done     chan struct{}
}

// Watch starts watching the given profile file. The directory of the
// file is watched, so that editors replacing the file are handled.
func Watch(filename string) (*Watcher, error) {
	abs, err := filepath.Abs(filename)
	if err != nil {
		return nil, err
	}
	if _, err := FormatOf(abs); err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, err
	}
	w := &Watcher{
		Updates:  make(chan *Profile, 1),
		Errors:   make(chan error, 1),
		filename: abs,
		watcher:  fw,
		done:     make(chan struct{}),
	}
	go w.watch()
	return w, nil
}

// Filename returns the absolute name of the watched file.
func (w *Watcher) Filename() string {
	return w.filename
}

func (w *Watcher) watch() {
	for {
		select {
		case <-w.done:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.filename {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			p, err := Open(w.filename)
			if err != nil {
				w.sendError(err)
				continue
			}
			select {
			case w.Updates <- p:
			case <-w.done:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.sendError(err)
		}
	}
}

// sendError sends the error unless one is already pending.
func (w *Watcher) sendError(err error) {
	select {
	case w.Errors <- err:
	default:
	}
}

// Close stops watching.
func (w *Watcher) Close() error {
	select {
	case <-w.done:
		return nil
	default:
	}
	close(w.done)
	return w.watcher.Close()
}
