// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command grab describes, documents, replays and watches binding
// profiles of interactive frames.
package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/interact/events"
	"cogentcore.org/interact/frames"
	"cogentcore.org/interact/grabber"
	"cogentcore.org/interact/momentum"
	"cogentcore.org/interact/pose"
	"cogentcore.org/interact/profile"
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/muesli/termenv"
)

//go:generate core generate -add-types -add-funcs

// Config is the configuration information for the grab cli.
type Config struct {

	// Profile is the binding profile file (.toml, .yaml or .yml).
	// With no profile, the default bindings of the grabber are used.
	Profile string `posarg:"0" required:"-"`

	// Script is the replay script file. The standard input is read
	// if it is not given.
	Script string `cmd:"replay" posarg:"1" required:"-"`

	// Grabber is the kind of grabber the profile applies to:
	// frame or camera.
	Grabber string `default:"frame"`

	// HTML outputs the documentation as HTML instead of markdown.
	HTML bool `cmd:"doc" flag:"html"`

	// NoColor disables colored output.
	NoColor bool `flag:"no-color"`

	// Verbose shows info messages.
	Verbose bool `flag:"v,verbose"`

	// VeryVerbose shows debug messages, including gesture transitions.
	VeryVerbose bool `flag:"vv,very-verbose"`

	// Quiet only shows errors.
	Quiet bool `flag:"q,quiet"`
}

func main() { //types:skip
	opts := cli.DefaultOptions("grab", "Describe, document, replay and watch binding profiles of interactive frames.")
	cli.Run(opts, &Config{}, Describe, Doc, Replay, Watch)
}

// target is a grabber that profiles can be applied to.
type target interface {
	grabber.Grabber
	profile.Target
}

// setLogLevel sets the level of the default logger from the verbosity flags.
func setLogLevel(c *Config) {
	slog.SetLogLoggerLevel(logx.LevelFromFlags(c.VeryVerbose, c.Verbose, c.Quiet))
}

// newTarget returns the grabber of the configured kind, with the
// profile applied if there is one, and the profile name.
func newTarget(c *Config, sch momentum.Scheduler) (target, string, error) {
	var tg target
	switch strings.ToLower(c.Grabber) {
	case "", "frame":
		tg = frames.NewFrame(sch, events.DefaultDOFs())
	case "camera":
		tg = frames.NewCamera(sch, events.DefaultDOFs())
	default:
		return nil, "", fmt.Errorf("unknown grabber %q (frame or camera)", c.Grabber)
	}
	if c.Profile == "" {
		return tg, c.Grabber, nil
	}
	p, err := profile.Open(c.Profile)
	if err != nil {
		return nil, "", err
	}
	return tg, p.Name, p.ApplyTo(tg)
}

// poseOf returns the pose of the grabber.
func poseOf(tg target) pose.Pose {
	switch g := tg.(type) {
	case *frames.Frame:
		return g.Pose
	case *frames.Camera:
		return g.Pose
	}
	return pose.Pose{}
}

func newOutput(c *Config, w io.Writer) *termenv.Output {
	if c.NoColor {
		return termenv.NewOutput(w, termenv.WithProfile(termenv.Ascii))
	}
	return termenv.NewOutput(w)
}

// describe writes the bindings of the grabber, one per line.
func describe(out *termenv.Output, name string, tg target) {
	fmt.Fprintln(out, out.String(name).Bold())
	for _, line := range strings.Split(strings.TrimSpace(tg.BindingTable().Describe()), "\n") {
		from, to, ok := strings.Cut(line, " -> ")
		if !ok {
			continue
		}
		fmt.Fprintf(out, "  %s -> %s\n", out.String(from).Foreground(out.Color("6")), out.String(to).Foreground(out.Color("2")))
	}
}

// Describe prints the bindings of the grabber with the profile applied.
func Describe(c *Config) error { //cli:cmd -root
	setLogLevel(c)
	tg, name, err := newTarget(c, &momentum.Loop{})
	if tg == nil {
		return err
	}
	describe(newOutput(c, os.Stdout), name, tg)
	return err
}

// Doc prints the markdown documentation of the bindings of the grabber
// with the profile applied, or its HTML rendering.
func Doc(c *Config) error {
	setLogLevel(c)
	tg, name, err := newTarget(c, &momentum.Loop{})
	if tg == nil {
		return err
	}
	md := "## " + name + "\n\n" + tg.BindingTable().MarkdownDoc()
	if !c.HTML {
		fmt.Print(md)
		return err
	}
	os.Stdout.Write(markdownToHTML(md))
	return err
}

// markdownToHTML renders the markdown, with its tables, as HTML.
func markdownToHTML(md string) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	r := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	return markdown.ToHTML([]byte(md), p, r)
}

// Replay runs the replay script on the grabber with the profile applied,
// advancing a frame driven momentum loop.
func Replay(c *Config) error {
	setLogLevel(c)
	lp := &momentum.Loop{}
	tg, _, err := newTarget(c, lp)
	if tg == nil {
		return err
	}
	errors.Log(err)
	in := io.Reader(os.Stdin)
	if c.Script != "" {
		f, err := os.Open(c.Script)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	rp := NewReplayer(tg, lp, os.Stdout)
	return rp.Run(in)
}

// Watch prints the bindings of the grabber each time the profile file
// changes, until interrupted. The grabber momentum runs in real time
// meanwhile.
func Watch(c *Config) error {
	setLogLevel(c)
	if c.Profile == "" {
		return errors.New("watch needs a profile file")
	}
	tk := momentum.NewTicker()
	tg, name, err := newTarget(c, tk)
	if tg == nil {
		return err
	}
	errors.Log(err)
	out := newOutput(c, os.Stdout)
	describe(out, name, tg)

	w, err := profile.Watch(c.Profile)
	if err != nil {
		return err
	}
	defer w.Close()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	frame := time.NewTicker(momentum.DefaultPeriod)
	defer frame.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case p := <-w.Updates:
			if err := p.ApplyTo(tg); err != nil {
				slog.Error("grab: profile has errors", "file", w.Filename(), "err", err)
			}
			describe(out, p.Name, tg)
		case err := <-w.Errors:
			slog.Error("grab: reading profile", "err", err)
		case <-frame.C:
			tk.Drain()
		}
	}
}
