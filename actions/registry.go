// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package actions

import (
	"fmt"

	"cogentcore.org/core/base/ordmap"
	"github.com/adrg/strutil"
	"github.com/adrg/strutil/metrics"
)

// suggestThreshold is the minimum similarity for a name to be suggested.
const suggestThreshold = 0.5

// Registry holds the operations a grabber offers, by name, so that
// bindings can be described in profile files and resolved at bind time.
type Registry struct {
	refs *ordmap.Map[string, Ref]
}

// NewRegistry returns a registry holding the given refs.
func NewRegistry(refs ...Ref) *Registry {
	rg := &Registry{refs: ordmap.New[string, Ref]()}
	rg.Add(refs...)
	return rg
}

// Add adds refs to the registry, replacing any with the same name.
func (rg *Registry) Add(refs ...Ref) {
	for _, r := range refs {
		rg.refs.Add(r.Name, r)
	}
}

// Ref returns the operation with the given name. The error for an
// unknown name suggests the closest registered name, if any.
func (rg *Registry) Ref(name string) (Ref, error) {
	if r, ok := rg.refs.ValueByKeyTry(name); ok {
		return r, nil
	}
	if s := rg.Suggest(name); s != "" {
		return Ref{}, fmt.Errorf("actions: unknown action %q (did you mean %q?)", name, s)
	}
	return Ref{}, fmt.Errorf("actions: unknown action %q", name)
}

// Has returns whether an operation with the given name is registered.
func (rg *Registry) Has(name string) bool {
	_, ok := rg.refs.ValueByKeyTry(name)
	return ok
}

// Suggest returns the registered name most similar to the given one,
// or "" if none is similar enough.
func (rg *Registry) Suggest(name string) string {
	lev := metrics.NewLevenshtein()
	best, bestSim := "", suggestThreshold
	for _, kv := range rg.refs.Order {
		sim := strutil.Similarity(name, kv.Key, lev)
		if sim >= bestSim {
			best, bestSim = kv.Key, sim
		}
	}
	return best
}

// Names returns the registered names, in the order added.
func (rg *Registry) Names() []string {
	return rg.refs.Keys()
}

// Len returns the number of registered operations.
func (rg *Registry) Len() int {
	return rg.refs.Len()
}
