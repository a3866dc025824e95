// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package surface

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a canvas of a registered kind.
type Factory func(width, height int) Canvas

var (
	factoriesMu sync.RWMutex
	factories   = make(map[string]Factory)
)

// RegisterFactory makes a canvas kind available by name. It panics on a
// nil factory or a duplicate name.
func RegisterFactory(name string, f Factory) {
	factoriesMu.Lock()
	defer factoriesMu.Unlock()
	if f == nil {
		panic("surface: RegisterFactory factory is nil")
	}
	if _, dup := factories[name]; dup {
		panic("surface: RegisterFactory called twice for " + name)
	}
	factories[name] = f
}

// New creates a canvas of the named kind.
func New(name string, width, height int) (Canvas, error) {
	factoriesMu.RLock()
	f, ok := factories[name]
	factoriesMu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("surface: unknown canvas kind %q", name)
	}
	return f(width, height), nil
}

// Kinds returns the registered canvas kind names, sorted.
func Kinds() []string {
	factoriesMu.RLock()
	defer factoriesMu.RUnlock()
	out := make([]string, 0, len(factories))
	for name := range factories {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func init() {
	RegisterFactory("image", func(w, h int) Canvas { return NewImageSurface(w, h) })
	RegisterFactory("svg", func(w, h int) Canvas { return NewSVGSurface(w, h) })
	RegisterFactory("script", func(w, h int) Canvas { return NewScriptSurface(w, h) })
}
