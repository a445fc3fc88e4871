// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package phys defines the pluggable flux/wave-speed capability consumed
// by the staggered central-difference engine in stv, and hosts a registry
// of named systems the way mconduct and mreten register material models.
package phys

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// Provider supplies the state-vector width, the two flux functions and a
// per-cell wave-speed bound to the time-stepping engine. Implementations
// must be pure: FluxX, FluxY and WaveSpeed never mutate u and carry no
// hidden state across calls. Behaviour on u[0] <= 0 is undefined; callers
// must never invoke a Provider on a cell that has failed the solution
// check.
type Provider interface {
	// Width returns W, the number of components of the state vector.
	Width() int

	// FluxX computes F(u) into out. len(out) == len(u) == Width().
	FluxX(out, u []float64)

	// FluxY computes G(u) into out. len(out) == len(u) == Width().
	FluxY(out, u []float64)

	// WaveSpeed returns a conservative upper bound (cx, cy) on the
	// absolute characteristic speeds at u.
	WaveSpeed(u []float64) (cx, cy float64)
}

// allocators holds all systems registered with Register.
var allocators = make(map[string]func() Provider)

// Register adds a system to the factory under name. Panics if name is
// already taken, since a duplicate registration is a programming error
// discovered at package-init time, not a runtime condition a caller
// could reasonably recover from.
func Register(name string, alloc func() Provider) {
	if _, ok := allocators[name]; ok {
		chk.Panic("phys: system named %q is already registered", name)
	}
	allocators[name] = alloc
}

// Lookup returns a freshly allocated Provider registered under name.
func Lookup(name string) (Provider, error) {
	alloc, ok := allocators[name]
	if !ok {
		return nil, chk.Err("phys: system named %q is not available", name)
	}
	return alloc(), nil
}

// Names returns the names of all registered systems, for help text.
func Names() (names []string) {
	for name := range allocators {
		names = append(names, name)
	}
	return
}

// InitParams is a convenience alias so callers configuring a Provider do
// not need to import gosl/fun directly just to build a parameter list.
type InitParams = fun.Prms
