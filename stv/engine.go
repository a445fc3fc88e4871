// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package stv implements the Jiang-Tadmor staggered central-difference
// time-stepping engine: super-step orchestration, wave-speed-driven dt
// selection, the predictor-corrector update and the solution-check
// diagnostic. It consumes a grid.Grid for storage and a phys.Provider for
// the flux functions and wave-speed bound, the way fem.FEM in the
// teacher repo consumes a Domain and a material-model database without
// knowing their internals.
package stv

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/water/grid"
	"github.com/cpmech/water/phys"
)

// Config holds the scalar parameters of a run: domain size, cell counts,
// CFL number and limiter parameter theta. Validated eagerly by New.
type Config struct {
	W, H   float64 // physical domain size
	Nx, Ny int     // cell counts
	CFL    float64 // CFL number, default 0.2, must lie in (0, 0.5]
	Theta  float64 // limiter parameter, default 1.0, valid range [1,2]

	// Verbose turns on the one-line-per-sub-step diagnostic log.
	Verbose bool
}

// InitFunc fills out (length W) with the initial state at the cell centre
// (x, y). Invoked exactly once per live cell, synchronously; it does not
// escape the call to Init.
type InitFunc func(out []float64, x, y float64)

// Diagnostics is the record emitted once per sub-step: integrated mass
// and momentum, and the depth range observed over the live interior.
type Diagnostics struct {
	Mass, MomentumX, MomentumY float64
	HMin, HMax                 float64
}

// Engine owns a grid.Grid and a phys.Provider for its lifetime and drives
// the staggered super-step loop over them.
type Engine struct {
	cfg  Config
	phys phys.Provider
	g    *grid.Grid
	t    float64
	uh   []float64 // predictor scratch, allocated once, reused every sub-step
}

// New validates cfg and allocates a fresh Engine. Defaults: if CFL == 0 it
// is set to 0.2; if Theta == 0 it is set to 1.0. Panics on any
// out-of-range value, matching the teacher's DynCoefs.Init style of
// construction-time validation.
func New(cfg Config, provider phys.Provider) *Engine {
	if cfg.CFL == 0 {
		cfg.CFL = 0.2
	}
	if cfg.Theta == 0 {
		cfg.Theta = 1.0
	}
	if cfg.W <= 0 || cfg.H <= 0 {
		chk.Panic("stv: domain size must be positive (w=%v, h=%v)", cfg.W, cfg.H)
	}
	if cfg.Nx < 1 || cfg.Ny < 1 {
		chk.Panic("stv: cell counts must be >= 1 (nx=%v, ny=%v)", cfg.Nx, cfg.Ny)
	}
	if cfg.CFL <= 0 || cfg.CFL > 0.5 {
		chk.Panic("stv: CFL must satisfy 0 < cfl <= 0.5 (cfl=%v)", cfg.CFL)
	}
	if cfg.Theta < 1.0 || cfg.Theta > 2.0 {
		chk.Panic("stv: theta must satisfy 1 <= theta <= 2 (theta=%v)", cfg.Theta)
	}
	if provider == nil {
		chk.Panic("stv: a physics provider is required")
	}
	o := new(Engine)
	o.cfg = cfg
	o.phys = provider
	o.g = grid.New(cfg.W, cfg.H, cfg.Nx, cfg.Ny, provider.Width())
	o.uh = make([]float64, provider.Width())
	return o
}

// T returns the current simulated time.
func (o *Engine) T() float64 { return o.t }

// Grid exposes the underlying storage, mainly so render.WritePGM and test
// code can read the live state; the engine still owns it exclusively.
func (o *Engine) Grid() *grid.Grid { return o.g }

// Init invokes f once per live cell at its centre coordinates and stores
// the result into U.
func (o *Engine) Init(f InitFunc) {
	o.g.ForEachLive(func(idx, ix, iy int) {
		f(o.g.U[idx], o.g.CellX(ix-grid.Nghost), o.g.CellY(iy-grid.Nghost))
	})
	o.t = 0
}

// SolutionCheck runs the same diagnostic solutionCheck runs internally
// between sub-steps, for callers that want a mass/momentum/depth report
// without advancing the simulation.
func (o *Engine) SolutionCheck() Diagnostics {
	return o.solutionCheck()
}

// solutionCheck traverses the live interior, accumulates integrated mass
// and momentum, tracks depth extrema and panics on the first non-positive
// depth found (I2). Must be called once per sub-step, after the halo
// refresh and before any stencil stage reads U.
func (o *Engine) solutionCheck() Diagnostics {
	area := o.g.Dx * o.g.Dy
	d := Diagnostics{HMin: math.Inf(1), HMax: math.Inf(-1)}
	o.g.ForEachLive(func(idx, ix, iy int) {
		u := o.g.U[idx]
		h := u[0]
		if h <= 0 {
			chk.Panic("stv: depth <= 0 at (%d,%d): h=%v", ix-grid.Nghost, iy-grid.Nghost, h)
		}
		d.Mass += h * area
		d.MomentumX += u[1] * area
		d.MomentumY += u[2] * area
		if h < d.HMin {
			d.HMin = h
		}
		if h > d.HMax {
			d.HMax = h
		}
	})
	if o.cfg.Verbose {
		io.Pf("%v %v %v %v %v\n", d.Mass, d.MomentumX, d.MomentumY, d.HMin, d.HMax)
	}
	return d
}
