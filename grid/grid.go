// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package grid implements the halo-extended cell-centred lattice the
// staggered central-difference engine advances, plus the three stencil
// stages that read and write it: the periodic halo manager, the
// flux/wave-speed evaluator and the limited-derivative reconstruction.
package grid

import "github.com/cpmech/gosl/chk"

// Nghost is the halo width on each side of the live interior, fixed at 3
// for this scheme and never configurable. The stencil stages reach two
// cells past the live interior (the corrector reads one neighbour, or one
// cell back after the io=1 shift, and the limited-derivative stage one
// more beyond that), so 3 leaves one cell of margin.
const Nghost = 3

// Grid holds the eight parallel cell-indexed arrays of the scheme on an
// (nx+2·nghost) x (ny+2·nghost) lattice, laid out flat and row-major:
// cell (ix,iy) lives at index iy*NxAll+ix. All arrays are allocated once
// at construction and never resized; U is mutated by the engine between
// halo refreshes, the rest are scratch buffers overwritten every sub-step.
type Grid struct {
	Nx, Ny       int // live interior size
	NxAll, NyAll int // Nx+2*Nghost, Ny+2*Nghost
	W            int // state-vector width
	Dx, Dy       float64

	U  [][]float64 // current conserved state
	F  [][]float64 // flux in x
	G  [][]float64 // flux in y
	Ux [][]float64 // limited diff of U in x
	Uy [][]float64 // limited diff of U in y
	Fx [][]float64 // limited diff of F in x
	Gy [][]float64 // limited diff of G in y
	V  [][]float64 // next-step scratch
}

// New allocates a Grid sized for an nx x ny live interior of a w-long
// domain (w, h), with state width wid. Panics on a nonsensical size: this
// is a construction-time programming error, the same class of failure
// the teacher's DynCoefs.Init rejects with chk.Panic.
func New(w, h float64, nx, ny, wid int) *Grid {
	if w <= 0 || h <= 0 {
		chk.Panic("grid: domain size must be positive (w=%v, h=%v)", w, h)
	}
	if nx < 1 || ny < 1 {
		chk.Panic("grid: cell counts must be >= 1 (nx=%v, ny=%v)", nx, ny)
	}
	if wid < 1 {
		chk.Panic("grid: state width must be >= 1 (w=%v)", wid)
	}
	o := new(Grid)
	o.Nx, o.Ny = nx, ny
	o.NxAll, o.NyAll = nx+2*Nghost, ny+2*Nghost
	o.W = wid
	o.Dx, o.Dy = w/float64(nx), h/float64(ny)
	n := o.NxAll * o.NyAll
	o.U = allocCells(n, wid)
	o.F = allocCells(n, wid)
	o.G = allocCells(n, wid)
	o.Ux = allocCells(n, wid)
	o.Uy = allocCells(n, wid)
	o.Fx = allocCells(n, wid)
	o.Gy = allocCells(n, wid)
	o.V = allocCells(n, wid)
	return o
}

// allocCells allocates n state vectors of width wid as one contiguous
// backing array sliced into n views, avoiding n separate allocations.
func allocCells(n, wid int) [][]float64 {
	flat := make([]float64, n*wid)
	cells := make([][]float64, n)
	for i := 0; i < n; i++ {
		cells[i] = flat[i*wid : (i+1)*wid]
	}
	return cells
}

// Idx returns the flat index of cell (ix, iy). Bounds are not checked:
// per the addressing note in the design, checks belong at the loop
// bounds, not on every access in the hot stencil loops.
func (o *Grid) Idx(ix, iy int) int {
	return iy*o.NxAll + ix
}

// CellX returns the x-coordinate of the centre of live cell ix (0-based,
// interior-relative).
func (o *Grid) CellX(ix int) float64 {
	return (float64(ix) + 0.5) * o.Dx
}

// CellY returns the y-coordinate of the centre of live cell iy (0-based,
// interior-relative).
func (o *Grid) CellY(iy int) float64 {
	return (float64(iy) + 0.5) * o.Dy
}

// ForEachLive calls f with the flat index and (ix, iy) of every live
// interior cell, in row-major order.
func (o *Grid) ForEachLive(f func(idx, ix, iy int)) {
	for iy := Nghost; iy < Nghost+o.Ny; iy++ {
		for ix := Nghost; ix < Nghost+o.Nx; ix++ {
			f(o.Idx(ix, iy), ix, iy)
		}
	}
}
