// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stv

import "github.com/cpmech/water/grid"

// computeStep performs one sub-step of the predictor-corrector update at
// staggering offset io (0 or 1) with time-step dt. Requires F, G, Ux, Uy,
// Fx, Gy to already hold this sub-step's values (ComputeFGSpeeds and
// LimitedDerivs must have run first).
func (o *Engine) computeStep(io int, dt float64) {
	g := o.g
	dtcdx2 := 0.5 * dt / g.Dx
	dtcdy2 := 0.5 * dt / g.Dy
	o.predictor(dtcdx2, dtcdy2)
	o.corrector(io, dtcdx2, dtcdy2)
	o.destagger(io)
}

// predictor computes the half-advanced flux correction for every cell in
// [1,NxAll-1) x [1,NyAll-1): uh = u - dtcdx2*fx - dtcdy2*gy, then
// overwrites F, G with the fluxes of uh. U itself is not modified.
func (o *Engine) predictor(dtcdx2, dtcdy2 float64) {
	g := o.g
	for iy := 1; iy < g.NyAll-1; iy++ {
		for ix := 1; ix < g.NxAll-1; ix++ {
			c := g.Idx(ix, iy)
			u, fx, gy := g.U[c], g.Fx[c], g.Gy[c]
			for k := 0; k < g.W; k++ {
				o.uh[k] = u[k] - dtcdx2*fx[k] - dtcdy2*gy[k]
			}
			o.phys.FluxX(g.F[c], o.uh)
			o.phys.FluxY(g.G[c], o.uh)
		}
	}
}

// corrector computes the staggered averaging update into V over
// [nghost-io, nghost-io+nx) x [nghost-io, nghost-io+ny).
func (o *Engine) corrector(io int, dtcdx2, dtcdy2 float64) {
	g := o.g
	x0 := grid.Nghost - io
	y0 := grid.Nghost - io
	for iy := y0; iy < y0+g.Ny; iy++ {
		for ix := x0; ix < x0+g.Nx; ix++ {
			c00 := g.Idx(ix, iy)
			c10 := g.Idx(ix+1, iy)
			c01 := g.Idx(ix, iy+1)
			c11 := g.Idx(ix+1, iy+1)
			v := g.V[c00]
			u00, u10, u01, u11 := g.U[c00], g.U[c10], g.U[c01], g.U[c11]
			ux00, ux10, ux01, ux11 := g.Ux[c00], g.Ux[c10], g.Ux[c01], g.Ux[c11]
			uy00, uy10, uy01, uy11 := g.Uy[c00], g.Uy[c10], g.Uy[c01], g.Uy[c11]
			f00, f10, f01, f11 := g.F[c00], g.F[c10], g.F[c01], g.F[c11]
			g00, g10, g01, g11 := g.G[c00], g.G[c10], g.G[c01], g.G[c11]
			for k := 0; k < g.W; k++ {
				v[k] = 0.25*(u00[k]+u10[k]+u01[k]+u11[k]) -
					(1.0/16.0)*((ux10[k]-ux00[k])+(ux11[k]-ux01[k])+(uy01[k]-uy00[k])+(uy11[k]-uy10[k])) -
					dtcdx2*((f10[k]-f00[k])+(f11[k]-f01[k])) -
					dtcdy2*((g01[k]-g00[k])+(g11[k]-g10[k]))
			}
		}
	}
}

// destagger copies V back into U on the live interior, shifted by (-io,
// -io), returning the solution to the original cell centring after two
// sub-steps with io=0 then io=1.
func (o *Engine) destagger(io int) {
	g := o.g
	g.ForEachLive(func(idx, ix, iy int) {
		src := g.Idx(ix-io, iy-io)
		copy(g.U[idx], g.V[src])
	})
}
