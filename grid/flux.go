// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// SpeedSentinel seeds the wave-speed reduction so a grid with literally
// zero velocity everywhere never produces a zero max speed, which would
// divide by zero when picking dt. Kept at the reference's 1e-15 for
// parity; the tiny bias this introduces is intentional, not a bug.
const SpeedSentinel = 1e-15

// Physics is the minimal capability ComputeFGSpeeds needs from a
// phys.Provider, expressed locally so grid does not import phys.
type Physics interface {
	FluxX(out, u []float64)
	FluxY(out, u []float64)
	WaveSpeed(u []float64) (cx, cy float64)
}

// ComputeFGSpeeds evaluates F and G at every cell of the full
// (halo-included) lattice and reduces the per-cell wave speed bounds to
// their global maxima. Requires the halo to already be current; the
// reduction including halo cells is correct because after a halo refresh
// they are periodic images of interior cells, and keeping the loop
// rectangular is simpler than special-casing the interior.
func (o *Grid) ComputeFGSpeeds(p Physics) (cxMax, cyMax float64) {
	cxMax, cyMax = SpeedSentinel, SpeedSentinel
	n := o.NxAll * o.NyAll
	for c := 0; c < n; c++ {
		p.FluxX(o.F[c], o.U[c])
		p.FluxY(o.G[c], o.U[c])
		cx, cy := p.WaveSpeed(o.U[c])
		if cx > cxMax {
			cxMax = cx
		}
		if cy > cyMax {
			cyMax = cy
		}
	}
	return
}
