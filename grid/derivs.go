// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// LimitedDerivs computes the four limited central differences (Ux, Uy,
// Fx, Gy) component-wise for every cell in [1,NxAll-1) x [1,NyAll-1).
// Requires F and G to already hold this sub-step's flux evaluations.
func (o *Grid) LimitedDerivs(theta float64) {
	for iy := 1; iy < o.NyAll-1; iy++ {
		for ix := 1; ix < o.NxAll-1; ix++ {
			c := o.Idx(ix, iy)
			xm := o.Idx(ix-1, iy)
			xp := o.Idx(ix+1, iy)
			ym := o.Idx(ix, iy-1)
			yp := o.Idx(ix, iy+1)
			ux, uy := o.Ux[c], o.Uy[c]
			fx, gy := o.Fx[c], o.Gy[c]
			for k := 0; k < o.W; k++ {
				ux[k] = LimDiff(theta, o.U[xm][k], o.U[c][k], o.U[xp][k])
				uy[k] = LimDiff(theta, o.U[ym][k], o.U[c][k], o.U[yp][k])
				fx[k] = LimDiff(theta, o.F[xm][k], o.F[c][k], o.F[xp][k])
				gy[k] = LimDiff(theta, o.G[ym][k], o.G[c][k], o.G[yp][k])
			}
		}
	}
}
