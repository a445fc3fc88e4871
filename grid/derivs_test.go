// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_derivs01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("derivs01: limited derivatives match LimDiff on a linear ramp")

	g := New(1, 1, 4, 4, 1)
	// a linear ramp in x has zero curvature, so the limiter should
	// reproduce the unlimited central difference everywhere interior.
	for iy := 0; iy < g.NyAll; iy++ {
		for ix := 0; ix < g.NxAll; ix++ {
			c := g.Idx(ix, iy)
			g.U[c][0] = float64(ix)
			g.F[c][0] = float64(ix)
			g.G[c][0] = float64(iy)
		}
	}

	theta := 1.0
	g.LimitedDerivs(theta)

	for iy := 1; iy < g.NyAll-1; iy++ {
		for ix := 1; ix < g.NxAll-1; ix++ {
			c := g.Idx(ix, iy)
			chk.Scalar(tst, "ux", 1e-14, g.Ux[c][0], 1.0)
			chk.Scalar(tst, "fx", 1e-14, g.Fx[c][0], 1.0)
			chk.Scalar(tst, "uy", 1e-14, g.Uy[c][0], 0.0)
			chk.Scalar(tst, "gy", 1e-14, g.Gy[c][0], 1.0)
		}
	}
}
