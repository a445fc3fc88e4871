// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stv

import "math"

// Run advances the solution to tfinal in whole super-steps (a pair of
// sub-steps io=0 then io=1), so the run always completes with an even
// number of sub-steps and the final state lives on the non-staggered
// grid (I4). dt is chosen once per super-step, at io=0, from the
// wave-speed maxima, and reused unmodified for io=1. Panics (via
// solutionCheck) on the first non-positive depth encountered.
func (o *Engine) Run(tfinal float64) {
	if tfinal < o.t {
		panic("stv: tfinal must be >= current time")
	}
	var dt float64
	done := false
	for !done {
		for io := 0; io < 2; io++ {
			o.g.ApplyPeriodic()
			o.solutionCheck()
			cx, cy := o.g.ComputeFGSpeeds(o.phys)
			o.g.LimitedDerivs(o.cfg.Theta)

			if io == 0 {
				dt = o.cfg.CFL / math.Max(cx/o.g.Dx, cy/o.g.Dy)
				if o.t+2*dt >= tfinal {
					dt = (tfinal - o.t) / 2
					done = true
				}
			}

			o.computeStep(io, dt)
			o.t += dt
		}
	}
}
