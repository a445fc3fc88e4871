// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

import "math"

// Minmod2 implements the generalized two-argument MinMod function used to
// build the limited slope. Computed as
//
//	(copysign(½,a) + copysign(½,b)) * min(|a|,|b|)
//
// which is 0 when a and b have strictly opposite signs and the signed
// minimum magnitude otherwise. A zero argument takes the sign of its sign
// bit (copysign(0.5, +0) = 0.5, copysign(0.5, -0) = -0.5), but since
// min(|a|,|b|) is then 0 the result is 0 whatever the sign sum; the
// formula is kept literally, with no special case for zero.
func Minmod2(a, b float64) float64 {
	return (math.Copysign(0.5, a) + math.Copysign(0.5, b)) * math.Min(math.Abs(a), math.Abs(b))
}

// Xmic computes the limited combination of the left and right
// differences dl, dr for limiter parameter theta.
func Xmic(theta, dl, dr float64) float64 {
	return Minmod2(theta*Minmod2(dl, dr), 0.5*(dl+dr))
}

// LimDiff returns the limited first difference of three consecutive
// samples (um, u0, up) for limiter parameter theta.
func LimDiff(theta, um, u0, up float64) float64 {
	return Xmic(theta, u0-um, up-u0)
}
