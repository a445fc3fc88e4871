// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import "math"

// Depth returns a pixel callback mapping depth h to a greyscale
// intensity via h/hScale*255.
func Depth(hScale float64) func(u []float64) int {
	return func(u []float64) int {
		return int(u[0] / hScale * 255)
	}
}

// SpeedMagnitude returns a pixel callback mapping the velocity magnitude
// sqrt((hu/h)^2+(hv/h)^2) to a greyscale intensity via speed/uScale*255.
func SpeedMagnitude(uScale float64) func(u []float64) int {
	return func(u []float64) int {
		h := u[0]
		vx, vy := u[1]/h, u[2]/h
		speed := math.Sqrt(vx*vx + vy*vy)
		return int(speed / uScale * 255)
	}
}

// MomentumX returns a pixel callback mapping x-momentum hu, rescaled and
// recentred around 128, to a greyscale intensity.
func MomentumX(scale float64) func(u []float64) int {
	return func(u []float64) int {
		return 128 + int(u[1]/scale*127)
	}
}
