// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/fun"
)

// ShallowWater implements the St. Venant (shallow-water) equations.
//
//	state u = (h, hu, hv)
//	F(u) = (hu, hu²/h + ½ g h², hu·hv/h)
//	G(u) = (hv, hu·hv/h, hv²/h + ½ g h²)
//	cx = |hu/h| + √(g h), cy = |hv/h| + √(g h)
type ShallowWater struct {
	G float64 // gravitational acceleration
}

// add system to factory
func init() {
	Register("shallow-water", func() Provider {
		o := new(ShallowWater)
		o.Init(nil)
		return o
	})
}

// Init initialises this structure. g defaults to 9.8 when not given.
func (o *ShallowWater) Init(prms fun.Prms) (err error) {
	o.G = 9.8
	for _, p := range prms {
		switch p.N {
		case "g":
			o.G = p.V
		default:
			return chk.Err("shallow-water: parameter named %q is incorrect\n", p.N)
		}
	}
	return
}

// GetPrms gets (an example) of parameters
func (o ShallowWater) GetPrms() fun.Prms {
	return fun.Prms{
		&fun.Prm{N: "g", V: 9.8},
	}
}

// Width returns W = 3: depth, x-momentum, y-momentum
func (o ShallowWater) Width() int { return 3 }

// FluxX computes F = (hu, hu²/h + ½ g h², hu·hv/h)
func (o ShallowWater) FluxX(out, u []float64) {
	h, hu, hv := u[0], u[1], u[2]
	out[0] = hu
	out[1] = hu*hu/h + 0.5*o.G*h*h
	out[2] = hu * hv / h
}

// FluxY computes G = (hv, hu·hv/h, hv²/h + ½ g h²)
func (o ShallowWater) FluxY(out, u []float64) {
	h, hu, hv := u[0], u[1], u[2]
	out[0] = hv
	out[1] = hu * hv / h
	out[2] = hv*hv/h + 0.5*o.G*h*h
}

// WaveSpeed returns cx = |hu/h| + √(g h), cy = |hv/h| + √(g h)
func (o ShallowWater) WaveSpeed(u []float64) (cx, cy float64) {
	h, hu, hv := u[0], u[1], u[2]
	root := math.Sqrt(o.G * h)
	cx = math.Abs(hu/h) + root
	cy = math.Abs(hv/h) + root
	return
}
