// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ic implements initial-condition generators for the
// shallow-water engine, grounded on the teacher's ana package of
// parameterized analytical-solution structs (e.g. ana.ConfinedSelfWeight):
// a small struct of named fields with an Apply/Calc-style method, rather
// than a closure capturing free variables.
package ic

// StillPond sets a flat depth H with zero momentum everywhere: the
// steady-state scenario used to validate that the scheme leaves an
// undisturbed pond undisturbed (P5).
type StillPond struct {
	H float64
}

// Apply implements stv.InitFunc.
func (o StillPond) Apply(out []float64, x, y float64) {
	out[0] = o.H
	out[1] = 0
	out[2] = 0
}

// CircularDamBreak sets a raised circular patch of water of depth Hin
// centred at (CX, CY) with radius Radius, surrounded by a background
// depth Hout, with zero initial momentum everywhere.
type CircularDamBreak struct {
	CX, CY, Radius float64
	Hin, Hout      float64
}

// Apply implements stv.InitFunc.
func (o CircularDamBreak) Apply(out []float64, x, y float64) {
	dx, dy := x-o.CX, y-o.CY
	out[0] = o.Hout
	if dx*dx+dy*dy < o.Radius*o.Radius+1e-5 {
		out[0] = o.Hin
	}
	out[1] = 0
	out[2] = 0
}
