// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"flag"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/water/ic"
	"github.com/cpmech/water/phys"
	"github.com/cpmech/water/render"
	"github.com/cpmech/water/stv"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.PfRed("ERROR: %v\n", err)
		}
	}()

	// flags
	system := flag.String("system", "shallow-water", "registered physics system")
	scenario := flag.String("ic", "dambreak", "initial condition: still | dambreak")
	w := flag.Float64("w", 2.0, "domain width")
	h := flag.Float64("h", 2.0, "domain height")
	nx := flag.Int("nx", 200, "cell count in x")
	ny := flag.Int("ny", 200, "cell count in y")
	cfl := flag.Float64("cfl", 0.2, "CFL number")
	theta := flag.Float64("theta", 1.5, "limiter parameter")
	tfinal := flag.Float64("tfinal", 0.5, "final simulated time")
	out := flag.String("out", "water.pgm", "output PGM path")
	pixel := flag.String("pixel", "depth", "pixel mapping: depth | speed | momx")
	flag.Parse()

	io.PfWhite("\nwater -- staggered central-difference shallow-water solver\n\n")

	// physics
	provider, err := phys.Lookup(*system)
	if err != nil {
		chk.Panic("%v (available: %v)\n", err, phys.Names())
	}

	// engine
	e := stv.New(stv.Config{W: *w, H: *h, Nx: *nx, Ny: *ny, CFL: *cfl, Theta: *theta, Verbose: true}, provider)

	// initial condition
	switch strings.ToLower(*scenario) {
	case "still":
		pond := ic.StillPond{H: 1.0}
		e.Init(pond.Apply)
	case "dambreak":
		dam := ic.CircularDamBreak{CX: *w / 2, CY: *h / 2, Radius: 0.25 * (*w), Hin: 1.5, Hout: 1.0}
		e.Init(dam.Apply)
	default:
		chk.Panic("unknown initial condition %q (available: still, dambreak)\n", *scenario)
	}

	// run
	io.Pf("> running to t=%v\n", *tfinal)
	e.Run(*tfinal)
	io.Pf("> done at t=%v\n", e.T())

	// render
	var pixelFn func(u []float64) int
	switch strings.ToLower(*pixel) {
	case "depth":
		pixelFn = render.Depth(2.0)
	case "speed":
		pixelFn = render.SpeedMagnitude(2.0)
	case "momx":
		pixelFn = render.MomentumX(1.0)
	default:
		chk.Panic("unknown pixel mapping %q (available: depth, speed, momx)\n", *pixel)
	}
	if err := render.WritePGM(*out, e.Grid(), pixelFn); err != nil {
		chk.Panic("%v\n", err)
	}
	io.Pf("> wrote %v\n", *out)
}
