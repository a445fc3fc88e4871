// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package stv

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/water/phys"
)

// expectPanic runs f and fails the test unless it panics, mirroring the
// inverse of the teacher's recover-and-io.PfRed pattern used to catch
// unexpected panics in out/t_out_test.go.
func expectPanic(tst *testing.T, label string, f func()) {
	defer func() {
		if r := recover(); r == nil {
			tst.Fatalf("%s: expected a panic, got none", label)
		}
	}()
	f()
}

func Test_cfg01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("cfg01: construction-time validation")

	sw := new(phys.ShallowWater)
	sw.Init(sw.GetPrms())

	expectPanic(tst, "bad width", func() {
		New(Config{W: 0, H: 1, Nx: 4, Ny: 4}, sw)
	})
	expectPanic(tst, "bad nx", func() {
		New(Config{W: 1, H: 1, Nx: 0, Ny: 4}, sw)
	})
	expectPanic(tst, "bad cfl", func() {
		New(Config{W: 1, H: 1, Nx: 4, Ny: 4, CFL: 0.9}, sw)
	})
	expectPanic(tst, "bad theta", func() {
		New(Config{W: 1, H: 1, Nx: 4, Ny: 4, CFL: 0.2, Theta: 3.0}, sw)
	})
	expectPanic(tst, "nil provider", func() {
		New(Config{W: 1, H: 1, Nx: 4, Ny: 4}, nil)
	})

	// defaults: CFL and Theta fill in when left zero
	e := New(Config{W: 2, H: 2, Nx: 4, Ny: 4}, sw)
	if e == nil {
		tst.Fatalf("expected a valid Engine")
	}
}
