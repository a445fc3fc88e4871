// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package phys

import (
	"math"
	"testing"

	"github.com/cpmech/gosl/chk"
)

func Test_sw01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sw01: shallow-water flux and wave speed")

	sw := new(ShallowWater)
	sw.Init(sw.GetPrms())

	chk.IntAssert(sw.Width(), 3)

	u := []float64{2.0, 4.0, -1.0}
	f := make([]float64, 3)
	g := make([]float64, 3)
	sw.FluxX(f, u)
	sw.FluxY(g, u)

	h, hu, hv := u[0], u[1], u[2]
	chk.Scalar(tst, "Fx[0]", 1e-15, f[0], hu)
	chk.Scalar(tst, "Fx[1]", 1e-15, f[1], hu*hu/h+0.5*sw.G*h*h)
	chk.Scalar(tst, "Fx[2]", 1e-15, f[2], hu*hv/h)
	chk.Scalar(tst, "Gy[0]", 1e-15, g[0], hv)
	chk.Scalar(tst, "Gy[1]", 1e-15, g[1], hu*hv/h)
	chk.Scalar(tst, "Gy[2]", 1e-15, g[2], hv*hv/h+0.5*sw.G*h*h)

	cx, cy := sw.WaveSpeed(u)
	root := math.Sqrt(sw.G * h)
	chk.Scalar(tst, "cx", 1e-15, cx, math.Abs(hu/h)+root)
	chk.Scalar(tst, "cy", 1e-15, cy, math.Abs(hv/h)+root)
}

func Test_sw02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sw02: still water has zero mass flux and zero cross-momentum flux")

	sw := new(ShallowWater)
	sw.Init(nil)

	u := []float64{1.0, 0.0, 0.0}
	f := make([]float64, 3)
	g := make([]float64, 3)
	sw.FluxX(f, u)
	sw.FluxY(g, u)

	chk.Scalar(tst, "Fx[0]", 1e-15, f[0], 0)
	chk.Scalar(tst, "Fx[2]", 1e-15, f[2], 0)
	chk.Scalar(tst, "Gy[0]", 1e-15, g[0], 0)
	chk.Scalar(tst, "Gy[1]", 1e-15, g[1], 0)

	cx, cy := sw.WaveSpeed(u)
	chk.Scalar(tst, "cx", 1e-15, cx, math.Sqrt(sw.G))
	chk.Scalar(tst, "cy", 1e-15, cy, math.Sqrt(sw.G))
}

func Test_sw03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("sw03: registry round-trip")

	p, err := Lookup("shallow-water")
	if err != nil {
		tst.Fatalf("Lookup failed: %v", err)
	}
	chk.IntAssert(p.Width(), 3)

	_, err = Lookup("does-not-exist")
	if err == nil {
		tst.Fatalf("Lookup should have failed for an unregistered name")
	}
}
