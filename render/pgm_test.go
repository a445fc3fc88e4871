// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package render

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/water/grid"
)

func Test_pgm01(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pgm01: header and byte layout")

	g := grid.New(2, 2, 4, 3, 1)
	g.ForEachLive(func(idx, ix, iy int) {
		g.U[idx][0] = float64((ix-grid.Nghost)+1) * 50 // distinct per column
	})

	path := filepath.Join(tst.TempDir(), "out.pgm")
	err := WritePGM(path, g, Depth(255.0/50.0/4.0))
	if err != nil {
		tst.Fatalf("WritePGM failed: %v", err)
	}

	buf, err := os.ReadFile(path)
	if err != nil {
		tst.Fatalf("cannot read back %q: %v", path, err)
	}

	wantHeader := "P5\n4 3 255\n"
	if string(buf[:len(wantHeader)]) != wantHeader {
		tst.Fatalf("header mismatch: got %q want %q", buf[:len(wantHeader)], wantHeader)
	}
	body := buf[len(wantHeader):]
	chk.IntAssert(len(body), 12)
}

func Test_pgm02(tst *testing.T) {

	//verbose()
	chk.PrintTitle("pgm02: IO failure surfaces as an error, not a panic")

	g := grid.New(1, 1, 2, 2, 1)
	err := WritePGM("/nonexistent-dir/out.pgm", g, Depth(1.0))
	if err == nil {
		tst.Fatalf("expected an error writing to a nonexistent directory")
	}
}
