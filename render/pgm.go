// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package render is a pure read-only consumer of grid.Grid: it never
// mutates state, only maps it to a raster for inspection. Grounded on
// tools/GenVtu.go's pattern of building output into a bytes.Buffer and
// flushing it with a single gosl/io.WriteFile call.
package render

import (
	"bytes"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/water/grid"
)

// WritePGM renders the live interior of g to a binary Portable Gray Map
// at path. pixel maps one state vector to an intensity, clamped here to
// [0,255]. The header is "P5\n<nx> <ny> 255\n"; rows are emitted from
// iy=ny-1 down to 0, each row left (ix=0) to right (ix=nx-1).
func WritePGM(path string, g *grid.Grid, pixel func(u []float64) int) (err error) {
	var buf bytes.Buffer
	io.Ff(&buf, "P5\n%d %d 255\n", g.Nx, g.Ny)
	row := make([]byte, g.Nx)
	for iy := g.Ny - 1; iy >= 0; iy-- {
		for ix := 0; ix < g.Nx; ix++ {
			c := g.Idx(ix+grid.Nghost, iy+grid.Nghost)
			row[ix] = clamp(pixel(g.U[c]))
		}
		buf.Write(row)
	}

	// io.WriteFile panics (via chk.Panic) on failure rather than
	// returning an error; recover it here since the render contract
	// propagates IO failure to the caller instead of aborting the run.
	defer func() {
		if r := recover(); r != nil {
			err = chk.Err("render: cannot write %q: %v", path, r)
		}
	}()
	io.WriteFile(path, &buf)
	return nil
}

// clamp maps an arbitrary intensity into the single byte a PGM body cell
// holds.
func clamp(v int) byte {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return byte(v)
}
