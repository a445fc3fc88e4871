// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package grid

// ApplyPeriodic overwrites every halo cell of U with the periodic image
// of the live interior: halo cell (ix, iy) becomes live cell
// (((ix-Nghost) mod Nx)+Nghost, ((iy-Nghost) mod Ny)+Nghost), using the
// non-negative mathematical modulus. Idempotent; after it returns, every
// halo cell exactly equals its periodic interior image.
func (o *Grid) ApplyPeriodic() {
	for iy := 0; iy < o.NyAll; iy++ {
		srcIy := wrap(iy-Nghost, o.Ny) + Nghost
		for ix := 0; ix < o.NxAll; ix++ {
			srcIx := wrap(ix-Nghost, o.Nx) + Nghost
			if srcIx == ix && srcIy == iy {
				continue
			}
			copy(o.U[o.Idx(ix, iy)], o.U[o.Idx(srcIx, srcIy)])
		}
	}
}

// wrap returns the non-negative mathematical remainder of x modulo n.
func wrap(x, n int) int {
	m := x % n
	if m < 0 {
		m += n
	}
	return m
}
