package grid

import (
	"math"

	"github.com/oliverbestmann/vcl/check"
	"github.com/oliverbestmann/vcl/gm"
)

// Bilinear interpolates the grid at the continuous position (x, y), where
// integer positions hit the grid values exactly. The position must lie within
// [0, n1-1] x [0, n2-1].
func Bilinear[S gm.Float](g Grid2D[S], x, y S) S {
	if g.n1 == 0 || g.n2 == 0 || x < 0 || y < 0 || x > S(g.n1-1) || y > S(g.n2-1) {
		check.Preconditionf(g.TypeName(), "Bilinear",
			"position (%v, %v) outside of the grid %dx%d", x, y, g.n1, g.n2)
	}

	i0, u := cell(x, g.n1)
	j0, v := cell(y, g.n2)

	i1, j1 := min(i0+1, g.n1-1), min(j0+1, g.n2-1)

	return (1-u)*(1-v)*g.AtUnchecked(i0, j0) +
		u*(1-v)*g.AtUnchecked(i1, j0) +
		(1-u)*v*g.AtUnchecked(i0, j1) +
		u*v*g.AtUnchecked(i1, j1)
}

// cell returns the index of the cell containing x and the relative position within it.
func cell[S gm.Float](x S, n int) (int, S) {
	idx := min(int(math.Floor(float64(x))), max(n-2, 0))
	return idx, x - S(idx)
}
