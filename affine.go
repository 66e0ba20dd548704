package patchwork

import "math"

// Affine describes an affine transform via coefficients.
//
// If the coefficients are (a, b, c, d, e, f), then the resulting
// transformation represents this augmented matrix:
//
//	| a c e |
//	| b d f |
//	| 0 0 1 |
//
// Exporters and the window use it to map drawing space (centimetres) to device
// space (pixels, hundredths of a millimetre).
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity is the identity transform.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// Scale creates an affine transform representing non-uniform scaling with
// different scale values for x and y
func Scale(x, y float64) Affine {
	return Affine{x, 0, 0, y, 0, 0}
}

// Translate creates an affine transform representing translation.
func Translate(v Vec2) Affine {
	return Affine{1, 0, 0, 1, v.X, v.Y}
}

// FitRect returns the transform that maps src onto dst, scaled uniformly so
// that all of src is visible and centered in dst.
//
// It returns false if src or dst is empty.
func FitRect(src, dst Rect) (Affine, bool) {
	src, dst = src.Abs(), dst.Abs()
	if src.IsEmpty() || dst.IsEmpty() {
		return Identity, false
	}
	s := min(dst.Width()/src.Width(), dst.Height()/src.Height())
	off := dst.Center().Sub(src.Center().Transform(Scale(s, s)))
	return Scale(s, s).ThenTranslate(off), true
}

// ThenTranslate creates aff followed by a translation of v.
//
// Equivalent to "Translate(v) * aff"
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Determinant computes the determinant.
func (aff Affine) Determinant() float64 {
	return aff.N0*aff.N3 - aff.N1*aff.N2
}

// ScaleFactor returns the factor by which the transform scales lengths. It
// is exact for uniform scales and the geometric mean otherwise.
func (aff Affine) ScaleFactor() float64 {
	return math.Sqrt(math.Abs(aff.Determinant()))
}
