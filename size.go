package patchwork

import (
	"fmt"
	"math"
)

type Size struct {
	Width  float64
	Height float64
}

// Paper sizes in centimetres, portrait.
var (
	Letter       = Sz(21.59, 27.94)
	Tabloid      = Sz(27.94, 43.18)
	A4           = Sz(21.0, 29.7)
	A3           = Sz(29.7, 42.0)
	SquarePoster = Sz(30.48, 30.48)
)

// PaperSizes maps the names accepted on the command line to paper sizes.
var PaperSizes = map[string]Size{
	"letter":        Letter,
	"tabloid":       Tabloid,
	"a4":            A4,
	"a3":            A3,
	"square-poster": SquarePoster,
}

// Sz returns the size w×h.
func Sz(w, h float64) Size {
	return Size{
		Width:  w,
		Height: h,
	}
}

func (sz Size) String() string {
	return fmt.Sprintf("%g×%g", sz.Width, sz.Height)
}

// Landscape returns the size with the longer side horizontal.
func (sz Size) Landscape() Size {
	if sz.Width >= sz.Height {
		return sz
	}
	return Size{Width: sz.Height, Height: sz.Width}
}

// Portrait returns the size with the longer side vertical.
func (sz Size) Portrait() Size {
	if sz.Height >= sz.Width {
		return sz
	}
	return Size{Width: sz.Height, Height: sz.Width}
}

// Rect returns the rectangle of this size anchored at the origin.
func (sz Size) Rect() Rect {
	return Rect{0, 0, sz.Width, sz.Height}
}

// IsInf reports whether at least one of width and height is infinite.
func (sz Size) IsInf() bool {
	return math.IsInf(sz.Width, 0) || math.IsInf(sz.Height, 0)
}

// IsNaN reports whether at least one of width and height is NaN.
func (sz Size) IsNaN() bool {
	return math.IsNaN(sz.Width) || math.IsNaN(sz.Height)
}
