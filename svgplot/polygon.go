package svgplot

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"

	"honnef.co/go/patchwork"
)

// PolygonUnitsPerCM is the resolution of [EncodePolygons]: coordinates are
// integers in hundredths of a millimetre.
const PolygonUnitsPerCM = 1000

// EncodePolygons writes lines as a compact SVG document with one polygon
// element per polyline. Coordinates are rounded to [PolygonUnitsPerCM].
// Only opts.Stroke and opts.Signature are used.
func EncodePolygons(w io.Writer, lines []patchwork.Polyline, size patchwork.Size, opts Options) error {
	if opts.Stroke.Color == nil {
		opts.Stroke = patchwork.DefaultStroke
	}
	if opts.Signature != "" {
		sig, err := QRCode(opts.Signature, SignatureArea(size, opts.SignatureSize))
		if err != nil {
			return err
		}
		lines = append(lines[:len(lines):len(lines)], sig...)
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Startraw(
		fmt.Sprintf(`width="%scm"`, patchwork.FormatCoord(size.Width, 0)),
		fmt.Sprintf(`height="%scm"`, patchwork.FormatCoord(size.Height, 0)),
		fmt.Sprintf(`viewBox="0 0 %d %d"`, units(size.Width), units(size.Height)),
	)
	canvas.Gstyle(fmt.Sprintf("fill:none;stroke:%s;stroke-width:%d;stroke-linejoin:round",
		hexColor(opts.Stroke.Color), max(1, units(opts.Stroke.Width))))
	for _, pl := range lines {
		vs := pl.Vertices()
		if len(vs) == 0 {
			continue
		}
		xs := make([]int, len(vs))
		ys := make([]int, len(vs))
		for i, v := range vs {
			xs[i], ys[i] = units(v.X), units(v.Y)
		}
		canvas.Polygon(xs, ys)
	}
	canvas.Gend()
	canvas.End()
	if ew.err != nil {
		return fmt.Errorf("svgplot: %w", ew.err)
	}
	return nil
}

func units(cm float64) int { return int(math.Round(cm * PolygonUnitsPerCM)) }

// errWriter remembers the first error and drops everything after it.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(b []byte) (int, error) {
	if ew.err != nil {
		return len(b), nil
	}
	var n int
	n, ew.err = ew.w.Write(b)
	return n, ew.err
}
