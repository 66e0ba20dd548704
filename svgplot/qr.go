package svgplot

import (
	"fmt"

	"github.com/skip2/go-qrcode"

	"honnef.co/go/patchwork"
)

// QRCode encodes data as a QR code filling area and returns its dark modules
// as closed outlines that a plotter can draw. Horizontally adjacent modules
// are merged into one rectangle.
func QRCode(data string, area patchwork.Rect) ([]patchwork.Polyline, error) {
	area = area.Abs()
	if area.IsEmpty() {
		return nil, fmt.Errorf("svgplot: empty signature area %v", area)
	}
	qr, err := qrcode.New(data, qrcode.Highest)
	if err != nil {
		return nil, fmt.Errorf("svgplot: encoding signature: %w", err)
	}
	qr.DisableBorder = true
	bitmap := qr.Bitmap()
	if len(bitmap) == 0 {
		return nil, nil
	}

	n := float64(len(bitmap))
	mw, mh := area.Width()/n, area.Height()/n
	var out []patchwork.Polyline
	for row, bits := range bitmap {
		y0 := area.Y0 + float64(row)*mh
		for col := 0; col < len(bits); {
			if !bits[col] {
				col++
				continue
			}
			start := col
			for col < len(bits) && bits[col] {
				col++
			}
			x0 := area.X0 + float64(start)*mw
			x1 := area.X0 + float64(col)*mw
			out = append(out, patchwork.ClosePolyline([]patchwork.Point{
				{X: x0, Y: y0},
				{X: x1, Y: y0},
				{X: x1, Y: y0 + mh},
				{X: x0, Y: y0 + mh},
			}))
		}
	}
	return out, nil
}
