package svgplot

import (
	"bytes"
	"encoding/xml"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"honnef.co/go/patchwork"
)

type svgDoc struct {
	Width   string `xml:"width,attr"`
	Height  string `xml:"height,attr"`
	ViewBox string `xml:"viewBox,attr"`
	Groups  []struct {
		ID    string `xml:"id,attr"`
		Style string `xml:"style,attr"`
		Paths []struct {
			D     string `xml:"d,attr"`
			Style string `xml:"style,attr"`
		} `xml:"path"`
		Circles []struct {
			R string `xml:"r,attr"`
		} `xml:"circle"`
		Polygons []struct {
			Points string `xml:"points,attr"`
		} `xml:"polygon"`
	} `xml:"g"`
}

func parse(t *testing.T, b []byte) svgDoc {
	t.Helper()
	var doc svgDoc
	if err := xml.Unmarshal(b, &doc); err != nil {
		t.Fatalf("invalid document: %s\n%s", err, b)
	}
	return doc
}

func triangle(x, y float64) patchwork.Polyline {
	return patchwork.ClosePolyline([]patchwork.Point{
		patchwork.Pt(x, y),
		patchwork.Pt(x+1, y),
		patchwork.Pt(x, y+1),
	})
}

func TestEncodeEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, nil, patchwork.A4, Options{}); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, buf.Bytes())
	if doc.Width != "21cm" || doc.Height != "29.7cm" {
		t.Errorf("got size %s×%s, want 21cm×29.7cm", doc.Width, doc.Height)
	}
	if doc.ViewBox != "0 0 21 29.7" {
		t.Errorf("got viewBox %q", doc.ViewBox)
	}
	if len(doc.Groups) != 1 || len(doc.Groups[0].Paths) != 0 {
		t.Errorf("expected a single empty group, got %+v", doc.Groups)
	}
}

func TestEncodeOnePathPerPolyline(t *testing.T) {
	lines := []patchwork.Polyline{triangle(1, 1), triangle(5, 2)}
	var buf bytes.Buffer
	if err := Encode(&buf, lines, patchwork.A4, Options{}); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, buf.Bytes())
	var got []string
	for _, p := range doc.Groups[0].Paths {
		got = append(got, p.D)
	}
	want := []string{
		"M1,1 L2,1 L1,2 Z",
		"M5,2 L6,2 L5,3 Z",
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
	if s := doc.Groups[0].Paths[0].Style; s != "fill:none;stroke:#000000;stroke-width:0.03" {
		t.Errorf("got style %q", s)
	}
}

func TestEncodePrecision(t *testing.T) {
	lines := []patchwork.Polyline{triangle(1.23456, 1)}
	var buf bytes.Buffer
	if err := Encode(&buf, lines, patchwork.A4, Options{Precision: 2}); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, buf.Bytes())
	if got, want := doc.Groups[0].Paths[0].D, "M1.23,1 L2.23,1 L1.23,2 Z"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestEncodeDebugAndSignature(t *testing.T) {
	opts := Options{
		Debug:     []patchwork.Point{patchwork.Pt(3, 3), patchwork.Pt(4, 4)},
		Signature: "patchwork",
	}
	var buf bytes.Buffer
	if err := Encode(&buf, []patchwork.Polyline{triangle(1, 1)}, patchwork.SquarePoster, opts); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, buf.Bytes())
	groups := map[string]int{}
	for _, g := range doc.Groups {
		groups[g.ID] = len(g.Paths) + len(g.Circles)
	}
	if groups["patches"] != 1 {
		t.Errorf("got %d patches, want 1", groups["patches"])
	}
	if groups["debug"] != 2 {
		t.Errorf("got %d debug circles, want 2", groups["debug"])
	}
	if groups["signature"] == 0 {
		t.Error("signature is empty")
	}
}

func TestQRCodeInsideArea(t *testing.T) {
	area := SignatureArea(patchwork.SquarePoster, 1.5)
	lines, err := QRCode("https://example.com/patchwork", area)
	if err != nil {
		t.Fatal(err)
	}
	if len(lines) == 0 {
		t.Fatal("no modules")
	}
	const eps = 1e-9
	for _, pl := range lines {
		if !pl.Valid() {
			t.Errorf("invalid module outline %v", pl)
		}
		for _, p := range pl {
			if p.X < area.X0-eps || p.X > area.X1+eps || p.Y < area.Y0-eps || p.Y > area.Y1+eps {
				t.Fatalf("point %v outside of %v", p, area)
			}
		}
	}
}

func TestQRCodeEmptyArea(t *testing.T) {
	if _, err := QRCode("x", patchwork.Rect{}); err == nil {
		t.Error("expected an error")
	}
}

func TestEncodePolygons(t *testing.T) {
	lines := []patchwork.Polyline{triangle(1, 1), triangle(2.5, 0.001)}
	var buf bytes.Buffer
	if err := EncodePolygons(&buf, lines, patchwork.Letter, Options{}); err != nil {
		t.Fatal(err)
	}
	doc := parse(t, buf.Bytes())
	if doc.ViewBox != "0 0 21590 27940" {
		t.Errorf("got viewBox %q", doc.ViewBox)
	}
	var got [][]string
	for _, g := range doc.Groups {
		for _, p := range g.Polygons {
			got = append(got, strings.Fields(p.Points))
		}
	}
	want := [][]string{
		{"1000,1000", "2000,1000", "1000,2000"},
		{"2500,1", "3500,1", "2500,1001"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Error(d)
	}
}

type failingWriter struct{}

var errWrite = errors.New("disk full")

func (failingWriter) Write([]byte) (int, error) { return 0, errWrite }

func TestEncodeWriteError(t *testing.T) {
	lines := []patchwork.Polyline{triangle(1, 1)}
	if err := Encode(failingWriter{}, lines, patchwork.A4, Options{}); !errors.Is(err, errWrite) {
		t.Errorf("Encode: got %v, want %v", err, errWrite)
	}
	if err := EncodePolygons(failingWriter{}, lines, patchwork.A4, Options{}); !errors.Is(err, errWrite) {
		t.Errorf("EncodePolygons: got %v, want %v", err, errWrite)
	}
}
