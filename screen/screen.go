// Package screen shows a composition in a desktop window while it is being
// generated.
//
// Ticks run on their own goroutine, driven by a [patchwork.Scheduler]. The
// window only reads snapshots of the composition and never blocks a tick.
package screen

import (
	"context"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"honnef.co/go/patchwork"
	"honnef.co/go/patchwork/raster"
)

// Options control the window.
type Options struct {
	// Title is the window title. Empty means "patchwork".
	Title string
	// PixelsPerCM is the resolution the paper is drawn at. Zero means
	// [raster.DefaultPixelsPerCM].
	PixelsPerCM float64
	// Debug starts with the overlay of remaining points shown. It can be
	// toggled with the D key.
	Debug bool
	// Scheduler configures the ticks. Its Step is replaced by the
	// composition's. Nil means [patchwork.Composition.Scheduler].
	Scheduler *patchwork.Scheduler
}

// Run opens a window showing comp and ticks it until the window is closed,
// Escape is pressed or ctx is done. It blocks until then and must be called
// from the main goroutine.
//
// Closing the window is not an error. If the scheduler stops by itself, the
// window stays open showing the final state.
func Run(ctx context.Context, comp *patchwork.Composition, opts Options) error {
	if opts.PixelsPerCM <= 0 {
		opts.PixelsPerCM = raster.DefaultPixelsPerCM
	}
	if opts.Title == "" {
		opts.Title = "patchwork"
	}
	sched := comp.Scheduler()
	if opts.Scheduler != nil {
		s := *opts.Scheduler
		sched = &s
	}
	sched.Step = comp.Step

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		wg       sync.WaitGroup
		schedErr error
	)
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := sched.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
			schedErr = err
		}
	}()

	g := newGame(ctx, comp, opts)
	b := g.base.Bounds()
	ebiten.SetWindowTitle(opts.Title)
	ebiten.SetWindowSize(b.Dx(), b.Dy())
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(ebiten.DefaultTPS)
	err := ebiten.RunGame(g)

	cancel()
	wg.Wait()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return schedErr
}

type game struct {
	ctx  context.Context
	comp *patchwork.Composition
	aff  patchwork.Affine

	// base holds every patch drawn so far. Patches never change once
	// appended, so only new ones are drawn on each frame.
	base   *image.RGBA
	canvas *raster.Canvas
	drawn  int

	debug   bool
	overlay *image.RGBA
	frame   *ebiten.Image
}

func newGame(ctx context.Context, comp *patchwork.Composition, opts Options) *game {
	paper := comp.Config().Paper
	base := image.NewRGBA(raster.Bounds(paper, opts.PixelsPerCM))
	draw.Draw(base, base.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	aff := patchwork.Scale(opts.PixelsPerCM, opts.PixelsPerCM)
	return &game{
		ctx:    ctx,
		comp:   comp,
		aff:    aff,
		base:   base,
		canvas: raster.NewCanvas(base, aff),
		debug:  opts.Debug,
	}
}

func (g *game) Update() error {
	if g.ctx.Err() != nil || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyD) {
		g.debug = !g.debug
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	lines := g.comp.Lines()
	if len(lines) > g.drawn {
		patchwork.DrawPolylines(g.canvas, lines[g.drawn:], patchwork.DefaultStroke)
		g.drawn = len(lines)
	}

	src := g.base
	if g.debug {
		if g.overlay == nil {
			g.overlay = image.NewRGBA(g.base.Bounds())
		}
		copy(g.overlay.Pix, g.base.Pix)
		patchwork.DrawPoints(raster.NewCanvas(g.overlay, g.aff), g.comp.Points(), patchwork.DebugPointRadius, patchwork.DebugPointStroke)
		src = g.overlay
	}

	if g.frame == nil {
		b := g.base.Bounds()
		g.frame = ebiten.NewImage(b.Dx(), b.Dy())
	}
	g.frame.WritePixels(src.Pix)
	screen.Fill(color.White)

	// Fit the paper into the window, keeping its aspect ratio.
	sb := screen.Bounds()
	fb := g.frame.Bounds()
	aff, ok := patchwork.FitRect(
		patchwork.Rect{X1: float64(fb.Dx()), Y1: float64(fb.Dy())},
		patchwork.Rect{X1: float64(sb.Dx()), Y1: float64(sb.Dy())},
	)
	if !ok {
		return
	}
	var op ebiten.DrawImageOptions
	op.GeoM.SetElement(0, 0, aff.N0)
	op.GeoM.SetElement(1, 0, aff.N1)
	op.GeoM.SetElement(0, 1, aff.N2)
	op.GeoM.SetElement(1, 1, aff.N3)
	op.GeoM.SetElement(0, 2, aff.N4)
	op.GeoM.SetElement(1, 2, aff.N5)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(g.frame, &op)
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return outsideWidth, outsideHeight
}
