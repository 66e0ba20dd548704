// Command patchwork generates line art for pen plotters.
//
// By default it runs without a window until the point cloud is used up and
// writes the result to a file. The extension of the output file selects the
// format: .svg for plotter-ready SVG and .png for a raster preview.
//
//	patchwork -paper a3 -points 20000 -k 4 -o piece.svg
//	patchwork -window -debug
//
// Finished pieces can be kept in a database with -archive-driver and
// -archive-dsn.
package main

import (
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"honnef.co/go/patchwork"
	"honnef.co/go/patchwork/archive"
	"honnef.co/go/patchwork/archive/drivers"
	"honnef.co/go/patchwork/raster"
	"honnef.co/go/patchwork/screen"
	"honnef.co/go/patchwork/svgplot"
)

type options struct {
	paper     string
	landscape bool
	fps       float64
	window    bool
	ticks     uint64
	stall     int
	out       string
	format    string
	debug     bool
	sign      string
	ppcm      float64
	verbose   bool

	archive archive.Config
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("patchwork: ")

	cfg := patchwork.DefaultConfig()
	var opts options
	flag.StringVar(&opts.paper, "paper", "square-poster", "Paper size: "+strings.Join(paperNames(), ", ")+".")
	flag.BoolVar(&opts.landscape, "landscape", true, "Use landscape orientation.")
	flag.IntVar(&cfg.PointCount, "points", cfg.PointCount, "Number of points to start with.")
	flag.IntVar(&cfg.ClusterCount, "k", cfg.ClusterCount, "Number of clusters per tick. Lower values give bigger patches.")
	flag.Float64Var(&cfg.Margin, "margin", cfg.Margin, "Margin in centimetres.")
	flag.Float64Var(&opts.fps, "fps", 30, "Ticks per second.")
	flag.Uint64Var(&cfg.Seed, "seed", 0, "Random seed (0 = pick one).")
	flag.BoolVar(&opts.window, "window", false, "Show the composition in a window while it is generated.")
	flag.Uint64Var(&opts.ticks, "ticks", 0, "Stop after N ticks (0 = run until the cloud is used up).")
	flag.IntVar(&opts.stall, "stall", 300, "Stop after N consecutive ticks without a new patch (0 = never).")
	flag.StringVar(&opts.out, "o", "patchwork.svg", "Output file; the extension selects SVG or PNG.")
	flag.StringVar(&opts.format, "format", "plot", "SVG encoding: plot (one path per patch) or polygon (compact).")
	flag.BoolVar(&opts.debug, "debug", false, "Mark the remaining points.")
	flag.StringVar(&opts.sign, "sign", "", "Encode this text as a QR code in the bottom right margin.")
	flag.Float64Var(&opts.ppcm, "ppcm", raster.DefaultPixelsPerCM, "Pixels per centimetre for PNG output and the window.")
	flag.StringVar(&opts.archive.Driver, "archive-driver", "", "Archive the result in a database: sqlite, pgx or genji.")
	flag.StringVar(&opts.archive.DSN, "archive-dsn", "", "Data source of the archive database.")
	flag.BoolVar(&opts.verbose, "v", false, "Log progress.")
	flag.Parse()

	if err := run(cfg, opts); err != nil {
		log.Fatal(err)
	}
}

func paperNames() []string {
	var names []string
	for name := range patchwork.PaperSizes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func run(cfg patchwork.Config, opts options) error {
	paper, ok := patchwork.PaperSizes[opts.paper]
	if !ok {
		return fmt.Errorf("unknown paper size %q", opts.paper)
	}
	if opts.landscape {
		cfg.Paper = paper.Landscape()
	} else {
		cfg.Paper = paper.Portrait()
	}
	if !(opts.fps > 0) {
		return fmt.Errorf("invalid tick rate %v", opts.fps)
	}
	cfg.TickPeriod = time.Duration(float64(time.Second) / opts.fps)

	logf := func(string, ...any) {}
	if opts.verbose {
		logf = log.Printf
	}

	comp, err := patchwork.New(cfg)
	if err != nil {
		return err
	}
	logf("%d points on %s paper, k = %d, seed %d", cfg.PointCount, comp.Config().Paper, cfg.ClusterCount, comp.Config().Seed)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	sched := comp.Scheduler()
	sched.MaxTicks = opts.ticks
	sched.StallLimit = opts.stall
	sched.Logf = logf
	if opts.verbose {
		sched.OnTick = func(res patchwork.Result) {
			if res.Outcome == patchwork.Extracted {
				if n := comp.Stats().Extracted; n%100 == 0 {
					logf("%d patches, %d points left", n, res.Remaining)
				}
			}
		}
	}

	start := time.Now()
	if opts.window {
		err = screen.Run(ctx, comp, screen.Options{
			PixelsPerCM: opts.ppcm,
			Debug:       opts.debug,
			Scheduler:   sched,
		})
	} else {
		err = sched.Run(ctx)
	}
	if errors.Is(err, context.Canceled) {
		log.Print("interrupted, writing what we have")
	} else if err != nil {
		return err
	}
	st := comp.Stats()
	logf("%d patches from %d ticks in %s, %d of %d points left",
		st.Extracted, st.Ticks, time.Since(start).Round(time.Millisecond), st.Remaining, st.Initial)

	doc, err := export(comp, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.out, doc, 0o644); err != nil {
		return err
	}
	logf("wrote %s", opts.out)

	if opts.archive.Driver != "" || opts.archive.DSN != "" {
		if !strings.EqualFold(filepath.Ext(opts.out), ".svg") {
			// The archive keeps plotter-ready documents.
			svgOpts := opts
			svgOpts.out, svgOpts.format = "archive.svg", "plot"
			if doc, err = export(comp, svgOpts); err != nil {
				return err
			}
		}
		return save(comp, doc, opts, logf)
	}
	return nil
}

func export(comp *patchwork.Composition, opts options) ([]byte, error) {
	paper := comp.Config().Paper
	lines := comp.Lines()
	var debug []patchwork.Point
	if opts.debug {
		debug = comp.Points()
	}

	var buf bytes.Buffer
	var err error
	switch ext := strings.ToLower(filepath.Ext(opts.out)); ext {
	case ".svg":
		svgOpts := svgplot.Options{
			Debug:         debug,
			Signature:     opts.sign,
			SignatureSize: comp.Config().Margin * 0.75,
			Precision:     3,
		}
		switch opts.format {
		case "plot":
			err = svgplot.Encode(&buf, lines, paper, svgOpts)
		case "polygon":
			err = svgplot.EncodePolygons(&buf, lines, paper, svgOpts)
		default:
			return nil, fmt.Errorf("unknown SVG format %q", opts.format)
		}
	case ".png":
		err = raster.EncodePNG(&buf, lines, paper, raster.Options{
			PixelsPerCM: opts.ppcm,
			Debug:       debug,
		})
	default:
		return nil, fmt.Errorf("unsupported output format %q", ext)
	}
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func save(comp *patchwork.Composition, doc []byte, opts options, logf func(string, ...any)) error {
	drivers.Ready()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	store, err := archive.Open(ctx, opts.archive, logf)
	if err != nil {
		return err
	}
	defer store.Close()
	rec := archive.NewRecord(comp, doc)
	if err := store.Save(ctx, rec); err != nil {
		return err
	}
	log.Printf("archived as %s", rec.ID)
	return nil
}
