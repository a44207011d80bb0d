package brandkit

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"time"

	"github.com/blockrun/brandkit/internal/catalog"
	"github.com/blockrun/brandkit/internal/fileutil"
	"github.com/blockrun/brandkit/internal/raster"
)

// Exporter renders the brand kit catalog to PNG files.
// Create with NewExporter and call Run; an Exporter holds no state between runs.
type Exporter struct {
	cfg     exporterConfig
	catalog *catalog.Catalog
}

// NewExporter creates an Exporter for the built-in catalog.
func NewExporter(opts ...Option) (*Exporter, error) {
	e := &Exporter{cfg: exporterConfig{root: "."}}

	for _, opt := range opts {
		opt(e)
	}

	c, err := catalog.Default()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrLoadCatalog, err)
	}
	e.catalog = c

	return e, nil
}

// CheckRasterizer renders a built-in probe image to confirm SVG rendering works.
func CheckRasterizer() error {
	if err := raster.Probe(); err != nil {
		return fmt.Errorf("%w: %v", ErrRasterizerUnavailable, err)
	}
	return nil
}

// Run creates the output directories and executes every export pass in order.
// Missing sources are recorded in the report and skipped. Any other failure
// stops the run and is returned with the partial report. The context is
// checked between files only, so a file is never left half written.
func (e *Exporter) Run(ctx context.Context) (*Report, error) {
	report := &Report{Root: e.cfg.root, Dirs: e.catalog.Dirs()}

	if err := fileutil.EnsureDirs(e.cfg.root, report.Dirs...); err != nil {
		return report, fmt.Errorf("%w: %w", ErrCreateDir, err)
	}

	for _, pass := range e.catalog.Plan() {
		e.emit(Event{Kind: EventPassStarted, Pass: pass.Name, Title: pass.Title})

		for _, g := range pass.Groups {
			if err := e.runGroup(ctx, pass.Name, g, report); err != nil {
				return report, err
			}
		}

		e.emit(Event{Kind: EventPassFinished, Pass: pass.Name, Title: pass.Title})
	}

	return report, nil
}

func (e *Exporter) runGroup(ctx context.Context, pass string, g catalog.Group, report *Report) error {
	srcPath := filepath.Join(e.cfg.root, g.Source.Path)

	if !fileutil.FileExists(srcPath) {
		report.Missing = append(report.Missing, MissingSource{Pass: pass, Label: g.Label, Path: g.Source.Path})
		e.emit(Event{Kind: EventSourceMissing, Pass: pass, Title: g.Label, Source: g.Source.Path})
		return nil
	}

	e.emit(Event{Kind: EventGroupStarted, Pass: pass, Title: g.Label, Source: g.Source.Path})

	svg, err := os.ReadFile(srcPath) // #nosec G304 -- fixed catalog path
	if err != nil {
		return fmt.Errorf("%w: %w", ErrReadSource, err)
	}

	r := newGroupRenderer(svg)
	for _, spec := range g.Specs {
		if err := ctx.Err(); err != nil {
			return err
		}

		start := time.Now()

		img, err := r.image(spec.Recipe)
		if err != nil {
			return fmt.Errorf("%w: %s: %w", ErrRasterize, g.Source.Path, err)
		}

		if err := raster.WritePNG(img, filepath.Join(e.cfg.root, spec.Path)); err != nil {
			return fmt.Errorf("%w: %w", ErrWritePNG, err)
		}

		size := img.Bounds().Size()
		out := Output{
			Pass:     pass,
			Path:     spec.Path,
			Source:   g.Source.Path,
			Width:    size.X,
			Height:   size.Y,
			Duration: time.Since(start),
		}
		report.Created = append(report.Created, out)
		e.emit(Event{Kind: EventFileCreated, Pass: pass, Title: g.Label, Source: g.Source.Path, Output: &out})
	}

	return nil
}

func (e *Exporter) emit(ev Event) {
	if e.cfg.observer != nil {
		e.cfg.observer(ev)
	}
}

// groupRenderer memoizes intermediates for the outputs of one source.
// Rasters are keyed by render size, finished images by recipe.
type groupRenderer struct {
	svg      []byte
	rendered map[raster.Size]*image.RGBA
	composed map[catalog.Recipe]image.Image
}

func newGroupRenderer(svg []byte) *groupRenderer {
	return &groupRenderer{
		svg:      svg,
		rendered: make(map[raster.Size]*image.RGBA),
		composed: make(map[catalog.Recipe]image.Image),
	}
}

func (g *groupRenderer) render(size raster.Size) (*image.RGBA, error) {
	if img, ok := g.rendered[size]; ok {
		return img, nil
	}
	img, err := raster.Rasterize(g.svg, size)
	if err != nil {
		return nil, err
	}
	g.rendered[size] = img
	return img, nil
}

func (g *groupRenderer) image(r catalog.Recipe) (image.Image, error) {
	if img, ok := g.composed[r]; ok {
		return img, nil
	}

	rendered, err := g.render(r.Render)
	if err != nil {
		return nil, err
	}

	var img image.Image = rendered
	if !r.Resize.IsZero() {
		if img, err = raster.Resize(img, r.Resize); err != nil {
			return nil, err
		}
	}

	if !r.Canvas.IsZero() {
		switch r.Placement {
		case catalog.PlaceCenter:
			img, err = raster.CenterComposite(img, r.Canvas, r.Background)
		default:
			img, err = raster.CompositeOnBackground(img, r.Canvas, r.Background)
		}
		if err != nil {
			return nil, err
		}
	}

	g.composed[r] = img
	return img, nil
}
