package raster_test

// Notes:
// - Fixtures are tiny inline SVGs: a filled circle centred in its viewBox,
//   which leaves the four corners transparent at every size.
// - Blending of partially transparent edges is left to x/image/draw; we only
//   assert exact values where the source is fully opaque or fully clear.
// These are acceptable gaps: we test observable behavior, not implementation details.

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/blockrun/brandkit/internal/raster"
)

const circleSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <circle cx="50" cy="50" r="30" fill="#2563EB"/>
</svg>`

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	blue  = color.RGBA{R: 0x25, G: 0x63, B: 0xeb, A: 0xff}
	red   = color.RGBA{R: 0xff, A: 0xff}
)

func solid(size raster.Size, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	for y := 0; y < size.H; y++ {
		for x := 0; x < size.W; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

// near reports whether two colours differ by at most one step per channel.
func near(a, b color.RGBA) bool {
	d := func(x, y uint8) bool {
		diff := int(x) - int(y)
		return diff >= -1 && diff <= 1
	}
	return d(a.R, b.R) && d(a.G, b.G) && d(a.B, b.B) && d(a.A, b.A)
}

func corners(img image.Image) []image.Point {
	b := img.Bounds()
	return []image.Point{
		{b.Min.X, b.Min.Y},
		{b.Max.X - 1, b.Min.Y},
		{b.Min.X, b.Max.Y - 1},
		{b.Max.X - 1, b.Max.Y - 1},
	}
}

// ---------------------------------------------------------------------------
// TestRasterize - SVG to RGBA at exact dimensions
// ---------------------------------------------------------------------------

func TestRasterize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		size raster.Size
	}{
		{name: "favicon 16", size: raster.Square(16)},
		{name: "apple touch 180", size: raster.Square(180)},
		{name: "large 1024", size: raster.Square(1024)},
		{name: "wordmark 160x50", size: raster.Size{W: 160, H: 50}},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			img, err := raster.Rasterize([]byte(circleSVG), tt.size)
			if err != nil {
				t.Fatalf("Rasterize() error = %v", err)
			}

			got := img.Bounds().Size()
			if got.X != tt.size.W || got.Y != tt.size.H {
				t.Errorf("size = %dx%d, want %s", got.X, got.Y, tt.size)
			}

			for _, p := range corners(img) {
				if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
					t.Errorf("corner %v alpha = %d, want 0", p, a)
				}
			}

			center := img.RGBAAt(tt.size.W/2, tt.size.H/2)
			if !near(center, blue) {
				t.Errorf("center = %v, want %v", center, blue)
			}
		})
	}
}

func TestRasterize_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		svg     string
		size    raster.Size
		wantErr error
	}{
		{
			name:    "unclosed element",
			svg:     `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 10 10"><path d="M0 0`,
			size:    raster.Square(16),
			wantErr: raster.ErrInvalidSVG,
		},
		{
			name:    "missing viewBox",
			svg:     `<svg xmlns="http://www.w3.org/2000/svg"><rect width="1" height="1"/></svg>`,
			size:    raster.Square(16),
			wantErr: raster.ErrInvalidSVG,
		},
		{
			name:    "unsupported text element",
			svg:     `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 320 100"><text x="10" y="60">BlockRun</text></svg>`,
			size:    raster.Size{W: 160, H: 50},
			wantErr: raster.ErrInvalidSVG,
		},
		{
			name:    "zero width",
			svg:     circleSVG,
			size:    raster.Size{W: 0, H: 16},
			wantErr: raster.ErrInvalidSize,
		},
		{
			name:    "negative height",
			svg:     circleSVG,
			size:    raster.Size{W: 16, H: -1},
			wantErr: raster.ErrInvalidSize,
		},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := raster.Rasterize([]byte(tt.svg), tt.size)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Rasterize() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRasterize_FitsAndCentres(t *testing.T) {
	t.Parallel()

	// A circle touching all four edges of a square viewBox.
	const fullCircle = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 100 100">
  <circle cx="50" cy="50" r="50" fill="#2563EB"/>
</svg>`

	img, err := raster.Rasterize([]byte(fullCircle), raster.Size{W: 320, H: 100})
	if err != nil {
		t.Fatalf("Rasterize() error = %v", err)
	}
	if got := img.Bounds().Size(); got != image.Pt(320, 100) {
		t.Fatalf("size = %v, want 320x100", got)
	}

	// Scaled uniformly to 100x100 and placed at x 110..210.
	for _, p := range []image.Point{{5, 50}, {105, 50}, {214, 50}, {315, 50}} {
		if a := img.RGBAAt(p.X, p.Y).A; a != 0 {
			t.Errorf("margin pixel %v alpha = %d, want 0", p, a)
		}
	}
	for _, p := range []image.Point{{115, 50}, {160, 50}, {205, 50}, {160, 5}, {160, 95}} {
		if got := img.RGBAAt(p.X, p.Y); !near(got, blue) {
			t.Errorf("logo pixel %v = %v, want %v", p, got, blue)
		}
	}
}

func TestNear(t *testing.T) {
	t.Parallel()

	black := color.RGBA{A: 0xff}
	tests := []struct {
		name string
		a, b color.RGBA
		want bool
	}{
		{"equal", blue, blue, true},
		{"one step up", blue, color.RGBA{R: 0x26, G: 0x63, B: 0xeb, A: 0xff}, true},
		{"one step down", blue, color.RGBA{R: 0x24, G: 0x62, B: 0xea, A: 0xfe}, true},
		{"two steps", blue, color.RGBA{R: 0x27, G: 0x63, B: 0xeb, A: 0xff}, false},
		{"black and white", black, white, false},
		{"white and black", white, black, false},
	}
	for _, tt := range tests {
		tt := tt
		if got := near(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: near(%v, %v) = %v, want %v", tt.name, tt.a, tt.b, got, tt.want)
		}
	}
}

func TestRasterize_Deterministic(t *testing.T) {
	t.Parallel()

	a, err := raster.Rasterize([]byte(circleSVG), raster.Square(64))
	if err != nil {
		t.Fatal(err)
	}
	b, err := raster.Rasterize([]byte(circleSVG), raster.Square(64))
	if err != nil {
		t.Fatal(err)
	}

	if string(a.Pix) != string(b.Pix) {
		t.Error("two renders of the same source differ")
	}
}

// ---------------------------------------------------------------------------
// TestCompositeOnBackground - Opaque canvas, source at origin
// ---------------------------------------------------------------------------

func TestCompositeOnBackground(t *testing.T) {
	t.Parallel()

	logo, err := raster.Rasterize([]byte(circleSVG), raster.Square(48))
	if err != nil {
		t.Fatal(err)
	}

	for _, bg := range []color.RGBA{white, {A: 0xff}, blue} {
		out, err := raster.CompositeOnBackground(logo, raster.Square(48), bg)
		if err != nil {
			t.Fatalf("CompositeOnBackground() error = %v", err)
		}

		if !out.Opaque() {
			t.Errorf("bg %v: result is not opaque", bg)
		}
		for _, p := range corners(out) {
			if got := out.RGBAAt(p.X, p.Y); got != bg {
				t.Errorf("bg %v: corner %v = %v", bg, p, got)
			}
		}
		if got := out.RGBAAt(24, 24); !near(got, blue) {
			t.Errorf("bg %v: center = %v, want logo colour %v", bg, got, blue)
		}
	}
}

func TestCompositeOnBackground_OpaqueSourceIsCopied(t *testing.T) {
	t.Parallel()

	out, err := raster.CompositeOnBackground(solid(raster.Square(2), red), raster.Square(4), white)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		at   image.Point
		want color.RGBA
	}{
		{image.Pt(0, 0), red},
		{image.Pt(1, 1), red},
		{image.Pt(2, 0), white},
		{image.Pt(3, 3), white},
	}
	for _, tt := range tests {
		tt := tt
		if got := out.RGBAAt(tt.at.X, tt.at.Y); got != tt.want {
			t.Errorf("pixel %v = %v, want %v", tt.at, got, tt.want)
		}
	}
}

func TestCompositeOnBackground_HalfTransparent(t *testing.T) {
	t.Parallel()

	// 50% black, premultiplied.
	src := solid(raster.Square(1), color.RGBA{A: 0x80})
	out, err := raster.CompositeOnBackground(src, raster.Square(1), white)
	if err != nil {
		t.Fatal(err)
	}

	got := out.RGBAAt(0, 0)
	if got.A != 0xff {
		t.Errorf("alpha = %d, want 255", got.A)
	}
	if got.R == 0 || got.R == 0xff {
		t.Errorf("red = %d, want a blend strictly between 0 and 255", got.R)
	}
}

func TestCompositeOnBackground_InvalidCanvas(t *testing.T) {
	t.Parallel()

	_, err := raster.CompositeOnBackground(solid(raster.Square(1), red), raster.Size{}, white)
	if !errors.Is(err, raster.ErrInvalidSize) {
		t.Errorf("error = %v, want %v", err, raster.ErrInvalidSize)
	}
}

// ---------------------------------------------------------------------------
// TestCenterComposite - Centred placement
// ---------------------------------------------------------------------------

func TestCenterOffset(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		inner  image.Point
		canvas raster.Size
		want   image.Point
	}{
		{name: "profile", inner: image.Pt(240, 240), canvas: raster.Square(400), want: image.Pt(80, 80)},
		{name: "open graph", inner: image.Pt(300, 300), canvas: raster.Size{W: 1200, H: 630}, want: image.Pt(450, 165)},
		{name: "odd remainder", inner: image.Pt(2, 2), canvas: raster.Size{W: 5, H: 5}, want: image.Pt(1, 1)},
		{name: "same size", inner: image.Pt(8, 8), canvas: raster.Square(8), want: image.Pt(0, 0)},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := raster.CenterOffset(tt.inner, tt.canvas); got != tt.want {
				t.Errorf("CenterOffset(%v, %s) = %v, want %v", tt.inner, tt.canvas, got, tt.want)
			}
		})
	}
}

func TestCenterComposite(t *testing.T) {
	t.Parallel()

	out, err := raster.CenterComposite(solid(raster.Square(2), red), raster.Size{W: 6, H: 4}, blue)
	if err != nil {
		t.Fatal(err)
	}

	if got := out.Bounds().Size(); got != image.Pt(6, 4) {
		t.Fatalf("size = %v, want 6x4", got)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			want := blue
			if x >= 2 && x < 4 && y >= 1 && y < 3 {
				want = red
			}
			if got := out.RGBAAt(x, y); got != want {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
			}
		}
	}
}

// ---------------------------------------------------------------------------
// TestResize - High quality resampling
// ---------------------------------------------------------------------------

func TestResize(t *testing.T) {
	t.Parallel()

	logo, err := raster.Rasterize([]byte(circleSVG), raster.Square(240))
	if err != nil {
		t.Fatal(err)
	}

	out, err := raster.Resize(logo, raster.Square(300))
	if err != nil {
		t.Fatalf("Resize() error = %v", err)
	}
	if got := out.Bounds().Size(); got != image.Pt(300, 300) {
		t.Errorf("size = %v, want 300x300", got)
	}
	if got := out.RGBAAt(150, 150); !near(got, blue) {
		t.Errorf("center = %v, want %v", got, blue)
	}
	if a := out.RGBAAt(0, 0).A; a != 0 {
		t.Errorf("corner alpha = %d, want 0", a)
	}

	if _, err := raster.Resize(logo, raster.Size{W: 10}); !errors.Is(err, raster.ErrInvalidSize) {
		t.Errorf("zero height error = %v, want %v", err, raster.ErrInvalidSize)
	}
}

// ---------------------------------------------------------------------------
// TestWritePNG - Encoding and parent directory creation
// ---------------------------------------------------------------------------

// pngColorType reads the IHDR colour type byte: 2 = RGB, 6 = RGBA.
func pngColorType(t *testing.T, data []byte) byte {
	t.Helper()
	if len(data) < 26 {
		t.Fatalf("PNG too short: %d bytes", len(data))
	}
	return data[25]
}

func TestWritePNG(t *testing.T) {
	t.Parallel()

	logo, err := raster.Rasterize([]byte(circleSVG), raster.Square(32))
	if err != nil {
		t.Fatal(err)
	}
	opaque, err := raster.CompositeOnBackground(logo, raster.Square(32), white)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name          string
		img           image.Image
		wantColorType byte
	}{
		{name: "transparent keeps alpha", img: logo, wantColorType: 6},
		{name: "opaque drops alpha", img: opaque, wantColorType: 2},
	}

	for _, tt := range tests {

		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := filepath.Join(t.TempDir(), "nested", "dir", "out.png")
			if err := raster.WritePNG(tt.img, path); err != nil {
				t.Fatalf("WritePNG() error = %v", err)
			}

			data, err := os.ReadFile(path) // #nosec G304 -- test temp path
			if err != nil {
				t.Fatal(err)
			}
			if got := pngColorType(t, data); got != tt.wantColorType {
				t.Errorf("colour type = %d, want %d", got, tt.wantColorType)
			}

			f, err := os.Open(path) // #nosec G304 -- test temp path
			if err != nil {
				t.Fatal(err)
			}
			defer f.Close()

			cfg, err := png.DecodeConfig(f)
			if err != nil {
				t.Fatalf("DecodeConfig() error = %v", err)
			}
			if cfg.Width != 32 || cfg.Height != 32 {
				t.Errorf("decoded size = %dx%d, want 32x32", cfg.Width, cfg.Height)
			}
		})
	}
}

func TestWritePNG_ParentIsFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	blocker := filepath.Join(dir, "png")
	if err := os.WriteFile(blocker, []byte("x"), 0o600); err != nil {
		t.Fatal(err)
	}

	err := raster.WritePNG(solid(raster.Square(1), red), filepath.Join(blocker, "logo.png"))
	if err == nil {
		t.Fatal("expected error when parent path is a file")
	}
}

// ---------------------------------------------------------------------------
// TestProbe - Capability check
// ---------------------------------------------------------------------------

func TestProbe(t *testing.T) {
	t.Parallel()

	if err := raster.Probe(); err != nil {
		t.Errorf("Probe() error = %v", err)
	}
}
