// Package raster renders SVG sources to RGBA buffers and composes them onto
// solid-colour canvases for PNG output.
package raster

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
)

// Sentinel errors for raster operations.
var (
	ErrInvalidSVG  = errors.New("invalid SVG")
	ErrInvalidSize = errors.New("invalid raster size")
)

// Size is a pixel dimension pair.
type Size struct {
	W int `yaml:"width"`
	H int `yaml:"height"`
}

// Square returns a size with equal width and height.
func Square(n int) Size {
	return Size{W: n, H: n}
}

// IsZero reports whether s is the zero size.
func (s Size) IsZero() bool {
	return s.W == 0 && s.H == 0
}

// Validate checks that both dimensions are positive.
func (s Size) Validate() error {
	if s.W <= 0 || s.H <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, s.W, s.H)
	}
	return nil
}

func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.W, s.H)
}

// Rasterize renders an SVG document to a transparent RGBA image of exactly
// size pixels. The viewBox is scaled uniformly to fit and centred, leaving
// transparent margins on the axis with room to spare. Elements the renderer
// cannot draw, such as text, are rejected as ErrInvalidSVG.
func Rasterize(svg []byte, size Size) (*image.RGBA, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}

	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.StrictErrorMode)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSVG, err)
	}

	if icon.ViewBox.W <= 0 || icon.ViewBox.H <= 0 {
		return nil, fmt.Errorf("%w: missing or empty viewBox", ErrInvalidSVG)
	}

	return render(icon, size), nil
}

func render(icon *oksvg.SvgIcon, size Size) *image.RGBA {
	w, h := float64(size.W), float64(size.H)
	scale := min(w/icon.ViewBox.W, h/icon.ViewBox.H)
	fitW, fitH := icon.ViewBox.W*scale, icon.ViewBox.H*scale
	icon.SetTarget((w-fitW)/2, (h-fitH)/2, fitW, fitH)

	img := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	scanner := rasterx.NewScannerGV(size.W, size.H, img, img.Bounds())
	dasher := rasterx.NewDasher(size.W, size.H, scanner)
	icon.Draw(dasher, 1.0)

	return img
}

// CompositeOnBackground draws src at the canvas origin on top of an opaque
// canvas filled with bg. The result carries no transparency.
func CompositeOnBackground(src image.Image, canvas Size, bg color.RGBA) (*image.RGBA, error) {
	return compose(src, canvas, bg, image.Point{})
}

// CenterComposite is CompositeOnBackground with src centred on the canvas.
// The offset uses integer division, so odd remainders favour the top-left.
func CenterComposite(src image.Image, canvas Size, bg color.RGBA) (*image.RGBA, error) {
	return compose(src, canvas, bg, CenterOffset(src.Bounds().Size(), canvas))
}

// CenterOffset returns the top-left point that centres inner within canvas.
func CenterOffset(inner image.Point, canvas Size) image.Point {
	return image.Pt((canvas.W-inner.X)/2, (canvas.H-inner.Y)/2)
}

func compose(src image.Image, canvas Size, bg color.RGBA, at image.Point) (*image.RGBA, error) {
	if err := canvas.Validate(); err != nil {
		return nil, err
	}

	bg.A = 0xff
	dst := image.NewRGBA(image.Rect(0, 0, canvas.W, canvas.H))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)

	// Over uses the source alpha as the mask. An opaque source has nothing
	// to blend, so it is copied.
	op := draw.Over
	if isOpaque(src) {
		op = draw.Src
	}
	sb := src.Bounds()
	draw.Draw(dst, image.Rectangle{Min: at, Max: at.Add(sb.Size())}, src, sb.Min, op)

	return dst, nil
}

// Resize scales src to size with Catmull-Rom resampling.
func Resize(src image.Image, size Size) (*image.RGBA, error) {
	if err := size.Validate(); err != nil {
		return nil, err
	}
	dst := image.NewRGBA(image.Rect(0, 0, size.W, size.H))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return dst, nil
}

func isOpaque(img image.Image) bool {
	if o, ok := img.(interface{ Opaque() bool }); ok {
		return o.Opaque()
	}
	return false
}
