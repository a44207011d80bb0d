package raster

import (
	_ "embed"
	"errors"
	"fmt"
)

//go:embed probe.svg
var probeSVG []byte

// ErrProbeFailed indicates the rasterizer produced no visible pixels for the
// built-in probe image.
var ErrProbeFailed = errors.New("rasterizer probe produced an empty image")

// Probe renders a small built-in SVG and checks that something was drawn.
func Probe() error {
	img, err := Rasterize(probeSVG, Square(8))
	if err != nil {
		return fmt.Errorf("rasterizing probe: %w", err)
	}

	// The probe is a filled square covering the whole viewBox.
	if _, _, _, a := img.At(4, 4).RGBA(); a == 0 {
		return ErrProbeFailed
	}
	return nil
}
