package raster

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/blockrun/brandkit/internal/fileutil"
)

const filePermissions = 0o644 // rw-r--r--: owner read+write, others read

var encoder = png.Encoder{CompressionLevel: png.BestCompression}

// EncodePNG serializes img as PNG. Fully opaque images are written as
// truecolor without an alpha channel.
func EncodePNG(img image.Image) ([]byte, error) {
	var buf bytes.Buffer
	if err := encoder.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// WritePNG encodes img and writes it to path, creating parent directories.
func WritePNG(img image.Image, path string) error {
	data, err := EncodePNG(img)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), fileutil.DirPermissions); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	// #nosec G306 -- brand assets are meant to be readable
	if err := os.WriteFile(path, data, filePermissions); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}
