package brandkit

import "errors"

// Sentinel errors for library operations.
var (
	ErrCreateDir             = errors.New("failed to create output directory")
	ErrReadSource            = errors.New("failed to read SVG source")
	ErrRasterize             = errors.New("rasterization failed")
	ErrWritePNG              = errors.New("failed to write PNG file")
	ErrLoadCatalog           = errors.New("failed to load export catalog")
	ErrRasterizerUnavailable = errors.New("rasterizer unavailable")
)
