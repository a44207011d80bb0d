// Package brandkit exports the brand kit's SVG logos as PNG images.
//
// # Quick Start
//
// Create an exporter rooted at the brand kit directory and run it:
//
//	exp, err := brandkit.NewExporter(brandkit.WithRoot("brand-kit"))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	report, err := exp.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d files, %d missing sources\n", len(report.Created), len(report.Missing))
//
// # Export Passes
//
// The set of sources and outputs is fixed and compiled into the package.
// Passes run in this order, each iterating over static (source, size) pairs:
//
//  1. Transparent logos: primary, white, black at 16 to 1024 px
//  2. Logos on solid backgrounds: black-on-white, white-on-black,
//     white-on-blue, primary-on-white
//  3. Wordmarks at 50, 100, 200 and 400 px high, 3.2:1 width
//  4. Favicons at 16, 32, 48, 180, 192, 512 px plus apple-touch-icon.png
//  5. Social images: 400x400 profile pictures and the 1200x630 Open Graph
//     preview, all on brand blue
//
// # Directory Layout
//
// Sources are read from, and outputs written to, the exporter root:
//
//	{root}/
//	├── svg/        logo-{primary,white,black}.svg, wordmark-{...}.svg
//	├── png/        logo-primary-256.png, logo-white-on-blue-64.png, ...
//	├── wordmark/   wordmark-black-100h.png, ...
//	├── favicon/    favicon-32.png, apple-touch-icon.png, ...
//	└── social/     profile-400.png, og-image-1200x630.png, ...
//
// # Missing Sources
//
// A missing SVG skips only the outputs rendered from it; the run continues
// and reports it in Report.Missing. Malformed SVGs and write failures abort
// the run with an error wrapping ErrRasterize or ErrWritePNG.
//
// # Progress
//
// Use WithObserver to receive an Event for every pass, source group, created
// file and missing source as the run progresses.
package brandkit
