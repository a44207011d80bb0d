// Package catalog holds the fixed brand kit export catalog.
//
// The catalog is authored as catalog.yaml and compiled into the binary. It is
// decoded strictly, validated, and expanded by Plan into the ordered export
// passes the exporter runs.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/blockrun/brandkit/internal/raster"
)

//go:embed catalog.yaml
var defaultCatalog []byte

// Sentinel errors for catalog operations.
var (
	ErrEmptyCatalog   = errors.New("catalog: empty document")
	ErrCatalogParse   = errors.New("catalog: failed to parse")
	ErrInvalidCatalog = errors.New("catalog: invalid")
	ErrInvalidColor   = errors.New("invalid hex color")
)

// Known source variants.
const (
	VariantPrimary = "primary"
	VariantWhite   = "white"
	VariantBlack   = "black"
)

// Catalog describes every source asset and output the brand kit produces.
type Catalog struct {
	SourceDir   string       `yaml:"sourceDir"`
	Outputs     Outputs      `yaml:"outputs"`
	Sizes       []int        `yaml:"sizes"`
	Transparent Transparent  `yaml:"transparent"`
	Backgrounds []Background `yaml:"backgrounds"`
	Wordmarks   Wordmarks    `yaml:"wordmarks"`
	Favicons    Favicons     `yaml:"favicons"`
	Social      Social       `yaml:"social"`
}

// Outputs names the four output category directories.
type Outputs struct {
	PNG      string `yaml:"png"`
	Favicon  string `yaml:"favicon"`
	Social   string `yaml:"social"`
	Wordmark string `yaml:"wordmark"`
}

// Transparent lists the logo variants exported without a background.
type Transparent struct {
	Variants []string `yaml:"variants"`
}

// Background pairs a logo variant with a solid canvas colour.
type Background struct {
	Variant string `yaml:"variant"`
	Name    string `yaml:"name"`  // colour name used in file names
	Color   string `yaml:"color"` // #RRGGBB
}

// Wordmarks configures the logo-plus-name exports.
type Wordmarks struct {
	Variants []string `yaml:"variants"`
	Heights  []int    `yaml:"heights"`
	Aspect   float64  `yaml:"aspect"` // width / height
}

// Favicons configures browser and platform icons.
type Favicons struct {
	Variant    string     `yaml:"variant"`
	Sizes      []int      `yaml:"sizes"`
	AppleTouch NamedImage `yaml:"appleTouch"`
}

// NamedImage is a square output with a fixed file name.
type NamedImage struct {
	Name string `yaml:"name"`
	Size int    `yaml:"size"`
}

// Social configures profile pictures and the Open Graph preview.
type Social struct {
	Variant     string    `yaml:"variant"`
	Color       string    `yaml:"color"`
	ProfileSize int       `yaml:"profileSize"`
	LogoScale   float64   `yaml:"logoScale"` // logo size as a fraction of ProfileSize
	Profiles    []string  `yaml:"profiles"`
	OpenGraph   OpenGraph `yaml:"openGraph"`
}

// OpenGraph is the link preview image.
type OpenGraph struct {
	Name     string      `yaml:"name"`
	Canvas   raster.Size `yaml:"canvas"`
	LogoSize int         `yaml:"logoSize"`
}

// Default returns the catalog compiled into the binary.
func Default() (*Catalog, error) {
	return Parse(defaultCatalog)
}

// Parse decodes and validates a catalog document. Unknown keys are rejected.
func Parse(data []byte) (*Catalog, error) {
	if len(data) == 0 {
		return nil, ErrEmptyCatalog
	}

	var c Catalog
	if err := yaml.UnmarshalWithOptions(data, &c, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCatalogParse, err)
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks sizes, variants, colours and names.
func (c *Catalog) Validate() error {
	if c.SourceDir == "" {
		return invalid("sourceDir", "required")
	}
	for _, out := range []struct{ field, dir string }{
		{"outputs.png", c.Outputs.PNG},
		{"outputs.favicon", c.Outputs.Favicon},
		{"outputs.social", c.Outputs.Social},
		{"outputs.wordmark", c.Outputs.Wordmark},
	} {
		if out.dir == "" {
			return invalid(out.field, "required")
		}
	}

	if err := validateSizes("sizes", c.Sizes); err != nil {
		return err
	}
	if err := validateVariants("transparent.variants", c.Transparent.Variants); err != nil {
		return err
	}

	for i, bg := range c.Backgrounds {
		field := fmt.Sprintf("backgrounds[%d]", i)
		if err := validateVariant(field+".variant", bg.Variant); err != nil {
			return err
		}
		if bg.Name == "" {
			return invalid(field+".name", "required")
		}
		if _, err := ParseHexColor(bg.Color); err != nil {
			return fmt.Errorf("%w: %s.color: %v", ErrInvalidCatalog, field, err)
		}
	}

	if err := validateVariants("wordmarks.variants", c.Wordmarks.Variants); err != nil {
		return err
	}
	if err := validateSizes("wordmarks.heights", c.Wordmarks.Heights); err != nil {
		return err
	}
	if c.Wordmarks.Aspect <= 0 {
		return invalid("wordmarks.aspect", fmt.Sprintf("must be positive, got %g", c.Wordmarks.Aspect))
	}

	if err := validateVariant("favicons.variant", c.Favicons.Variant); err != nil {
		return err
	}
	if err := validateSizes("favicons.sizes", c.Favicons.Sizes); err != nil {
		return err
	}
	if c.Favicons.AppleTouch.Name == "" || c.Favicons.AppleTouch.Size <= 0 {
		return invalid("favicons.appleTouch", "name and positive size required")
	}

	return c.Social.validate()
}

func (s *Social) validate() error {
	if err := validateVariant("social.variant", s.Variant); err != nil {
		return err
	}
	if _, err := ParseHexColor(s.Color); err != nil {
		return fmt.Errorf("%w: social.color: %v", ErrInvalidCatalog, err)
	}
	if s.ProfileSize <= 0 {
		return invalid("social.profileSize", "must be positive")
	}
	if s.LogoScale <= 0 || s.LogoScale > 1 {
		return invalid("social.logoScale", fmt.Sprintf("must be in (0, 1], got %g", s.LogoScale))
	}
	if len(s.Profiles) == 0 {
		return invalid("social.profiles", "at least one file name required")
	}
	for i, name := range s.Profiles {
		if name == "" {
			return invalid(fmt.Sprintf("social.profiles[%d]", i), "empty file name")
		}
	}

	og := s.OpenGraph
	if og.Name == "" {
		return invalid("social.openGraph.name", "required")
	}
	if err := og.Canvas.Validate(); err != nil {
		return fmt.Errorf("%w: social.openGraph.canvas: %v", ErrInvalidCatalog, err)
	}
	if og.LogoSize <= 0 || og.LogoSize > og.Canvas.W || og.LogoSize > og.Canvas.H {
		return invalid("social.openGraph.logoSize", fmt.Sprintf("%d does not fit canvas %s", og.LogoSize, og.Canvas))
	}
	return nil
}

func invalid(field, msg string) error {
	return fmt.Errorf("%w: %s: %s", ErrInvalidCatalog, field, msg)
}

func validateSizes(field string, sizes []int) error {
	if len(sizes) == 0 {
		return invalid(field, "at least one size required")
	}
	for i, n := range sizes {
		if n <= 0 {
			return invalid(fmt.Sprintf("%s[%d]", field, i), fmt.Sprintf("must be positive, got %d", n))
		}
	}
	return nil
}

func validateVariants(field string, variants []string) error {
	if len(variants) == 0 {
		return invalid(field, "at least one variant required")
	}
	for i, v := range variants {
		if err := validateVariant(fmt.Sprintf("%s[%d]", field, i), v); err != nil {
			return err
		}
	}
	return nil
}

func validateVariant(field, v string) error {
	switch v {
	case VariantPrimary, VariantWhite, VariantBlack:
		return nil
	}
	return invalid(field, fmt.Sprintf("unknown variant %q", v))
}

// ParseHexColor parses "#RRGGBB" (case-insensitive) into an opaque colour.
func ParseHexColor(s string) (color.RGBA, error) {
	hex, ok := strings.CutPrefix(s, "#")
	if !ok || len(hex) != 6 {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}

	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
