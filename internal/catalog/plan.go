package catalog

import (
	"fmt"
	"image/color"
	"math"
	"path/filepath"
	"strings"

	"github.com/blockrun/brandkit/internal/raster"
)

// Pass names, in run order.
const (
	PassTransparent = "transparent"
	PassBackgrounds = "backgrounds"
	PassWordmarks   = "wordmarks"
	PassFavicons    = "favicons"
	PassSocial      = "social"
)

// Source kinds, used as the SVG file name prefix.
const (
	KindLogo     = "logo"
	KindWordmark = "wordmark"
)

// Placement controls where a raster lands on its canvas.
type Placement int

const (
	PlaceOrigin Placement = iota
	PlaceCenter
)

// Recipe describes how one output image is produced from its source. It is
// comparable, so identical recipes within a group share one composed image.
type Recipe struct {
	Render     raster.Size // rasterize at this size
	Resize     raster.Size // zero: keep the rendered size
	Canvas     raster.Size // zero: transparent output, no canvas
	Background color.RGBA
	Placement  Placement
}

// Size returns the pixel dimensions of the final image.
func (r Recipe) Size() raster.Size {
	if !r.Canvas.IsZero() {
		return r.Canvas
	}
	if !r.Resize.IsZero() {
		return r.Resize
	}
	return r.Render
}

// Source is one SVG file.
type Source struct {
	Kind    string
	Variant string
	Path    string // relative to the brand kit root
}

// Spec is one output file.
type Spec struct {
	Path   string // relative to the brand kit root
	Recipe Recipe
}

// Group binds a source to the outputs rendered from it. A missing source
// skips its group only.
type Group struct {
	Label  string
	Source Source
	Specs  []Spec
}

// Pass is a titled, ordered list of groups.
type Pass struct {
	Name   string
	Title  string
	Groups []Group
}

// Dirs returns the output category directories in the order they are
// reported: png, wordmark, favicon, social.
func (c *Catalog) Dirs() []string {
	return []string{c.Outputs.PNG, c.Outputs.Wordmark, c.Outputs.Favicon, c.Outputs.Social}
}

// Plan expands the catalog into export passes. The catalog must be valid.
func (c *Catalog) Plan() []Pass {
	return []Pass{
		c.transparentPass(),
		c.backgroundPass(),
		c.wordmarkPass(),
		c.faviconPass(),
		c.socialPass(),
	}
}

func (c *Catalog) source(kind, variant string) Source {
	return Source{
		Kind:    kind,
		Variant: variant,
		Path:    filepath.Join(c.SourceDir, kind+"-"+variant+".svg"),
	}
}

func (c *Catalog) transparentPass() Pass {
	p := Pass{Name: PassTransparent, Title: "Exporting PNG files (transparent)"}
	for _, v := range c.Transparent.Variants {
		g := Group{
			Label:  strings.ToUpper(v) + " variant (transparent)",
			Source: c.source(KindLogo, v),
		}
		for _, n := range c.Sizes {
			g.Specs = append(g.Specs, Spec{
				Path:   filepath.Join(c.Outputs.PNG, fmt.Sprintf("logo-%s-%d.png", v, n)),
				Recipe: Recipe{Render: raster.Square(n)},
			})
		}
		p.Groups = append(p.Groups, g)
	}
	return p
}

func (c *Catalog) backgroundPass() Pass {
	p := Pass{Name: PassBackgrounds, Title: "Exporting PNG files (with backgrounds)"}
	for _, bg := range c.Backgrounds {
		// Validated by Parse.
		fill, _ := ParseHexColor(bg.Color)

		g := Group{
			Label:  strings.ToUpper(bg.Variant) + " on " + strings.ToUpper(bg.Name),
			Source: c.source(KindLogo, bg.Variant),
		}
		for _, n := range c.Sizes {
			g.Specs = append(g.Specs, Spec{
				Path: filepath.Join(c.Outputs.PNG, fmt.Sprintf("logo-%s-on-%s-%d.png", bg.Variant, bg.Name, n)),
				Recipe: Recipe{
					Render:     raster.Square(n),
					Canvas:     raster.Square(n),
					Background: fill,
					Placement:  PlaceOrigin,
				},
			})
		}
		p.Groups = append(p.Groups, g)
	}
	return p
}

// WordmarkWidth returns the width for a wordmark of the given height.
func (c *Catalog) WordmarkWidth(height int) int {
	return int(math.Round(float64(height) * c.Wordmarks.Aspect))
}

func (c *Catalog) wordmarkPass() Pass {
	p := Pass{Name: PassWordmarks, Title: "Exporting Wordmarks"}
	for _, v := range c.Wordmarks.Variants {
		g := Group{
			Label:  strings.ToUpper(v) + " wordmark",
			Source: c.source(KindWordmark, v),
		}
		for _, h := range c.Wordmarks.Heights {
			g.Specs = append(g.Specs, Spec{
				Path:   filepath.Join(c.Outputs.Wordmark, fmt.Sprintf("wordmark-%s-%dh.png", v, h)),
				Recipe: Recipe{Render: raster.Size{W: c.WordmarkWidth(h), H: h}},
			})
		}
		p.Groups = append(p.Groups, g)
	}
	return p
}

func (c *Catalog) faviconPass() Pass {
	f := c.Favicons
	g := Group{
		Label:  strings.ToUpper(f.Variant) + " favicons",
		Source: c.source(KindLogo, f.Variant),
	}
	for _, n := range f.Sizes {
		g.Specs = append(g.Specs, Spec{
			Path:   filepath.Join(c.Outputs.Favicon, fmt.Sprintf("favicon-%d.png", n)),
			Recipe: Recipe{Render: raster.Square(n)},
		})
	}
	g.Specs = append(g.Specs, Spec{
		Path:   filepath.Join(c.Outputs.Favicon, f.AppleTouch.Name),
		Recipe: Recipe{Render: raster.Square(f.AppleTouch.Size)},
	})

	return Pass{Name: PassFavicons, Title: "Exporting Favicons", Groups: []Group{g}}
}

// SocialLogoSize returns the size the social logo is rasterized at,
// truncated to whole pixels.
func (c *Catalog) SocialLogoSize() int {
	return int(float64(c.Social.ProfileSize) * c.Social.LogoScale)
}

func (c *Catalog) socialPass() Pass {
	s := c.Social
	fill, _ := ParseHexColor(s.Color)
	logo := raster.Square(c.SocialLogoSize())

	g := Group{
		Label:  strings.ToUpper(s.Variant) + " social images",
		Source: c.source(KindLogo, s.Variant),
	}

	// Every profile shares one recipe, so the composed image is written
	// once per file name from the same buffer.
	profile := Recipe{
		Render:     logo,
		Canvas:     raster.Square(s.ProfileSize),
		Background: fill,
		Placement:  PlaceCenter,
	}
	for _, name := range s.Profiles {
		g.Specs = append(g.Specs, Spec{Path: filepath.Join(c.Outputs.Social, name), Recipe: profile})
	}

	g.Specs = append(g.Specs, Spec{
		Path: filepath.Join(c.Outputs.Social, s.OpenGraph.Name),
		Recipe: Recipe{
			Render:     logo,
			Resize:     raster.Square(s.OpenGraph.LogoSize),
			Canvas:     s.OpenGraph.Canvas,
			Background: fill,
			Placement:  PlaceCenter,
		},
	})

	return Pass{Name: PassSocial, Title: "Exporting Social Media Images", Groups: []Group{g}}
}
