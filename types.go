package brandkit

import (
	"time"

	"github.com/blockrun/brandkit/internal/catalog"
)

// Pass names, in run order.
const (
	PassTransparent = catalog.PassTransparent
	PassBackgrounds = catalog.PassBackgrounds
	PassWordmarks   = catalog.PassWordmarks
	PassFavicons    = catalog.PassFavicons
	PassSocial      = catalog.PassSocial
)

// EventKind identifies a progress event.
type EventKind int

const (
	EventPassStarted   EventKind = iota // Title is the pass title
	EventGroupStarted                   // Title is the group label, Source is set
	EventSourceMissing                  // Source is the missing SVG path
	EventFileCreated                    // Output is set
	EventPassFinished
)

func (k EventKind) String() string {
	switch k {
	case EventPassStarted:
		return "pass-started"
	case EventGroupStarted:
		return "group-started"
	case EventSourceMissing:
		return "source-missing"
	case EventFileCreated:
		return "file-created"
	case EventPassFinished:
		return "pass-finished"
	}
	return "unknown"
}

// Event reports run progress to an observer.
type Event struct {
	Kind   EventKind
	Pass   string
	Title  string
	Source string
	Output *Output
}

// Output describes one written PNG.
type Output struct {
	Pass     string
	Path     string // relative to the exporter root
	Source   string // relative to the exporter root
	Width    int
	Height   int
	Duration time.Duration
}

// MissingSource records a skipped source group.
type MissingSource struct {
	Pass  string
	Label string
	Path  string // relative to the exporter root
}

// Report is the outcome of a run, in run order.
type Report struct {
	Root    string
	Dirs    []string
	Created []Output
	Missing []MissingSource
}

// CreatedIn returns the outputs written by the named pass.
func (r *Report) CreatedIn(pass string) []Output {
	var out []Output
	for _, o := range r.Created {
		if o.Pass == pass {
			out = append(out, o)
		}
	}
	return out
}

// Option configures an Exporter.
type Option func(*Exporter)

// exporterConfig holds internal configuration for Exporter.
type exporterConfig struct {
	root     string
	observer func(Event)
}

// WithRoot sets the brand kit directory holding svg/ and the output
// directories. Defaults to the current directory.
func WithRoot(dir string) Option {
	return func(e *Exporter) {
		if dir != "" {
			e.cfg.root = dir
		}
	}
}

// WithObserver registers a function called synchronously for every event.
func WithObserver(fn func(Event)) Option {
	return func(e *Exporter) {
		e.cfg.observer = fn
	}
}
