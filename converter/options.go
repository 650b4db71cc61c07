package converter

import "github.com/rs/zerolog"

// DefaultMaxDepth is the nesting depth allowed when Options.MaxDepth is unset.
const DefaultMaxDepth = 10

// Options configures a Converter.
type Options struct {
	// MaxDepth bounds how deep conversion may nest (default: DefaultMaxDepth).
	// The root node is at depth 0; a node deeper than MaxDepth fails with
	// ErrMaxDepthExceeded.
	MaxDepth int

	// Boilerplate selects which titles and descriptions are treated as
	// library-generated and dropped (default: DefaultBoilerplate()).
	Boilerplate *Boilerplate

	// Logger receives debug events such as unresolvable Suspend nodes
	// (default: disabled).
	Logger *zerolog.Logger
}

// maxDepth returns the configured depth bound, defaulting to DefaultMaxDepth.
func (o Options) maxDepth() int {
	if o.MaxDepth <= 0 {
		return DefaultMaxDepth
	}
	return o.MaxDepth
}

// boilerplate returns the configured pattern set, defaulting to DefaultBoilerplate.
func (o Options) boilerplate() *Boilerplate {
	if o.Boilerplate == nil {
		return defaultBoilerplate
	}
	return o.Boilerplate
}

// logger returns the configured logger, defaulting to a no-op logger.
func (o Options) logger() zerolog.Logger {
	if o.Logger == nil {
		return zerolog.Nop()
	}
	return *o.Logger
}
