package awardsearch

import (
	"strings"

	"github.com/iwvelando/mr-compare/internal/airport"
	"github.com/iwvelando/mr-compare/pkg/datetime"
)

// Resolver turns free-text airport input into a three-letter code.
type Resolver interface {
	ResolveIATA(text string) string
}

// DefaultGrayPaneBase is the public GrayPane deployment.
const DefaultGrayPaneBase = "https://www.graypane.com"

// Builder produces search-tool links. It is safe for concurrent use as long
// as its Resolver and Clock are.
type Builder struct {
	resolver     Resolver
	clock        Clock
	graypaneBase string
}

// Option configures a Builder.
type Option func(*Builder)

// WithResolver resolves airports against r instead of the bundled list.
func WithResolver(r Resolver) Option {
	return func(b *Builder) {
		if r != nil {
			b.resolver = r
		}
	}
}

// WithClock replaces the system clock.
func WithClock(c Clock) Option {
	return func(b *Builder) {
		if c != nil {
			b.clock = c
		}
	}
}

// WithGrayPaneBase points GrayPane links at a self-hosted deployment.
func WithGrayPaneBase(base string) Option {
	return func(b *Builder) {
		if base = strings.TrimSpace(base); base != "" {
			b.graypaneBase = base
		}
	}
}

// NewBuilder returns a builder using the bundled airport list and the system
// clock unless overridden.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{
		resolver:     airport.NewResolver(nil),
		clock:        SystemClock{},
		graypaneBase: DefaultGrayPaneBase,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Builder) endpoints(p SearchParams) (string, string) {
	return b.resolver.ResolveIATA(p.Origin), b.resolver.ResolveIATA(p.Destination)
}

// departDate is the normalized outbound date.
func departDate(p SearchParams) string {
	return datetime.NormalizeDate(p.DateFrom, DefaultDepartDate)
}

// unixSeconds converts a normalized date. Normalized dates always parse, so
// the error is impossible here.
func unixSeconds(date string) int64 {
	s, _ := datetime.UnixSeconds(date)
	return s
}
