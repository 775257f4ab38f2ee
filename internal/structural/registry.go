package structural

import (
	"sort"
	"strings"
	"sync"

	"github.com/dshills/gochunk/pkg/types"
)

// Segmenter recovers top-level syntactic units from source text for one
// grammar. Invalid syntax is reported as *types.ParseFailure.
type Segmenter interface {
	Language() string
	Segment(src string) ([]types.Span, error)
}

// Registry maps declared content types to segmenters. Content types without
// an entry get no structural treatment.
type Registry struct {
	mu         sync.RWMutex
	segmenters map[string]Segmenter
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{segmenters: make(map[string]Segmenter)}
}

// DefaultRegistry returns a registry with every grammar that has a parser
// available: Go under "go" and "golang", Python under "python" and "py".
func DefaultRegistry() *Registry {
	r := NewRegistry()
	r.Register(Go{}, "golang")
	r.Register(Python{}, "py")
	return r
}

// Register adds s under its language name and any aliases
func (r *Registry) Register(s Segmenter, aliases ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, name := range append([]string{s.Language()}, aliases...) {
		if key := normalize(name); key != "" {
			r.segmenters[key] = s
		}
	}
}

// Lookup returns the segmenter for contentType, if one is registered
func (r *Registry) Lookup(contentType string) (Segmenter, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	s, ok := r.segmenters[normalize(contentType)]
	return s, ok
}

// ContentTypes lists registered content types in sorted order
func (r *Registry) ContentTypes() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.segmenters))
	for name := range r.segmenters {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func normalize(contentType string) string {
	return strings.TrimPrefix(strings.ToLower(strings.TrimSpace(contentType)), ".")
}
