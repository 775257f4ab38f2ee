package structural

import (
	"strings"

	"github.com/dshills/gochunk/pkg/types"
)

// spanExtractor accumulates line-tiled spans
type spanExtractor struct {
	lines   []string
	spans   []types.Span
	covered int // last line already assigned to a span (1-based)
}

// add emits a span ending at endLine. Declarations ending on an already
// covered line are folded into the previous span.
func (e *spanExtractor) add(endLine int, kind, name string) {
	if endLine > len(e.lines) {
		endLine = len(e.lines)
	}
	if endLine <= e.covered {
		return
	}

	start := e.covered + 1
	e.spans = append(e.spans, types.Span{
		Text:      strings.Join(e.lines[start-1:endLine], "\n"),
		StartLine: start,
		EndLine:   endLine,
		Kind:      kind,
		Name:      name,
	})
	e.covered = endLine
}

// finish attaches lines after the last declaration to the last span. Input
// with no declarations becomes a single span of emptyKind.
func (e *spanExtractor) finish(emptyKind string) {
	if e.covered >= len(e.lines) {
		return
	}
	if len(e.spans) == 0 {
		e.add(len(e.lines), emptyKind, "")
		return
	}

	last := &e.spans[len(e.spans)-1]
	last.EndLine = len(e.lines)
	last.Text = strings.Join(e.lines[last.StartLine-1:last.EndLine], "\n")
	e.covered = len(e.lines)
}
