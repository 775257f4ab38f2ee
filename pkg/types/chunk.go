package types

import (
	"errors"
	"fmt"
)

// ChunkKind records which chunking path produced a chunk
type ChunkKind string

const (
	ChunkProse ChunkKind = "prose"
	ChunkCode  ChunkKind = "code"
)

// Chunk is a bounded-size piece of a document ready for embedding
type Chunk struct {
	// Content
	Text       string    `json:"text" yaml:"text"`
	Index      int       `json:"chunk_index" yaml:"chunk_index"`
	TokenCount int       `json:"token_count" yaml:"token_count"`
	Kind       ChunkKind `json:"kind" yaml:"kind"`
	Units      int       `json:"units" yaml:"units"`

	// Location (code chunks only, 1-based and inclusive)
	StartLine int `json:"start_line,omitempty" yaml:"start_line,omitempty"`
	EndLine   int `json:"end_line,omitempty" yaml:"end_line,omitempty"`

	// Metadata is owned by this chunk alone
	Metadata Metadata `json:"metadata" yaml:"metadata"`
}

// Validate checks the chunk is well formed
func (c *Chunk) Validate() error {
	if c.Text == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	if c.Index < 0 {
		return fmt.Errorf("%w: negative index %d", ErrInvalidChunk, c.Index)
	}

	if c.TokenCount < 0 {
		return fmt.Errorf("%w: negative token count %d", ErrInvalidChunk, c.TokenCount)
	}

	switch c.Kind {
	case ChunkProse:
		if c.StartLine != 0 || c.EndLine != 0 {
			return fmt.Errorf("%w: prose chunk with line span", ErrInvalidChunk)
		}
	case ChunkCode:
		if c.StartLine <= 0 || c.EndLine <= 0 {
			return fmt.Errorf("%w: line numbers must be positive", ErrInvalidChunk)
		}
		if c.StartLine > c.EndLine {
			return fmt.Errorf("%w: start line must be before or equal to end line", ErrInvalidChunk)
		}
	default:
		return errors.Join(ErrInvalidChunk, fmt.Errorf("unknown chunk kind %q", c.Kind))
	}

	return nil
}

// Unit is a sentence (prose) or a top-level construct (code) with its
// token count computed once per chunking call.
type Unit struct {
	Text   string
	Tokens int

	// Source span for code units, zero for prose
	StartLine int
	EndLine   int
}

// Span is a top-level syntactic construct recovered from source text
type Span struct {
	Text      string
	StartLine int
	EndLine   int
	Kind      string // e.g. "package", "func", "method", "type", "import"
	Name      string // declared name when there is exactly one, else empty
}
