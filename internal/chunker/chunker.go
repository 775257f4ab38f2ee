package chunker

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/dshills/gochunk/internal/segment"
	"github.com/dshills/gochunk/internal/structural"
	"github.com/dshills/gochunk/internal/tokenizer"
	"github.com/dshills/gochunk/pkg/types"
)

const (
	// DefaultChunkSize is the token budget per chunk
	DefaultChunkSize = 500

	// DefaultChunkOverlap is the token overlap between consecutive prose chunks
	DefaultChunkOverlap = 50

	// DefaultMaxUnitTokens is the hard ceiling for a single unit, kept below
	// the 512-token sequence limit of the embedding model
	DefaultMaxUnitTokens = 500
)

const (
	proseSeparator = " "
	codeSeparator  = "\n"
)

// Config holds the token budgets
type Config struct {
	ChunkSize     int // token budget per chunk
	ChunkOverlap  int // tokens repeated between consecutive prose chunks; 0 disables
	MaxUnitTokens int // hard ceiling for any single unit, >= ChunkSize

	// SeparatorTokens is charged once per join between two units. Chunk
	// token counts are the sum of cached unit counts plus this overhead.
	SeparatorTokens int
}

// DefaultConfig returns the default budgets
func DefaultConfig() Config {
	return Config{
		ChunkSize:     DefaultChunkSize,
		ChunkOverlap:  DefaultChunkOverlap,
		MaxUnitTokens: DefaultMaxUnitTokens,
	}
}

// Validate checks budget consistency
func (c Config) Validate() error {
	switch {
	case c.ChunkSize <= 0:
		return fmt.Errorf("%w: chunk size must be positive, got %d", types.ErrInvalidConfig, c.ChunkSize)
	case c.ChunkOverlap < 0:
		return fmt.Errorf("%w: chunk overlap must not be negative, got %d", types.ErrInvalidConfig, c.ChunkOverlap)
	case c.MaxUnitTokens < c.ChunkSize:
		return fmt.Errorf("%w: max unit tokens %d is below chunk size %d", types.ErrInvalidConfig, c.MaxUnitTokens, c.ChunkSize)
	case c.SeparatorTokens < 0:
		return fmt.Errorf("%w: separator tokens must not be negative, got %d", types.ErrInvalidConfig, c.SeparatorTokens)
	}
	return nil
}

// Option configures a Chunker
type Option func(*Chunker)

// WithCounter sets the token counter. Defaults to tokenizer.Words.
func WithCounter(counter tokenizer.Counter) Option {
	return func(c *Chunker) {
		c.counter = counter
	}
}

// WithSegmenter sets the sentence segmenter. Defaults to segment.Heuristic.
func WithSegmenter(s segment.SentenceSegmenter) Option {
	return func(c *Chunker) {
		c.sentences = s
	}
}

// WithRegistry sets the structural grammars. Defaults to
// structural.DefaultRegistry.
func WithRegistry(r *structural.Registry) Option {
	return func(c *Chunker) {
		c.registry = r
	}
}

// WithLogger sets the logger. Defaults to slog.Default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Chunker) {
		c.logger = logger
	}
}

// Chunker splits decoded text into token-budgeted chunks. It holds no
// per-call state and is safe for concurrent use.
type Chunker struct {
	cfg       Config
	counter   tokenizer.Counter
	sentences segment.SentenceSegmenter
	registry  *structural.Registry
	logger    *slog.Logger
}

// New creates a Chunker
func New(cfg Config, opts ...Option) (*Chunker, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Chunker{cfg: cfg}
	for _, opt := range opts {
		opt(c)
	}

	if c.counter == nil {
		c.counter = tokenizer.Words{}
	}
	if c.sentences == nil {
		c.sentences = segment.Heuristic{}
	}
	if c.registry == nil {
		c.registry = structural.DefaultRegistry()
	}
	if c.logger == nil {
		c.logger = slog.Default()
	}

	return c, nil
}

// Config returns the chunker's budgets
func (c *Chunker) Config() Config {
	return c.cfg
}

// Counter returns the token counter in use
func (c *Chunker) Counter() tokenizer.Counter {
	return c.counter
}

// ChunkText splits text into an ordered sequence of chunks.
//
// A content type in meta (see types.Metadata.ContentType) that names a
// registered grammar selects structural chunking; everything else is chunked
// as prose. Source that fails to parse is chunked as prose. Every other
// metadata key is copied into each chunk. Empty text yields no chunks.
func (c *Chunker) ChunkText(text string, meta types.Metadata) []types.Chunk {
	if strings.TrimSpace(text) == "" {
		return nil
	}

	contentType := meta.ContentType()
	if seg, ok := c.registry.Lookup(contentType); ok {
		chunks, err := c.chunkStructural(seg, text, meta)
		if err == nil {
			return chunks
		}
		c.logger.Warn("structural parse failed, falling back to prose chunking",
			"language", contentType, "error", err)
	} else if IsCode(contentType) {
		c.logger.Debug("no grammar for code content type, using prose chunking",
			"language", contentType)
	}

	return c.chunkProse(text, meta)
}

// newChunk assembles a chunk from consecutive units
func (c *Chunker) newChunk(kind types.ChunkKind, units []types.Unit, tokens, index int, meta types.Metadata) types.Chunk {
	sep := proseSeparator
	if kind == types.ChunkCode {
		sep = codeSeparator
	}

	texts := make([]string, len(units))
	for i, u := range units {
		texts[i] = u.Text
	}

	chunk := types.Chunk{
		Text:       strings.Join(texts, sep),
		Index:      index,
		TokenCount: tokens,
		Kind:       kind,
		Units:      len(units),
		Metadata:   meta.Clone(),
	}
	if kind == types.ChunkCode {
		chunk.StartLine = units[0].StartLine
		chunk.EndLine = units[len(units)-1].EndLine
	}
	return chunk
}

// packedTokens is the token count of units joined together
func (c *Chunker) packedTokens(units []types.Unit) int {
	if len(units) == 0 {
		return 0
	}
	total := c.cfg.SeparatorTokens * (len(units) - 1)
	for _, u := range units {
		total += u.Tokens
	}
	return total
}

// codeContentTypes are content types treated as source code
var codeContentTypes = map[string]bool{
	"py":         true,
	"python":     true,
	"js":         true,
	"javascript": true,
	"java":       true,
	"cpp":        true,
	"go":         true,
	"golang":     true,
}

// IsCode reports whether contentType names a programming language. Being
// code does not imply structural chunking; only registered grammars get it.
func IsCode(contentType string) bool {
	return codeContentTypes[strings.TrimPrefix(strings.ToLower(contentType), ".")]
}
