package tokenizer

import (
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/pkoukk/tiktoken-go"
)

// Mode identifies how a Counter measures text
type Mode string

const (
	// ModeSubword counts ids from a pretrained subword vocabulary
	ModeSubword Mode = "subword"
	// ModeWordApprox counts whitespace-delimited words
	ModeWordApprox Mode = "word-approx"
)

// DefaultEncoding is the tiktoken encoding loaded when none is configured
const DefaultEncoding = "cl100k_base"

// Counter converts text to a token count. Implementations must be
// deterministic and safe for concurrent use.
type Counter interface {
	Count(text string) int
	Mode() Mode
}

// Words approximates tokens as whitespace-delimited words
type Words struct{}

// Count returns the number of whitespace-delimited words in text
func (Words) Count(text string) int {
	return len(strings.Fields(text))
}

// Mode reports ModeWordApprox
func (Words) Mode() Mode {
	return ModeWordApprox
}

// TikToken counts subword tokens with a tiktoken BPE encoding
type TikToken struct {
	mu       sync.Mutex
	enc      *tiktoken.Tiktoken
	encoding string
}

// NewTikToken loads the named encoding. Loading may download the BPE ranks
// on first use, so call it once at startup.
func NewTikToken(encoding string) (*TikToken, error) {
	if encoding == "" {
		encoding = DefaultEncoding
	}
	enc, err := tiktoken.GetEncoding(encoding)
	if err != nil {
		return nil, fmt.Errorf("failed to load encoding %s: %w", encoding, err)
	}
	return &TikToken{enc: enc, encoding: encoding}, nil
}

// Count returns the number of token ids in text, without special tokens
func (t *TikToken) Count(text string) int {
	if text == "" {
		return 0
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.enc.Encode(text, nil, nil))
}

// Mode reports ModeSubword
func (t *TikToken) Mode() Mode {
	return ModeSubword
}

// Encoding returns the loaded encoding name
func (t *TikToken) Encoding() string {
	return t.encoding
}

// Config selects and sizes the counter built by New
type Config struct {
	Encoding  string // tiktoken encoding; empty selects DefaultEncoding
	CacheSize int    // LRU entries; <= 0 disables the count cache
	WordsOnly bool   // skip loading the encoding entirely
}

// New builds the process-wide counter. A tokenizer that cannot be loaded is
// not fatal: the failure is logged and the word approximation is used for the
// lifetime of the returned counter.
func New(cfg Config, logger *slog.Logger) Counter {
	if logger == nil {
		logger = slog.Default()
	}

	var counter Counter
	if cfg.WordsOnly {
		logger.Info("token counter configured", "mode", ModeWordApprox)
		counter = Words{}
	} else {
		tk, err := NewTikToken(cfg.Encoding)
		if err != nil {
			logger.Warn("tokenizer unavailable, falling back to word counts",
				"mode", ModeWordApprox, "encoding", cfg.Encoding, "error", err)
			counter = Words{}
		} else {
			logger.Info("token counter configured", "mode", ModeSubword, "encoding", tk.Encoding())
			counter = tk
		}
	}

	if cfg.CacheSize > 0 {
		return NewCached(counter, cfg.CacheSize)
	}
	return counter
}
