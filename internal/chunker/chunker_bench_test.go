package chunker

import (
	"os"
	"strings"
	"testing"

	"github.com/dshills/gochunk/internal/tokenizer"
	"github.com/dshills/gochunk/pkg/types"
)

func benchChunker(b *testing.B, cfg Config, opts ...Option) *Chunker {
	b.Helper()
	c, err := New(cfg, opts...)
	if err != nil {
		b.Fatal(err)
	}
	return c
}

func BenchmarkChunkText_Prose(b *testing.B) {
	text, _ := passage(2000, 18)
	c := benchChunker(b, DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if chunks := c.ChunkText(text, nil); len(chunks) == 0 {
			b.Fatal("no chunks")
		}
	}
}

func BenchmarkChunkText_ProseCached(b *testing.B) {
	text, _ := passage(2000, 18)
	c := benchChunker(b, DefaultConfig(), WithCounter(tokenizer.NewCached(tokenizer.Words{}, tokenizer.DefaultCacheSize)))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if chunks := c.ChunkText(text, nil); len(chunks) == 0 {
			b.Fatal("no chunks")
		}
	}
}

func BenchmarkChunkText_Oversized(b *testing.B) {
	text := strings.Repeat("unbroken ", 20000)
	c := benchChunker(b, DefaultConfig())

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if chunks := c.ChunkText(text, nil); len(chunks) == 0 {
			b.Fatal("no chunks")
		}
	}
}

func BenchmarkChunkText_Go(b *testing.B) {
	src, err := os.ReadFile("chunker.go")
	if err != nil {
		b.Fatal(err)
	}
	c := benchChunker(b, DefaultConfig())
	meta := types.Metadata{types.MetaLanguage: "go"}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		chunks := c.ChunkText(string(src), meta)
		if len(chunks) == 0 || chunks[0].Kind != types.ChunkCode {
			b.Fatal("expected code chunks")
		}
	}
}
