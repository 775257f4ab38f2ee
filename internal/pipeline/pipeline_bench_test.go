package pipeline

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/dshills/gochunk/internal/chunker"
)

func BenchmarkRun(b *testing.B) {
	root := b.TempDir()
	files := make(map[string][]byte)
	for i := 0; i < 50; i++ {
		files[fmt.Sprintf("doc%02d.md", i)] = []byte(strings.Repeat("A sentence of prose for the benchmark. ", 200))
		files[fmt.Sprintf("src%02d.go", i)] = []byte(goSource)
	}
	for name, content := range files {
		writeFile(b, root, name, content)
	}

	c, err := chunker.New(chunker.DefaultConfig())
	if err != nil {
		b.Fatal(err)
	}
	p := New(c, Config{}, nil)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		res, err := p.Run(context.Background(), root)
		if err != nil {
			b.Fatal(err)
		}
		if res.Stats.FilesProcessed != len(files) {
			b.Fatalf("processed %d files, want %d", res.Stats.FilesProcessed, len(files))
		}
	}
}
