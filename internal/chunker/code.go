package chunker

import (
	"github.com/dshills/gochunk/internal/structural"
	"github.com/dshills/gochunk/pkg/types"
)

// chunkStructural packs top-level declarations into chunks without overlap.
// A *types.ParseFailure is returned untouched so the caller can fall back.
func (c *Chunker) chunkStructural(seg structural.Segmenter, text string, meta types.Metadata) ([]types.Chunk, error) {
	spans, err := seg.Segment(text)
	if err != nil {
		return nil, err
	}

	units := make([]types.Unit, 0, len(spans))
	for _, span := range spans {
		if span.StartLine <= 0 || span.EndLine < span.StartLine {
			// No recoverable source span
			continue
		}
		units = append(units, types.Unit{
			Text:      span.Text,
			Tokens:    c.counter.Count(span.Text),
			StartLine: span.StartLine,
			EndLine:   span.EndLine,
		})
	}

	chunks := c.packCode(units, meta)
	c.logger.Debug("chunked code", "language", seg.Language(), "units", len(units), "chunks", len(chunks))
	return chunks, nil
}

// packCode flushes the current chunk whenever the next unit would overflow
// ChunkSize. A unit larger than ChunkSize becomes a chunk of its own.
func (c *Chunker) packCode(units []types.Unit, meta types.Metadata) []types.Chunk {
	var chunks []types.Chunk

	start, tokens := 0, 0
	for i, u := range units {
		add := u.Tokens
		if i > start {
			add += c.cfg.SeparatorTokens
		}
		if i > start && tokens+add > c.cfg.ChunkSize {
			chunks = append(chunks, c.newChunk(types.ChunkCode, units[start:i], tokens, len(chunks), meta))
			start, tokens = i, u.Tokens
			continue
		}
		tokens += add
	}

	if start < len(units) {
		chunks = append(chunks, c.newChunk(types.ChunkCode, units[start:], tokens, len(chunks), meta))
	}
	return chunks
}
