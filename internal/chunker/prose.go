package chunker

import (
	"strings"

	"github.com/dshills/gochunk/pkg/types"
)

// chunkProse segments text into sentences and packs them with overlap
func (c *Chunker) chunkProse(text string, meta types.Metadata) []types.Chunk {
	units := c.proseUnits(text)
	chunks := c.packProse(units, meta)

	c.logger.Debug("chunked prose", "units", len(units), "chunks", len(chunks))
	return chunks
}

// proseUnits returns sentences, with any sentence above the hard ceiling
// split on word boundaries. Each unit is counted exactly once.
func (c *Chunker) proseUnits(text string) []types.Unit {
	var units []types.Unit
	for _, sentence := range c.sentences.Segment(text) {
		n := c.counter.Count(sentence)
		if n <= c.cfg.MaxUnitTokens {
			units = append(units, types.Unit{Text: sentence, Tokens: n})
			continue
		}
		units = append(units, c.splitOversized(sentence)...)
	}
	return units
}

// splitOversized accumulates words until the next word would cross the
// ceiling, then starts a new piece.
func (c *Chunker) splitOversized(text string) []types.Unit {
	var (
		pieces    []types.Unit
		current   []string
		curTokens int
	)

	for _, word := range strings.Fields(text) {
		wordTokens := c.counter.Count(word)
		if curTokens+wordTokens > c.cfg.MaxUnitTokens && len(current) > 0 {
			pieces = append(pieces, c.fitWords(current)...)
			current = nil
			curTokens = 0
		}
		current = append(current, word)
		curTokens += wordTokens
	}

	if len(current) > 0 {
		pieces = append(pieces, c.fitWords(current)...)
	}
	return pieces
}

// fitWords joins words into one unit, bisecting when the joined text counts
// above the ceiling (subword counts of a joined span can differ from the
// sum of its words).
func (c *Chunker) fitWords(words []string) []types.Unit {
	text := strings.Join(words, " ")
	n := c.counter.Count(text)
	if n <= c.cfg.MaxUnitTokens {
		return []types.Unit{{Text: text, Tokens: n}}
	}
	if len(words) == 1 {
		return c.splitWord(words[0])
	}

	mid := len(words) / 2
	return append(c.fitWords(words[:mid]), c.fitWords(words[mid:])...)
}

// splitWord cuts a single word above the ceiling into the longest rune
// prefixes that fit.
func (c *Chunker) splitWord(word string) []types.Unit {
	var pieces []types.Unit
	runes := []rune(word)

	for len(runes) > 0 {
		lo, hi := 1, len(runes)
		for lo < hi {
			mid := (lo + hi + 1) / 2
			if c.counter.Count(string(runes[:mid])) <= c.cfg.MaxUnitTokens {
				lo = mid
			} else {
				hi = mid - 1
			}
		}

		piece := string(runes[:lo])
		pieces = append(pieces, types.Unit{Text: piece, Tokens: c.counter.Count(piece)})
		runes = runes[lo:]
	}
	return pieces
}

// packProse greedily fills chunks up to ChunkSize and rewinds the cursor so
// each chunk after the first re-includes trailing units of its predecessor.
func (c *Chunker) packProse(units []types.Unit, meta types.Metadata) []types.Chunk {
	var chunks []types.Chunk

	i := 0
	for i < len(units) {
		start := i
		tokens := 0

		for i < len(units) {
			add := units[i].Tokens
			if i > start {
				add += c.cfg.SeparatorTokens
			}
			// The first unit is always admitted, even when oversized
			if i > start && tokens+add > c.cfg.ChunkSize {
				break
			}
			tokens += add
			i++
		}

		chunks = append(chunks, c.newChunk(types.ChunkProse, units[start:i], tokens, len(chunks), meta))

		if i >= len(units) {
			break
		}
		i -= c.overlapUnits(units[start:i])
	}

	return chunks
}

// overlapUnits returns how many trailing units of window the next chunk
// repeats. It walks backward over cached counts until ChunkOverlap tokens are
// covered and never takes the whole window, so the cursor always advances.
func (c *Chunker) overlapUnits(window []types.Unit) int {
	if c.cfg.ChunkOverlap <= 0 || len(window) < 2 {
		return 0
	}

	n, tokens := 0, 0
	for j := len(window) - 1; j > 0; j-- {
		tokens += window[j].Tokens
		n++
		if tokens >= c.cfg.ChunkOverlap {
			break
		}
	}
	return n
}
