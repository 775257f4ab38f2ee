// Package chunker divides decoded text into ordered, token-budgeted chunks
// for embedding.
//
// # Basic Usage
//
//	c, err := chunker.New(chunker.DefaultConfig(),
//	    chunker.WithCounter(tokenizer.New(tokenizer.Config{}, logger)),
//	    chunker.WithLogger(logger))
//	if err != nil {
//	    return err
//	}
//
//	for _, chunk := range c.ChunkText(text, types.Metadata{"language": "go"}) {
//	    fmt.Printf("chunk %d: %d tokens\n", chunk.Index, chunk.TokenCount)
//	}
//
// # Chunking Strategy
//
// The content type in the metadata ("language", then "content_type") picks
// the path:
//   - Registered grammar (Go, Python): top-level declarations are packed whole,
//     without overlap. Source that does not parse is chunked as prose.
//   - Everything else: sentences are packed greedily up to ChunkSize and
//     each chunk after the first repeats trailing sentences worth about
//     ChunkOverlap tokens.
//
// A sentence counting above MaxUnitTokens is split on word boundaries first,
// and a single word above the ceiling on rune boundaries, so no prose unit
// ever exceeds the ceiling.
//
// # Token Counts
//
// Every unit is counted once. A chunk's TokenCount is the sum of its unit
// counts plus SeparatorTokens per join, and packing decisions use the same
// arithmetic. A chunk holding more than one unit never exceeds ChunkSize; a
// single unit larger than ChunkSize (a long function, say) becomes a chunk of
// its own.
package chunker
