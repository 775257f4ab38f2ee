// Package types provides shared type definitions for the gochunk engine.
//
// # Core Types
//
// Chunk is the unit of output: a contiguous group of units whose combined
// token count fits the configured budget.
//
//	chunk := types.Chunk{
//	    Text:       "First sentence. Second sentence.",
//	    Index:      0,
//	    TokenCount: 6,
//	    Kind:       types.ChunkProse,
//	    Metadata:   meta.Clone(),
//	}
//
// Unit is the intermediate value the packers operate on: a sentence for
// prose, a top-level declaration for code, with its token count computed
// exactly once per chunking call.
//
// # Metadata
//
// Metadata is a map[string]any. The "language" (or "content_type") key
// selects the chunking path; every other key is copied unchanged into each
// chunk. Each chunk owns an independent copy:
//
//	chunks[0].Metadata["document_id"] = "a"
//	// chunks[1].Metadata is unaffected
//
// # Parse Failures
//
// ParseFailure is returned by structural segmenters on invalid syntax. It
// unwraps to ErrParseFailure:
//
//	if errors.Is(err, types.ErrParseFailure) {
//	    // fall back to prose chunking
//	}
package types
