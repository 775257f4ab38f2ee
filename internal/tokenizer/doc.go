// Package tokenizer measures text in tokens, the unit every chunk budget is
// expressed in.
//
// Two modes exist:
//   - subword: a tiktoken BPE encoding (default cl100k_base); the count is the
//     number of ids produced without special tokens.
//   - word-approx: whitespace-delimited words. Used when the encoding cannot be
//     loaded (offline, download failure). It is coarser and changes effective
//     chunk sizes, so the active mode is logged and exposed via Counter.Mode.
//
// # Basic Usage
//
//	counter := tokenizer.New(tokenizer.Config{CacheSize: 10000}, logger)
//	n := counter.Count("Hello, world.")
//	if counter.Mode() == tokenizer.ModeWordApprox {
//	    // approximate budgets in effect
//	}
//
// Counters are deterministic and safe for concurrent use. Build one at
// process startup and share it; loading an encoding may download its ranks.
package tokenizer
