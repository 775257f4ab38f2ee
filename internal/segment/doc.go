// Package segment provides pluggable sentence segmentation for the prose
// chunker. Heuristic mirrors a punctuation + capital-letter rule; UAX29 uses
// Unicode sentence boundaries.
package segment
