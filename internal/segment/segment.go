package segment

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/clipperhouse/uax29/sentences"
)

// Segmenter names accepted by ByName
const (
	NameHeuristic = "heuristic"
	NameUAX29     = "uax29"
)

// SentenceSegmenter splits prose into trimmed, non-empty sentences in
// source order.
type SentenceSegmenter interface {
	Segment(text string) []string
}

// Heuristic ends a sentence at '.', '!' or '?' followed by whitespace and an
// uppercase letter, or at the end of input. Abbreviations and decimals are
// accepted errors.
type Heuristic struct{}

// Segment implements SentenceSegmenter
func (Heuristic) Segment(text string) []string {
	var out []string
	start := 0

	for i := 0; i < len(text); {
		r, size := utf8.DecodeRuneInString(text[i:])
		next := i + size
		if !isTerminal(r) {
			i = next
			continue
		}

		j := next
		for j < len(text) {
			ws, wsize := utf8.DecodeRuneInString(text[j:])
			if !unicode.IsSpace(ws) {
				break
			}
			j += wsize
		}

		if j > next && j < len(text) {
			upper, _ := utf8.DecodeRuneInString(text[j:])
			if unicode.IsUpper(upper) {
				out = appendTrimmed(out, text[start:next])
				start = j
			}
		}
		i = next
	}

	return appendTrimmed(out, text[start:])
}

func isTerminal(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}

// UAX29 segments sentences by the Unicode text segmentation rules
type UAX29 struct{}

// Segment implements SentenceSegmenter
func (UAX29) Segment(text string) []string {
	var out []string
	for _, s := range sentences.SegmentAll([]byte(text)) {
		out = appendTrimmed(out, string(s))
	}
	return out
}

func appendTrimmed(out []string, s string) []string {
	if s = strings.TrimSpace(s); s != "" {
		out = append(out, s)
	}
	return out
}

// ByName returns the segmenter registered under name. Empty selects the
// heuristic segmenter.
func ByName(name string) (SentenceSegmenter, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", NameHeuristic:
		return Heuristic{}, nil
	case NameUAX29:
		return UAX29{}, nil
	default:
		return nil, fmt.Errorf("unknown sentence segmenter %q", name)
	}
}
