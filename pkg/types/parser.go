package types

import "fmt"

// ParseFailure reports source text that a structural segmenter could not
// parse. It is an expected outcome: the dispatcher falls back to prose.
type ParseFailure struct {
	Language string
	Line     int
	Column   int
	Message  string
}

// Error implements the error interface
func (pf *ParseFailure) Error() string {
	if pf.Line > 0 {
		return fmt.Sprintf("%s: %d:%d: %s", pf.Language, pf.Line, pf.Column, pf.Message)
	}
	return fmt.Sprintf("%s: %s", pf.Language, pf.Message)
}

// Unwrap lets callers match with errors.Is(err, ErrParseFailure)
func (pf *ParseFailure) Unwrap() error {
	return ErrParseFailure
}
