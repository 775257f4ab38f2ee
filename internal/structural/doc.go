// Package structural recovers top-level syntactic units from source code so
// the chunker can cut code at declaration boundaries.
//
// Go is parsed with the standard library (go/parser, go/ast, go/token) and
// Python with tree-sitter. Only grammars with an available parser are
// registered; every other content type, including code in other languages,
// is chunked as prose.
//
// # Basic Usage
//
//	reg := structural.DefaultRegistry()
//	seg, ok := reg.Lookup("go")
//	if !ok {
//	    // no grammar, use prose chunking
//	}
//
//	spans, err := seg.Segment(src)
//	var pf *types.ParseFailure
//	if errors.As(err, &pf) {
//	    log.Printf("invalid syntax at line %d: %s", pf.Line, pf.Message)
//	}
//
//	for _, span := range spans {
//	    fmt.Printf("%s %s: lines %d-%d\n", span.Kind, span.Name, span.StartLine, span.EndLine)
//	}
//
// # Span Layout
//
// For Go the first span is the package clause together with any file header;
// for Python every top-level statement is a span. Each following span ends
// at the last line of one top-level construct and starts on the line after
// the previous span, so doc comments stay with the declaration they
// document. Concatenating span texts with newlines yields the original
// source.
package structural
