package structural

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dshills/gochunk/pkg/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readFixture(t *testing.T, name string) string {
	t.Helper()
	content, err := os.ReadFile(filepath.Join("testdata", name))
	require.NoError(t, err)
	return string(content)
}

func joinSpans(spans []types.Span) string {
	parts := make([]string, len(spans))
	for i, s := range spans {
		parts[i] = s.Text
	}
	return strings.Join(parts, "\n")
}

func TestGo_SegmentFixture(t *testing.T) {
	src := readFixture(t, "budget.go")

	spans, err := Go{}.Segment(src)
	require.NoError(t, err)

	kinds := make([]string, len(spans))
	names := make([]string, len(spans))
	for i, s := range spans {
		kinds[i] = s.Kind
		names[i] = s.Name
	}
	assert.Equal(t, []string{"package", "import", "var", "type", "method", "method", "const"}, kinds)
	assert.Equal(t, []string{"budget", "", "ErrOverBudget", "Budget", "Budget.Spend", "Budget.Remaining", ""}, names)

	// Doc comments travel with their declaration
	assert.True(t, strings.HasPrefix(strings.TrimSpace(spans[3].Text), "// Budget tracks"))
	assert.Contains(t, spans[0].Text, "// Package budget")

	// Trailing lines join the last span
	assert.Contains(t, spans[len(spans)-1].Text, "trailing comment")

	// Spans tile the input
	assert.Equal(t, src, joinSpans(spans))
	assert.Equal(t, 1, spans[0].StartLine)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].EndLine+1, spans[i].StartLine, "span %d", i)
	}
}

func TestGo_SegmentPackageOnly(t *testing.T) {
	spans, err := Go{}.Segment("package main\n")
	require.NoError(t, err)
	require.Len(t, spans, 1)
	assert.Equal(t, "package", spans[0].Kind)
	assert.Equal(t, "main", spans[0].Name)
	assert.Equal(t, "package main\n", spans[0].Text)
	assert.Equal(t, 1, spans[0].StartLine)
	assert.Equal(t, 2, spans[0].EndLine)
}

func TestGo_SegmentSharedLine(t *testing.T) {
	src := "package p\n\nvar a = 1; var b = 2\n\nfunc f() {}\n"

	spans, err := Go{}.Segment(src)
	require.NoError(t, err)

	// var b ends on the line already covered by var a
	require.Len(t, spans, 3)
	assert.Equal(t, "var", spans[1].Kind)
	assert.Equal(t, "a", spans[1].Name)
	assert.Equal(t, "func", spans[2].Kind)
	assert.Equal(t, src, joinSpans(spans))
}

func TestGo_SegmentGenericReceiver(t *testing.T) {
	src := `package p

type List[T any] struct{ items []T }

func (l *List[T]) Len() int { return len(l.items) }
`
	spans, err := Go{}.Segment(src)
	require.NoError(t, err)
	require.Len(t, spans, 3)
	assert.Equal(t, "List.Len", spans[2].Name)
}

func TestGo_SegmentNoTrailingNewline(t *testing.T) {
	src := "package p\nfunc f() {}"
	spans, err := Go{}.Segment(src)
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, src, joinSpans(spans))
}

func TestGo_SegmentSyntaxError(t *testing.T) {
	_, err := Go{}.Segment(readFixture(t, "broken.go"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrParseFailure))

	var pf *types.ParseFailure
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, LanguageGo, pf.Language)
	assert.Greater(t, pf.Line, 0)
	assert.NotEmpty(t, pf.Message)
}

func TestGo_SegmentNotGo(t *testing.T) {
	_, err := Go{}.Segment("Just some prose. Nothing to parse here.")
	assert.True(t, errors.Is(err, types.ErrParseFailure))
}

func TestRegistry(t *testing.T) {
	reg := DefaultRegistry()

	for _, ct := range []string{"go", "golang", "GO", ".go", " go "} {
		s, ok := reg.Lookup(ct)
		assert.True(t, ok, ct)
		assert.Equal(t, LanguageGo, s.Language())
	}

	for _, ct := range []string{"py", "python", ".py", "Python"} {
		s, ok := reg.Lookup(ct)
		assert.True(t, ok, ct)
		assert.Equal(t, LanguagePython, s.Language())
	}

	for _, ct := range []string{"", "js", "javascript", "markdown"} {
		_, ok := reg.Lookup(ct)
		assert.False(t, ok, ct)
	}

	assert.Equal(t, []string{"go", "golang", "py", "python"}, reg.ContentTypes())
}

func TestRegistry_Nil(t *testing.T) {
	var reg *Registry
	_, ok := reg.Lookup("go")
	assert.False(t, ok)
}

type stubSegmenter struct{ lang string }

func (s stubSegmenter) Language() string { return s.lang }

func (s stubSegmenter) Segment(src string) ([]types.Span, error) {
	return []types.Span{{Text: src, StartLine: 1, EndLine: 1}}, nil
}

func TestRegistry_RegisterAliases(t *testing.T) {
	reg := NewRegistry()
	reg.Register(stubSegmenter{lang: "toy"}, "ty", "")

	_, ok := reg.Lookup("ty")
	assert.True(t, ok)
	assert.Equal(t, []string{"toy", "ty"}, reg.ContentTypes())
}

func TestPython_SegmentFixture(t *testing.T) {
	src := readFixture(t, "budget.py")

	spans, err := Python{}.Segment(src)
	require.NoError(t, err)

	kinds := make([]string, len(spans))
	names := make([]string, len(spans))
	for i, s := range spans {
		kinds[i] = s.Kind
		names[i] = s.Name
	}
	assert.Equal(t, []string{
		"expression_statement",
		"import_statement",
		"expression_statement",
		"class_definition",
		"decorated_definition",
		"function_definition",
	}, kinds)
	assert.Equal(t, []string{"", "", "", "Budget", "rounded", "remaining"}, names)

	// Methods stay inside their class
	assert.Contains(t, spans[3].Text, "def spend(self, n):")
	assert.NotContains(t, spans[3].Text, "@staticmethod")
	assert.Contains(t, spans[4].Text, "@staticmethod")

	// Spans tile the input
	assert.Equal(t, src, joinSpans(spans))
	assert.Equal(t, 1, spans[0].StartLine)
	for i := 1; i < len(spans); i++ {
		assert.Equal(t, spans[i-1].EndLine+1, spans[i].StartLine, "span %d", i)
	}
}

func TestPython_SegmentNoTrailingNewline(t *testing.T) {
	src := "import os\ndef f():\n    return os.sep"
	spans, err := Python{}.Segment(src)
	require.NoError(t, err)
	require.Len(t, spans, 2)
	assert.Equal(t, "f", spans[1].Name)
	assert.Equal(t, src, joinSpans(spans))
}

func TestPython_SegmentSyntaxError(t *testing.T) {
	_, err := Python{}.Segment(readFixture(t, "broken.py"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, types.ErrParseFailure))

	var pf *types.ParseFailure
	require.True(t, errors.As(err, &pf))
	assert.Equal(t, LanguagePython, pf.Language)
	assert.Greater(t, pf.Line, 0)
	assert.NotEmpty(t, pf.Message)
}
