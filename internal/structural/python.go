package structural

import (
	"context"
	"fmt"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"

	"github.com/dshills/gochunk/pkg/types"
)

// LanguagePython is the content type handled by Python
const LanguagePython = "python"

// Python segments Python modules into top-level statements using the
// tree-sitter grammar. Parsers are created per call; tree-sitter parsers
// are not safe for concurrent use.
type Python struct{}

// Language implements Segmenter
func (Python) Language() string {
	return LanguagePython
}

// Segment parses src and returns one line-tiled span per top-level statement
// (imports, assignments, class and function definitions, decorated
// definitions, module-level comments).
func (p Python) Segment(src string) ([]types.Span, error) {
	content := []byte(src)

	parser := sitter.NewParser()
	parser.SetLanguage(python.GetLanguage())

	tree, err := parser.ParseCtx(context.Background(), nil, content)
	if err != nil {
		return nil, &types.ParseFailure{Language: p.Language(), Message: err.Error()}
	}

	root := tree.RootNode()
	if root.HasError() {
		return nil, p.parseFailure(root)
	}

	e := &spanExtractor{lines: strings.Split(src, "\n")}
	for i := 0; i < int(root.NamedChildCount()); i++ {
		node := root.NamedChild(i)
		if node == nil {
			continue
		}
		e.add(endLine(node), node.Type(), pythonName(node, content))
	}

	e.finish("module")
	return e.spans, nil
}

// parseFailure locates the first error or missing node below root
func (p Python) parseFailure(root *sitter.Node) *types.ParseFailure {
	pf := &types.ParseFailure{Language: p.Language(), Message: "syntax error"}

	if n := firstError(root); n != nil {
		pos := n.StartPoint()
		pf.Line = int(pos.Row) + 1
		pf.Column = int(pos.Column) + 1
		if n.IsMissing() {
			pf.Message = fmt.Sprintf("missing %s", n.Type())
		} else {
			pf.Message = "unexpected input"
		}
	}
	return pf
}

func firstError(n *sitter.Node) *sitter.Node {
	if n.Type() == "ERROR" || n.IsMissing() {
		return n
	}
	for i := 0; i < int(n.ChildCount()); i++ {
		child := n.Child(i)
		if child == nil || !child.HasError() && !child.IsMissing() {
			continue
		}
		if found := firstError(child); found != nil {
			return found
		}
	}
	return nil
}

// endLine is the 1-based last line of n. A node ending at column 0 stops at
// the end of the previous line.
func endLine(n *sitter.Node) int {
	start, end := n.StartPoint(), n.EndPoint()
	if end.Column == 0 && end.Row > start.Row {
		return int(end.Row)
	}
	return int(end.Row) + 1
}

// pythonName returns the defined name of a class or function, looking
// through decorators
func pythonName(n *sitter.Node, content []byte) string {
	if n.Type() == "decorated_definition" {
		if def := n.ChildByFieldName("definition"); def != nil {
			n = def
		}
	}
	switch n.Type() {
	case "function_definition", "class_definition":
		if name := n.ChildByFieldName("name"); name != nil {
			return name.Content(content)
		}
	}
	return ""
}
