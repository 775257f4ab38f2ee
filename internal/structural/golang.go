package structural

import (
	"errors"
	"go/ast"
	"go/parser"
	"go/scanner"
	"go/token"
	"strings"

	"github.com/dshills/gochunk/pkg/types"
)

// LanguageGo is the content type handled by Go
const LanguageGo = "go"

// Go segments Go source files into the package clause and each top-level
// declaration, using the standard library parser.
type Go struct{}

// Language implements Segmenter
func (Go) Language() string {
	return LanguageGo
}

// Segment parses src and returns its top-level spans in source order.
//
// Spans tile the input: each span begins on the line after the previous one
// ends, so doc comments and blank lines preceding a declaration travel with
// it and trailing lines join the last span. Joining every span's text with
// "\n" reproduces src exactly.
func (g Go) Segment(src string) ([]types.Span, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "", src, parser.ParseComments)
	if err != nil {
		return nil, g.parseFailure(err)
	}

	lines := strings.Split(src, "\n")
	e := &spanExtractor{lines: lines}

	if file.Name != nil && file.Name.End().IsValid() {
		e.add(fset.Position(file.Name.End()).Line, "package", file.Name.Name)
	}

	for _, decl := range file.Decls {
		if !decl.Pos().IsValid() || !decl.End().IsValid() {
			continue
		}
		kind, name := describeDecl(decl)
		e.add(fset.Position(decl.End()).Line, kind, name)
	}

	e.finish("package")
	return e.spans, nil
}

// parseFailure converts a go/parser error into a ParseFailure
func (g Go) parseFailure(err error) *types.ParseFailure {
	pf := &types.ParseFailure{Language: g.Language(), Message: err.Error()}

	var list scanner.ErrorList
	if errors.As(err, &list) && len(list) > 0 {
		pf.Line = list[0].Pos.Line
		pf.Column = list[0].Pos.Column
		pf.Message = list[0].Msg
	}
	return pf
}

// describeDecl returns the span kind and, when unambiguous, the declared name
func describeDecl(decl ast.Decl) (string, string) {
	switch d := decl.(type) {
	case *ast.FuncDecl:
		if d.Recv != nil && len(d.Recv.List) > 0 {
			if recv := receiverType(d.Recv.List[0].Type); recv != "" {
				return "method", recv + "." + d.Name.Name
			}
			return "method", d.Name.Name
		}
		return "func", d.Name.Name
	case *ast.GenDecl:
		return d.Tok.String(), genDeclName(d)
	default:
		return "decl", ""
	}
}

// genDeclName names single-spec type, const and var declarations
func genDeclName(d *ast.GenDecl) string {
	if len(d.Specs) != 1 {
		return ""
	}
	switch s := d.Specs[0].(type) {
	case *ast.TypeSpec:
		return s.Name.Name
	case *ast.ValueSpec:
		if len(s.Names) == 1 {
			return s.Names[0].Name
		}
	}
	return ""
}

// receiverType extracts the receiver type name from a method
func receiverType(expr ast.Expr) string {
	switch t := expr.(type) {
	case *ast.StarExpr:
		return receiverType(t.X)
	case *ast.Ident:
		return t.Name
	case *ast.IndexExpr:
		return receiverType(t.X)
	case *ast.IndexListExpr:
		return receiverType(t.X)
	}
	return ""
}
