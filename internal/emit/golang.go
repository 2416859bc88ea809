package emit

import (
	"bytes"
	"fmt"
	"go/ast"
	"go/format"
	"go/parser"
	"go/token"
	"io"
	"strconv"
)

func writeGo(w io.Writer, pkg, name string, syllables []string) error {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by legal-pinyins; DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "// %s holds every legal pinyin syllable.\n", name)
	fmt.Fprintf(&buf, "var %s = [%d]string{\n", name, len(syllables))
	for _, s := range syllables {
		fmt.Fprintf(&buf, "\t%s,\n", strconv.Quote(s))
	}
	buf.WriteString("}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("emit: format go literal: %w", err)
	}
	if _, err := w.Write(src); err != nil {
		return fmt.Errorf("emit: write go literal: %w", err)
	}
	return nil
}

func parseGo(r io.Reader) (Literal, error) {
	src, err := io.ReadAll(r)
	if err != nil {
		return Literal{}, fmt.Errorf("emit: read go literal: %w", err)
	}

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "literal.go", src, parser.SkipObjectResolution)
	if err != nil {
		return Literal{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok || gen.Tok != token.VAR {
			continue
		}
		for _, spec := range gen.Specs {
			vs := spec.(*ast.ValueSpec)
			if len(vs.Names) != 1 || len(vs.Values) != 1 {
				continue
			}
			cl, ok := vs.Values[0].(*ast.CompositeLit)
			if !ok {
				continue
			}
			if _, ok := cl.Type.(*ast.ArrayType); !ok {
				continue
			}
			return goLiteral(fset, vs.Names[0].Name, cl)
		}
	}
	return Literal{}, malformed(0, "no array variable declaration")
}

func goLiteral(fset *token.FileSet, name string, cl *ast.CompositeLit) (Literal, error) {
	line := func(n ast.Node) int { return fset.Position(n.Pos()).Line }

	at := cl.Type.(*ast.ArrayType)
	lenLit, ok := at.Len.(*ast.BasicLit)
	if !ok || lenLit.Kind != token.INT {
		return Literal{}, malformed(line(at), "array length is not an integer literal")
	}
	declared, err := strconv.Atoi(lenLit.Value)
	if err != nil {
		return Literal{}, malformed(line(lenLit), "bad length %q", lenLit.Value)
	}
	if elt, ok := at.Elt.(*ast.Ident); !ok || elt.Name != "string" {
		return Literal{}, malformed(line(at), "element type is not string")
	}

	lit := Literal{Name: name, Declared: declared}
	for _, e := range cl.Elts {
		bl, ok := e.(*ast.BasicLit)
		if !ok || bl.Kind != token.STRING {
			return Literal{}, malformed(line(e), "element is not a string literal")
		}
		s, err := strconv.Unquote(bl.Value)
		if err != nil {
			return Literal{}, malformed(line(bl), "%v", err)
		}
		lit.Syllables = append(lit.Syllables, s)
	}
	if lit.Declared != len(lit.Syllables) {
		return Literal{}, malformed(line(cl), "declared length %d, found %d elements", lit.Declared, len(lit.Syllables))
	}
	return lit, nil
}
