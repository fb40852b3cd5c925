// Package scanner extracts import edges and export counts from JavaScript
// and TypeScript sources using tree-sitter. Only top-level statements are
// inspected; no semantic resolution happens here.
package scanner

import (
	"context"
	"path/filepath"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/javascript"
	"github.com/smacker/go-tree-sitter/typescript/tsx"
	"github.com/smacker/go-tree-sitter/typescript/typescript"
	"go.trai.ch/zerr"

	"github.com/devindavies/barrelint/internal/core/domain"
	"github.com/devindavies/barrelint/internal/core/ports"
)

var _ ports.SourceScanner = (*Scanner)(nil)

// Scanner implements ports.SourceScanner with tree-sitter grammars.
type Scanner struct{}

// New creates a new Scanner.
func New() *Scanner {
	return &Scanner{}
}

// languageFor selects the grammar for a file path, or nil for formats that
// carry no import syntax (.json, .node).
func languageFor(path string) *sitter.Language {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ts", ".mts", ".cts":
		return typescript.GetLanguage()
	case ".tsx":
		return tsx.GetLanguage()
	case ".js", ".jsx", ".mjs", ".cjs":
		return javascript.GetLanguage()
	default:
		return nil
	}
}

// parse builds a syntax tree for the source. Parsers are not safe for
// concurrent use, so each call gets its own.
func parse(lang *sitter.Language, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	defer parser.Close()
	parser.SetLanguage(lang)

	tree, err := parser.ParseCtx(context.Background(), nil, source)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to parse source")
	}
	return tree, nil
}

// ScanImports returns the statically declared imports of the module, in
// source order. Re-export statements with a source clause count as import
// edges: they pull in the referenced module just like an import would.
func (s *Scanner) ScanImports(path string, source []byte) ([]domain.Import, error) {
	lang := languageFor(path)
	if lang == nil {
		return nil, nil
	}

	tree, err := parse(lang, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	var imports []domain.Import
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		switch stmt.Type() {
		case "import_statement":
			// Covers named, default, namespace and bare side-effect imports.
		case "export_statement":
			if stmt.ChildByFieldName("source") == nil {
				continue
			}
		default:
			continue
		}

		src := stmt.ChildByFieldName("source")
		if src == nil {
			continue
		}
		imports = append(imports, domain.Import{
			Specifier: domain.Specifier(stringLiteral(src, source)),
			TypeOnly:  hasTypeKeyword(stmt),
			Line:      int(src.StartPoint().Row) + 1,
			Column:    int(src.StartPoint().Column) + 1,
		})
	}

	return imports, nil
}

// CountExports returns the number of distinct top-level exported bindings.
func (s *Scanner) CountExports(path string, source []byte) (int, error) {
	lang := languageFor(path)
	if lang == nil {
		return 0, nil
	}

	tree, err := parse(lang, source)
	if err != nil {
		return 0, err
	}
	defer tree.Close()

	count := 0
	root := tree.RootNode()
	for i := 0; i < int(root.NamedChildCount()); i++ {
		stmt := root.NamedChild(i)
		if stmt.Type() != "export_statement" {
			continue
		}
		count += exportBindingCount(stmt)
	}

	return count, nil
}

// exportBindingCount counts the bindings introduced by one export statement:
// exported declarations, default exports, named specifiers (including
// renames), namespace re-exports and re-export-all.
func exportBindingCount(stmt *sitter.Node) int {
	if decl := stmt.ChildByFieldName("declaration"); decl != nil {
		return declarationBindingCount(decl)
	}
	if stmt.ChildByFieldName("value") != nil {
		// export default <expression>
		return 1
	}

	count := 0
	for i := 0; i < int(stmt.ChildCount()); i++ {
		child := stmt.Child(i)
		switch child.Type() {
		case "export_clause":
			for j := 0; j < int(child.NamedChildCount()); j++ {
				if child.NamedChild(j).Type() == "export_specifier" {
					count++
				}
			}
		case "namespace_export", "*":
			count++
		}
	}
	return count
}

// declarationBindingCount counts names declared by an exported declaration.
// Variable statements may declare several bindings at once.
func declarationBindingCount(decl *sitter.Node) int {
	switch decl.Type() {
	case "lexical_declaration", "variable_declaration":
		count := 0
		for i := 0; i < int(decl.NamedChildCount()); i++ {
			if decl.NamedChild(i).Type() == "variable_declarator" {
				count++
			}
		}
		if count == 0 {
			return 1
		}
		return count
	default:
		return 1
	}
}

// hasTypeKeyword reports whether the statement is type-only ("import type" /
// "export type"). The keyword appears as an anonymous "type" token.
func hasTypeKeyword(stmt *sitter.Node) bool {
	for i := 0; i < int(stmt.ChildCount()); i++ {
		child := stmt.Child(i)
		if !child.IsNamed() && child.Type() == "type" {
			return true
		}
	}
	return false
}

// stringLiteral returns the content of a string node without quotes.
func stringLiteral(node *sitter.Node, source []byte) string {
	for i := 0; i < int(node.NamedChildCount()); i++ {
		child := node.NamedChild(i)
		if child.Type() == "string_fragment" {
			return string(source[child.StartByte():child.EndByte()])
		}
	}
	return strings.Trim(string(source[node.StartByte():node.EndByte()]), "'\"`")
}
