package parser

import (
	"fmt"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/syntax"
)

// ModuleParser wraps a tree-sitter parser configured with a Cx grammar and
// feeds its trees to an ASTBuilder.
type ModuleParser struct {
	parser  *sitter.Parser
	builder *ASTBuilder
}

// NewModuleParser constructs a parser for the given grammar. Options are
// passed to the underlying ASTBuilder.
func NewModuleParser(lang *sitter.Language, opts ...Option) (*ModuleParser, error) {
	if lang == nil {
		return nil, fmt.Errorf("parser: cx language not available")
	}

	p := sitter.NewParser()
	if err := p.SetLanguage(lang); err != nil {
		p.Close()
		return nil, fmt.Errorf("parser: %w", err)
	}

	return &ModuleParser{parser: p, builder: NewASTBuilder(opts...)}, nil
}

// Close releases parser resources.
func (p *ModuleParser) Close() {
	if p == nil || p.parser == nil {
		return
	}
	p.parser.Close()
}

// ParseModule parses Cx source into a program. Trees containing ERROR or
// MISSING nodes are reported as a *SyntaxError and never transformed.
func (p *ModuleParser) ParseModule(source []byte) (*ast.Program, error) {
	if p == nil || p.parser == nil {
		return nil, fmt.Errorf("parser: nil parser")
	}

	tree := p.parser.Parse(source, nil)
	if tree == nil {
		return nil, fmt.Errorf("parser: parse produced no tree")
	}
	defer tree.Close()

	root := tree.RootNode()
	if root == nil {
		return nil, fmt.Errorf("parser: unexpected root node")
	}
	if root.HasError() {
		return nil, syntaxError(root)
	}
	return p.builder.Build(syntax.FromSitter(root, source))
}
