package parser

import (
	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/syntax"
)

// locationFor derives a node location from the syntax node's start. It is nil
// when no file name was configured; locations are never guessed.
func (b *builder) locationFor(node syntax.Node) *ast.Location {
	if b.fileName == "" || node == nil {
		return nil
	}
	start := node.Start()
	return &ast.Location{Line: start.Line, Column: start.Column, SourceFile: b.fileName}
}

// annotate tags a freshly constructed node and returns it.
func annotate[T ast.Node](b *builder, n T, node syntax.Node) T {
	ast.SetLocation(n, b.locationFor(node))
	return n
}
