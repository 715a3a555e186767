// Package syntax is the boundary between the upstream Cx grammar and the
// AST builder. It exposes concrete syntax trees through a small read-only
// Node interface shaped after the tree-sitter node API, with two producers:
// an adapter over go-tree-sitter trees and an in-memory Tree that can be
// built in code or decoded from a YAML/JSON dump.
package syntax

import "fmt"

// Point is a source position. Line is 1-based; Column is 0-based.
type Point struct {
	Line   int `yaml:"line" json:"line"`
	Column int `yaml:"column" json:"column"`
}

func (p Point) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is one node of a concrete syntax tree.
//
// Child, NamedChild and ChildByFieldName return nil when the child does not
// exist.
type Node interface {
	Kind() Kind
	IsNamed() bool
	// Text is the source text covered by the node.
	Text() string
	Start() Point
	// End locates the node's last token. Producers agree on its Line; the
	// Column convention follows the producer.
	End() Point

	ChildCount() int
	Child(i int) Node
	NamedChildCount() int
	NamedChild(i int) Node
	ChildByFieldName(name string) Node
}
