package syntax

import (
	sitter "github.com/tree-sitter/go-tree-sitter"
)

// sitterNode adapts a go-tree-sitter node. The source buffer must outlive it.
type sitterNode struct {
	node   *sitter.Node
	source []byte
}

// FromSitter wraps a tree-sitter node. It returns nil for a nil node.
func FromSitter(node *sitter.Node, source []byte) Node {
	if node == nil {
		return nil
	}
	return &sitterNode{node: node, source: source}
}

func (n *sitterNode) wrap(child *sitter.Node) Node {
	if child == nil {
		return nil
	}
	return &sitterNode{node: child, source: n.source}
}

func (n *sitterNode) Kind() Kind {
	if !n.node.IsNamed() {
		return KindToken
	}
	switch n.node.Kind() {
	case "comment", "line_comment", "block_comment":
		return KindComment
	}
	return Kind(n.node.Kind())
}

func (n *sitterNode) IsNamed() bool { return n.node.IsNamed() }

func (n *sitterNode) Text() string {
	start := int(n.node.StartByte())
	end := int(n.node.EndByte())
	if start < 0 || end < start || end > len(n.source) {
		return ""
	}
	return string(n.source[start:end])
}

func (n *sitterNode) Start() Point {
	pos := n.node.StartPosition()
	return Point{Line: int(pos.Row) + 1, Column: int(pos.Column)}
}

func (n *sitterNode) End() Point {
	pos := n.node.EndPosition()
	return Point{Line: int(pos.Row) + 1, Column: int(pos.Column)}
}

func (n *sitterNode) ChildCount() int { return int(n.node.ChildCount()) }

func (n *sitterNode) Child(i int) Node {
	if i < 0 || i >= n.ChildCount() {
		return nil
	}
	return n.wrap(n.node.Child(uint(i)))
}

func (n *sitterNode) NamedChildCount() int { return int(n.node.NamedChildCount()) }

func (n *sitterNode) NamedChild(i int) Node {
	if i < 0 || i >= n.NamedChildCount() {
		return nil
	}
	return n.wrap(n.node.NamedChild(uint(i)))
}

func (n *sitterNode) ChildByFieldName(name string) Node {
	return n.wrap(n.node.ChildByFieldName(name))
}
