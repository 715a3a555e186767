package parser

import (
	"strings"

	"cx/frontend-go/pkg/syntax"
)

func isIgnorableNode(node syntax.Node) bool {
	return node != nil && node.Kind() == syntax.KindComment
}

// namedChildren returns the named, non-comment children of node in order.
func namedChildren(node syntax.Node) []syntax.Node {
	if node == nil {
		return nil
	}
	count := node.NamedChildCount()
	children := make([]syntax.Node, 0, count)
	for i := 0; i < count; i++ {
		child := node.NamedChild(i)
		if child == nil || isIgnorableNode(child) {
			continue
		}
		children = append(children, child)
	}
	return children
}

func firstNamedChild(node syntax.Node) syntax.Node {
	children := namedChildren(node)
	if len(children) == 0 {
		return nil
	}
	return children[0]
}

// fieldOrNamed returns the child in field, or failing that the index-th named
// child. Dumps from grammars without field names rely on the fallback.
func fieldOrNamed(node syntax.Node, field string, index int) syntax.Node {
	if child := node.ChildByFieldName(field); child != nil {
		return child
	}
	children := namedChildren(node)
	if index < len(children) {
		return children[index]
	}
	return nil
}

// childOfKind returns the child in field, or the first named child of kind.
func childOfKind(node syntax.Node, field string, kind syntax.Kind) syntax.Node {
	if child := node.ChildByFieldName(field); child != nil {
		return child
	}
	for _, child := range namedChildren(node) {
		if child.Kind() == kind {
			return child
		}
	}
	return nil
}

// hasToken reports whether one of node's direct anonymous children is text.
func hasToken(node syntax.Node, text string) bool {
	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child == nil || child.IsNamed() {
			continue
		}
		if strings.TrimSpace(child.Text()) == text {
			return true
		}
	}
	return false
}

// operatorToken returns the operator child of node: the "operator" field, or
// the first anonymous child.
func operatorToken(node syntax.Node) syntax.Node {
	if op := node.ChildByFieldName("operator"); op != nil {
		return op
	}
	for i := 0; i < node.ChildCount(); i++ {
		child := node.Child(i)
		if child != nil && !child.IsNamed() {
			return child
		}
	}
	return nil
}

func (b *builder) requireField(node syntax.Node, field string) (syntax.Node, error) {
	child := node.ChildByFieldName(field)
	if child == nil {
		return nil, b.fail(node, ErrMalformed, "%s missing %s", node.Kind(), field)
	}
	return child, nil
}

// requireName returns the text of the identifier held in field.
func (b *builder) requireName(node syntax.Node, field string) (string, error) {
	child, err := b.requireField(node, field)
	if err != nil {
		return "", err
	}
	if child.Kind() != syntax.KindIdentifier {
		return "", b.fail(child, ErrMalformed, "expected identifier for %s.%s, got %s", node.Kind(), field, child.Kind())
	}
	return child.Text(), nil
}

func (b *builder) optionalName(node syntax.Node, field string) (string, error) {
	if node.ChildByFieldName(field) == nil {
		return "", nil
	}
	return b.requireName(node, field)
}
