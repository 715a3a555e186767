package parser

import (
	"strings"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/syntax"
)

// ParseType maps annotation text to a surface type. Generic and array forms
// collapse to TypeObject; anything unrecognised collapses to TypeAny.
func ParseType(text string) ast.Type {
	text = strings.TrimSpace(text)
	switch text {
	case "string":
		return ast.TypeString
	case "number":
		return ast.TypeNumber
	case "boolean":
		return ast.TypeBoolean
	case "any":
		return ast.TypeAny
	case "object":
		return ast.TypeObject
	}
	if strings.Contains(text, "<") || strings.HasSuffix(text, "[]") {
		return ast.TypeObject
	}
	return ast.TypeAny
}

var accessModifiers = map[string]ast.AccessModifier{
	"public":    ast.AccessPublic,
	"private":   ast.AccessPrivate,
	"protected": ast.AccessProtected,
}

// ParseAccessModifier resolves a modifier keyword.
func ParseAccessModifier(text string) (ast.AccessModifier, bool) {
	access, ok := accessModifiers[strings.TrimSpace(text)]
	return access, ok
}

// parseAccess reads the optional access field of a declaration. An absent
// modifier yields the empty value, which the ast constructors default to
// public.
func (b *builder) parseAccess(node syntax.Node) (ast.AccessModifier, error) {
	accessNode := childOfKind(node, "access", syntax.KindAccessModifier)
	if accessNode == nil {
		return "", nil
	}
	access, ok := ParseAccessModifier(accessNode.Text())
	if !ok {
		return "", b.fail(accessNode, ErrUnknownShape, "unknown access modifier")
	}
	return access, nil
}

func (b *builder) parseTypeAnnotation(node syntax.Node) (ast.Type, error) {
	if node.Kind() != syntax.KindType {
		return "", b.fail(node, ErrMalformed, "expected type, got %s", node.Kind())
	}
	return ParseType(node.Text()), nil
}

// parseReturnType reads the optional return_type field shared by functions,
// methods and interface method signatures.
func (b *builder) parseReturnType(node syntax.Node) (*ast.Type, error) {
	typeNode := node.ChildByFieldName("return_type")
	if typeNode == nil {
		return nil, nil
	}
	typ, err := b.parseTypeAnnotation(typeNode)
	if err != nil {
		return nil, err
	}
	return &typ, nil
}
