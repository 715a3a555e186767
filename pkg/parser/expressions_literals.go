package parser

import (
	"strconv"
	"strings"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/syntax"
)

func (b *builder) parseLiteral(node syntax.Node) (*ast.Literal, error) {
	switch node.Kind() {
	case syntax.KindStringLiteral:
		// Escapes are kept as written.
		return ast.NewStringLiteral(strings.Trim(node.Text(), `"`)), nil
	case syntax.KindNumberLiteral:
		return b.parseNumberLiteral(node)
	case syntax.KindBooleanLiteral:
		switch strings.TrimSpace(node.Text()) {
		case "true":
			return ast.NewBooleanLiteral(true), nil
		case "false":
			return ast.NewBooleanLiteral(false), nil
		}
		return nil, b.fail(node, ErrInvalidLiteral, "invalid boolean literal")
	case syntax.KindNullLiteral:
		return ast.NewNullLiteral(), nil
	default:
		return nil, b.fail(node, ErrUnknownShape, "unknown literal shape %q", node.Kind())
	}
}

// parseNumberLiteral yields a float when the text contains a decimal point
// and a 64-bit integer otherwise.
func (b *builder) parseNumberLiteral(node syntax.Node) (*ast.Literal, error) {
	content := strings.TrimSpace(node.Text())
	if content == "" {
		return nil, b.fail(node, ErrInvalidLiteral, "empty number literal")
	}
	if strings.Contains(content, ".") {
		value, err := strconv.ParseFloat(content, 64)
		if err != nil {
			return nil, b.fail(node, ErrInvalidLiteral, "invalid number literal")
		}
		return ast.NewFloatLiteral(value), nil
	}
	value, err := strconv.ParseInt(content, 10, 64)
	if err != nil {
		return nil, b.fail(node, ErrInvalidLiteral, "invalid number literal")
	}
	return ast.NewIntegerLiteral(value), nil
}
