package parser

import (
	"strings"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/syntax"
)

var binaryOperatorSets = map[syntax.Kind]map[string]ast.BinaryOperator{
	syntax.KindAdditiveExpression: {
		"+": ast.BinaryAdd,
		"-": ast.BinarySubtract,
	},
	syntax.KindMultiplicativeExpression: {
		"*": ast.BinaryMultiply,
		"/": ast.BinaryDivide,
		"%": ast.BinaryModulo,
	},
	syntax.KindRelationalExpression: {
		"<":  ast.BinaryLessThan,
		">":  ast.BinaryGreaterThan,
		"<=": ast.BinaryLessOrEqual,
		">=": ast.BinaryGreaterOrEqual,
		"==": ast.BinaryEqual,
		"!=": ast.BinaryNotEqual,
	},
	syntax.KindLogicalExpression: {
		"&&": ast.BinaryAnd,
		"||": ast.BinaryOr,
	},
}

var assignmentOperatorMap = map[string]ast.AssignmentOperator{
	"=":  ast.AssignmentAssign,
	"+=": ast.AssignmentAddAssign,
	"-=": ast.AssignmentSubtractAssign,
	"*=": ast.AssignmentMultiplyAssign,
	"/=": ast.AssignmentDivideAssign,
}

var unaryOperatorMap = map[string]ast.UnaryOperator{
	"!": ast.UnaryNot,
	"-": ast.UnaryMinus,
	"+": ast.UnaryPlus,
}

func (b *builder) parseExpression(node syntax.Node) (ast.Expression, error) {
	if node == nil {
		return nil, b.fail(node, ErrMalformed, "missing expression")
	}

	if operators, ok := binaryOperatorSets[node.Kind()]; ok {
		return b.parseBinaryExpression(node, operators)
	}

	switch node.Kind() {
	case syntax.KindPrimaryExpression:
		child := firstNamedChild(node)
		if child == nil {
			return nil, b.fail(node, ErrMalformed, "primary expression has no children")
		}
		return b.parseExpression(child)
	case syntax.KindPrimary:
		return b.parsePrimary(node)
	case syntax.KindIdentifier,
		syntax.KindStringLiteral,
		syntax.KindNumberLiteral,
		syntax.KindBooleanLiteral,
		syntax.KindNullLiteral,
		syntax.KindSelf:
		return b.parseTerminal(node)
	case syntax.KindMemberAccess:
		return b.parseMemberAccess(node)
	case syntax.KindFunctionCall:
		return b.parseFunctionCall(node)
	case syntax.KindIndexAccess:
		return b.parseIndexAccess(node)
	case syntax.KindAwaitExpression:
		operand, err := b.parseOperand(node)
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewAwaitExpression(operand), node), nil
	case syntax.KindParallelExpression:
		operand, err := b.parseOperand(node)
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewParallelExpression(operand), node), nil
	case syntax.KindAssignmentExpression:
		return b.parseAssignmentExpression(node)
	case syntax.KindUnaryExpression:
		return b.parseUnaryExpression(node)
	case syntax.KindObjectLiteral:
		return b.parseObjectLiteral(node)
	case syntax.KindArrayLiteral:
		elements, err := b.parseArguments(childOfKind(node, "elements", syntax.KindArgumentList))
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewArrayLiteral(elements), node), nil
	case syntax.KindNewExpression:
		typeName, err := b.requireName(node, "type")
		if err != nil {
			return nil, err
		}
		args, err := b.parseArguments(childOfKind(node, "arguments", syntax.KindArgumentList))
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewNewExpression(typeName, args), node), nil
	default:
		return nil, b.fail(node, ErrUnknownShape, "unknown expression shape %q", node.Kind())
	}
}

// parsePrimary handles the primary alternatives: a terminal, or a
// parenthesised expression whose parentheses are anonymous tokens.
func (b *builder) parsePrimary(node syntax.Node) (ast.Expression, error) {
	child := firstNamedChild(node)
	if child == nil {
		return nil, b.fail(node, ErrUnknownShape, "unknown primary expression")
	}
	switch {
	case child.Kind() == syntax.KindPrimary, child.Kind().IsExpression():
		return b.parseExpression(child)
	case isTerminal(child.Kind()):
		return b.parseTerminal(child)
	default:
		return nil, b.fail(node, ErrUnknownShape, "unknown primary expression")
	}
}

func isTerminal(kind syntax.Kind) bool {
	switch kind {
	case syntax.KindIdentifier,
		syntax.KindStringLiteral,
		syntax.KindNumberLiteral,
		syntax.KindBooleanLiteral,
		syntax.KindNullLiteral,
		syntax.KindSelf:
		return true
	}
	return false
}

func (b *builder) parseTerminal(node syntax.Node) (ast.Expression, error) {
	switch node.Kind() {
	case syntax.KindIdentifier:
		return annotate(b, ast.NewIdentifier(node.Text()), node), nil
	case syntax.KindSelf:
		return annotate(b, ast.NewSelfReference(), node), nil
	default:
		lit, err := b.parseLiteral(node)
		if err != nil {
			return nil, err
		}
		return annotate(b, lit, node), nil
	}
}

func (b *builder) parseBinaryExpression(node syntax.Node, operators map[string]ast.BinaryOperator) (ast.Expression, error) {
	left, right, err := b.parseOperands(node)
	if err != nil {
		return nil, err
	}
	opText, err := b.operatorText(node)
	if err != nil {
		return nil, err
	}
	op, ok := operators[opText]
	if !ok {
		return nil, b.fail(node, ErrUnknownOperator, "unknown %s operator %q", strings.TrimSuffix(string(node.Kind()), "_expression"), opText)
	}
	return annotate(b, ast.NewBinaryExpression(op, left, right), node), nil
}

// parseAssignmentExpression resolves an unmapped operator to plain
// assignment unless the builder is strict.
func (b *builder) parseAssignmentExpression(node syntax.Node) (ast.Expression, error) {
	left, right, err := b.parseOperands(node)
	if err != nil {
		return nil, err
	}
	opText, err := b.operatorText(node)
	if err != nil {
		return nil, err
	}
	op, ok := assignmentOperatorMap[opText]
	if !ok {
		if b.strictAssignment {
			return nil, b.fail(node, ErrUnknownOperator, "unknown assignment operator %q", opText)
		}
		op = ast.AssignmentAssign
	}
	return annotate(b, ast.NewAssignmentExpression(op, left, right), node), nil
}

func (b *builder) parseUnaryExpression(node syntax.Node) (ast.Expression, error) {
	operandNode := fieldOrNamed(node, "operand", 0)
	if operandNode == nil {
		return nil, b.fail(node, ErrMalformed, "unary expression missing operand")
	}
	operand, err := b.parseExpression(operandNode)
	if err != nil {
		return nil, err
	}
	opText, err := b.operatorText(node)
	if err != nil {
		return nil, err
	}
	op, ok := unaryOperatorMap[opText]
	if !ok {
		return nil, b.fail(node, ErrUnknownOperator, "unknown unary operator %q", opText)
	}
	return annotate(b, ast.NewUnaryExpression(op, operand), node), nil
}

func (b *builder) parseOperands(node syntax.Node) (ast.Expression, ast.Expression, error) {
	leftNode := fieldOrNamed(node, "left", 0)
	rightNode := fieldOrNamed(node, "right", 1)
	if leftNode == nil || rightNode == nil {
		return nil, nil, b.fail(node, ErrMalformed, "%s requires two operands", node.Kind())
	}
	left, err := b.parseExpression(leftNode)
	if err != nil {
		return nil, nil, err
	}
	right, err := b.parseExpression(rightNode)
	if err != nil {
		return nil, nil, err
	}
	return left, right, nil
}

func (b *builder) operatorText(node syntax.Node) (string, error) {
	op := operatorToken(node)
	if op == nil {
		return "", b.fail(node, ErrMalformed, "%s missing operator", node.Kind())
	}
	return strings.TrimSpace(op.Text()), nil
}

// parseOperand reads the single wrapped expression of await and parallel.
func (b *builder) parseOperand(node syntax.Node) (ast.Expression, error) {
	child := node.ChildByFieldName("argument")
	if child == nil {
		children := namedChildren(node)
		if len(children) != 1 {
			return nil, b.fail(node, ErrMalformed, "%s requires exactly one operand", node.Kind())
		}
		child = children[0]
	}
	return b.parseExpression(child)
}

func (b *builder) parseMemberAccess(node syntax.Node) (ast.Expression, error) {
	objectNode, err := b.requireField(node, "object")
	if err != nil {
		return nil, err
	}
	object, err := b.parseExpression(objectNode)
	if err != nil {
		return nil, err
	}
	property, err := b.requireName(node, "property")
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewMemberAccessExpression(object, property), node), nil
}

func (b *builder) parseFunctionCall(node syntax.Node) (ast.Expression, error) {
	calleeNode, err := b.requireField(node, "function")
	if err != nil {
		return nil, err
	}
	callee, err := b.parseExpression(calleeNode)
	if err != nil {
		return nil, err
	}
	args, err := b.parseArguments(childOfKind(node, "arguments", syntax.KindArgumentList))
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewCallExpression(callee, args), node), nil
}

func (b *builder) parseIndexAccess(node syntax.Node) (ast.Expression, error) {
	objectNode, err := b.requireField(node, "object")
	if err != nil {
		return nil, err
	}
	object, err := b.parseExpression(objectNode)
	if err != nil {
		return nil, err
	}
	indexNode, err := b.requireField(node, "index")
	if err != nil {
		return nil, err
	}
	index, err := b.parseExpression(indexNode)
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewIndexAccessExpression(object, index), node), nil
}

// parseArguments builds an argument_list; a nil list yields no arguments.
func (b *builder) parseArguments(node syntax.Node) ([]ast.Expression, error) {
	if node == nil {
		return []ast.Expression{}, nil
	}
	children := namedChildren(node)
	args := make([]ast.Expression, 0, len(children))
	for _, child := range children {
		arg, err := b.parseExpression(child)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	return args, nil
}

func (b *builder) parseObjectLiteral(node syntax.Node) (ast.Expression, error) {
	var propNodes []syntax.Node
	if list := childOfKind(node, "properties", syntax.KindObjectPropertyList); list != nil {
		propNodes = namedChildren(list)
	} else {
		for _, child := range namedChildren(node) {
			if child.Kind() == syntax.KindObjectProperty {
				propNodes = append(propNodes, child)
			}
		}
	}
	props := make([]*ast.ObjectProperty, 0, len(propNodes))
	for _, propNode := range propNodes {
		prop, err := b.parseObjectProperty(propNode)
		if err != nil {
			return nil, err
		}
		props = append(props, prop)
	}
	return annotate(b, ast.NewObjectLiteral(props), node), nil
}

// parseObjectProperty reads an identifier key verbatim and a string key with
// its first and last characters removed.
func (b *builder) parseObjectProperty(node syntax.Node) (*ast.ObjectProperty, error) {
	if node.Kind() != syntax.KindObjectProperty {
		return nil, b.fail(node, ErrUnknownShape, "expected object_property, got %s", node.Kind())
	}
	keyNode := fieldOrNamed(node, "key", 0)
	if keyNode == nil {
		return nil, b.fail(node, ErrMalformed, "object property missing key")
	}
	var key string
	switch keyNode.Kind() {
	case syntax.KindIdentifier:
		key = keyNode.Text()
	case syntax.KindStringLiteral:
		text := keyNode.Text()
		if len(text) < 2 {
			return nil, b.fail(keyNode, ErrInvalidLiteral, "object key too short")
		}
		key = text[1 : len(text)-1]
	default:
		return nil, b.fail(keyNode, ErrUnknownShape, "unknown object key shape %q", keyNode.Kind())
	}
	valueNode := fieldOrNamed(node, "value", 1)
	if valueNode == nil {
		return nil, b.fail(node, ErrMalformed, "object property missing value")
	}
	value, err := b.parseExpression(valueNode)
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewObjectProperty(key, value), node), nil
}
