package parser

import (
	"strings"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/syntax"
)

// parseStatementList builds every named child of node as a statement.
func (b *builder) parseStatementList(node syntax.Node) ([]ast.Statement, error) {
	children := namedChildren(node)
	statements := make([]ast.Statement, 0, len(children))
	for _, child := range children {
		stmt, err := b.parseStatement(child)
		if err != nil {
			return nil, err
		}
		statements = append(statements, stmt)
	}
	return statements, nil
}

func (b *builder) parseBlock(node syntax.Node) (*ast.BlockStatement, error) {
	if node == nil {
		return nil, b.fail(node, ErrMalformed, "missing block")
	}
	if node.Kind() != syntax.KindBlockStatement {
		return nil, b.fail(node, ErrMalformed, "expected block_statement, got %s", node.Kind())
	}
	statements, err := b.parseStatementList(node)
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewBlockStatement(statements), node), nil
}

func (b *builder) parseStatement(node syntax.Node) (ast.Statement, error) {
	switch node.Kind() {
	case syntax.KindStatement:
		// The wrapper contributes no node of its own.
		child := firstNamedChild(node)
		if child == nil {
			return nil, b.fail(node, ErrMalformed, "statement has no children")
		}
		return b.parseStatement(child)
	case syntax.KindVariableDeclaration:
		return b.parseVariableDeclaration(node)
	case syntax.KindFunctionDeclaration:
		return b.parseFunctionDeclaration(node)
	case syntax.KindImportStatement:
		return b.parseImportStatement(node)
	case syntax.KindBlockStatement:
		block, err := b.parseBlock(node)
		if err != nil {
			return nil, err
		}
		return block, nil
	case syntax.KindExpressionStatement:
		exprNode := fieldOrNamed(node, "expression", 0)
		if exprNode == nil {
			return nil, b.fail(node, ErrMalformed, "expression statement missing expression")
		}
		expr, err := b.parseExpression(exprNode)
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewExpressionStatement(expr), node), nil
	case syntax.KindReturnStatement:
		valueNode := fieldOrNamed(node, "value", 0)
		if valueNode == nil {
			return annotate(b, ast.NewReturnStatement(nil), node), nil
		}
		value, err := b.parseExpression(valueNode)
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewReturnStatement(value), node), nil
	case syntax.KindIfStatement:
		return b.parseIfStatement(node)
	case syntax.KindWhileStatement:
		return b.parseWhileStatement(node)
	case syntax.KindForStatement:
		return b.parseForStatement(node)
	case syntax.KindTryStatement:
		return b.parseTryStatement(node)
	case syntax.KindThrowStatement:
		valueNode := fieldOrNamed(node, "value", 0)
		if valueNode == nil {
			return nil, b.fail(node, ErrMalformed, "throw statement missing expression")
		}
		value, err := b.parseExpression(valueNode)
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewThrowStatement(value), node), nil
	case syntax.KindClassDeclaration:
		return b.parseClassDeclaration(node)
	case syntax.KindInterfaceDeclaration:
		return b.parseInterfaceDeclaration(node)
	default:
		return nil, b.fail(node, ErrUnknownShape, "unknown statement shape %q", node.Kind())
	}
}

func (b *builder) parseVariableDeclaration(node syntax.Node) (ast.Statement, error) {
	name, err := b.requireName(node, "name")
	if err != nil {
		return nil, err
	}
	valueNode, err := b.requireField(node, "value")
	if err != nil {
		return nil, err
	}
	value, err := b.parseExpression(valueNode)
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewVariableDeclaration(name, value), node), nil
}

func (b *builder) parseImportStatement(node syntax.Node) (ast.Statement, error) {
	alias, err := b.requireName(node, "alias")
	if err != nil {
		return nil, err
	}
	pathNode, err := b.requireField(node, "path")
	if err != nil {
		return nil, err
	}
	if pathNode.Kind() != syntax.KindStringLiteral {
		return nil, b.fail(pathNode, ErrMalformed, "import path must be a string literal")
	}
	modulePath := strings.Trim(pathNode.Text(), `"`)
	return annotate(b, ast.NewImportStatement(alias, modulePath), node), nil
}

func (b *builder) parseIfStatement(node syntax.Node) (ast.Statement, error) {
	conditionNode, err := b.requireField(node, "condition")
	if err != nil {
		return nil, err
	}
	condition, err := b.parseExpression(conditionNode)
	if err != nil {
		return nil, err
	}
	thenNode, err := b.requireField(node, "consequence")
	if err != nil {
		return nil, err
	}
	then, err := b.parseStatement(thenNode)
	if err != nil {
		return nil, err
	}
	var els ast.Statement
	if elseNode := node.ChildByFieldName("alternative"); elseNode != nil {
		els, err = b.parseStatement(elseNode)
		if err != nil {
			return nil, err
		}
	}
	return annotate(b, ast.NewIfStatement(condition, then, els), node), nil
}

func (b *builder) parseWhileStatement(node syntax.Node) (ast.Statement, error) {
	conditionNode, err := b.requireField(node, "condition")
	if err != nil {
		return nil, err
	}
	condition, err := b.parseExpression(conditionNode)
	if err != nil {
		return nil, err
	}
	bodyNode, err := b.requireField(node, "body")
	if err != nil {
		return nil, err
	}
	body, err := b.parseStatement(bodyNode)
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewWhileStatement(condition, body), node), nil
}

func (b *builder) parseForStatement(node syntax.Node) (ast.Statement, error) {
	variable, err := b.requireName(node, "variable")
	if err != nil {
		return nil, err
	}
	iterNode, err := b.requireField(node, "iterable")
	if err != nil {
		return nil, err
	}
	iterable, err := b.parseExpression(iterNode)
	if err != nil {
		return nil, err
	}
	bodyNode, err := b.requireField(node, "body")
	if err != nil {
		return nil, err
	}
	body, err := b.parseStatement(bodyNode)
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewForStatement(variable, iterable, body), node), nil
}

// parseTryStatement reads the catch variable only when a catch block exists.
func (b *builder) parseTryStatement(node syntax.Node) (ast.Statement, error) {
	bodyNode, err := b.requireField(node, "body")
	if err != nil {
		return nil, err
	}
	tryBlock, err := b.parseBlock(bodyNode)
	if err != nil {
		return nil, err
	}
	var (
		catchVar   string
		catchBlock *ast.BlockStatement
	)
	if handlerNode := node.ChildByFieldName("handler"); handlerNode != nil {
		catchVar, err = b.optionalName(node, "parameter")
		if err != nil {
			return nil, err
		}
		catchBlock, err = b.parseBlock(handlerNode)
		if err != nil {
			return nil, err
		}
	}
	return annotate(b, ast.NewTryStatement(tryBlock, catchVar, catchBlock), node), nil
}
