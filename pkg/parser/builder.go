package parser

import (
	"fmt"

	"go.uber.org/zap"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/syntax"
)

// Option configures an ASTBuilder.
type Option func(*ASTBuilder)

// WithFileName tags every built node with a location in the named file.
// Without it no node carries a location.
func WithFileName(name string) Option {
	return func(b *ASTBuilder) { b.fileName = name }
}

// WithStrictAssignment makes an unrecognised assignment operator a failure
// instead of resolving it to plain assignment.
func WithStrictAssignment() Option {
	return func(b *ASTBuilder) { b.strictAssignment = true }
}

// WithLogger sets the logger used for build tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(b *ASTBuilder) {
		if logger != nil {
			b.logger = logger
		}
	}
}

// ASTBuilder converts concrete syntax trees into Cx ASTs. Its configuration
// is fixed at construction, so one builder may serve concurrent Build calls.
type ASTBuilder struct {
	fileName         string
	strictAssignment bool
	logger           *zap.Logger
}

// NewASTBuilder constructs a builder.
func NewASTBuilder(opts ...Option) *ASTBuilder {
	b := &ASTBuilder{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// FileName returns the configured source file name, if any.
func (p *ASTBuilder) FileName() string { return p.fileName }

// Build transforms a program node. On failure it returns a nil program and
// an error wrapping a *TransformError.
func (p *ASTBuilder) Build(root syntax.Node) (*ast.Program, error) {
	if root == nil {
		return nil, fmt.Errorf("parser: nil syntax tree")
	}
	b := p.newBuilder()
	if root.Kind() != syntax.KindProgram {
		return nil, b.fail(root, ErrUnknownShape, "expected program, got %s", root.Kind())
	}
	program, err := b.parseProgram(root)
	if err != nil {
		p.logger.Debug("ast build failed", zap.String("file", p.fileName), zap.Error(err))
		return nil, err
	}
	if ce := p.logger.Check(zap.DebugLevel, "ast built"); ce != nil {
		ce.Write(
			zap.String("file", p.fileName),
			zap.Int("statements", len(program.Statements)),
			zap.Int("nodes", ast.Count(program)),
		)
	}
	return program, nil
}

// Transform builds the AST node for any standalone syntax shape.
func (p *ASTBuilder) Transform(node syntax.Node) (ast.Node, error) {
	if node == nil {
		return nil, fmt.Errorf("parser: nil syntax node")
	}
	result, err := p.newBuilder().parseNode(node)
	if err != nil {
		return nil, err
	}
	return result, nil
}

func (p *ASTBuilder) newBuilder() *builder {
	return &builder{fileName: p.fileName, strictAssignment: p.strictAssignment}
}

// builder holds the state of a single transformation.
type builder struct {
	fileName         string
	strictAssignment bool
}

// parseNode dispatches on every known syntax kind. Adding a kind to the
// syntax package without a case here falls through to the default and is
// caught by TestTransformCoversEveryKind.
func (b *builder) parseNode(node syntax.Node) (ast.Node, error) {
	switch node.Kind() {
	case syntax.KindProgram:
		program, err := b.parseProgram(node)
		if err != nil {
			return nil, err
		}
		return program, nil
	case syntax.KindStatement,
		syntax.KindVariableDeclaration,
		syntax.KindFunctionDeclaration,
		syntax.KindImportStatement,
		syntax.KindBlockStatement,
		syntax.KindExpressionStatement,
		syntax.KindReturnStatement,
		syntax.KindIfStatement,
		syntax.KindWhileStatement,
		syntax.KindForStatement,
		syntax.KindTryStatement,
		syntax.KindThrowStatement,
		syntax.KindClassDeclaration,
		syntax.KindInterfaceDeclaration:
		return b.parseStatement(node)
	case syntax.KindPrimaryExpression,
		syntax.KindPrimary,
		syntax.KindMemberAccess,
		syntax.KindFunctionCall,
		syntax.KindIndexAccess,
		syntax.KindAwaitExpression,
		syntax.KindParallelExpression,
		syntax.KindAdditiveExpression,
		syntax.KindMultiplicativeExpression,
		syntax.KindRelationalExpression,
		syntax.KindLogicalExpression,
		syntax.KindAssignmentExpression,
		syntax.KindUnaryExpression,
		syntax.KindObjectLiteral,
		syntax.KindArrayLiteral,
		syntax.KindNewExpression,
		syntax.KindIdentifier,
		syntax.KindStringLiteral,
		syntax.KindNumberLiteral,
		syntax.KindBooleanLiteral,
		syntax.KindNullLiteral,
		syntax.KindSelf:
		return b.parseExpression(node)
	case syntax.KindClassMember,
		syntax.KindFieldDeclaration,
		syntax.KindMethodDeclaration,
		syntax.KindConstructorDeclaration:
		return b.parseClassMember(node)
	case syntax.KindInterfaceMember,
		syntax.KindInterfaceMethodSignature,
		syntax.KindInterfacePropertySignature:
		return b.parseInterfaceMember(node)
	case syntax.KindParameter:
		param, err := b.parseParameter(node)
		if err != nil {
			return nil, err
		}
		return param, nil
	case syntax.KindObjectProperty:
		prop, err := b.parseObjectProperty(node)
		if err != nil {
			return nil, err
		}
		return prop, nil
	case syntax.KindClassBody,
		syntax.KindInterfaceBody,
		syntax.KindInterfaceList,
		syntax.KindAccessModifier,
		syntax.KindParameterList,
		syntax.KindType,
		syntax.KindObjectPropertyList,
		syntax.KindArgumentList,
		syntax.KindToken,
		syntax.KindComment:
		return nil, b.fail(node, ErrNotStandalone, "%s is only valid inside its declaration", node.Kind())
	default:
		return nil, b.fail(node, ErrUnknownShape, "unknown syntax shape %q", node.Kind())
	}
}

func (b *builder) parseProgram(node syntax.Node) (*ast.Program, error) {
	statements, err := b.parseStatementList(node)
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewProgram(statements), node), nil
}
