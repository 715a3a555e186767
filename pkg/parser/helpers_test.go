package parser_test

import (
	"strings"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/parser"
	"cx/frontend-go/pkg/syntax"
)

// Syntax tree shorthands mirroring the grammar's shapes.

func ident(name string) *syntax.Tree { return syntax.Leaf(syntax.KindIdentifier, name) }

func number(text string) *syntax.Tree { return syntax.Leaf(syntax.KindNumberLiteral, text) }

func str(text string) *syntax.Tree { return syntax.Leaf(syntax.KindStringLiteral, text) }

func primary(child *syntax.Tree) *syntax.Tree { return syntax.New(syntax.KindPrimary, child) }

func binary(kind syntax.Kind, left *syntax.Tree, op string, right *syntax.Tree) *syntax.Tree {
	return syntax.New(kind, left.Field("left"), syntax.Tok(op).Field("operator"), right.Field("right"))
}

func assignment(left *syntax.Tree, op string, right *syntax.Tree) *syntax.Tree {
	return syntax.New(syntax.KindAssignmentExpression, left.Field("left"), syntax.Tok(op).Field("operator"), right.Field("right"))
}

func exprStmt(expr *syntax.Tree) *syntax.Tree {
	return syntax.New(syntax.KindStatement,
		syntax.New(syntax.KindExpressionStatement, expr.Field("expression"), syntax.Tok(";")),
	)
}

func program(statements ...*syntax.Tree) *syntax.Tree {
	return syntax.New(syntax.KindProgram, statements...)
}

func block(statements ...*syntax.Tree) *syntax.Tree {
	children := []*syntax.Tree{syntax.Tok("{")}
	children = append(children, statements...)
	children = append(children, syntax.Tok("}"))
	return syntax.New(syntax.KindBlockStatement, children...)
}

func typeAnnotation(text string) *syntax.Tree { return syntax.Leaf(syntax.KindType, text) }

func buildProgram(t *testing.T, root syntax.Node, opts ...parser.Option) *ast.Program {
	t.Helper()
	program, err := parser.NewASTBuilder(opts...).Build(root)
	require.NoError(t, err)
	require.NotNil(t, program)
	return program
}

func transform(t *testing.T, node syntax.Node, opts ...parser.Option) ast.Node {
	t.Helper()
	result, err := parser.NewASTBuilder(opts...).Transform(node)
	require.NoError(t, err)
	return result
}

func assertEqualWithDiff(t *testing.T, expected, actual any) {
	t.Helper()

	diff := pretty.Diff(expected, actual)
	if len(diff) == 0 {
		return
	}

	s := strings.Builder{}
	for i, d := range diff {
		if i == 0 {
			s.WriteString("diff    : ")
		} else {
			s.WriteString("          ")
		}
		s.WriteString(d)
		s.WriteString("\n")
	}

	t.Errorf(
		"Not equal: \n"+
			"expected: %s\n"+
			"actual  : %s\n\n"+
			"%s",
		pretty.Sprint(expected),
		pretty.Sprint(actual),
		s.String(),
	)
}
