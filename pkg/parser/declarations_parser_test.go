package parser_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/parser"
	"cx/frontend-go/pkg/syntax"
)

func access(text string) *syntax.Tree { return syntax.Leaf(syntax.KindAccessModifier, text) }

func param(name string, typ string) *syntax.Tree {
	if typ == "" {
		return syntax.New(syntax.KindParameter, ident(name).Field("name"))
	}
	return syntax.New(syntax.KindParameter, ident(name).Field("name"), syntax.Tok(":"), typeAnnotation(typ).Field("type"))
}

func params(list ...*syntax.Tree) *syntax.Tree {
	children := []*syntax.Tree{syntax.Tok("(")}
	for i, p := range list {
		if i > 0 {
			children = append(children, syntax.Tok(","))
		}
		children = append(children, p)
	}
	children = append(children, syntax.Tok(")"))
	return syntax.New(syntax.KindParameterList, children...).Field("parameters")
}

func TestFunctionDeclaration(t *testing.T) {
	node := syntax.New(syntax.KindFunctionDeclaration,
		access("private").Field("access"),
		syntax.Tok("async"),
		syntax.Tok("function"),
		ident("load").Field("name"),
		params(param("path", "string"), param("opts", "")),
		syntax.Tok(":"),
		typeAnnotation("object").Field("return_type"),
		block(syntax.New(syntax.KindStatement,
			syntax.New(syntax.KindReturnStatement, syntax.Tok("return"), primary(ident("opts")).Field("value")),
		)).Field("body"),
	).At(3, 0).EndsAt(7, 1)

	got := transform(t, node)

	expected := ast.NewFunctionDeclaration(
		"load",
		true,
		ast.AccessPrivate,
		[]*ast.Parameter{ast.Param("path", ast.TypeString), ast.Param("opts", ast.TypeAny)},
		ast.TypeRef(ast.TypeObject),
		ast.Block(ast.NewReturnStatement(ast.ID("opts"))),
		3,
		7,
	)
	assertEqualWithDiff(t, expected, got)
}

func TestFunctionDeclarationDefaults(t *testing.T) {
	node := syntax.New(syntax.KindFunctionDeclaration,
		syntax.Tok("function"),
		ident("asyncish").Field("name"),
		block().Field("body"),
	).At(1, 0).EndsAt(1, 24)

	got := transform(t, node).(*ast.FunctionDeclaration)
	assert.False(t, got.IsAsync, "async is a keyword token, not a name prefix")
	assert.Equal(t, ast.AccessPublic, got.AccessModifier)
	assert.Nil(t, got.ReturnType)
	assert.NotNil(t, got.Parameters)
	assert.Empty(t, got.Parameters)
	assert.Equal(t, 1, got.StartLine)
	assert.Equal(t, 1, got.EndLine)
}

func TestFunctionDeclarationRequiresBody(t *testing.T) {
	node := syntax.New(syntax.KindFunctionDeclaration, syntax.Tok("function"), ident("f").Field("name"), params())
	_, err := parser.NewASTBuilder().Transform(node)
	require.ErrorIs(t, err, parser.ErrMalformed)
}

func TestUnknownAccessModifierFails(t *testing.T) {
	node := syntax.New(syntax.KindFunctionDeclaration,
		access("internal").Field("access"),
		ident("f").Field("name"),
		block().Field("body"),
	)
	_, err := parser.NewASTBuilder().Transform(node)
	require.ErrorIs(t, err, parser.ErrUnknownShape)
	assert.Contains(t, err.Error(), "internal")
}

func TestClassDeclaration(t *testing.T) {
	selfName := syntax.New(syntax.KindMemberAccess,
		primary(syntax.Leaf(syntax.KindSelf, "self")).Field("object"),
		syntax.Tok("."),
		ident("name").Field("property"),
	)

	field := syntax.New(syntax.KindFieldDeclaration,
		access("private").Field("access"),
		ident("name").Field("name"),
		syntax.Tok(":"),
		typeAnnotation("string").Field("type"),
		syntax.Tok("="),
		primary(str(`"rex"`)).Field("value"),
		syntax.Tok(";"),
	)
	ctor := syntax.New(syntax.KindConstructorDeclaration,
		syntax.Tok("constructor"),
		params(param("name", "")),
		block(exprStmt(assignment(selfName, "=", primary(ident("name"))))).Field("body"),
	)
	method := syntax.New(syntax.KindMethodDeclaration,
		access("protected").Field("access"),
		syntax.Tok("async"),
		ident("bark").Field("name"),
		params(),
		typeAnnotation("string").Field("return_type"),
		block(syntax.New(syntax.KindStatement,
			syntax.New(syntax.KindReturnStatement, syntax.Tok("return"), primary(str(`"woof"`))),
		)).Field("body"),
	).At(5, 2).EndsAt(7, 3)

	node := syntax.New(syntax.KindClassDeclaration,
		syntax.Tok("class"),
		ident("Dog").Field("name"),
		syntax.Tok("extends"),
		ident("Animal").Field("superclass"),
		syntax.Tok("implements"),
		syntax.New(syntax.KindInterfaceList, ident("Pet"), syntax.Tok(","), ident("Named")).Field("interfaces"),
		syntax.New(syntax.KindClassBody,
			syntax.Tok("{"),
			syntax.New(syntax.KindClassMember, field),
			syntax.Leaf(syntax.KindComment, "// members"),
			syntax.New(syntax.KindClassMember, ctor),
			method,
			syntax.Tok("}"),
		).Field("body"),
	)

	got := transform(t, node)

	expected := ast.NewClassDeclaration(
		"Dog",
		"",
		"Animal",
		[]string{"Pet", "Named"},
		[]*ast.FieldDeclaration{
			ast.NewFieldDeclaration("name", ast.TypeString, ast.AccessPrivate, ast.Str("rex")),
		},
		[]*ast.MethodDeclaration{
			ast.NewMethodDeclaration("bark", true, ast.AccessProtected, []*ast.Parameter{}, ast.TypeRef(ast.TypeString),
				ast.Block(ast.NewReturnStatement(ast.Str("woof"))), 5, 7),
		},
		[]*ast.ConstructorDeclaration{
			ast.NewConstructorDeclaration("", []*ast.Parameter{ast.Param("name", ast.TypeAny)},
				ast.Block(ast.ExprStmt(ast.Assign(ast.Member(ast.Self(), "name"), ast.ID("name"))))),
		},
	)
	assertEqualWithDiff(t, expected, got)
}

func TestEmptyClassDeclaration(t *testing.T) {
	node := syntax.New(syntax.KindClassDeclaration, syntax.Tok("class"), ident("Empty").Field("name"))
	got := transform(t, node)
	assertEqualWithDiff(t,
		ast.NewClassDeclaration("Empty", ast.AccessPublic, "", []string{}, []*ast.FieldDeclaration{}, []*ast.MethodDeclaration{}, []*ast.ConstructorDeclaration{}),
		got,
	)
}

func TestUnknownClassMemberFails(t *testing.T) {
	node := syntax.New(syntax.KindClassDeclaration,
		ident("Broken").Field("name"),
		syntax.New(syntax.KindClassBody,
			syntax.New(syntax.KindClassMember, syntax.New(syntax.KindInterfaceDeclaration, ident("Inner").Field("name"))),
		).Field("body"),
	)
	_, err := parser.NewASTBuilder().Transform(node)
	require.ErrorIs(t, err, parser.ErrUnknownShape)
	assert.Contains(t, err.Error(), "unknown class member")
}

func TestFieldDeclarationRequiresType(t *testing.T) {
	node := syntax.New(syntax.KindFieldDeclaration, ident("age").Field("name"), syntax.Tok(";"))
	_, err := parser.NewASTBuilder().Transform(node)
	require.ErrorIs(t, err, parser.ErrMalformed)
}

func TestInterfaceDeclaration(t *testing.T) {
	node := syntax.New(syntax.KindInterfaceDeclaration,
		syntax.Tok("interface"),
		ident("Pet").Field("name"),
		syntax.Tok("extends"),
		syntax.New(syntax.KindInterfaceList, ident("Named")).Field("extends"),
		syntax.New(syntax.KindInterfaceBody,
			syntax.Tok("{"),
			syntax.New(syntax.KindInterfaceMember,
				syntax.New(syntax.KindInterfaceMethodSignature,
					ident("speak").Field("name"),
					params(param("loud", "boolean")),
					syntax.Tok(":"),
					typeAnnotation("string").Field("return_type"),
					syntax.Tok(";"),
				),
			),
			syntax.New(syntax.KindInterfaceMember,
				syntax.New(syntax.KindInterfacePropertySignature,
					ident("age").Field("name"), syntax.Tok(":"), typeAnnotation("number").Field("type"), syntax.Tok(";"),
				),
			),
			syntax.Tok("}"),
		).Field("body"),
	)

	got := transform(t, node)

	expected := ast.NewInterfaceDeclaration(
		"Pet",
		"",
		[]string{"Named"},
		[]*ast.InterfaceMethodSignature{
			ast.NewInterfaceMethodSignature("speak", []*ast.Parameter{ast.Param("loud", ast.TypeBoolean)}, ast.TypeRef(ast.TypeString)),
		},
		[]*ast.InterfacePropertySignature{
			ast.NewInterfacePropertySignature("age", ast.TypeNumber),
		},
	)
	assertEqualWithDiff(t, expected, got)
}

func TestUnknownInterfaceMemberFails(t *testing.T) {
	node := syntax.New(syntax.KindInterfaceDeclaration,
		ident("Pet").Field("name"),
		syntax.New(syntax.KindInterfaceBody,
			syntax.New(syntax.KindInterfaceMember, syntax.New(syntax.KindFieldDeclaration)),
		).Field("body"),
	)
	_, err := parser.NewASTBuilder().Transform(node)
	require.ErrorIs(t, err, parser.ErrUnknownShape)
}

func TestParameterTransformsStandalone(t *testing.T) {
	got := transform(t, param("count", "number"))
	assertEqualWithDiff(t, ast.Param("count", ast.TypeNumber), got)

	located := transform(t, param("count", "").At(2, 6), parser.WithFileName("lib.cx"))
	require.NotNil(t, located.Location())
	assert.Equal(t, ast.Location{Line: 2, Column: 6, SourceFile: "lib.cx"}, *located.Location())
}

func TestParseType(t *testing.T) {
	cases := map[string]ast.Type{
		"string":              ast.TypeString,
		"number":              ast.TypeNumber,
		"boolean":             ast.TypeBoolean,
		"any":                 ast.TypeAny,
		"object":              ast.TypeObject,
		" number ":            ast.TypeNumber,
		"array<number>":       ast.TypeObject,
		"map<string, number>": ast.TypeObject,
		"number[]":            ast.TypeObject,
		"Widget":              ast.TypeAny,
		"":                    ast.TypeAny,
	}
	for text, want := range cases {
		assert.Equal(t, want, parser.ParseType(text), "%q", text)
	}
}

func TestParseAccessModifier(t *testing.T) {
	for text, want := range map[string]ast.AccessModifier{
		"public":    ast.AccessPublic,
		"private":   ast.AccessPrivate,
		"protected": ast.AccessProtected,
	} {
		got, ok := parser.ParseAccessModifier(text)
		require.True(t, ok, text)
		assert.Equal(t, want, got)
	}
	_, ok := parser.ParseAccessModifier("internal")
	assert.False(t, ok)
}
