package parser_test

import (
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/parser"
	"cx/frontend-go/pkg/syntax"
)

var fixturePrograms = map[string]func() *ast.Program{
	"arithmetic": func() *ast.Program {
		return ast.NewProgram([]ast.Statement{
			ast.ExprStmt(ast.Assign(
				ast.ID("x"),
				ast.Bin(ast.BinaryAdd, ast.Int(1), ast.Bin(ast.BinaryMultiply, ast.Int(2), ast.Int(3))),
			)),
		})
	},
	"greeter": func() *ast.Program {
		greet := ast.NewMethodDeclaration(
			"greet",
			false,
			ast.AccessPublic,
			[]*ast.Parameter{ast.Param("name", ast.TypeString)},
			ast.TypeRef(ast.TypeString),
			ast.Block(ast.NewReturnStatement(
				ast.Bin(ast.BinaryAdd, ast.Member(ast.Self(), "greeting"), ast.ID("name")),
			)),
			4,
			6,
		)
		return ast.NewProgram([]ast.Statement{
			ast.NewImportStatement("io", "std/io"),
			ast.NewClassDeclaration(
				"Greeter",
				ast.AccessPublic,
				"",
				[]string{},
				[]*ast.FieldDeclaration{
					ast.NewFieldDeclaration("greeting", ast.TypeString, ast.AccessPrivate, ast.Str("Hello")),
				},
				[]*ast.MethodDeclaration{greet},
				[]*ast.ConstructorDeclaration{},
			),
			ast.NewVariableDeclaration("g", ast.NewNewExpression("Greeter", []ast.Expression{})),
		})
	},
}

func fixtureNames(t *testing.T) []string {
	t.Helper()
	paths, err := filepath.Glob(filepath.Join("testdata", "*.yml"))
	require.NoError(t, err)
	names := make([]string, 0, len(paths))
	for _, path := range paths {
		names = append(names, strings.TrimSuffix(filepath.Base(path), ".yml"))
	}
	sort.Strings(names)
	return names
}

func TestFixtures(t *testing.T) {
	names := fixtureNames(t)
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			expected, ok := fixturePrograms[name]
			require.True(t, ok, "fixture %s has no expected program", name)

			tree, err := syntax.LoadFile(filepath.Join("testdata", name+".yml"))
			require.NoError(t, err)

			got := buildProgram(t, tree)
			assertEqualWithDiff(t, expected(), got)

			located := buildProgram(t, tree, parser.WithFileName(name+".cx"))
			ast.Walk(located, func(n ast.Node) {
				loc := n.Location()
				require.NotNil(t, loc, "%s has no location", n.NodeType())
				assert.Equal(t, name+".cx", loc.SourceFile)
				assert.Positive(t, loc.Line)
			})
		})
	}
}

func TestGreeterFixtureLocations(t *testing.T) {
	tree, err := syntax.LoadFile(filepath.Join("testdata", "greeter.yml"))
	require.NoError(t, err)

	got := buildProgram(t, tree, parser.WithFileName("greeter.cx"))
	require.Len(t, got.Statements, 3)

	class := got.Statements[1].(*ast.ClassDeclaration)
	assert.Equal(t, ast.Location{Line: 2, Column: 0, SourceFile: "greeter.cx"}, *class.Location())

	method := class.Methods[0]
	assert.Equal(t, ast.Location{Line: 4, Column: 2, SourceFile: "greeter.cx"}, *method.Location())
	assert.Equal(t, 4, method.StartLine)
	assert.Equal(t, 6, method.EndLine)

	ret := method.Body.Statements[0].(*ast.ReturnStatement)
	assert.Equal(t, 5, ret.Location().Line)
	assert.Equal(t, 4, ret.Location().Column)

	decl := got.Statements[2].(*ast.VariableDeclaration)
	assert.Equal(t, 8, decl.Initializer.Location().Line)
	assert.Equal(t, 8, decl.Initializer.Location().Column)
}

func TestFixtureDumpsDecodeAsJSON(t *testing.T) {
	// JSON dumps go through the same decoder.
	data, err := os.ReadFile(filepath.Join("testdata", "arithmetic.json"))
	require.NoError(t, err)

	tree, err := syntax.Decode(strings.NewReader(string(data)))
	require.NoError(t, err)
	assertEqualWithDiff(t, fixturePrograms["arithmetic"](), buildProgram(t, tree))
}
