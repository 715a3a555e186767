package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleProgram() *Program {
	method := NewMethodDeclaration("speak", true, AccessProtected, []*Parameter{Param("loud", TypeBoolean)}, TypeRef(TypeString),
		Block(NewReturnStatement(NewAwaitExpression(Call(Member(Self(), "voice"))))), 4, 6)
	class := NewClassDeclaration("Dog", "", "Animal", []string{"Pet"},
		[]*FieldDeclaration{NewFieldDeclaration("age", TypeNumber, AccessPrivate, Int(3))},
		[]*MethodDeclaration{method},
		[]*ConstructorDeclaration{NewConstructorDeclaration("", []*Parameter{Param("age", "")}, Block())},
	)
	iface := NewInterfaceDeclaration("Pet", "", []string{},
		[]*InterfaceMethodSignature{NewInterfaceMethodSignature("speak", []*Parameter{}, nil)},
		[]*InterfacePropertySignature{NewInterfacePropertySignature("name", TypeString)},
	)
	fn := NewFunctionDeclaration("main", false, "", []*Parameter{}, nil, Block(
		NewVariableDeclaration("xs", NewArrayLiteral([]Expression{Int(1), Flt(2.5)})),
		NewForStatement("x", ID("xs"), Block(
			ExprStmt(NewAssignmentExpression(AssignmentAddAssign, ID("total"), NewIndexAccessExpression(ID("xs"), Int(0)))),
		)),
		NewWhileStatement(NewUnaryExpression(UnaryNot, Bool(false)), Block()),
		NewIfStatement(Bin(BinaryEqual, ID("x"), Null()), Block(NewThrowStatement(Str("bad"))), nil),
		NewTryStatement(Block(ExprStmt(NewParallelExpression(Call(ID("work"))))), "err", Block()),
		ExprStmt(NewObjectLiteral([]*ObjectProperty{NewObjectProperty("k", NewNewExpression("Dog", []Expression{Int(1)}))})),
	), 10, 20)
	return NewProgram([]Statement{NewImportStatement("io", "std/io"), class, iface, fn})
}

func TestWalkReachesEveryNodeType(t *testing.T) {
	seen := map[NodeType]int{}
	Walk(sampleProgram(), func(n Node) {
		seen[n.NodeType()]++
	})
	for _, nodeType := range NodeTypes() {
		assert.Positive(t, seen[nodeType], "%s not visited", nodeType)
	}
}

func TestInspectStopsDescent(t *testing.T) {
	var visited []NodeType
	Inspect(sampleProgram(), func(n Node) bool {
		visited = append(visited, n.NodeType())
		_, isClass := n.(*ClassDeclaration)
		return !isClass
	})
	assert.NotContains(t, visited, NodeFieldDeclaration)
	assert.Contains(t, visited, NodeClassDeclaration)
	assert.Contains(t, visited, NodeFunctionDeclaration)
}

func TestCount(t *testing.T) {
	expr := Bin(BinaryAdd, Int(1), Bin(BinaryMultiply, Int(2), Int(3)))
	assert.Equal(t, 5, Count(expr))
	assert.Equal(t, 0, Count(nil))

	var missing *BlockStatement
	assert.Equal(t, 0, Count(missing))
}

func TestSingleOperandWrappers(t *testing.T) {
	assert.PanicsWithValue(t, "ast: AwaitExpression requires exactly one operand", func() {
		NewAwaitExpression(nil)
	})
	assert.PanicsWithValue(t, "ast: ParallelExpression requires exactly one operand", func() {
		var id *Identifier
		NewParallelExpression(id)
	})
	assert.NotPanics(t, func() { NewAwaitExpression(ID("job")) })
}

func TestConstructorDefaults(t *testing.T) {
	assert.Equal(t, TypeAny, NewParameter("p", "").Type)
	assert.Equal(t, AccessPublic, NewFieldDeclaration("f", TypeNumber, "", nil).AccessModifier)
	assert.NotNil(t, NewObjectLiteral(nil).Properties)
	assert.NotNil(t, NewArrayLiteral(nil).Elements)
	assert.NotNil(t, Call(ID("f")).Arguments)
	assert.NotNil(t, Block().Statements)
}

func TestLocation(t *testing.T) {
	id := ID("x")
	SetLocation(id, nil)
	assert.Nil(t, id.Location())

	loc := &Location{Line: 3, Column: 7, SourceFile: "main.cx"}
	SetLocation(id, loc)
	require.NotNil(t, id.Location())
	assert.Equal(t, "main.cx:3:7", id.Location().String())
}

func TestJSONCarriesTypeDiscriminator(t *testing.T) {
	data, err := json.Marshal(Int(1))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Literal","literalType":"number","numberKind":"integer","value":1}`, string(data))

	stmt := ExprStmt(Assign(ID("x"), Str("y")))
	SetLocation(stmt, &Location{Line: 1, Column: 0, SourceFile: "a.cx"})
	data, err = json.Marshal(stmt)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "ExpressionStatement",
		"location": {"line": 1, "column": 0, "sourceFile": "a.cx"},
		"expression": {
			"type": "AssignmentExpression",
			"operator": "=",
			"left": {"type": "Identifier", "name": "x"},
			"right": {"type": "Literal", "literalType": "string", "value": "y"}
		}
	}`, string(data))
}

func TestNumberLiteralJSONKeepsKind(t *testing.T) {
	intData, err := json.Marshal(Int(3))
	require.NoError(t, err)
	floatData, err := json.Marshal(Flt(3))
	require.NoError(t, err)

	assert.NotEqual(t, string(intData), string(floatData))
	assert.JSONEq(t, `{"type":"Literal","literalType":"number","numberKind":"float","value":3}`, string(floatData))

	lit := Flt(2.5)
	SetLocation(lit, &Location{Line: 4, Column: 2, SourceFile: "a.cx"})
	data, err := json.Marshal(ExprStmt(lit))
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "ExpressionStatement",
		"expression": {
			"type": "Literal",
			"location": {"line": 4, "column": 2, "sourceFile": "a.cx"},
			"literalType": "number",
			"numberKind": "float",
			"value": 2.5
		}
	}`, string(data))

	data, err = json.Marshal(Bool(true))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Literal","literalType":"boolean","value":true}`, string(data))

	data, err = json.Marshal(Null())
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"Literal","literalType":"null","value":null}`, string(data))
}
