// Package ast defines the Cx abstract syntax tree produced by the parser
// package. Statements and expressions are closed unions: every variant embeds
// nodeImpl plus a marker, so only types declared here satisfy Statement or
// Expression.
package ast

type NodeType string

const (
	NodeProgram                    NodeType = "Program"
	NodeVariableDeclaration        NodeType = "VariableDeclaration"
	NodeFunctionDeclaration        NodeType = "FunctionDeclaration"
	NodeImportStatement            NodeType = "ImportStatement"
	NodeBlockStatement             NodeType = "BlockStatement"
	NodeExpressionStatement        NodeType = "ExpressionStatement"
	NodeReturnStatement            NodeType = "ReturnStatement"
	NodeIfStatement                NodeType = "IfStatement"
	NodeWhileStatement             NodeType = "WhileStatement"
	NodeForStatement               NodeType = "ForStatement"
	NodeTryStatement               NodeType = "TryStatement"
	NodeThrowStatement             NodeType = "ThrowStatement"
	NodeClassDeclaration           NodeType = "ClassDeclaration"
	NodeFieldDeclaration           NodeType = "FieldDeclaration"
	NodeMethodDeclaration          NodeType = "MethodDeclaration"
	NodeConstructorDeclaration     NodeType = "ConstructorDeclaration"
	NodeInterfaceDeclaration       NodeType = "InterfaceDeclaration"
	NodeInterfaceMethodSignature   NodeType = "InterfaceMethodSignature"
	NodeInterfacePropertySignature NodeType = "InterfacePropertySignature"
	NodeParameter                  NodeType = "Parameter"
	NodeIdentifier                 NodeType = "Identifier"
	NodeLiteral                    NodeType = "Literal"
	NodeSelfReference              NodeType = "SelfReference"
	NodeMemberAccessExpression     NodeType = "MemberAccessExpression"
	NodeCallExpression             NodeType = "CallExpression"
	NodeIndexAccessExpression      NodeType = "IndexAccessExpression"
	NodeAwaitExpression            NodeType = "AwaitExpression"
	NodeParallelExpression         NodeType = "ParallelExpression"
	NodeBinaryExpression           NodeType = "BinaryExpression"
	NodeAssignmentExpression       NodeType = "AssignmentExpression"
	NodeUnaryExpression            NodeType = "UnaryExpression"
	NodeObjectLiteral              NodeType = "ObjectLiteral"
	NodeObjectProperty             NodeType = "ObjectProperty"
	NodeArrayLiteral               NodeType = "ArrayLiteral"
	NodeNewExpression              NodeType = "NewExpression"
)

// NodeTypes lists every node type in declaration order.
func NodeTypes() []NodeType {
	return []NodeType{
		NodeProgram,
		NodeVariableDeclaration,
		NodeFunctionDeclaration,
		NodeImportStatement,
		NodeBlockStatement,
		NodeExpressionStatement,
		NodeReturnStatement,
		NodeIfStatement,
		NodeWhileStatement,
		NodeForStatement,
		NodeTryStatement,
		NodeThrowStatement,
		NodeClassDeclaration,
		NodeFieldDeclaration,
		NodeMethodDeclaration,
		NodeConstructorDeclaration,
		NodeInterfaceDeclaration,
		NodeInterfaceMethodSignature,
		NodeInterfacePropertySignature,
		NodeParameter,
		NodeIdentifier,
		NodeLiteral,
		NodeSelfReference,
		NodeMemberAccessExpression,
		NodeCallExpression,
		NodeIndexAccessExpression,
		NodeAwaitExpression,
		NodeParallelExpression,
		NodeBinaryExpression,
		NodeAssignmentExpression,
		NodeUnaryExpression,
		NodeObjectLiteral,
		NodeObjectProperty,
		NodeArrayLiteral,
		NodeNewExpression,
	}
}

type Node interface {
	NodeType() NodeType
	Location() *Location
	isNode()
}

type nodeImpl struct {
	Type NodeType  `json:"type"`
	Loc  *Location `json:"location,omitempty"`
}

func newNodeImpl(kind NodeType) nodeImpl {
	return nodeImpl{Type: kind}
}

func (n nodeImpl) NodeType() NodeType   { return n.Type }
func (n nodeImpl) Location() *Location { return n.Loc }
func (nodeImpl) isNode()               {}

func (n *nodeImpl) setLocation(loc *Location) {
	n.Loc = loc
}

// Marker interfaces.

type Statement interface {
	Node
	statementNode()
}

type statementMarker struct{}

func (statementMarker) statementNode() {}

type Expression interface {
	Node
	expressionNode()
}

type expressionMarker struct{}

func (expressionMarker) expressionNode() {}
