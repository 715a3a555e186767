package ast

// Program root

type Program struct {
	nodeImpl

	Statements []Statement `json:"statements"`
}

func NewProgram(statements []Statement) *Program {
	return &Program{nodeImpl: newNodeImpl(NodeProgram), Statements: statements}
}

// Statements

type VariableDeclaration struct {
	nodeImpl
	statementMarker

	Name        string     `json:"name"`
	Initializer Expression `json:"initializer"`
}

func NewVariableDeclaration(name string, initializer Expression) *VariableDeclaration {
	return &VariableDeclaration{nodeImpl: newNodeImpl(NodeVariableDeclaration), Name: name, Initializer: initializer}
}

type ImportStatement struct {
	nodeImpl
	statementMarker

	Alias      string `json:"alias"`
	ModulePath string `json:"modulePath"`
}

func NewImportStatement(alias, modulePath string) *ImportStatement {
	return &ImportStatement{nodeImpl: newNodeImpl(NodeImportStatement), Alias: alias, ModulePath: modulePath}
}

type BlockStatement struct {
	nodeImpl
	statementMarker

	Statements []Statement `json:"statements"`
}

func NewBlockStatement(statements []Statement) *BlockStatement {
	return &BlockStatement{nodeImpl: newNodeImpl(NodeBlockStatement), Statements: statements}
}

type ExpressionStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewExpressionStatement(expr Expression) *ExpressionStatement {
	return &ExpressionStatement{nodeImpl: newNodeImpl(NodeExpressionStatement), Expression: expr}
}

type ReturnStatement struct {
	nodeImpl
	statementMarker

	Value Expression `json:"value,omitempty"`
}

func NewReturnStatement(value Expression) *ReturnStatement {
	return &ReturnStatement{nodeImpl: newNodeImpl(NodeReturnStatement), Value: value}
}

type IfStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Then      Statement  `json:"then"`
	Else      Statement  `json:"else,omitempty"`
}

func NewIfStatement(condition Expression, then, els Statement) *IfStatement {
	return &IfStatement{nodeImpl: newNodeImpl(NodeIfStatement), Condition: condition, Then: then, Else: els}
}

type WhileStatement struct {
	nodeImpl
	statementMarker

	Condition Expression `json:"condition"`
	Body      Statement  `json:"body"`
}

func NewWhileStatement(condition Expression, body Statement) *WhileStatement {
	return &WhileStatement{nodeImpl: newNodeImpl(NodeWhileStatement), Condition: condition, Body: body}
}

// ForStatement is a for-each loop binding Variable to each element of Iterable.
type ForStatement struct {
	nodeImpl
	statementMarker

	Variable string     `json:"variable"`
	Iterable Expression `json:"iterable"`
	Body     Statement  `json:"body"`
}

func NewForStatement(variable string, iterable Expression, body Statement) *ForStatement {
	return &ForStatement{nodeImpl: newNodeImpl(NodeForStatement), Variable: variable, Iterable: iterable, Body: body}
}

type TryStatement struct {
	nodeImpl
	statementMarker

	TryBlock     *BlockStatement `json:"tryBlock"`
	CatchVarName string          `json:"catchVariable,omitempty"`
	CatchBlock   *BlockStatement `json:"catchBlock,omitempty"`
}

func NewTryStatement(tryBlock *BlockStatement, catchVar string, catchBlock *BlockStatement) *TryStatement {
	return &TryStatement{nodeImpl: newNodeImpl(NodeTryStatement), TryBlock: tryBlock, CatchVarName: catchVar, CatchBlock: catchBlock}
}

type ThrowStatement struct {
	nodeImpl
	statementMarker

	Expression Expression `json:"expression"`
}

func NewThrowStatement(expr Expression) *ThrowStatement {
	return &ThrowStatement{nodeImpl: newNodeImpl(NodeThrowStatement), Expression: expr}
}
