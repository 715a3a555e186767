package ast

// Shorthand constructors, mostly for tests and fixtures.

func ID(name string) *Identifier { return NewIdentifier(name) }

func Str(value string) *Literal { return NewStringLiteral(value) }

func Int(value int64) *Literal { return NewIntegerLiteral(value) }

func Flt(value float64) *Literal { return NewFloatLiteral(value) }

func Bool(value bool) *Literal { return NewBooleanLiteral(value) }

func Null() *Literal { return NewNullLiteral() }

func Self() *SelfReference { return NewSelfReference() }

func Bin(op BinaryOperator, left, right Expression) *BinaryExpression {
	return NewBinaryExpression(op, left, right)
}

func Assign(left, right Expression) *AssignmentExpression {
	return NewAssignmentExpression(AssignmentAssign, left, right)
}

func Call(callee Expression, args ...Expression) *CallExpression {
	if args == nil {
		args = []Expression{}
	}
	return NewCallExpression(callee, args)
}

func Member(object Expression, property string) *MemberAccessExpression {
	return NewMemberAccessExpression(object, property)
}

func ExprStmt(expr Expression) *ExpressionStatement { return NewExpressionStatement(expr) }

func Block(statements ...Statement) *BlockStatement {
	if statements == nil {
		statements = []Statement{}
	}
	return NewBlockStatement(statements)
}

func Param(name string, typ Type) *Parameter { return NewParameter(name, typ) }

// TypeRef returns a pointer to t, for optional return types.
func TypeRef(t Type) *Type { return &t }
