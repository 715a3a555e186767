package ast

// Type is the surface type annotation of a parameter, field, or return value.
type Type string

const (
	TypeString  Type = "string"
	TypeNumber  Type = "number"
	TypeBoolean Type = "boolean"
	TypeAny     Type = "any"
	TypeObject  Type = "object"
)

type AccessModifier string

const (
	AccessPublic    AccessModifier = "public"
	AccessPrivate   AccessModifier = "private"
	AccessProtected AccessModifier = "protected"
)

type LiteralType string

const (
	LiteralString  LiteralType = "string"
	LiteralNumber  LiteralType = "number"
	LiteralBoolean LiteralType = "boolean"
	LiteralNull    LiteralType = "null"
)

type BinaryOperator string

const (
	// additive
	BinaryAdd      BinaryOperator = "+"
	BinarySubtract BinaryOperator = "-"
	// multiplicative
	BinaryMultiply BinaryOperator = "*"
	BinaryDivide   BinaryOperator = "/"
	BinaryModulo   BinaryOperator = "%"
	// relational
	BinaryLessThan       BinaryOperator = "<"
	BinaryGreaterThan    BinaryOperator = ">"
	BinaryLessOrEqual    BinaryOperator = "<="
	BinaryGreaterOrEqual BinaryOperator = ">="
	BinaryEqual          BinaryOperator = "=="
	BinaryNotEqual       BinaryOperator = "!="
	// logical
	BinaryAnd BinaryOperator = "&&"
	BinaryOr  BinaryOperator = "||"
)

type AssignmentOperator string

const (
	AssignmentAssign         AssignmentOperator = "="
	AssignmentAddAssign      AssignmentOperator = "+="
	AssignmentSubtractAssign AssignmentOperator = "-="
	AssignmentMultiplyAssign AssignmentOperator = "*="
	AssignmentDivideAssign   AssignmentOperator = "/="
)

type UnaryOperator string

const (
	UnaryNot   UnaryOperator = "!"
	UnaryMinus UnaryOperator = "-"
	UnaryPlus  UnaryOperator = "+"
)
