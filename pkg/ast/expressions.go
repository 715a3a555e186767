package ast

import (
	"encoding/json"
	"fmt"
)

type Identifier struct {
	nodeImpl
	expressionMarker

	Name string `json:"name"`
}

func NewIdentifier(name string) *Identifier {
	return &Identifier{nodeImpl: newNodeImpl(NodeIdentifier), Name: name}
}

// Literal carries a value whose Go type always agrees with Type: string for
// LiteralString, int64 or float64 for LiteralNumber, bool for LiteralBoolean
// and nil for LiteralNull. Use the constructors; they are the only way to
// keep the two in step.
type Literal struct {
	nodeImpl
	expressionMarker

	Type  LiteralType `json:"literalType"`
	Value any         `json:"value"`
}

func NewStringLiteral(value string) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Type: LiteralString, Value: value}
}

func NewIntegerLiteral(value int64) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Type: LiteralNumber, Value: value}
}

func NewFloatLiteral(value float64) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Type: LiteralNumber, Value: value}
}

func NewBooleanLiteral(value bool) *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Type: LiteralBoolean, Value: value}
}

func NewNullLiteral() *Literal {
	return &Literal{nodeImpl: newNodeImpl(NodeLiteral), Type: LiteralNull}
}

// IsInteger reports whether the literal is a Number without a fractional part
// in its source text.
func (l *Literal) IsInteger() bool {
	_, ok := l.Value.(int64)
	return l.Type == LiteralNumber && ok
}

// IsFloat reports whether the literal is a Number written with a decimal point.
func (l *Literal) IsFloat() bool {
	_, ok := l.Value.(float64)
	return l.Type == LiteralNumber && ok
}

// NumberKind values written beside a number literal's value, since JSON
// numbers do not tell 3 from 3.0.
const (
	NumberKindInteger = "integer"
	NumberKindFloat   = "float"
)

func (l *Literal) MarshalJSON() ([]byte, error) {
	out := struct {
		Type        NodeType    `json:"type"`
		Loc         *Location   `json:"location,omitempty"`
		LiteralType LiteralType `json:"literalType"`
		NumberKind  string      `json:"numberKind,omitempty"`
		Value       any         `json:"value"`
	}{
		Type:        l.nodeImpl.Type,
		Loc:         l.nodeImpl.Loc,
		LiteralType: l.Type,
		Value:       l.Value,
	}
	switch {
	case l.IsInteger():
		out.NumberKind = NumberKindInteger
	case l.IsFloat():
		out.NumberKind = NumberKindFloat
	}
	return json.Marshal(out)
}

// SelfReference refers to the instance of the enclosing function or method.
// It has no payload; later stages resolve it by source line.
type SelfReference struct {
	nodeImpl
	expressionMarker
}

func NewSelfReference() *SelfReference {
	return &SelfReference{nodeImpl: newNodeImpl(NodeSelfReference)}
}

type MemberAccessExpression struct {
	nodeImpl
	expressionMarker

	Object   Expression `json:"object"`
	Property string     `json:"property"`
}

func NewMemberAccessExpression(object Expression, property string) *MemberAccessExpression {
	return &MemberAccessExpression{nodeImpl: newNodeImpl(NodeMemberAccessExpression), Object: object, Property: property}
}

type CallExpression struct {
	nodeImpl
	expressionMarker

	Callee    Expression   `json:"callee"`
	Arguments []Expression `json:"arguments"`
}

func NewCallExpression(callee Expression, args []Expression) *CallExpression {
	return &CallExpression{nodeImpl: newNodeImpl(NodeCallExpression), Callee: callee, Arguments: args}
}

type IndexAccessExpression struct {
	nodeImpl
	expressionMarker

	Object Expression `json:"object"`
	Index  Expression `json:"index"`
}

func NewIndexAccessExpression(object, index Expression) *IndexAccessExpression {
	return &IndexAccessExpression{nodeImpl: newNodeImpl(NodeIndexAccessExpression), Object: object, Index: index}
}

// AwaitExpression marks a suspension point. It has no behaviour here.
type AwaitExpression struct {
	nodeImpl
	expressionMarker

	Expression Expression `json:"expression"`
}

// NewAwaitExpression panics if expr is nil: an await wraps exactly one operand.
func NewAwaitExpression(expr Expression) *AwaitExpression {
	mustOperand(NodeAwaitExpression, expr)
	return &AwaitExpression{nodeImpl: newNodeImpl(NodeAwaitExpression), Expression: expr}
}

// ParallelExpression marks a fan-out/join point. It has no behaviour here.
type ParallelExpression struct {
	nodeImpl
	expressionMarker

	Expression Expression `json:"expression"`
}

// NewParallelExpression panics if expr is nil.
func NewParallelExpression(expr Expression) *ParallelExpression {
	mustOperand(NodeParallelExpression, expr)
	return &ParallelExpression{nodeImpl: newNodeImpl(NodeParallelExpression), Expression: expr}
}

func mustOperand(kind NodeType, expr Expression) {
	if isNilNode(expr) {
		panic(fmt.Sprintf("ast: %s requires exactly one operand", kind))
	}
}

type BinaryExpression struct {
	nodeImpl
	expressionMarker

	Operator BinaryOperator `json:"operator"`
	Left     Expression     `json:"left"`
	Right    Expression     `json:"right"`
}

func NewBinaryExpression(operator BinaryOperator, left, right Expression) *BinaryExpression {
	return &BinaryExpression{nodeImpl: newNodeImpl(NodeBinaryExpression), Operator: operator, Left: left, Right: right}
}

type AssignmentExpression struct {
	nodeImpl
	expressionMarker

	Operator AssignmentOperator `json:"operator"`
	Left     Expression         `json:"left"`
	Right    Expression         `json:"right"`
}

func NewAssignmentExpression(operator AssignmentOperator, left, right Expression) *AssignmentExpression {
	return &AssignmentExpression{nodeImpl: newNodeImpl(NodeAssignmentExpression), Operator: operator, Left: left, Right: right}
}

type UnaryExpression struct {
	nodeImpl
	expressionMarker

	Operator UnaryOperator `json:"operator"`
	Operand  Expression    `json:"operand"`
}

func NewUnaryExpression(operator UnaryOperator, operand Expression) *UnaryExpression {
	return &UnaryExpression{nodeImpl: newNodeImpl(NodeUnaryExpression), Operator: operator, Operand: operand}
}

type ObjectProperty struct {
	nodeImpl

	Key   string     `json:"key"`
	Value Expression `json:"value"`
}

func NewObjectProperty(key string, value Expression) *ObjectProperty {
	return &ObjectProperty{nodeImpl: newNodeImpl(NodeObjectProperty), Key: key, Value: value}
}

type ObjectLiteral struct {
	nodeImpl
	expressionMarker

	Properties []*ObjectProperty `json:"properties"`
}

func NewObjectLiteral(properties []*ObjectProperty) *ObjectLiteral {
	if properties == nil {
		properties = []*ObjectProperty{}
	}
	return &ObjectLiteral{nodeImpl: newNodeImpl(NodeObjectLiteral), Properties: properties}
}

type ArrayLiteral struct {
	nodeImpl
	expressionMarker

	Elements []Expression `json:"elements"`
}

func NewArrayLiteral(elements []Expression) *ArrayLiteral {
	if elements == nil {
		elements = []Expression{}
	}
	return &ArrayLiteral{nodeImpl: newNodeImpl(NodeArrayLiteral), Elements: elements}
}

type NewExpression struct {
	nodeImpl
	expressionMarker

	TypeName  string       `json:"typeName"`
	Arguments []Expression `json:"arguments"`
}

func NewNewExpression(typeName string, args []Expression) *NewExpression {
	return &NewExpression{nodeImpl: newNodeImpl(NodeNewExpression), TypeName: typeName, Arguments: args}
}
