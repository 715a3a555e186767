package ast

import (
	"fmt"
	"reflect"
)

// Inspect calls visit for node and then, if visit returns true, for each of
// its children in source order.
func Inspect(node Node, visit func(Node) bool) {
	if isNilNode(node) {
		return
	}
	if !visit(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, visit)
	}
}

// Walk visits every node of the tree rooted at node in source order.
func Walk(node Node, visit func(Node)) {
	Inspect(node, func(n Node) bool {
		visit(n)
		return true
	})
}

// Count returns the number of nodes in the tree rooted at node.
func Count(node Node) int {
	total := 0
	Walk(node, func(Node) { total++ })
	return total
}

// Children returns the direct children of node in source order. Absent
// optional children are skipped.
func Children(node Node) []Node {
	var out []Node
	add := func(children ...Node) {
		for _, child := range children {
			if !isNilNode(child) {
				out = append(out, child)
			}
		}
	}
	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			add(stmt)
		}
	case *VariableDeclaration:
		add(n.Initializer)
	case *FunctionDeclaration:
		for _, param := range n.Parameters {
			add(param)
		}
		add(n.Body)
	case *ImportStatement:
	case *BlockStatement:
		for _, stmt := range n.Statements {
			add(stmt)
		}
	case *ExpressionStatement:
		add(n.Expression)
	case *ReturnStatement:
		add(n.Value)
	case *IfStatement:
		add(n.Condition, n.Then, n.Else)
	case *WhileStatement:
		add(n.Condition, n.Body)
	case *ForStatement:
		add(n.Iterable, n.Body)
	case *TryStatement:
		add(n.TryBlock, n.CatchBlock)
	case *ThrowStatement:
		add(n.Expression)
	case *ClassDeclaration:
		for _, field := range n.Fields {
			add(field)
		}
		for _, method := range n.Methods {
			add(method)
		}
		for _, ctor := range n.Constructors {
			add(ctor)
		}
	case *FieldDeclaration:
		add(n.Initializer)
	case *MethodDeclaration:
		for _, param := range n.Parameters {
			add(param)
		}
		add(n.Body)
	case *ConstructorDeclaration:
		for _, param := range n.Parameters {
			add(param)
		}
		add(n.Body)
	case *InterfaceDeclaration:
		for _, method := range n.Methods {
			add(method)
		}
		for _, prop := range n.Properties {
			add(prop)
		}
	case *InterfaceMethodSignature:
		for _, param := range n.Parameters {
			add(param)
		}
	case *InterfacePropertySignature, *Parameter, *Identifier, *Literal, *SelfReference:
	case *MemberAccessExpression:
		add(n.Object)
	case *CallExpression:
		add(n.Callee)
		for _, arg := range n.Arguments {
			add(arg)
		}
	case *IndexAccessExpression:
		add(n.Object, n.Index)
	case *AwaitExpression:
		add(n.Expression)
	case *ParallelExpression:
		add(n.Expression)
	case *BinaryExpression:
		add(n.Left, n.Right)
	case *AssignmentExpression:
		add(n.Left, n.Right)
	case *UnaryExpression:
		add(n.Operand)
	case *ObjectLiteral:
		for _, prop := range n.Properties {
			add(prop)
		}
	case *ObjectProperty:
		add(n.Value)
	case *ArrayLiteral:
		for _, elem := range n.Elements {
			add(elem)
		}
	case *NewExpression:
		for _, arg := range n.Arguments {
			add(arg)
		}
	default:
		panic(fmt.Sprintf("ast: unexpected node %T", node))
	}
	return out
}

func isNilNode(node Node) bool {
	if node == nil {
		return true
	}
	v := reflect.ValueOf(node)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
