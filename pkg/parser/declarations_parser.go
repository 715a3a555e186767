package parser

import (
	"cx/frontend-go/pkg/ast"
	"cx/frontend-go/pkg/syntax"
)

// callableParts are the pieces shared by function, method, constructor and
// interface method signature shapes.
type callableParts struct {
	access     ast.AccessModifier
	isAsync    bool
	params     []*ast.Parameter
	returnType *ast.Type
	body       *ast.BlockStatement
}

func (b *builder) parseCallable(node syntax.Node, withBody bool) (callableParts, error) {
	var (
		parts callableParts
		err   error
	)
	parts.access, err = b.parseAccess(node)
	if err != nil {
		return callableParts{}, err
	}
	parts.isAsync = hasToken(node, "async")
	parts.params, err = b.parseParameterList(childOfKind(node, "parameters", syntax.KindParameterList))
	if err != nil {
		return callableParts{}, err
	}
	parts.returnType, err = b.parseReturnType(node)
	if err != nil {
		return callableParts{}, err
	}
	if withBody {
		bodyNode, err := b.requireField(node, "body")
		if err != nil {
			return callableParts{}, err
		}
		parts.body, err = b.parseBlock(bodyNode)
		if err != nil {
			return callableParts{}, err
		}
	}
	return parts, nil
}

func (b *builder) parseParameterList(node syntax.Node) ([]*ast.Parameter, error) {
	if node == nil {
		return []*ast.Parameter{}, nil
	}
	children := namedChildren(node)
	params := make([]*ast.Parameter, 0, len(children))
	for _, child := range children {
		param, err := b.parseParameter(child)
		if err != nil {
			return nil, err
		}
		params = append(params, param)
	}
	return params, nil
}

func (b *builder) parseParameter(node syntax.Node) (*ast.Parameter, error) {
	if node.Kind() != syntax.KindParameter {
		return nil, b.fail(node, ErrUnknownShape, "expected parameter, got %s", node.Kind())
	}
	name, err := b.requireName(node, "name")
	if err != nil {
		return nil, err
	}
	typ := ast.TypeAny
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		typ, err = b.parseTypeAnnotation(typeNode)
		if err != nil {
			return nil, err
		}
	}
	return annotate(b, ast.NewParameter(name, typ), node), nil
}

func (b *builder) parseFunctionDeclaration(node syntax.Node) (ast.Statement, error) {
	name, err := b.requireName(node, "name")
	if err != nil {
		return nil, err
	}
	parts, err := b.parseCallable(node, true)
	if err != nil {
		return nil, err
	}
	fn := ast.NewFunctionDeclaration(name, parts.isAsync, parts.access, parts.params, parts.returnType, parts.body, node.Start().Line, node.End().Line)
	return annotate(b, fn, node), nil
}

func (b *builder) parseClassDeclaration(node syntax.Node) (ast.Statement, error) {
	name, err := b.requireName(node, "name")
	if err != nil {
		return nil, err
	}
	access, err := b.parseAccess(node)
	if err != nil {
		return nil, err
	}
	baseClass, err := b.optionalName(node, "superclass")
	if err != nil {
		return nil, err
	}
	interfaces, err := b.parseInterfaceList(childOfKind(node, "interfaces", syntax.KindInterfaceList))
	if err != nil {
		return nil, err
	}

	var (
		fields = make([]*ast.FieldDeclaration, 0)
		method = make([]*ast.MethodDeclaration, 0)
		ctors  = make([]*ast.ConstructorDeclaration, 0)
	)
	if body := childOfKind(node, "body", syntax.KindClassBody); body != nil {
		for _, memberNode := range namedChildren(body) {
			member, err := b.parseClassMember(memberNode)
			if err != nil {
				return nil, err
			}
			switch m := member.(type) {
			case *ast.FieldDeclaration:
				fields = append(fields, m)
			case *ast.MethodDeclaration:
				method = append(method, m)
			case *ast.ConstructorDeclaration:
				ctors = append(ctors, m)
			}
		}
	}

	class := ast.NewClassDeclaration(name, access, baseClass, interfaces, fields, method, ctors)
	return annotate(b, class, node), nil
}

// parseClassMember accepts a class_member wrapper or a member shape directly.
func (b *builder) parseClassMember(node syntax.Node) (ast.Node, error) {
	switch node.Kind() {
	case syntax.KindClassMember:
		child := firstNamedChild(node)
		if child == nil {
			return nil, b.fail(node, ErrMalformed, "class member has no children")
		}
		return b.parseClassMember(child)
	case syntax.KindFieldDeclaration:
		field, err := b.parseFieldDeclaration(node)
		if err != nil {
			return nil, err
		}
		return field, nil
	case syntax.KindMethodDeclaration:
		method, err := b.parseMethodDeclaration(node)
		if err != nil {
			return nil, err
		}
		return method, nil
	case syntax.KindConstructorDeclaration:
		ctor, err := b.parseConstructorDeclaration(node)
		if err != nil {
			return nil, err
		}
		return ctor, nil
	default:
		return nil, b.fail(node, ErrUnknownShape, "unknown class member %q", node.Kind())
	}
}

func (b *builder) parseFieldDeclaration(node syntax.Node) (*ast.FieldDeclaration, error) {
	name, err := b.requireName(node, "name")
	if err != nil {
		return nil, err
	}
	access, err := b.parseAccess(node)
	if err != nil {
		return nil, err
	}
	typeNode, err := b.requireField(node, "type")
	if err != nil {
		return nil, err
	}
	typ, err := b.parseTypeAnnotation(typeNode)
	if err != nil {
		return nil, err
	}
	var initializer ast.Expression
	if valueNode := node.ChildByFieldName("value"); valueNode != nil {
		initializer, err = b.parseExpression(valueNode)
		if err != nil {
			return nil, err
		}
	}
	return annotate(b, ast.NewFieldDeclaration(name, typ, access, initializer), node), nil
}

func (b *builder) parseMethodDeclaration(node syntax.Node) (*ast.MethodDeclaration, error) {
	name, err := b.requireName(node, "name")
	if err != nil {
		return nil, err
	}
	parts, err := b.parseCallable(node, true)
	if err != nil {
		return nil, err
	}
	method := ast.NewMethodDeclaration(name, parts.isAsync, parts.access, parts.params, parts.returnType, parts.body, node.Start().Line, node.End().Line)
	return annotate(b, method, node), nil
}

func (b *builder) parseConstructorDeclaration(node syntax.Node) (*ast.ConstructorDeclaration, error) {
	parts, err := b.parseCallable(node, true)
	if err != nil {
		return nil, err
	}
	return annotate(b, ast.NewConstructorDeclaration(parts.access, parts.params, parts.body), node), nil
}

func (b *builder) parseInterfaceDeclaration(node syntax.Node) (ast.Statement, error) {
	name, err := b.requireName(node, "name")
	if err != nil {
		return nil, err
	}
	access, err := b.parseAccess(node)
	if err != nil {
		return nil, err
	}
	extends, err := b.parseInterfaceList(childOfKind(node, "extends", syntax.KindInterfaceList))
	if err != nil {
		return nil, err
	}

	var (
		methods    = make([]*ast.InterfaceMethodSignature, 0)
		properties = make([]*ast.InterfacePropertySignature, 0)
	)
	if body := childOfKind(node, "body", syntax.KindInterfaceBody); body != nil {
		for _, memberNode := range namedChildren(body) {
			member, err := b.parseInterfaceMember(memberNode)
			if err != nil {
				return nil, err
			}
			switch m := member.(type) {
			case *ast.InterfaceMethodSignature:
				methods = append(methods, m)
			case *ast.InterfacePropertySignature:
				properties = append(properties, m)
			}
		}
	}

	iface := ast.NewInterfaceDeclaration(name, access, extends, methods, properties)
	return annotate(b, iface, node), nil
}

func (b *builder) parseInterfaceMember(node syntax.Node) (ast.Node, error) {
	switch node.Kind() {
	case syntax.KindInterfaceMember:
		child := firstNamedChild(node)
		if child == nil {
			return nil, b.fail(node, ErrMalformed, "interface member has no children")
		}
		return b.parseInterfaceMember(child)
	case syntax.KindInterfaceMethodSignature:
		name, err := b.requireName(node, "name")
		if err != nil {
			return nil, err
		}
		parts, err := b.parseCallable(node, false)
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewInterfaceMethodSignature(name, parts.params, parts.returnType), node), nil
	case syntax.KindInterfacePropertySignature:
		name, err := b.requireName(node, "name")
		if err != nil {
			return nil, err
		}
		typeNode, err := b.requireField(node, "type")
		if err != nil {
			return nil, err
		}
		typ, err := b.parseTypeAnnotation(typeNode)
		if err != nil {
			return nil, err
		}
		return annotate(b, ast.NewInterfacePropertySignature(name, typ), node), nil
	default:
		return nil, b.fail(node, ErrUnknownShape, "unknown interface member %q", node.Kind())
	}
}

func (b *builder) parseInterfaceList(node syntax.Node) ([]string, error) {
	if node == nil {
		return []string{}, nil
	}
	children := namedChildren(node)
	names := make([]string, 0, len(children))
	for _, child := range children {
		if child.Kind() != syntax.KindIdentifier {
			return nil, b.fail(child, ErrMalformed, "expected interface name, got %s", child.Kind())
		}
		names = append(names, child.Text())
	}
	return names, nil
}
