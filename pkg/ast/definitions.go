package ast

// Definitions

type Parameter struct {
	nodeImpl

	Name string `json:"name"`
	Type Type   `json:"paramType"`
}

// NewParameter builds a parameter; an empty type defaults to TypeAny.
func NewParameter(name string, typ Type) *Parameter {
	if typ == "" {
		typ = TypeAny
	}
	return &Parameter{nodeImpl: newNodeImpl(NodeParameter), Name: name, Type: typ}
}

// FunctionDeclaration records the first and last source line of the
// declaration so later stages can resolve self references to it.
type FunctionDeclaration struct {
	nodeImpl
	statementMarker

	Name           string          `json:"name"`
	IsAsync        bool            `json:"isAsync"`
	AccessModifier AccessModifier  `json:"accessModifier"`
	Parameters     []*Parameter    `json:"parameters"`
	ReturnType     *Type           `json:"returnType,omitempty"`
	Body           *BlockStatement `json:"body"`
	StartLine      int             `json:"startLine"`
	EndLine        int             `json:"endLine"`
}

func NewFunctionDeclaration(name string, isAsync bool, access AccessModifier, params []*Parameter, returnType *Type, body *BlockStatement, startLine, endLine int) *FunctionDeclaration {
	return &FunctionDeclaration{
		nodeImpl:       newNodeImpl(NodeFunctionDeclaration),
		Name:           name,
		IsAsync:        isAsync,
		AccessModifier: defaultAccess(access),
		Parameters:     params,
		ReturnType:     returnType,
		Body:           body,
		StartLine:      startLine,
		EndLine:        endLine,
	}
}

type ClassDeclaration struct {
	nodeImpl
	statementMarker

	Name           string                    `json:"name"`
	AccessModifier AccessModifier            `json:"accessModifier"`
	BaseClass      string                    `json:"baseClass,omitempty"`
	Interfaces     []string                  `json:"interfaces"`
	Fields         []*FieldDeclaration       `json:"fields"`
	Methods        []*MethodDeclaration      `json:"methods"`
	Constructors   []*ConstructorDeclaration `json:"constructors"`
}

func NewClassDeclaration(name string, access AccessModifier, baseClass string, interfaces []string, fields []*FieldDeclaration, methods []*MethodDeclaration, ctors []*ConstructorDeclaration) *ClassDeclaration {
	return &ClassDeclaration{
		nodeImpl:       newNodeImpl(NodeClassDeclaration),
		Name:           name,
		AccessModifier: defaultAccess(access),
		BaseClass:      baseClass,
		Interfaces:     interfaces,
		Fields:         fields,
		Methods:        methods,
		Constructors:   ctors,
	}
}

type FieldDeclaration struct {
	nodeImpl

	Name           string         `json:"name"`
	Type           Type           `json:"fieldType"`
	AccessModifier AccessModifier `json:"accessModifier"`
	Initializer    Expression     `json:"initializer,omitempty"`
}

func NewFieldDeclaration(name string, typ Type, access AccessModifier, initializer Expression) *FieldDeclaration {
	return &FieldDeclaration{nodeImpl: newNodeImpl(NodeFieldDeclaration), Name: name, Type: typ, AccessModifier: defaultAccess(access), Initializer: initializer}
}

type MethodDeclaration struct {
	nodeImpl

	Name           string          `json:"name"`
	IsAsync        bool            `json:"isAsync"`
	AccessModifier AccessModifier  `json:"accessModifier"`
	Parameters     []*Parameter    `json:"parameters"`
	ReturnType     *Type           `json:"returnType,omitempty"`
	Body           *BlockStatement `json:"body"`
	StartLine      int             `json:"startLine"`
	EndLine        int             `json:"endLine"`
}

func NewMethodDeclaration(name string, isAsync bool, access AccessModifier, params []*Parameter, returnType *Type, body *BlockStatement, startLine, endLine int) *MethodDeclaration {
	return &MethodDeclaration{
		nodeImpl:       newNodeImpl(NodeMethodDeclaration),
		Name:           name,
		IsAsync:        isAsync,
		AccessModifier: defaultAccess(access),
		Parameters:     params,
		ReturnType:     returnType,
		Body:           body,
		StartLine:      startLine,
		EndLine:        endLine,
	}
}

type ConstructorDeclaration struct {
	nodeImpl

	AccessModifier AccessModifier  `json:"accessModifier"`
	Parameters     []*Parameter    `json:"parameters"`
	Body           *BlockStatement `json:"body"`
}

func NewConstructorDeclaration(access AccessModifier, params []*Parameter, body *BlockStatement) *ConstructorDeclaration {
	return &ConstructorDeclaration{nodeImpl: newNodeImpl(NodeConstructorDeclaration), AccessModifier: defaultAccess(access), Parameters: params, Body: body}
}

type InterfaceDeclaration struct {
	nodeImpl
	statementMarker

	Name               string                        `json:"name"`
	AccessModifier     AccessModifier                `json:"accessModifier"`
	ExtendedInterfaces []string                      `json:"extendedInterfaces"`
	Methods            []*InterfaceMethodSignature   `json:"methods"`
	Properties         []*InterfacePropertySignature `json:"properties"`
}

func NewInterfaceDeclaration(name string, access AccessModifier, extends []string, methods []*InterfaceMethodSignature, properties []*InterfacePropertySignature) *InterfaceDeclaration {
	return &InterfaceDeclaration{
		nodeImpl:           newNodeImpl(NodeInterfaceDeclaration),
		Name:               name,
		AccessModifier:     defaultAccess(access),
		ExtendedInterfaces: extends,
		Methods:            methods,
		Properties:         properties,
	}
}

type InterfaceMethodSignature struct {
	nodeImpl

	Name       string       `json:"name"`
	Parameters []*Parameter `json:"parameters"`
	ReturnType *Type        `json:"returnType,omitempty"`
}

func NewInterfaceMethodSignature(name string, params []*Parameter, returnType *Type) *InterfaceMethodSignature {
	return &InterfaceMethodSignature{nodeImpl: newNodeImpl(NodeInterfaceMethodSignature), Name: name, Parameters: params, ReturnType: returnType}
}

type InterfacePropertySignature struct {
	nodeImpl

	Name string `json:"name"`
	Type Type   `json:"propertyType"`
}

func NewInterfacePropertySignature(name string, typ Type) *InterfacePropertySignature {
	return &InterfacePropertySignature{nodeImpl: newNodeImpl(NodeInterfacePropertySignature), Name: name, Type: typ}
}

func defaultAccess(access AccessModifier) AccessModifier {
	if access == "" {
		return AccessPublic
	}
	return access
}
