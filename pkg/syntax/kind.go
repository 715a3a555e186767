package syntax

// Kind names a concrete syntax shape. Values are the grammar's rule names, so
// a tree-sitter node's Kind() string converts directly; names outside the
// closed set below are carried through unchanged and rejected by the parser.
type Kind string

const (
	KindProgram             Kind = "program"
	KindStatement           Kind = "statement"
	KindVariableDeclaration Kind = "variable_declaration"
	KindFunctionDeclaration Kind = "function_declaration"
	KindImportStatement     Kind = "import_statement"
	KindBlockStatement      Kind = "block_statement"
	KindExpressionStatement Kind = "expression_statement"
	KindReturnStatement     Kind = "return_statement"
	KindIfStatement         Kind = "if_statement"
	KindWhileStatement      Kind = "while_statement"
	KindForStatement        Kind = "for_statement"
	KindTryStatement        Kind = "try_statement"
	KindThrowStatement      Kind = "throw_statement"

	KindClassDeclaration           Kind = "class_declaration"
	KindClassBody                  Kind = "class_body"
	KindClassMember                Kind = "class_member"
	KindFieldDeclaration           Kind = "field_declaration"
	KindMethodDeclaration          Kind = "method_declaration"
	KindConstructorDeclaration     Kind = "constructor_declaration"
	KindInterfaceDeclaration       Kind = "interface_declaration"
	KindInterfaceBody              Kind = "interface_body"
	KindInterfaceMember            Kind = "interface_member"
	KindInterfaceMethodSignature   Kind = "interface_method_signature"
	KindInterfacePropertySignature Kind = "interface_property_signature"
	KindInterfaceList              Kind = "interface_list"
	KindAccessModifier             Kind = "access_modifier"
	KindParameterList              Kind = "parameter_list"
	KindParameter                  Kind = "parameter"
	KindType                       Kind = "type"

	KindPrimaryExpression        Kind = "primary_expression"
	KindPrimary                  Kind = "primary"
	KindMemberAccess             Kind = "member_access"
	KindFunctionCall             Kind = "function_call"
	KindIndexAccess              Kind = "index_access"
	KindAwaitExpression          Kind = "await_expression"
	KindParallelExpression       Kind = "parallel_expression"
	KindAdditiveExpression       Kind = "additive_expression"
	KindMultiplicativeExpression Kind = "multiplicative_expression"
	KindRelationalExpression     Kind = "relational_expression"
	KindLogicalExpression        Kind = "logical_expression"
	KindAssignmentExpression     Kind = "assignment_expression"
	KindUnaryExpression          Kind = "unary_expression"
	KindObjectLiteral            Kind = "object_literal"
	KindObjectPropertyList       Kind = "object_property_list"
	KindObjectProperty           Kind = "object_property"
	KindArrayLiteral             Kind = "array_literal"
	KindArgumentList             Kind = "argument_list"
	KindNewExpression            Kind = "new_expression"

	KindIdentifier     Kind = "identifier"
	KindStringLiteral  Kind = "string_literal"
	KindNumberLiteral  Kind = "number_literal"
	KindBooleanLiteral Kind = "boolean_literal"
	KindNullLiteral    Kind = "null_literal"
	KindSelf           Kind = "self"

	// KindToken is any anonymous token: punctuation, operators, keywords.
	KindToken   Kind = "token"
	KindComment Kind = "comment"
)

var kinds = []Kind{
	KindProgram,
	KindStatement,
	KindVariableDeclaration,
	KindFunctionDeclaration,
	KindImportStatement,
	KindBlockStatement,
	KindExpressionStatement,
	KindReturnStatement,
	KindIfStatement,
	KindWhileStatement,
	KindForStatement,
	KindTryStatement,
	KindThrowStatement,
	KindClassDeclaration,
	KindClassBody,
	KindClassMember,
	KindFieldDeclaration,
	KindMethodDeclaration,
	KindConstructorDeclaration,
	KindInterfaceDeclaration,
	KindInterfaceBody,
	KindInterfaceMember,
	KindInterfaceMethodSignature,
	KindInterfacePropertySignature,
	KindInterfaceList,
	KindAccessModifier,
	KindParameterList,
	KindParameter,
	KindType,
	KindPrimaryExpression,
	KindPrimary,
	KindMemberAccess,
	KindFunctionCall,
	KindIndexAccess,
	KindAwaitExpression,
	KindParallelExpression,
	KindAdditiveExpression,
	KindMultiplicativeExpression,
	KindRelationalExpression,
	KindLogicalExpression,
	KindAssignmentExpression,
	KindUnaryExpression,
	KindObjectLiteral,
	KindObjectPropertyList,
	KindObjectProperty,
	KindArrayLiteral,
	KindArgumentList,
	KindNewExpression,
	KindIdentifier,
	KindStringLiteral,
	KindNumberLiteral,
	KindBooleanLiteral,
	KindNullLiteral,
	KindSelf,
	KindToken,
	KindComment,
}

var knownKinds = func() map[Kind]struct{} {
	m := make(map[Kind]struct{}, len(kinds))
	for _, k := range kinds {
		m[k] = struct{}{}
	}
	return m
}()

// Kinds returns every known syntax kind.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// Known reports whether k belongs to the grammar.
func (k Kind) Known() bool {
	_, ok := knownKinds[k]
	return ok
}

// IsExpression reports whether k is one of the expression alternatives.
func (k Kind) IsExpression() bool {
	switch k {
	case KindPrimaryExpression, KindPrimary, KindMemberAccess, KindFunctionCall,
		KindIndexAccess, KindAwaitExpression, KindParallelExpression,
		KindAdditiveExpression, KindMultiplicativeExpression, KindRelationalExpression,
		KindLogicalExpression, KindAssignmentExpression, KindUnaryExpression,
		KindObjectLiteral, KindArrayLiteral, KindNewExpression:
		return true
	default:
		return false
	}
}

func (k Kind) String() string { return string(k) }
