package parser

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	sitter "github.com/tree-sitter/go-tree-sitter"

	"cx/frontend-go/pkg/syntax"
)

var (
	// ErrUnknownShape means a syntax node matched no known shape: an unknown
	// kind, a primary with no recognised alternative, an unexpected member.
	ErrUnknownShape = errors.New("unknown syntax shape")
	// ErrUnknownOperator means an operator token had no mapping in its family.
	ErrUnknownOperator = errors.New("unknown operator")
	// ErrMalformed means a known shape lacked a child it requires.
	ErrMalformed = errors.New("malformed syntax node")
	// ErrInvalidLiteral means literal text could not be converted to a value.
	ErrInvalidLiteral = errors.New("invalid literal")
	// ErrNotStandalone means a helper shape (a list, a type annotation, a
	// modifier) was transformed outside the declaration that consumes it.
	ErrNotStandalone = errors.New("syntax shape has no standalone AST form")
)

// TransformError reports the syntax node that stopped a transformation. It
// signals that the grammar produced a shape this package does not cover;
// it is never a user-facing syntax error.
type TransformError struct {
	Kind     syntax.Kind
	Text     string
	File     string
	Position syntax.Point
	Message  string
	Err      error
}

func (e *TransformError) Error() string {
	var b strings.Builder
	b.WriteString("parser: ")
	b.WriteString(e.Message)
	if e.Text != "" {
		fmt.Fprintf(&b, ": %s", e.Text)
	}
	if e.Position.Line > 0 {
		if e.File != "" {
			fmt.Fprintf(&b, " (%s:%s)", e.File, e.Position)
		} else {
			fmt.Fprintf(&b, " (%s)", e.Position)
		}
	}
	return b.String()
}

func (e *TransformError) Unwrap() error { return e.Err }

const maxErrorText = 60

func (b *builder) fail(node syntax.Node, cause error, format string, args ...any) error {
	err := &TransformError{
		File:    b.fileName,
		Message: fmt.Sprintf(format, args...),
		Err:     cause,
	}
	if node != nil {
		err.Kind = node.Kind()
		err.Text = truncate(node.Text(), maxErrorText)
		err.Position = node.Start()
	}
	return err
}

func truncate(s string, limit int) string {
	runes := []rune(strings.TrimSpace(s))
	if len(runes) <= limit {
		return string(runes)
	}
	return string(runes[:limit]) + "…"
}

// SyntaxError reports a tree-sitter tree that contains ERROR or MISSING
// nodes. The builder never sees such trees.
type SyntaxError struct {
	Message  string
	Position syntax.Point
}

func (e *SyntaxError) Error() string {
	if e.Position.Line > 0 {
		return fmt.Sprintf("%s (%s)", e.Message, e.Position)
	}
	return e.Message
}

func syntaxError(root *sitter.Node) *SyntaxError {
	missing := findFirstNode(root, (*sitter.Node).IsMissing)
	errorNode := missing
	if errorNode == nil {
		errorNode = findFirstNode(root, (*sitter.Node).IsError)
	}
	if errorNode == nil {
		errorNode = root
	}
	message := "parser: syntax error"
	if missing != nil {
		message = fmt.Sprintf("parser: syntax error: expected %s", formatExpectedKind(missing.Kind()))
	}
	var position syntax.Point
	if errorNode != nil {
		start := errorNode.StartPosition()
		position = syntax.Point{Line: int(start.Row) + 1, Column: int(start.Column)}
	}
	return &SyntaxError{Message: message, Position: position}
}

func findFirstNode(root *sitter.Node, match func(*sitter.Node) bool) *sitter.Node {
	var best *sitter.Node
	walkNodes(root, func(node *sitter.Node) {
		if !match(node) {
			return
		}
		if best == nil || node.StartByte() < best.StartByte() {
			best = node
		}
	})
	return best
}

func walkNodes(root *sitter.Node, visit func(node *sitter.Node)) {
	if root == nil {
		return
	}
	visit(root)
	for i := uint(0); i < root.ChildCount(); i++ {
		child := root.Child(i)
		if child == nil {
			continue
		}
		walkNodes(child, visit)
	}
}

func formatExpectedKind(kind string) string {
	trimmed := strings.TrimSpace(kind)
	if trimmed == "" {
		return "token"
	}
	isSymbol := true
	for _, r := range trimmed {
		if unicode.IsLetter(r) || unicode.IsDigit(r) || r == '_' {
			isSymbol = false
			break
		}
	}
	if len(trimmed) == 1 || isSymbol {
		return fmt.Sprintf("'%s'", trimmed)
	}
	return strings.ReplaceAll(trimmed, "_", " ")
}
