package syntax

import "strings"

// Tree is an in-memory concrete syntax tree node.
type Tree struct {
	kind     Kind
	named    bool
	field    string
	text     string
	start    Point
	hasStart bool
	end      Point
	hasEnd   bool
	children []*Tree
}

var _ Node = (*Tree)(nil)

// New builds a named interior node. Nil children are dropped, so optional
// parts can be passed unconditionally.
func New(kind Kind, children ...*Tree) *Tree {
	kept := make([]*Tree, 0, len(children))
	for _, child := range children {
		if child != nil {
			kept = append(kept, child)
		}
	}
	return &Tree{kind: kind, named: true, children: kept}
}

// Leaf builds a named terminal such as an identifier or literal.
func Leaf(kind Kind, text string) *Tree {
	return &Tree{kind: kind, named: true, text: text}
}

// Tok builds an anonymous token.
func Tok(text string) *Tree {
	return &Tree{kind: KindToken, text: text}
}

// Field records the field name the node occupies in its parent.
func (t *Tree) Field(name string) *Tree {
	t.field = name
	return t
}

// At sets the node's start position.
func (t *Tree) At(line, column int) *Tree {
	t.start = Point{Line: line, Column: column}
	t.hasStart = true
	return t
}

// EndsAt sets the position of the node's last token.
func (t *Tree) EndsAt(line, column int) *Tree {
	t.end = Point{Line: line, Column: column}
	t.hasEnd = true
	return t
}

// FieldName returns the field the node occupies in its parent, if any.
func (t *Tree) FieldName() string { return t.field }

func (t *Tree) Kind() Kind    { return t.kind }
func (t *Tree) IsNamed() bool { return t.named }

// Text returns the leaf text, or for interior nodes the concatenated text of
// all leaves without separating whitespace.
func (t *Tree) Text() string {
	if len(t.children) == 0 {
		return t.text
	}
	var b strings.Builder
	t.writeText(&b)
	return b.String()
}

func (t *Tree) writeText(b *strings.Builder) {
	if len(t.children) == 0 {
		b.WriteString(t.text)
		return
	}
	for _, child := range t.children {
		child.writeText(b)
	}
}

// Start returns the explicit start position, falling back to the first
// positioned descendant.
func (t *Tree) Start() Point {
	if t.hasStart {
		return t.start
	}
	for _, child := range t.children {
		if p, ok := child.firstStart(); ok {
			return p
		}
	}
	return Point{}
}

func (t *Tree) firstStart() (Point, bool) {
	if t.hasStart {
		return t.start, true
	}
	for _, child := range t.children {
		if p, ok := child.firstStart(); ok {
			return p, true
		}
	}
	return Point{}, false
}

// End returns the explicit end position, falling back to the start of the
// last positioned descendant and finally to Start.
func (t *Tree) End() Point {
	if t.hasEnd {
		return t.end
	}
	if p, ok := t.lastStart(); ok {
		return p
	}
	return t.Start()
}

func (t *Tree) lastStart() (Point, bool) {
	for i := len(t.children) - 1; i >= 0; i-- {
		child := t.children[i]
		if child.hasEnd {
			return child.end, true
		}
		if p, ok := child.lastStart(); ok {
			return p, true
		}
	}
	if t.hasStart {
		return t.start, true
	}
	return Point{}, false
}

func (t *Tree) ChildCount() int { return len(t.children) }

func (t *Tree) Child(i int) Node {
	if i < 0 || i >= len(t.children) {
		return nil
	}
	return t.children[i]
}

func (t *Tree) NamedChildCount() int {
	count := 0
	for _, child := range t.children {
		if child.named {
			count++
		}
	}
	return count
}

func (t *Tree) NamedChild(i int) Node {
	if i < 0 {
		return nil
	}
	for _, child := range t.children {
		if !child.named {
			continue
		}
		if i == 0 {
			return child
		}
		i--
	}
	return nil
}

func (t *Tree) ChildByFieldName(name string) Node {
	for _, child := range t.children {
		if child.field == name {
			return child
		}
	}
	return nil
}
