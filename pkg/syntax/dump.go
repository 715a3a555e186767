package syntax

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// dumpNode is the serialised form of a syntax tree node. JSON dumps decode
// through the same path since JSON is valid YAML.
type dumpNode struct {
	Kind      string     `yaml:"kind"`
	Field     string     `yaml:"field,omitempty"`
	Text      string     `yaml:"text,omitempty"`
	Line      int        `yaml:"line,omitempty"`
	Column    int        `yaml:"column,omitempty"`
	EndLine   int        `yaml:"end_line,omitempty"`
	EndColumn int        `yaml:"end_column,omitempty"`
	Children  []dumpNode `yaml:"children,omitempty"`
}

// DumpError reports a malformed syntax dump.
type DumpError struct {
	Path   string
	Issues []string
}

func (e *DumpError) Error() string {
	var b bytes.Buffer
	b.WriteString("syntax: invalid dump")
	if e.Path != "" {
		fmt.Fprintf(&b, " %s", e.Path)
	}
	for i, issue := range e.Issues {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		b.WriteString(issue)
	}
	return b.String()
}

// Decode reads one syntax tree dump.
func Decode(r io.Reader) (*Tree, error) {
	var root dumpNode
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&root); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, &DumpError{Issues: []string{"empty document"}}
		}
		return nil, fmt.Errorf("syntax: decode dump: %w", err)
	}
	var issues []string
	tree := root.toTree("$", &issues)
	if len(issues) > 0 {
		return nil, &DumpError{Issues: issues}
	}
	return tree, nil
}

// LoadFile decodes the dump stored at path.
func LoadFile(path string) (*Tree, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("syntax: read dump: %w", err)
	}
	tree, err := Decode(bytes.NewReader(data))
	if err != nil {
		var dumpErr *DumpError
		if errors.As(err, &dumpErr) {
			dumpErr.Path = path
			return nil, dumpErr
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return tree, nil
}

func (d dumpNode) toTree(path string, issues *[]string) *Tree {
	if d.Kind == "" {
		*issues = append(*issues, fmt.Sprintf("%s: missing kind", path))
	}
	if d.Kind == string(KindToken) && len(d.Children) > 0 {
		*issues = append(*issues, fmt.Sprintf("%s: token cannot have children", path))
	} else if d.Text != "" && len(d.Children) > 0 {
		*issues = append(*issues, fmt.Sprintf("%s: text is only allowed on leaf nodes", path))
	}
	t := &Tree{
		kind:  Kind(d.Kind),
		named: d.Kind != string(KindToken),
		field: d.Field,
		text:  d.Text,
	}
	if d.Line > 0 {
		t.At(d.Line, d.Column)
	}
	if d.EndLine > 0 {
		t.EndsAt(d.EndLine, d.EndColumn)
	}
	t.children = make([]*Tree, 0, len(d.Children))
	for i, child := range d.Children {
		t.children = append(t.children, child.toTree(fmt.Sprintf("%s.children[%d]", path, i), issues))
	}
	return t
}
