package ast

import "fmt"

// Location is the start position of the syntax a node was built from.
// Line is 1-based; Column is reported as the upstream parser reports it.
type Location struct {
	Line       int    `json:"line"`
	Column     int    `json:"column"`
	SourceFile string `json:"sourceFile"`
}

func (l Location) String() string {
	return fmt.Sprintf("%s:%d:%d", l.SourceFile, l.Line, l.Column)
}

// SetLocation tags node with loc. The parser calls it exactly once, right
// after the node is constructed; a nil loc leaves the node untagged.
func SetLocation(node Node, loc *Location) {
	if node == nil || loc == nil {
		return
	}
	if setter, ok := node.(interface{ setLocation(*Location) }); ok {
		setter.setLocation(loc)
	}
}
