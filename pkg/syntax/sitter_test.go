package syntax

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	sitter "github.com/tree-sitter/go-tree-sitter"
	tree_sitter_json "github.com/tree-sitter/tree-sitter-json/bindings/go"
)

func parseJSON(t *testing.T, source []byte) Node {
	t.Helper()
	parser := sitter.NewParser()
	t.Cleanup(parser.Close)
	require.NoError(t, parser.SetLanguage(sitter.NewLanguage(tree_sitter_json.Language())))

	tree := parser.Parse(source, nil)
	require.NotNil(t, tree)
	t.Cleanup(tree.Close)
	return FromSitter(tree.RootNode(), source)
}

func descendantsOfKind(node Node, kind Kind) []Node {
	var out []Node
	if node.Kind() == kind {
		out = append(out, node)
	}
	for i := 0; i < node.ChildCount(); i++ {
		out = append(out, descendantsOfKind(node.Child(i), kind)...)
	}
	return out
}

func TestFromSitter(t *testing.T) {
	source := []byte("{\n  \"a\": [1, true] // note\n}\n")
	root := parseJSON(t, source)

	assert.Equal(t, Kind("document"), root.Kind())
	assert.Equal(t, Point{Line: 1, Column: 0}, root.Start())

	object := root.NamedChild(0)
	require.NotNil(t, object)
	assert.Equal(t, Kind("object"), object.Kind())
	assert.Equal(t, Point{Line: 3, Column: 1}, object.End())

	brace := object.Child(0)
	require.NotNil(t, brace)
	assert.Equal(t, KindToken, brace.Kind())
	assert.False(t, brace.IsNamed())
	assert.Equal(t, "{", brace.Text())

	pairs := descendantsOfKind(root, Kind("pair"))
	require.Len(t, pairs, 1)
	pair := pairs[0]
	assert.Equal(t, Point{Line: 2, Column: 2}, pair.Start())

	key := pair.ChildByFieldName("key")
	require.NotNil(t, key)
	assert.Equal(t, Kind("string"), key.Kind())
	assert.Equal(t, `"a"`, key.Text())

	value := pair.ChildByFieldName("value")
	require.NotNil(t, value)
	assert.Equal(t, Kind("array"), value.Kind())
	assert.Equal(t, "[1, true]", value.Text())
	assert.Equal(t, 2, value.NamedChildCount())
	assert.Nil(t, pair.ChildByFieldName("missing"))

	comments := descendantsOfKind(root, KindComment)
	require.Len(t, comments, 1)
	assert.Equal(t, "// note", comments[0].Text())
	assert.Equal(t, 2, comments[0].Start().Line)
	assert.True(t, comments[0].IsNamed())
}

func TestFromSitterBounds(t *testing.T) {
	assert.Nil(t, FromSitter(nil, nil))

	root := parseJSON(t, []byte("[1]"))
	assert.Nil(t, root.Child(-1))
	assert.Nil(t, root.Child(root.ChildCount()))
	assert.Nil(t, root.NamedChild(root.NamedChildCount()))
}
