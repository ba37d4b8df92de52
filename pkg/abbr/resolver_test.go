package abbr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustResolve(t *testing.T, input string) *ResolvedNode {
	t.Helper()
	root, err := Parse(input)
	require.NoError(t, err)
	resolved, err := Resolve(root, DefaultProfile(), NewDictionary(nil))
	require.NoError(t, err)
	return resolved
}

func TestResolve_ElementSnippetDefaults(t *testing.T) {
	resolved := mustResolve(t, "a")
	require.Len(t, resolved.Children, 1)

	a := resolved.Children[0]
	assert.Equal(t, "a", a.Name)
	assert.Equal(t, []Attribute{{Name: "href"}}, a.Attributes)
	assert.False(t, a.Void)
}

func TestResolve_VoidElements(t *testing.T) {
	resolved := mustResolve(t, "img+br+p")
	require.Len(t, resolved.Children, 3)
	assert.True(t, resolved.Children[0].Void)
	assert.True(t, resolved.Children[1].Void)
	assert.False(t, resolved.Children[2].Void)
}

func TestResolve_ShorthandOverridesDefaults(t *testing.T) {
	resolved := mustResolve(t, "input[type=submit value=Go]")
	require.Len(t, resolved.Children, 1)

	got := resolved.Children[0].Attributes
	assert.Equal(t, []Attribute{{Name: "type", Value: "submit"}, {Name: "value", Value: "Go"}}, got)
}

func TestResolve_LaterDuplicateAttributeWins(t *testing.T) {
	resolved := mustResolve(t, "div[a=1 a=2]")
	assert.Equal(t, []Attribute{{Name: "a", Value: "2"}}, resolved.Children[0].Attributes)
}

func TestResolve_ImplicitDiv(t *testing.T) {
	resolved := mustResolve(t, "#app.shell")
	require.Len(t, resolved.Children, 1)
	assert.Equal(t, "div", resolved.Children[0].Name)
	assert.Equal(t, []Attribute{{Name: "id", Value: "app"}, {Name: "class", Value: "shell"}}, resolved.Children[0].Attributes)
}

func TestResolve_RepeatProducesIndependentCopies(t *testing.T) {
	resolved := mustResolve(t, "li.item$*3")
	require.Len(t, resolved.Children, 3)
	for i, li := range resolved.Children {
		assert.Equal(t, "li", li.Name)
		assert.Equal(t, []Attribute{{Name: "class", Value: "item" + string(rune('1'+i))}}, li.Attributes)
	}
}

func TestResolve_DollarPadding(t *testing.T) {
	resolved := mustResolve(t, "i{n$$}*12")
	require.Len(t, resolved.Children, 12)
	assert.Equal(t, "n01", resolved.Children[0].Text)
	assert.Equal(t, "n12", resolved.Children[11].Text)
}

func TestResolve_DollarInDescendantOfRepeat(t *testing.T) {
	resolved := mustResolve(t, "li*2>span{row $}")
	require.Len(t, resolved.Children, 2)
	assert.Equal(t, "row 1", resolved.Children[0].Children[0].Text)
	assert.Equal(t, "row 2", resolved.Children[1].Children[0].Text)
}

func TestResolve_AliasSnippetSplice(t *testing.T) {
	resolved := mustResolve(t, "bq.note>p")
	require.Len(t, resolved.Children, 1)

	blockquote := resolved.Children[0]
	assert.Equal(t, "blockquote", blockquote.Name)
	assert.Equal(t, []Attribute{{Name: "class", Value: "note"}}, blockquote.Attributes)
	require.Len(t, blockquote.Children, 1)
	assert.Equal(t, "p", blockquote.Children[0].Name)
}

func TestResolve_StructuralSnippet(t *testing.T) {
	resolved := mustResolve(t, "dl+")
	require.Len(t, resolved.Children, 1)

	dl := resolved.Children[0]
	assert.Equal(t, "dl", dl.Name)
	require.Len(t, dl.Children, 2)
	assert.Equal(t, "dt", dl.Children[0].Name)
	assert.Equal(t, "dd", dl.Children[1].Name)
}

func TestResolve_UserSnippetOverridesBuiltin(t *testing.T) {
	dict := NewDictionary(map[string]string{"bq": "aside.quote"})
	root, err := Parse("bq")
	require.NoError(t, err)

	resolved, err := Resolve(root, DefaultProfile(), dict)
	require.NoError(t, err)
	require.Len(t, resolved.Children, 1)
	assert.Equal(t, "aside", resolved.Children[0].Name)
}

func TestResolve_NestedSnippets(t *testing.T) {
	dict := NewDictionary(map[string]string{
		"card": "sect.card>hd+body",
		"hd":   "header>h2",
		"body": "div.body",
	})
	root, err := Parse("card")
	require.NoError(t, err)

	resolved, err := Resolve(root, DefaultProfile(), dict)
	require.NoError(t, err)

	section := resolved.Children[0]
	assert.Equal(t, "section", section.Name)
	require.Len(t, section.Children, 2)
	assert.Equal(t, "header", section.Children[0].Name)
	assert.Equal(t, "div", section.Children[1].Name)
}

func TestResolve_CyclicSnippetFails(t *testing.T) {
	dict := NewDictionary(map[string]string{"foo": "bar>foo"})
	root, err := Parse("foo")
	require.NoError(t, err)

	_, err = Resolve(root, DefaultProfile(), dict)
	var rerr *ResolveError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, KindCyclic, rerr.Kind)
}

func TestResolve_MalformedUserSnippetSurfaces(t *testing.T) {
	dict := NewDictionary(map[string]string{"oops": "div>"})
	root, err := Parse("oops")
	require.NoError(t, err)

	_, err = Resolve(root, DefaultProfile(), dict)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `snippet "oops"`)
}

func TestResolve_TextNode(t *testing.T) {
	resolved := mustResolve(t, "{just text}")
	require.Len(t, resolved.Children, 1)
	assert.Empty(t, resolved.Children[0].Name)
	assert.Equal(t, "just text", resolved.Children[0].Text)
}
