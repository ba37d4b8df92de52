package abbr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_SingleElement(t *testing.T) {
	root, err := Parse("div")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "div", root.Children[0].Name)
	assert.Equal(t, 1, root.Children[0].Repeat)
}

func TestParse_Shorthand(t *testing.T) {
	root, err := Parse("div#main.wrap.outer[data-x=1 hidden]{hi}")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	n := root.Children[0]
	assert.Equal(t, "div", n.Name)
	assert.Equal(t, "main", n.ID)
	assert.Equal(t, []string{"wrap", "outer"}, n.Classes)
	assert.Equal(t, []Attribute{{Name: "data-x", Value: "1"}, {Name: "hidden"}}, n.Attributes)
	assert.Equal(t, "hi", n.Text)
}

func TestParse_ImplicitDiv(t *testing.T) {
	root, err := Parse(".foo")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Empty(t, root.Children[0].Name)
	assert.Equal(t, []string{"foo"}, root.Children[0].Classes)
}

func TestParse_ChildTakesFollowingSiblings(t *testing.T) {
	// ">" grabs the whole following sibling list: p and blockquote both
	// nest inside the div.
	root, err := Parse("div>p+blockquote")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	div := root.Children[0]
	require.Len(t, div.Children, 2)
	assert.Equal(t, "p", div.Children[0].Name)
	assert.Equal(t, "blockquote", div.Children[1].Name)
}

func TestParse_SiblingThenChild(t *testing.T) {
	root, err := Parse("div+p>span")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)

	assert.Empty(t, root.Children[0].Children)
	p := root.Children[1]
	require.Len(t, p.Children, 1)
	assert.Equal(t, "span", p.Children[0].Name)
}

func TestParse_GroupSplicesWithoutRepeat(t *testing.T) {
	root, err := Parse("div>(header+main)+footer")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	div := root.Children[0]
	require.Len(t, div.Children, 3)
	assert.Equal(t, "header", div.Children[0].Name)
	assert.Equal(t, "main", div.Children[1].Name)
	assert.Equal(t, "footer", div.Children[2].Name)
}

func TestParse_RepeatedGroup(t *testing.T) {
	root, err := Parse("(li>a)*4")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)

	group := root.Children[0]
	assert.Empty(t, group.Name)
	assert.Equal(t, 4, group.Repeat)
	require.Len(t, group.Children, 1)
	assert.Equal(t, "li", group.Children[0].Name)
}

func TestParse_Repeat(t *testing.T) {
	root, err := Parse("li*3")
	require.NoError(t, err)
	assert.Equal(t, 3, root.Children[0].Repeat)
}

func TestParse_TrailingNamePlus(t *testing.T) {
	root, err := Parse("ul+")
	require.NoError(t, err)
	require.Len(t, root.Children, 1)
	assert.Equal(t, "ul+", root.Children[0].Name)

	root, err = Parse("ul+li")
	require.NoError(t, err)
	require.Len(t, root.Children, 2)
	assert.Equal(t, "ul", root.Children[0].Name)
	assert.Equal(t, "li", root.Children[1].Name)
}

func TestParse_TextWithTabStopMarker(t *testing.T) {
	root, err := Parse("p{done ${1:yet}!}")
	require.NoError(t, err)
	assert.Equal(t, "done ${1:yet}!", root.Children[0].Text)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		wantPos  int
		wantPart string
	}{
		{"trailing child operator", "div>", 4, "expected element"},
		{"trailing sibling operator", "div+", 4, "expected element"},
		{"empty input", "", 0, "expected element"},
		{"unmatched paren", "(div", 0, "unmatched '('"},
		{"unmatched bracket", "div[foo", 3, "unmatched '['"},
		{"unmatched brace", "div{foo", 3, "unmatched '{'"},
		{"missing repeat count", "div*", 4, "repeat count expected"},
		{"zero repeat count", "div*0", 4, "repeat count must be at least 1"},
		{"empty class", "div.", 4, "empty class name"},
		{"stray close paren", "div)", 3, "unexpected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root, err := Parse(tt.input)
			assert.Nil(t, root, "no partial tree on error")

			var perr *ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantPos, perr.Position)
			assert.Contains(t, perr.Reason, tt.wantPart)
		})
	}
}

func TestParse_ErrorPositionAtInputLength(t *testing.T) {
	input := "div>"
	_, err := Parse(input)

	var perr *ParseError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, len(input), perr.Position)
}
