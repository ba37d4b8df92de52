package markup

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `<div class="wrap">
	<ul>
		<li>first</li>
		<li>second</li>
	</ul>
	<img src="logo.png" alt="">
</div>`

func TestEnclosingTagName_Innermost(t *testing.T) {
	pos := strings.Index(sample, "first")
	name, ok := EnclosingTagName(sample, pos)
	require.True(t, ok)
	assert.Equal(t, "li", name)
}

func TestEnclosingTagName_BetweenChildren(t *testing.T) {
	pos := strings.Index(sample, "</li>\n\t\t<li>second") + len("</li>\n")
	name, ok := EnclosingTagName(sample, pos)
	require.True(t, ok)
	assert.Equal(t, "ul", name)
}

func TestEnclosingTagName_VoidElement(t *testing.T) {
	pos := strings.Index(sample, "logo.png")
	name, ok := EnclosingTagName(sample, pos)
	require.True(t, ok)
	assert.Equal(t, "img", name)
}

func TestEnclosingTagName_OutsideAnyTag(t *testing.T) {
	doc := "plain text, no markup"
	_, ok := EnclosingTagName(doc, 5)
	assert.False(t, ok)
}

func TestEnclosingTag_SelfClosing(t *testing.T) {
	doc := `<p><custom-widget id="w"/></p>`
	pos := strings.Index(doc, "id=")
	tag, ok := EnclosingTag(doc, pos)
	require.True(t, ok)
	assert.Equal(t, "custom-widget", tag.Name)
	assert.Zero(t, tag.Close)
}

func TestTagNameRanges_OpenAndClose(t *testing.T) {
	doc := `<section><p>x</p></section>`
	pos := strings.Index(doc, "x")

	ranges := TagNameRanges(doc, pos)
	require.Len(t, ranges, 2)
	assert.Equal(t, "p", doc[ranges[0].Start:ranges[0].End])
	assert.Equal(t, "p", doc[ranges[1].Start:ranges[1].End])
	assert.Greater(t, ranges[1].Start, ranges[0].Start)
}

func TestTagNameRanges_NoTag(t *testing.T) {
	assert.Nil(t, TagNameRanges("no markup here", 3))
}

func TestOpenTagAt(t *testing.T) {
	doc := `<input type="text" `
	name, ok := OpenTagAt(doc, len(doc))
	require.True(t, ok)
	assert.Equal(t, "input", name)

	_, ok = OpenTagAt("<p>text</p>", 5)
	assert.False(t, ok, "positions in content are not inside an open tag")
}

func TestAttributeContext_InsideValue(t *testing.T) {
	doc := `<a href="docs/index.html">go</a>`
	pos := strings.Index(doc, "docs")

	tag, attr, ok := AttributeContext(doc, pos)
	require.True(t, ok)
	assert.Equal(t, "a", tag)
	assert.Equal(t, "href", attr)
}

func TestAttributeContext_UnclosedQuote(t *testing.T) {
	doc := `<input type="`
	tag, attr, ok := AttributeContext(doc, len(doc))
	require.True(t, ok)
	assert.Equal(t, "input", tag)
	assert.Equal(t, "type", attr)
}

func TestAttributeContext_NotInValue(t *testing.T) {
	doc := `<a href="x">go</a>`

	_, _, ok := AttributeContext(doc, strings.Index(doc, "go"))
	assert.False(t, ok, "element content is not a value position")

	_, _, ok = AttributeContext(doc, strings.Index(doc, "href"))
	assert.False(t, ok, "attribute name is not a value position")
}

func TestWrapTarget_Selection(t *testing.T) {
	doc := "hello world"
	r, ok := WrapTarget(doc, 6, 11)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 6, End: 11}, r)
}

func TestWrapTarget_CaretOnLineTrimsWhitespace(t *testing.T) {
	doc := "first\n\t  middle text  \nlast"
	caret := strings.Index(doc, "middle") + 2

	r, ok := WrapTarget(doc, caret, caret)
	require.True(t, ok)
	assert.Equal(t, "middle text", doc[r.Start:r.End])
}

func TestWrapTarget_EmptyLine(t *testing.T) {
	doc := "first\n   \nlast"
	caret := strings.Index(doc, "\n   ") + 2

	_, ok := WrapTarget(doc, caret, caret)
	assert.False(t, ok)
}

func TestWrapTarget_ReversedSelection(t *testing.T) {
	doc := "hello world"
	r, ok := WrapTarget(doc, 11, 6)
	require.True(t, ok)
	assert.Equal(t, Range{Start: 6, End: 11}, r)
}

func TestAttributesFor(t *testing.T) {
	attrs := AttributesFor("img")
	assert.Contains(t, attrs, "src")
	assert.Contains(t, attrs, "alt")
	assert.Contains(t, attrs, "class", "globals always apply")

	unknown := AttributesFor("made-up")
	assert.Contains(t, unknown, "id", "unknown tags still get globals")
}

func TestValuesFor(t *testing.T) {
	assert.Contains(t, ValuesFor("target"), "_blank")
	assert.Contains(t, ValuesFor("TYPE"), "checkbox")
	assert.Nil(t, ValuesFor("href"))
}
