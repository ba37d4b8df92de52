// Package markup answers structural questions about rendered markup: which
// tag encloses a position, where its name ranges sit for renaming, whether
// a position is inside an attribute value, and what span a wrap operation
// should enclose. All queries are read-only and stateless.
package markup

import "strings"

// Range is a half-open [Start, End) span of byte offsets.
type Range struct {
	Start int
	End   int
}

// Tag describes a matched tag pair around a position. Close is zero-width
// for void and self-closing tags. NameRanges lists the name span in the
// open tag and, when present, the close tag.
type Tag struct {
	Name       string
	Open       Range
	Close      Range
	NameRanges []Range
}

// voidElements never take a closing tag in HTML output.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

type tokenKind int

const (
	tokenOpen tokenKind = iota
	tokenClose
	tokenSelfClose
)

type tagToken struct {
	kind               tokenKind
	name               string
	start, end         int
	nameStart, nameEnd int
}

// EnclosingTag returns the innermost tag whose open/close span contains
// pos. A position inside a void or self-closing tag matches that tag.
func EnclosingTag(doc string, pos int) (Tag, bool) {
	if pos < 0 || pos > len(doc) {
		return Tag{}, false
	}

	var best Tag
	found := false
	better := func(t Tag) {
		if !found || t.Open.Start >= best.Open.Start {
			best = t
			found = true
		}
	}

	var stack []tagToken
	for _, tok := range scanTags(doc) {
		switch tok.kind {
		case tokenOpen:
			if voidElements[strings.ToLower(tok.name)] {
				if tok.start <= pos && pos < tok.end {
					better(tagFromSingle(tok))
				}
				continue
			}
			stack = append(stack, tok)
		case tokenSelfClose:
			if tok.start <= pos && pos < tok.end {
				better(tagFromSingle(tok))
			}
		case tokenClose:
			// Unwind to the matching open tag, dropping unclosed tags.
			for i := len(stack) - 1; i >= 0; i-- {
				if !strings.EqualFold(stack[i].name, tok.name) {
					continue
				}
				open := stack[i]
				stack = stack[:i]
				if open.start <= pos && pos < tok.end {
					better(Tag{
						Name:  open.name,
						Open:  Range{Start: open.start, End: open.end},
						Close: Range{Start: tok.start, End: tok.end},
						NameRanges: []Range{
							{Start: open.nameStart, End: open.nameEnd},
							{Start: tok.nameStart, End: tok.nameEnd},
						},
					})
				}
				break
			}
		}
	}
	return best, found
}

func tagFromSingle(tok tagToken) Tag {
	return Tag{
		Name:       tok.name,
		Open:       Range{Start: tok.start, End: tok.end},
		NameRanges: []Range{{Start: tok.nameStart, End: tok.nameEnd}},
	}
}

// EnclosingTagName returns the name of the tag enclosing pos.
func EnclosingTagName(doc string, pos int) (string, bool) {
	tag, ok := EnclosingTag(doc, pos)
	if !ok {
		return "", false
	}
	return tag.Name, true
}

// TagNameRanges returns the name spans of the tag pair enclosing pos, for
// rename-tag style multi-caret editing.
func TagNameRanges(doc string, pos int) []Range {
	tag, ok := EnclosingTag(doc, pos)
	if !ok {
		return nil
	}
	return tag.NameRanges
}

// OpenTagAt reports the tag name when pos sits inside an open tag (between
// "<name" and its ">"), which is where attribute-name completion applies.
func OpenTagAt(doc string, pos int) (string, bool) {
	start, ok := openTagStart(doc, pos)
	if !ok {
		return "", false
	}
	name, _ := scanName(doc, start+1)
	if name == "" {
		return "", false
	}
	return name, true
}

// AttributeContext reports the tag and attribute name when pos sits inside
// an attribute value, which is where attribute-value completion applies.
func AttributeContext(doc string, pos int) (tagName, attrName string, ok bool) {
	start, inTag := openTagStart(doc, pos)
	if !inTag {
		return "", "", false
	}
	tagName, i := scanName(doc, start+1)
	if tagName == "" {
		return "", "", false
	}

	for i < len(doc) && doc[i] != '>' {
		for i < len(doc) && isSpaceByte(doc[i]) {
			i++
		}
		if i >= len(doc) || doc[i] == '>' || doc[i] == '/' {
			break
		}

		var name string
		name, i = scanName(doc, i)
		if name == "" {
			i++
			continue
		}
		if i >= len(doc) || doc[i] != '=' {
			continue
		}
		i++
		if i < len(doc) && (doc[i] == '"' || doc[i] == '\'') {
			quote := doc[i]
			i++
			valueStart := i
			for i < len(doc) && doc[i] != quote {
				i++
			}
			// Inside the quotes, including the still-unclosed case.
			if pos >= valueStart && (pos <= i || i >= len(doc)) {
				return tagName, name, true
			}
			if i < len(doc) {
				i++
			}
		} else {
			valueStart := i
			for i < len(doc) && !isSpaceByte(doc[i]) && doc[i] != '>' {
				i++
			}
			if pos >= valueStart && pos < i {
				return tagName, name, true
			}
		}
	}
	return "", "", false
}

// WrapTarget determines what a wrap operation should enclose: the selection
// when non-empty, otherwise the caret line's trimmed span. Returns false
// when there is nothing sensible to wrap.
func WrapTarget(doc string, selStart, selEnd int) (Range, bool) {
	if selStart > selEnd {
		selStart, selEnd = selEnd, selStart
	}
	if selStart < 0 || selEnd > len(doc) {
		return Range{}, false
	}
	if selEnd > selStart {
		return Range{Start: selStart, End: selEnd}, true
	}

	lineStart := strings.LastIndexByte(doc[:selStart], '\n') + 1
	lineEnd := strings.IndexByte(doc[selStart:], '\n')
	if lineEnd < 0 {
		lineEnd = len(doc)
	} else {
		lineEnd += selStart
	}

	line := doc[lineStart:lineEnd]
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return Range{}, false
	}
	start := lineStart + strings.Index(line, trimmed)
	return Range{Start: start, End: start + len(trimmed)}, true
}

// openTagStart finds the '<' of the open tag containing pos, if any.
func openTagStart(doc string, pos int) (int, bool) {
	if pos < 0 || pos > len(doc) {
		return 0, false
	}
	for i := pos - 1; i >= 0; i-- {
		switch doc[i] {
		case '>':
			return 0, false
		case '<':
			if i+1 < len(doc) && doc[i+1] == '/' {
				return 0, false
			}
			return i, true
		}
	}
	return 0, false
}

// scanTags tokenizes every tag in the document, skipping comments and
// declarations.
func scanTags(doc string) []tagToken {
	var tokens []tagToken
	for i := 0; i < len(doc); {
		if doc[i] != '<' {
			i++
			continue
		}
		if strings.HasPrefix(doc[i:], "<!--") {
			end := strings.Index(doc[i:], "-->")
			if end < 0 {
				break
			}
			i += end + 3
			continue
		}
		if i+1 < len(doc) && doc[i+1] == '!' {
			end := strings.IndexByte(doc[i:], '>')
			if end < 0 {
				break
			}
			i += end + 1
			continue
		}

		tok, next, ok := scanOneTag(doc, i)
		if !ok {
			i++
			continue
		}
		tokens = append(tokens, tok)
		i = next
	}
	return tokens
}

// scanOneTag parses a single tag starting at the '<' at pos.
func scanOneTag(doc string, pos int) (tagToken, int, bool) {
	i := pos + 1
	kind := tokenOpen
	if i < len(doc) && doc[i] == '/' {
		kind = tokenClose
		i++
	}

	name, after := scanName(doc, i)
	if name == "" {
		return tagToken{}, 0, false
	}
	tok := tagToken{kind: kind, name: name, start: pos, nameStart: i, nameEnd: after}

	i = after
	for i < len(doc) && doc[i] != '>' {
		// Quoted attribute values may contain '>'.
		if doc[i] == '"' || doc[i] == '\'' {
			quote := doc[i]
			i++
			for i < len(doc) && doc[i] != quote {
				i++
			}
		}
		i++
	}
	if i >= len(doc) {
		return tagToken{}, 0, false
	}
	if kind == tokenOpen && i > pos && doc[i-1] == '/' {
		tok.kind = tokenSelfClose
	}
	tok.end = i + 1
	return tok, i + 1, true
}

// scanName scans a tag or attribute name starting at i.
func scanName(doc string, i int) (string, int) {
	start := i
	for i < len(doc) && isTagNameByte(doc[i]) {
		i++
	}
	return doc[start:i], i
}

func isTagNameByte(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
		(c >= '0' && c <= '9') || c == '-' || c == '_' || c == ':'
}

func isSpaceByte(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
