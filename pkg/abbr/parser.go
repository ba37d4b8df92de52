// parser.go implements the recursive-descent abbreviation parser.
package abbr

import (
	"fmt"
	"strconv"
)

// Parse parses an abbreviation into a node tree. The returned root node is
// an unnamed container whose children are the top-level siblings.
//
// Grammar, lowest to highest precedence:
//   - "+" chains siblings
//   - ">" nests children (binds tighter than "+")
//   - "(...)" groups a sub-abbreviation
//   - "*N" repeats the preceding element or group N times
//   - ".class", "#id", "[k=v k2]" and "{text}" decorate an element
//
// Parsing never partially succeeds: any syntax error yields a *ParseError
// and no tree.
func Parse(input string) (*Node, error) {
	p := &parser{input: input}
	children, err := p.parseSiblings()
	if err != nil {
		return nil, err
	}
	if p.pos < len(p.input) {
		return nil, &ParseError{
			Position: p.pos,
			Reason:   fmt.Sprintf("unexpected %q", p.input[p.pos]),
		}
	}
	return &Node{Repeat: 1, Children: children}, nil
}

type parser struct {
	input string
	pos   int
}

func (p *parser) peek() byte {
	if p.pos >= len(p.input) {
		return 0
	}
	return p.input[p.pos]
}

func (p *parser) eat(c byte) bool {
	if p.peek() == c {
		p.pos++
		return true
	}
	return false
}

// parseSiblings parses "chain (+ chain)*".
func (p *parser) parseSiblings() ([]*Node, error) {
	var nodes []*Node
	for {
		ns, err := p.parseChain()
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, ns...)
		if !p.eat('+') {
			return nodes, nil
		}
	}
}

// parseChain parses "factor (> siblings)?". The ">" operator takes the
// entire following sibling list as children, so "div>p+bq" nests both the
// p and the bq inside the div, while "div+p>span" keeps the div on top and
// nests the span under the p.
func (p *parser) parseChain() ([]*Node, error) {
	roots, err := p.parseFactor()
	if err != nil {
		return nil, err
	}
	if p.eat('>') {
		children, err := p.parseSiblings()
		if err != nil {
			return nil, err
		}
		last := roots[len(roots)-1]
		last.Children = append(last.Children, children...)
	}
	return roots, nil
}

// parseFactor parses a parenthesized group or a single element. A group
// without repetition is spliced directly into its parent; a repeated group
// is kept as an unnamed container node so the resolver can copy it.
func (p *parser) parseFactor() ([]*Node, error) {
	if p.peek() == '(' {
		open := p.pos
		p.pos++
		nodes, err := p.parseSiblings()
		if err != nil {
			return nil, err
		}
		if !p.eat(')') {
			return nil, &ParseError{Position: open, Reason: "unmatched '('"}
		}
		repeat, explicit, err := p.parseRepeat()
		if err != nil {
			return nil, err
		}
		if !explicit {
			return nodes, nil
		}
		return []*Node{{Repeat: repeat, Children: nodes}}, nil
	}
	return p.parseElement()
}

// parseElement parses "name? (.class | #id | [attrs] | {text})* (*N)?".
func (p *parser) parseElement() ([]*Node, error) {
	n := &Node{Repeat: 1}
	n.Name = p.scanName()
	// A trailing '+' belongs to the name when nothing can follow it as a
	// sibling, so "ul+" and "(dl+)*2" reach the structural snippets while
	// "ul+li" keeps '+' as the operator.
	if n.Name != "" && p.peek() == '+' {
		if p.pos+1 >= len(p.input) || p.input[p.pos+1] == ')' {
			n.Name += "+"
			p.pos++
		}
	}
	decorated := n.Name != ""

loop:
	for {
		switch p.peek() {
		case '.':
			p.pos++
			class := p.scanName()
			if class == "" {
				return nil, &ParseError{Position: p.pos, Reason: "empty class name"}
			}
			n.Classes = append(n.Classes, class)
		case '#':
			p.pos++
			id := p.scanName()
			if id == "" {
				return nil, &ParseError{Position: p.pos, Reason: "empty id"}
			}
			n.ID = id
		case '[':
			attrs, err := p.parseAttributes()
			if err != nil {
				return nil, err
			}
			n.Attributes = append(n.Attributes, attrs...)
		case '{':
			text, err := p.parseText()
			if err != nil {
				return nil, err
			}
			n.Text += text
		default:
			break loop
		}
		decorated = true
	}

	if !decorated {
		return nil, &ParseError{Position: p.pos, Reason: "expected element"}
	}

	repeat, _, err := p.parseRepeat()
	if err != nil {
		return nil, err
	}
	n.Repeat = repeat
	return []*Node{n}, nil
}

// parseRepeat parses an optional "*N" suffix. Returns the count, whether a
// repeat was present, and any error.
func (p *parser) parseRepeat() (int, bool, error) {
	if !p.eat('*') {
		return 1, false, nil
	}
	start := p.pos
	for p.pos < len(p.input) && isDigit(p.input[p.pos]) {
		p.pos++
	}
	if p.pos == start {
		return 0, false, &ParseError{Position: start, Reason: "repeat count expected after '*'"}
	}
	count, err := strconv.Atoi(p.input[start:p.pos])
	if err != nil || count < 1 {
		return 0, false, &ParseError{Position: start, Reason: "repeat count must be at least 1"}
	}
	return count, true, nil
}

// parseAttributes parses "[k=v k2='v 2' k3]". Keys without a value keep an
// empty value, which the renderer turns into a tab stop inside the quotes.
func (p *parser) parseAttributes() ([]Attribute, error) {
	open := p.pos
	p.pos++ // skip '['

	var attrs []Attribute
	for {
		for p.pos < len(p.input) && isSpace(p.input[p.pos]) {
			p.pos++
		}
		if p.pos >= len(p.input) {
			return nil, &ParseError{Position: open, Reason: "unmatched '['"}
		}
		if p.eat(']') {
			return attrs, nil
		}

		keyStart := p.pos
		for p.pos < len(p.input) && isAttrNameChar(p.input[p.pos]) {
			p.pos++
		}
		if p.pos == keyStart {
			return nil, &ParseError{Position: p.pos, Reason: "attribute name expected"}
		}
		key := p.input[keyStart:p.pos]

		if !p.eat('=') {
			attrs = append(attrs, Attribute{Name: key})
			continue
		}

		value, err := p.parseAttrValue()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, Attribute{Name: key, Value: value})
	}
}

// parseAttrValue parses an attribute value, which may be single- or
// double-quoted or a bare word ending at whitespace or ']'.
func (p *parser) parseAttrValue() (string, error) {
	if p.pos >= len(p.input) {
		return "", &ParseError{Position: p.pos, Reason: "attribute value expected"}
	}
	if quote := p.input[p.pos]; quote == '"' || quote == '\'' {
		open := p.pos
		p.pos++
		start := p.pos
		for p.pos < len(p.input) && p.input[p.pos] != quote {
			p.pos++
		}
		if p.pos >= len(p.input) {
			return "", &ParseError{Position: open, Reason: "unclosed quoted value"}
		}
		value := p.input[start:p.pos]
		p.pos++ // closing quote
		return value, nil
	}

	start := p.pos
	for p.pos < len(p.input) && !isSpace(p.input[p.pos]) && p.input[p.pos] != ']' {
		p.pos++
	}
	return p.input[start:p.pos], nil
}

// parseText parses "{...}" literal text. Backslash escapes '{', '}' and
// '\'. A "${" sequence starts a tab-stop marker whose closing '}' belongs
// to the marker, not to the text block, so "{${1:done}!}" works.
func (p *parser) parseText() (string, error) {
	open := p.pos
	p.pos++ // skip '{'

	var out []byte
	for p.pos < len(p.input) {
		c := p.input[p.pos]
		switch {
		case c == '\\' && p.pos+1 < len(p.input):
			out = append(out, p.input[p.pos+1])
			p.pos += 2
		case c == '$' && p.pos+1 < len(p.input) && p.input[p.pos+1] == '{':
			marker, err := p.scanTabStopMarker()
			if err != nil {
				return "", err
			}
			out = append(out, marker...)
		case c == '}':
			p.pos++
			return string(out), nil
		default:
			out = append(out, c)
			p.pos++
		}
	}
	return "", &ParseError{Position: open, Reason: "unmatched '{'"}
}

// scanTabStopMarker consumes a "${...}" marker verbatim, starting at '$'.
func (p *parser) scanTabStopMarker() (string, error) {
	start := p.pos
	p.pos += 2 // skip "${"
	for p.pos < len(p.input) && p.input[p.pos] != '}' {
		p.pos++
	}
	if p.pos >= len(p.input) {
		return "", &ParseError{Position: start, Reason: "unclosed tab stop marker"}
	}
	p.pos++ // closing '}'
	return p.input[start:p.pos], nil
}

// scanName scans an element, class or id name.
func (p *parser) scanName() string {
	start := p.pos
	for p.pos < len(p.input) && isNameChar(p.input[p.pos]) {
		p.pos++
	}
	return p.input[start:p.pos]
}

func isNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c) ||
		c == '-' || c == '_' || c == ':' || c == '!'
}

func isAttrNameChar(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || isDigit(c) ||
		c == '-' || c == '_' || c == ':'
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func isSpace(c byte) bool { return c == ' ' || c == '\t' || c == '\n' || c == '\r' }
