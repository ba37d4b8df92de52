// render.go walks a resolved tree and emits formatted markup with
// tab-stop metadata.
package abbr

import (
	"sort"
	"strconv"
	"strings"
)

// Render emits the resolved tree as text under the given profile.
//
// Tab stops come from three places: explicit "${N}" / "${N:placeholder}"
// markers, empty attribute values, and a synthesized fallback stop when
// nothing else produced one. Explicit numbers win; implicit stops are
// numbered after the highest explicit number in document order. Two
// explicit stops sharing a number yield a *TabStopCollisionError.
func Render(root *ResolvedNode, profile Profile) (*ExpansionResult, error) {
	r := &renderer{profile: profile, firstEmpty: -1}
	for _, child := range root.Children {
		r.renderNode(child, 0)
	}

	text := strings.TrimSuffix(r.b.String(), "\n")

	used := make(map[int]bool)
	maxExplicit := 0
	for _, s := range r.stops {
		if !s.explicit {
			continue
		}
		if used[s.number] {
			return nil, &TabStopCollisionError{Number: s.number}
		}
		used[s.number] = true
		if s.number > maxExplicit {
			maxExplicit = s.number
		}
	}

	next := maxExplicit + 1
	stops := make([]TabStop, 0, len(r.stops))
	for _, s := range r.stops {
		order := s.number
		if !s.explicit {
			order = next
			next++
		}
		stops = append(stops, TabStop{
			Order:       order,
			Range:       Range{Start: s.start, End: s.end},
			Placeholder: s.placeholder,
		})
	}

	if len(stops) == 0 {
		pos := r.firstEmpty
		if pos < 0 {
			pos = len(text)
		}
		stops = append(stops, TabStop{Order: 1, Range: Range{Start: pos, End: pos}})
	}

	selection := 0
	for i, s := range stops {
		if s.Order < stops[selection].Order {
			selection = i
		}
	}

	return &ExpansionResult{Text: text, TabStops: stops, SelectionIndex: selection}, nil
}

type renderer struct {
	profile    Profile
	b          strings.Builder
	stops      []stopRec
	firstEmpty int // offset of the first empty element's content, -1 if none
}

type stopRec struct {
	explicit    bool
	number      int
	start, end  int
	placeholder string
}

func (r *renderer) renderNode(n *ResolvedNode, depth int) {
	indent := strings.Repeat(r.profile.Indent, depth)

	if n.Name == "" {
		// Plain text, one output line per input line.
		for _, line := range strings.Split(n.Text, "\n") {
			r.b.WriteString(indent)
			r.writeProcessed(line, n.Raw)
			r.b.WriteByte('\n')
		}
		return
	}

	r.b.WriteString(indent)
	r.b.WriteByte('<')
	name := r.profile.tagName(n.Name)
	r.b.WriteString(name)
	r.writeAttributes(n.Attributes)

	if n.Void {
		// Void elements never take a closing tag or child block; only the
		// slash rendering follows the profile.
		r.b.WriteString(r.profile.selfClose())
		r.b.WriteByte('\n')
		return
	}

	switch {
	case len(n.Children) > 0:
		r.b.WriteString(">\n")
		if n.Text != "" {
			r.b.WriteString(indent + r.profile.Indent)
			r.writeProcessed(n.Text, n.Raw)
			r.b.WriteByte('\n')
		}
		for _, child := range n.Children {
			r.renderNode(child, depth+1)
		}
		r.b.WriteString(indent)
		r.b.WriteString("</" + name + ">\n")

	case n.Text == "":
		r.b.WriteByte('>')
		if r.firstEmpty < 0 {
			r.firstEmpty = r.b.Len()
		}
		r.b.WriteString("</" + name + ">\n")

	case strings.Contains(n.Text, "\n"):
		// Multi-line content renders as an indented block.
		r.b.WriteString(">\n")
		for _, line := range strings.Split(n.Text, "\n") {
			r.b.WriteString(indent + r.profile.Indent)
			r.writeProcessed(line, n.Raw)
			r.b.WriteByte('\n')
		}
		r.b.WriteString(indent)
		r.b.WriteString("</" + name + ">\n")

	default:
		r.b.WriteByte('>')
		r.writeProcessed(n.Text, n.Raw)
		r.b.WriteString("</" + name + ">\n")
	}
}

func (r *renderer) writeAttributes(attrs []Attribute) {
	q := r.profile.quote()
	for _, a := range attrs {
		r.b.WriteByte(' ')
		r.b.WriteString(r.profile.attrName(a.Name))
		r.b.WriteByte('=')
		r.b.WriteByte(q)
		if a.Value == "" {
			// Empty default values are caret targets.
			pos := r.b.Len()
			r.stops = append(r.stops, stopRec{start: pos, end: pos})
		} else {
			r.writeProcessed(a.Value, false)
		}
		r.b.WriteByte(q)
	}
}

// writeProcessed copies s to the output, converting "${N}" and
// "${N:placeholder}" markers into recorded tab stops. Raw text (wrapped
// document content) is copied untouched.
func (r *renderer) writeProcessed(s string, raw bool) {
	if raw {
		r.b.WriteString(s)
		return
	}
	for i := 0; i < len(s); {
		if s[i] == '$' && i+1 < len(s) && s[i+1] == '{' {
			if number, placeholder, consumed, ok := parseStopMarker(s[i:]); ok {
				start := r.b.Len()
				r.b.WriteString(placeholder)
				r.stops = append(r.stops, stopRec{
					explicit:    true,
					number:      number,
					start:       start,
					end:         r.b.Len(),
					placeholder: placeholder,
				})
				i += consumed
				continue
			}
		}
		r.b.WriteByte(s[i])
		i++
	}
}

// parseStopMarker parses a "${N}" or "${N:placeholder}" marker at the start
// of s. Markers without a leading number are not tab stops.
func parseStopMarker(s string) (number int, placeholder string, consumed int, ok bool) {
	i := 2 // past "${"
	digitStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == digitStart {
		return 0, "", 0, false
	}
	number, _ = strconv.Atoi(s[digitStart:i])

	if i < len(s) && s[i] == ':' {
		i++
		start := i
		for i < len(s) && s[i] != '}' {
			i++
		}
		placeholder = s[start:i]
	}
	if i >= len(s) || s[i] != '}' {
		return 0, "", 0, false
	}
	return number, placeholder, i + 1, true
}

// SnippetText re-serializes the result with "${N}" / "${N:placeholder}"
// markers at each tab stop, suitable for editors that support snippet
// insertion.
func (res *ExpansionResult) SnippetText() string {
	stops := make([]TabStop, len(res.TabStops))
	copy(stops, res.TabStops)
	sort.Slice(stops, func(i, j int) bool { return stops[i].Range.Start > stops[j].Range.Start })

	text := res.Text
	for _, s := range stops {
		marker := "${" + strconv.Itoa(s.Order)
		if s.Placeholder != "" {
			marker += ":" + s.Placeholder
		}
		marker += "}"
		text = text[:s.Range.Start] + marker + text[s.Range.End:]
	}
	return text
}
