// resolver.go turns a parsed abbreviation tree into a resolved tree:
// snippets spliced, shorthand merged onto defaults, repetition expanded and
// sibling numbering substituted.
package abbr

import "fmt"

// maxSnippetDepth bounds snippet-in-snippet resolution. Snippet bodies are
// abbreviation syntax and may reference further snippets; past this depth
// the reference is reported as cyclic.
const maxSnippetDepth = 10

// Resolve expands node against the dictionary under the given profile. The
// returned root mirrors the parse root: an unnamed container of top-level
// siblings.
func Resolve(root *Node, profile Profile, dict *Dictionary) (*ResolvedNode, error) {
	r := &resolver{profile: profile, dict: dict}
	children, err := r.resolveNodes(root.Children, numbering{index: 1, total: 1}, 0)
	if err != nil {
		return nil, err
	}
	return &ResolvedNode{Children: children}, nil
}

type resolver struct {
	profile Profile
	dict    *Dictionary
}

// numbering is the sibling-index context supplied by the nearest enclosing
// repetition, consumed by "$" substitution.
type numbering struct {
	index int
	total int
}

func (r *resolver) resolveNodes(nodes []*Node, num numbering, depth int) ([]*ResolvedNode, error) {
	var out []*ResolvedNode
	for _, n := range nodes {
		for i := 1; i <= n.Repeat; i++ {
			child := num
			if n.Repeat > 1 {
				child = numbering{index: i, total: n.Repeat}
			}
			resolved, err := r.resolveOne(n, child, depth)
			if err != nil {
				return nil, err
			}
			out = append(out, resolved...)
		}
	}
	return out, nil
}

func (r *resolver) resolveOne(n *Node, num numbering, depth int) ([]*ResolvedNode, error) {
	// Grouping node from "(...)*N": splice its children.
	if n.Name == "" && len(n.Children) > 0 && n.Text == "" && n.ID == "" &&
		len(n.Classes) == 0 && len(n.Attributes) == 0 {
		return r.resolveNodes(n.Children, num, depth)
	}

	// Pure text node.
	if n.Name == "" && n.Text != "" && n.ID == "" && len(n.Classes) == 0 &&
		len(n.Attributes) == 0 && len(n.Children) == 0 {
		return []*ResolvedNode{{Text: substituteIndex(n.Text, num)}}, nil
	}

	name := n.Name
	if name == "" {
		// ".foo" and "#bar" imply a div.
		name = "div"
	}

	if snippet, ok := r.dict.Lookup(name); ok && snippet.Body != "" {
		return r.splice(n, snippet, name, num, depth)
	}

	snippet, _ := r.dict.Lookup(name)
	rn := &ResolvedNode{
		Name: name,
		Void: snippet.Void || voidElements[name],
	}
	rn.Attributes = mergeAttributes(snippet.Attributes, n, num)
	rn.Text = substituteIndex(n.Text, num)

	children, err := r.resolveNodes(n.Children, num, depth)
	if err != nil {
		return nil, err
	}
	rn.Children = children
	return []*ResolvedNode{rn}, nil
}

// splice replaces a node whose name matched an alias snippet with the
// snippet body's own expansion. Shorthand classes, id and attributes merge
// onto the first element of the spliced tree; the node's children and text
// attach to the deepest last element, matching how wrap content nests.
func (r *resolver) splice(n *Node, snippet Snippet, name string, num numbering, depth int) ([]*ResolvedNode, error) {
	if depth >= maxSnippetDepth {
		return nil, &ResolveError{Kind: KindCyclic, Name: name}
	}

	body, err := Parse(snippet.Body)
	if err != nil {
		return nil, fmt.Errorf("snippet %q: %w", name, err)
	}
	resolved, err := r.resolveNodes(body.Children, num, depth+1)
	if err != nil {
		return nil, err
	}

	if first := firstElement(resolved); first != nil {
		first.Attributes = mergeAttributes(first.Attributes, n, num)
	}

	if len(n.Children) > 0 || n.Text != "" {
		target := deepestLastElement(resolved)
		if target == nil {
			return nil, fmt.Errorf("snippet %q has no element to hold content", name)
		}
		children, err := r.resolveNodes(n.Children, num, depth)
		if err != nil {
			return nil, err
		}
		target.Children = append(target.Children, children...)
		if text := substituteIndex(n.Text, num); text != "" {
			target.Text = joinText(target.Text, text)
		}
	}
	return resolved, nil
}

// mergeAttributes layers a node's shorthand onto snippet defaults. Order is
// kept stable: defaults first, then new keys as they appear. The id wins
// over a default id, classes append to a default class list, and later
// duplicate attribute keys override earlier ones.
func mergeAttributes(defaults []Attribute, n *Node, num numbering) []Attribute {
	merged := make([]Attribute, len(defaults))
	copy(merged, defaults)

	put := func(name, value string) {
		for i := range merged {
			if merged[i].Name == name {
				merged[i].Value = value
				return
			}
		}
		merged = append(merged, Attribute{Name: name, Value: value})
	}

	if n.ID != "" {
		put("id", substituteIndex(n.ID, num))
	}
	if len(n.Classes) > 0 {
		class := ""
		for i := range merged {
			if merged[i].Name == "class" {
				class = merged[i].Value
			}
		}
		for _, c := range n.Classes {
			c = substituteIndex(c, num)
			if class == "" {
				class = c
			} else {
				class += " " + c
			}
		}
		put("class", class)
	}
	for _, a := range n.Attributes {
		put(a.Name, substituteIndex(a.Value, num))
	}
	return merged
}

// substituteIndex replaces runs of '$' with the 1-based sibling index,
// zero-padded to the run length ("$$" becomes "01"). A "${" sequence is a
// tab-stop marker and passes through untouched.
func substituteIndex(s string, num numbering) string {
	if s == "" {
		return s
	}
	var out []byte
	for i := 0; i < len(s); {
		if s[i] != '$' {
			out = append(out, s[i])
			i++
			continue
		}
		if i+1 < len(s) && s[i+1] == '{' {
			// Copy the whole marker verbatim.
			end := i + 2
			for end < len(s) && s[end] != '}' {
				end++
			}
			if end < len(s) {
				end++
			}
			out = append(out, s[i:end]...)
			i = end
			continue
		}
		run := i
		for run < len(s) && s[run] == '$' {
			run++
		}
		out = append(out, []byte(fmt.Sprintf("%0*d", run-i, num.index))...)
		i = run
	}
	return string(out)
}

// firstElement returns the first named node in document order.
func firstElement(nodes []*ResolvedNode) *ResolvedNode {
	for _, n := range nodes {
		if n.Name != "" {
			return n
		}
		if found := firstElement(n.Children); found != nil {
			return found
		}
	}
	return nil
}

// deepestLastElement follows the last named child at each level and
// returns the deepest one.
func deepestLastElement(nodes []*ResolvedNode) *ResolvedNode {
	var last *ResolvedNode
	for _, n := range nodes {
		if n.Name != "" {
			last = n
		}
	}
	if last == nil {
		return nil
	}
	if deeper := deepestLastElement(last.Children); deeper != nil {
		return deeper
	}
	return last
}

func joinText(existing, extra string) string {
	if existing == "" {
		return extra
	}
	return existing + extra
}
