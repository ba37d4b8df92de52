// Package abbr implements the zen abbreviation expansion engine: parsing
// compact abbreviations like "div.foo>ul>li*3" into a node tree, resolving
// them against a snippet dictionary and a syntax profile, and rendering
// formatted markup with tab-stop metadata.
package abbr

// Node is one syntactic unit of a parsed abbreviation.
//
// A node with an empty Name is either a text node (only Text set), a
// grouping node from "(...)" (only Children set), or an implicit "div"
// when classes, an id, or attributes are present.
type Node struct {
	Name       string
	ID         string
	Classes    []string
	Attributes []Attribute
	Text       string
	Repeat     int // number of sibling copies to produce, always >= 1
	Children   []*Node
}

// Attribute is a single ordered name/value pair. Shorthand attributes
// written without a value ([disabled]) carry an empty Value and render as
// an implicit tab stop inside the quotes.
type Attribute struct {
	Name  string
	Value string
}

// ResolvedNode is a node after snippet and profile resolution: repeat
// expansion applied, shorthand merged onto snippet defaults, and sibling
// numbering substituted. A resolved node with an empty Name and non-empty
// Text is a plain text line.
type ResolvedNode struct {
	Name       string
	Attributes []Attribute
	Text       string
	Void       bool
	Raw        bool // Text is literal document content, not scanned for tab-stop markers
	Children   []*ResolvedNode
}

// Range is a half-open [Start, End) span of byte offsets.
type Range struct {
	Start int
	End   int
}

// TabStop is an ordered caret-navigation placeholder in rendered output.
type TabStop struct {
	Order       int
	Range       Range
	Placeholder string
}

// ExpansionResult is the immutable outcome of one expansion call. Tab stops
// are listed in document order; SelectionIndex points at the stop where the
// caret should land first (the lowest Order), or -1 when there is none.
type ExpansionResult struct {
	Text           string
	TabStops       []TabStop
	SelectionIndex int
}
