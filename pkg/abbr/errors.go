package abbr

import "fmt"

// ParseError reports malformed abbreviation syntax. Position is the byte
// offset of the offending character; for input that ends too early (for
// example a trailing ">" operator) it equals the input length.
type ParseError struct {
	Position int
	Reason   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error at offset %d: %s", e.Position, e.Reason)
}

// ResolveErrorKind classifies resolution failures.
type ResolveErrorKind int

const (
	// KindCyclic means snippet splicing exceeded the recursion bound,
	// which indicates a snippet that (directly or indirectly) references
	// itself.
	KindCyclic ResolveErrorKind = iota
	// KindUnknownReference means a named profile does not exist.
	KindUnknownReference
)

// ResolveError reports a failure while resolving a parsed abbreviation
// against the snippet dictionary or profile registry.
type ResolveError struct {
	Kind ResolveErrorKind
	Name string
}

func (e *ResolveError) Error() string {
	switch e.Kind {
	case KindCyclic:
		return fmt.Sprintf("cyclic snippet reference involving %q", e.Name)
	case KindUnknownReference:
		return fmt.Sprintf("unknown profile %q", e.Name)
	default:
		return fmt.Sprintf("resolve error for %q", e.Name)
	}
}

// TabStopCollisionError reports two explicit tab stops claiming the same
// number. Collisions are surfaced rather than silently renumbered, since
// renumbering could move the caret somewhere the author did not ask for.
type TabStopCollisionError struct {
	Number int
}

func (e *TabStopCollisionError) Error() string {
	return fmt.Sprintf("tab stop %d is used more than once", e.Number)
}
