// profile.go defines syntax profiles: the formatting preferences applied
// while rendering a resolved tree.
package abbr

import "strings"

// Case controls letter casing of tag and attribute names.
type Case int

const (
	CaseLower Case = iota
	CaseUpper
	CaseAsIs
)

// SelfClosingStyle controls how void elements are terminated.
type SelfClosingStyle int

const (
	SelfClosingXHTML SelfClosingStyle = iota // <br />
	SelfClosingHTML                          // <br>
	SelfClosingXML                           // <br/>
)

// QuoteStyle controls the quote character around attribute values.
type QuoteStyle int

const (
	QuotesDouble QuoteStyle = iota
	QuotesSingle
)

// Profile is an immutable bundle of formatting preferences. It is resolved
// once per expansion call and never mutated mid-expansion.
type Profile struct {
	TagCase     Case
	AttrCase    Case
	SelfClosing SelfClosingStyle
	Indent      string
	Quotes      QuoteStyle
}

// DefaultProfile returns the profile used when nothing else is configured:
// lowercase names, XHTML-style self-closing, tab indentation, double quotes.
func DefaultProfile() Profile {
	return Profile{Indent: "\t"}
}

// BuiltinProfiles returns the named profiles known out of the box.
func BuiltinProfiles() map[string]Profile {
	return map[string]Profile{
		"html":  {SelfClosing: SelfClosingHTML, Indent: "\t"},
		"xhtml": {SelfClosing: SelfClosingXHTML, Indent: "\t"},
		"xml":   {SelfClosing: SelfClosingXML, Indent: "\t"},
	}
}

func (p Profile) tagName(name string) string  { return applyCase(name, p.TagCase) }
func (p Profile) attrName(name string) string { return applyCase(name, p.AttrCase) }

func (p Profile) quote() byte {
	if p.Quotes == QuotesSingle {
		return '\''
	}
	return '"'
}

// selfClose returns the terminator for a void element's open tag.
func (p Profile) selfClose() string {
	switch p.SelfClosing {
	case SelfClosingHTML:
		return ">"
	case SelfClosingXML:
		return "/>"
	default:
		return " />"
	}
}

func applyCase(s string, c Case) string {
	switch c {
	case CaseUpper:
		return strings.ToUpper(s)
	case CaseLower:
		return strings.ToLower(s)
	default:
		return s
	}
}
