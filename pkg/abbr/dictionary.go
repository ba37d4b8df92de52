// dictionary.go holds the snippet dictionary: built-in element definitions
// and alias snippets, overridable by user snippets from configuration.
package abbr

import "sort"

// Snippet is one dictionary entry. An alias snippet carries abbreviation
// syntax in Body and is re-parsed when spliced; an element snippet
// contributes default attributes and void-ness to a literal tag.
type Snippet struct {
	Body       string
	Attributes []Attribute
	Void       bool
}

// Dictionary resolves names to snippets, with user entries taking
// precedence over built-ins.
type Dictionary struct {
	builtin map[string]Snippet
	user    map[string]Snippet
}

// NewDictionary builds a dictionary from user snippets, whose values are
// abbreviation syntax bodies. A nil or empty map yields the built-ins only.
func NewDictionary(user map[string]string) *Dictionary {
	d := &Dictionary{builtin: builtinSnippets, user: make(map[string]Snippet, len(user))}
	for name, body := range user {
		d.user[name] = Snippet{Body: body}
	}
	return d
}

// Lookup returns the snippet for name. User snippets shadow built-ins.
func (d *Dictionary) Lookup(name string) (Snippet, bool) {
	if s, ok := d.user[name]; ok {
		return s, true
	}
	s, ok := d.builtin[name]
	return s, ok
}

// Entry describes one dictionary entry for listings.
type Entry struct {
	Name   string
	Body   string
	Source string // "builtin" or "user"
}

// Entries returns all effective entries sorted by name, with user
// overrides replacing built-ins.
func (d *Dictionary) Entries() []Entry {
	byName := make(map[string]Entry, len(d.builtin)+len(d.user))
	for name, s := range d.builtin {
		byName[name] = Entry{Name: name, Body: s.Body, Source: "builtin"}
	}
	for name, s := range d.user {
		byName[name] = Entry{Name: name, Body: s.Body, Source: "user"}
	}
	entries := make([]Entry, 0, len(byName))
	for _, e := range byName {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name < entries[j].Name })
	return entries
}

// voidElements are elements that never take a closing tag.
var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true,
	"hr": true, "img": true, "input": true, "link": true, "meta": true,
	"param": true, "source": true, "track": true, "wbr": true,
}

// builtinSnippets mixes element snippets (default attributes, void-ness)
// with alias snippets whose bodies are themselves abbreviation syntax.
var builtinSnippets = map[string]Snippet{
	// Element snippets. Empty attribute values become tab stops.
	"a":        {Attributes: []Attribute{{Name: "href"}}},
	"abbr":     {Attributes: []Attribute{{Name: "title"}}},
	"img":      {Attributes: []Attribute{{Name: "src"}, {Name: "alt"}}, Void: true},
	"input":    {Attributes: []Attribute{{Name: "type", Value: "text"}}, Void: true},
	"link":     {Attributes: []Attribute{{Name: "rel", Value: "stylesheet"}, {Name: "href"}}, Void: true},
	"meta":     {Void: true},
	"base":     {Attributes: []Attribute{{Name: "href"}}, Void: true},
	"label":    {Attributes: []Attribute{{Name: "for"}}},
	"option":   {Attributes: []Attribute{{Name: "value"}}},
	"iframe":   {Attributes: []Attribute{{Name: "src"}}},
	"form":     {Attributes: []Attribute{{Name: "action"}}},
	"textarea": {Attributes: []Attribute{{Name: "name"}, {Name: "cols", Value: "30"}, {Name: "rows", Value: "10"}}},

	// Alias snippets.
	"bq":    {Body: "blockquote"},
	"btn":   {Body: "button"},
	"fig":   {Body: "figure"},
	"figc":  {Body: "figcaption"},
	"ifr":   {Body: "iframe"},
	"emb":   {Body: "embed"},
	"obj":   {Body: "object"},
	"cap":   {Body: "caption"},
	"colg":  {Body: "colgroup"},
	"fst":   {Body: "fieldset"},
	"optg":  {Body: "optgroup"},
	"tarea": {Body: "textarea"},
	"leg":   {Body: "legend"},
	"sect":  {Body: "section"},
	"art":   {Body: "article"},
	"hdr":   {Body: "header"},
	"ftr":   {Body: "footer"},
	"adr":   {Body: "address"},
	"str":   {Body: "strong"},
	"prog":  {Body: "progress"},

	// Structural snippets containing abbreviation syntax.
	"ol+":    {Body: "ol>li"},
	"ul+":    {Body: "ul>li"},
	"dl+":    {Body: "dl>dt+dd"},
	"table+": {Body: "table>tr>td"},
	"tr+":    {Body: "tr>td"},
	"!":      {Body: "{<!DOCTYPE html>}+html>(head>meta[charset=UTF-8]+title{${1:Document}})+body"},
}
