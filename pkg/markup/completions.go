// completions.go carries the static completion dictionaries: which
// attributes apply to a tag and which values apply to an attribute.
package markup

import "strings"

// globalAttributes apply to every element.
var globalAttributes = []string{
	"accesskey", "class", "contenteditable", "dir", "draggable", "hidden",
	"id", "lang", "spellcheck", "style", "tabindex", "title",
}

// elementAttributes lists element-specific attributes by tag name.
var elementAttributes = map[string][]string{
	"a":        {"href", "target", "rel", "download", "hreflang", "type"},
	"area":     {"alt", "coords", "href", "shape", "target"},
	"audio":    {"src", "autoplay", "controls", "loop", "muted", "preload"},
	"button":   {"type", "name", "value", "disabled", "autofocus", "form"},
	"form":     {"action", "method", "enctype", "name", "target", "novalidate"},
	"iframe":   {"src", "name", "width", "height", "sandbox", "loading"},
	"img":      {"src", "alt", "width", "height", "srcset", "sizes", "loading"},
	"input":    {"type", "name", "value", "placeholder", "required", "disabled", "readonly", "autofocus", "min", "max", "step", "pattern"},
	"label":    {"for", "form"},
	"link":     {"rel", "href", "type", "media", "sizes", "crossorigin"},
	"meta":     {"name", "content", "charset", "http-equiv"},
	"ol":       {"start", "reversed", "type"},
	"option":   {"value", "selected", "disabled", "label"},
	"script":   {"src", "type", "async", "defer", "crossorigin", "integrity"},
	"select":   {"name", "multiple", "size", "required", "disabled"},
	"source":   {"src", "srcset", "type", "media", "sizes"},
	"table":    {"border"},
	"td":       {"colspan", "rowspan", "headers"},
	"textarea": {"name", "rows", "cols", "placeholder", "required", "readonly", "wrap"},
	"th":       {"colspan", "rowspan", "headers", "scope"},
	"video":    {"src", "poster", "width", "height", "autoplay", "controls", "loop", "muted"},
}

// attributeValues lists known values for enumerated attributes.
var attributeValues = map[string][]string{
	"autocomplete":    {"on", "off"},
	"contenteditable": {"true", "false"},
	"crossorigin":     {"anonymous", "use-credentials"},
	"dir":             {"ltr", "rtl", "auto"},
	"draggable":       {"true", "false"},
	"enctype":         {"application/x-www-form-urlencoded", "multipart/form-data", "text/plain"},
	"loading":         {"eager", "lazy"},
	"method":          {"get", "post", "dialog"},
	"preload":         {"none", "metadata", "auto"},
	"rel":             {"alternate", "author", "icon", "license", "next", "nofollow", "noopener", "noreferrer", "prev", "stylesheet"},
	"shape":           {"rect", "circle", "poly", "default"},
	"target":          {"_blank", "_self", "_parent", "_top"},
	"type": {
		"button", "checkbox", "color", "date", "datetime-local", "email",
		"file", "hidden", "image", "month", "number", "password", "radio",
		"range", "reset", "search", "submit", "tel", "text", "time", "url", "week",
	},
	"wrap": {"soft", "hard"},
}

// AttributesFor returns the completion candidates for attributes of the
// given tag: element-specific attributes first, then globals.
func AttributesFor(tag string) []string {
	tag = strings.ToLower(tag)
	specific := elementAttributes[tag]
	out := make([]string, 0, len(specific)+len(globalAttributes))
	out = append(out, specific...)
	out = append(out, globalAttributes...)
	return out
}

// ValuesFor returns the known values of an attribute, or nil for
// free-form attributes.
func ValuesFor(attr string) []string {
	return attributeValues[strings.ToLower(attr)]
}
