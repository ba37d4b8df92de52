// engine.go ties parser, resolver and renderer behind a configured engine.
package abbr

import (
	"fmt"
	"strings"
)

// Options configures an Engine. All fields are optional; zero values fall
// back to built-in defaults. The engine never reads ambient state: user
// snippets, profiles and syntax mappings are passed in here.
type Options struct {
	// Snippets maps names to abbreviation-syntax bodies, overriding
	// built-in dictionary entries of the same name.
	Snippets map[string]string
	// Profiles defines named profiles, merged over the built-in
	// html/xhtml/xml set.
	Profiles map[string]Profile
	// Syntaxes maps a syntax name (for example "html") to a profile name.
	Syntaxes map[string]string
	// DefaultProfile names the profile used when a call names none.
	DefaultProfile string
}

// Engine expands abbreviations. It is immutable after construction and
// safe to reuse across calls; each call is independent.
type Engine struct {
	dict           *Dictionary
	profiles       map[string]Profile
	syntaxes       map[string]string
	defaultProfile string
}

// New constructs an engine from options.
func New(opts Options) *Engine {
	profiles := BuiltinProfiles()
	for name, p := range opts.Profiles {
		profiles[name] = p
	}
	defaultProfile := opts.DefaultProfile
	if defaultProfile == "" {
		defaultProfile = "html"
	}
	return &Engine{
		dict:           NewDictionary(opts.Snippets),
		profiles:       profiles,
		syntaxes:       opts.Syntaxes,
		defaultProfile: defaultProfile,
	}
}

// Dictionary exposes the effective snippet dictionary.
func (e *Engine) Dictionary() *Dictionary { return e.dict }

// ProfileNamed resolves a profile by name. An empty name selects the
// configured default; an unknown name is a *ResolveError.
func (e *Engine) ProfileNamed(name string) (Profile, error) {
	if name == "" {
		name = e.defaultProfile
	}
	p, ok := e.profiles[name]
	if !ok {
		return Profile{}, &ResolveError{Kind: KindUnknownReference, Name: name}
	}
	return p, nil
}

// ProfileForSyntax resolves the profile mapped to a syntax name, falling
// back to the syntax name itself as a profile name.
func (e *Engine) ProfileForSyntax(syntax string) (Profile, error) {
	if mapped, ok := e.syntaxes[syntax]; ok {
		return e.ProfileNamed(mapped)
	}
	return e.ProfileNamed(syntax)
}

// Expand performs a one-shot parse, resolve and render of abbreviation
// under the named profile. Errors are returned for the caller to surface.
func (e *Engine) Expand(abbreviation, profileName string) (*ExpansionResult, error) {
	profile, err := e.ProfileNamed(profileName)
	if err != nil {
		return nil, err
	}
	return e.expand(abbreviation, profile)
}

// ExpandForSyntax is Expand with the profile chosen through the syntax
// mapping instead of by profile name.
func (e *Engine) ExpandForSyntax(abbreviation, syntax string) (*ExpansionResult, error) {
	profile, err := e.ProfileForSyntax(syntax)
	if err != nil {
		return nil, err
	}
	return e.expand(abbreviation, profile)
}

func (e *Engine) expand(abbreviation string, profile Profile) (*ExpansionResult, error) {
	root, err := Parse(abbreviation)
	if err != nil {
		return nil, err
	}
	resolved, err := Resolve(root, profile, e.dict)
	if err != nil {
		return nil, err
	}
	return Render(resolved, profile)
}

// Wrap expands abbreviation and places body as literal content of the
// deepest last element of the expansion. Multi-line bodies render as an
// indented block.
func (e *Engine) Wrap(abbreviation, body, profileName string) (*ExpansionResult, error) {
	profile, err := e.ProfileNamed(profileName)
	if err != nil {
		return nil, err
	}
	root, err := Parse(abbreviation)
	if err != nil {
		return nil, err
	}
	resolved, err := Resolve(root, profile, e.dict)
	if err != nil {
		return nil, err
	}

	body = strings.TrimRight(body, "\n")
	if body != "" {
		target := deepestLastElement(resolved.Children)
		if target == nil {
			return nil, fmt.Errorf("abbreviation %q has no element to wrap content in", abbreviation)
		}
		if len(target.Children) == 0 && target.Text == "" && !strings.Contains(body, "\n") {
			target.Text = body
			target.Raw = true
		} else {
			target.Children = append(target.Children, &ResolvedNode{Text: body, Raw: true})
		}
	}
	return Render(resolved, profile)
}
