package uritemplate

import "fmt"

// Template is an immutable RFC 6570 URI template.
//
// Construction never validates: malformed templates surface a
// *ParseError from Validate, Variables, Expand, or Extract instead.
// Template is a comparable value; two templates are equal exactly
// when their raw text is equal, so Template works as a map key.
type Template struct {
	raw string
}

// New creates a template from its raw text.
//
// Example:
//
//	tmpl := uritemplate.New("https://api.example.com/users/{user}{?page}")
func New(raw string) Template {
	return Template{raw: raw}
}

// String returns the raw template text.
func (t Template) String() string {
	return t.raw
}

// Validate checks the template for malformed expressions: unbalanced
// braces, empty variable names, and invalid modifiers. A nil return
// guarantees Expand and Extract will not fail on the template itself.
func (t Template) Validate() error {
	_, err := t.specs()
	return err
}

// Variables returns the variable names referenced by the template, in
// order of appearance. Duplicates are preserved, and a :N prefix
// modifier stays attached to its name; only the explode star is
// stripped. This mirrors how Extract keys its result map.
//
// Example:
//
//	tmpl := uritemplate.New("{scheme}://{host}{/segments*}{?q,q}")
//	names, _ := tmpl.Variables()
//	// names: ["scheme", "host", "segments", "q", "q"]
func (t Template) Variables() ([]string, error) {
	specs, err := t.specs()
	if err != nil {
		return nil, err
	}
	names := make([]string, len(specs))
	for i, spec := range specs {
		names[i] = spec.raw
	}
	return names, nil
}

// VarSpecs returns the parsed variable specifications of the
// template, in order of appearance.
func (t Template) VarSpecs() ([]VarSpec, error) {
	return t.specs()
}

// specs parses every expression body and flattens the result.
func (t Template) specs() ([]VarSpec, error) {
	segs, err := scan(t.raw)
	if err != nil {
		return nil, err
	}
	var specs []VarSpec
	for _, seg := range segs {
		if !seg.expression {
			continue
		}
		_, list := lookupOperator(seg.text)
		parsed, err := parseVarSpecs(list, seg.pos+len(seg.text)-len(list))
		if err != nil {
			return nil, err
		}
		specs = append(specs, parsed...)
	}
	return specs, nil
}

// Expand renders the template against vars.
//
// Expansion is total: undefined variables contribute nothing, and the
// only possible error is a *ParseError for a malformed template.
//
// Example:
//
//	tmpl := uritemplate.New("/users/{user}/repos{?page}")
//	uri, err := tmpl.Expand(uritemplate.Values{
//	    "user": uritemplate.String("alice"),
//	    "page": uritemplate.String("2"),
//	})
//	// uri: "/users/alice/repos?page=2"
func (t Template) Expand(vars Values) (string, error) {
	return expandTemplate(t.raw, vars, false)
}

// ExpandStrict renders the template like Expand but additionally
// returns an *UndefinedVariableError naming every variable that had
// no defined value. The partially expanded URI is returned alongside
// the error.
func (t Template) ExpandStrict(vars Values) (string, error) {
	return expandTemplate(t.raw, vars, true)
}

// MustExpand renders the template and panics on error. Use it for
// templates known to be well-formed at compile time.
//
// Example:
//
//	uri := uritemplate.New("/users/{user}").MustExpand(uritemplate.Values{
//	    "user": uritemplate.String("alice"),
//	})
func (t Template) MustExpand(vars Values) string {
	uri, err := t.Expand(vars)
	if err != nil {
		panic(fmt.Sprintf("uritemplate: %v", err))
	}
	return uri
}

// Extract matches uri against the template and recovers variable
// values, percent-decoded. The match is anchored: the whole URI must
// be produced by the template, not merely contain it.
//
// A URI that does not match returns ErrNoMatch. When the same
// variable name appears in several expressions, the last occurrence
// wins. Values captured for operator expressions are greedy and may
// include the operator's own punctuation; exact inversion holds only
// for simple expressions.
//
// Example:
//
//	tmpl := uritemplate.New("https://example.com/users/{user}/repos/{repo}")
//	vars, err := tmpl.Extract("https://example.com/users/alice/repos/uritemplate")
//	// vars: map[user:alice repo:uritemplate]
func (t Template) Extract(uri string) (map[string]string, error) {
	return extractValues(t.raw, uri)
}
