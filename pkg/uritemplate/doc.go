/*
Package uritemplate implements RFC 6570 URI Templates.

# Overview

uritemplate parses templates such as "https://api.example.com/users/{user}/repos{?page,per_page}"
and expands them against variable values, producing percent-encoded
URIs. It also runs templates in reverse: given a concrete URI, Extract
recovers the variable values the template would have expanded.

All eight expansion forms from RFC 6570 section 3.2 are supported:
simple ({var}), reserved ({+var}), fragment ({#var}), label ({.var}),
path segment ({/var}), path-style parameter ({;var}), form query
({?var}), and query continuation ({&var}), along with the prefix
(:N) and explode (*) modifiers.

# Basic Usage

Create a template and expand it:

	tmpl := uritemplate.New("https://example.com/search{?q,lang}")
	uri, err := tmpl.Expand(uritemplate.Values{
	    "q":    uritemplate.String("go uri templates"),
	    "lang": uritemplate.String("en"),
	})
	// uri: "https://example.com/search?q=go%20uri%20templates&lang=en"

Variables may hold scalars, lists, or maps:

	tmpl := uritemplate.New("/users/{user}/tags{/tags*}")
	uri, _ := tmpl.Expand(uritemplate.Values{
	    "user": uritemplate.String("alice"),
	    "tags": uritemplate.List("go", "http"),
	})
	// uri: "/users/alice/tags/go/http"

Plain Go maps convert through ValuesOf:

	vars, err := uritemplate.ValuesOf(map[string]any{
	    "user": "alice",
	    "tags": []string{"go", "http"},
	})

# Missing Variables

Undefined variables contribute nothing and are not an error:

	tmpl := uritemplate.New("/search{?q,page}")
	uri, _ := tmpl.Expand(uritemplate.Values{"q": uritemplate.String("x")})
	// uri: "/search?q=x"

ExpandStrict reports them instead:

	_, err := tmpl.ExpandStrict(uritemplate.Values{"q": uritemplate.String("x")})
	// err: "undefined variable: page"

# Extraction

Extract matches a URI against the template and recovers variable
values, percent-decoded:

	tmpl := uritemplate.New("https://example.com/users/{user}/repos/{repo}")
	vars, err := tmpl.Extract("https://example.com/users/alice/repos/uritemplate")
	// vars: map[user:alice repo:uritemplate]

A URI that does not match yields ErrNoMatch. Extraction is a best
effort inverse: expansion loses information (list joiners, encoding),
so round trips are only exact for simple scalar templates.

# Errors

Malformed templates (unbalanced braces, empty variable names, bad
modifiers) surface as *ParseError from Validate, Variables, Expand,
and Extract. The package never panics on malformed input; MustExpand
is the only panicking entry point and exists for static templates.

# Thread Safety

Template is an immutable value. All methods are safe for concurrent
use, and compiled extraction patterns are cached behind a lock so
repeated Extract calls on the same template reuse one compiled regexp.
*/
package uritemplate
