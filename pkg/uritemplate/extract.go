package uritemplate

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// extractPattern is a compiled extraction pattern. names aligns
// one-to-one with the regexp's capture groups, in template order.
type extractPattern struct {
	re    *regexp.Regexp
	names []string
}

// patternCache is a thread-safe cache of compiled extraction patterns
// keyed by raw template text. Templates are immutable, so a cached
// pattern never goes stale. Compilation is double-checked under the
// write lock so concurrent extractors compile each template at most
// once.
type patternCache struct {
	mu       sync.RWMutex
	patterns map[string]*extractPattern
}

var extractCache = &patternCache{patterns: make(map[string]*extractPattern)}

// get returns the cached pattern for raw, compiling and storing it on
// first use. Compile errors are not cached; malformed templates are
// expected to be rare and fail fast anyway.
func (c *patternCache) get(raw string) (*extractPattern, error) {
	c.mu.RLock()
	p, ok := c.patterns[raw]
	c.mu.RUnlock()
	if ok {
		return p, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if p, ok := c.patterns[raw]; ok {
		return p, nil
	}

	p, err := compileExtraction(raw)
	if err != nil {
		return nil, err
	}
	c.patterns[raw] = p
	return p, nil
}

// compileExtraction builds the anchored regular expression that
// inverts a template. Literals match themselves exactly; every
// variable becomes one capture group. Simple expressions capture a
// conservative unreserved run, operator expressions capture greedily
// with groups separated by the operator's joiner.
func compileExtraction(raw string) (*extractPattern, error) {
	segs, err := scan(raw)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteByte('^')
	var names []string

	for _, seg := range segs {
		if !seg.expression {
			b.WriteString(regexp.QuoteMeta(seg.text))
			continue
		}

		op, list := lookupOperator(seg.text)
		specs, err := parseVarSpecs(list, seg.pos+len(seg.text)-len(list))
		if err != nil {
			return nil, err
		}

		group := `(.*)`
		if op.symbol == 0 {
			group = `([A-Za-z0-9%_-]+)`
		}
		groups := make([]string, len(specs))
		for i, spec := range specs {
			groups[i] = group
			names = append(names, spec.raw)
		}
		b.WriteString(strings.Join(groups, regexp.QuoteMeta(op.joiner)))
	}
	b.WriteByte('$')

	re, err := regexp.Compile(b.String())
	if err != nil {
		return nil, fmt.Errorf("compile extraction pattern for %q: %w", raw, err)
	}
	return &extractPattern{re: re, names: names}, nil
}

// extractValues matches uri against the template's pattern and maps
// capture groups back to variable names. When a name appears more
// than once in the template, the last capture wins.
func extractValues(raw, uri string) (map[string]string, error) {
	p, err := extractCache.get(raw)
	if err != nil {
		return nil, err
	}

	m := p.re.FindStringSubmatch(uri)
	if m == nil {
		return nil, ErrNoMatch
	}

	vars := make(map[string]string, len(p.names))
	for i, name := range p.names {
		vars[name] = unescape(m[i+1])
	}
	return vars, nil
}
