package uritemplate

import "strings"

// expandTemplate renders a scanned template against vars. When strict
// is true the names of undefined variables are collected and returned
// as an UndefinedVariableError alongside the partial result.
func expandTemplate(raw string, vars Values, strict bool) (string, error) {
	segs, err := scan(raw)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.Grow(len(raw))
	var missing []string

	for _, seg := range segs {
		if !seg.expression {
			b.WriteString(seg.text)
			continue
		}
		expanded, miss, err := expandExpression(seg, vars)
		if err != nil {
			return "", err
		}
		b.WriteString(expanded)
		if strict {
			missing = append(missing, miss...)
		}
	}

	if len(missing) > 0 {
		return b.String(), &UndefinedVariableError{Names: missing}
	}
	return b.String(), nil
}

// expandExpression renders one {...} expression. Undefined variables
// are skipped and reported back by name; the expression prefix is
// emitted only when at least one variable contributed.
func expandExpression(seg segment, vars Values) (string, []string, error) {
	op, list := lookupOperator(seg.text)
	specs, err := parseVarSpecs(list, seg.pos+len(seg.text)-len(list))
	if err != nil {
		return "", nil, err
	}

	var parts []string
	var missing []string
	for _, spec := range specs {
		value := vars[spec.Name]
		if !value.Defined() {
			missing = append(missing, spec.Name)
			continue
		}
		if part, ok := op.expand(spec, value); ok {
			parts = append(parts, part)
		}
	}

	if len(parts) == 0 {
		return "", missing, nil
	}
	return op.prefix + strings.Join(parts, op.joiner), missing, nil
}

// expand renders one variable specification against a defined value.
// The boolean is false when the operator suppresses the contribution
// entirely: empty lists vanish under label and path expansion, empty
// maps under query expansion.
func (op operator) expand(spec VarSpec, v Value) (string, bool) {
	switch v.kind {
	case KindString:
		return op.expandString(spec, v.str), true
	case KindList:
		return op.expandList(spec, v.list)
	case KindMap:
		return op.expandMap(spec, v)
	}
	return "", false
}

// expandString renders a scalar. The :N prefix modifier truncates the
// raw value before encoding, so a truncated value never ends mid
// percent-triplet.
func (op operator) expandString(spec VarSpec, s string) string {
	if spec.MaxLength > 0 {
		s = truncate(s, spec.MaxLength)
	}
	encoded := escape(s, op.allowReserved)
	if op.named {
		return op.pair(spec.Name, encoded)
	}
	return encoded
}

// expandList renders a list value. The prefix modifier does not apply
// to lists and is ignored.
func (op operator) expandList(spec VarSpec, items []string) (string, bool) {
	if len(items) == 0 && (op.symbol == '.' || op.symbol == '/') {
		return "", false
	}

	encoded := make([]string, len(items))
	for i, item := range items {
		encoded[i] = escape(item, op.allowReserved)
	}

	if spec.Explode {
		if op.named {
			for i, item := range encoded {
				encoded[i] = spec.Name + "=" + item
			}
		}
		return strings.Join(encoded, op.joiner), true
	}

	joined := strings.Join(encoded, ",")
	if op.named {
		return op.pair(spec.Name, joined), true
	}
	return joined, true
}

// expandMap renders an associative value with keys in sorted order.
// Exploded pairs render as key=value, replacing the variable name
// even under named forms.
func (op operator) expandMap(spec VarSpec, v Value) (string, bool) {
	if len(v.pairs) == 0 && op.symbol == '?' {
		return "", false
	}

	keys := v.keys()
	if spec.Explode {
		pairs := make([]string, len(keys))
		for i, k := range keys {
			pairs[i] = escape(k, op.allowReserved) + "=" + escape(v.pairs[k], op.allowReserved)
		}
		return strings.Join(pairs, op.joiner), true
	}

	flat := make([]string, 0, 2*len(keys))
	for _, k := range keys {
		flat = append(flat, escape(k, op.allowReserved), escape(v.pairs[k], op.allowReserved))
	}
	joined := strings.Join(flat, ",")
	if op.named {
		return op.pair(spec.Name, joined), true
	}
	return joined, true
}

// pair renders a named form's contribution for an already encoded
// value, applying the operator's empty-value form.
func (op operator) pair(name, encoded string) string {
	if encoded == "" {
		return name + op.emptySuffix
	}
	return name + "=" + encoded
}
