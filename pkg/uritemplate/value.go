package uritemplate

import (
	"fmt"
	"sort"
)

// ValueKind discriminates the shapes a template variable can hold.
type ValueKind int

// Value kinds, in increasing structural order.
const (
	// KindUndefined is a value that contributes nothing to expansion.
	KindUndefined ValueKind = iota
	// KindString is a single scalar string.
	KindString
	// KindList is an ordered list of scalar strings.
	KindList
	// KindMap is an associative array of string keys and scalar values.
	KindMap
)

// String returns the kind name for debugging output.
func (k ValueKind) String() string {
	switch k {
	case KindUndefined:
		return "undefined"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	default:
		return fmt.Sprintf("ValueKind(%d)", int(k))
	}
}

// Value is one variable value supplied to Expand. Construct values
// with String, List, and Map; the zero Value is undefined and behaves
// exactly like an absent map entry.
type Value struct {
	kind  ValueKind
	str   string
	list  []string
	pairs map[string]string
}

// Values maps variable names to their values for expansion.
//
// A missing key and an explicit undefined Value are equivalent: both
// elide the variable from the expansion result.
type Values map[string]Value

// String creates a scalar string value.
//
// Note that an empty string is a defined value: {?q} expands to "?q="
// for String(""), but to "" for an undefined variable.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// List creates an ordered list value. The items are copied.
func List(items ...string) Value {
	v := Value{kind: KindList}
	if items != nil {
		v.list = make([]string, len(items))
		copy(v.list, items)
	}
	return v
}

// Map creates an associative value. The pairs are copied.
func Map(pairs map[string]string) Value {
	v := Value{kind: KindMap, pairs: make(map[string]string, len(pairs))}
	for k, val := range pairs {
		v.pairs[k] = val
	}
	return v
}

// Undefined creates an explicitly undefined value. It expands to
// nothing, exactly as if the variable were absent from the Values map.
func Undefined() Value {
	return Value{}
}

// Kind returns the value's shape.
func (v Value) Kind() ValueKind {
	return v.kind
}

// Defined reports whether the value contributes to expansion.
func (v Value) Defined() bool {
	return v.kind != KindUndefined
}

// keys returns the map keys in sorted order so expansion output is
// deterministic across runs.
func (v Value) keys() []string {
	keys := make([]string, 0, len(v.pairs))
	for k := range v.pairs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// ValuesOf converts a plain map into Values, coercing Go types to
// template value shapes:
//
//   - string, bool, and numeric types become scalar strings
//   - []string and []any become lists
//   - map[string]string and map[string]any become associative values
//   - nil becomes an undefined value
//   - Value is passed through unchanged
//
// Elements of lists and maps must themselves be scalars. Any other
// type is an error.
//
// Example:
//
//	vars, err := uritemplate.ValuesOf(map[string]any{
//	    "user": "alice",
//	    "page": 3,
//	    "tags": []string{"go", "http"},
//	})
func ValuesOf(vars map[string]any) (Values, error) {
	if vars == nil {
		return nil, nil
	}

	values := make(Values, len(vars))
	for name, raw := range vars {
		v, err := valueOf(raw)
		if err != nil {
			return nil, fmt.Errorf("variable %q: %w", name, err)
		}
		values[name] = v
	}
	return values, nil
}

// valueOf coerces a single Go value into a template value.
func valueOf(raw any) (Value, error) {
	switch val := raw.(type) {
	case nil:
		return Undefined(), nil
	case Value:
		return val, nil
	case string:
		return String(val), nil
	case []string:
		return List(val...), nil
	case []any:
		items := make([]string, len(val))
		for i, item := range val {
			s, err := scalarOf(item)
			if err != nil {
				return Value{}, fmt.Errorf("list item %d: %w", i, err)
			}
			items[i] = s
		}
		return List(items...), nil
	case map[string]string:
		return Map(val), nil
	case map[string]any:
		pairs := make(map[string]string, len(val))
		for k, item := range val {
			s, err := scalarOf(item)
			if err != nil {
				return Value{}, fmt.Errorf("key %q: %w", k, err)
			}
			pairs[k] = s
		}
		return Map(pairs), nil
	default:
		s, err := scalarOf(raw)
		if err != nil {
			return Value{}, err
		}
		return String(s), nil
	}
}

// scalarOf renders a Go value as a scalar string. Only types with an
// unambiguous string form are accepted.
func scalarOf(raw any) (string, error) {
	switch val := raw.(type) {
	case string:
		return val, nil
	case bool,
		int, int8, int16, int32, int64,
		uint, uint8, uint16, uint32, uint64,
		float32, float64:
		return fmt.Sprintf("%v", val), nil
	default:
		return "", fmt.Errorf("unsupported value type %T", raw)
	}
}
