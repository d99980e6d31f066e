package uritemplate

import (
	"errors"
	"fmt"
	"strings"
)

// VarSpec is one comma-separated variable specification inside an
// expression: a variable name plus at most one modifier.
type VarSpec struct {
	// Name is the variable name with any modifier stripped.
	Name string
	// Explode is true when the variable carries the * modifier, which
	// expands each list item or map pair separately.
	Explode bool
	// MaxLength is the :N prefix modifier limiting a scalar to its
	// first N characters, or 0 when absent.
	MaxLength int

	raw string // the specification as written, minus any explode star
}

// parseVarSpecs parses the comma-separated variable list of an
// expression body. pos is the byte offset of list within the
// template, used for error positions.
func parseVarSpecs(list string, pos int) ([]VarSpec, error) {
	pieces := strings.Split(list, ",")
	specs := make([]VarSpec, 0, len(pieces))
	off := pos
	for _, piece := range pieces {
		spec, err := parseVarSpec(piece, off)
		if err != nil {
			return nil, err
		}
		specs = append(specs, spec)
		off += len(piece) + 1
	}
	return specs, nil
}

// parseVarSpec parses a single variable specification such as "var",
// "var:3", or "var*". The two modifiers are mutually exclusive.
func parseVarSpec(piece string, pos int) (VarSpec, error) {
	spec := VarSpec{raw: piece}

	rest := piece
	if strings.HasSuffix(rest, "*") {
		spec.Explode = true
		rest = rest[:len(rest)-1]
		spec.raw = rest
	}

	if name, length, found := strings.Cut(rest, ":"); found {
		if spec.Explode || strings.HasSuffix(name, "*") {
			return VarSpec{}, &ParseError{
				Pos:    pos,
				Reason: fmt.Sprintf("variable %q combines prefix and explode modifiers", piece),
			}
		}
		n, err := parsePrefixLength(length)
		if err != nil {
			return VarSpec{}, &ParseError{
				Pos:    pos,
				Reason: fmt.Sprintf("variable %q: %v", piece, err),
			}
		}
		spec.Name = name
		spec.MaxLength = n
	} else {
		spec.Name = rest
	}

	if spec.Name == "" {
		return VarSpec{}, &ParseError{Pos: pos, Reason: "empty variable name"}
	}
	return spec, nil
}

// parsePrefixLength validates a :N prefix modifier value. RFC 6570
// limits it to at most four digits, so valid lengths are 1 to 9999.
func parsePrefixLength(s string) (int, error) {
	if s == "" {
		return 0, errors.New("empty prefix length")
	}
	if len(s) > 4 {
		return 0, fmt.Errorf("prefix length %q exceeds 9999", s)
	}
	n := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("invalid prefix length %q", s)
		}
		n = n*10 + int(c-'0')
	}
	if n == 0 {
		return 0, errors.New("prefix length must be positive")
	}
	return n, nil
}
