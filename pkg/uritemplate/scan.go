package uritemplate

import "strings"

// segment is one span of a template: either literal text, copied to
// output verbatim, or the body of a {...} expression with the braces
// stripped.
type segment struct {
	expression bool
	text       string
	pos        int // byte offset of text within the template
}

// scan splits raw into an alternating sequence of literal and
// expression segments. It validates brace structure only; expression
// bodies are parsed later by parseVarSpecs.
func scan(raw string) ([]segment, error) {
	var segs []segment

	for i := 0; i < len(raw); {
		switch raw[i] {
		case '{':
			rest := raw[i+1:]
			end := strings.IndexByte(rest, '}')
			if end < 0 {
				return nil, &ParseError{Pos: i, Reason: "unterminated expression"}
			}
			body := rest[:end]
			if nested := strings.IndexByte(body, '{'); nested >= 0 {
				return nil, &ParseError{Pos: i + 1 + nested, Reason: "nested '{' inside expression"}
			}
			segs = append(segs, segment{expression: true, text: body, pos: i + 1})
			i += end + 2
		case '}':
			return nil, &ParseError{Pos: i, Reason: "'}' outside expression"}
		default:
			end := strings.IndexAny(raw[i:], "{}")
			if end < 0 {
				end = len(raw) - i
			}
			segs = append(segs, segment{text: raw[i : i+end], pos: i})
			i += end
		}
	}
	return segs, nil
}
