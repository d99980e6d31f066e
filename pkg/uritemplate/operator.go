package uritemplate

// operator describes one RFC 6570 expansion form. The eight forms
// differ only in these attributes; all expansion logic is shared and
// driven by the table below.
type operator struct {
	// symbol is the expression's leading operator character, or 0 for
	// simple expansion.
	symbol byte
	// prefix is emitted once, before the first contribution, whenever
	// at least one variable in the expression is defined.
	prefix string
	// joiner separates the contributions of consecutive defined
	// variables, and the items of exploded lists and maps.
	joiner string
	// named is true for forms that render name=value pairs.
	named bool
	// emptySuffix replaces "=value" when a named form renders an
	// empty string: ";x" for path parameters but "?x=" for queries.
	emptySuffix string
	// allowReserved passes the characters :/?#[]@!$&'()*+,;= through
	// unencoded instead of percent-encoding them.
	allowReserved bool
}

// The operator table from RFC 6570 sections 3.2.2 through 3.2.9.
var (
	simpleExpansion = operator{joiner: ","}

	operators = [...]operator{
		{symbol: '+', joiner: ",", allowReserved: true},
		{symbol: '#', prefix: "#", joiner: ",", allowReserved: true},
		{symbol: '.', prefix: ".", joiner: "."},
		{symbol: '/', prefix: "/", joiner: "/"},
		{symbol: ';', prefix: ";", joiner: ";", named: true},
		{symbol: '?', prefix: "?", joiner: "&", named: true, emptySuffix: "="},
		{symbol: '&', prefix: "&", joiner: "&", named: true, emptySuffix: "="},
	}
)

// lookupOperator resolves the expansion form for an expression body
// and returns the body with the operator character removed. A body
// whose first character matches no operator is simple expansion.
func lookupOperator(body string) (operator, string) {
	if body == "" {
		return simpleExpansion, body
	}
	for _, op := range operators {
		if body[0] == op.symbol {
			return op, body[1:]
		}
	}
	return simpleExpansion, body
}
