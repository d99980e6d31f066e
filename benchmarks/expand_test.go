package benchmarks

import (
	"testing"

	"github.com/randalmurphal/uritemplate/pkg/uritemplate"
)

// BenchmarkExpand_Simple expands a single simple expression.
func BenchmarkExpand_Simple(b *testing.B) {
	tmpl := uritemplate.New("/users/{user}")
	vars := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Expand(vars)
	}
}

// BenchmarkExpand_Query_2 expands a query expression with two variables.
func BenchmarkExpand_Query_2(b *testing.B) {
	tmpl := uritemplate.New("/repos{?page,per_page}")
	vars := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Expand(vars)
	}
}

// BenchmarkExpand_ExplodedList expands an exploded path segment list.
func BenchmarkExpand_ExplodedList(b *testing.B) {
	tmpl := uritemplate.New("{/segments*}")
	vars := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Expand(vars)
	}
}

// BenchmarkExpand_ExplodedMap expands an exploded query map.
func BenchmarkExpand_ExplodedMap(b *testing.B) {
	tmpl := uritemplate.New("/search{?opts*}")
	vars := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Expand(vars)
	}
}

// BenchmarkExpand_Encoding expands a value that needs heavy percent-encoding.
func BenchmarkExpand_Encoding(b *testing.B) {
	tmpl := uritemplate.New("/files/{path}")
	vars := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Expand(vars)
	}
}

// BenchmarkExpand_RealWorld expands a multi-expression API template.
func BenchmarkExpand_RealWorld(b *testing.B) {
	tmpl := uritemplate.New("https://api.github.com/users/{user}/repos/{repo}{?page,per_page}")
	vars := benchValues()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = tmpl.Expand(vars)
	}
}

// BenchmarkValuesOf measures coercion from untyped maps.
func BenchmarkValuesOf(b *testing.B) {
	raw := map[string]any{
		"user":     "alice",
		"page":     2,
		"active":   true,
		"segments": []string{"api", "v2", "search"},
		"opts":     map[string]string{"q": "golang", "lang": "en"},
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = uritemplate.ValuesOf(raw)
	}
}

// Helper functions

// benchValues returns a fixed variable set covering the common shapes.
func benchValues() uritemplate.Values {
	return uritemplate.Values{
		"user":     uritemplate.String("alice"),
		"repo":     uritemplate.String("uritemplate"),
		"page":     uritemplate.String("2"),
		"per_page": uritemplate.String("50"),
		"segments": uritemplate.List("api", "v2", "search", "code", "results"),
		"opts":     uritemplate.Map(map[string]string{"q": "golang", "lang": "en", "sort": "stars"}),
		"path":     uritemplate.String("/code/go projects/ünïcode"),
	}
}
