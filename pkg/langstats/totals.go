package langstats

import (
	"sort"
	"strings"
)

// Totals accumulates per-category byte counts while remembering the order
// categories were first seen. Ranking ties are broken by that first-seen
// order, which keeps output deterministic across runs with identical input.
type Totals struct {
	order []string
	sums  map[string]int64
}

// NewTotals creates an empty accumulator.
func NewTotals() *Totals {
	return &Totals{sums: make(map[string]int64)}
}

// Add accumulates n bytes for the category label.
func (t *Totals) Add(label string, n int64) {
	if _, seen := t.sums[label]; !seen {
		t.order = append(t.order, label)
	}
	t.sums[label] += n
}

// Total returns the accumulated count for label.
func (t *Totals) Total(label string) int64 {
	return t.sums[label]
}

// Len returns the number of distinct categories.
func (t *Totals) Len() int {
	return len(t.order)
}

// Ranked returns the category labels sorted by total descending. Equal
// totals keep first-seen order (stable sort over insertion order).
func (t *Totals) Ranked() []string {
	ranked := make([]string, len(t.order))
	copy(ranked, t.order)
	sort.SliceStable(ranked, func(i, j int) bool {
		return t.sums[ranked[i]] > t.sums[ranked[j]]
	})
	return ranked
}

// Table maps category labels to presentation identifiers (icon slugs).
// Lookup is exact-match first, then case-insensitive.
type Table map[string]string

// Resolve maps label through the table. The second return is false when the
// label has no mapping; callers drop such categories silently.
func (t Table) Resolve(label string) (string, bool) {
	if slug, ok := t[label]; ok {
		return slug, true
	}
	for k, slug := range t {
		if strings.EqualFold(k, label) {
			return slug, true
		}
	}
	return "", false
}

// DefaultTable maps common GitHub language labels to icon slugs. Treated as
// swappable configuration: builders receive a Table explicitly and tests
// substitute their own.
var DefaultTable = Table{
	"JavaScript": "js",
	"TypeScript": "ts",
	"Python":     "py",
	"Java":       "java",
	"Go":         "go",
	"Rust":       "rust",
	"C":          "c",
	"C++":        "cpp",
	"C#":         "cs",
	"PHP":        "php",
	"Ruby":       "ruby",
	"Swift":      "swift",
	"Kotlin":     "kotlin",
	"Dart":       "dart",
	"HTML":       "html",
	"CSS":        "css",
	"SCSS":       "sass",
	"Shell":      "bash",
	"Lua":        "lua",
	"Haskell":    "haskell",
	"Elixir":     "elixir",
	"Svelte":     "svelte",
	"Vue":        "vuejs",
	"Astro":      "astro",
	"Zig":        "zig",
	"R":          "r",
	"Scala":      "scala",
	"Perl":       "perl",
	"Dockerfile": "docker",
}
