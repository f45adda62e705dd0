package langstats

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/dacrab/profilegen/pkg/github"
)

// fakeFetcher serves canned repository pages and language breakdowns.
type fakeFetcher struct {
	pages     [][]github.Repository
	languages map[string]map[string]int64
	langErr   map[string]error
	langCalls []string
}

func (f *fakeFetcher) Repos(_ context.Context, _ string, page, _ int) ([]github.Repository, error) {
	if page-1 >= len(f.pages) {
		return nil, nil
	}
	return f.pages[page-1], nil
}

func (f *fakeFetcher) Languages(_ context.Context, fullName string) (map[string]int64, error) {
	f.langCalls = append(f.langCalls, fullName)
	if err := f.langErr[fullName]; err != nil {
		return nil, err
	}
	return f.languages[fullName], nil
}

func repo(fullName string, fork, private bool) github.Repository {
	return github.Repository{FullName: fullName, Fork: fork, Private: private}
}

func TestTotalsRanked(t *testing.T) {
	totals := NewTotals()
	totals.Add("Go", 300)
	totals.Add("Python", 100)
	totals.Add("Rust", 300)

	want := []string{"Go", "Rust", "Python"}
	if got := totals.Ranked(); !reflect.DeepEqual(got, want) {
		t.Errorf("Ranked() = %v, want %v (ties keep first-seen order)", got, want)
	}
}

func TestTotalsAccumulates(t *testing.T) {
	totals := NewTotals()
	totals.Add("Go", 100)
	totals.Add("Go", 50)

	if got := totals.Total("Go"); got != 150 {
		t.Errorf("Total(Go) = %d, want 150", got)
	}
	if totals.Len() != 1 {
		t.Errorf("Len() = %d, want 1", totals.Len())
	}
}

func TestTableResolve(t *testing.T) {
	table := Table{"Go": "go", "C++": "cpp"}

	tests := []struct {
		label    string
		want     string
		wantOK   bool
	}{
		{"Go", "go", true},
		{"go", "go", true},
		{"GO", "go", true},
		{"C++", "cpp", true},
		{"Brainfuck", "", false},
	}

	for _, tt := range tests {
		got, ok := table.Resolve(tt.label)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Resolve(%q) = %q, %v; want %q, %v", tt.label, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestResolveDropsUnmappedAndCaps(t *testing.T) {
	totals := NewTotals()
	totals.Add("Go", 300)
	totals.Add("Python", 100)
	totals.Add("Rust", 300)

	table := Table{"Go": "go", "Rust": "rust"}
	want := []string{"go", "rust"}
	if got := Resolve(totals, table, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("Resolve() = %v, want %v", got, want)
	}
}

func TestRank(t *testing.T) {
	f := &fakeFetcher{
		pages: [][]github.Repository{{
			repo("u/a", false, false),
			repo("u/forked", true, false),
			repo("u/secret", false, true),
			repo("u/b", false, false),
		}},
		languages: map[string]map[string]int64{
			"u/a": {"Go": 200, "Shell": 10},
			"u/b": {"Go": 100, "Rust": 500},
		},
	}

	slugs, err := Rank(context.Background(), f, "u", Options{Limit: 3})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}

	// Rust 500, Go 300, Shell 10.
	want := []string{"rust", "go", "bash"}
	if !reflect.DeepEqual(slugs, want) {
		t.Errorf("Rank() = %v, want %v", slugs, want)
	}

	// Forked and private repositories must never cost a language request.
	for _, call := range f.langCalls {
		if call == "u/forked" || call == "u/secret" {
			t.Errorf("Languages fetched for excluded repository %s", call)
		}
	}
}

func TestRankSampleCap(t *testing.T) {
	f := &fakeFetcher{
		pages: [][]github.Repository{{
			repo("u/a", false, false),
			repo("u/b", false, false),
			repo("u/c", false, false),
		}},
		languages: map[string]map[string]int64{
			"u/a": {"Go": 100},
			"u/b": {"Rust": 100},
			"u/c": {"Python": 100},
		},
	}

	_, err := Rank(context.Background(), f, "u", Options{SampleCap: 2})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(f.langCalls) != 2 {
		t.Errorf("issued %d language requests, want 2 (sample cap)", len(f.langCalls))
	}
}

func TestRankSkipsFailedRepos(t *testing.T) {
	f := &fakeFetcher{
		pages: [][]github.Repository{{
			repo("u/a", false, false),
			repo("u/broken", false, false),
		}},
		languages: map[string]map[string]int64{
			"u/a": {"Go": 100},
		},
		langErr: map[string]error{
			"u/broken": errors.New("boom"),
		},
	}

	slugs, err := Rank(context.Background(), f, "u", Options{})
	if err != nil {
		t.Fatalf("Rank() error = %v, want individual failures absorbed", err)
	}
	if !reflect.DeepEqual(slugs, []string{"go"}) {
		t.Errorf("Rank() = %v, want [go]", slugs)
	}
}

func TestRankNoRepos(t *testing.T) {
	f := &fakeFetcher{}

	slugs, err := Rank(context.Background(), f, "u", Options{Limit: 5})
	if err != nil {
		t.Fatalf("Rank() error = %v", err)
	}
	if len(slugs) != 0 {
		t.Errorf("Rank() = %v, want empty", slugs)
	}
}

func TestRankIdempotent(t *testing.T) {
	newFetcher := func() *fakeFetcher {
		return &fakeFetcher{
			pages: [][]github.Repository{{
				repo("u/a", false, false),
				repo("u/b", false, false),
			}},
			languages: map[string]map[string]int64{
				"u/a": {"Go": 300, "Rust": 300},
				"u/b": {"Python": 100},
			},
		}
	}

	first, err := Rank(context.Background(), newFetcher(), "u", Options{})
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 10; i++ {
		again, err := Rank(context.Background(), newFetcher(), "u", Options{})
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("Rank() not deterministic: %v then %v", first, again)
		}
	}
}

func TestCollectReposStopsOnShortPage(t *testing.T) {
	full := make([]github.Repository, 100)
	for i := range full {
		full[i] = repo("u/x", false, false)
	}
	f := &fakeFetcher{pages: [][]github.Repository{full, {repo("u/last", false, false)}}}

	repos, err := CollectRepos(context.Background(), f, "u")
	if err != nil {
		t.Fatalf("CollectRepos() error = %v", err)
	}
	if len(repos) != 101 {
		t.Errorf("len(repos) = %d, want 101", len(repos))
	}
}
