// Package langstats aggregates a user's repository language statistics into
// a ranked list of icon slugs.
//
// The pipeline pages through the user's repositories, drops forks and
// private entries, fetches the per-repository language byte breakdown for a
// bounded sample, sums bytes per language, ranks languages by total, and
// maps the top entries through a curated lookup table. Languages without a
// mapping are dropped rather than rendered with a generic placeholder.
package langstats

import (
	"context"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/dacrab/profilegen/pkg/github"
)

const (
	// pageSize is the fixed repository listing page size.
	pageSize = 100

	// maxRepoFetch bounds how many repositories pagination retrieves in
	// total, capping worst-case request cost for very large accounts.
	maxRepoFetch = 300
)

// Fetcher is the subset of the GitHub client the pipeline needs.
type Fetcher interface {
	Repos(ctx context.Context, username string, page, perPage int) ([]github.Repository, error)
	Languages(ctx context.Context, fullName string) (map[string]int64, error)
}

// Options configures one ranking run.
type Options struct {
	// SampleCap bounds the number of per-repository language requests.
	SampleCap int

	// Limit caps the number of resolved slugs returned.
	Limit int

	// Table maps language labels to slugs. Nil means DefaultTable.
	Table Table

	// Logger for per-repository diagnostics. Nil means log.Default().
	Logger *log.Logger
}

func (o *Options) setDefaults() {
	if o.Table == nil {
		o.Table = DefaultTable
	}
	if o.Logger == nil {
		o.Logger = log.Default()
	}
}

// CollectRepos pages through username's repositories until maxRepoFetch
// entries have been fetched or a short page signals the last one. Forks and
// private repositories are dropped as they arrive.
func CollectRepos(ctx context.Context, f Fetcher, username string) ([]github.Repository, error) {
	var repos []github.Repository
	for page := 1; (page-1)*pageSize < maxRepoFetch; page++ {
		batch, err := f.Repos(ctx, username, page, pageSize)
		if err != nil {
			return nil, err
		}
		for _, r := range batch {
			if r.Fork || r.Private {
				continue
			}
			repos = append(repos, r)
		}
		if len(batch) < pageSize {
			break
		}
	}
	return repos, nil
}

// Rank runs the full aggregation pipeline for username and returns the
// ordered slice of resolved icon slugs, possibly empty. A fetch failure for
// an individual repository skips that repository's contribution; only the
// initial listing can fail the whole call.
func Rank(ctx context.Context, f Fetcher, username string, opts Options) ([]string, error) {
	repos, err := CollectRepos(ctx, f, username)
	if err != nil {
		return nil, err
	}
	return RankRepos(ctx, f, repos, opts), nil
}

// RankRepos ranks an already-collected repository list. Callers that hold
// the listing for other purposes use this to avoid fetching it twice.
func RankRepos(ctx context.Context, f Fetcher, repos []github.Repository, opts Options) []string {
	opts.setDefaults()

	sample := repos
	if opts.SampleCap > 0 && len(sample) > opts.SampleCap {
		sample = sample[:opts.SampleCap]
	}

	totals := NewTotals()
	for _, repo := range sample {
		langs, err := f.Languages(ctx, repo.FullName)
		if err != nil {
			opts.Logger.Debug("skipping repository language breakdown",
				"repo", repo.FullName, "error", err)
			continue
		}
		// Iterate in sorted label order so first-seen order (the ranking
		// tie-break) does not depend on map iteration order.
		for _, label := range sortedKeys(langs) {
			totals.Add(label, langs[label])
		}
	}

	return Resolve(totals, opts.Table, opts.Limit)
}

func sortedKeys(m map[string]int64) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Resolve walks the ranked categories, maps each through table, drops the
// unmapped, and stops once limit slugs are collected. A limit of zero or
// less means no cap.
func Resolve(totals *Totals, table Table, limit int) []string {
	var slugs []string
	for _, label := range totals.Ranked() {
		slug, ok := table.Resolve(label)
		if !ok {
			continue
		}
		slugs = append(slugs, slug)
		if limit > 0 && len(slugs) == limit {
			break
		}
	}
	return slugs
}
