package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/dacrab/profilegen/pkg/github"
)

// recognizedEventTypes are the event kinds that indicate active work on a
// repository. Watch and fork events are deliberately excluded: starring
// someone else's project is not working on it.
var recognizedEventTypes = map[string]bool{
	"PushEvent":        true,
	"CreateEvent":      true,
	"PullRequestEvent": true,
}

const defaultNoActivity = "No active projects right now."

// RepoFetcher is the client subset used for best-effort description
// lookups. A nil fetcher skips the lookups entirely.
type RepoFetcher interface {
	Repo(ctx context.Context, fullName string) (*github.Repository, error)
}

// ActiveProjects renders the "currently working on" section from a raw
// event stream: recognized event types only, repositories deduplicated by
// first occurrence, capped at limit. A limit of zero or less disables the
// section and renders the empty state.
//
// Each line is enriched with the repository description when f is non-nil
// and the lookup succeeds; a failed lookup degrades that line, never the
// section.
func ActiveProjects(ctx context.Context, f RepoFetcher, events []github.Event, limit int, emptyMsg string) string {
	if limit <= 0 {
		return orDefault(emptyMsg, defaultNoActivity)
	}
	names := activeRepoNames(events, limit)
	if len(names) == 0 {
		return orDefault(emptyMsg, defaultNoActivity)
	}

	var b strings.Builder
	for i, name := range names {
		short := name
		if _, after, ok := strings.Cut(name, "/"); ok {
			short = after
		}

		desc := "Active development"
		if f != nil {
			if repo, err := f.Repo(ctx, name); err == nil && repo.Description != "" {
				desc = Truncate(repo.Description, 120)
			}
		}

		fmt.Fprintf(&b, "**%d.** [%s](https://github.com/%s) — %s\n", i+1, short, name, desc)
	}
	return strings.TrimRight(b.String(), "\n")
}

// activeRepoNames extracts the ordered, deduplicated repository names from
// the event stream. First occurrence wins; unrecognized event types are
// ignored; the result is bounded to limit entries.
func activeRepoNames(events []github.Event, limit int) []string {
	seen := make(map[string]bool)
	var names []string
	for _, ev := range events {
		if !recognizedEventTypes[ev.Type] || ev.Repo.Name == "" {
			continue
		}
		if seen[ev.Repo.Name] {
			continue
		}
		seen[ev.Repo.Name] = true
		names = append(names, ev.Repo.Name)
		if limit > 0 && len(names) == limit {
			break
		}
	}
	return names
}
