package render

import (
	"fmt"
	"strings"

	"github.com/dacrab/profilegen/pkg/github"
)

const (
	defaultNoPulls = "No recent pull requests."

	// titleLimit bounds pull request titles.
	titleLimit = 80
)

// PullRequests renders the recent pull request list, capped at limit.
// A limit of zero or less disables the section and renders the empty state.
func PullRequests(prs []github.PullRequest, limit int, emptyMsg string) string {
	if limit <= 0 || len(prs) == 0 {
		return orDefault(emptyMsg, defaultNoPulls)
	}
	if len(prs) > limit {
		prs = prs[:limit]
	}

	var b strings.Builder
	for _, pr := range prs {
		repo := github.RepoName(pr.RepositoryURL)
		fmt.Fprintf(&b, "- [%s](%s) on [%s](https://github.com/%s)",
			Truncate(pr.Title, titleLimit), pr.HTMLURL, repo, repo)
		if pr.State != "" {
			fmt.Fprintf(&b, " `%s`", pr.State)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
