package render

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/dacrab/profilegen/pkg/github"
)

const (
	defaultNoProjects = "No public projects yet."

	// descriptionLimit bounds free-text repository descriptions in list
	// sections.
	descriptionLimit = 120
)

// LatestProjects renders the newest non-fork public repositories, newest
// first by creation time, capped at limit. A limit of zero or less disables
// the section and renders the empty state.
func LatestProjects(repos []github.Repository, limit int, emptyMsg string, now time.Time) string {
	if limit <= 0 {
		return orDefault(emptyMsg, defaultNoProjects)
	}

	public := make([]github.Repository, 0, len(repos))
	for _, r := range repos {
		if r.Fork || r.Private {
			continue
		}
		public = append(public, r)
	}
	sort.SliceStable(public, func(i, j int) bool {
		return public[i].CreatedAt.After(public[j].CreatedAt)
	})
	if len(public) > limit {
		public = public[:limit]
	}

	if len(public) == 0 {
		return orDefault(emptyMsg, defaultNoProjects)
	}

	var b strings.Builder
	for i, r := range public {
		desc := orDefault(Truncate(r.Description, descriptionLimit), "No description provided")
		fmt.Fprintf(&b, "**%d.** [%s](%s) %s `%s`  \n%s  \n⭐ %d · 🍴 %d · Updated %s\n\n",
			i+1, r.Name, r.HTMLURL,
			languageEmoji(r.Language), orDefault(r.Language, "Misc"),
			desc, r.Stars, r.Forks, TimeAgo(r.UpdatedAt, now))
	}
	return strings.TrimRight(b.String(), "\n")
}
