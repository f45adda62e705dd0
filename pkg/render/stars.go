package render

import (
	"fmt"
	"strings"

	"github.com/dacrab/profilegen/pkg/github"
)

const defaultNoStars = "No recent stars."

// StarredRepos renders the recently starred repositories, capped at limit.
// A limit of zero or less disables the section and renders the empty state.
// Private entries never appear in the public starred listing, but are
// filtered anyway in case a caller feeds a broader collection.
func StarredRepos(stars []github.Repository, limit int, emptyMsg string) string {
	if limit <= 0 {
		return orDefault(emptyMsg, defaultNoStars)
	}

	public := make([]github.Repository, 0, len(stars))
	for _, r := range stars {
		if r.Private {
			continue
		}
		public = append(public, r)
	}
	if len(public) > limit {
		public = public[:limit]
	}
	if len(public) == 0 {
		return orDefault(emptyMsg, defaultNoStars)
	}

	var b strings.Builder
	for _, r := range public {
		fmt.Fprintf(&b, "- [**%s**](%s) by [%s](%s) %s  \n  %s\n",
			r.Name, r.HTMLURL, r.Owner.Login, r.Owner.HTMLURL,
			languageEmoji(r.Language),
			orDefault(Truncate(r.Description, descriptionLimit), "No description available"))
	}
	return strings.TrimRight(b.String(), "\n")
}
