package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/dacrab/profilegen/pkg/github"
)

// Stats renders the profile statistics table: follower counts from the
// profile, star/fork/language totals aggregated over the public non-fork
// repositories, and the number of push events recorded this year.
func Stats(profile *github.Profile, repos []github.Repository, events []github.Event, now time.Time) string {
	var totalStars, totalForks int
	languages := make(map[string]bool)
	for _, r := range repos {
		if r.Fork || r.Private {
			continue
		}
		totalStars += r.Stars
		totalForks += r.Forks
		if r.Language != "" {
			languages[r.Language] = true
		}
	}

	pushesThisYear := 0
	for _, ev := range events {
		if ev.Type == "PushEvent" && ev.CreatedAt.Year() == now.Year() {
			pushesThisYear++
		}
	}

	var b strings.Builder
	b.WriteString("| Metric | Value | Metric | Value |\n")
	b.WriteString("|:---:|:---:|:---:|:---:|\n")
	fmt.Fprintf(&b, "| 📚 Public repositories | **%d** | 👥 Followers | **%d** |\n",
		profile.PublicRepos, profile.Followers)
	fmt.Fprintf(&b, "| ➡️ Following | **%d** | ⭐ Stars earned | **%d** |\n",
		profile.Following, totalStars)
	fmt.Fprintf(&b, "| 🍴 Forks of my work | **%d** | 💻 Languages used | **%d** |\n",
		totalForks, len(languages))
	fmt.Fprintf(&b, "| 🔥 Pushes this year | **%d** | 📅 Member since | **%d** |",
		pushesThisYear, profile.CreatedAt.Year())

	return b.String()
}
