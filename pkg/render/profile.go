package render

import (
	"fmt"
	"strings"

	"github.com/dacrab/profilegen/pkg/github"
)

// Fallbacks are substituted when the fetched profile lacks a field.
type Fallbacks struct {
	Name string
	Bio  string
}

// ProfileIntro renders the greeting block: display name, bio, and the
// optional location/website/company lines. Missing fields take the
// configured fallback; lines without data are dropped entirely rather than
// rendered empty.
func ProfileIntro(profile *github.Profile, fb Fallbacks) string {
	name := orDefault(profile.Name, orDefault(fb.Name, profile.Login))
	bio := orDefault(profile.Bio, fb.Bio)

	var b strings.Builder
	fmt.Fprintf(&b, "## Hi there 👋 I'm %s\n\n", name)
	if bio != "" {
		fmt.Fprintf(&b, "%s\n\n", bio)
	}
	if profile.Location != "" {
		fmt.Fprintf(&b, "- 📍 Based in **%s**\n", profile.Location)
	}
	if profile.Company != "" {
		fmt.Fprintf(&b, "- 🏢 Working at **%s**\n", profile.Company)
	}
	if profile.Blog != "" {
		fmt.Fprintf(&b, "- 🌐 %s\n", normalizeWebsite(profile.Blog))
	}
	fmt.Fprintf(&b, "- 📦 %d public repositories · on GitHub since %d\n",
		profile.PublicRepos, profile.CreatedAt.Year())

	return strings.TrimRight(b.String(), "\n")
}
