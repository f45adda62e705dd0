package render

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/dacrab/profilegen/pkg/github"
)

// ResolveProvider maps a social URL to a provider identifier by matching
// its host against DomainProviders: exact host match first (ignoring a
// leading "www."), then registrable-domain suffix match. The path and query
// never participate.
func ResolveProvider(rawURL string) (string, bool) {
	u, err := url.Parse(rawURL)
	if err != nil || u.Hostname() == "" {
		return "", false
	}
	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")

	if provider, ok := DomainProviders[host]; ok {
		return provider, true
	}
	for domain, provider := range DomainProviders {
		if strings.HasSuffix(host, "."+domain) {
			return provider, true
		}
	}
	return "", false
}

// socialLink is one resolved entry of the social section.
type socialLink struct {
	provider string
	badge    Badge
	url      string
}

// SocialLinks renders the badge row linking to the user's profiles.
//
// Sources, in order: the user's GitHub profile itself, the social accounts
// the API reports, the curated [social] links from the profile file, and
// the Twitter handle from the profile. Entries whose provider cannot be
// resolved are omitted. Two provider-agnostic slots — the profile website
// and the contact email — always render with a generic badge when their
// data exists.
func SocialLinks(accounts []github.SocialAccount, profile *github.Profile, social map[string]string, email string) string {
	var links []socialLink
	seen := make(map[string]bool)

	add := func(provider, target string) {
		provider = strings.ToLower(provider)
		badge, ok := ProviderBadges[provider]
		if !ok || target == "" || seen[provider] {
			return
		}
		seen[provider] = true
		links = append(links, socialLink{provider: provider, badge: badge, url: target})
	}

	if profile != nil {
		add("github", orDefault(profile.HTMLURL, "https://github.com/"+profile.Login))
	}

	for _, acct := range accounts {
		provider := strings.ToLower(acct.Provider)
		if _, known := ProviderBadges[provider]; !known || provider == "generic" {
			// The API reports "generic" for unrecognized sites; fall back
			// to the domain table.
			resolved, ok := ResolveProvider(acct.URL)
			if !ok {
				continue
			}
			provider = resolved
		}
		add(provider, acct.URL)
	}

	for _, name := range sortedStringKeys(social) {
		target := social[name]
		provider := strings.ToLower(name)
		if _, known := ProviderBadges[provider]; !known {
			resolved, ok := ResolveProvider(target)
			if !ok {
				continue
			}
			provider = resolved
		}
		add(provider, target)
	}

	if profile != nil && profile.Twitter != "" {
		add("twitter", "https://twitter.com/"+profile.Twitter)
	}

	var b strings.Builder
	for _, l := range links {
		b.WriteString(badgeMarkdown(l.badge, l.url))
		b.WriteString("\n")
	}

	if profile != nil && profile.Blog != "" {
		b.WriteString(badgeMarkdown(websiteBadge, normalizeWebsite(profile.Blog)))
		b.WriteString("\n")
	}
	if contact := pickEmail(email, profile); contact != "" {
		b.WriteString(badgeMarkdown(emailBadge, "mailto:"+contact))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// badgeMarkdown renders one shields.io badge linked to target.
func badgeMarkdown(badge Badge, target string) string {
	label := strings.ReplaceAll(badge.Label, "-", "--")
	label = strings.ReplaceAll(label, " ", "%20")
	return fmt.Sprintf("[![%s](https://img.shields.io/badge/%s-%s?style=for-the-badge&logo=%s&logoColor=white)](%s)",
		badge.Label, label, badge.Color, badge.Logo, target)
}

// normalizeWebsite prefixes a bare host with https://, matching how the
// API returns the blog field.
func normalizeWebsite(site string) string {
	if strings.HasPrefix(site, "http://") || strings.HasPrefix(site, "https://") {
		return site
	}
	return "https://" + site
}

func pickEmail(configured string, profile *github.Profile) string {
	if configured != "" {
		return configured
	}
	if profile != nil {
		return profile.Email
	}
	return ""
}

func sortedStringKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
