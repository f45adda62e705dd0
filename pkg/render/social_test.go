package render

import (
	"strings"
	"testing"

	"github.com/dacrab/profilegen/pkg/github"
)

func TestResolveProvider(t *testing.T) {
	tests := []struct {
		name   string
		url    string
		want   string
		wantOK bool
	}{
		{"exact host", "https://linkedin.com/in/someone", "linkedin", true},
		{"www stripped", "https://www.linkedin.com/in/someone", "linkedin", true},
		{"subdomain suffix", "https://gist.github.com/someone", "github", true},
		{"path ignored", "https://twitter.com/a/b/c?x=1", "twitter", true},
		{"query ignored", "https://x.com/someone?ref=abc", "twitter", true},
		{"unknown host", "https://example.org/someone", "", false},
		{"similar but different domain", "https://nottwitter.com/me", "", false},
		{"not a url", "::::", "", false},
		{"no host", "/just/a/path", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveProvider(tt.url)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("ResolveProvider(%q) = %q, %v; want %q, %v", tt.url, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

// Any URL whose host matches a domain-table entry must resolve to that
// entry's provider regardless of path or query.
func TestResolveProviderHostOnly(t *testing.T) {
	for domain, provider := range DomainProviders {
		for _, suffix := range []string{"", "/some/deep/path", "/p?q=1&r=2#frag"} {
			url := "https://" + domain + suffix
			got, ok := ResolveProvider(url)
			if !ok || got != provider {
				t.Errorf("ResolveProvider(%q) = %q, %v; want %q", url, got, ok, provider)
			}
		}
	}
}

func TestSocialLinks(t *testing.T) {
	profile := &github.Profile{
		Login:   "octocat",
		HTMLURL: "https://github.com/octocat",
		Blog:    "octocat.dev",
		Email:   "octo@example.com",
	}
	accounts := []github.SocialAccount{
		{Provider: "linkedin", URL: "https://www.linkedin.com/in/octocat"},
		{Provider: "generic", URL: "https://hachyderm.io/@octocat"},
		{Provider: "generic", URL: "https://example.org/octocat"},
	}

	got := SocialLinks(accounts, profile, nil, "")

	for _, want := range []string{
		"https://github.com/octocat",
		"https://www.linkedin.com/in/octocat",
		"https://hachyderm.io/@octocat", // resolved mastodon via domain table
		"https://octocat.dev",           // website slot, generic badge
		"mailto:octo@example.com",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("fragment missing %q:\n%s", want, got)
		}
	}

	if strings.Contains(got, "example.org") {
		t.Errorf("unresolved provider must be omitted:\n%s", got)
	}
}

func TestSocialLinksConfiguredAndTwitter(t *testing.T) {
	profile := &github.Profile{Login: "octocat", Twitter: "octohandle"}
	social := map[string]string{
		"instagram": "https://www.instagram.com/octogram/",
		"blog":      "https://some.unknown.site/feed", // unresolvable, omitted
	}

	got := SocialLinks(nil, profile, social, "configured@example.com")

	if !strings.Contains(got, "https://www.instagram.com/octogram/") {
		t.Errorf("fragment missing configured instagram link:\n%s", got)
	}
	if !strings.Contains(got, "https://twitter.com/octohandle") {
		t.Errorf("fragment missing twitter handle link:\n%s", got)
	}
	if !strings.Contains(got, "mailto:configured@example.com") {
		t.Errorf("fragment missing configured email:\n%s", got)
	}
	if strings.Contains(got, "unknown.site") {
		t.Errorf("unresolvable configured link must be omitted:\n%s", got)
	}
}

func TestSocialLinksDeduplicates(t *testing.T) {
	profile := &github.Profile{Login: "octocat", Twitter: "octohandle"}
	accounts := []github.SocialAccount{
		{Provider: "twitter", URL: "https://twitter.com/original"},
	}

	got := SocialLinks(accounts, profile, nil, "")
	if strings.Contains(got, "twitter.com/octohandle") {
		t.Errorf("first-seen twitter link must win:\n%s", got)
	}
	if !strings.Contains(got, "twitter.com/original") {
		t.Errorf("fragment missing twitter link:\n%s", got)
	}
}

func TestBadgeMarkdownEscapesLabel(t *testing.T) {
	got := badgeMarkdown(ProviderBadges["stackoverflow"], "https://stackoverflow.com/users/1")
	if !strings.Contains(got, "Stack%20Overflow") {
		t.Errorf("badge label spaces must be escaped: %s", got)
	}
}
