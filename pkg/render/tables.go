package render

// Lookup tables for presentation. All of them are configuration data, not
// logic: builders receive them as parameters so tests can substitute their
// own, and callers can swap variants without touching the builders.

// LanguageEmoji decorates a repository's primary language label in list
// sections. Unmapped languages fall back to emojiFallback.
var LanguageEmoji = map[string]string{
	"JavaScript": "🟨",
	"TypeScript": "🔷",
	"Python":     "🐍",
	"Java":       "☕",
	"HTML":       "🌐",
	"CSS":        "🎨",
	"SCSS":       "💜",
	"PHP":        "🐘",
	"Go":         "🔵",
	"Rust":       "🦀",
	"C++":        "⚡",
	"C#":         "💜",
	"C":          "⚙️",
	"Shell":      "🐚",
	"Dockerfile": "🐳",
	"Markdown":   "📝",
	"Astro":      "🚀",
	"Svelte":     "🧡",
	"Dart":       "🎯",
	"Swift":      "🍎",
	"Kotlin":     "💎",
	"Ruby":       "💎",
	"Lua":        "🌙",
	"Vue":        "💚",
}

const emojiFallback = "📁"

// languageEmoji returns the decoration for language, or the generic
// fallback when the language is unmapped or empty.
func languageEmoji(language string) string {
	if e, ok := LanguageEmoji[language]; ok {
		return e
	}
	return emojiFallback
}

// Badge describes a shields.io badge for a social provider.
type Badge struct {
	Label string // display label, URL-escaped as needed by the caller
	Color string // hex color without '#'
	Logo  string // simple-icons logo slug
}

// ProviderBadges maps a social provider identifier (as returned by the API
// or resolved from a URL host) to its badge. Providers missing from this
// table are omitted from the social section rather than rendered with a
// generic brand.
var ProviderBadges = map[string]Badge{
	"github":        {Label: "GitHub", Color: "100000", Logo: "github"},
	"linkedin":      {Label: "LinkedIn", Color: "0077B5", Logo: "linkedin"},
	"twitter":       {Label: "Twitter", Color: "1DA1F2", Logo: "x"},
	"instagram":     {Label: "Instagram", Color: "E4405F", Logo: "instagram"},
	"mastodon":      {Label: "Mastodon", Color: "6364FF", Logo: "mastodon"},
	"bluesky":       {Label: "Bluesky", Color: "0285FF", Logo: "bluesky"},
	"youtube":       {Label: "YouTube", Color: "FF0000", Logo: "youtube"},
	"twitch":        {Label: "Twitch", Color: "9146FF", Logo: "twitch"},
	"reddit":        {Label: "Reddit", Color: "FF4500", Logo: "reddit"},
	"facebook":      {Label: "Facebook", Color: "1877F2", Logo: "facebook"},
	"medium":        {Label: "Medium", Color: "12100E", Logo: "medium"},
	"devto":         {Label: "dev.to", Color: "0A0A0A", Logo: "devdotto"},
	"stackoverflow": {Label: "Stack Overflow", Color: "FE7A16", Logo: "stackoverflow"},
}

// Generic badges for the provider-agnostic slots. These always render when
// their data exists, even without a brand match.
var (
	websiteBadge = Badge{Label: "Website", Color: "4285F4", Logo: "googlechrome"}
	emailBadge   = Badge{Label: "Email", Color: "8B89CC", Logo: "protonmail"}
)

// DomainProviders resolves a URL host to a provider identifier when the API
// reports a generic provider. Matching is exact host first, then
// registrable-domain suffix.
var DomainProviders = map[string]string{
	"github.com":        "github",
	"linkedin.com":      "linkedin",
	"twitter.com":       "twitter",
	"x.com":             "twitter",
	"instagram.com":     "instagram",
	"bsky.app":          "bluesky",
	"youtube.com":       "youtube",
	"twitch.tv":         "twitch",
	"reddit.com":        "reddit",
	"facebook.com":      "facebook",
	"medium.com":        "medium",
	"dev.to":            "devto",
	"stackoverflow.com": "stackoverflow",
	"mastodon.social":   "mastodon",
	"hachyderm.io":      "mastodon",
	"fosstodon.org":     "mastodon",
}
