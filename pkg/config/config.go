// Package config resolves profilegen configuration from the process
// environment and an optional TOML profile file.
//
// Resolution order for every setting is: environment variable, then profile
// file, then built-in default. Typed getters never fail: unparseable values
// silently degrade to the supplied default, keeping a partially configured
// environment usable.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/dacrab/profilegen/pkg/errors"
)

// Environment variable names. Identity values accept two alternate names so
// both the generator's own variables and the conventional GitHub Actions
// variables work out of the box.
const (
	EnvUsername    = "GITHUB_USERNAME"
	EnvUsernameAlt = "GH_USERNAME"
	EnvToken       = "GITHUB_TOKEN"
	EnvTokenAlt    = "GH_TOKEN"

	EnvMaxProjects    = "MAX_PROJECTS"
	EnvMaxActivity    = "MAX_ACTIVITY"
	EnvMaxStars       = "MAX_STARS"
	EnvMaxPulls       = "MAX_PRS"
	EnvMaxLanguages   = "MAX_LANGUAGES"
	EnvLangRepoSample = "LANG_REPO_SAMPLE"
	EnvPRLookbackDays = "PR_LOOKBACK_DAYS"

	EnvShowStars = "SHOW_STARS"
	EnvShowPulls = "SHOW_PRS"
	EnvShowStats = "SHOW_STATS"

	EnvFallbackName = "FALLBACK_NAME"
	EnvFallbackBio  = "FALLBACK_BIO"
)

// Default limit values used when neither the environment nor the profile
// file configures a section.
const (
	DefaultMaxProjects    = 5
	DefaultMaxActivity    = 5
	DefaultMaxStars       = 5
	DefaultMaxPulls       = 4
	DefaultMaxLanguages   = 8
	DefaultLangRepoSample = 25
	DefaultPRLookbackDays = 90
)

// truthy is the fixed set of tokens GetBool recognizes as true.
var truthy = map[string]bool{
	"1":    true,
	"true": true,
	"yes":  true,
	"on":   true,
}

// Get returns the environment value for name if set and non-empty,
// otherwise def.
func Get(name, def string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return def
}

// GetInt returns the environment value for name parsed as an integer.
// Unset, empty, or unparseable values yield def.
func GetInt(name string, def int) int {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(strings.TrimSpace(v))
	if err != nil {
		return def
	}
	return n
}

// GetBool returns the environment value for name interpreted as a boolean.
// The tokens "1", "true", "yes", and "on" (case-insensitive) are true;
// anything else, including absence, yields def.
func GetBool(name string, def bool) bool {
	v := os.Getenv(name)
	if v == "" {
		return def
	}
	return truthy[strings.ToLower(strings.TrimSpace(v))]
}

// first returns the first non-empty value.
func first(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Limits bounds the item count of each rendered section and the request
// budget of the language aggregation.
type Limits struct {
	Projects       int
	Activity       int
	Stars          int
	Pulls          int
	Languages      int
	LangRepoSample int
	PRLookbackDays int
}

// Toggles enables or disables optional sections. Disabled sections render
// their empty-state fragment so the output document stays well-formed.
type Toggles struct {
	Stars bool
	Pulls bool
	Stats bool
}

// Fallbacks are substituted when the fetched profile lacks a field.
type Fallbacks struct {
	Name string
	Bio  string
}

// Config is the fully resolved configuration for one generation run.
type Config struct {
	Username string
	Token    string

	Limits    Limits
	Toggles   Toggles
	Fallbacks Fallbacks

	// Social maps a provider or label to a profile URL, taken from the
	// profile file's [social] table.
	Social map[string]string

	// Messages holds per-section empty-state overrides from the profile
	// file's [messages] table.
	Messages Messages

	// Email is the contact address rendered in the social section when the
	// API does not return a verified address.
	Email string
}

// Load resolves the full configuration from the environment and the profile
// file at path (optional; pass "" or a missing path to skip it).
//
// A missing username or token is a fatal configuration error; everything
// else degrades to defaults.
func Load(path string) (*Config, error) {
	profile, err := LoadProfile(path)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Username: first(os.Getenv(EnvUsername), os.Getenv(EnvUsernameAlt), profile.User.Username),
		Token:    first(os.Getenv(EnvToken), os.Getenv(EnvTokenAlt)),
		Limits: Limits{
			Projects:       GetInt(EnvMaxProjects, profile.Content.intOr("max_projects", DefaultMaxProjects)),
			Activity:       GetInt(EnvMaxActivity, profile.Content.intOr("max_activity", DefaultMaxActivity)),
			Stars:          GetInt(EnvMaxStars, profile.Content.intOr("max_stars", DefaultMaxStars)),
			Pulls:          GetInt(EnvMaxPulls, profile.Content.intOr("max_prs", DefaultMaxPulls)),
			Languages:      GetInt(EnvMaxLanguages, profile.Content.intOr("max_languages", DefaultMaxLanguages)),
			LangRepoSample: GetInt(EnvLangRepoSample, DefaultLangRepoSample),
			PRLookbackDays: GetInt(EnvPRLookbackDays, DefaultPRLookbackDays),
		},
		Toggles: Toggles{
			Stars: GetBool(EnvShowStars, true),
			Pulls: GetBool(EnvShowPulls, true),
			Stats: GetBool(EnvShowStats, true),
		},
		Fallbacks: Fallbacks{
			Name: Get(EnvFallbackName, profile.User.Name),
			Bio:  Get(EnvFallbackBio, profile.User.Bio),
		},
		Social:   profile.Social,
		Messages: profile.Messages,
		Email:    profile.User.Email,
	}

	if cfg.Username == "" {
		return nil, errors.New(errors.ErrCodeConfigMissing,
			"no username configured: set %s or %s", EnvUsername, EnvUsernameAlt)
	}
	if err := errors.ValidateUsername(cfg.Username); err != nil {
		return nil, err
	}
	if cfg.Token == "" {
		return nil, errors.New(errors.ErrCodeConfigMissing,
			"no API credential configured: set %s or %s", EnvToken, EnvTokenAlt)
	}

	clampLimits(&cfg.Limits)
	return cfg, nil
}

// clampLimits keeps every limit non-negative. Zero disables a section's
// content without breaking its fragment.
func clampLimits(l *Limits) {
	for _, p := range []*int{
		&l.Projects, &l.Activity, &l.Stars, &l.Pulls,
		&l.Languages, &l.LangRepoSample, &l.PRLookbackDays,
	} {
		if *p < 0 {
			*p = 0
		}
	}
}
