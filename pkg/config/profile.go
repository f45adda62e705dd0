package config

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/dacrab/profilegen/pkg/errors"
)

// Profile is the optional TOML profile file (profilegen.toml). It carries
// the values that describe the person rather than the run: identity
// fallbacks, curated social links, and per-section message overrides.
//
//	[user]
//	username = "octocat"
//	name     = "The Octocat"
//	bio      = "Passionate developer"
//	email    = "octo@example.com"
//
//	[social]
//	linkedin = "https://www.linkedin.com/in/octocat/"
//	mastodon = "https://hachyderm.io/@octocat"
//
//	[messages]
//	no_activity = "Quiet week."
//
//	[content]
//	max_projects = 6
type Profile struct {
	User     UserProfile       `toml:"user"`
	Social   map[string]string `toml:"social"`
	Messages Messages          `toml:"messages"`
	Content  Content           `toml:"content"`
}

// UserProfile holds identity fallbacks applied when the fetched profile
// lacks a field.
type UserProfile struct {
	Username string `toml:"username"`
	Name     string `toml:"name"`
	Bio      string `toml:"bio"`
	Website  string `toml:"website"`
	Email    string `toml:"email"`
}

// Messages overrides the built-in empty-state strings per section.
// Empty fields keep the defaults.
type Messages struct {
	NoActivity  string `toml:"no_activity"`
	NoProjects  string `toml:"no_projects"`
	NoPulls     string `toml:"no_prs"`
	NoStars     string `toml:"no_stars"`
	NoLanguages string `toml:"no_languages"`
}

// Content holds item-count overrides, applied beneath the environment.
type Content map[string]int64

// intOr returns the content override for key, or def when absent.
func (c Content) intOr(key string, def int) int {
	if c == nil {
		return def
	}
	if v, ok := c[key]; ok {
		return int(v)
	}
	return def
}

// LoadProfile parses the TOML profile file at path. A missing file (or an
// empty path) yields a zero Profile; a malformed file is a configuration
// error.
func LoadProfile(path string) (*Profile, error) {
	var p Profile
	if path == "" {
		return &p, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &p, nil
		}
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, err, "reading profile file %s", path)
	}

	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfigInvalid, err, "parsing profile file %s", path)
	}
	return &p, nil
}
