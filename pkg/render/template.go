package render

import (
	"os"
	"strings"

	"github.com/dacrab/profilegen/pkg/errors"
)

// Placeholder tokens recognized in the template file. Substitution is
// literal find-and-replace: no conditionals, no loops. Every token maps to
// a non-empty fragment, so a substituted document is always well-formed.
const (
	TokenProfile   = "{{PROFILE}}"
	TokenActivity  = "{{ACTIVITY}}"
	TokenProjects  = "{{PROJECTS}}"
	TokenPulls     = "{{PULL_REQUESTS}}"
	TokenStars     = "{{STARS}}"
	TokenLanguages = "{{LANGUAGES}}"
	TokenSocial    = "{{SOCIAL}}"
	TokenStats     = "{{STATS}}"
	TokenUpdatedAt = "{{UPDATED_AT}}"
)

// Fragments maps placeholder tokens to rendered markup.
type Fragments map[string]string

// Substitute replaces every fragment's token in template with its markup.
// Tokens absent from the template are ignored; tokens present in the
// template but absent from frags are left as-is.
func Substitute(template string, frags Fragments) string {
	out := template
	for token, fragment := range frags {
		out = strings.ReplaceAll(out, token, fragment)
	}
	return out
}

// LoadTemplate reads the template file. A missing file is a fatal
// TEMPLATE_MISSING error so the orchestrator can abort before spending any
// API requests.
func LoadTemplate(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return "", errors.New(errors.ErrCodeTemplateMissing, "template file %s not found", path)
		}
		return "", errors.Wrap(errors.ErrCodeTemplateMissing, err, "reading template file %s", path)
	}
	return string(data), nil
}
