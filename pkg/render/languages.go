package render

import (
	"fmt"
	"strings"
)

const (
	defaultNoLanguages = "No languages found."

	// iconBaseURL resolves an icon identifier list to a single image.
	iconBaseURL = "https://skillicons.dev/icons"
)

// LanguageIcons renders the ranked language slugs as one icon-strip image.
func LanguageIcons(slugs []string, emptyMsg string) string {
	if len(slugs) == 0 {
		return orDefault(emptyMsg, defaultNoLanguages)
	}
	return fmt.Sprintf("![Top languages](%s?i=%s)", iconBaseURL, strings.Join(slugs, ","))
}
