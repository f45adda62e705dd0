package errors

import (
	"regexp"
	"strings"
	"unicode"
)

// usernamePattern matches valid GitHub usernames: alphanumeric with single
// interior hyphens. Length is checked separately.
var usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9](?:-?[a-zA-Z0-9])*$`)

// ValidateUsername validates a GitHub username before it is interpolated into
// API request paths. It rejects anything that could alter the request URL.
func ValidateUsername(name string) error {
	if name == "" {
		return New(ErrCodeInvalidUsername, "username cannot be empty")
	}

	if len(name) > 39 {
		return New(ErrCodeInvalidUsername, "username too long (max 39 characters)")
	}

	if !usernamePattern.MatchString(name) {
		return New(ErrCodeInvalidUsername, "username contains invalid characters: %q", name)
	}

	return nil
}

// ValidateRepoFullName validates an "owner/name" repository reference before
// it is interpolated into API request paths.
func ValidateRepoFullName(fullName string) error {
	if fullName == "" {
		return New(ErrCodeInvalidInput, "repository name cannot be empty")
	}

	owner, name, ok := strings.Cut(fullName, "/")
	if !ok || owner == "" || name == "" {
		return New(ErrCodeInvalidInput, "repository name must be owner/name: %q", fullName)
	}

	for _, r := range fullName {
		if unicode.IsControl(r) || unicode.IsSpace(r) {
			return New(ErrCodeInvalidInput, "repository name contains invalid characters")
		}
	}

	if strings.Contains(fullName, "..") {
		return New(ErrCodeInvalidInput, "repository name cannot contain path traversal sequences (..)")
	}

	return nil
}
