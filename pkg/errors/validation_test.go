package errors

import "testing"

func TestValidateUsername(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"simple", "octocat", false},
		{"with digits", "user123", false},
		{"with hyphen", "some-user", false},
		{"single char", "a", false},
		{"empty", "", true},
		{"leading hyphen", "-user", true},
		{"trailing hyphen", "user-", true},
		{"double hyphen", "some--user", true},
		{"path traversal", "../etc", true},
		{"slash", "a/b", true},
		{"too long", "a123456789a123456789a123456789a123456789", true},
		{"whitespace", "some user", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateUsername(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateUsername(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}

func TestValidateRepoFullName(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid", "octocat/hello-world", false},
		{"dotted name", "owner/repo.js", false},
		{"empty", "", true},
		{"no slash", "justaname", true},
		{"empty owner", "/repo", true},
		{"empty repo", "owner/", true},
		{"traversal", "owner/../secret", true},
		{"whitespace", "owner/re po", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepoFullName(tt.input)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRepoFullName(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
		})
	}
}
