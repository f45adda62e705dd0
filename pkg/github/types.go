package github

import (
	"strings"
	"time"
)

// Profile is a GitHub user profile as returned by /users/{username}.
// Optional fields are empty strings when the user has not set them.
type Profile struct {
	Login       string    `json:"login"`
	Name        string    `json:"name"`
	Bio         string    `json:"bio"`
	Blog        string    `json:"blog"`
	Location    string    `json:"location"`
	Company     string    `json:"company"`
	Twitter     string    `json:"twitter_username"`
	Email       string    `json:"email"`
	HTMLURL     string    `json:"html_url"`
	PublicRepos int       `json:"public_repos"`
	Followers   int       `json:"followers"`
	Following   int       `json:"following"`
	CreatedAt   time.Time `json:"created_at"`
}

// Repository is one entry of a user's repository listing.
type Repository struct {
	Name        string    `json:"name"`
	FullName    string    `json:"full_name"`
	HTMLURL     string    `json:"html_url"`
	Description string    `json:"description"`
	Language    string    `json:"language"`
	Fork        bool      `json:"fork"`
	Private     bool      `json:"private"`
	Stars       int       `json:"stargazers_count"`
	Forks       int       `json:"forks_count"`
	Size        int       `json:"size"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
	PushedAt    time.Time `json:"pushed_at"`
	Owner       Owner     `json:"owner"`
}

// Owner identifies the account a repository belongs to.
type Owner struct {
	Login   string `json:"login"`
	HTMLURL string `json:"html_url"`
}

// Event is one entry of a user's public event stream. Only the type tag,
// the repository reference, and the timestamp are consumed.
type Event struct {
	Type      string    `json:"type"`
	Repo      EventRepo `json:"repo"`
	CreatedAt time.Time `json:"created_at"`
}

// EventRepo references the repository an event occurred in. Name is the
// "owner/name" form.
type EventRepo struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// PullRequest is one item of an issue-search response restricted to
// type:pr. RepositoryURL is the API URL of the containing repository.
type PullRequest struct {
	Title         string    `json:"title"`
	HTMLURL       string    `json:"html_url"`
	RepositoryURL string    `json:"repository_url"`
	State         string    `json:"state"`
	CreatedAt     time.Time `json:"created_at"`
}

// SocialAccount is one entry of /users/{username}/social_accounts.
type SocialAccount struct {
	Provider string `json:"provider"`
	URL      string `json:"url"`
}

// Email is one entry of the authenticated /user/emails listing.
type Email struct {
	Email    string `json:"email"`
	Primary  bool   `json:"primary"`
	Verified bool   `json:"verified"`
}

// RepoName returns the "owner/name" suffix of a repository API URL, or the
// input unchanged when it has fewer than two path segments.
func RepoName(repositoryURL string) string {
	parts := strings.Split(strings.TrimSuffix(repositoryURL, "/"), "/")
	if len(parts) < 2 {
		return repositoryURL
	}
	return parts[len(parts)-2] + "/" + parts[len(parts)-1]
}
