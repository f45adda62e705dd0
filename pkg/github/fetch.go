package github

import (
	"context"
	"fmt"
	"net/url"
	"time"

	"github.com/dacrab/profilegen/pkg/errors"
)

// User fetches the profile for username.
func (c *Client) User(ctx context.Context, username string) (*Profile, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	var p Profile
	path := fmt.Sprintf("/users/%s", url.PathEscape(username))
	if err := c.Get(ctx, path, &p); err != nil {
		if err == ErrNotFound {
			return nil, errors.New(errors.ErrCodeUserNotFound, "user %s not found", username)
		}
		return nil, err
	}
	return &p, nil
}

// Repos fetches one page of username's repositories, sorted by update time
// descending. Forks and private repositories are included; callers filter.
func (c *Client) Repos(ctx context.Context, username string, page, perPage int) ([]Repository, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	var repos []Repository
	path := fmt.Sprintf("/users/%s/repos?sort=updated&per_page=%d&page=%d",
		url.PathEscape(username), perPage, page)
	if err := c.Get(ctx, path, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// Languages fetches the language→byte-count breakdown for an "owner/name"
// repository.
func (c *Client) Languages(ctx context.Context, fullName string) (map[string]int64, error) {
	if err := errors.ValidateRepoFullName(fullName); err != nil {
		return nil, err
	}

	langs := make(map[string]int64)
	if err := c.Get(ctx, "/repos/"+fullName+"/languages", &langs); err != nil {
		return nil, err
	}
	return langs, nil
}

// Repo fetches a single repository by its "owner/name" reference.
func (c *Client) Repo(ctx context.Context, fullName string) (*Repository, error) {
	if err := errors.ValidateRepoFullName(fullName); err != nil {
		return nil, err
	}

	var repo Repository
	if err := c.Get(ctx, "/repos/"+fullName, &repo); err != nil {
		return nil, err
	}
	return &repo, nil
}

// Events fetches up to count recent public events for username.
func (c *Client) Events(ctx context.Context, username string, count int) ([]Event, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	var events []Event
	path := fmt.Sprintf("/users/%s/events/public?per_page=%d", url.PathEscape(username), count)
	if err := c.Get(ctx, path, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// Starred fetches up to count repositories username starred most recently.
func (c *Client) Starred(ctx context.Context, username string, count int) ([]Repository, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	var starred []Repository
	path := fmt.Sprintf("/users/%s/starred?sort=created&per_page=%d", url.PathEscape(username), count)
	if err := c.Get(ctx, path, &starred); err != nil {
		return nil, err
	}
	return starred, nil
}

// searchResponse wraps the items array of an issue-search response.
type searchResponse struct {
	TotalCount int           `json:"total_count"`
	Items      []PullRequest `json:"items"`
}

// SearchPullRequests fetches up to count pull requests authored by username
// and created on or after since, newest first.
func (c *Client) SearchPullRequests(ctx context.Context, username string, since time.Time, count int) ([]PullRequest, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	query := fmt.Sprintf("author:%s type:pr created:>=%s", username, since.Format("2006-01-02"))
	path := fmt.Sprintf("/search/issues?q=%s&sort=created&order=desc&per_page=%d",
		url.QueryEscape(query), count)

	var result searchResponse
	if err := c.Get(ctx, path, &result); err != nil {
		return nil, err
	}
	return result.Items, nil
}

// SocialAccounts fetches the social accounts username has added to their
// profile.
func (c *Client) SocialAccounts(ctx context.Context, username string) ([]SocialAccount, error) {
	if err := errors.ValidateUsername(username); err != nil {
		return nil, err
	}

	var accounts []SocialAccount
	path := fmt.Sprintf("/users/%s/social_accounts", url.PathEscape(username))
	if err := c.Get(ctx, path, &accounts); err != nil {
		return nil, err
	}
	return accounts, nil
}

// PrimaryEmail fetches the authenticated user's verified primary email
// address. Returns "" without error when no verified primary exists.
func (c *Client) PrimaryEmail(ctx context.Context) (string, error) {
	var emails []Email
	if err := c.Get(ctx, "/user/emails", &emails); err != nil {
		return "", err
	}

	for _, e := range emails {
		if e.Primary && e.Verified {
			return e.Email, nil
		}
	}
	return "", nil
}
