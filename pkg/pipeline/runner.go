// Package pipeline orchestrates one README generation run: load the
// template, fetch the account's public data, render the section fragments,
// substitute them into the template, and write the output file.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"

	"github.com/dacrab/profilegen/pkg/config"
	"github.com/dacrab/profilegen/pkg/errors"
	"github.com/dacrab/profilegen/pkg/github"
	"github.com/dacrab/profilegen/pkg/langstats"
	"github.com/dacrab/profilegen/pkg/render"
)

// disabledFragment stands in for a section that is switched off. An HTML
// comment keeps the document well-formed without showing anything.
const disabledFragment = "<!-- section disabled -->"

// Runner executes the generation pipeline. It is stateless apart from its
// collaborators, so one Runner can serve several Execute calls.
type Runner struct {
	Client *github.Client
	Config *config.Config
	Logger *log.Logger

	// TemplatePath is read before any request is made; a missing template
	// aborts the run without spending API budget.
	TemplatePath string

	// OutputPath is overwritten whole on success.
	OutputPath string
}

// NewRunner wires a runner from its collaborators. A nil logger falls back
// to log.Default().
func NewRunner(client *github.Client, cfg *config.Config, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Client: client, Config: cfg, Logger: logger}
}

// Result summarizes a completed run for display.
type Result struct {
	OutputPath string
	Bytes      int

	Repos     int
	Events    int
	Stars     int
	Pulls     int
	Languages int

	Duration time.Duration
}

// Execute runs the full pipeline. The profile and the repository listing
// are required; every other fetch is best-effort and degrades to the
// section's empty state with a warning.
func (r *Runner) Execute(ctx context.Context) (*Result, error) {
	start := time.Now()
	cfg := r.Config

	template, err := render.LoadTemplate(r.TemplatePath)
	if err != nil {
		return nil, err
	}

	// Required data.
	profile, err := r.Client.User(ctx, cfg.Username)
	if err != nil {
		return nil, fmt.Errorf("fetching profile for %s: %w", cfg.Username, err)
	}
	repos, err := langstats.CollectRepos(ctx, r.Client, cfg.Username)
	if err != nil {
		return nil, fmt.Errorf("listing repositories for %s: %w", cfg.Username, err)
	}
	r.Logger.Info("fetched account data",
		"user", profile.Login, "repos", len(repos))

	// Optional data.
	events := r.fetchEvents(ctx)
	stars := r.fetchStars(ctx)
	pulls := r.fetchPulls(ctx)
	accounts := r.fetchSocialAccounts(ctx)
	email := r.fetchEmail(ctx)

	// A zero limit disables a section's content, so a zero language cap or
	// sample cap means no per-repo language requests at all.
	var slugs []string
	if cfg.Limits.Languages > 0 && cfg.Limits.LangRepoSample > 0 {
		slugs = langstats.RankRepos(ctx, r.Client, repos, langstats.Options{
			SampleCap: cfg.Limits.LangRepoSample,
			Limit:     cfg.Limits.Languages,
			Logger:    r.Logger,
		})
	}

	now := time.Now()
	frags := render.Fragments{
		render.TokenProfile: render.ProfileIntro(profile, render.Fallbacks{
			Name: cfg.Fallbacks.Name,
			Bio:  cfg.Fallbacks.Bio,
		}),
		render.TokenActivity: render.ActiveProjects(ctx, r.Client, events,
			cfg.Limits.Activity, cfg.Messages.NoActivity),
		render.TokenProjects: render.LatestProjects(repos,
			cfg.Limits.Projects, cfg.Messages.NoProjects, now),
		render.TokenLanguages: render.LanguageIcons(slugs, cfg.Messages.NoLanguages),
		render.TokenSocial:    render.SocialLinks(accounts, profile, cfg.Social, email),
		render.TokenUpdatedAt: now.UTC().Format("2006-01-02 15:04 UTC"),
	}

	if cfg.Toggles.Stars {
		frags[render.TokenStars] = render.StarredRepos(stars, cfg.Limits.Stars, cfg.Messages.NoStars)
	} else {
		frags[render.TokenStars] = disabledFragment
	}
	if cfg.Toggles.Pulls {
		frags[render.TokenPulls] = render.PullRequests(pulls, cfg.Limits.Pulls, cfg.Messages.NoPulls)
	} else {
		frags[render.TokenPulls] = disabledFragment
	}
	if cfg.Toggles.Stats {
		frags[render.TokenStats] = render.Stats(profile, repos, events, now)
	} else {
		frags[render.TokenStats] = disabledFragment
	}

	output := render.Substitute(template, frags)
	if err := os.WriteFile(r.OutputPath, []byte(output), 0o644); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "writing %s", r.OutputPath)
	}

	result := &Result{
		OutputPath: r.OutputPath,
		Bytes:      len(output),
		Repos:      len(repos),
		Events:     len(events),
		Stars:      len(stars),
		Pulls:      len(pulls),
		Languages:  len(slugs),
		Duration:   time.Since(start),
	}
	r.Logger.Info("wrote profile readme",
		"path", result.OutputPath,
		"bytes", result.Bytes,
		"duration", result.Duration)
	return result, nil
}

func (r *Runner) fetchEvents(ctx context.Context) []github.Event {
	events, err := r.Client.Events(ctx, r.Config.Username, eventFetchCount)
	if err != nil {
		r.Logger.Warn("could not fetch recent events", "error", err)
		return nil
	}
	return events
}

func (r *Runner) fetchStars(ctx context.Context) []github.Repository {
	if !r.Config.Toggles.Stars || r.Config.Limits.Stars <= 0 {
		return nil
	}
	stars, err := r.Client.Starred(ctx, r.Config.Username, r.Config.Limits.Stars)
	if err != nil {
		r.Logger.Warn("could not fetch starred repositories", "error", err)
		return nil
	}
	return stars
}

func (r *Runner) fetchPulls(ctx context.Context) []github.PullRequest {
	if !r.Config.Toggles.Pulls || r.Config.Limits.Pulls <= 0 {
		return nil
	}
	since := time.Now().AddDate(0, 0, -r.Config.Limits.PRLookbackDays)
	pulls, err := r.Client.SearchPullRequests(ctx, r.Config.Username, since, r.Config.Limits.Pulls)
	if err != nil {
		r.Logger.Warn("could not search pull requests", "error", err)
		return nil
	}
	return pulls
}

func (r *Runner) fetchSocialAccounts(ctx context.Context) []github.SocialAccount {
	accounts, err := r.Client.SocialAccounts(ctx, r.Config.Username)
	if err != nil {
		r.Logger.Warn("could not fetch social accounts", "error", err)
		return nil
	}
	return accounts
}

func (r *Runner) fetchEmail(ctx context.Context) string {
	if r.Config.Email != "" {
		return r.Config.Email
	}
	email, err := r.Client.PrimaryEmail(ctx)
	if err != nil {
		r.Logger.Warn("could not fetch primary email", "error", err)
		return ""
	}
	return email
}

// eventFetchCount is how many raw events the activity and stats sections
// draw from. The public events feed caps out at 100 per page.
const eventFetchCount = 100
