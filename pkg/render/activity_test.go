package render

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/dacrab/profilegen/pkg/github"
)

type fakeRepoFetcher struct {
	descriptions map[string]string
	err          error
}

func (f *fakeRepoFetcher) Repo(_ context.Context, fullName string) (*github.Repository, error) {
	if f.err != nil {
		return nil, f.err
	}
	return &github.Repository{FullName: fullName, Description: f.descriptions[fullName]}, nil
}

func event(typ, repo string) github.Event {
	return github.Event{Type: typ, Repo: github.EventRepo{Name: repo}}
}

func TestActiveRepoNames(t *testing.T) {
	events := []github.Event{
		event("PushEvent", "a/x"),
		event("WatchEvent", "a/y"),
		event("PushEvent", "a/x"),
		event("CreateEvent", "a/z"),
	}

	want := []string{"a/x", "a/z"}
	if got := activeRepoNames(events, 2); !reflect.DeepEqual(got, want) {
		t.Errorf("activeRepoNames() = %v, want %v", got, want)
	}
}

func TestActiveRepoNamesNoLimit(t *testing.T) {
	events := []github.Event{
		event("PushEvent", "a/x"),
		event("PullRequestEvent", "b/y"),
		event("ForkEvent", "c/z"),
	}

	want := []string{"a/x", "b/y"}
	if got := activeRepoNames(events, 0); !reflect.DeepEqual(got, want) {
		t.Errorf("activeRepoNames() = %v, want %v", got, want)
	}
}

func TestActiveProjects(t *testing.T) {
	f := &fakeRepoFetcher{descriptions: map[string]string{"a/x": "A tiny tool"}}
	events := []github.Event{
		event("PushEvent", "a/x"),
		event("CreateEvent", "a/z"),
	}

	got := ActiveProjects(context.Background(), f, events, 5, "")
	if !strings.Contains(got, "[x](https://github.com/a/x) — A tiny tool") {
		t.Errorf("fragment missing described entry:\n%s", got)
	}
	if !strings.Contains(got, "**2.** [z](https://github.com/a/z) — Active development") {
		t.Errorf("fragment missing fallback description:\n%s", got)
	}
}

func TestActiveProjectsLookupFailureDegrades(t *testing.T) {
	f := &fakeRepoFetcher{err: errors.New("boom")}
	events := []github.Event{event("PushEvent", "a/x")}

	got := ActiveProjects(context.Background(), f, events, 5, "")
	if !strings.Contains(got, "[x](https://github.com/a/x) — Active development") {
		t.Errorf("fragment should degrade to default description:\n%s", got)
	}
}

func TestActiveProjectsZeroLimit(t *testing.T) {
	events := []github.Event{event("PushEvent", "a/x")}
	got := ActiveProjects(context.Background(), nil, events, 0, "")
	if got != defaultNoActivity {
		t.Errorf("ActiveProjects(limit=0) = %q, want empty state", got)
	}
}

func TestActiveProjectsEmpty(t *testing.T) {
	got := ActiveProjects(context.Background(), nil, nil, 5, "")
	if got != defaultNoActivity {
		t.Errorf("ActiveProjects() = %q, want empty state", got)
	}

	custom := ActiveProjects(context.Background(), nil, nil, 5, "Quiet week.")
	if custom != "Quiet week." {
		t.Errorf("ActiveProjects() = %q, want override", custom)
	}
}
