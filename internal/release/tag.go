package release

import (
	"context"
	"fmt"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

// TagRepository is the part of git the resolver needs.
type TagRepository interface {
	Fetch(ctx context.Context) error
	TagExists(ctx context.Context, tag string) (bool, error)
	LatestTag(ctx context.Context) (string, error)
}

type TagResolver struct {
	repo    TagRepository
	console Console
}

func NewTagResolver(repo TagRepository, console Console) *TagResolver {
	return &TagResolver{repo: repo, console: console}
}

// Resolve returns the tag to diff from. An empty result means the whole
// history. Remote refs are refreshed first.
func (r *TagResolver) Resolve(ctx context.Context, explicit string) (string, error) {
	if err := r.repo.Fetch(ctx); err != nil {
		return "", err
	}

	if explicit != "" {
		exists, err := r.repo.TagExists(ctx, explicit)
		if err != nil {
			return "", err
		}
		if !exists {
			return "", models.NewValidationError("the specified tag does not exist: %s", explicit)
		}
		return explicit, nil
	}

	latest, err := r.repo.LatestTag(ctx)
	if err != nil {
		return "", err
	}
	if latest == "" {
		r.console.Say("No tags found. Generating notes for all commits.")
		return "", nil
	}

	ok, err := r.console.Confirm(fmt.Sprintf("Compare from the latest tag: %s?", latest))
	if err != nil {
		return "", err
	}
	if !ok {
		return "", models.NewValidationError("no tag selected for comparison")
	}
	return latest, nil
}
