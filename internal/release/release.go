// Package release turns a commit range into grouped release data.
package release

import (
	"context"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

// Console is how the pipeline talks to the person running it.
type Console interface {
	Say(format string, args ...any)
	Confirm(question string) (bool, error)
}

// Source looks up pull requests and issues by number. Lookups of missing
// resources fail with an error matching models.ErrNotFound.
type Source interface {
	PullRequest(ctx context.Context, number string) (models.PullRequest, error)
	Issue(ctx context.Context, number string) (models.Issue, error)
}
