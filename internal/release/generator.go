package release

import (
	"context"

	"go.uber.org/zap"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/extract"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/git"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/metrics"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

// Repository is the git working copy the notes are generated from.
type Repository interface {
	TagRepository
	IsRepository(ctx context.Context) bool
	RemoteURL(ctx context.Context) (string, error)
	Commits(ctx context.Context, tag string) ([]models.Commit, error)
}

// Credentials validates the API credential pair before anything runs.
type Credentials interface {
	Validate() error
}

// SourceFactory builds the API source once the project is known.
type SourceFactory func(org, project string) (Source, error)

// Notes is the result of one run, ready to be rendered.
type Notes struct {
	Org     string
	Project string
	Tag     string
	Data    *models.ReleaseData
	Grouped models.GroupedChanges
}

type Generator struct {
	repo        Repository
	console     Console
	credentials Credentials
	newSource   SourceFactory
	log         *zap.Logger
	fetchOpts   []FetcherOption
}

func NewGenerator(repo Repository, console Console, credentials Credentials, newSource SourceFactory, log *zap.Logger, opts ...FetcherOption) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{
		repo:        repo,
		console:     console,
		credentials: credentials,
		newSource:   newSource,
		log:         log,
		fetchOpts:   append([]FetcherOption{WithLogger(log)}, opts...),
	}
}

// Generate collects the release data since tag (or the latest tag after
// confirmation when tag is empty). It returns nil notes when the commit
// range references no pull requests.
func (g *Generator) Generate(ctx context.Context, tag string) (*Notes, error) {
	if err := g.credentials.Validate(); err != nil {
		return nil, err
	}
	if !g.repo.IsRepository(ctx) {
		return nil, models.NewConfigurationError("not a git repository")
	}

	org, project, err := g.detectProject(ctx)
	if err != nil {
		return nil, err
	}
	g.log.Debug("detected GitHub project", zap.String("org", org), zap.String("project", project))

	tag, err = NewTagResolver(g.repo, g.console).Resolve(ctx, tag)
	if err != nil {
		return nil, err
	}

	commits, err := g.repo.Commits(ctx, tag)
	if err != nil {
		return nil, err
	}

	prNumbers := extract.PullRequestNumbers(commits)
	metrics.PullRequestsReferenced.Set(float64(len(prNumbers)))
	g.log.Debug("scanned commit range",
		zap.String("tag", tag),
		zap.Int("commits", len(commits)),
		zap.Int("pull_requests", len(prNumbers)),
	)

	if len(prNumbers) == 0 {
		g.console.Say("No pull requests found in the commit range.")
		return nil, nil
	}

	source, err := g.newSource(org, project)
	if err != nil {
		return nil, err
	}

	data, err := NewFetcher(source, g.console, g.fetchOpts...).Fetch(ctx, prNumbers)
	if err != nil {
		return nil, err
	}

	return &Notes{
		Org:     org,
		Project: project,
		Tag:     tag,
		Data:    data,
		Grouped: Group(data),
	}, nil
}

func (g *Generator) detectProject(ctx context.Context) (string, string, error) {
	remote, err := g.repo.RemoteURL(ctx)
	if err != nil {
		return "", "", &models.ReleaseError{
			Kind:    models.KindConfiguration,
			Message: "GitHub project detection failed",
			Err:     err,
		}
	}

	org, project, ok := git.ParseGitHubRemote(remote)
	if !ok {
		return "", "", models.NewConfigurationError(
			"GitHub project detection failed. Cannot generate release notes without GitHub API access.",
		)
	}
	return org, project, nil
}
