package release

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/extract"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/logger"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/metrics"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

const (
	DefaultBatchSize  = 10
	DefaultBatchDelay = 100 * time.Millisecond
)

// Fetcher collects pull requests, their issues, contributors and code
// statistics. A failed lookup only drops that resource.
type Fetcher struct {
	source     Source
	console    Console
	log        *zap.Logger
	batchSize  int
	batchDelay time.Duration
	sleep      func(time.Duration)
}

type FetcherOption func(*Fetcher)

func WithBatchSize(n int) FetcherOption {
	return func(f *Fetcher) {
		if n > 0 {
			f.batchSize = n
		}
	}
}

// WithBatchDelay sets the pause between two batches.
func WithBatchDelay(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		if d >= 0 {
			f.batchDelay = d
		}
	}
}

func WithLogger(log *zap.Logger) FetcherOption {
	return func(f *Fetcher) {
		if log != nil {
			f.log = log
		}
	}
}

func withSleep(sleep func(time.Duration)) FetcherOption {
	return func(f *Fetcher) {
		f.sleep = sleep
	}
}

func NewFetcher(source Source, console Console, opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		source:     source,
		console:    console,
		log:        zap.NewNop(),
		batchSize:  DefaultBatchSize,
		batchDelay: DefaultBatchDelay,
		sleep:      time.Sleep,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Fetch looks up every pull request in prNumbers and the issues they refer
// to. Each issue is requested at most once per call. A cancelled ctx aborts
// the whole fetch with ctx.Err().
func (f *Fetcher) Fetch(ctx context.Context, prNumbers []string) (*models.ReleaseData, error) {
	f.console.Say("Fetching data for %d pull requests...", len(prNumbers))

	data := models.NewReleaseData()
	requested := make(map[string]struct{})

	for i, batch := range chunk(prNumbers, f.batchSize) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if i > 0 && f.batchDelay > 0 {
			f.sleep(f.batchDelay)
		}
		metrics.BatchesTotal.Inc()

		for _, number := range batch {
			if err := f.fetchPullRequest(ctx, data, requested, number); err != nil {
				return nil, err
			}
		}
	}

	f.log.Debug("release data fetched",
		zap.Int("pull_requests", len(data.PullRequests())),
		zap.Int("issues", len(data.Issues)),
		zap.Int("contributors", len(data.Contributors())),
	)
	return data, nil
}

// fetchPullRequest records one pull request and its issues. Lookup failures
// are logged and skipped; only cancellation is returned.
func (f *Fetcher) fetchPullRequest(ctx context.Context, data *models.ReleaseData, requested map[string]struct{}, number string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	pr, err := f.source.PullRequest(ctx, number)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		logger.LogFetchFailure(f.log, err, "skipping pull request", zap.String("number", number))
		return nil
	}

	data.AddPullRequest(pr)
	data.AddContribution(pr.Author)
	data.Stats.Additions += pr.Additions
	data.Stats.Deletions += pr.Deletions
	data.Stats.ChangedFiles += pr.ChangedFiles

	for _, issueNumber := range extract.IssueNumbers(pr) {
		if _, ok := requested[issueNumber]; ok {
			continue
		}
		requested[issueNumber] = struct{}{}

		issue, err := f.source.Issue(ctx, issueNumber)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return ctxErr
			}
			logger.LogFetchFailure(f.log, err, "skipping issue",
				zap.String("number", issueNumber),
				zap.String("pull_request", number),
			)
			continue
		}

		data.Issues[issueNumber] = issue
		data.AddContribution(issue.Author)
	}
	return nil
}

func chunk(numbers []string, size int) [][]string {
	var batches [][]string
	for size < len(numbers) {
		numbers, batches = numbers[size:], append(batches, numbers[:size:size])
	}
	if len(numbers) > 0 {
		batches = append(batches, numbers)
	}
	return batches
}
