// Package ghapi fetches pull requests and issues from the GitHub REST API.
package ghapi

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/google/go-github/v56/github"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/config"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/metrics"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

const userAgent = "ReleaseGoblin"

const (
	resourcePullRequest = "pull request"
	resourceIssue       = "issue"
)

// Client reads pull requests and issues of a single repository.
type Client struct {
	gh      *github.Client
	org     string
	project string
}

// NewClient authenticates with basic auth using the username/token pair.
// go-github sends the v3 media type in the Accept header and the underlying
// http.Client follows redirects.
func NewClient(cfg config.GitHubConfig, org, project string) (*Client, error) {
	transport := &github.BasicAuthTransport{
		Username: cfg.Username,
		Password: cfg.Token,
	}
	httpClient := &http.Client{
		Transport: transport,
		Timeout:   cfg.Timeout,
	}

	gh := github.NewClient(httpClient)
	gh.UserAgent = userAgent

	if cfg.APIURL != "" {
		base, err := url.Parse(cfg.APIURL)
		if err != nil || base.Scheme == "" || base.Host == "" {
			return nil, models.NewConfigurationError("invalid GitHub API url %q", cfg.APIURL)
		}
		if !strings.HasSuffix(base.Path, "/") {
			base.Path += "/"
		}
		gh.BaseURL = base
	}

	return &Client{gh: gh, org: org, project: project}, nil
}

// PullRequest fetches repos/{org}/{project}/pulls/{number}.
func (c *Client) PullRequest(ctx context.Context, number string) (models.PullRequest, error) {
	n, err := parseNumber(resourcePullRequest, number)
	if err != nil {
		return models.PullRequest{}, err
	}

	pr, resp, err := c.gh.PullRequests.Get(ctx, c.org, c.project, n)
	if err != nil {
		return models.PullRequest{}, classify(resourcePullRequest, number, resp, err)
	}
	metrics.APIRequestsTotal.WithLabelValues(resourcePullRequest, metrics.OutcomeOK).Inc()

	return models.PullRequest{
		Number:       number,
		Title:        pr.GetTitle(),
		Body:         pr.GetBody(),
		Author:       pr.GetUser().GetLogin(),
		HeadRef:      pr.GetHead().GetRef(),
		Additions:    pr.GetAdditions(),
		Deletions:    pr.GetDeletions(),
		ChangedFiles: pr.GetChangedFiles(),
	}, nil
}

// Issue fetches repos/{org}/{project}/issues/{number}.
func (c *Client) Issue(ctx context.Context, number string) (models.Issue, error) {
	n, err := parseNumber(resourceIssue, number)
	if err != nil {
		return models.Issue{}, err
	}

	issue, resp, err := c.gh.Issues.Get(ctx, c.org, c.project, n)
	if err != nil {
		return models.Issue{}, classify(resourceIssue, number, resp, err)
	}
	metrics.APIRequestsTotal.WithLabelValues(resourceIssue, metrics.OutcomeOK).Inc()

	return models.Issue{
		Number: number,
		Title:  issue.GetTitle(),
		Author: issue.GetUser().GetLogin(),
	}, nil
}

// parseNumber rejects numbers no GitHub resource can carry (#0, overflow)
// as NotFound, the same answer the API gives for them.
func parseNumber(resource, number string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(number))
	if err != nil || n <= 0 {
		metrics.APIRequestsTotal.WithLabelValues(resource, metrics.OutcomeNotFound).Inc()
		return 0, models.NewNotFoundError(resource, number)
	}
	return n, nil
}

// classify turns a 404 into NotFound and everything else into a fetch error.
func classify(resource, number string, resp *github.Response, err error) error {
	var errResp *github.ErrorResponse
	notFound := resp != nil && resp.StatusCode == http.StatusNotFound
	if !notFound && errors.As(err, &errResp) && errResp.Response != nil {
		notFound = errResp.Response.StatusCode == http.StatusNotFound
	}

	if notFound {
		metrics.APIRequestsTotal.WithLabelValues(resource, metrics.OutcomeNotFound).Inc()
		return models.NewNotFoundError(resource, number)
	}

	metrics.APIRequestsTotal.WithLabelValues(resource, metrics.OutcomeError).Inc()
	if resp != nil {
		return models.NewFetchError(resource, number, fmt.Errorf("GitHub API request failed (HTTP %d): %w", resp.StatusCode, err))
	}
	return models.NewFetchError(resource, number, err)
}
