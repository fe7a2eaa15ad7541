package git

import (
	"context"
	"fmt"
	"regexp"
	"strings"
)

// RemoteURL returns the fetch URL of the configured remote.
func (c *Client) RemoteURL(ctx context.Context) (string, error) {
	output, err := c.runner.Run(ctx, "remote", "get-url", c.remote)
	if err != nil {
		return "", fmt.Errorf("failed to get url of remote %s: %w", c.remote, err)
	}
	return strings.TrimSpace(output), nil
}

// Covers git@github.com:org/repo and https://github.com/org/repo
var githubRemotePattern = regexp.MustCompile(`github\.com[/:]([^/]+)/([^/\s]+)`)

// ParseGitHubRemote extracts the organization and project from a GitHub
// remote URL. ok is false when the URL does not point at github.com.
func ParseGitHubRemote(remote string) (org, project string, ok bool) {
	match := githubRemotePattern.FindStringSubmatch(remote)
	if match == nil {
		return "", "", false
	}

	org = match[1]
	project = strings.TrimSuffix(strings.TrimSuffix(match[2], "/"), ".git")
	if org == "" || project == "" {
		return "", "", false
	}
	return org, project, true
}
