package git

import (
	"context"
	"fmt"
	"strings"
)

// Fetch refreshes remote-tracking refs and tags.
func (c *Client) Fetch(ctx context.Context) error {
	if _, err := c.runner.Run(ctx, "fetch"); err != nil {
		return fmt.Errorf("failed to fetch: %w", err)
	}
	return nil
}

// TagExists reports whether tag matches a known tag exactly.
func (c *Client) TagExists(ctx context.Context, tag string) (bool, error) {
	output, err := c.runner.Run(ctx, "tag", "--list")
	if err != nil {
		return false, fmt.Errorf("failed to list tags: %w", err)
	}

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimRight(line, "\r") == tag {
			return true, nil
		}
	}
	return false, nil
}

// LatestTag returns the most recently created tag, or "" when there is none.
func (c *Client) LatestTag(ctx context.Context) (string, error) {
	output, err := c.runner.Run(ctx,
		"for-each-ref",
		"--sort=creatordate",
		"--format=%(refname:short)",
		"refs/tags",
	)
	if err != nil {
		return "", fmt.Errorf("failed to list tags by date: %w", err)
	}

	lines := strings.Split(strings.TrimSpace(output), "\n")
	return strings.TrimSpace(lines[len(lines)-1]), nil
}
