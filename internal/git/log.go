package git

import (
	"context"
	"fmt"
	"strings"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

// FieldDelimiter separates hash, subject and body in the log format.
const FieldDelimiter = "¬¬"

// Commits returns the log after tag (exclusive) up to HEAD, or the whole
// history when tag is empty.
func (c *Client) Commits(ctx context.Context, tag string) ([]models.Commit, error) {
	// Format: hash¬¬subject¬¬body
	format := strings.Join([]string{"%H", "%s", "%b"}, FieldDelimiter)

	args := []string{
		"log",
		fmt.Sprintf("--pretty=format:%s", format),
	}
	if tag != "" {
		args = append(args, tag+"..HEAD")
	}

	output, err := c.runner.Run(ctx, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to run git log: %w", err)
	}

	return parseCommits(output), nil
}

// parseCommits keeps one commit per line. Lines without at least a hash and
// a subject, such as continuation lines of multi-line bodies, are dropped.
func parseCommits(output string) []models.Commit {
	commits := []models.Commit{}

	for _, line := range strings.Split(output, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}

		parts := strings.SplitN(line, FieldDelimiter, 3)
		if len(parts) < 2 {
			continue
		}

		commit := models.Commit{
			Hash:    parts[0],
			Subject: parts[1],
		}
		if len(parts) == 3 {
			commit.Body = parts[2]
		}

		commits = append(commits, commit)
	}

	return commits
}
