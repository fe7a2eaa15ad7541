package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Runner executes a git query and returns its standard output.
type Runner interface {
	Run(ctx context.Context, args ...string) (string, error)
}

// ExecRunner runs the git binary inside Dir (the current directory when empty).
type ExecRunner struct {
	Dir string
}

func (r ExecRunner) Run(ctx context.Context, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = r.Dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	output, err := cmd.Output()
	if err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg == "" {
			return "", fmt.Errorf("git %s: %w", args[0], err)
		}
		return "", fmt.Errorf("git %s: %s: %w", args[0], msg, err)
	}
	return string(output), nil
}

// Client groups the read-only queries the release notes need.
type Client struct {
	runner Runner
	remote string
}

// NewClient returns a Client talking to the given remote (origin when empty).
func NewClient(runner Runner, remote string) *Client {
	if remote == "" {
		remote = "origin"
	}
	return &Client{runner: runner, remote: remote}
}

// IsRepository reports whether the runner's directory is inside a work tree.
func (c *Client) IsRepository(ctx context.Context) bool {
	output, err := c.runner.Run(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(output) == "true"
}
