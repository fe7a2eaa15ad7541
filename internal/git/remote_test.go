package git

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseGitHubRemote(t *testing.T) {
	tests := []struct {
		name        string
		remote      string
		wantOrg     string
		wantProject string
		wantOK      bool
	}{
		{"ssh with suffix", "git@github.com:Org/Repo.git", "Org", "Repo", true},
		{"https without suffix", "https://github.com/Org/Repo", "Org", "Repo", true},
		{"https with suffix", "https://github.com/Gizra/test-repo.git", "Gizra", "test-repo", true},
		{"trailing slash", "https://github.com/Org/Repo/", "Org", "Repo", true},
		{"ssh scheme", "ssh://git@github.com/Org/Repo.git", "Org", "Repo", true},
		{"dotted project", "git@github.com:Org/my.repo.git", "Org", "my.repo", true},
		{"other host", "git@gitlab.com:Org/Repo.git", "", "", false},
		{"empty", "", "", "", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			org, project, ok := ParseGitHubRemote(tc.remote)
			assert.Equal(t, tc.wantOK, ok)
			assert.Equal(t, tc.wantOrg, org)
			assert.Equal(t, tc.wantProject, project)
		})
	}
}

func TestClient_RemoteURL(t *testing.T) {
	ctx := context.Background()
	runner := new(MockRunner)
	runner.On("Run", ctx, []string{"remote", "get-url", "upstream"}).
		Return("git@github.com:Org/Repo.git\n", nil).Once()

	url, err := NewClient(runner, "upstream").RemoteURL(ctx)

	require.NoError(t, err)
	assert.Equal(t, "git@github.com:Org/Repo.git", url)
	runner.AssertExpectations(t)
}
