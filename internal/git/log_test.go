package git

import (
	"context"
	"errors"
	"testing"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestParseCommits(t *testing.T) {
	t.Run("splits fields on the delimiter", func(t *testing.T) {
		output := "abc123¬¬Fix bug¬¬Detailed description\ndef456¬¬Add feature¬¬Another description"

		commits := parseCommits(output)

		require.Len(t, commits, 2)
		assert.Equal(t, models.Commit{Hash: "abc123", Subject: "Fix bug", Body: "Detailed description"}, commits[0])
		assert.Equal(t, models.Commit{Hash: "def456", Subject: "Add feature", Body: "Another description"}, commits[1])
	})

	t.Run("missing body defaults to empty", func(t *testing.T) {
		commits := parseCommits("abc123¬¬Only a subject")

		require.Len(t, commits, 1)
		assert.Equal(t, "", commits[0].Body)
	})

	t.Run("keeps delimiters inside the body", func(t *testing.T) {
		commits := parseCommits("abc123¬¬Subject¬¬body with ¬¬ inside")

		require.Len(t, commits, 1)
		assert.Equal(t, "body with ¬¬ inside", commits[0].Body)
	})

	t.Run("drops lines without a subject field", func(t *testing.T) {
		output := "abc123¬¬Subject¬¬first body line\nsecond body line\n\n   \ndef456¬¬Next¬¬"

		commits := parseCommits(output)

		require.Len(t, commits, 2)
		assert.Equal(t, "abc123", commits[0].Hash)
		assert.Equal(t, "def456", commits[1].Hash)
	})

	t.Run("empty log yields empty slice", func(t *testing.T) {
		commits := parseCommits("")

		assert.NotNil(t, commits)
		assert.Empty(t, commits)
	})
}

func TestClient_Commits(t *testing.T) {
	ctx := context.Background()

	t.Run("full history without a tag", func(t *testing.T) {
		runner := new(MockRunner)
		runner.On("Run", ctx, []string{"log", "--pretty=format:%H¬¬%s¬¬%b"}).
			Return("abc¬¬Merge pull request #1 from x/y¬¬", nil).Once()

		commits, err := NewClient(runner, "").Commits(ctx, "")

		require.NoError(t, err)
		require.Len(t, commits, 1)
		assert.Equal(t, "Merge pull request #1 from x/y", commits[0].Subject)
		runner.AssertExpectations(t)
	})

	t.Run("range after a tag", func(t *testing.T) {
		runner := new(MockRunner)
		runner.On("Run", ctx, []string{"log", "--pretty=format:%H¬¬%s¬¬%b", "v1.2.0..HEAD"}).
			Return("", nil).Once()

		commits, err := NewClient(runner, "").Commits(ctx, "v1.2.0")

		require.NoError(t, err)
		assert.Empty(t, commits)
		runner.AssertExpectations(t)
	})

	t.Run("propagates git failures", func(t *testing.T) {
		runner := new(MockRunner)
		runner.On("Run", ctx, mock.Anything).Return("", errors.New("bad revision")).Once()

		_, err := NewClient(runner, "").Commits(ctx, "nope")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to run git log")
	})
}
