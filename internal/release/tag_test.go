package release

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

func TestTagResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("explicit tag that exists", func(t *testing.T) {
		repo := new(MockRepository)
		console := new(MockConsole)
		repo.On("Fetch", ctx).Return(nil).Once()
		repo.On("TagExists", ctx, "v1.0.0").Return(true, nil).Once()

		tag, err := NewTagResolver(repo, console).Resolve(ctx, "v1.0.0")

		require.NoError(t, err)
		assert.Equal(t, "v1.0.0", tag)
		repo.AssertExpectations(t)
		console.AssertNotCalled(t, "Confirm", "Compare from the latest tag: v1.0.0?")
	})

	t.Run("explicit tag that does not exist", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Fetch", ctx).Return(nil).Once()
		repo.On("TagExists", ctx, "v9").Return(false, nil).Once()

		_, err := NewTagResolver(repo, new(MockConsole)).Resolve(ctx, "v9")

		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrValidation))
		assert.Contains(t, err.Error(), "the specified tag does not exist: v9")
	})

	t.Run("latest tag confirmed", func(t *testing.T) {
		repo := new(MockRepository)
		console := new(MockConsole)
		repo.On("Fetch", ctx).Return(nil).Once()
		repo.On("LatestTag", ctx).Return("v2.1.0", nil).Once()
		console.On("Confirm", "Compare from the latest tag: v2.1.0?").Return(true, nil).Once()

		tag, err := NewTagResolver(repo, console).Resolve(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, "v2.1.0", tag)
		console.AssertExpectations(t)
	})

	t.Run("latest tag declined", func(t *testing.T) {
		repo := new(MockRepository)
		console := new(MockConsole)
		repo.On("Fetch", ctx).Return(nil).Once()
		repo.On("LatestTag", ctx).Return("v2.1.0", nil).Once()
		console.On("Confirm", "Compare from the latest tag: v2.1.0?").Return(false, nil).Once()

		_, err := NewTagResolver(repo, console).Resolve(ctx, "")

		require.Error(t, err)
		assert.True(t, errors.Is(err, models.ErrValidation))
		assert.Contains(t, err.Error(), "no tag selected")
	})

	t.Run("no tags means full history", func(t *testing.T) {
		repo := new(MockRepository)
		console := new(MockConsole)
		repo.On("Fetch", ctx).Return(nil).Once()
		repo.On("LatestTag", ctx).Return("", nil).Once()

		tag, err := NewTagResolver(repo, console).Resolve(ctx, "")

		require.NoError(t, err)
		assert.Equal(t, "", tag)
		assert.Equal(t, []string{"No tags found. Generating notes for all commits."}, console.said)
	})

	t.Run("fetch failure stops before tag inspection", func(t *testing.T) {
		repo := new(MockRepository)
		repo.On("Fetch", ctx).Return(errors.New("failed to fetch: offline")).Once()

		_, err := NewTagResolver(repo, new(MockConsole)).Resolve(ctx, "v1.0.0")

		require.Error(t, err)
		repo.AssertNotCalled(t, "TagExists", ctx, "v1.0.0")
	})
}
