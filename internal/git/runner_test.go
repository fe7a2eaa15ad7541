package git

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_IsRepository(t *testing.T) {
	ctx := context.Background()
	args := []string{"rev-parse", "--is-inside-work-tree"}

	inside := new(MockRunner)
	inside.On("Run", ctx, args).Return("true\n", nil)
	assert.True(t, NewClient(inside, "").IsRepository(ctx))

	outside := new(MockRunner)
	outside.On("Run", ctx, args).Return("", errors.New("not a git repository"))
	assert.False(t, NewClient(outside, "").IsRepository(ctx))
}

func TestNewClient_DefaultsRemote(t *testing.T) {
	assert.Equal(t, "origin", NewClient(new(MockRunner), "").remote)
	assert.Equal(t, "upstream", NewClient(new(MockRunner), "upstream").remote)
}
