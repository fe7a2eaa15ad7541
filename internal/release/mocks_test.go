package release

import (
	"context"
	"fmt"
	"strings"

	"github.com/stretchr/testify/mock"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

type MockConsole struct {
	mock.Mock
	said []string
}

func (m *MockConsole) Say(format string, args ...any) {
	m.said = append(m.said, fmt.Sprintf(format, args...))
}

func (m *MockConsole) Confirm(question string) (bool, error) {
	args := m.Called(question)
	return args.Bool(0), args.Error(1)
}

type MockRepository struct {
	mock.Mock
}

func (m *MockRepository) Fetch(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockRepository) TagExists(ctx context.Context, tag string) (bool, error) {
	args := m.Called(ctx, tag)
	return args.Bool(0), args.Error(1)
}

func (m *MockRepository) LatestTag(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) IsRepository(ctx context.Context) bool {
	args := m.Called(ctx)
	return args.Bool(0)
}

func (m *MockRepository) RemoteURL(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockRepository) Commits(ctx context.Context, tag string) ([]models.Commit, error) {
	args := m.Called(ctx, tag)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Commit), args.Error(1)
}

// fakeSource serves canned resources and records every lookup.
type fakeSource struct {
	pullRequests map[string]models.PullRequest
	issues       map[string]models.Issue
	failures     map[string]error // keyed by "pr/<n>" or "issue/<n>"
	calls        []string
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		pullRequests: make(map[string]models.PullRequest),
		issues:       make(map[string]models.Issue),
		failures:     make(map[string]error),
	}
}

func (s *fakeSource) PullRequest(_ context.Context, number string) (models.PullRequest, error) {
	key := "pr/" + number
	s.calls = append(s.calls, key)
	if err, ok := s.failures[key]; ok {
		return models.PullRequest{}, err
	}
	pr, ok := s.pullRequests[number]
	if !ok {
		return models.PullRequest{}, models.NewNotFoundError("pull request", number)
	}
	return pr, nil
}

func (s *fakeSource) Issue(_ context.Context, number string) (models.Issue, error) {
	key := "issue/" + number
	s.calls = append(s.calls, key)
	if err, ok := s.failures[key]; ok {
		return models.Issue{}, err
	}
	issue, ok := s.issues[number]
	if !ok {
		return models.Issue{}, models.NewNotFoundError("issue", number)
	}
	return issue, nil
}

func (s *fakeSource) callsWithPrefix(prefix string) []string {
	var out []string
	for _, c := range s.calls {
		if strings.HasPrefix(c, prefix) {
			out = append(out, c)
		}
	}
	return out
}
