// Package extract finds pull request and issue numbers in free-form text.
package extract

import (
	"regexp"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

type matcher func(text string) []string

func patternMatcher(re *regexp.Regexp) matcher {
	return func(text string) []string {
		var numbers []string
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			numbers = append(numbers, m[1])
		}
		return numbers
	}
}

var (
	mergeCommitPattern = regexp.MustCompile(`Merge pull request #(\d+)`)
	squashMergePattern = regexp.MustCompile(`\(#(\d+)\)`)
	bareNumberPattern  = regexp.MustCompile(`#(\d+)`)
)

// Ordered from most to least specific merge strategy.
var pullRequestMatchers = []matcher{
	patternMatcher(mergeCommitPattern),
	patternMatcher(squashMergePattern),
	patternMatcher(bareNumberPattern),
}

// PullRequestNumbers returns the unique pull request numbers referenced by
// commits, in first-seen order.
func PullRequestNumbers(commits []models.Commit) []string {
	seen := newOrderedSet()
	for _, c := range commits {
		seen.add(commitPullRequests(c.Text())...)
	}
	return seen.values()
}

// commitPullRequests applies only the first matcher that finds anything.
func commitPullRequests(text string) []string {
	for _, match := range pullRequestMatchers {
		if numbers := match(text); len(numbers) > 0 {
			return numbers
		}
	}
	return nil
}

type orderedSet struct {
	seen  map[string]struct{}
	order []string
}

func newOrderedSet() *orderedSet {
	return &orderedSet{seen: make(map[string]struct{})}
}

func (s *orderedSet) add(values ...string) {
	for _, v := range values {
		if _, ok := s.seen[v]; ok {
			continue
		}
		s.seen[v] = struct{}{}
		s.order = append(s.order, v)
	}
}

func (s *orderedSet) values() []string {
	return append([]string{}, s.order...)
}
