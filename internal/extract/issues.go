package extract

import (
	"regexp"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

var (
	closingKeywordPattern = regexp.MustCompile(`(?i)(?:close[sd]?|fix(?:e[sd])?|resolve[sd]?)\s+#(\d+)`)
	branchNumberPattern   = regexp.MustCompile(`\d+`)
)

// IssueNumbers returns the issues a pull request refers to: closing keyword
// references, then bare references in body and title, then the first number
// in the source branch name.
func IssueNumbers(pr models.PullRequest) []string {
	text := pr.Body + " " + pr.Title

	numbers := newOrderedSet()
	numbers.add(patternMatcher(closingKeywordPattern)(text)...)
	numbers.add(patternMatcher(bareNumberPattern)(text)...)

	if n := branchNumberPattern.FindString(pr.HeadRef); n != "" {
		numbers.add(n)
	}

	return numbers.values()
}
