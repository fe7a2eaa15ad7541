package release

import (
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/extract"
	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

// Group files every pull request under the first issue it references, or
// under WithoutIssues when it references none.
func Group(data *models.ReleaseData) models.GroupedChanges {
	grouped := models.GroupedChanges{}
	index := make(map[string]int)

	for _, pr := range data.PullRequests() {
		issues := extract.IssueNumbers(pr)
		if len(issues) == 0 {
			grouped.WithoutIssues = append(grouped.WithoutIssues, pr.Number)
			continue
		}

		issue := issues[0]
		i, ok := index[issue]
		if !ok {
			i = len(grouped.WithIssues)
			index[issue] = i
			grouped.WithIssues = append(grouped.WithIssues, models.IssueGroup{Issue: issue})
		}
		grouped.WithIssues[i].PullRequests = append(grouped.WithIssues[i].PullRequests, pr.Number)
	}

	return grouped
}
