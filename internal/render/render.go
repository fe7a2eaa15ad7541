// Package render formats release data as a Markdown changelog.
package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/Johannes-Berggren/ReleaseGoblin/internal/models"
)

// LeadIn tells the reader where the copyable part starts.
const LeadIn = "Copy release notes below"

// Report is the full console output: the lead-in line followed by the changelog.
func Report(data *models.ReleaseData, grouped models.GroupedChanges) string {
	return LeadIn + "\n" + Changelog(data, grouped)
}

// Changelog renders issues with their pull requests, the remaining pull
// requests, contributors and code statistics.
func Changelog(data *models.ReleaseData, grouped models.GroupedChanges) string {
	var b strings.Builder

	title(&b, "Changelog")

	for _, group := range grouped.WithIssues {
		issueTitle := fmt.Sprintf("Issue #%s", group.Issue)
		if issue, ok := data.Issues[group.Issue]; ok && issue.Title != "" {
			issueTitle = issue.Title
		}
		fmt.Fprintf(&b, "- %s (#%s)\n", issueTitle, group.Issue)

		for _, number := range group.PullRequests {
			fmt.Fprintf(&b, "  - %s (#%s)\n", pullRequestTitle(data, number), number)
		}
	}

	if len(grouped.WithoutIssues) > 0 {
		b.WriteString("\n### Other Changes\n")
		for _, number := range grouped.WithoutIssues {
			fmt.Fprintf(&b, "- %s (#%s)\n", pullRequestTitle(data, number), number)
		}
	}

	if contributors := sortedContributors(data); len(contributors) > 0 {
		title(&b, "Contributors")
		for _, c := range contributors {
			fmt.Fprintf(&b, "- @%s (%d)\n", c.Login, c.Count)
		}
	}

	title(&b, "Code Statistics")
	fmt.Fprintf(&b, "- Lines added: %d\n", data.Stats.Additions)
	fmt.Fprintf(&b, "- Lines deleted: %d\n", data.Stats.Deletions)
	fmt.Fprintf(&b, "- Files changed: %d\n", data.Stats.ChangedFiles)

	return b.String()
}

func title(b *strings.Builder, name string) {
	fmt.Fprintf(b, "\n\n## %s\n", name)
}

func pullRequestTitle(data *models.ReleaseData, number string) string {
	pr, _ := data.PullRequest(number)
	return pr.Title
}

// Highest count first; ties keep first-seen order.
func sortedContributors(data *models.ReleaseData) []models.Contributor {
	contributors := data.Contributors()
	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Count > contributors[j].Count
	})
	return contributors
}
