package models

// Stats holds the accumulated code statistics of all fetched pull requests.
type Stats struct {
	Additions    int
	Deletions    int
	ChangedFiles int
}

// ReleaseData is everything fetched for one run. Pull requests and
// contributors keep their insertion order so the report is deterministic.
type ReleaseData struct {
	pullRequests map[string]PullRequest
	prOrder      []string

	Issues map[string]Issue

	contributors     map[string]int
	contributorOrder []string

	Stats Stats
}

// Contributor is a login with its tally of authored pull requests and issues.
type Contributor struct {
	Login string
	Count int
}

func NewReleaseData() *ReleaseData {
	return &ReleaseData{
		pullRequests: make(map[string]PullRequest),
		Issues:       make(map[string]Issue),
		contributors: make(map[string]int),
	}
}

// AddPullRequest records a pull request once; later calls for the same
// number are ignored.
func (d *ReleaseData) AddPullRequest(pr PullRequest) {
	if _, ok := d.pullRequests[pr.Number]; ok {
		return
	}
	d.pullRequests[pr.Number] = pr
	d.prOrder = append(d.prOrder, pr.Number)
}

// PullRequest returns the pull request stored under number.
func (d *ReleaseData) PullRequest(number string) (PullRequest, bool) {
	pr, ok := d.pullRequests[number]
	return pr, ok
}

// PullRequests returns the stored pull requests in fetch order.
func (d *ReleaseData) PullRequests() []PullRequest {
	prs := make([]PullRequest, 0, len(d.prOrder))
	for _, n := range d.prOrder {
		prs = append(prs, d.pullRequests[n])
	}
	return prs
}

// AddContribution increments the tally for login. Empty logins are ignored.
func (d *ReleaseData) AddContribution(login string) {
	if login == "" {
		return
	}
	if _, ok := d.contributors[login]; !ok {
		d.contributorOrder = append(d.contributorOrder, login)
	}
	d.contributors[login]++
}

// Contributors returns the tallies in first-seen order.
func (d *ReleaseData) Contributors() []Contributor {
	out := make([]Contributor, 0, len(d.contributorOrder))
	for _, login := range d.contributorOrder {
		out = append(out, Contributor{Login: login, Count: d.contributors[login]})
	}
	return out
}

// IssueGroup is an issue together with the pull requests that reference it
// first, in fetch order.
type IssueGroup struct {
	Issue        string
	PullRequests []string
}

// GroupedChanges partitions the pull requests of a release.
type GroupedChanges struct {
	WithIssues    []IssueGroup
	WithoutIssues []string
}
