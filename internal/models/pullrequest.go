package models

// PullRequest mirrors the fields of a GitHub pull request that the
// changelog consumes. Numeric fields are zero when the API omits them.
type PullRequest struct {
	Number       string
	Title        string
	Body         string
	Author       string // user.login
	HeadRef      string // head.ref, the source branch
	Additions    int
	Deletions    int
	ChangedFiles int
}

// Issue mirrors the fields of a GitHub issue that the changelog consumes.
type Issue struct {
	Number string
	Title  string
	Author string // user.login
}
