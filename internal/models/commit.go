package models

// Commit is one entry of the git log. Body is empty when the commit has none.
type Commit struct {
	Hash    string
	Subject string
	Body    string
}

// Text joins subject and body the way the extractors scan them.
func (c Commit) Text() string {
	return c.Subject + " " + c.Body
}
