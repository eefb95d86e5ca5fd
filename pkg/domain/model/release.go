package model

// ReleaseRecord is the outcome of publishing a release. Produced once
// per pipeline run and never mutated afterwards.
type ReleaseRecord struct {
	Version string // Bare semantic version, also the tag name
	Name    string // Release name as created on the hosting platform
	Body    string // Release body markdown
	URL     string // Canonical HTML URL of the release
}
