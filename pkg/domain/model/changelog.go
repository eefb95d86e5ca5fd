package model

// FileKind distinguishes the documents kept in a changelog directory
type FileKind string

const (
	// KindRelease is a per-version release note file
	KindRelease FileKind = "release"
	// KindUpgradeGuide is the optional companion document describing
	// manual migration steps for a version
	KindUpgradeGuide FileKind = "upgrade-guide"
)

// VersionFile is a changelog document discovered by the directory scan.
// At most one release file and one upgrade guide exist per version.
type VersionFile struct {
	Version string // Semantic version taken from the file stem
	Path    string // Path of the file inside the changelog directory
	Kind    FileKind
}

// ChangelogEntry is the release note content for a single version,
// with the version heading already stripped
type ChangelogEntry struct {
	Version string
	Body    string
}
