package usecase

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"

	"github.com/herald-dev/herald/pkg/domain/model"
)

const (
	changelogExt  = ".md"
	upgradeMarker = "-upgrade"
)

// Changelog reads per-version release notes from a directory. Each
// version has one <semver>.md file and optionally a companion
// <semver>-upgrade.md guide.
type Changelog struct {
	dir     string
	docsURL string
}

// NewChangelog creates a Changelog over dir. docsURL is the base URL of
// the upgrade documentation; when empty, upgrade notes reference the
// guide without a link.
func NewChangelog(dir, docsURL string) *Changelog {
	return &Changelog{
		dir:     dir,
		docsURL: strings.TrimSuffix(docsURL, "/"),
	}
}

// Scan lists the version files in the directory. Upgrade guides are
// flagged separately; files whose stem is not a full semantic version
// are skipped.
func (c *Changelog) Scan(ctx context.Context) ([]model.VersionFile, error) {
	entries, err := os.ReadDir(c.dir)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read changelog directory", goerr.V("dir", c.dir))
	}

	var files []model.VersionFile
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), changelogExt) {
			continue
		}

		stem := strings.TrimSuffix(entry.Name(), changelogExt)
		kind := model.KindRelease
		if strings.Contains(stem, upgradeMarker) {
			stem = strings.Replace(stem, upgradeMarker, "", 1)
			kind = model.KindUpgradeGuide
		}

		v, err := semver.StrictNewVersion(stem)
		if err != nil {
			ctxlog.From(ctx).Debug("Skipping non-version changelog file",
				"file", entry.Name(), "reason", err)
			continue
		}

		files = append(files, model.VersionFile{
			Version: v.Original(),
			Path:    entry.Name(),
			Kind:    kind,
		})
	}

	return files, nil
}

// LatestVersion returns the semantically highest version that has a
// release file in the directory, or an empty string when none exist.
func (c *Changelog) LatestVersion(ctx context.Context) (string, error) {
	files, err := c.Scan(ctx)
	if err != nil {
		return "", err
	}

	var latest *semver.Version
	for _, f := range files {
		if f.Kind != model.KindRelease {
			continue
		}
		// Scan already validated the stem, a parse error here would be
		// a programming error.
		v := semver.MustParse(f.Version)
		if latest == nil || v.GreaterThan(latest) {
			latest = v
		}
	}

	if latest == nil {
		return "", nil
	}
	return latest.Original(), nil
}

// Entry returns the release note body for version with the heading
// stripped. A missing or unreadable file degrades to a generic body
// with a warning; a note that is empty after heading removal is an
// authoring error and fails. When an upgrade guide exists for the
// version, a note pointing at it is appended.
func (c *Changelog) Entry(ctx context.Context, version string) (*model.ChangelogEntry, error) {
	path := filepath.Join(c.dir, version+changelogExt)

	var body string
	raw, err := os.ReadFile(path)
	if err != nil {
		ctxlog.From(ctx).Warn("Changelog file is not readable, falling back to generic body",
			"path", path, "error", err)
		body = "Release " + version
	} else {
		body = stripHeading(string(raw), version)
	}

	body = strings.TrimSpace(body)
	if body == "" {
		return nil, goerr.New("changelog entry is empty after heading removal",
			goerr.V("version", version), goerr.V("path", path))
	}

	if c.hasUpgradeGuide(version) {
		body += "\n\n" + c.upgradeNote(version)
	}

	return &model.ChangelogEntry{Version: version, Body: body}, nil
}

// stripHeading removes a leading "# <version>" or "# v<version>" line.
// Only a heading at the very start of the text is removed.
func stripHeading(text, version string) string {
	re := regexp.MustCompile(`^#[ \t]*v?` + regexp.QuoteMeta(version) + `[ \t]*\n?`)
	return re.ReplaceAllString(strings.ReplaceAll(text, "\r\n", "\n"), "")
}

func (c *Changelog) hasUpgradeGuide(version string) bool {
	_, err := os.Stat(filepath.Join(c.dir, version+upgradeMarker+changelogExt))
	return err == nil
}

func (c *Changelog) upgradeNote(version string) string {
	if c.docsURL == "" {
		return fmt.Sprintf("**Note**: v%s requires manual migration steps, see the upgrade guide before updating.", version)
	}
	return fmt.Sprintf("**Note**: v%s requires manual migration steps, see %s/v%s before updating.", version, c.docsURL, version)
}
