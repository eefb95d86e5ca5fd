package config

import "github.com/urfave/cli/v3"

// Changelog holds changelog directory configuration
type Changelog struct {
	Dir     string
	DocsURL string
}

// Flags returns CLI flags for changelog configuration
func (c *Changelog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "changelog-dir",
			Usage:       "Directory holding per-version changelog files",
			Value:       "changelog",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("HERALD_CHANGELOG_DIR"),
		},
		&cli.StringFlag{
			Name:        "docs-url",
			Usage:       "Base URL of the upgrade documentation",
			Destination: &c.DocsURL,
			Sources:     cli.EnvVars("HERALD_DOCS_URL"),
		},
	}
}
