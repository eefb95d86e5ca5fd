package config

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/urfave/cli/v3"
)

var repoSlugRe = regexp.MustCompile(`^[\w.-]+/[\w.-]+$`)

// GitHub holds hosting API configuration. Token auth is the default;
// when an App ID is set the client authenticates as a GitHub App
// installation instead.
type GitHub struct {
	Token string
	Repo  string // owner/name identifier

	AppID          string
	InstallationID string
	PrivateKey     string
}

// Flags returns CLI flags for GitHub configuration
func (c *GitHub) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "github-token",
			Usage:       "GitHub API token",
			Destination: &c.Token,
			Sources:     cli.EnvVars("HERALD_GITHUB_TOKEN", "GITHUB_TOKEN"),
		},
		&cli.StringFlag{
			Name:        "github-repo",
			Usage:       "Target repository as owner/name",
			Destination: &c.Repo,
			Sources:     cli.EnvVars("HERALD_GITHUB_REPO", "GITHUB_REPOSITORY"),
		},
		&cli.StringFlag{
			Name:        "github-app-id",
			Usage:       "GitHub App ID (enables App authentication)",
			Destination: &c.AppID,
			Sources:     cli.EnvVars("HERALD_GITHUB_APP_ID"),
		},
		&cli.StringFlag{
			Name:        "github-installation-id",
			Usage:       "GitHub App installation ID",
			Destination: &c.InstallationID,
			Sources:     cli.EnvVars("HERALD_GITHUB_INSTALLATION_ID"),
		},
		&cli.StringFlag{
			Name:        "github-private-key",
			Usage:       "GitHub App private key (PEM)",
			Destination: &c.PrivateKey,
			Sources:     cli.EnvVars("HERALD_GITHUB_PRIVATE_KEY"),
		},
	}
}

// Validate checks that credentials and the repository identifier are
// present before any network call is attempted
func (c *GitHub) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.Token, validation.Required.When(c.AppID == "").Error("a GitHub token is required")),
		validation.Field(&c.Repo,
			validation.Required.Error("a repository identifier is required"),
			validation.Match(repoSlugRe).Error("must be of the form owner/name"),
		),
		validation.Field(&c.InstallationID, validation.Required.When(c.AppID != "").Error("an installation ID is required for App authentication")),
		validation.Field(&c.PrivateKey, validation.Required.When(c.AppID != "").Error("a private key is required for App authentication")),
	)
}

// Owner returns the owner part of the owner/name identifier
func (c *GitHub) Owner() string {
	owner, _, _ := strings.Cut(c.Repo, "/")
	return owner
}

// Name returns the name part of the owner/name identifier
func (c *GitHub) Name() string {
	_, name, _ := strings.Cut(c.Repo, "/")
	return name
}
