package cli

import (
	"context"
	"strconv"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/herald-dev/herald/pkg/cli/config"
	"github.com/herald-dev/herald/pkg/domain/interfaces"
	"github.com/herald-dev/herald/pkg/infra/discord"
	githubinfra "github.com/herald-dev/herald/pkg/infra/github"
	"github.com/herald-dev/herald/pkg/usecase"
)

func cmdRun() *cli.Command {
	var (
		githubCfg    config.GitHub
		changelogCfg config.Changelog
		discordCfg   config.Discord
	)

	flags := append(githubCfg.Flags(), changelogCfg.Flags()...)
	flags = append(flags, discordCfg.Flags()...)

	return &cli.Command{
		Name:    "run",
		Aliases: []string{"r"},
		Usage:   "Detect, publish and announce the next release",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := ctxlog.From(ctx)

			if err := githubCfg.Validate(); err != nil {
				return goerr.Wrap(err, "invalid GitHub configuration")
			}
			if err := discordCfg.Validate(); err != nil {
				return goerr.Wrap(err, "invalid Discord configuration")
			}

			githubClient, err := newGitHubClient(&githubCfg)
			if err != nil {
				return err
			}

			outputs := NewOutputs()
			changelog := usecase.NewChangelog(changelogCfg.Dir, changelogCfg.DocsURL)

			version, err := changelog.LatestVersion(ctx)
			if err != nil {
				return err
			}
			if version == "" {
				logger.Info("No release candidate found in changelog directory",
					"dir", changelogCfg.Dir)
				outputs.Set("skipped", "true")
				return outputs.Write(ctx)
			}

			releaseUC := usecase.NewRelease(githubClient, githubCfg.Owner(), githubCfg.Name())

			published, err := releaseUC.Published(ctx, version)
			if err != nil {
				return err
			}
			if published {
				logger.Info("Latest changelog version is already tagged, nothing to do",
					"version", version)
				outputs.Set("skipped", "true")
				outputs.Set("version", version)
				return outputs.Write(ctx)
			}

			entry, err := changelog.Entry(ctx, version)
			if err != nil {
				return err
			}

			rec, err := releaseUC.Publish(ctx, entry)
			if err != nil {
				return err
			}

			outputs.Set("skipped", "false")
			outputs.Set("version", rec.Version)
			outputs.Set("release_name", rec.Name)
			outputs.Set("release_url", rec.URL)
			outputs.Set("release_body", rec.Body)
			if err := outputs.Write(ctx); err != nil {
				return err
			}

			notifyUC := usecase.NewNotify(discord.NewClient(discordCfg.WebhookURL), discordCfg.Content)
			if err := notifyUC.Announce(ctx, rec); err != nil {
				// The release exists at this point; only the
				// announcement failed.
				return goerr.Wrap(err, "release published but notification failed",
					goerr.V("release_url", rec.URL))
			}

			return nil
		},
	}
}

// newGitHubClient builds the hosting API client from configuration,
// preferring GitHub App authentication when an App ID is set
func newGitHubClient(cfg *config.GitHub) (interfaces.GitHubClient, error) {
	if cfg.AppID == "" {
		return githubinfra.NewClient(cfg.Token)
	}

	appID, err := strconv.ParseInt(cfg.AppID, 10, 64)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub App ID", goerr.V("app_id", cfg.AppID))
	}
	installationID, err := strconv.ParseInt(cfg.InstallationID, 10, 64)
	if err != nil {
		return nil, goerr.Wrap(err, "invalid GitHub installation ID", goerr.V("installation_id", cfg.InstallationID))
	}

	return githubinfra.NewAppClient(appID, installationID, []byte(cfg.PrivateKey))
}
