package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/herald-dev/herald/pkg/cli/config"
	"github.com/herald-dev/herald/pkg/domain/model"
	"github.com/herald-dev/herald/pkg/infra/discord"
	"github.com/herald-dev/herald/pkg/usecase"
)

func cmdNotify() *cli.Command {
	var (
		discordCfg config.Discord

		name     string
		url      string
		body     string
		bodyFile string
	)

	flags := append(discordCfg.Flags(),
		&cli.StringFlag{
			Name:        "name",
			Usage:       "Release name used as the embed title",
			Required:    true,
			Destination: &name,
		},
		&cli.StringFlag{
			Name:        "url",
			Usage:       "Release URL the embed links to",
			Destination: &url,
		},
		&cli.StringFlag{
			Name:        "body",
			Usage:       "Release body markdown",
			Destination: &body,
		},
		&cli.StringFlag{
			Name:        "body-file",
			Usage:       "Read the release body from a file instead",
			Destination: &bodyFile,
		},
	)

	return &cli.Command{
		Name:  "notify",
		Usage: "Format a release body and post it to the webhook",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := discordCfg.Validate(); err != nil {
				return goerr.Wrap(err, "invalid Discord configuration")
			}

			if bodyFile != "" {
				raw, err := os.ReadFile(bodyFile)
				if err != nil {
					return goerr.Wrap(err, "failed to read body file", goerr.V("path", bodyFile))
				}
				body = string(raw)
			}

			rec := &model.ReleaseRecord{
				Name: name,
				Body: body,
				URL:  url,
			}

			notifyUC := usecase.NewNotify(discord.NewClient(discordCfg.WebhookURL), discordCfg.Content)
			return notifyUC.Announce(ctx, rec)
		},
	}
}
