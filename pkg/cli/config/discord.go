package config

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
	"github.com/urfave/cli/v3"
)

// Discord holds webhook notification configuration
type Discord struct {
	WebhookURL string
	Content    string
}

// Flags returns CLI flags for Discord configuration
func (c *Discord) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "discord-webhook",
			Usage:       "Discord webhook URL",
			Destination: &c.WebhookURL,
			Sources:     cli.EnvVars("HERALD_DISCORD_WEBHOOK", "DISCORD_WEBHOOK_URL"),
		},
		&cli.StringFlag{
			Name:        "discord-content",
			Usage:       "Plain text posted beside the release embed",
			Destination: &c.Content,
			Sources:     cli.EnvVars("HERALD_DISCORD_CONTENT"),
		},
	}
}

// Validate checks that the webhook endpoint is configured
func (c *Discord) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.WebhookURL,
			validation.Required.Error("a webhook URL is required"),
			is.URL,
		),
	)
}
