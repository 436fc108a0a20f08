package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	slacksvc "github.com/secmon-lab/talos/pkg/service/slack"
	"github.com/secmon-lab/talos/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Slack holds configuration for report notifications
type Slack struct {
	botToken  string
	channelID string
}

func (x *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-bot-token",
			Usage:       "Slack Bot User OAuth Token (notifications are disabled when empty)",
			Category:    "Slack",
			Sources:     cli.EnvVars("TALOS_SLACK_BOT_TOKEN"),
			Destination: &x.botToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel ID for new report notifications",
			Category:    "Slack",
			Sources:     cli.EnvVars("TALOS_SLACK_CHANNEL"),
			Destination: &x.channelID,
		},
	}
}

func (x Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int("bot-token.len", len(x.botToken)),
		slog.String("channel", x.channelID),
	)
}

// IsConfigured reports whether both the token and the channel are set
func (x *Slack) IsConfigured() bool {
	return x.botToken != "" && x.channelID != ""
}

// Configure creates a Notifier when Slack is configured. Returns nil without
// error when both flags are empty so the caller can run without notifications.
func (x *Slack) Configure() (*slacksvc.Notifier, error) {
	if x.botToken == "" && x.channelID == "" {
		logging.Default().Info("Slack not configured, report notifications disabled")
		return nil, nil
	}

	if !x.IsConfigured() {
		return nil, goerr.Wrap(ErrIncompleteSlack, "set both --slack-bot-token and --slack-channel")
	}

	notifier, err := slacksvc.New(x.botToken, x.channelID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create slack notifier")
	}

	logging.Default().Info("Slack report notifications enabled", "channel", x.channelID)

	return notifier, nil
}
