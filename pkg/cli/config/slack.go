package config

import (
	"log/slog"

	"github.com/idops-lab/offramp/pkg/service/notify"
	"github.com/urfave/cli/v3"
)

// Slack holds run-summary notification configuration
type Slack struct {
	OAuthToken string
	Channel    string
}

// Flags returns CLI flags for Slack configuration
func (s *Slack) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "slack-oauth-token",
			Usage:       "Slack OAuth token for run summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("OFFRAMP_SLACK_OAUTH_TOKEN"),
			Destination: &s.OAuthToken,
		},
		&cli.StringFlag{
			Name:        "slack-channel",
			Usage:       "Slack channel for run summaries",
			Category:    "Slack",
			Sources:     cli.EnvVars("OFFRAMP_SLACK_CHANNEL"),
			Destination: &s.Channel,
		},
	}
}

// IsConfigured checks if Slack notification is configured
func (s *Slack) IsConfigured() bool {
	return s.OAuthToken != "" && s.Channel != ""
}

// ConfigureOptional creates a notifier if configured, returns nil if not
func (s *Slack) ConfigureOptional(logger *slog.Logger) *notify.Service {
	if !s.IsConfigured() {
		logger.Debug("Slack not configured - run summaries will not be posted")
		return nil
	}
	return notify.New(s.OAuthToken, s.Channel)
}

// LogValue returns structured log value
func (s Slack) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Bool("has_oauth_token", s.OAuthToken != ""),
		slog.String("channel", s.Channel),
	)
}
