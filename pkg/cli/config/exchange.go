package config

import (
	"context"
	"log/slog"

	"github.com/idops-lab/offramp/pkg/service/exchange"
	"github.com/idops-lab/offramp/pkg/service/msauth"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Exchange holds the mailbox-service session configuration
type Exchange struct {
	Endpoint string
	Scope    string
}

// Flags returns CLI flags for Exchange configuration
func (e *Exchange) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "exchange-endpoint",
			Usage:       "Exchange admin endpoint for mailbox operations",
			Category:    "Exchange",
			Sources:     cli.EnvVars("OFFRAMP_EXCHANGE_ENDPOINT"),
			Destination: &e.Endpoint,
		},
		&cli.StringFlag{
			Name:        "exchange-scope",
			Usage:       "Resource scope for the Exchange token",
			Category:    "Exchange",
			Value:       exchange.DefaultScope,
			Sources:     cli.EnvVars("OFFRAMP_EXCHANGE_SCOPE"),
			Destination: &e.Scope,
		},
	}
}

// Validate validates the Exchange configuration
func (e *Exchange) Validate() error {
	if e.Endpoint == "" {
		return goerr.New("exchange endpoint is required")
	}
	return nil
}

// Configure establishes the mailbox session with its own token source and
// verifies it with a health probe. A failure here is fatal to the run.
func (e *Exchange) Configure(ctx context.Context, cred *msauth.Credential) (*exchange.Client, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}

	ts, err := cred.TokenSource(ctx, e.Scope)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Exchange token source")
	}

	client := exchange.New(ctx, ts, e.Endpoint)
	if err := client.Ping(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to connect to Exchange endpoint")
	}
	return client, nil
}

// LogValue returns structured log value
func (e Exchange) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("endpoint", e.Endpoint),
		slog.String("scope", e.Scope),
	)
}
