package config

import (
	"context"
	"log/slog"

	"github.com/idops-lab/offramp/pkg/service/graph"
	"github.com/idops-lab/offramp/pkg/service/msauth"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Graph holds the directory-service session configuration
type Graph struct {
	BaseURL string
	Scope   string
}

// Flags returns CLI flags for Graph configuration
func (g *Graph) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "graph-base-url",
			Usage:       "Microsoft Graph endpoint override",
			Category:    "Graph",
			Sources:     cli.EnvVars("OFFRAMP_GRAPH_BASE_URL"),
			Destination: &g.BaseURL,
		},
		&cli.StringFlag{
			Name:        "graph-scope",
			Usage:       "Resource scope for the Graph token",
			Category:    "Graph",
			Value:       graph.DefaultScope,
			Sources:     cli.EnvVars("OFFRAMP_GRAPH_SCOPE"),
			Destination: &g.Scope,
		},
	}
}

// Configure establishes the directory session: acquires a token source for
// the credential and verifies it with a probe call. A failure here is fatal
// to the run.
func (g *Graph) Configure(ctx context.Context, cred *msauth.Credential) (*graph.Client, error) {
	ts, err := cred.TokenSource(ctx, g.Scope)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to configure Graph token source")
	}

	var opts []graph.Option
	if g.BaseURL != "" {
		opts = append(opts, graph.WithBaseURL(g.BaseURL))
	}

	client := graph.New(ctx, ts, opts...)
	if err := client.Ping(ctx); err != nil {
		return nil, goerr.Wrap(err, "failed to connect to Microsoft Graph")
	}
	return client, nil
}

// LogValue returns structured log value
func (g Graph) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("base_url", g.BaseURL),
		slog.String("scope", g.Scope),
	)
}
