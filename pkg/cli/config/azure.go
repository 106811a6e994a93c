package config

import (
	"log/slog"
	"os"

	"github.com/idops-lab/offramp/pkg/service/msauth"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Azure holds the app-registration credential shared by the Graph and
// Exchange sessions.
type Azure struct {
	TenantID      string
	ClientID      string
	ClientSecret  string
	ClientKeyPath string
}

// Flags returns CLI flags for Azure configuration
func (a *Azure) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "azure-tenant-id",
			Usage:       "Directory tenant ID",
			Category:    "Azure",
			Sources:     cli.EnvVars("OFFRAMP_AZURE_TENANT_ID"),
			Destination: &a.TenantID,
		},
		&cli.StringFlag{
			Name:        "azure-client-id",
			Usage:       "App registration client ID",
			Category:    "Azure",
			Sources:     cli.EnvVars("OFFRAMP_AZURE_CLIENT_ID"),
			Destination: &a.ClientID,
		},
		&cli.StringFlag{
			Name:        "azure-client-secret",
			Usage:       "App registration client secret",
			Category:    "Azure",
			Sources:     cli.EnvVars("OFFRAMP_AZURE_CLIENT_SECRET"),
			Destination: &a.ClientSecret,
		},
		&cli.StringFlag{
			Name:        "azure-client-key",
			Usage:       "Path to a PEM private key for certificate credentials (used instead of the secret)",
			Category:    "Azure",
			Sources:     cli.EnvVars("OFFRAMP_AZURE_CLIENT_KEY"),
			Destination: &a.ClientKeyPath,
		},
	}
}

// Credential builds the msauth credential, reading the client key file when
// configured.
func (a *Azure) Credential() (*msauth.Credential, error) {
	cred := &msauth.Credential{
		TenantID:     a.TenantID,
		ClientID:     a.ClientID,
		ClientSecret: a.ClientSecret,
	}

	if a.ClientKeyPath != "" {
		key, err := os.ReadFile(a.ClientKeyPath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read client key",
				goerr.V("path", a.ClientKeyPath))
		}
		cred.ClientKey = key
	}

	if err := cred.Validate(); err != nil {
		return nil, err
	}
	return cred, nil
}

// LogValue returns structured log value
func (a Azure) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("tenant_id", a.TenantID),
		slog.String("client_id", a.ClientID),
		slog.Bool("has_client_secret", a.ClientSecret != ""),
		slog.Bool("has_client_key", a.ClientKeyPath != ""),
	)
}
