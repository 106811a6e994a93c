package config

import (
	"context"
	"log/slog"

	"github.com/idops-lab/offramp/pkg/domain/interfaces"
	"github.com/idops-lab/offramp/pkg/repository"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Audit holds run-report persistence configuration. Firestore wins when a
// project is configured; otherwise a local JSONL file; otherwise memory.
type Audit struct {
	FirestoreProject  string
	FirestoreDatabase string
	FilePath          string
}

// Flags returns CLI flags for Audit configuration
func (a *Audit) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "firestore-project",
			Usage:       "GCP project ID for the Firestore audit store",
			Category:    "Audit",
			Sources:     cli.EnvVars("OFFRAMP_FIRESTORE_PROJECT"),
			Destination: &a.FirestoreProject,
		},
		&cli.StringFlag{
			Name:        "firestore-database",
			Usage:       "Firestore database ID",
			Category:    "Audit",
			Value:       "(default)",
			Sources:     cli.EnvVars("OFFRAMP_FIRESTORE_DATABASE"),
			Destination: &a.FirestoreDatabase,
		},
		&cli.StringFlag{
			Name:        "audit-file",
			Usage:       "Append run reports to this JSONL file",
			Category:    "Audit",
			Sources:     cli.EnvVars("OFFRAMP_AUDIT_FILE"),
			Destination: &a.FilePath,
		},
	}
}

// Configure creates the audit store
func (a *Audit) Configure(ctx context.Context) (interfaces.AuditStore, error) {
	logger := ctxlog.From(ctx)

	if a.FirestoreProject != "" {
		store, err := repository.NewFirestore(ctx, a.FirestoreProject, a.FirestoreDatabase)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init firestore audit store",
				goerr.V("project", a.FirestoreProject),
				goerr.V("database", a.FirestoreDatabase),
			)
		}
		return store, nil
	}

	if a.FilePath != "" {
		store, err := repository.NewFile(a.FilePath)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to init file audit store",
				goerr.V("path", a.FilePath))
		}
		return store, nil
	}

	logger.Warn("Using memory audit store. Run reports will be lost when the process exits")
	return repository.NewMemory(), nil
}

// LogValue returns structured log value
func (a Audit) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("firestore_project", a.FirestoreProject),
		slog.String("firestore_database", a.FirestoreDatabase),
		slog.String("file", a.FilePath),
	)
}
