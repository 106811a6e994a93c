package cli

import (
	"context"
	"log/slog"

	"github.com/idops-lab/offramp/pkg/cli/config"
	"github.com/idops-lab/offramp/pkg/usecase"
	"github.com/idops-lab/offramp/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdRun() *cli.Command {
	var (
		policyCfg   config.Policy
		azureCfg    config.Azure
		graphCfg    config.Graph
		exchangeCfg config.Exchange
		auditCfg    config.Audit
		slackCfg    config.Slack
		dryRun      bool
	)

	flags := joinFlags(
		policyCfg.Flags(),
		azureCfg.Flags(),
		graphCfg.Flags(),
		exchangeCfg.Flags(),
		auditCfg.Flags(),
		slackCfg.Flags(),
	)
	flags = append(flags, &cli.BoolFlag{
		Name:        "dry-run",
		Usage:       "Report what would change without mutating anything",
		Sources:     cli.EnvVars("OFFRAMP_DRY_RUN"),
		Destination: &dryRun,
	})

	return &cli.Command{
		Name:  "run",
		Usage: "Offboard accounts flagged by the exit prefix",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := runOffboarding(ctx, &policyCfg, &azureCfg, &graphCfg, &exchangeCfg, &auditCfg, &slackCfg, dryRun); err != nil {
				apperr.Handle(ctx, err)
				return err
			}
			return nil
		},
	}
}

func runOffboarding(
	ctx context.Context,
	policyCfg *config.Policy,
	azureCfg *config.Azure,
	graphCfg *config.Graph,
	exchangeCfg *config.Exchange,
	auditCfg *config.Audit,
	slackCfg *config.Slack,
	dryRun bool,
) error {
	logger := ctxlog.From(ctx)

	policy, err := policyCfg.Configure()
	if err != nil {
		return err
	}

	logger.Info("Starting offboarding run",
		slog.Any("policy", policyCfg),
		slog.Any("azure", azureCfg),
		slog.Any("graph", graphCfg),
		slog.Any("exchange", exchangeCfg),
		slog.Any("audit", auditCfg),
		slog.Any("slack", slackCfg),
		slog.Bool("dry_run", dryRun),
	)

	cred, err := azureCfg.Credential()
	if err != nil {
		return err
	}

	// Sessions are established fail-fast. A failure here terminates the run
	// without tearing down an already-established sibling session.
	directory, err := graphCfg.Configure(ctx, cred)
	if err != nil {
		return goerr.Wrap(err, "failed to establish directory session")
	}
	logger.Info("Directory session established")

	mailbox, err := exchangeCfg.Configure(ctx, cred)
	if err != nil {
		return goerr.Wrap(err, "failed to establish mailbox session")
	}
	logger.Info("Mailbox session established")

	store, err := auditCfg.Configure(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	notifier := slackCfg.ConfigureOptional(logger)

	var opts []usecase.Option
	if dryRun {
		opts = append(opts, usecase.WithDryRun())
	}
	uc := usecase.NewOffboard(directory, mailbox, policy, opts...)

	report, err := uc.Run(ctx)
	if err != nil {
		return err
	}

	if err := store.PutRunReport(ctx, report); err != nil {
		logger.Warn("Failed to persist run report", "runID", report.ID, "error", err)
	}

	if notifier != nil {
		if err := notifier.PostRunSummary(ctx, report); err != nil {
			logger.Warn("Failed to post run summary to Slack", "runID", report.ID, "error", err)
		}
	}

	return nil
}
