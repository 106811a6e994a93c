package cli

import (
	"context"

	"github.com/idops-lab/offramp/pkg/cli/config"
	"github.com/idops-lab/offramp/pkg/utils/apperr"
	"github.com/m-mizutani/ctxlog"
	"github.com/urfave/cli/v3"
)

func cmdRuns() *cli.Command {
	var auditCfg config.Audit

	flags := auditCfg.Flags()
	flags = append(flags, &cli.IntFlag{
		Name:  "limit",
		Usage: "Maximum number of runs to show",
		Value: 10,
	})

	return &cli.Command{
		Name:  "runs",
		Usage: "Show recent offboarding runs from the audit store",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := listRuns(ctx, &auditCfg, int(c.Int("limit"))); err != nil {
				apperr.Handle(ctx, err)
				return err
			}
			return nil
		},
	}
}

func listRuns(ctx context.Context, auditCfg *config.Audit, limit int) error {
	logger := ctxlog.From(ctx)

	store, err := auditCfg.Configure(ctx)
	if err != nil {
		return err
	}
	defer store.Close()

	reports, err := store.ListRunReports(ctx, limit)
	if err != nil {
		return err
	}

	if len(reports) == 0 {
		logger.Info("No offboarding runs recorded")
		return nil
	}

	for _, report := range reports {
		summary := report.Summarize()
		logger.Info("Offboarding run",
			"runID", report.ID,
			"prefix", report.Prefix,
			"dryRun", report.DryRun,
			"startedAt", report.StartedAt,
			"accounts", summary.Accounts,
			"succeeded", summary.Succeeded,
			"failed", summary.Failed,
			"skipped", summary.Skipped,
		)
	}
	return nil
}
