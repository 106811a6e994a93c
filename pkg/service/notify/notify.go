package notify

import (
	"context"
	"fmt"
	"strings"

	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/slack-go/slack"
)

// Service posts offboarding run summaries to a Slack channel
type Service struct {
	client  *slack.Client
	channel string
}

// New creates a new notifier. Extra slack options are mainly for tests.
func New(token, channel string, opts ...slack.Option) *Service {
	return &Service{
		client:  slack.New(token, opts...),
		channel: channel,
	}
}

// PostRunSummary posts a summary of the run to the configured channel
func (s *Service) PostRunSummary(ctx context.Context, report *model.RunReport) error {
	summary := report.Summarize()

	title := "Offboarding run finished"
	if report.DryRun {
		title = "Offboarding dry run finished"
	}

	body := fmt.Sprintf("*Prefix:* `%s`\n*Accounts:* %d\n*Succeeded:* %d\n*Failed:* %d\n*Skipped:* %d",
		report.Prefix, summary.Accounts, summary.Succeeded, summary.Failed, summary.Skipped)

	blocks := []slack.Block{
		slack.NewHeaderBlock(slack.NewTextBlockObject(slack.PlainTextType, title, false, false)),
		slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, body, false, false), nil, nil),
	}

	if failed := failedAccounts(report); len(failed) > 0 {
		text := ":warning: Accounts with failures:\n• " + strings.Join(failed, "\n• ")
		blocks = append(blocks,
			slack.NewSectionBlock(slack.NewTextBlockObject(slack.MarkdownType, text, false, false), nil, nil))
	}

	_, _, err := s.client.PostMessageContext(ctx, s.channel,
		slack.MsgOptionText(title, false),
		slack.MsgOptionBlocks(blocks...),
	)
	if err != nil {
		return goerr.Wrap(err, "failed to post run summary to Slack",
			goerr.V("channel", s.channel),
			goerr.V("runID", report.ID))
	}
	return nil
}

func failedAccounts(report *model.RunReport) []string {
	var failed []string
	for _, acct := range report.Accounts {
		for _, stage := range acct.Stages {
			if hasFailure(stage) {
				failed = append(failed, acct.PrincipalName.String())
				break
			}
		}
	}
	return failed
}

func hasFailure(stage model.StageResult) bool {
	if stage.Failed() {
		return true
	}
	for _, item := range stage.Items {
		if item.Outcome == model.OutcomeFailed {
			return true
		}
	}
	return false
}
