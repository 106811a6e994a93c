package usecase

import (
	"context"
	"time"

	"github.com/idops-lab/offramp/pkg/domain/interfaces"
	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
)

// Offboard runs the offboarding pipeline: locate accounts flagged by the
// policy prefix, then strip each one of group memberships and licenses and
// convert its mailbox to shared. Accounts are processed strictly
// sequentially in directory listing order.
type Offboard struct {
	directory interfaces.DirectoryClient
	mailbox   interfaces.MailboxClient
	policy    *model.Policy
	dryRun    bool
}

// Option configures the use case
type Option func(*Offboard)

// WithDryRun records every mutation as skipped instead of calling the
// service. Enumeration calls still run so the report shows what would
// change.
func WithDryRun() Option {
	return func(u *Offboard) {
		u.dryRun = true
	}
}

// NewOffboard creates the offboarding use case
func NewOffboard(directory interfaces.DirectoryClient, mailbox interfaces.MailboxClient, policy *model.Policy, opts ...Option) *Offboard {
	u := &Offboard{
		directory: directory,
		mailbox:   mailbox,
		policy:    policy,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Run executes one offboarding run. A listing failure is fatal and returns
// without tearing down the sessions; everything past that point is
// best-effort and recorded in the report. See DESIGN.md for the teardown
// decision.
func (u *Offboard) Run(ctx context.Context) (*model.RunReport, error) {
	logger := ctxlog.From(ctx)
	report := model.NewRunReport(u.policy.Prefix, u.dryRun)

	candidates, err := u.FindCandidates(ctx)
	if err != nil {
		return nil, err
	}

	if len(candidates) == 0 {
		logger.Info("No users found matching prefix", "prefix", u.policy.Prefix)
		u.closeSessions(ctx)
		report.FinishedAt = time.Now()
		return report, nil
	}

	for _, acct := range candidates {
		report.Accounts = append(report.Accounts, u.Deprovision(ctx, acct))
	}

	u.closeSessions(ctx)
	report.FinishedAt = time.Now()

	summary := report.Summarize()
	logger.Info("Offboarding run finished",
		"runID", report.ID,
		"accounts", summary.Accounts,
		"succeeded", summary.Succeeded,
		"failed", summary.Failed,
		"skipped", summary.Skipped,
	)
	return report, nil
}

// FindCandidates fetches the full account listing and filters client-side
// for display names carrying the exit prefix. The directory API exposes only
// bulk listing, so the filter cannot be pushed server-side.
func (u *Offboard) FindCandidates(ctx context.Context) ([]*model.Account, error) {
	logger := ctxlog.From(ctx)

	accounts, err := u.directory.ListAccounts(ctx)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to list directory accounts",
			goerr.V("prefix", u.policy.Prefix))
	}

	var candidates []*model.Account
	for _, acct := range accounts {
		if u.policy.Matches(acct.DisplayName) {
			candidates = append(candidates, acct)
		}
	}

	logger.Info("Located offboarding candidates",
		"total", len(accounts),
		"matched", len(candidates),
		"prefix", u.policy.Prefix,
	)
	return candidates, nil
}

// Deprovision runs the three stages for one account. Stage order is fixed:
// groups, then licenses, then mailbox. Each stage is isolated; no stage
// failure blocks a later stage and nothing is rolled back.
func (u *Offboard) Deprovision(ctx context.Context, acct *model.Account) *model.AccountResult {
	logger := ctxlog.From(ctx)
	logger.Info("Processing account",
		"principal", acct.PrincipalName,
		"displayName", acct.DisplayName,
	)

	return &model.AccountResult{
		AccountID:     acct.ID,
		DisplayName:   acct.DisplayName,
		PrincipalName: acct.PrincipalName,
		Stages: []model.StageResult{
			u.removeGroups(ctx, acct),
			u.removeLicenses(ctx, acct),
			u.convertMailbox(ctx, acct),
		},
	}
}

func (u *Offboard) removeGroups(ctx context.Context, acct *model.Account) model.StageResult {
	logger := ctxlog.From(ctx)
	result := model.StageResult{Stage: model.StageGroups}

	groups, err := u.directory.ListMemberships(ctx, acct.ID)
	if err != nil {
		logger.Error("Failed to list group memberships",
			"principal", acct.PrincipalName, "error", err)
		result.Err = err.Error()
		return result
	}

	if len(groups) == 0 {
		logger.Info("No group memberships", "principal", acct.PrincipalName)
		return result
	}

	for _, group := range groups {
		if u.policy.GroupExcluded(group.DisplayName) {
			logger.Info("Skipping excluded group",
				"principal", acct.PrincipalName, "group", group.DisplayName)
			result.Items = append(result.Items, model.ItemResult{
				Item:    group.DisplayName,
				Outcome: model.OutcomeSkipped,
			})
			continue
		}

		if u.dryRun {
			logger.Info("Dry run: would remove from group",
				"principal", acct.PrincipalName, "group", group.DisplayName)
			result.Items = append(result.Items, model.ItemResult{
				Item:    group.DisplayName,
				Outcome: model.OutcomeSkipped,
			})
			continue
		}

		logger.Info("Attempting removal from group",
			"principal", acct.PrincipalName, "group", group.DisplayName)
		if err := u.directory.RemoveMember(ctx, group.ID, acct.ID); err != nil {
			logger.Warn("Failed to remove from group",
				"principal", acct.PrincipalName, "group", group.DisplayName, "error", err)
			result.Items = append(result.Items, model.ItemResult{
				Item:    group.DisplayName,
				Outcome: model.OutcomeFailed,
				Error:   err.Error(),
			})
			continue
		}

		logger.Info("Removed from group",
			"principal", acct.PrincipalName, "group", group.DisplayName)
		result.Items = append(result.Items, model.ItemResult{
			Item:    group.DisplayName,
			Outcome: model.OutcomeSucceeded,
		})
	}
	return result
}

func (u *Offboard) removeLicenses(ctx context.Context, acct *model.Account) model.StageResult {
	logger := ctxlog.From(ctx)
	result := model.StageResult{Stage: model.StageLicense}

	licenses, err := u.directory.ListLicenses(ctx, acct.ID)
	if err != nil {
		logger.Error("Failed to list license assignments",
			"principal", acct.PrincipalName, "error", err)
		result.Err = err.Error()
		return result
	}

	if len(licenses) == 0 {
		logger.Info("No license assignments", "principal", acct.PrincipalName)
		return result
	}

	for _, lic := range licenses {
		item := lic.SKUPartNumber
		if item == "" {
			item = lic.SKU.String()
		}

		if u.policy.LicenseRetained(lic.SKU) {
			logger.Info("Skipping retained license",
				"principal", acct.PrincipalName, "sku", item)
			result.Items = append(result.Items, model.ItemResult{
				Item:    item,
				Outcome: model.OutcomeSkipped,
			})
			continue
		}

		if u.dryRun {
			logger.Info("Dry run: would remove license",
				"principal", acct.PrincipalName, "sku", item)
			result.Items = append(result.Items, model.ItemResult{
				Item:    item,
				Outcome: model.OutcomeSkipped,
			})
			continue
		}

		logger.Info("Attempting license removal",
			"principal", acct.PrincipalName, "sku", item)
		if err := u.directory.RemoveLicense(ctx, acct.ID, lic.SKU); err != nil {
			logger.Warn("Failed to remove license",
				"principal", acct.PrincipalName, "sku", item, "error", err)
			result.Items = append(result.Items, model.ItemResult{
				Item:    item,
				Outcome: model.OutcomeFailed,
				Error:   err.Error(),
			})
			continue
		}

		logger.Info("Removed license",
			"principal", acct.PrincipalName, "sku", item)
		result.Items = append(result.Items, model.ItemResult{
			Item:    item,
			Outcome: model.OutcomeSucceeded,
		})
	}
	return result
}

func (u *Offboard) convertMailbox(ctx context.Context, acct *model.Account) model.StageResult {
	logger := ctxlog.From(ctx)
	result := model.StageResult{Stage: model.StageMailbox}
	item := acct.PrincipalName.String()

	if u.dryRun {
		logger.Info("Dry run: would convert mailbox to shared", "principal", acct.PrincipalName)
		result.Items = append(result.Items, model.ItemResult{
			Item:    item,
			Outcome: model.OutcomeSkipped,
		})
		return result
	}

	logger.Info("Attempting mailbox conversion to shared", "principal", acct.PrincipalName)
	if err := u.mailbox.ConvertToShared(ctx, acct.PrincipalName); err != nil {
		logger.Error("Failed to convert mailbox to shared",
			"principal", acct.PrincipalName, "error", err)
		result.Items = append(result.Items, model.ItemResult{
			Item:    item,
			Outcome: model.OutcomeFailed,
			Error:   err.Error(),
		})
		return result
	}

	logger.Info("Converted mailbox to shared", "principal", acct.PrincipalName)
	result.Items = append(result.Items, model.ItemResult{
		Item:    item,
		Outcome: model.OutcomeSucceeded,
	})
	return result
}

// closeSessions tears down both service sessions. Teardown failures are
// warnings; they never fail the run.
func (u *Offboard) closeSessions(ctx context.Context) {
	logger := ctxlog.From(ctx)

	if err := u.directory.Close(); err != nil {
		logger.Warn("Failed to close directory session", "error", err)
	}
	if err := u.mailbox.Close(); err != nil {
		logger.Warn("Failed to close mailbox session", "error", err)
	}
}
