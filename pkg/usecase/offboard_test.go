package usecase_test

import (
	"context"
	"testing"

	"github.com/idops-lab/offramp/pkg/domain/interfaces/mocks"
	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/idops-lab/offramp/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

func testAccounts() []*model.Account {
	return []*model.Account{
		{
			ID:            types.AccountID("u-alice"),
			DisplayName:   "xEM - Alice Smith",
			PrincipalName: types.PrincipalName("alice@example.com"),
		},
		{
			ID:            types.AccountID("u-bob"),
			DisplayName:   "Bob Jones",
			PrincipalName: types.PrincipalName("bob@example.com"),
		},
	}
}

func newDirectoryMock() *mocks.DirectoryClientMock {
	return &mocks.DirectoryClientMock{
		ListAccountsFunc: func(ctx context.Context) ([]*model.Account, error) {
			return testAccounts(), nil
		},
		ListMembershipsFunc: func(ctx context.Context, accountID types.AccountID) ([]*model.Group, error) {
			return []*model.Group{
				{ID: types.GroupID("g-sales"), DisplayName: "Sales"},
				{ID: types.GroupID("g-allstaff"), DisplayName: "AllStaff"},
			}, nil
		},
		RemoveMemberFunc: func(ctx context.Context, groupID types.GroupID, accountID types.AccountID) error {
			return nil
		},
		ListLicensesFunc: func(ctx context.Context, accountID types.AccountID) ([]*model.LicenseAssignment, error) {
			return []*model.LicenseAssignment{
				{SKU: types.LicenseSKU("sku-e3"), SKUPartNumber: "E3"},
			}, nil
		},
		RemoveLicenseFunc: func(ctx context.Context, accountID types.AccountID, sku types.LicenseSKU) error {
			return nil
		},
		CloseFunc: func() error { return nil },
	}
}

func newMailboxMock() *mocks.MailboxClientMock {
	return &mocks.MailboxClientMock{
		ConvertToSharedFunc: func(ctx context.Context, principal types.PrincipalName) error {
			return nil
		},
		CloseFunc: func() error { return nil },
	}
}

func exitPolicy() *model.Policy {
	return &model.Policy{Prefix: "xEM - "}
}

func TestOffboardRun(t *testing.T) {
	ctx := context.Background()

	t.Run("processes only accounts flagged by the prefix", func(t *testing.T) {
		directory := newDirectoryMock()
		mailbox := newMailboxMock()

		uc := usecase.NewOffboard(directory, mailbox, exitPolicy())
		report, err := uc.Run(ctx)
		gt.NoError(t, err)
		gt.V(t, report).NotNil()

		gt.Equal(t, len(report.Accounts), 1)
		gt.Equal(t, report.Accounts[0].PrincipalName, types.PrincipalName("alice@example.com"))

		// Bob must never reach the worker
		memberships := directory.ListMembershipsCalls()
		gt.Equal(t, len(memberships), 1)
		gt.Equal(t, memberships[0].AccountID, types.AccountID("u-alice"))

		// Alice: two group removals, one license removal, one conversion
		removals := directory.RemoveMemberCalls()
		gt.Equal(t, len(removals), 2)
		gt.Equal(t, removals[0].GroupID, types.GroupID("g-sales"))
		gt.Equal(t, removals[1].GroupID, types.GroupID("g-allstaff"))

		licenses := directory.RemoveLicenseCalls()
		gt.Equal(t, len(licenses), 1)
		gt.Equal(t, licenses[0].Sku, types.LicenseSKU("sku-e3"))

		conversions := mailbox.ConvertToSharedCalls()
		gt.Equal(t, len(conversions), 1)
		gt.Equal(t, conversions[0].Principal, types.PrincipalName("alice@example.com"))

		summary := report.Summarize()
		gt.Equal(t, summary.Succeeded, 4)
		gt.Equal(t, summary.Failed, 0)

		// Sessions torn down after the loop
		gt.Equal(t, len(directory.CloseCalls()), 1)
		gt.Equal(t, len(mailbox.CloseCalls()), 1)
	})

	t.Run("empty candidate set ends the run successfully", func(t *testing.T) {
		directory := newDirectoryMock()
		directory.ListAccountsFunc = func(ctx context.Context) ([]*model.Account, error) {
			return []*model.Account{
				{ID: "u-bob", DisplayName: "Bob Jones", PrincipalName: "bob@example.com"},
			}, nil
		}
		mailbox := newMailboxMock()

		uc := usecase.NewOffboard(directory, mailbox, exitPolicy())
		report, err := uc.Run(ctx)
		gt.NoError(t, err)
		gt.Equal(t, len(report.Accounts), 0)

		gt.Equal(t, len(directory.ListMembershipsCalls()), 0)
		gt.Equal(t, len(mailbox.ConvertToSharedCalls()), 0)

		// Zero work is not an error; normal teardown still runs
		gt.Equal(t, len(directory.CloseCalls()), 1)
		gt.Equal(t, len(mailbox.CloseCalls()), 1)
	})

	t.Run("listing failure is fatal and short-circuits teardown", func(t *testing.T) {
		directory := newDirectoryMock()
		directory.ListAccountsFunc = func(ctx context.Context) ([]*model.Account, error) {
			return nil, goerr.New("directory unavailable")
		}
		mailbox := newMailboxMock()

		uc := usecase.NewOffboard(directory, mailbox, exitPolicy())
		report, err := uc.Run(ctx)
		gt.Error(t, err)
		gt.Nil(t, report)

		gt.Equal(t, len(directory.ListMembershipsCalls()), 0)
		gt.Equal(t, len(mailbox.ConvertToSharedCalls()), 0)
		gt.Equal(t, len(directory.CloseCalls()), 0)
		gt.Equal(t, len(mailbox.CloseCalls()), 0)
	})

	t.Run("account without memberships or licenses still gets mailbox conversion", func(t *testing.T) {
		directory := newDirectoryMock()
		directory.ListMembershipsFunc = func(ctx context.Context, accountID types.AccountID) ([]*model.Group, error) {
			return nil, nil
		}
		directory.ListLicensesFunc = func(ctx context.Context, accountID types.AccountID) ([]*model.LicenseAssignment, error) {
			return nil, nil
		}
		mailbox := newMailboxMock()

		uc := usecase.NewOffboard(directory, mailbox, exitPolicy())
		report, err := uc.Run(ctx)
		gt.NoError(t, err)

		gt.Equal(t, len(directory.RemoveMemberCalls()), 0)
		gt.Equal(t, len(directory.RemoveLicenseCalls()), 0)
		gt.Equal(t, len(mailbox.ConvertToSharedCalls()), 1)

		stages := report.Accounts[0].Stages
		gt.Equal(t, len(stages), 3)
		gt.Equal(t, stages[0].Stage, model.StageGroups)
		gt.False(t, stages[0].Failed())
		gt.Equal(t, len(stages[0].Items), 0)
		gt.Equal(t, stages[1].Stage, model.StageLicense)
		gt.Equal(t, len(stages[1].Items), 0)
	})

	t.Run("one failed group removal does not block the others", func(t *testing.T) {
		directory := newDirectoryMock()
		directory.ListMembershipsFunc = func(ctx context.Context, accountID types.AccountID) ([]*model.Group, error) {
			return []*model.Group{
				{ID: "g-1", DisplayName: "Sales"},
				{ID: "g-2", DisplayName: "AllStaff"},
				{ID: "g-3", DisplayName: "Engineering"},
			}, nil
		}
		directory.RemoveMemberFunc = func(ctx context.Context, groupID types.GroupID, accountID types.AccountID) error {
			if groupID == "g-2" {
				return goerr.New("insufficient privileges")
			}
			return nil
		}
		mailbox := newMailboxMock()

		uc := usecase.NewOffboard(directory, mailbox, exitPolicy())
		report, err := uc.Run(ctx)
		gt.NoError(t, err)

		gt.Equal(t, len(directory.RemoveMemberCalls()), 3)

		items := report.Accounts[0].Stages[0].Items
		gt.Equal(t, len(items), 3)
		gt.Equal(t, items[0].Outcome, model.OutcomeSucceeded)
		gt.Equal(t, items[1].Outcome, model.OutcomeFailed)
		gt.Equal(t, items[2].Outcome, model.OutcomeSucceeded)
		gt.True(t, items[1].Error != "")

		// Later stages still ran
		gt.Equal(t, len(directory.RemoveLicenseCalls()), 1)
		gt.Equal(t, len(mailbox.ConvertToSharedCalls()), 1)
	})

	t.Run("membership fetch failure skips the stage, not the account", func(t *testing.T) {
		directory := newDirectoryMock()
		directory.ListMembershipsFunc = func(ctx context.Context, accountID types.AccountID) ([]*model.Group, error) {
			return nil, goerr.New("request throttled")
		}
		mailbox := newMailboxMock()

		uc := usecase.NewOffboard(directory, mailbox, exitPolicy())
		report, err := uc.Run(ctx)
		gt.NoError(t, err)

		gt.Equal(t, len(directory.RemoveMemberCalls()), 0)

		stages := report.Accounts[0].Stages
		gt.True(t, stages[0].Failed())

		// License and mailbox stages still ran
		gt.Equal(t, len(directory.RemoveLicenseCalls()), 1)
		gt.Equal(t, len(mailbox.ConvertToSharedCalls()), 1)
	})

	t.Run("mailbox conversion failure does not abort later accounts", func(t *testing.T) {
		directory := newDirectoryMock()
		directory.ListAccountsFunc = func(ctx context.Context) ([]*model.Account, error) {
			return []*model.Account{
				{ID: "u-alice", DisplayName: "xEM - Alice Smith", PrincipalName: "alice@example.com"},
				{ID: "u-carol", DisplayName: "xEM - Carol White", PrincipalName: "carol@example.com"},
			}, nil
		}
		mailbox := newMailboxMock()
		mailbox.ConvertToSharedFunc = func(ctx context.Context, principal types.PrincipalName) error {
			if principal == "alice@example.com" {
				return goerr.New("mailbox locked")
			}
			return nil
		}

		uc := usecase.NewOffboard(directory, mailbox, exitPolicy())
		report, err := uc.Run(ctx)
		gt.NoError(t, err)

		gt.Equal(t, len(report.Accounts), 2)
		gt.Equal(t, len(mailbox.ConvertToSharedCalls()), 2)

		alice := report.Accounts[0].Stages[2].Items
		gt.Equal(t, alice[0].Outcome, model.OutcomeFailed)
		carol := report.Accounts[1].Stages[2].Items
		gt.Equal(t, carol[0].Outcome, model.OutcomeSucceeded)
	})

	t.Run("excluded groups and retained licenses are skipped", func(t *testing.T) {
		directory := newDirectoryMock()
		mailbox := newMailboxMock()

		policy := &model.Policy{
			Prefix:           "xEM - ",
			ExcludedGroups:   []string{"AllStaff"},
			RetainedLicenses: []string{"sku-e3"},
		}

		uc := usecase.NewOffboard(directory, mailbox, policy)
		report, err := uc.Run(ctx)
		gt.NoError(t, err)

		removals := directory.RemoveMemberCalls()
		gt.Equal(t, len(removals), 1)
		gt.Equal(t, removals[0].GroupID, types.GroupID("g-sales"))
		gt.Equal(t, len(directory.RemoveLicenseCalls()), 0)

		groups := report.Accounts[0].Stages[0].Items
		gt.Equal(t, groups[1].Item, "AllStaff")
		gt.Equal(t, groups[1].Outcome, model.OutcomeSkipped)

		licenses := report.Accounts[0].Stages[1].Items
		gt.Equal(t, licenses[0].Outcome, model.OutcomeSkipped)
	})

	t.Run("dry run enumerates but never mutates", func(t *testing.T) {
		directory := newDirectoryMock()
		mailbox := newMailboxMock()

		uc := usecase.NewOffboard(directory, mailbox, exitPolicy(), usecase.WithDryRun())
		report, err := uc.Run(ctx)
		gt.NoError(t, err)
		gt.True(t, report.DryRun)

		gt.Equal(t, len(directory.ListMembershipsCalls()), 1)
		gt.Equal(t, len(directory.ListLicensesCalls()), 1)
		gt.Equal(t, len(directory.RemoveMemberCalls()), 0)
		gt.Equal(t, len(directory.RemoveLicenseCalls()), 0)
		gt.Equal(t, len(mailbox.ConvertToSharedCalls()), 0)

		summary := report.Summarize()
		gt.Equal(t, summary.Skipped, 4)
		gt.Equal(t, summary.Succeeded, 0)
	})
}
