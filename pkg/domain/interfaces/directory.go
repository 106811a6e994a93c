package interfaces

//go:generate moq -out mocks/directory_mock.go -pkg mocks . DirectoryClient

import (
	"context"

	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/idops-lab/offramp/pkg/domain/types"
)

// DirectoryClient is the identity-directory side of the offboarding
// pipeline: account listing, group membership, and license assignment.
type DirectoryClient interface {
	// ListAccounts fetches the full account listing of the tenant
	ListAccounts(ctx context.Context) ([]*model.Account, error)

	// ListMemberships fetches the groups the account is a member of
	ListMemberships(ctx context.Context, accountID types.AccountID) ([]*model.Group, error)

	// RemoveMember removes the account from one group
	RemoveMember(ctx context.Context, groupID types.GroupID, accountID types.AccountID) error

	// ListLicenses fetches the license SKUs assigned to the account
	ListLicenses(ctx context.Context, accountID types.AccountID) ([]*model.LicenseAssignment, error)

	// RemoveLicense removes one license SKU from the account
	RemoveLicense(ctx context.Context, accountID types.AccountID, sku types.LicenseSKU) error

	// Close releases the session
	Close() error
}
