package model

import "github.com/idops-lab/offramp/pkg/domain/types"

// Account is a transient snapshot of a directory account. The directory
// service owns the entity; this program never writes it back.
type Account struct {
	ID             types.AccountID     `json:"id" firestore:"id"`
	DisplayName    string              `json:"display_name" firestore:"display_name"`
	PrincipalName  types.PrincipalName `json:"principal_name" firestore:"principal_name"`
	Mail           string              `json:"mail,omitempty" firestore:"mail,omitempty"`
	AccountEnabled bool                `json:"account_enabled" firestore:"account_enabled"`
}

// Group is a directory group the account is a member of
type Group struct {
	ID          types.GroupID `json:"id" firestore:"id"`
	DisplayName string        `json:"display_name" firestore:"display_name"`
}

// LicenseAssignment is a license SKU attached to an account
type LicenseAssignment struct {
	SKU           types.LicenseSKU `json:"sku" firestore:"sku"`
	SKUPartNumber string           `json:"sku_part_number,omitempty" firestore:"sku_part_number,omitempty"`
}
