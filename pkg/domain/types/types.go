package types

import "github.com/google/uuid"

// AccountID represents a directory account identifier
type AccountID string

// String returns the string representation
func (id AccountID) String() string {
	return string(id)
}

// PrincipalName represents a login identity (user principal name)
type PrincipalName string

// String returns the string representation
func (n PrincipalName) String() string {
	return string(n)
}

// GroupID represents a directory group identifier
type GroupID string

// String returns the string representation
func (id GroupID) String() string {
	return string(id)
}

// LicenseSKU represents a license SKU identifier
type LicenseSKU string

// String returns the string representation
func (s LicenseSKU) String() string {
	return string(s)
}

// RunID represents an offboarding run identifier
type RunID string

// String returns the string representation
func (id RunID) String() string {
	return string(id)
}

// NewRunID creates a new RunID
func NewRunID() RunID {
	return RunID(uuid.New().String())
}

// TenantID represents a directory tenant identifier
type TenantID string

// String returns the string representation
func (id TenantID) String() string {
	return string(id)
}
