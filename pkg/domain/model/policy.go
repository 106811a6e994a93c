package model

import (
	"strings"

	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Policy controls which accounts are offboarded and what is left in place.
// The zero value is invalid; Prefix is required.
type Policy struct {
	// Prefix marks accounts flagged for exit, matched against the display
	// name (e.g. "xEM - ").
	Prefix string `yaml:"prefix"`

	// ExcludedGroups are group display names that are never removed
	ExcludedGroups []string `yaml:"excluded_groups"`

	// RetainedLicenses are SKU identifiers that are never removed
	RetainedLicenses []string `yaml:"retained_licenses"`
}

// Validate validates the policy
func (p *Policy) Validate() error {
	if strings.TrimSpace(p.Prefix) == "" {
		return goerr.New("offboarding prefix is required")
	}
	return nil
}

// Matches reports whether an account's display name flags it for exit
func (p *Policy) Matches(displayName string) bool {
	return strings.HasPrefix(displayName, p.Prefix)
}

// GroupExcluded reports whether the group must be left in place
func (p *Policy) GroupExcluded(displayName string) bool {
	for _, g := range p.ExcludedGroups {
		if strings.EqualFold(g, displayName) {
			return true
		}
	}
	return false
}

// LicenseRetained reports whether the SKU must be left assigned
func (p *Policy) LicenseRetained(sku types.LicenseSKU) bool {
	for _, s := range p.RetainedLicenses {
		if strings.EqualFold(s, sku.String()) {
			return true
		}
	}
	return false
}
