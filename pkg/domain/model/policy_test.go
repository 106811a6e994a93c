package model_test

import (
	"testing"

	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestPolicyValidate(t *testing.T) {
	t.Run("prefix is required", func(t *testing.T) {
		policy := &model.Policy{}
		gt.Error(t, policy.Validate())

		policy.Prefix = "   "
		gt.Error(t, policy.Validate())

		policy.Prefix = "xEM - "
		gt.NoError(t, policy.Validate())
	})
}

func TestPolicyMatches(t *testing.T) {
	policy := &model.Policy{Prefix: "xEM - "}

	gt.True(t, policy.Matches("xEM - Alice Smith"))
	gt.False(t, policy.Matches("Bob Jones"))
	gt.False(t, policy.Matches("Alice xEM - Smith"))
	gt.False(t, policy.Matches("xem - alice smith")) // prefix match is case sensitive
}

func TestPolicyExclusions(t *testing.T) {
	policy := &model.Policy{
		Prefix:           "xEM - ",
		ExcludedGroups:   []string{"AllStaff"},
		RetainedLicenses: []string{"sku-e3"},
	}

	t.Run("excluded groups match case-insensitively", func(t *testing.T) {
		gt.True(t, policy.GroupExcluded("AllStaff"))
		gt.True(t, policy.GroupExcluded("allstaff"))
		gt.False(t, policy.GroupExcluded("Sales"))
	})

	t.Run("retained licenses match case-insensitively", func(t *testing.T) {
		gt.True(t, policy.LicenseRetained(types.LicenseSKU("sku-e3")))
		gt.True(t, policy.LicenseRetained(types.LicenseSKU("SKU-E3")))
		gt.False(t, policy.LicenseRetained(types.LicenseSKU("sku-e5")))
	})
}
