package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/idops-lab/offramp/pkg/cli/config"
	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/m-mizutani/gt"
)

func TestPolicyConfigure(t *testing.T) {
	t.Run("prefix flag alone", func(t *testing.T) {
		cfg := config.Policy{Prefix: "xEM - "}
		policy, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, policy.Prefix, "xEM - ")
	})

	t.Run("missing prefix is rejected", func(t *testing.T) {
		cfg := config.Policy{}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})

	t.Run("policy file is loaded", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yml")
		gt.NoError(t, os.WriteFile(path, []byte(`
prefix: "xEM - "
excluded_groups:
  - AllStaff
retained_licenses:
  - sku-e3
`), 0o644))

		cfg := config.Policy{File: path}
		policy, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, policy.Prefix, "xEM - ")
		gt.True(t, policy.GroupExcluded("AllStaff"))
		gt.True(t, policy.LicenseRetained(types.LicenseSKU("sku-e3")))
	})

	t.Run("prefix flag overrides the file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "policy.yml")
		gt.NoError(t, os.WriteFile(path, []byte("prefix: \"xOLD - \"\n"), 0o644))

		cfg := config.Policy{Prefix: "xEM - ", File: path}
		policy, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Equal(t, policy.Prefix, "xEM - ")
	})

	t.Run("unreadable file is an error", func(t *testing.T) {
		cfg := config.Policy{File: filepath.Join(t.TempDir(), "missing.yml")}
		_, err := cfg.Configure()
		gt.Error(t, err)
	})
}
