package config

import (
	"log/slog"
	"os"

	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Policy holds the offboarding policy configuration. The policy file is
// optional; the prefix flag overrides the file value when both are set.
type Policy struct {
	Prefix string
	File   string
}

// Flags returns CLI flags for Policy configuration
func (p *Policy) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "prefix",
			Usage:       "Display-name prefix flagging accounts for exit (e.g. \"xEM - \")",
			Category:    "Policy",
			Sources:     cli.EnvVars("OFFRAMP_PREFIX"),
			Destination: &p.Prefix,
		},
		&cli.StringFlag{
			Name:        "policy-file",
			Usage:       "YAML policy file (prefix, excluded groups, retained licenses)",
			Category:    "Policy",
			Sources:     cli.EnvVars("OFFRAMP_POLICY_FILE"),
			Destination: &p.File,
		},
	}
}

// Configure loads and validates the offboarding policy
func (p *Policy) Configure() (*model.Policy, error) {
	policy := &model.Policy{}

	if p.File != "" {
		data, err := os.ReadFile(p.File)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to read policy file",
				goerr.V("path", p.File))
		}
		if err := yaml.Unmarshal(data, policy); err != nil {
			return nil, goerr.Wrap(err, "failed to parse policy file",
				goerr.V("path", p.File))
		}
	}

	if p.Prefix != "" {
		policy.Prefix = p.Prefix
	}

	if err := policy.Validate(); err != nil {
		return nil, err
	}
	return policy, nil
}

// LogValue returns structured log value
func (p Policy) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("prefix", p.Prefix),
		slog.String("file", p.File),
	)
}
