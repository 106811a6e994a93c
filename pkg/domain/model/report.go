package model

import (
	"time"

	"github.com/idops-lab/offramp/pkg/domain/types"
)

// Outcome classifies the result of one remote mutation attempt
type Outcome string

const (
	OutcomeSucceeded Outcome = "succeeded"
	OutcomeFailed    Outcome = "failed"
	OutcomeSkipped   Outcome = "skipped"
)

// Stage names the deprovisioning stages in their fixed execution order
type Stage string

const (
	StageGroups  Stage = "groups"
	StageLicense Stage = "licenses"
	StageMailbox Stage = "mailbox"
)

// ItemResult records one per-item mutation attempt within a stage.
// Error holds the raw remote message; it is a string so reports round-trip
// through JSON and Firestore.
type ItemResult struct {
	Item    string  `json:"item" firestore:"item"`
	Outcome Outcome `json:"outcome" firestore:"outcome"`
	Error   string  `json:"error,omitempty" firestore:"error,omitempty"`
}

// StageResult records one stage of one account. Err is set only when the
// stage-level enumeration itself failed and the stage was skipped.
type StageResult struct {
	Stage Stage        `json:"stage" firestore:"stage"`
	Err   string       `json:"error,omitempty" firestore:"error,omitempty"`
	Items []ItemResult `json:"items,omitempty" firestore:"items,omitempty"`
}

// Failed reports whether the stage enumeration failed outright
func (s *StageResult) Failed() bool {
	return s.Err != ""
}

// AccountResult aggregates the three stage results for one account
type AccountResult struct {
	AccountID     types.AccountID     `json:"account_id" firestore:"account_id"`
	DisplayName   string              `json:"display_name" firestore:"display_name"`
	PrincipalName types.PrincipalName `json:"principal_name" firestore:"principal_name"`
	Stages        []StageResult       `json:"stages" firestore:"stages"`
}

// RunReport is the persisted record of one offboarding run
type RunReport struct {
	ID         types.RunID      `json:"id" firestore:"id"`
	Prefix     string           `json:"prefix" firestore:"prefix"`
	DryRun     bool             `json:"dry_run" firestore:"dry_run"`
	StartedAt  time.Time        `json:"started_at" firestore:"started_at"`
	FinishedAt time.Time        `json:"finished_at" firestore:"finished_at"`
	Accounts   []*AccountResult `json:"accounts,omitempty" firestore:"accounts,omitempty"`
}

// NewRunReport creates a report for a run starting now
func NewRunReport(prefix string, dryRun bool) *RunReport {
	return &RunReport{
		ID:        types.NewRunID(),
		Prefix:    prefix,
		DryRun:    dryRun,
		StartedAt: time.Now(),
	}
}

// Summary aggregates per-item outcomes across all accounts and stages
type Summary struct {
	Accounts  int `json:"accounts"`
	Succeeded int `json:"succeeded"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Summarize counts item outcomes over the whole run. Stage-level
// enumeration failures count as one failed item.
func (r *RunReport) Summarize() Summary {
	s := Summary{Accounts: len(r.Accounts)}
	for _, acct := range r.Accounts {
		for _, stage := range acct.Stages {
			if stage.Failed() {
				s.Failed++
				continue
			}
			for _, item := range stage.Items {
				switch item.Outcome {
				case OutcomeSucceeded:
					s.Succeeded++
				case OutcomeFailed:
					s.Failed++
				case OutcomeSkipped:
					s.Skipped++
				}
			}
		}
	}
	return s
}
