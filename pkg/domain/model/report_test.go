package model_test

import (
	"testing"

	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/m-mizutani/gt"
)

func TestRunReportSummarize(t *testing.T) {
	report := model.NewRunReport("xEM - ", false)
	gt.True(t, report.ID != "")

	report.Accounts = []*model.AccountResult{
		{
			AccountID: "u-1",
			Stages: []model.StageResult{
				{
					Stage: model.StageGroups,
					Items: []model.ItemResult{
						{Item: "Sales", Outcome: model.OutcomeSucceeded},
						{Item: "AllStaff", Outcome: model.OutcomeFailed, Error: "denied"},
					},
				},
				{
					Stage: model.StageLicense,
					Err:   "request throttled",
				},
				{
					Stage: model.StageMailbox,
					Items: []model.ItemResult{
						{Item: "u1@example.com", Outcome: model.OutcomeSucceeded},
					},
				},
			},
		},
		{
			AccountID: "u-2",
			Stages: []model.StageResult{
				{
					Stage: model.StageGroups,
					Items: []model.ItemResult{
						{Item: "Sales", Outcome: model.OutcomeSkipped},
					},
				},
			},
		},
	}

	summary := report.Summarize()
	gt.Equal(t, summary.Accounts, 2)
	gt.Equal(t, summary.Succeeded, 2)
	gt.Equal(t, summary.Failed, 2) // one failed item plus one failed stage fetch
	gt.Equal(t, summary.Skipped, 1)
}

func TestStageResultFailed(t *testing.T) {
	ok := model.StageResult{Stage: model.StageGroups}
	gt.False(t, ok.Failed())

	failed := model.StageResult{Stage: model.StageGroups, Err: "boom"}
	gt.True(t, failed.Failed())
}
