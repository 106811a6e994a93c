package interfaces

//go:generate moq -out mocks/audit_mock.go -pkg mocks . AuditStore

import (
	"context"

	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/idops-lab/offramp/pkg/domain/types"
)

// AuditStore persists offboarding run reports
type AuditStore interface {
	PutRunReport(ctx context.Context, report *model.RunReport) error
	GetRunReport(ctx context.Context, id types.RunID) (*model.RunReport, error)
	ListRunReports(ctx context.Context, limit int) ([]*model.RunReport, error)

	// Close closes the store connection
	Close() error
}
