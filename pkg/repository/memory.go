package repository

import (
	"context"
	"sync"

	"github.com/idops-lab/offramp/pkg/domain/interfaces"
	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Memory implements AuditStore with in-memory storage
type Memory struct {
	mu      sync.RWMutex
	reports map[types.RunID]*model.RunReport
	order   []types.RunID
}

// NewMemory creates a new memory audit store
func NewMemory() interfaces.AuditStore {
	return &Memory{
		reports: make(map[types.RunID]*model.RunReport),
	}
}

// PutRunReport saves a run report to memory
func (m *Memory) PutRunReport(ctx context.Context, report *model.RunReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if _, exists := m.reports[report.ID]; !exists {
		m.order = append(m.order, report.ID)
	}
	m.reports[report.ID] = report
	return nil
}

// GetRunReport retrieves a run report by ID
func (m *Memory) GetRunReport(ctx context.Context, id types.RunID) (*model.RunReport, error) {
	if id == "" {
		return nil, goerr.New("run ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	report, exists := m.reports[id]
	if !exists {
		return nil, goerr.New("run report not found", goerr.V("runID", id))
	}

	// Return a copy to prevent external modification
	reportCopy := *report
	return &reportCopy, nil
}

// ListRunReports lists run reports, newest first
func (m *Memory) ListRunReports(ctx context.Context, limit int) ([]*model.RunReport, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var reports []*model.RunReport
	for i := len(m.order) - 1; i >= 0 && (limit <= 0 || len(reports) < limit); i-- {
		reportCopy := *m.reports[m.order[i]]
		reports = append(reports, &reportCopy)
	}
	return reports, nil
}

// Close closes the store (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
