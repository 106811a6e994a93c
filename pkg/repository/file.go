package repository

import (
	"bufio"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/idops-lab/offramp/pkg/domain/interfaces"
	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// maxReportLine bounds a single JSONL record when scanning the file back
const maxReportLine = 4 * 1024 * 1024

// File implements AuditStore as an append-only JSONL file. Each PutRunReport
// appends one JSON document per line; reads scan the whole file, so the store
// suits audit trails, not hot paths.
type File struct {
	mu   sync.Mutex
	path string
}

// NewFile creates a file audit store at path, creating the parent directory
// if absent.
func NewFile(path string) (interfaces.AuditStore, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, goerr.Wrap(err, "failed to create audit directory", goerr.V("dir", dir))
		}
	}
	return &File{path: path}, nil
}

// PutRunReport appends a run report to the file
func (f *File) PutRunReport(ctx context.Context, report *model.RunReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	data, err := json.Marshal(report)
	if err != nil {
		return goerr.Wrap(err, "failed to encode run report", goerr.V("runID", report.ID))
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.OpenFile(f.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return goerr.Wrap(err, "failed to open audit file", goerr.V("path", f.path))
	}
	defer file.Close()

	if _, err := file.Write(append(data, '\n')); err != nil {
		return goerr.Wrap(err, "failed to append run report", goerr.V("path", f.path))
	}
	return nil
}

// GetRunReport retrieves a run report by ID. The last record wins if the
// same ID was appended more than once.
func (f *File) GetRunReport(ctx context.Context, id types.RunID) (*model.RunReport, error) {
	if id == "" {
		return nil, goerr.New("run ID is empty")
	}

	reports, err := f.readAll()
	if err != nil {
		return nil, err
	}

	for i := len(reports) - 1; i >= 0; i-- {
		if reports[i].ID == id {
			return reports[i], nil
		}
	}
	return nil, goerr.New("run report not found", goerr.V("runID", id))
}

// ListRunReports lists run reports, newest first
func (f *File) ListRunReports(ctx context.Context, limit int) ([]*model.RunReport, error) {
	all, err := f.readAll()
	if err != nil {
		return nil, err
	}

	var reports []*model.RunReport
	for i := len(all) - 1; i >= 0 && (limit <= 0 || len(reports) < limit); i-- {
		reports = append(reports, all[i])
	}
	return reports, nil
}

// Close closes the store (no-op; the file is opened per write)
func (f *File) Close() error {
	return nil
}

func (f *File) readAll() ([]*model.RunReport, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	file, err := os.Open(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, goerr.Wrap(err, "failed to open audit file", goerr.V("path", f.path))
	}
	defer file.Close()

	var reports []*model.RunReport
	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), maxReportLine)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var report model.RunReport
		if err := json.Unmarshal(line, &report); err != nil {
			return nil, goerr.Wrap(err, "failed to decode audit record", goerr.V("path", f.path))
		}
		reports = append(reports, &report)
	}
	if err := scanner.Err(); err != nil {
		return nil, goerr.Wrap(err, "failed to scan audit file", goerr.V("path", f.path))
	}
	return reports, nil
}
