package repository

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/idops-lab/offramp/pkg/domain/interfaces"
	"github.com/idops-lab/offramp/pkg/domain/model"
	"github.com/idops-lab/offramp/pkg/domain/types"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	runsCollection = "offboard_runs"

	fieldStartedAt = "started_at"
)

// Firestore implements AuditStore with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore audit store
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.AuditStore, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Probe the collection so an invalid project or missing permission
	// fails fast instead of at the end of the run.
	_, err = client.Collection(runsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection probe returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore audit store initialized",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{client: client}, nil
}

// PutRunReport saves a run report to Firestore
func (f *Firestore) PutRunReport(ctx context.Context, report *model.RunReport) error {
	if report == nil {
		return goerr.New("report is nil")
	}
	if report.ID == "" {
		return goerr.New("report ID is empty")
	}

	_, err := f.client.Collection(runsCollection).Doc(report.ID.String()).Set(ctx, report)
	if err != nil {
		return goerr.Wrap(err, "failed to save run report to firestore",
			goerr.V("runID", report.ID))
	}
	return nil
}

// GetRunReport retrieves a run report by ID
func (f *Firestore) GetRunReport(ctx context.Context, id types.RunID) (*model.RunReport, error) {
	if id == "" {
		return nil, goerr.New("run ID is empty")
	}

	doc, err := f.client.Collection(runsCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.New("run report not found", goerr.V("runID", id))
		}
		return nil, goerr.Wrap(err, "failed to get run report from firestore",
			goerr.V("runID", id))
	}

	var report model.RunReport
	if err := doc.DataTo(&report); err != nil {
		return nil, goerr.Wrap(err, "failed to decode run report")
	}
	return &report, nil
}

// ListRunReports lists run reports, newest first
func (f *Firestore) ListRunReports(ctx context.Context, limit int) ([]*model.RunReport, error) {
	query := f.client.Collection(runsCollection).OrderBy(fieldStartedAt, firestore.Desc)
	if limit > 0 {
		query = query.Limit(limit)
	}

	var reports []*model.RunReport
	iter := query.Documents(ctx)
	defer iter.Stop()
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate run reports")
		}
		var report model.RunReport
		if err := doc.DataTo(&report); err != nil {
			return nil, goerr.Wrap(err, "failed to decode run report")
		}
		reports = append(reports, &report)
	}
	return reports, nil
}

// Close closes the Firestore connection
func (f *Firestore) Close() error {
	return f.client.Close()
}
