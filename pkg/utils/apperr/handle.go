package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle reports a fatal error through the context logger. Recoverable
// per-item failures are logged where they happen; only run-ending errors
// come through here.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("offboarding run failed", "error", err)
}
