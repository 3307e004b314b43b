package workflows

import (
	"time"

	"github.com/google/uuid"
	"go.temporal.io/sdk/temporal"
	"go.temporal.io/sdk/workflow"
)

// TaskQueueConflictScan is the task queue for scheduled conflict scans.
const TaskQueueConflictScan = "conflict-scan"

// ConflictScanInput selects the org to scan. The worker computes the warning
// window at activity execution time so a retried run never reuses a stale
// "today".
type ConflictScanInput struct {
	OrgID uuid.UUID
}

// ConflictScanResult summarizes one scan for workflow history.
type ConflictScanResult struct {
	OrgID          uuid.UUID
	TotalConflicts int
	CriticalCount  int
	ScannedAt      time.Time
}

// ConflictScanWorkflow runs a conflict analysis over the forward-looking
// warning window for one org. Intended to be started on a Temporal schedule
// (e.g. daily); the activity does the actual database reads and engine run.
func ConflictScanWorkflow(ctx workflow.Context, input ConflictScanInput) (ConflictScanResult, error) {
	opts := workflow.ActivityOptions{
		StartToCloseTimeout: 2 * time.Minute,
		RetryPolicy: &temporal.RetryPolicy{
			InitialInterval:    time.Second,
			BackoffCoefficient: 2,
			MaximumAttempts:    3,
		},
	}
	ctx = workflow.WithActivityOptions(ctx, opts)

	var result ConflictScanResult
	if err := workflow.ExecuteActivity(ctx, "ScanConflicts", input).Get(ctx, &result); err != nil {
		return ConflictScanResult{}, err
	}
	return result, nil
}
