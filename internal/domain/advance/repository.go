package advance

import (
	"context"
)

type AdvanceRepository interface {
	GetByID(ctx context.Context, id string) (Advance, error)
	List(ctx context.Context, filter AdvanceFilter) ([]Advance, error)
	Create(ctx context.Context, a Advance) (Advance, error)
	Update(ctx context.Context, req UpdateAdvanceRequest) (Advance, error)
	MarkDeducted(ctx context.Context, id string) (Advance, error)
	// MarkDeductedForWorkerPeriod flips every pending advance the worker has
	// in the period. Used inside the payroll transaction.
	MarkDeductedForWorkerPeriod(ctx context.Context, workerID string, month, year int) error
	Summary(ctx context.Context, month, year int) (AdvanceSummaryResponse, error)
	Delete(ctx context.Context, id string) error
}
