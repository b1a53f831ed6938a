package payroll

import (
	"context"
)

// PayrollService defines business logic for monthly payroll runs
type PayrollService interface {
	// Calculate runs payroll for every active per-kilo worker for the
	// period. Workers who already have a payroll row are skipped, so the
	// run is safe to repeat.
	Calculate(ctx context.Context, month, year int) (CalculateResponse, error)
	GetPayroll(ctx context.Context, id string) (PayrollResponse, error)
	ListByPeriod(ctx context.Context, month, year int) ([]PayrollResponse, error)
	ListByWorker(ctx context.Context, workerID string) ([]PayrollResponse, error)
	MarkPaid(ctx context.Context, id string) (PayrollResponse, error)
	GetSummary(ctx context.Context, month, year int) (SummaryResponse, error)
	DeletePayroll(ctx context.Context, id string) error
}
