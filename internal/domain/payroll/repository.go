package payroll

import (
	"context"
)

type PayrollRepository interface {
	GetByID(ctx context.Context, id string) (Payroll, error)
	GetByWorkerPeriod(ctx context.Context, workerID string, month, year int) (Payroll, error)
	ExistsForWorkerPeriod(ctx context.Context, workerID string, month, year int) (bool, error)
	ListByPeriod(ctx context.Context, month, year int) ([]Payroll, error)
	ListByWorker(ctx context.Context, workerID string) ([]Payroll, error)
	// Create inserts a payroll row. The unique index on (worker_id, year,
	// month) surfaces a raced duplicate as ErrPayrollExists.
	Create(ctx context.Context, p Payroll) (Payroll, error)
	MarkPaid(ctx context.Context, id string) (Payroll, error)
	Summary(ctx context.Context, month, year int) (SummaryResponse, error)
	Delete(ctx context.Context, id string) error
}
