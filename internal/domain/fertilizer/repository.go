package fertilizer

import (
	"context"

	"github.com/shopspring/decimal"
)

type ObligationRepository interface {
	GetByID(ctx context.Context, id string) (Obligation, error)
	List(ctx context.Context, filter ObligationFilter) ([]Obligation, error)
	Create(ctx context.Context, o Obligation) (Obligation, error)
	Update(ctx context.Context, req UpdateObligationRequest) (Obligation, error)
	MarkPaid(ctx context.Context, id string) (Obligation, error)
	// SumPendingForWorker totals unpaid tea_delivery obligations linked to
	// the worker. Used by the payroll run.
	SumPendingForWorker(ctx context.Context, workerID string) (decimal.Decimal, error)
	// MarkPaidForWorker settles every unpaid tea_delivery obligation linked
	// to the worker. Used inside the payroll transaction.
	MarkPaidForWorker(ctx context.Context, workerID string) error
	Summary(ctx context.Context) (SummaryResponse, error)
	FactorySummary(ctx context.Context, factoryID string) (FactorySummaryResponse, error)
	Delete(ctx context.Context, id string) error
}
