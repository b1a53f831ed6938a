package bonus

import (
	"context"
)

type ReceiptRepository interface {
	GetByID(ctx context.Context, id string) (Receipt, error)
	List(ctx context.Context, filter ReceiptFilter) ([]Receipt, error)
	Create(ctx context.Context, r Receipt) (Receipt, error)
	Update(ctx context.Context, req UpdateReceiptRequest) (Receipt, error)
	Summary(ctx context.Context) (SummaryResponse, error)
	PeriodSummary(ctx context.Context, period string) (PeriodSummaryResponse, error)
	FactorySummary(ctx context.Context, factoryID string) (FactorySummaryResponse, error)
	Delete(ctx context.Context, id string) error
}
