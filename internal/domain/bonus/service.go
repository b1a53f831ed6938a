package bonus

import (
	"context"
)

// ReceiptService defines business logic for bonus receipt operations
type ReceiptService interface {
	GetReceipt(ctx context.Context, id string) (ReceiptResponse, error)
	ListReceipts(ctx context.Context, filter ReceiptFilter) ([]ReceiptResponse, error)
	CreateReceipt(ctx context.Context, req CreateReceiptRequest) (ReceiptResponse, error)
	UpdateReceipt(ctx context.Context, req UpdateReceiptRequest) (ReceiptResponse, error)
	GetSummary(ctx context.Context) (SummaryResponse, error)
	GetPeriodSummary(ctx context.Context, period string) (PeriodSummaryResponse, error)
	GetFactorySummary(ctx context.Context, factoryID string) (FactorySummaryResponse, error)
	DeleteReceipt(ctx context.Context, id string) error
}
