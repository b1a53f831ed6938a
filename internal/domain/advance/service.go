package advance

import (
	"context"
)

// AdvanceService defines business logic for cash advance operations
type AdvanceService interface {
	GetAdvance(ctx context.Context, id string) (AdvanceResponse, error)
	ListAdvances(ctx context.Context, filter AdvanceFilter) ([]AdvanceResponse, error)
	CreateAdvance(ctx context.Context, req CreateAdvanceRequest) (AdvanceResponse, error)
	UpdateAdvance(ctx context.Context, req UpdateAdvanceRequest) (AdvanceResponse, error)
	MarkDeducted(ctx context.Context, id string) (AdvanceResponse, error)
	GetSummary(ctx context.Context, month, year int) (AdvanceSummaryResponse, error)
	DeleteAdvance(ctx context.Context, id string) error
}
