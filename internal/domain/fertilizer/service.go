package fertilizer

import (
	"context"
)

// ObligationService defines business logic for fertilizer obligations
type ObligationService interface {
	GetObligation(ctx context.Context, id string) (ObligationResponse, error)
	ListObligations(ctx context.Context, filter ObligationFilter) ([]ObligationResponse, error)
	CreateObligation(ctx context.Context, req CreateObligationRequest) (ObligationResponse, error)
	UpdateObligation(ctx context.Context, req UpdateObligationRequest) (ObligationResponse, error)
	MarkPaid(ctx context.Context, id string) (ObligationResponse, error)
	GetSummary(ctx context.Context) (SummaryResponse, error)
	GetFactorySummary(ctx context.Context, factoryID string) (FactorySummaryResponse, error)
	DeleteObligation(ctx context.Context, id string) error
}
