package report

import (
	"context"
)

// ReportRepository defines the interface for report data access. Each method
// aggregates in a single query.
type ReportRepository interface {
	GetMonthlyProduction(ctx context.Context, year, month int) (*MonthlyProductionResponse, error)
	GetProfitSummary(ctx context.Context, year, month int) (*ProfitSummaryResponse, error)
	GetOutstandingMoney(ctx context.Context) (*OutstandingMoneyResponse, error)
	GetWorkerActivity(ctx context.Context, year, month int, limit int) ([]WorkerKgItem, error)
}
