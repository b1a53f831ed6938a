package report

import "context"

// ReportService defines the interface for reporting operations
type ReportService interface {
	// GetDashboard returns combined dashboard data using goroutines
	GetDashboard(ctx context.Context, month string) (*DashboardResponse, error)

	GetMonthlyProduction(ctx context.Context, month string) (*MonthlyProductionResponse, error)
	GetProfitSummary(ctx context.Context, month string) (*ProfitSummaryResponse, error)
	GetOutstandingMoney(ctx context.Context) (*OutstandingMoneyResponse, error)
	GetWorkerActivity(ctx context.Context, month string) (*WorkerActivityResponse, error)

	// ExportPayrollExcel renders a month's payroll as an xlsx workbook.
	ExportPayrollExcel(ctx context.Context, month string) ([]byte, string, error)
	// ExportPayrollPDF renders a month's payroll as a PDF statement.
	ExportPayrollPDF(ctx context.Context, month string) ([]byte, string, error)
}
