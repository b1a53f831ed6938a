package report

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/sambu-farm/farm-backend-go/internal/domain/payroll"
	"github.com/sambu-farm/farm-backend-go/internal/domain/report"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/excel"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/pdf"
)

const workerActivityLimit = 20

type ReportServiceImpl struct {
	reportRepo  report.ReportRepository
	payrollRepo payroll.PayrollRepository
	excelGen    *excel.Generator
	pdfGen      *pdf.Generator
}

func NewReportService(reportRepo report.ReportRepository, payrollRepo payroll.PayrollRepository) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:  reportRepo,
		payrollRepo: payrollRepo,
		excelGen:    excel.NewGenerator(),
		pdfGen:      pdf.NewGenerator(),
	}
}

// parseMonth parses YYYY-MM format, defaults to current month
func parseMonth(month string) (int, int) {
	now := time.Now()
	if month == "" {
		return now.Year(), int(now.Month())
	}

	parsed, err := time.Parse("2006-01", month)
	if err != nil {
		return now.Year(), int(now.Month())
	}
	return parsed.Year(), int(parsed.Month())
}

func monthLabel(year, month int) string {
	return fmt.Sprintf("%04d-%02d", year, month)
}

// GetDashboard returns combined dashboard data using parallel goroutines,
// one DB query each.
func (s *ReportServiceImpl) GetDashboard(ctx context.Context, month string) (*report.DashboardResponse, error) {
	year, m := parseMonth(month)

	var (
		production *report.MonthlyProductionResponse
		profit     *report.ProfitSummaryResponse
		outstand   *report.OutstandingMoneyResponse
		activity   []report.WorkerKgItem
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		production, err = s.reportRepo.GetMonthlyProduction(gCtx, year, m)
		return err
	})

	g.Go(func() error {
		var err error
		profit, err = s.reportRepo.GetProfitSummary(gCtx, year, m)
		return err
	})

	g.Go(func() error {
		var err error
		outstand, err = s.reportRepo.GetOutstandingMoney(gCtx)
		return err
	})

	g.Go(func() error {
		var err error
		activity, err = s.reportRepo.GetWorkerActivity(gCtx, year, m, workerActivityLimit)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &report.DashboardResponse{
		MonthlyProduction: *production,
		ProfitSummary:     *profit,
		OutstandingMoney:  *outstand,
		WorkerActivity: report.WorkerActivityResponse{
			Month:   monthLabel(year, m),
			Workers: activity,
		},
	}, nil
}

func (s *ReportServiceImpl) GetMonthlyProduction(ctx context.Context, month string) (*report.MonthlyProductionResponse, error) {
	year, m := parseMonth(month)
	return s.reportRepo.GetMonthlyProduction(ctx, year, m)
}

func (s *ReportServiceImpl) GetProfitSummary(ctx context.Context, month string) (*report.ProfitSummaryResponse, error) {
	year, m := parseMonth(month)
	return s.reportRepo.GetProfitSummary(ctx, year, m)
}

func (s *ReportServiceImpl) GetOutstandingMoney(ctx context.Context) (*report.OutstandingMoneyResponse, error) {
	return s.reportRepo.GetOutstandingMoney(ctx)
}

func (s *ReportServiceImpl) GetWorkerActivity(ctx context.Context, month string) (*report.WorkerActivityResponse, error) {
	year, m := parseMonth(month)

	workers, err := s.reportRepo.GetWorkerActivity(ctx, year, m, workerActivityLimit)
	if err != nil {
		return nil, err
	}

	return &report.WorkerActivityResponse{
		Month:   monthLabel(year, m),
		Workers: workers,
	}, nil
}

func (s *ReportServiceImpl) ExportPayrollExcel(ctx context.Context, month string) ([]byte, string, error) {
	summary, payrolls, err := s.payrollPeriod(ctx, month)
	if err != nil {
		return nil, "", err
	}

	data, err := s.excelGen.GeneratePayroll(summary, payrolls)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate payroll workbook: %w", err)
	}
	return data, fmt.Sprintf("payroll-%s.xlsx", monthLabel(summary.Year, summary.Month)), nil
}

func (s *ReportServiceImpl) ExportPayrollPDF(ctx context.Context, month string) ([]byte, string, error) {
	summary, payrolls, err := s.payrollPeriod(ctx, month)
	if err != nil {
		return nil, "", err
	}

	data, err := s.pdfGen.GeneratePayroll(summary, payrolls)
	if err != nil {
		return nil, "", fmt.Errorf("failed to generate payroll statement: %w", err)
	}
	return data, fmt.Sprintf("payroll-%s.pdf", monthLabel(summary.Year, summary.Month)), nil
}

func (s *ReportServiceImpl) payrollPeriod(ctx context.Context, month string) (payroll.SummaryResponse, []payroll.PayrollResponse, error) {
	year, m := parseMonth(month)

	summary, err := s.payrollRepo.Summary(ctx, m, year)
	if err != nil {
		return payroll.SummaryResponse{}, nil, err
	}

	rows, err := s.payrollRepo.ListByPeriod(ctx, m, year)
	if err != nil {
		return payroll.SummaryResponse{}, nil, err
	}

	responses := make([]payroll.PayrollResponse, 0, len(rows))
	for _, p := range rows {
		responses = append(responses, toPayrollResponse(p))
	}
	return summary, responses, nil
}

func toPayrollResponse(p payroll.Payroll) payroll.PayrollResponse {
	res := payroll.PayrollResponse{
		ID:                  p.ID,
		WorkerID:            p.WorkerID,
		WorkerName:          p.WorkerName,
		WorkerRole:          p.WorkerRole,
		Month:               p.Month,
		Year:                p.Year,
		TotalKg:             p.TotalKg,
		GrossEarnings:       p.GrossEarnings,
		TotalAdvances:       p.TotalAdvances,
		FertilizerDeduction: p.FertilizerDeduction,
		TotalDeductions:     p.TotalDeductions,
		NetPay:              p.NetPay,
		Paid:                p.Paid,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}
	if p.WorkerName == "" {
		res.WorkerName = "Unknown"
	}
	if p.WorkerRole == "" {
		res.WorkerRole = "Unknown"
	}
	if p.PaymentDate != nil {
		date := p.PaymentDate.Format("2006-01-02")
		res.PaymentDate = &date
	}
	return res
}
