package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/sambu-farm/farm-backend-go/internal/domain/payroll"
)

// PayrollJobs closes the previous month's payroll automatically.
type PayrollJobs struct {
	payrollService payroll.PayrollService
}

func NewPayrollJobs(payrollService payroll.PayrollService) *PayrollJobs {
	return &PayrollJobs{payrollService: payrollService}
}

// Register schedules the monthly settlement check. The calculation skips
// workers who already have a payroll row, so re-running it every cycle only
// picks up what is still open.
func (j *PayrollJobs) Register(s *Scheduler) {
	s.AddJob("monthly-payroll", 12*time.Hour, j.SettlePreviousMonth)
}

// SettlePreviousMonth runs payroll for last month.
func (j *PayrollJobs) SettlePreviousMonth(ctx context.Context) error {
	now := time.Now()
	// Last day of the previous month; AddDate(0, -1, 0) misbehaves on the
	// 29th-31st.
	prev := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 0, -1)
	month := int(prev.Month())
	year := prev.Year()

	result, err := j.payrollService.Calculate(ctx, month, year)
	if err != nil {
		return err
	}

	if result.WorkersProcessed > 0 {
		slog.Info("Monthly payroll settled",
			"month", month,
			"year", year,
			"workers_processed", result.WorkersProcessed,
			"workers_skipped", result.WorkersSkipped,
		)
	}
	return nil
}
