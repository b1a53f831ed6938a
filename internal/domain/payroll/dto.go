package payroll

import (
	"github.com/shopspring/decimal"
)

// PayrollResponse represents payroll data in API responses. WorkerName and
// WorkerRole fall back to "Unknown" when the worker has been removed.
type PayrollResponse struct {
	ID                  string          `json:"id"`
	WorkerID            string          `json:"worker_id"`
	WorkerName          string          `json:"worker_name"`
	WorkerRole          string          `json:"worker_role"`
	Month               int             `json:"month"`
	Year                int             `json:"year"`
	TotalKg             decimal.Decimal `json:"total_kg"`
	GrossEarnings       decimal.Decimal `json:"gross_earnings"`
	TotalAdvances       decimal.Decimal `json:"total_advances"`
	FertilizerDeduction decimal.Decimal `json:"fertilizer_deduction"`
	TotalDeductions     decimal.Decimal `json:"total_deductions"`
	NetPay              decimal.Decimal `json:"net_pay"`
	Paid                bool            `json:"paid"`
	PaymentDate         *string         `json:"payment_date,omitempty"`
	CreatedAt           string          `json:"created_at"`
	UpdatedAt           string          `json:"updated_at"`
}

// CalculateResponse reports the outcome of a payroll run
type CalculateResponse struct {
	Month            int               `json:"month"`
	Year             int               `json:"year"`
	WorkersProcessed int               `json:"workers_processed"`
	WorkersSkipped   int               `json:"workers_skipped"`
	Payrolls         []PayrollResponse `json:"payrolls"`
}

// SummaryResponse aggregates a month's payrolls. All totals are recomputed
// from the stored rows, never carried separately.
type SummaryResponse struct {
	Month              int             `json:"month"`
	Year               int             `json:"year"`
	TotalWorkers       int             `json:"total_workers"`
	TotalKgPlucked     decimal.Decimal `json:"total_kg_plucked"`
	TotalGrossEarnings decimal.Decimal `json:"total_gross_earnings"`
	TotalDeductions    decimal.Decimal `json:"total_deductions"`
	TotalNetPay        decimal.Decimal `json:"total_net_pay"`
	WorkersPaid        int             `json:"workers_paid"`
	WorkersUnpaid      int             `json:"workers_unpaid"`
}
