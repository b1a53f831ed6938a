package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payroll is one worker's settlement for one calendar month. A worker has at
// most one payroll row per (month, year); re-running the calculation skips
// workers who already have one.
//
// TotalDeductions = TotalAdvances + FertilizerDeduction and
// NetPay = GrossEarnings - TotalDeductions hold on every stored row.
type Payroll struct {
	ID                  string
	WorkerID            string
	Month               int
	Year                int
	TotalKg             decimal.Decimal
	GrossEarnings       decimal.Decimal
	TotalAdvances       decimal.Decimal
	FertilizerDeduction decimal.Decimal
	TotalDeductions     decimal.Decimal
	NetPay              decimal.Decimal
	Paid                bool
	PaymentDate         *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time

	// Join fields for listings
	WorkerName string
	WorkerRole string
}
