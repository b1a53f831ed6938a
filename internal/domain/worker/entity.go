package worker

import (
	"time"

	"github.com/shopspring/decimal"
)

type PayType string

const (
	// PayTypePerKilo workers are paid per kilogram of tea plucked and are
	// the population the monthly payroll run covers.
	PayTypePerKilo PayType = "per_kilo"
	PayTypeMonthly PayType = "monthly"
)

type Worker struct {
	ID        string
	Name      string
	Role      string
	PayType   PayType
	PayRate   decimal.Decimal
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPerKilo reports whether the worker is covered by the per-kilo payroll run.
func (w *Worker) IsPerKilo() bool {
	return w.PayType == PayTypePerKilo
}
