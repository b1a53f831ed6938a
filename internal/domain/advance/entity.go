package advance

import (
	"time"

	"github.com/shopspring/decimal"
)

// Advance is cash paid to a worker ahead of payroll. It stays pending until
// a payroll run folds it into that worker's deductions and flips Deducted.
type Advance struct {
	ID          string
	WorkerID    string
	Amount      decimal.Decimal
	Month       int
	Year        int
	AdvanceDate time.Time
	Deducted    bool
	Notes       *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
