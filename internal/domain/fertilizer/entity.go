package fertilizer

import (
	"time"

	"github.com/shopspring/decimal"
)

type PaymentMethod string

const (
	// PaymentMethodTeaDelivery obligations are settled out of payroll: when
	// linked to a worker they become that worker's monthly deduction.
	PaymentMethodTeaDelivery PaymentMethod = "tea_delivery"
	// PaymentMethodBonusDeduction obligations are settled against the
	// factory's half-year bonus payout.
	PaymentMethodBonusDeduction PaymentMethod = "bonus_deduction"
)

// Obligation is fertilizer supplied on credit by a factory. TotalCost is
// always Bags * CostPerBag, recomputed on every write.
type Obligation struct {
	ID             string
	FactoryID      string
	WorkerID       *string
	Bags           decimal.Decimal
	CostPerBag     decimal.Decimal
	TotalCost      decimal.Decimal
	PaymentMethod  PaymentMethod
	Paid           bool
	PaymentDate    *time.Time
	ObligationDate time.Time
	Notes          *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
