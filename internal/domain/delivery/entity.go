package delivery

import (
	"time"

	"github.com/shopspring/decimal"
)

// Delivery is one day's green-leaf weight for one worker. A delivery is
// recorded unpriced; pricing stamps an immutable snapshot of the rates and
// derived amounts in effect at that moment. QuantityKg may change after
// pricing (scale corrections) without touching the snapshot, so derived
// amounts always reflect the quantity that was priced.
type Delivery struct {
	ID          string
	WorkerID    string
	FactoryID   *string
	QuantityKg  decimal.Decimal
	DeliveredAt time.Time
	Comment     *string

	// Pricing snapshot, nil until the delivery is priced.
	WorkerRate         *decimal.Decimal
	FactoryRate        *decimal.Decimal
	TransportDeduction *decimal.Decimal
	WorkerPayment      *decimal.Decimal
	FactoryGross       *decimal.Decimal
	FactoryNetToFarm   *decimal.Decimal
	FarmProfit         *decimal.Decimal

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsPriced reports whether the pricing snapshot has been stamped.
func (d *Delivery) IsPriced() bool {
	return d.WorkerPayment != nil
}
