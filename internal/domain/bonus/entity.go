package bonus

import (
	"time"

	"github.com/shopspring/decimal"
)

// Receipt is a half-yearly bonus payout from a factory. NetBonus is always
// Amount - FertilizerDeductions, recomputed on every write. Period is
// "YYYY-H1" or "YYYY-H2".
type Receipt struct {
	ID                   string
	FactoryID            string
	Period               string
	Amount               decimal.Decimal
	FertilizerDeductions decimal.Decimal
	NetBonus             decimal.Decimal
	DateReceived         time.Time
	Notes                *string
	CreatedAt            time.Time
	UpdatedAt            time.Time
}
