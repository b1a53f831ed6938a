package factory

import (
	"time"

	"github.com/shopspring/decimal"
)

// Factory is a tea buying centre the farm delivers to. RatePerKg and
// TransportDeduction are the factory's current terms; deliveries snapshot
// them at pricing time so later rate changes never rewrite history.
type Factory struct {
	ID                 string
	Name               string
	RatePerKg          decimal.Decimal
	TransportDeduction decimal.Decimal
	Location           *string
	Contact            *string
	IsActive           bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}
