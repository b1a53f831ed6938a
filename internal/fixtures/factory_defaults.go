package fixtures

import (
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
)

func strPtr(s string) *string { return &s }

// DefaultFactories is the regional tea factory roster seeded by the
// initialize-defaults operation. Rates are KES per kg green leaf; every
// factory charges the standard 3.00/kg transport levy.
func DefaultFactories() []factory.Factory {
	transport := decimal.RequireFromString("3.0")

	return []factory.Factory{
		{
			Name:               "Kaisugu Tea Factory",
			RatePerKg:          decimal.RequireFromString("22"),
			TransportDeduction: transport,
			Location:           strPtr("Kericho"),
			IsActive:           true,
		},
		{
			Name:               "Finlays Tea Factory",
			RatePerKg:          decimal.RequireFromString("27"),
			TransportDeduction: transport,
			Location:           strPtr("Kericho"),
			IsActive:           true,
		},
		{
			Name:               "Kuresoi Tea Factory",
			RatePerKg:          decimal.RequireFromString("23"),
			TransportDeduction: transport,
			Location:           strPtr("Kuresoi"),
			IsActive:           true,
		},
		{
			Name:               "Mbogo Valley Tea Factory",
			RatePerKg:          decimal.RequireFromString("23"),
			TransportDeduction: transport,
			Location:           strPtr("Litein"),
			IsActive:           true,
		},
		{
			Name:               "Unilever Tea Factory",
			RatePerKg:          decimal.RequireFromString("28"),
			TransportDeduction: transport,
			Location:           strPtr("Kericho"),
			IsActive:           true,
		},
		{
			Name:               "KTDA Tea Factory",
			RatePerKg:          decimal.RequireFromString("26"),
			TransportDeduction: transport,
			Location:           strPtr("Kericho"),
			IsActive:           true,
		},
	}
}
