package delivery

import (
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/money"
)

// PricingSnapshot holds the per-delivery amounts derived at pricing time.
//
// The amounts decompose the factory payout exactly:
//
//	factoryNetToFarm = workerPayment + farmProfit
type PricingSnapshot struct {
	WorkerRate         decimal.Decimal
	FactoryRate        decimal.Decimal
	TransportDeduction decimal.Decimal
	WorkerPayment      decimal.Decimal
	FactoryGross       decimal.Decimal
	FactoryNetToFarm   decimal.Decimal
	FarmProfit         decimal.Decimal
}

// ComputePricing derives the snapshot for quantityKg delivered to f, paying
// the plucker workerRate per kg.
func ComputePricing(quantityKg, workerRate decimal.Decimal, f factory.Factory) PricingSnapshot {
	workerPayment := money.Mul(quantityKg, workerRate)
	factoryGross := money.Mul(quantityKg, f.RatePerKg)
	transportCharge := money.Mul(quantityKg, f.TransportDeduction)
	factoryNet := money.Sub(factoryGross, transportCharge)
	farmProfit := money.Sub(factoryNet, workerPayment)

	return PricingSnapshot{
		WorkerRate:         workerRate,
		FactoryRate:        f.RatePerKg,
		TransportDeduction: f.TransportDeduction,
		WorkerPayment:      workerPayment,
		FactoryGross:       factoryGross,
		FactoryNetToFarm:   factoryNet,
		FarmProfit:         farmProfit,
	}
}
