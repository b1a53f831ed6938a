package delivery

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestComputePricing(t *testing.T) {
	tests := []struct {
		name               string
		quantityKg         string
		workerRate         string
		factoryRate        string
		transportDeduction string
		wantWorkerPayment  string
		wantFactoryGross   string
		wantFactoryNet     string
		wantFarmProfit     string
	}{
		{
			name:               "standard rates",
			quantityKg:         "50",
			workerRate:         "8",
			factoryRate:        "22",
			transportDeduction: "3",
			wantWorkerPayment:  "400",
			wantFactoryGross:   "1100",
			wantFactoryNet:     "950",
			wantFarmProfit:     "550",
		},
		{
			name:               "fractional quantity",
			quantityKg:         "12.5",
			workerRate:         "8",
			factoryRate:        "27",
			transportDeduction: "3",
			wantWorkerPayment:  "100",
			wantFactoryGross:   "337.5",
			wantFactoryNet:     "300",
			wantFarmProfit:     "200",
		},
		{
			name:               "factory rate below costs leaves a loss",
			quantityKg:         "10",
			workerRate:         "8",
			factoryRate:        "9",
			transportDeduction: "3",
			wantWorkerPayment:  "80",
			wantFactoryGross:   "90",
			wantFactoryNet:     "60",
			wantFarmProfit:     "-20",
		},
		{
			name:               "zero quantity",
			quantityKg:         "0",
			workerRate:         "8",
			factoryRate:        "22",
			transportDeduction: "3",
			wantWorkerPayment:  "0",
			wantFactoryGross:   "0",
			wantFactoryNet:     "0",
			wantFarmProfit:     "0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := factory.Factory{
				RatePerKg:          dec(tt.factoryRate),
				TransportDeduction: dec(tt.transportDeduction),
			}

			snap := ComputePricing(dec(tt.quantityKg), dec(tt.workerRate), f)

			assert.True(t, snap.WorkerPayment.Equal(dec(tt.wantWorkerPayment)), "worker payment: got %s", snap.WorkerPayment)
			assert.True(t, snap.FactoryGross.Equal(dec(tt.wantFactoryGross)), "factory gross: got %s", snap.FactoryGross)
			assert.True(t, snap.FactoryNetToFarm.Equal(dec(tt.wantFactoryNet)), "factory net: got %s", snap.FactoryNetToFarm)
			assert.True(t, snap.FarmProfit.Equal(dec(tt.wantFarmProfit)), "farm profit: got %s", snap.FarmProfit)
		})
	}
}

func TestComputePricingStampsRates(t *testing.T) {
	f := factory.Factory{
		RatePerKg:          dec("26"),
		TransportDeduction: dec("3"),
	}

	snap := ComputePricing(dec("40"), dec("8"), f)

	assert.True(t, snap.WorkerRate.Equal(dec("8")))
	assert.True(t, snap.FactoryRate.Equal(dec("26")))
	assert.True(t, snap.TransportDeduction.Equal(dec("3")))
}

// The payout decomposition must hold for any inputs: what the factory pays
// net of transport is split exactly between the plucker and the farm.
func TestComputePricingConservation(t *testing.T) {
	cases := []struct {
		quantityKg, workerRate, factoryRate, transport string
	}{
		{"1", "8", "22", "3"},
		{"33.33", "8", "27", "3"},
		{"250.75", "7.5", "23.25", "2.8"},
		{"0.01", "8", "28", "3"},
	}

	for _, c := range cases {
		f := factory.Factory{
			RatePerKg:          dec(c.factoryRate),
			TransportDeduction: dec(c.transport),
		}
		snap := ComputePricing(dec(c.quantityKg), dec(c.workerRate), f)

		sum := snap.WorkerPayment.Add(snap.FarmProfit)
		assert.True(t, snap.FactoryNetToFarm.Equal(sum),
			"net %s != worker %s + profit %s", snap.FactoryNetToFarm, snap.WorkerPayment, snap.FarmProfit)
	}
}
