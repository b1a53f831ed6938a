package report

import (
	"github.com/shopspring/decimal"
)

// ========== COMBINED FARM DASHBOARD ==========

// DashboardResponse is the combined response for the main dashboard endpoint
type DashboardResponse struct {
	MonthlyProduction MonthlyProductionResponse `json:"monthly_production"`
	ProfitSummary     ProfitSummaryResponse     `json:"profit_summary"`
	OutstandingMoney  OutstandingMoneyResponse  `json:"outstanding_money"`
	WorkerActivity    WorkerActivityResponse    `json:"worker_activity"`
}

// ========== MONTHLY PRODUCTION ==========

// MonthlyProductionResponse aggregates one month's deliveries
type MonthlyProductionResponse struct {
	Month           string          `json:"month"` // Format: "YYYY-MM"
	TotalKg         decimal.Decimal `json:"total_kg"`
	DeliveryCount   int64           `json:"delivery_count"`
	UnpricedCount   int64           `json:"unpriced_count"`
	WorkersActive   int64           `json:"workers_active"`
	AvgKgPerWorker  decimal.Decimal `json:"avg_kg_per_worker"`
	FactoryGross    decimal.Decimal `json:"factory_gross"`
	WorkerPayments  decimal.Decimal `json:"worker_payments"`
	TransportCharge decimal.Decimal `json:"transport_charge"`
}

// ========== PROFIT SUMMARY ==========

// ProfitSummaryResponse breaks down farm margin for a month. All figures come
// from delivery pricing snapshots, so factory_net_to_farm equals
// worker_payments + farm_profit on every row that feeds them.
type ProfitSummaryResponse struct {
	Month            string          `json:"month"` // Format: "YYYY-MM"
	FactoryGross     decimal.Decimal `json:"factory_gross"`
	FactoryNetToFarm decimal.Decimal `json:"factory_net_to_farm"`
	WorkerPayments   decimal.Decimal `json:"worker_payments"`
	FarmProfit       decimal.Decimal `json:"farm_profit"`
}

// ========== OUTSTANDING MONEY ==========

// OutstandingMoneyResponse totals money still in flight
type OutstandingMoneyResponse struct {
	PendingAdvances      decimal.Decimal `json:"pending_advances"`
	UnpaidFertilizer     decimal.Decimal `json:"unpaid_fertilizer"`
	UnpaidPayrolls       decimal.Decimal `json:"unpaid_payrolls"`
	UnpaidPayrollCount   int64           `json:"unpaid_payroll_count"`
	PendingAdvanceCount  int64           `json:"pending_advance_count"`
	UnpaidFertilizerBags decimal.Decimal `json:"unpaid_fertilizer_bags"`
}

// ========== WORKER ACTIVITY ==========

// WorkerActivityResponse ranks workers by kg delivered in a month
type WorkerActivityResponse struct {
	Month   string         `json:"month"` // Format: "YYYY-MM"
	Workers []WorkerKgItem `json:"workers"`
}

// WorkerKgItem is one worker's monthly production line. WorkerName falls
// back to "Unknown" when the worker has been removed.
type WorkerKgItem struct {
	WorkerID      string          `json:"worker_id"`
	WorkerName    string          `json:"worker_name"`
	TotalKg       decimal.Decimal `json:"total_kg"`
	DeliveryCount int64           `json:"delivery_count"`
	Earnings      decimal.Decimal `json:"earnings"`
}
