package postgresql

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/report"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// GetMonthlyProduction returns delivery volume and money figures for a month
// in a single query.
func (r *reportRepository) GetMonthlyProduction(ctx context.Context, year, month int) (*report.MonthlyProductionResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(quantity_kg), 0),
			COUNT(*),
			COUNT(*) FILTER (WHERE worker_payment IS NULL),
			COUNT(DISTINCT worker_id),
			COALESCE(SUM(factory_gross), 0),
			COALESCE(SUM(worker_payment), 0),
			COALESCE(SUM(factory_gross - factory_net_to_farm), 0)
		FROM deliveries
		WHERE EXTRACT(YEAR FROM delivered_at) = $1 AND EXTRACT(MONTH FROM delivered_at) = $2
	`

	var res report.MonthlyProductionResponse
	err := q.QueryRow(ctx, query, year, month).Scan(
		&res.TotalKg, &res.DeliveryCount, &res.UnpricedCount, &res.WorkersActive,
		&res.FactoryGross, &res.WorkerPayments, &res.TransportCharge,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly production: %w", err)
	}

	res.Month = fmt.Sprintf("%04d-%02d", year, month)
	if res.WorkersActive > 0 {
		res.AvgKgPerWorker = res.TotalKg.DivRound(decimal.NewFromInt(res.WorkersActive), 2)
	}

	return &res, nil
}

// GetProfitSummary breaks down the month's margin from pricing snapshots.
func (r *reportRepository) GetProfitSummary(ctx context.Context, year, month int) (*report.ProfitSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(factory_gross), 0),
			COALESCE(SUM(factory_net_to_farm), 0),
			COALESCE(SUM(worker_payment), 0),
			COALESCE(SUM(farm_profit), 0)
		FROM deliveries
		WHERE worker_payment IS NOT NULL
			AND EXTRACT(YEAR FROM delivered_at) = $1 AND EXTRACT(MONTH FROM delivered_at) = $2
	`

	var res report.ProfitSummaryResponse
	err := q.QueryRow(ctx, query, year, month).Scan(
		&res.FactoryGross, &res.FactoryNetToFarm, &res.WorkerPayments, &res.FarmProfit,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get profit summary: %w", err)
	}

	res.Month = fmt.Sprintf("%04d-%02d", year, month)

	return &res, nil
}

// GetOutstandingMoney totals pending advances, unpaid fertilizer, and unpaid
// payrolls across the whole ledger.
func (r *reportRepository) GetOutstandingMoney(ctx context.Context) (*report.OutstandingMoneyResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			(SELECT COALESCE(SUM(amount), 0) FROM advances WHERE deducted = FALSE),
			(SELECT COUNT(*) FROM advances WHERE deducted = FALSE),
			(SELECT COALESCE(SUM(total_cost), 0) FROM fertilizer_obligations WHERE paid = FALSE),
			(SELECT COALESCE(SUM(bags), 0) FROM fertilizer_obligations WHERE paid = FALSE),
			(SELECT COALESCE(SUM(net_pay), 0) FROM payrolls WHERE paid = FALSE),
			(SELECT COUNT(*) FROM payrolls WHERE paid = FALSE)
	`

	var res report.OutstandingMoneyResponse
	err := q.QueryRow(ctx, query).Scan(
		&res.PendingAdvances, &res.PendingAdvanceCount,
		&res.UnpaidFertilizer, &res.UnpaidFertilizerBags,
		&res.UnpaidPayrolls, &res.UnpaidPayrollCount,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get outstanding money: %w", err)
	}

	return &res, nil
}

// GetWorkerActivity ranks workers by kg delivered in the month.
func (r *reportRepository) GetWorkerActivity(ctx context.Context, year, month int, limit int) ([]report.WorkerKgItem, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			d.worker_id,
			COALESCE(w.name, 'Unknown'),
			COALESCE(SUM(d.quantity_kg), 0),
			COUNT(*),
			COALESCE(SUM(d.worker_payment), 0)
		FROM deliveries d
		LEFT JOIN workers w ON w.id = d.worker_id
		WHERE EXTRACT(YEAR FROM d.delivered_at) = $1 AND EXTRACT(MONTH FROM d.delivered_at) = $2
		GROUP BY d.worker_id, w.name
		ORDER BY SUM(d.quantity_kg) DESC
		LIMIT $3
	`

	rows, err := q.Query(ctx, query, year, month, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get worker activity: %w", err)
	}
	defer rows.Close()

	items := make([]report.WorkerKgItem, 0)
	for rows.Next() {
		var item report.WorkerKgItem
		if err := rows.Scan(&item.WorkerID, &item.WorkerName, &item.TotalKg, &item.DeliveryCount, &item.Earnings); err != nil {
			return nil, fmt.Errorf("failed to scan worker activity: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate worker activity: %w", err)
	}

	return items, nil
}
