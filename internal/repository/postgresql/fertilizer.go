package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/fertilizer"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/money"
)

type fertilizerRepository struct {
	db *database.DB
}

func NewFertilizerRepository(db *database.DB) fertilizer.ObligationRepository {
	return &fertilizerRepository{db: db}
}

const obligationColumns = `id, factory_id, worker_id, bags, cost_per_bag, total_cost,
		payment_method, paid, payment_date, obligation_date, notes, created_at, updated_at`

func scanObligation(row pgx.Row) (fertilizer.Obligation, error) {
	var o fertilizer.Obligation
	err := row.Scan(
		&o.ID, &o.FactoryID, &o.WorkerID, &o.Bags, &o.CostPerBag, &o.TotalCost,
		&o.PaymentMethod, &o.Paid, &o.PaymentDate, &o.ObligationDate, &o.Notes, &o.CreatedAt, &o.UpdatedAt,
	)
	return o, err
}

func (r *fertilizerRepository) GetByID(ctx context.Context, id string) (fertilizer.Obligation, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanObligation(q.QueryRow(ctx, `SELECT `+obligationColumns+` FROM fertilizer_obligations WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return fertilizer.Obligation{}, fertilizer.ErrObligationNotFound
		}
		return fertilizer.Obligation{}, fmt.Errorf("failed to get fertilizer obligation by id: %w", err)
	}

	return o, nil
}

func (r *fertilizerRepository) List(ctx context.Context, filter fertilizer.ObligationFilter) ([]fertilizer.Obligation, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + obligationColumns + ` FROM fertilizer_obligations WHERE 1=1`
	args := make([]interface{}, 0, 3)
	i := 1
	if filter.FactoryID != nil {
		query += fmt.Sprintf(` AND factory_id = $%d`, i)
		args = append(args, *filter.FactoryID)
		i++
	}
	if filter.WorkerID != nil {
		query += fmt.Sprintf(` AND worker_id = $%d`, i)
		args = append(args, *filter.WorkerID)
		i++
	}
	if filter.PaymentMethod != nil {
		query += fmt.Sprintf(` AND payment_method = $%d`, i)
		args = append(args, *filter.PaymentMethod)
		i++
	}
	if filter.UnpaidOnly {
		query += ` AND paid = FALSE`
	}
	query += ` ORDER BY obligation_date DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list fertilizer obligations: %w", err)
	}
	defer rows.Close()

	obligations := make([]fertilizer.Obligation, 0)
	for rows.Next() {
		o, err := scanObligation(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fertilizer obligation: %w", err)
		}
		obligations = append(obligations, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate fertilizer obligations: %w", err)
	}

	return obligations, nil
}

func (r *fertilizerRepository) Create(ctx context.Context, o fertilizer.Obligation) (fertilizer.Obligation, error) {
	q := GetQuerier(ctx, r.db)

	if o.ID == "" {
		o.ID = uuid.NewString()
	}
	o.TotalCost = money.Mul(o.Bags, o.CostPerBag)

	query := `
		INSERT INTO fertilizer_obligations (id, factory_id, worker_id, bags, cost_per_bag, total_cost,
			payment_method, paid, payment_date, obligation_date, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING ` + obligationColumns

	created, err := scanObligation(q.QueryRow(ctx, query,
		o.ID, o.FactoryID, o.WorkerID, o.Bags, o.CostPerBag, o.TotalCost,
		o.PaymentMethod, o.Paid, o.PaymentDate, o.ObligationDate, o.Notes))
	if err != nil {
		return fertilizer.Obligation{}, fmt.Errorf("failed to create fertilizer obligation: %w", err)
	}

	return created, nil
}

func (r *fertilizerRepository) Update(ctx context.Context, req fertilizer.UpdateObligationRequest) (fertilizer.Obligation, error) {
	current, err := r.GetByID(ctx, req.ID)
	if err != nil {
		return fertilizer.Obligation{}, err
	}

	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	bags := current.Bags
	costPerBag := current.CostPerBag

	if req.WorkerID != nil {
		updates["worker_id"] = *req.WorkerID
	}
	if req.Bags != nil {
		bags = *req.Bags
		updates["bags"] = *req.Bags
	}
	if req.CostPerBag != nil {
		costPerBag = *req.CostPerBag
		updates["cost_per_bag"] = *req.CostPerBag
	}
	if req.PaymentMethod != nil {
		updates["payment_method"] = *req.PaymentMethod
	}
	if req.ObligationDate != nil && *req.ObligationDate != "" {
		parsed, err := parseDateOrDateTime(*req.ObligationDate)
		if err == nil {
			updates["obligation_date"] = parsed
		}
	}
	if req.Notes != nil {
		if *req.Notes == "" {
			updates["notes"] = nil
		} else {
			updates["notes"] = *req.Notes
		}
	}

	if len(updates) == 0 {
		return current, nil
	}

	// total_cost always tracks bags * cost_per_bag
	updates["total_cost"] = money.Mul(bags, costPerBag)
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := fmt.Sprintf("UPDATE fertilizer_obligations SET %s WHERE id = $%d RETURNING %s", strings.Join(setClauses, ", "), i, obligationColumns)
	args = append(args, req.ID)

	o, err := scanObligation(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return fertilizer.Obligation{}, fertilizer.ErrObligationNotFound
		}
		return fertilizer.Obligation{}, fmt.Errorf("failed to update fertilizer obligation with id %s: %w", req.ID, err)
	}

	return o, nil
}

func (r *fertilizerRepository) MarkPaid(ctx context.Context, id string) (fertilizer.Obligation, error) {
	q := GetQuerier(ctx, r.db)

	o, err := scanObligation(q.QueryRow(ctx,
		`UPDATE fertilizer_obligations SET paid = TRUE, payment_date = NOW(), updated_at = NOW()
		 WHERE id = $1 RETURNING `+obligationColumns, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return fertilizer.Obligation{}, fertilizer.ErrObligationNotFound
		}
		return fertilizer.Obligation{}, fmt.Errorf("failed to mark fertilizer obligation paid: %w", err)
	}

	return o, nil
}

func (r *fertilizerRepository) SumPendingForWorker(ctx context.Context, workerID string) (decimal.Decimal, error) {
	q := GetQuerier(ctx, r.db)

	var total decimal.Decimal
	err := q.QueryRow(ctx,
		`SELECT COALESCE(SUM(total_cost), 0) FROM fertilizer_obligations
		 WHERE worker_id = $1 AND paid = FALSE AND payment_method = $2`,
		workerID, fertilizer.PaymentMethodTeaDelivery).Scan(&total)
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to sum pending fertilizer for worker %s: %w", workerID, err)
	}

	return total, nil
}

func (r *fertilizerRepository) MarkPaidForWorker(ctx context.Context, workerID string) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE fertilizer_obligations SET paid = TRUE, payment_date = NOW(), updated_at = NOW()
		 WHERE worker_id = $1 AND paid = FALSE AND payment_method = $2`,
		workerID, fertilizer.PaymentMethodTeaDelivery)
	if err != nil {
		return fmt.Errorf("failed to mark fertilizer obligations paid for worker %s: %w", workerID, err)
	}

	return nil
}

func (r *fertilizerRepository) Summary(ctx context.Context) (fertilizer.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(bags), 0),
			COALESCE(SUM(total_cost), 0),
			COALESCE(SUM(CASE WHEN paid = FALSE THEN total_cost ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN paid = TRUE THEN total_cost ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_method = 'tea_delivery' THEN total_cost ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_method = 'bonus_deduction' THEN total_cost ELSE 0 END), 0),
			COUNT(*) FILTER (WHERE paid = FALSE),
			COUNT(*) FILTER (WHERE paid = TRUE)
		FROM fertilizer_obligations
	`

	var s fertilizer.SummaryResponse
	err := q.QueryRow(ctx, query).Scan(
		&s.TotalObligations, &s.TotalBags, &s.TotalCost, &s.UnpaidAmount, &s.PaidAmount,
		&s.TeaDeliveryAmount, &s.BonusDeductionAmount, &s.UnpaidCount, &s.PaidCount,
	)
	if err != nil {
		return fertilizer.SummaryResponse{}, fmt.Errorf("failed to get fertilizer summary: %w", err)
	}

	return s, nil
}

func (r *fertilizerRepository) FactorySummary(ctx context.Context, factoryID string) (fertilizer.FactorySummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COALESCE(SUM(bags), 0),
			COALESCE(SUM(total_cost), 0),
			COALESCE(SUM(CASE WHEN paid = FALSE THEN total_cost ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN paid = TRUE THEN total_cost ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_method = 'tea_delivery' THEN total_cost ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN payment_method = 'bonus_deduction' THEN total_cost ELSE 0 END), 0),
			COUNT(*) FILTER (WHERE paid = FALSE),
			COUNT(*) FILTER (WHERE paid = TRUE)
		FROM fertilizer_obligations
		WHERE factory_id = $1
	`

	s := fertilizer.FactorySummaryResponse{FactoryID: factoryID}
	err := q.QueryRow(ctx, query, factoryID).Scan(
		&s.TotalBags, &s.TotalCost, &s.UnpaidAmount, &s.PaidAmount,
		&s.TeaDeliveryAmount, &s.BonusDeductionAmount, &s.UnpaidCount, &s.PaidCount,
	)
	if err != nil {
		return fertilizer.FactorySummaryResponse{}, fmt.Errorf("failed to get fertilizer factory summary: %w", err)
	}

	return s, nil
}

func (r *fertilizerRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM fertilizer_obligations WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete fertilizer obligation: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fertilizer.ErrObligationNotFound
	}

	return nil
}
