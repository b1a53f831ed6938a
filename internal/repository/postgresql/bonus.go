package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/bonus"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/money"
)

type bonusRepository struct {
	db *database.DB
}

func NewBonusRepository(db *database.DB) bonus.ReceiptRepository {
	return &bonusRepository{db: db}
}

const receiptColumns = `id, factory_id, period, amount, fertilizer_deductions, net_bonus,
		date_received, notes, created_at, updated_at`

func scanReceipt(row pgx.Row) (bonus.Receipt, error) {
	var b bonus.Receipt
	err := row.Scan(
		&b.ID, &b.FactoryID, &b.Period, &b.Amount, &b.FertilizerDeductions, &b.NetBonus,
		&b.DateReceived, &b.Notes, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *bonusRepository) GetByID(ctx context.Context, id string) (bonus.Receipt, error) {
	q := GetQuerier(ctx, r.db)

	b, err := scanReceipt(q.QueryRow(ctx, `SELECT `+receiptColumns+` FROM bonus_receipts WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return bonus.Receipt{}, bonus.ErrReceiptNotFound
		}
		return bonus.Receipt{}, fmt.Errorf("failed to get bonus receipt by id: %w", err)
	}

	return b, nil
}

func (r *bonusRepository) List(ctx context.Context, filter bonus.ReceiptFilter) ([]bonus.Receipt, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + receiptColumns + ` FROM bonus_receipts WHERE 1=1`
	args := make([]interface{}, 0, 3)
	i := 1
	if filter.FactoryID != nil {
		query += fmt.Sprintf(` AND factory_id = $%d`, i)
		args = append(args, *filter.FactoryID)
		i++
	}
	if filter.Period != nil {
		query += fmt.Sprintf(` AND period = $%d`, i)
		args = append(args, *filter.Period)
		i++
	}
	if filter.Year != nil {
		// Both halves of the year
		query += fmt.Sprintf(` AND period IN ($%d, $%d)`, i, i+1)
		args = append(args, fmt.Sprintf("%d-H1", *filter.Year), fmt.Sprintf("%d-H2", *filter.Year))
		i += 2
	}
	query += ` ORDER BY date_received DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list bonus receipts: %w", err)
	}
	defer rows.Close()

	receipts := make([]bonus.Receipt, 0)
	for rows.Next() {
		b, err := scanReceipt(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan bonus receipt: %w", err)
		}
		receipts = append(receipts, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate bonus receipts: %w", err)
	}

	return receipts, nil
}

func (r *bonusRepository) Create(ctx context.Context, b bonus.Receipt) (bonus.Receipt, error) {
	q := GetQuerier(ctx, r.db)

	if b.ID == "" {
		b.ID = uuid.NewString()
	}
	b.NetBonus = money.Sub(b.Amount, b.FertilizerDeductions)

	query := `
		INSERT INTO bonus_receipts (id, factory_id, period, amount, fertilizer_deductions, net_bonus, date_received, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + receiptColumns

	created, err := scanReceipt(q.QueryRow(ctx, query,
		b.ID, b.FactoryID, b.Period, b.Amount, b.FertilizerDeductions, b.NetBonus, b.DateReceived, b.Notes))
	if err != nil {
		return bonus.Receipt{}, fmt.Errorf("failed to create bonus receipt: %w", err)
	}

	return created, nil
}

func (r *bonusRepository) Update(ctx context.Context, req bonus.UpdateReceiptRequest) (bonus.Receipt, error) {
	current, err := r.GetByID(ctx, req.ID)
	if err != nil {
		return bonus.Receipt{}, err
	}

	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	amount := current.Amount
	deductions := current.FertilizerDeductions

	if req.Period != nil {
		updates["period"] = *req.Period
	}
	if req.Amount != nil {
		amount = *req.Amount
		updates["amount"] = *req.Amount
	}
	if req.FertilizerDeductions != nil {
		deductions = *req.FertilizerDeductions
		updates["fertilizer_deductions"] = *req.FertilizerDeductions
	}
	if req.DateReceived != nil && *req.DateReceived != "" {
		parsed, err := parseDateOrDateTime(*req.DateReceived)
		if err == nil {
			updates["date_received"] = parsed
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

	// net_bonus always tracks amount - fertilizer_deductions
	updates["net_bonus"] = money.Sub(amount, deductions)
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := fmt.Sprintf("UPDATE bonus_receipts SET %s WHERE id = $%d RETURNING %s", strings.Join(setClauses, ", "), i, receiptColumns)
	args = append(args, req.ID)

	b, err := scanReceipt(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return bonus.Receipt{}, bonus.ErrReceiptNotFound
		}
		return bonus.Receipt{}, fmt.Errorf("failed to update bonus receipt with id %s: %w", req.ID, err)
	}

	return b, nil
}

func (r *bonusRepository) Summary(ctx context.Context) (bonus.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(fertilizer_deductions), 0),
			COALESCE(SUM(net_bonus), 0)
		FROM bonus_receipts
	`

	var s bonus.SummaryResponse
	err := q.QueryRow(ctx, query).Scan(
		&s.TotalBonuses, &s.TotalAmount, &s.TotalFertilizerDeductions, &s.TotalNetBonus,
	)
	if err != nil {
		return bonus.SummaryResponse{}, fmt.Errorf("failed to get bonus summary: %w", err)
	}

	return s, nil
}

func (r *bonusRepository) PeriodSummary(ctx context.Context, period string) (bonus.PeriodSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(b.amount), 0),
			COALESCE(SUM(b.fertilizer_deductions), 0),
			COALESCE(SUM(b.net_bonus), 0),
			COALESCE(ARRAY_AGG(DISTINCT COALESCE(f.name, 'Unknown')) FILTER (WHERE b.id IS NOT NULL), '{}')
		FROM bonus_receipts b
		LEFT JOIN factories f ON f.id = b.factory_id
		WHERE b.period = $1
	`

	s := bonus.PeriodSummaryResponse{Period: period}
	err := q.QueryRow(ctx, query, period).Scan(
		&s.TotalBonuses, &s.TotalAmount, &s.TotalFertilizerDeductions, &s.TotalNetBonus, &s.Factories,
	)
	if err != nil {
		return bonus.PeriodSummaryResponse{}, fmt.Errorf("failed to get bonus period summary: %w", err)
	}

	return s, nil
}

func (r *bonusRepository) FactorySummary(ctx context.Context, factoryID string) (bonus.FactorySummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(fertilizer_deductions), 0),
			COALESCE(SUM(net_bonus), 0)
		FROM bonus_receipts
		WHERE factory_id = $1
	`

	s := bonus.FactorySummaryResponse{FactoryID: factoryID}
	err := q.QueryRow(ctx, query, factoryID).Scan(
		&s.TotalBonuses, &s.TotalAmount, &s.TotalFertilizerDeductions, &s.TotalNetBonus,
	)
	if err != nil {
		return bonus.FactorySummaryResponse{}, fmt.Errorf("failed to get bonus factory summary: %w", err)
	}

	return s, nil
}

func (r *bonusRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM bonus_receipts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete bonus receipt: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return bonus.ErrReceiptNotFound
	}

	return nil
}
