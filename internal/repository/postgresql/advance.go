package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/advance"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
)

type advanceRepository struct {
	db *database.DB
}

func NewAdvanceRepository(db *database.DB) advance.AdvanceRepository {
	return &advanceRepository{db: db}
}

const advanceColumns = `id, worker_id, amount, month, year, advance_date, deducted, notes, created_at, updated_at`

func scanAdvance(row pgx.Row) (advance.Advance, error) {
	var a advance.Advance
	err := row.Scan(&a.ID, &a.WorkerID, &a.Amount, &a.Month, &a.Year, &a.AdvanceDate, &a.Deducted, &a.Notes, &a.CreatedAt, &a.UpdatedAt)
	return a, err
}

func (r *advanceRepository) GetByID(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx, `SELECT `+advanceColumns+` FROM advances WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to get advance by id: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) List(ctx context.Context, filter advance.AdvanceFilter) ([]advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + advanceColumns + ` FROM advances WHERE 1=1`
	args := make([]interface{}, 0, 3)
	i := 1
	if filter.WorkerID != nil {
		query += fmt.Sprintf(` AND worker_id = $%d`, i)
		args = append(args, *filter.WorkerID)
		i++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(` AND month = $%d`, i)
		args = append(args, *filter.Month)
		i++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(` AND year = $%d`, i)
		args = append(args, *filter.Year)
		i++
	}
	if filter.PendingOnly {
		query += ` AND deducted = FALSE`
	}
	query += ` ORDER BY advance_date DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list advances: %w", err)
	}
	defer rows.Close()

	advances := make([]advance.Advance, 0)
	for rows.Next() {
		a, err := scanAdvance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan advance: %w", err)
		}
		advances = append(advances, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate advances: %w", err)
	}

	return advances, nil
}

func (r *advanceRepository) Create(ctx context.Context, a advance.Advance) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	if a.ID == "" {
		a.ID = uuid.NewString()
	}

	query := `
		INSERT INTO advances (id, worker_id, amount, month, year, advance_date, deducted, notes)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ` + advanceColumns

	created, err := scanAdvance(q.QueryRow(ctx, query,
		a.ID, a.WorkerID, a.Amount, a.Month, a.Year, a.AdvanceDate, a.Deducted, a.Notes))
	if err != nil {
		return advance.Advance{}, fmt.Errorf("failed to create advance: %w", err)
	}

	return created, nil
}

func (r *advanceRepository) Update(ctx context.Context, req advance.UpdateAdvanceRequest) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Amount != nil {
		updates["amount"] = *req.Amount
	}
	if req.Month != nil {
		updates["month"] = *req.Month
	}
	if req.Year != nil {
		updates["year"] = *req.Year
	}
	if req.AdvanceDate != nil && *req.AdvanceDate != "" {
		parsed, err := parseDateOrDateTime(*req.AdvanceDate)
		if err == nil {
			updates["advance_date"] = parsed
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
		return r.GetByID(ctx, req.ID)
	}
	updates["updated_at"] = time.Now()

	setClauses := make([]string, 0, len(updates))
	args := make([]interface{}, 0, len(updates)+1)
	i := 1
	for col, val := range updates {
		setClauses = append(setClauses, fmt.Sprintf("%s = $%d", col, i))
		args = append(args, val)
		i++
	}

	sql := fmt.Sprintf("UPDATE advances SET %s WHERE id = $%d RETURNING %s", strings.Join(setClauses, ", "), i, advanceColumns)
	args = append(args, req.ID)

	a, err := scanAdvance(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to update advance with id %s: %w", req.ID, err)
	}

	return a, nil
}

func (r *advanceRepository) MarkDeducted(ctx context.Context, id string) (advance.Advance, error) {
	q := GetQuerier(ctx, r.db)

	a, err := scanAdvance(q.QueryRow(ctx,
		`UPDATE advances SET deducted = TRUE, updated_at = NOW() WHERE id = $1 RETURNING `+advanceColumns, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return advance.Advance{}, advance.ErrAdvanceNotFound
		}
		return advance.Advance{}, fmt.Errorf("failed to mark advance deducted: %w", err)
	}

	return a, nil
}

func (r *advanceRepository) MarkDeductedForWorkerPeriod(ctx context.Context, workerID string, month, year int) error {
	q := GetQuerier(ctx, r.db)

	_, err := q.Exec(ctx,
		`UPDATE advances SET deducted = TRUE, updated_at = NOW()
		 WHERE worker_id = $1 AND month = $2 AND year = $3 AND deducted = FALSE`,
		workerID, month, year)
	if err != nil {
		return fmt.Errorf("failed to mark advances deducted for worker %s: %w", workerID, err)
	}

	return nil
}

func (r *advanceRepository) Summary(ctx context.Context, month, year int) (advance.AdvanceSummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(amount), 0),
			COALESCE(SUM(CASE WHEN deducted = FALSE THEN amount ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN deducted = TRUE THEN amount ELSE 0 END), 0),
			COUNT(*) FILTER (WHERE deducted = FALSE),
			COUNT(*) FILTER (WHERE deducted = TRUE)
		FROM advances
		WHERE month = $1 AND year = $2
	`

	s := advance.AdvanceSummaryResponse{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&s.TotalAdvances, &s.TotalAmount, &s.PendingAmount, &s.DeductedAmount, &s.PendingCount, &s.DeductedCount,
	)
	if err != nil {
		return advance.AdvanceSummaryResponse{}, fmt.Errorf("failed to get advance summary: %w", err)
	}

	return s, nil
}

func (r *advanceRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM advances WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete advance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return advance.ErrAdvanceNotFound
	}

	return nil
}
