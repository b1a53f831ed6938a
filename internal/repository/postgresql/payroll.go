package postgresql

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/payroll"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
)

type payrollRepository struct {
	db *database.DB
}

func NewPayrollRepository(db *database.DB) payroll.PayrollRepository {
	return &payrollRepository{db: db}
}

const payrollColumns = `p.id, p.worker_id, p.month, p.year, p.total_kg, p.gross_earnings,
		p.total_advances, p.fertilizer_deduction, p.total_deductions, p.net_pay,
		p.paid, p.payment_date, p.created_at, p.updated_at`

// payrollJoinColumns adds the worker display fields with "Unknown" fallbacks
// for removed workers.
const payrollJoinColumns = payrollColumns + `,
		COALESCE(w.name, 'Unknown'), COALESCE(w.role, 'Unknown')`

func scanPayroll(row pgx.Row) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := row.Scan(
		&p.ID, &p.WorkerID, &p.Month, &p.Year, &p.TotalKg, &p.GrossEarnings,
		&p.TotalAdvances, &p.FertilizerDeduction, &p.TotalDeductions, &p.NetPay,
		&p.Paid, &p.PaymentDate, &p.CreatedAt, &p.UpdatedAt,
		&p.WorkerName, &p.WorkerRole,
	)
	return p, err
}

func (r *payrollRepository) GetByID(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollJoinColumns + `
		FROM payrolls p
		LEFT JOIN workers w ON w.id = p.worker_id
		WHERE p.id = $1
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by id: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) GetByWorkerPeriod(ctx context.Context, workerID string, month, year int) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollJoinColumns + `
		FROM payrolls p
		LEFT JOIN workers w ON w.id = p.worker_id
		WHERE p.worker_id = $1 AND p.month = $2 AND p.year = $3
	`

	p, err := scanPayroll(q.QueryRow(ctx, query, workerID, month, year))
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to get payroll by worker and period: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) ExistsForWorkerPeriod(ctx context.Context, workerID string, month, year int) (bool, error) {
	q := GetQuerier(ctx, r.db)

	var exists bool
	err := q.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM payrolls WHERE worker_id = $1 AND month = $2 AND year = $3)`,
		workerID, month, year).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check payroll existence: %w", err)
	}

	return exists, nil
}

func (r *payrollRepository) ListByPeriod(ctx context.Context, month, year int) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollJoinColumns + `
		FROM payrolls p
		LEFT JOIN workers w ON w.id = p.worker_id
		WHERE p.month = $1 AND p.year = $2
		ORDER BY COALESCE(w.name, 'Unknown')
	`

	return r.queryPayrolls(ctx, q, query, month, year)
}

func (r *payrollRepository) ListByWorker(ctx context.Context, workerID string) ([]payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + payrollJoinColumns + `
		FROM payrolls p
		LEFT JOIN workers w ON w.id = p.worker_id
		WHERE p.worker_id = $1
		ORDER BY p.year DESC, p.month DESC
	`

	return r.queryPayrolls(ctx, q, query, workerID)
}

func (r *payrollRepository) queryPayrolls(ctx context.Context, q database.Querier, query string, args ...interface{}) ([]payroll.Payroll, error) {
	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list payrolls: %w", err)
	}
	defer rows.Close()

	payrolls := make([]payroll.Payroll, 0)
	for rows.Next() {
		p, err := scanPayroll(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan payroll: %w", err)
		}
		payrolls = append(payrolls, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate payrolls: %w", err)
	}

	return payrolls, nil
}

func (r *payrollRepository) Create(ctx context.Context, p payroll.Payroll) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	if p.ID == "" {
		p.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payrolls (id, worker_id, month, year, total_kg, gross_earnings,
			total_advances, fertilizer_deduction, total_deductions, net_pay, paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		p.ID, p.WorkerID, p.Month, p.Year, p.TotalKg, p.GrossEarnings,
		p.TotalAdvances, p.FertilizerDeduction, p.TotalDeductions, p.NetPay, p.Paid,
	).Scan(&p.ID, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		if strings.Contains(err.Error(), "uq_payrolls_worker_period") {
			return payroll.Payroll{}, payroll.ErrPayrollExists
		}
		return payroll.Payroll{}, fmt.Errorf("failed to create payroll: %w", err)
	}

	return p, nil
}

func (r *payrollRepository) MarkPaid(ctx context.Context, id string) (payroll.Payroll, error) {
	q := GetQuerier(ctx, r.db)

	var updatedID string
	err := q.QueryRow(ctx,
		`UPDATE payrolls SET paid = TRUE, payment_date = NOW(), updated_at = NOW() WHERE id = $1 RETURNING id`, id).Scan(&updatedID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return payroll.Payroll{}, payroll.ErrPayrollNotFound
		}
		return payroll.Payroll{}, fmt.Errorf("failed to mark payroll paid: %w", err)
	}

	return r.GetByID(ctx, updatedID)
}

func (r *payrollRepository) Summary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT
			COUNT(*),
			COALESCE(SUM(total_kg), 0),
			COALESCE(SUM(gross_earnings), 0),
			COALESCE(SUM(total_deductions), 0),
			COALESCE(SUM(net_pay), 0),
			COUNT(*) FILTER (WHERE paid = TRUE),
			COUNT(*) FILTER (WHERE paid = FALSE)
		FROM payrolls
		WHERE month = $1 AND year = $2
	`

	s := payroll.SummaryResponse{Month: month, Year: year}
	err := q.QueryRow(ctx, query, month, year).Scan(
		&s.TotalWorkers, &s.TotalKgPlucked, &s.TotalGrossEarnings,
		&s.TotalDeductions, &s.TotalNetPay, &s.WorkersPaid, &s.WorkersUnpaid,
	)
	if err != nil {
		return payroll.SummaryResponse{}, fmt.Errorf("failed to get payroll summary: %w", err)
	}

	return s, nil
}

func (r *payrollRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM payrolls WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete payroll: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return payroll.ErrPayrollNotFound
	}

	return nil
}
