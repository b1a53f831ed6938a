package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/delivery"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
)

type deliveryRepository struct {
	db *database.DB
}

func NewDeliveryRepository(db *database.DB) delivery.DeliveryRepository {
	return &deliveryRepository{db: db}
}

const deliveryColumns = `id, worker_id, factory_id, quantity_kg, delivered_at, comment,
		worker_rate, factory_rate, transport_deduction, worker_payment,
		factory_gross, factory_net_to_farm, farm_profit, created_at, updated_at`

func scanDelivery(row pgx.Row) (delivery.Delivery, error) {
	var d delivery.Delivery
	err := row.Scan(
		&d.ID, &d.WorkerID, &d.FactoryID, &d.QuantityKg, &d.DeliveredAt, &d.Comment,
		&d.WorkerRate, &d.FactoryRate, &d.TransportDeduction, &d.WorkerPayment,
		&d.FactoryGross, &d.FactoryNetToFarm, &d.FarmProfit, &d.CreatedAt, &d.UpdatedAt,
	)
	return d, err
}

func (r *deliveryRepository) GetByID(ctx context.Context, id string) (delivery.Delivery, error) {
	q := GetQuerier(ctx, r.db)

	d, err := scanDelivery(q.QueryRow(ctx, `SELECT `+deliveryColumns+` FROM deliveries WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return delivery.Delivery{}, delivery.ErrDeliveryNotFound
		}
		return delivery.Delivery{}, fmt.Errorf("failed to get delivery by id: %w", err)
	}

	return d, nil
}

func (r *deliveryRepository) List(ctx context.Context, filter delivery.DeliveryFilter) ([]delivery.Delivery, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + deliveryColumns + ` FROM deliveries WHERE 1=1`
	args := make([]interface{}, 0, 3)
	i := 1
	if filter.WorkerID != nil {
		query += fmt.Sprintf(` AND worker_id = $%d`, i)
		args = append(args, *filter.WorkerID)
		i++
	}
	if filter.Month != nil {
		query += fmt.Sprintf(` AND EXTRACT(MONTH FROM delivered_at) = $%d`, i)
		args = append(args, *filter.Month)
		i++
	}
	if filter.Year != nil {
		query += fmt.Sprintf(` AND EXTRACT(YEAR FROM delivered_at) = $%d`, i)
		args = append(args, *filter.Year)
		i++
	}
	if filter.Unpriced {
		query += ` AND worker_payment IS NULL`
	}
	query += ` ORDER BY delivered_at DESC, created_at DESC`

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries: %w", err)
	}
	defer rows.Close()

	deliveries := make([]delivery.Delivery, 0)
	for rows.Next() {
		d, err := scanDelivery(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan delivery: %w", err)
		}
		deliveries = append(deliveries, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate deliveries: %w", err)
	}

	return deliveries, nil
}

func (r *deliveryRepository) Create(ctx context.Context, d delivery.Delivery) (delivery.Delivery, error) {
	q := GetQuerier(ctx, r.db)

	if d.ID == "" {
		d.ID = uuid.NewString()
	}

	query := `
		INSERT INTO deliveries (id, worker_id, factory_id, quantity_kg, delivered_at, comment)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING ` + deliveryColumns

	created, err := scanDelivery(q.QueryRow(ctx, query,
		d.ID, d.WorkerID, d.FactoryID, d.QuantityKg, d.DeliveredAt, d.Comment))
	if err != nil {
		return delivery.Delivery{}, fmt.Errorf("failed to create delivery: %w", err)
	}

	return created, nil
}

func (r *deliveryRepository) Update(ctx context.Context, req delivery.UpdateDeliveryRequest) (delivery.Delivery, error) {
	q := GetQuerier(ctx, r.db)

	// Only the recording fields are updatable; snapshot columns never
	// appear in this allow-list.
	updates := make(map[string]interface{})

	if req.WorkerID != nil && *req.WorkerID != "" {
		updates["worker_id"] = *req.WorkerID
	}
	if req.QuantityKg != nil {
		updates["quantity_kg"] = *req.QuantityKg
	}
	if req.DeliveredAt != nil && *req.DeliveredAt != "" {
		parsed, err := parseDateOrDateTime(*req.DeliveredAt)
		if err == nil {
			updates["delivered_at"] = parsed
		}
	}
	if req.Comment != nil {
		if *req.Comment == "" {
			updates["comment"] = nil
		} else {
			updates["comment"] = *req.Comment
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

	sql := fmt.Sprintf("UPDATE deliveries SET %s WHERE id = $%d RETURNING %s", strings.Join(setClauses, ", "), i, deliveryColumns)
	args = append(args, req.ID)

	d, err := scanDelivery(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return delivery.Delivery{}, delivery.ErrDeliveryNotFound
		}
		return delivery.Delivery{}, fmt.Errorf("failed to update delivery with id %s: %w", req.ID, err)
	}

	return d, nil
}

func (r *deliveryRepository) SetPricing(ctx context.Context, d delivery.Delivery) (delivery.Delivery, error) {
	q := GetQuerier(ctx, r.db)

	// The worker_payment IS NULL guard keeps the snapshot write-once even
	// when two pricing calls race.
	query := `
		UPDATE deliveries SET
			factory_id = $2,
			worker_rate = $3,
			factory_rate = $4,
			transport_deduction = $5,
			worker_payment = $6,
			factory_gross = $7,
			factory_net_to_farm = $8,
			farm_profit = $9,
			updated_at = NOW()
		WHERE id = $1 AND worker_payment IS NULL
		RETURNING ` + deliveryColumns

	priced, err := scanDelivery(q.QueryRow(ctx, query,
		d.ID, d.FactoryID, d.WorkerRate, d.FactoryRate, d.TransportDeduction,
		d.WorkerPayment, d.FactoryGross, d.FactoryNetToFarm, d.FarmProfit))
	if err != nil {
		if err == pgx.ErrNoRows {
			return delivery.Delivery{}, delivery.ErrDeliveryAlreadyPriced
		}
		return delivery.Delivery{}, fmt.Errorf("failed to price delivery with id %s: %w", d.ID, err)
	}

	return priced, nil
}

func (r *deliveryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM deliveries WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete delivery: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return delivery.ErrDeliveryNotFound
	}

	return nil
}

func parseDateOrDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
