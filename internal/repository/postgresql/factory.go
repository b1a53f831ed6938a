package postgresql

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
)

type factoryRepository struct {
	db *database.DB
}

func NewFactoryRepository(db *database.DB) factory.FactoryRepository {
	return &factoryRepository{db: db}
}

const factoryColumns = `id, name, rate_per_kg, transport_deduction, location, contact, is_active, created_at, updated_at`

func scanFactory(row pgx.Row) (factory.Factory, error) {
	var f factory.Factory
	err := row.Scan(&f.ID, &f.Name, &f.RatePerKg, &f.TransportDeduction, &f.Location, &f.Contact, &f.IsActive, &f.CreatedAt, &f.UpdatedAt)
	return f, err
}

func (r *factoryRepository) GetByID(ctx context.Context, id string) (factory.Factory, error) {
	q := GetQuerier(ctx, r.db)

	f, err := scanFactory(q.QueryRow(ctx, `SELECT `+factoryColumns+` FROM factories WHERE id = $1`, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return factory.Factory{}, factory.ErrFactoryNotFound
		}
		return factory.Factory{}, fmt.Errorf("failed to get factory by id: %w", err)
	}

	return f, nil
}

func (r *factoryRepository) List(ctx context.Context, activeOnly bool) ([]factory.Factory, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + factoryColumns + ` FROM factories`
	if activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY created_at`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list factories: %w", err)
	}
	defer rows.Close()

	factories := make([]factory.Factory, 0)
	for rows.Next() {
		f, err := scanFactory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan factory: %w", err)
		}
		factories = append(factories, f)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate factories: %w", err)
	}

	return factories, nil
}

func (r *factoryRepository) GetDefault(ctx context.Context) (factory.Factory, error) {
	q := GetQuerier(ctx, r.db)

	f, err := scanFactory(q.QueryRow(ctx,
		`SELECT `+factoryColumns+` FROM factories WHERE is_active = TRUE ORDER BY created_at LIMIT 1`))
	if err != nil {
		if err == pgx.ErrNoRows {
			return factory.Factory{}, factory.ErrNoActiveFactoryConfigured
		}
		return factory.Factory{}, fmt.Errorf("failed to get default factory: %w", err)
	}

	return f, nil
}

func (r *factoryRepository) Count(ctx context.Context) (int, error) {
	q := GetQuerier(ctx, r.db)

	var count int
	if err := q.QueryRow(ctx, `SELECT COUNT(*) FROM factories`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count factories: %w", err)
	}

	return count, nil
}

func (r *factoryRepository) Create(ctx context.Context, f factory.Factory) (factory.Factory, error) {
	q := GetQuerier(ctx, r.db)

	if f.ID == "" {
		f.ID = uuid.NewString()
	}

	query := `
		INSERT INTO factories (id, name, rate_per_kg, transport_deduction, location, contact, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING ` + factoryColumns

	created, err := scanFactory(q.QueryRow(ctx, query,
		f.ID, f.Name, f.RatePerKg, f.TransportDeduction, f.Location, f.Contact, f.IsActive))
	if err != nil {
		return factory.Factory{}, fmt.Errorf("failed to create factory: %w", err)
	}

	return created, nil
}

func (r *factoryRepository) Update(ctx context.Context, req factory.UpdateFactoryRequest) (factory.Factory, error) {
	q := GetQuerier(ctx, r.db)

	updates := make(map[string]interface{})

	if req.Name != nil && *req.Name != "" {
		updates["name"] = *req.Name
	}
	if req.RatePerKg != nil {
		updates["rate_per_kg"] = *req.RatePerKg
	}
	if req.TransportDeduction != nil {
		updates["transport_deduction"] = *req.TransportDeduction
	}
	if req.Location != nil {
		if *req.Location == "" {
			updates["location"] = nil
		} else {
			updates["location"] = *req.Location
		}
	}
	if req.Contact != nil {
		if *req.Contact == "" {
			updates["contact"] = nil
		} else {
			updates["contact"] = *req.Contact
		}
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
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

	sql := fmt.Sprintf("UPDATE factories SET %s WHERE id = $%d RETURNING %s", strings.Join(setClauses, ", "), i, factoryColumns)
	args = append(args, req.ID)

	f, err := scanFactory(q.QueryRow(ctx, sql, args...))
	if err != nil {
		if err == pgx.ErrNoRows {
			return factory.Factory{}, factory.ErrFactoryNotFound
		}
		return factory.Factory{}, fmt.Errorf("failed to update factory with id %s: %w", req.ID, err)
	}

	return f, nil
}

func (r *factoryRepository) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM factories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete factory: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return factory.ErrFactoryNotFound
	}

	return nil
}
