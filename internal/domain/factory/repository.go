package factory

import (
	"context"
)

type FactoryRepository interface {
	GetByID(ctx context.Context, id string) (Factory, error)
	List(ctx context.Context, activeOnly bool) ([]Factory, error)
	// GetDefault returns the first active factory by creation order.
	GetDefault(ctx context.Context) (Factory, error)
	Count(ctx context.Context) (int, error)
	Create(ctx context.Context, f Factory) (Factory, error)
	Update(ctx context.Context, req UpdateFactoryRequest) (Factory, error)
	Delete(ctx context.Context, id string) error
}
