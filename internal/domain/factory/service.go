package factory

import (
	"context"
)

// FactoryService defines business logic for factory operations
type FactoryService interface {
	GetFactory(ctx context.Context, id string) (FactoryResponse, error)
	ListFactories(ctx context.Context, activeOnly bool) ([]FactoryResponse, error)
	CreateFactory(ctx context.Context, req CreateFactoryRequest) (FactoryResponse, error)
	UpdateFactory(ctx context.Context, req UpdateFactoryRequest) (FactoryResponse, error)
	DeleteFactory(ctx context.Context, id string) error

	// InitializeDefaults seeds the regional factory roster. It fails with
	// ErrFactoriesAlreadySeeded when any factory already exists.
	InitializeDefaults(ctx context.Context) ([]FactoryResponse, error)
}
