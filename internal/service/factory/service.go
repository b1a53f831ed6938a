package factory

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/fixtures"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
	"github.com/sambu-farm/farm-backend-go/internal/repository/postgresql"
)

type FactoryServiceImpl struct {
	db                        *database.DB
	factoryRepo               factory.FactoryRepository
	defaultTransportDeduction decimal.Decimal
}

func NewFactoryService(db *database.DB, factoryRepo factory.FactoryRepository, defaultTransportDeduction decimal.Decimal) factory.FactoryService {
	return &FactoryServiceImpl{
		db:                        db,
		factoryRepo:               factoryRepo,
		defaultTransportDeduction: defaultTransportDeduction,
	}
}

func (s *FactoryServiceImpl) GetFactory(ctx context.Context, id string) (factory.FactoryResponse, error) {
	f, err := s.factoryRepo.GetByID(ctx, id)
	if err != nil {
		return factory.FactoryResponse{}, err
	}

	return factory.ToFactoryResponse(f), nil
}

func (s *FactoryServiceImpl) ListFactories(ctx context.Context, activeOnly bool) ([]factory.FactoryResponse, error) {
	factories, err := s.factoryRepo.List(ctx, activeOnly)
	if err != nil {
		return nil, err
	}

	responses := make([]factory.FactoryResponse, 0, len(factories))
	for _, f := range factories {
		responses = append(responses, factory.ToFactoryResponse(f))
	}

	return responses, nil
}

func (s *FactoryServiceImpl) CreateFactory(ctx context.Context, req factory.CreateFactoryRequest) (factory.FactoryResponse, error) {
	if err := req.Validate(); err != nil {
		return factory.FactoryResponse{}, err
	}

	transport := s.defaultTransportDeduction
	if req.TransportDeduction != nil {
		transport = *req.TransportDeduction
	}

	created, err := s.factoryRepo.Create(ctx, factory.Factory{
		Name:               req.Name,
		RatePerKg:          req.RatePerKg,
		TransportDeduction: transport,
		Location:           req.Location,
		Contact:            req.Contact,
		IsActive:           true,
	})
	if err != nil {
		return factory.FactoryResponse{}, err
	}

	return factory.ToFactoryResponse(created), nil
}

func (s *FactoryServiceImpl) UpdateFactory(ctx context.Context, req factory.UpdateFactoryRequest) (factory.FactoryResponse, error) {
	if err := req.Validate(); err != nil {
		return factory.FactoryResponse{}, err
	}

	updated, err := s.factoryRepo.Update(ctx, req)
	if err != nil {
		return factory.FactoryResponse{}, err
	}

	return factory.ToFactoryResponse(updated), nil
}

func (s *FactoryServiceImpl) DeleteFactory(ctx context.Context, id string) error {
	return s.factoryRepo.Delete(ctx, id)
}

// InitializeDefaults seeds the regional roster once. The count check and the
// inserts share a transaction so two racing calls cannot both seed.
func (s *FactoryServiceImpl) InitializeDefaults(ctx context.Context) ([]factory.FactoryResponse, error) {
	var responses []factory.FactoryResponse

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		count, err := s.factoryRepo.Count(txCtx)
		if err != nil {
			return err
		}
		if count > 0 {
			return factory.ErrFactoriesAlreadySeeded
		}

		for _, f := range fixtures.DefaultFactories() {
			created, err := s.factoryRepo.Create(txCtx, f)
			if err != nil {
				return err
			}
			responses = append(responses, factory.ToFactoryResponse(created))
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return responses, nil
}
