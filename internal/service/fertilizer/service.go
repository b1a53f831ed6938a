package fertilizer

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/domain/fertilizer"
	"github.com/sambu-farm/farm-backend-go/internal/domain/worker"
)

type ObligationServiceImpl struct {
	fertilizerRepo fertilizer.ObligationRepository
	factoryRepo    factory.FactoryRepository
	workerRepo     worker.WorkerRepository
	costPerBag     decimal.Decimal
}

func NewObligationService(
	fertilizerRepo fertilizer.ObligationRepository,
	factoryRepo factory.FactoryRepository,
	workerRepo worker.WorkerRepository,
	costPerBag decimal.Decimal,
) fertilizer.ObligationService {
	return &ObligationServiceImpl{
		fertilizerRepo: fertilizerRepo,
		factoryRepo:    factoryRepo,
		workerRepo:     workerRepo,
		costPerBag:     costPerBag,
	}
}

func (s *ObligationServiceImpl) GetObligation(ctx context.Context, id string) (fertilizer.ObligationResponse, error) {
	o, err := s.fertilizerRepo.GetByID(ctx, id)
	if err != nil {
		return fertilizer.ObligationResponse{}, err
	}

	return s.toResponse(ctx, o), nil
}

func (s *ObligationServiceImpl) ListObligations(ctx context.Context, filter fertilizer.ObligationFilter) ([]fertilizer.ObligationResponse, error) {
	obligations, err := s.fertilizerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	factoryNames, workerNames, err := s.nameLookups(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]fertilizer.ObligationResponse, 0, len(obligations))
	for _, o := range obligations {
		responses = append(responses, buildResponse(o, factoryNames, workerNames))
	}

	return responses, nil
}

func (s *ObligationServiceImpl) CreateObligation(ctx context.Context, req fertilizer.CreateObligationRequest) (fertilizer.ObligationResponse, error) {
	if err := req.Validate(); err != nil {
		return fertilizer.ObligationResponse{}, err
	}

	if _, err := s.factoryRepo.GetByID(ctx, req.FactoryID); err != nil {
		return fertilizer.ObligationResponse{}, err
	}
	if req.WorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.WorkerID); err != nil {
			return fertilizer.ObligationResponse{}, err
		}
	}

	costPerBag := s.costPerBag
	if req.CostPerBag != nil {
		costPerBag = *req.CostPerBag
	}

	obligationDate := time.Now()
	if req.ObligationDate != nil {
		if parsed, err := parseDateOrDateTime(*req.ObligationDate); err == nil {
			obligationDate = parsed
		}
	}

	created, err := s.fertilizerRepo.Create(ctx, fertilizer.Obligation{
		FactoryID:      req.FactoryID,
		WorkerID:       req.WorkerID,
		Bags:           req.Bags,
		CostPerBag:     costPerBag,
		PaymentMethod:  fertilizer.PaymentMethod(req.PaymentMethod),
		Paid:           false,
		ObligationDate: obligationDate,
		Notes:          req.Notes,
	})
	if err != nil {
		return fertilizer.ObligationResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

func (s *ObligationServiceImpl) UpdateObligation(ctx context.Context, req fertilizer.UpdateObligationRequest) (fertilizer.ObligationResponse, error) {
	if err := req.Validate(); err != nil {
		return fertilizer.ObligationResponse{}, err
	}

	if req.WorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.WorkerID); err != nil {
			return fertilizer.ObligationResponse{}, err
		}
	}

	updated, err := s.fertilizerRepo.Update(ctx, req)
	if err != nil {
		return fertilizer.ObligationResponse{}, err
	}

	return s.toResponse(ctx, updated), nil
}

// MarkPaid is an idempotent flip; re-applying it only refreshes the
// payment date.
func (s *ObligationServiceImpl) MarkPaid(ctx context.Context, id string) (fertilizer.ObligationResponse, error) {
	paid, err := s.fertilizerRepo.MarkPaid(ctx, id)
	if err != nil {
		return fertilizer.ObligationResponse{}, err
	}

	return s.toResponse(ctx, paid), nil
}

func (s *ObligationServiceImpl) GetSummary(ctx context.Context) (fertilizer.SummaryResponse, error) {
	return s.fertilizerRepo.Summary(ctx)
}

func (s *ObligationServiceImpl) GetFactorySummary(ctx context.Context, factoryID string) (fertilizer.FactorySummaryResponse, error) {
	f, err := s.factoryRepo.GetByID(ctx, factoryID)
	if err != nil {
		return fertilizer.FactorySummaryResponse{}, err
	}

	summary, err := s.fertilizerRepo.FactorySummary(ctx, factoryID)
	if err != nil {
		return fertilizer.FactorySummaryResponse{}, err
	}

	summary.FactoryName = f.Name

	return summary, nil
}

func (s *ObligationServiceImpl) DeleteObligation(ctx context.Context, id string) error {
	return s.fertilizerRepo.Delete(ctx, id)
}

func (s *ObligationServiceImpl) toResponse(ctx context.Context, o fertilizer.Obligation) fertilizer.ObligationResponse {
	factoryNames := map[string]string{}
	if f, err := s.factoryRepo.GetByID(ctx, o.FactoryID); err == nil {
		factoryNames[f.ID] = f.Name
	}
	workerNames := map[string]string{}
	if o.WorkerID != nil {
		if w, err := s.workerRepo.GetByID(ctx, *o.WorkerID); err == nil {
			workerNames[w.ID] = w.Name
		}
	}

	return buildResponse(o, factoryNames, workerNames)
}

func (s *ObligationServiceImpl) nameLookups(ctx context.Context) (map[string]string, map[string]string, error) {
	factories, err := s.factoryRepo.List(ctx, false)
	if err != nil {
		return nil, nil, err
	}
	workers, err := s.workerRepo.List(ctx, worker.WorkerFilter{})
	if err != nil {
		return nil, nil, err
	}

	factoryNames := make(map[string]string, len(factories))
	for _, f := range factories {
		factoryNames[f.ID] = f.Name
	}
	workerNames := make(map[string]string, len(workers))
	for _, w := range workers {
		workerNames[w.ID] = w.Name
	}

	return factoryNames, workerNames, nil
}

func buildResponse(o fertilizer.Obligation, factoryNames, workerNames map[string]string) fertilizer.ObligationResponse {
	factoryName := "Unknown"
	if name, ok := factoryNames[o.FactoryID]; ok {
		factoryName = name
	}

	var workerName *string
	if o.WorkerID != nil {
		name := "Unknown"
		if n, ok := workerNames[*o.WorkerID]; ok {
			name = n
		}
		workerName = &name
	}

	var paymentDate *string
	if o.PaymentDate != nil {
		formatted := o.PaymentDate.Format(time.RFC3339)
		paymentDate = &formatted
	}

	return fertilizer.ObligationResponse{
		ID:             o.ID,
		FactoryID:      o.FactoryID,
		FactoryName:    factoryName,
		WorkerID:       o.WorkerID,
		WorkerName:     workerName,
		Bags:           o.Bags,
		CostPerBag:     o.CostPerBag,
		TotalCost:      o.TotalCost,
		PaymentMethod:  string(o.PaymentMethod),
		Paid:           o.Paid,
		PaymentDate:    paymentDate,
		ObligationDate: o.ObligationDate.Format(time.RFC3339),
		Notes:          o.Notes,
		CreatedAt:      o.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      o.UpdatedAt.Format(time.RFC3339),
	}
}

func parseDateOrDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
