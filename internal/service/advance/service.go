package advance

import (
	"context"
	"time"

	"github.com/sambu-farm/farm-backend-go/internal/domain/advance"
	"github.com/sambu-farm/farm-backend-go/internal/domain/worker"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

type AdvanceServiceImpl struct {
	advanceRepo advance.AdvanceRepository
	workerRepo  worker.WorkerRepository
}

func NewAdvanceService(advanceRepo advance.AdvanceRepository, workerRepo worker.WorkerRepository) advance.AdvanceService {
	return &AdvanceServiceImpl{
		advanceRepo: advanceRepo,
		workerRepo:  workerRepo,
	}
}

func (s *AdvanceServiceImpl) GetAdvance(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	a, err := s.advanceRepo.GetByID(ctx, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return s.toResponse(ctx, a), nil
}

func (s *AdvanceServiceImpl) ListAdvances(ctx context.Context, filter advance.AdvanceFilter) ([]advance.AdvanceResponse, error) {
	if filter.Month != nil && !validator.IsValidMonth(*filter.Month) {
		return nil, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
	}

	advances, err := s.advanceRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names, err := s.workerNames(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]advance.AdvanceResponse, 0, len(advances))
	for _, a := range advances {
		responses = append(responses, buildResponse(a, names))
	}

	return responses, nil
}

func (s *AdvanceServiceImpl) CreateAdvance(ctx context.Context, req advance.CreateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return advance.AdvanceResponse{}, err
	}

	advanceDate := time.Now()
	if req.AdvanceDate != nil {
		if parsed, err := parseDateOrDateTime(*req.AdvanceDate); err == nil {
			advanceDate = parsed
		}
	}

	created, err := s.advanceRepo.Create(ctx, advance.Advance{
		WorkerID:    req.WorkerID,
		Amount:      req.Amount,
		Month:       req.Month,
		Year:        req.Year,
		AdvanceDate: advanceDate,
		Deducted:    false,
		Notes:       req.Notes,
	})
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

func (s *AdvanceServiceImpl) UpdateAdvance(ctx context.Context, req advance.UpdateAdvanceRequest) (advance.AdvanceResponse, error) {
	if err := req.Validate(); err != nil {
		return advance.AdvanceResponse{}, err
	}

	updated, err := s.advanceRepo.Update(ctx, req)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return s.toResponse(ctx, updated), nil
}

// MarkDeducted is an idempotent transition: re-applying it to a deducted
// advance changes nothing.
func (s *AdvanceServiceImpl) MarkDeducted(ctx context.Context, id string) (advance.AdvanceResponse, error) {
	marked, err := s.advanceRepo.MarkDeducted(ctx, id)
	if err != nil {
		return advance.AdvanceResponse{}, err
	}

	return s.toResponse(ctx, marked), nil
}

func (s *AdvanceServiceImpl) GetSummary(ctx context.Context, month, year int) (advance.AdvanceSummaryResponse, error) {
	if !validator.IsValidMonth(month) {
		return advance.AdvanceSummaryResponse{}, validator.ValidationErrors{{Field: "month", Message: "month must be between 1 and 12"}}
	}

	return s.advanceRepo.Summary(ctx, month, year)
}

func (s *AdvanceServiceImpl) DeleteAdvance(ctx context.Context, id string) error {
	return s.advanceRepo.Delete(ctx, id)
}

func (s *AdvanceServiceImpl) toResponse(ctx context.Context, a advance.Advance) advance.AdvanceResponse {
	names := map[string]string{}
	if w, err := s.workerRepo.GetByID(ctx, a.WorkerID); err == nil {
		names[w.ID] = w.Name
	}

	return buildResponse(a, names)
}

func (s *AdvanceServiceImpl) workerNames(ctx context.Context) (map[string]string, error) {
	workers, err := s.workerRepo.List(ctx, worker.WorkerFilter{})
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(workers))
	for _, w := range workers {
		names[w.ID] = w.Name
	}

	return names, nil
}

func buildResponse(a advance.Advance, workerNames map[string]string) advance.AdvanceResponse {
	workerName := "Unknown"
	if name, ok := workerNames[a.WorkerID]; ok {
		workerName = name
	}

	return advance.AdvanceResponse{
		ID:          a.ID,
		WorkerID:    a.WorkerID,
		WorkerName:  workerName,
		Amount:      a.Amount,
		Month:       a.Month,
		Year:        a.Year,
		AdvanceDate: a.AdvanceDate.Format(time.RFC3339),
		Deducted:    a.Deducted,
		Notes:       a.Notes,
		CreatedAt:   a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   a.UpdatedAt.Format(time.RFC3339),
	}
}

func parseDateOrDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
