package bonus

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/bonus"
	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

type ReceiptServiceImpl struct {
	bonusRepo   bonus.ReceiptRepository
	factoryRepo factory.FactoryRepository
}

func NewReceiptService(bonusRepo bonus.ReceiptRepository, factoryRepo factory.FactoryRepository) bonus.ReceiptService {
	return &ReceiptServiceImpl{
		bonusRepo:   bonusRepo,
		factoryRepo: factoryRepo,
	}
}

func (s *ReceiptServiceImpl) GetReceipt(ctx context.Context, id string) (bonus.ReceiptResponse, error) {
	b, err := s.bonusRepo.GetByID(ctx, id)
	if err != nil {
		return bonus.ReceiptResponse{}, err
	}

	return s.toResponse(ctx, b), nil
}

func (s *ReceiptServiceImpl) ListReceipts(ctx context.Context, filter bonus.ReceiptFilter) ([]bonus.ReceiptResponse, error) {
	if filter.Period != nil && !validator.IsValidBonusPeriod(*filter.Period) {
		return nil, validator.ValidationErrors{{Field: "period", Message: "period must be in YYYY-H1 or YYYY-H2 format"}}
	}

	receipts, err := s.bonusRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	names, err := s.factoryNames(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]bonus.ReceiptResponse, 0, len(receipts))
	for _, b := range receipts {
		responses = append(responses, buildResponse(b, names))
	}

	return responses, nil
}

func (s *ReceiptServiceImpl) CreateReceipt(ctx context.Context, req bonus.CreateReceiptRequest) (bonus.ReceiptResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.ReceiptResponse{}, err
	}

	if _, err := s.factoryRepo.GetByID(ctx, req.FactoryID); err != nil {
		return bonus.ReceiptResponse{}, err
	}

	deductions := decimal.Zero
	if req.FertilizerDeductions != nil {
		deductions = *req.FertilizerDeductions
	}

	dateReceived := time.Now()
	if req.DateReceived != nil {
		if parsed, err := parseDateOrDateTime(*req.DateReceived); err == nil {
			dateReceived = parsed
		}
	}

	created, err := s.bonusRepo.Create(ctx, bonus.Receipt{
		FactoryID:            req.FactoryID,
		Period:               req.Period,
		Amount:               req.Amount,
		FertilizerDeductions: deductions,
		DateReceived:         dateReceived,
		Notes:                req.Notes,
	})
	if err != nil {
		return bonus.ReceiptResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

func (s *ReceiptServiceImpl) UpdateReceipt(ctx context.Context, req bonus.UpdateReceiptRequest) (bonus.ReceiptResponse, error) {
	if err := req.Validate(); err != nil {
		return bonus.ReceiptResponse{}, err
	}

	updated, err := s.bonusRepo.Update(ctx, req)
	if err != nil {
		return bonus.ReceiptResponse{}, err
	}

	return s.toResponse(ctx, updated), nil
}

func (s *ReceiptServiceImpl) GetSummary(ctx context.Context) (bonus.SummaryResponse, error) {
	return s.bonusRepo.Summary(ctx)
}

func (s *ReceiptServiceImpl) GetPeriodSummary(ctx context.Context, period string) (bonus.PeriodSummaryResponse, error) {
	if !validator.IsValidBonusPeriod(period) {
		return bonus.PeriodSummaryResponse{}, validator.ValidationErrors{{Field: "period", Message: "period must be in YYYY-H1 or YYYY-H2 format"}}
	}

	return s.bonusRepo.PeriodSummary(ctx, period)
}

func (s *ReceiptServiceImpl) GetFactorySummary(ctx context.Context, factoryID string) (bonus.FactorySummaryResponse, error) {
	f, err := s.factoryRepo.GetByID(ctx, factoryID)
	if err != nil {
		return bonus.FactorySummaryResponse{}, err
	}

	summary, err := s.bonusRepo.FactorySummary(ctx, factoryID)
	if err != nil {
		return bonus.FactorySummaryResponse{}, err
	}

	summary.FactoryName = f.Name

	return summary, nil
}

func (s *ReceiptServiceImpl) DeleteReceipt(ctx context.Context, id string) error {
	return s.bonusRepo.Delete(ctx, id)
}

func (s *ReceiptServiceImpl) toResponse(ctx context.Context, b bonus.Receipt) bonus.ReceiptResponse {
	names := map[string]string{}
	if f, err := s.factoryRepo.GetByID(ctx, b.FactoryID); err == nil {
		names[f.ID] = f.Name
	}

	return buildResponse(b, names)
}

func (s *ReceiptServiceImpl) factoryNames(ctx context.Context) (map[string]string, error) {
	factories, err := s.factoryRepo.List(ctx, false)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(factories))
	for _, f := range factories {
		names[f.ID] = f.Name
	}

	return names, nil
}

func buildResponse(b bonus.Receipt, factoryNames map[string]string) bonus.ReceiptResponse {
	factoryName := "Unknown"
	if name, ok := factoryNames[b.FactoryID]; ok {
		factoryName = name
	}

	return bonus.ReceiptResponse{
		ID:                   b.ID,
		FactoryID:            b.FactoryID,
		FactoryName:          factoryName,
		Period:               b.Period,
		Amount:               b.Amount,
		FertilizerDeductions: b.FertilizerDeductions,
		NetBonus:             b.NetBonus,
		DateReceived:         b.DateReceived.Format(time.RFC3339),
		Notes:                b.Notes,
		CreatedAt:            b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:            b.UpdatedAt.Format(time.RFC3339),
	}
}

func parseDateOrDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
