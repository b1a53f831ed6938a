package payroll

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/advance"
	"github.com/sambu-farm/farm-backend-go/internal/domain/delivery"
	"github.com/sambu-farm/farm-backend-go/internal/domain/fertilizer"
	"github.com/sambu-farm/farm-backend-go/internal/domain/payroll"
	"github.com/sambu-farm/farm-backend-go/internal/domain/worker"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/money"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
	"github.com/sambu-farm/farm-backend-go/internal/repository/postgresql"
)

type PayrollServiceImpl struct {
	db             *database.DB
	payrollRepo    payroll.PayrollRepository
	workerRepo     worker.WorkerRepository
	deliveryRepo   delivery.DeliveryRepository
	advanceRepo    advance.AdvanceRepository
	fertilizerRepo fertilizer.ObligationRepository
}

func NewPayrollService(
	db *database.DB,
	payrollRepo payroll.PayrollRepository,
	workerRepo worker.WorkerRepository,
	deliveryRepo delivery.DeliveryRepository,
	advanceRepo advance.AdvanceRepository,
	fertilizerRepo fertilizer.ObligationRepository,
) payroll.PayrollService {
	return &PayrollServiceImpl{
		db:             db,
		payrollRepo:    payrollRepo,
		workerRepo:     workerRepo,
		deliveryRepo:   deliveryRepo,
		advanceRepo:    advanceRepo,
		fertilizerRepo: fertilizerRepo,
	}
}

// Calculate settles the month for every per-kilo worker, inactive ones
// included so their pending ledger rows still clear. Each worker settles in
// its own transaction: the payroll insert and the pending-ledger flag flips
// commit together or not at all. Workers with an existing row for the period
// are skipped, and the unique index turns a raced duplicate insert into a
// skip as well, so repeated calls cannot double-deduct.
func (s *PayrollServiceImpl) Calculate(ctx context.Context, month, year int) (payroll.CalculateResponse, error) {
	if !validator.IsValidMonth(month) {
		return payroll.CalculateResponse{}, payroll.ErrInvalidMonth
	}

	payType := string(worker.PayTypePerKilo)
	workers, err := s.workerRepo.List(ctx, worker.WorkerFilter{PayType: &payType})
	if err != nil {
		return payroll.CalculateResponse{}, err
	}

	res := payroll.CalculateResponse{
		Month:    month,
		Year:     year,
		Payrolls: make([]payroll.PayrollResponse, 0, len(workers)),
	}

	for _, w := range workers {
		exists, err := s.payrollRepo.ExistsForWorkerPeriod(ctx, w.ID, month, year)
		if err != nil {
			return payroll.CalculateResponse{}, err
		}
		if exists {
			res.WorkersSkipped++
			continue
		}

		p, err := s.settleWorker(ctx, w, month, year)
		if err != nil {
			if errors.Is(err, payroll.ErrPayrollExists) {
				res.WorkersSkipped++
				continue
			}
			return payroll.CalculateResponse{}, err
		}

		res.WorkersProcessed++
		res.Payrolls = append(res.Payrolls, toResponse(p))
	}

	return res, nil
}

// settleWorker computes and stores one worker's monthly payroll atomically.
// The ledger reads run inside the same transaction as the flag flips, so a
// row created mid-settlement either enters the totals or stays pending.
func (s *PayrollServiceImpl) settleWorker(ctx context.Context, w worker.Worker, month, year int) (payroll.Payroll, error) {
	var p payroll.Payroll
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		deliveries, err := s.deliveryRepo.List(txCtx, delivery.DeliveryFilter{
			WorkerID: &w.ID,
			Month:    &month,
			Year:     &year,
		})
		if err != nil {
			return err
		}

		totalKg := decimal.Zero
		gross := decimal.Zero
		for _, d := range deliveries {
			totalKg = totalKg.Add(d.QuantityKg)
			// Unpriced deliveries contribute weight but no earnings until a
			// pricing pass stamps them.
			if d.WorkerPayment != nil {
				gross = gross.Add(*d.WorkerPayment)
			}
		}
		totalKg = money.Round(totalKg)
		gross = money.Round(gross)

		pendingAdvances, err := s.advanceRepo.List(txCtx, advance.AdvanceFilter{
			WorkerID:    &w.ID,
			Month:       &month,
			Year:        &year,
			PendingOnly: true,
		})
		if err != nil {
			return err
		}

		totalAdvances := decimal.Zero
		for _, a := range pendingAdvances {
			totalAdvances = totalAdvances.Add(a.Amount)
		}
		totalAdvances = money.Round(totalAdvances)

		fertilizerDeduction, err := s.fertilizerRepo.SumPendingForWorker(txCtx, w.ID)
		if err != nil {
			return err
		}
		fertilizerDeduction = money.Round(fertilizerDeduction)

		totalDeductions := money.Sum(totalAdvances, fertilizerDeduction)

		p = payroll.Payroll{
			WorkerID:            w.ID,
			Month:               month,
			Year:                year,
			TotalKg:             totalKg,
			GrossEarnings:       gross,
			TotalAdvances:       totalAdvances,
			FertilizerDeduction: fertilizerDeduction,
			TotalDeductions:     totalDeductions,
			NetPay:              money.Sub(gross, totalDeductions),
			Paid:                false,
			WorkerName:          w.Name,
			WorkerRole:          w.Role,
		}

		created, err := s.payrollRepo.Create(txCtx, p)
		if err != nil {
			return err
		}
		p.ID = created.ID
		p.CreatedAt = created.CreatedAt
		p.UpdatedAt = created.UpdatedAt

		if err := s.advanceRepo.MarkDeductedForWorkerPeriod(txCtx, w.ID, month, year); err != nil {
			return err
		}
		return s.fertilizerRepo.MarkPaidForWorker(txCtx, w.ID)
	})
	if err != nil {
		return payroll.Payroll{}, err
	}

	return p, nil
}

func (s *PayrollServiceImpl) GetPayroll(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	p, err := s.payrollRepo.GetByID(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toResponse(p), nil
}

func (s *PayrollServiceImpl) ListByPeriod(ctx context.Context, month, year int) ([]payroll.PayrollResponse, error) {
	if !validator.IsValidMonth(month) {
		return nil, payroll.ErrInvalidMonth
	}

	payrolls, err := s.payrollRepo.ListByPeriod(ctx, month, year)
	if err != nil {
		return nil, err
	}

	return toResponses(payrolls), nil
}

func (s *PayrollServiceImpl) ListByWorker(ctx context.Context, workerID string) ([]payroll.PayrollResponse, error) {
	payrolls, err := s.payrollRepo.ListByWorker(ctx, workerID)
	if err != nil {
		return nil, err
	}

	return toResponses(payrolls), nil
}

// MarkPaid is idempotent; re-applying it only refreshes the payment date.
func (s *PayrollServiceImpl) MarkPaid(ctx context.Context, id string) (payroll.PayrollResponse, error) {
	paid, err := s.payrollRepo.MarkPaid(ctx, id)
	if err != nil {
		return payroll.PayrollResponse{}, err
	}

	return toResponse(paid), nil
}

func (s *PayrollServiceImpl) GetSummary(ctx context.Context, month, year int) (payroll.SummaryResponse, error) {
	if !validator.IsValidMonth(month) {
		return payroll.SummaryResponse{}, payroll.ErrInvalidMonth
	}

	return s.payrollRepo.Summary(ctx, month, year)
}

func (s *PayrollServiceImpl) DeletePayroll(ctx context.Context, id string) error {
	return s.payrollRepo.Delete(ctx, id)
}

func toResponse(p payroll.Payroll) payroll.PayrollResponse {
	workerName := p.WorkerName
	if workerName == "" {
		workerName = "Unknown"
	}
	workerRole := p.WorkerRole
	if workerRole == "" {
		workerRole = "Unknown"
	}

	var paymentDate *string
	if p.PaymentDate != nil {
		formatted := p.PaymentDate.Format(time.RFC3339)
		paymentDate = &formatted
	}

	return payroll.PayrollResponse{
		ID:                  p.ID,
		WorkerID:            p.WorkerID,
		WorkerName:          workerName,
		WorkerRole:          workerRole,
		Month:               p.Month,
		Year:                p.Year,
		TotalKg:             p.TotalKg,
		GrossEarnings:       p.GrossEarnings,
		TotalAdvances:       p.TotalAdvances,
		FertilizerDeduction: p.FertilizerDeduction,
		TotalDeductions:     p.TotalDeductions,
		NetPay:              p.NetPay,
		Paid:                p.Paid,
		PaymentDate:         paymentDate,
		CreatedAt:           p.CreatedAt.Format(time.RFC3339),
		UpdatedAt:           p.UpdatedAt.Format(time.RFC3339),
	}
}

func toResponses(payrolls []payroll.Payroll) []payroll.PayrollResponse {
	responses := make([]payroll.PayrollResponse, 0, len(payrolls))
	for _, p := range payrolls {
		responses = append(responses, toResponse(p))
	}
	return responses
}
