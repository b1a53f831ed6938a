package worker

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/worker"
)

type WorkerServiceImpl struct {
	workerRepo worker.WorkerRepository
}

func NewWorkerService(workerRepo worker.WorkerRepository) worker.WorkerService {
	return &WorkerServiceImpl{workerRepo: workerRepo}
}

func (s *WorkerServiceImpl) GetWorker(ctx context.Context, id string) (worker.WorkerResponse, error) {
	w, err := s.workerRepo.GetByID(ctx, id)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.ToWorkerResponse(w), nil
}

func (s *WorkerServiceImpl) ListWorkers(ctx context.Context, filter worker.WorkerFilter) ([]worker.WorkerResponse, error) {
	workers, err := s.workerRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	responses := make([]worker.WorkerResponse, 0, len(workers))
	for _, w := range workers {
		responses = append(responses, worker.ToWorkerResponse(w))
	}

	return responses, nil
}

func (s *WorkerServiceImpl) CreateWorker(ctx context.Context, req worker.CreateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	payRate := decimal.Zero
	if req.PayRate != nil {
		payRate = *req.PayRate
	}

	created, err := s.workerRepo.Create(ctx, worker.Worker{
		Name:     req.Name,
		Role:     req.Role,
		PayType:  worker.PayType(req.PayType),
		PayRate:  payRate,
		IsActive: true,
	})
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.ToWorkerResponse(created), nil
}

func (s *WorkerServiceImpl) UpdateWorker(ctx context.Context, req worker.UpdateWorkerRequest) (worker.WorkerResponse, error) {
	if err := req.Validate(); err != nil {
		return worker.WorkerResponse{}, err
	}

	updated, err := s.workerRepo.Update(ctx, req)
	if err != nil {
		return worker.WorkerResponse{}, err
	}

	return worker.ToWorkerResponse(updated), nil
}

func (s *WorkerServiceImpl) DeleteWorker(ctx context.Context, id string) error {
	return s.workerRepo.Delete(ctx, id)
}
