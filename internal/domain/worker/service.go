package worker

import (
	"context"
)

// WorkerService defines business logic for worker operations
type WorkerService interface {
	GetWorker(ctx context.Context, id string) (WorkerResponse, error)
	ListWorkers(ctx context.Context, filter WorkerFilter) ([]WorkerResponse, error)
	CreateWorker(ctx context.Context, req CreateWorkerRequest) (WorkerResponse, error)
	UpdateWorker(ctx context.Context, req UpdateWorkerRequest) (WorkerResponse, error)
	DeleteWorker(ctx context.Context, id string) error
}
