package worker

import (
	"context"
)

type WorkerRepository interface {
	GetByID(ctx context.Context, id string) (Worker, error)
	GetByName(ctx context.Context, name string) (Worker, error)
	List(ctx context.Context, filter WorkerFilter) ([]Worker, error)
	Create(ctx context.Context, w Worker) (Worker, error)
	Update(ctx context.Context, req UpdateWorkerRequest) (Worker, error)
	Delete(ctx context.Context, id string) error
}
