package delivery

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/domain/delivery"
	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/domain/worker"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/database"
	"github.com/sambu-farm/farm-backend-go/internal/repository/postgresql"
)

type DeliveryServiceImpl struct {
	db           *database.DB
	deliveryRepo delivery.DeliveryRepository
	workerRepo   worker.WorkerRepository
	factoryRepo  factory.FactoryRepository
	workerRate   decimal.Decimal
}

func NewDeliveryService(
	db *database.DB,
	deliveryRepo delivery.DeliveryRepository,
	workerRepo worker.WorkerRepository,
	factoryRepo factory.FactoryRepository,
	workerRate decimal.Decimal,
) delivery.DeliveryService {
	return &DeliveryServiceImpl{
		db:           db,
		deliveryRepo: deliveryRepo,
		workerRepo:   workerRepo,
		factoryRepo:  factoryRepo,
		workerRate:   workerRate,
	}
}

func (s *DeliveryServiceImpl) GetDelivery(ctx context.Context, id string) (delivery.DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, id)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	return s.toResponse(ctx, d), nil
}

func (s *DeliveryServiceImpl) ListDeliveries(ctx context.Context, filter delivery.DeliveryFilter) ([]delivery.DeliveryResponse, error) {
	deliveries, err := s.deliveryRepo.List(ctx, filter)
	if err != nil {
		return nil, err
	}

	workerNames, factoryNames, err := s.nameLookups(ctx)
	if err != nil {
		return nil, err
	}

	responses := make([]delivery.DeliveryResponse, 0, len(deliveries))
	for _, d := range deliveries {
		responses = append(responses, buildResponse(d, workerNames, factoryNames))
	}

	return responses, nil
}

func (s *DeliveryServiceImpl) CreateDelivery(ctx context.Context, req delivery.CreateDeliveryRequest) (delivery.DeliveryResponse, error) {
	if err := req.Validate(); err != nil {
		return delivery.DeliveryResponse{}, err
	}

	if _, err := s.workerRepo.GetByID(ctx, req.WorkerID); err != nil {
		return delivery.DeliveryResponse{}, err
	}

	var f *factory.Factory
	if req.FactoryID != nil {
		found, err := s.factoryRepo.GetByID(ctx, *req.FactoryID)
		if err != nil {
			return delivery.DeliveryResponse{}, err
		}
		f = &found
	}

	deliveredAt := time.Now()
	if req.DeliveredAt != nil {
		if parsed, err := parseDateOrDateTime(*req.DeliveredAt); err == nil {
			deliveredAt = parsed
		}
	}

	// With a factory the pricing snapshot is stamped at creation; without
	// one the delivery stays unpriced until a pricing pass. The insert and
	// the stamp commit together so a failed stamp never leaves an unpriced
	// row behind.
	var created delivery.Delivery
	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		var err error
		created, err = s.deliveryRepo.Create(txCtx, delivery.Delivery{
			WorkerID:    req.WorkerID,
			FactoryID:   req.FactoryID,
			QuantityKg:  req.QuantityKg,
			DeliveredAt: deliveredAt,
			Comment:     req.Comment,
		})
		if err != nil {
			return err
		}

		if f != nil {
			created, err = s.priceAgainst(txCtx, created, *f)
		}
		return err
	})
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	return s.toResponse(ctx, created), nil
}

func (s *DeliveryServiceImpl) UpdateDelivery(ctx context.Context, req delivery.UpdateDeliveryRequest) (delivery.DeliveryResponse, error) {
	if err := req.Validate(); err != nil {
		return delivery.DeliveryResponse{}, err
	}

	if req.WorkerID != nil {
		if _, err := s.workerRepo.GetByID(ctx, *req.WorkerID); err != nil {
			return delivery.DeliveryResponse{}, err
		}
	}

	updated, err := s.deliveryRepo.Update(ctx, req)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	return s.toResponse(ctx, updated), nil
}

func (s *DeliveryServiceImpl) DeleteDelivery(ctx context.Context, id string) error {
	return s.deliveryRepo.Delete(ctx, id)
}

func (s *DeliveryServiceImpl) PriceDelivery(ctx context.Context, req delivery.PriceDeliveryRequest) (delivery.DeliveryResponse, error) {
	d, err := s.deliveryRepo.GetByID(ctx, req.ID)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}
	if d.IsPriced() {
		return delivery.DeliveryResponse{}, delivery.ErrDeliveryAlreadyPriced
	}

	f, err := s.resolveFactory(ctx, req.FactoryID, d.FactoryID)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	priced, err := s.priceAgainst(ctx, d, f)
	if err != nil {
		return delivery.DeliveryResponse{}, err
	}

	return s.toResponse(ctx, priced), nil
}

func (s *DeliveryServiceImpl) PriceUnpriced(ctx context.Context) (int, error) {
	f, err := s.factoryRepo.GetDefault(ctx)
	if err != nil {
		return 0, err
	}

	unpriced, err := s.deliveryRepo.List(ctx, delivery.DeliveryFilter{Unpriced: true})
	if err != nil {
		return 0, err
	}

	priced := 0
	for _, d := range unpriced {
		target := f
		if d.FactoryID != nil {
			if df, err := s.factoryRepo.GetByID(ctx, *d.FactoryID); err == nil {
				target = df
			}
		}
		if _, err := s.priceAgainst(ctx, d, target); err != nil {
			if err == delivery.ErrDeliveryAlreadyPriced {
				continue
			}
			return priced, err
		}
		priced++
	}

	return priced, nil
}

// priceAgainst stamps the snapshot computed for f onto d.
func (s *DeliveryServiceImpl) priceAgainst(ctx context.Context, d delivery.Delivery, f factory.Factory) (delivery.Delivery, error) {
	snap := ComputePricing(d.QuantityKg, s.workerRate, f)

	d.FactoryID = &f.ID
	d.WorkerRate = &snap.WorkerRate
	d.FactoryRate = &snap.FactoryRate
	d.TransportDeduction = &snap.TransportDeduction
	d.WorkerPayment = &snap.WorkerPayment
	d.FactoryGross = &snap.FactoryGross
	d.FactoryNetToFarm = &snap.FactoryNetToFarm
	d.FarmProfit = &snap.FarmProfit

	return s.deliveryRepo.SetPricing(ctx, d)
}

// resolveFactory picks the explicit factory, then the delivery's own, then
// the default.
func (s *DeliveryServiceImpl) resolveFactory(ctx context.Context, explicit, own *string) (factory.Factory, error) {
	if explicit != nil {
		return s.factoryRepo.GetByID(ctx, *explicit)
	}
	if own != nil {
		return s.factoryRepo.GetByID(ctx, *own)
	}
	return s.factoryRepo.GetDefault(ctx)
}

func (s *DeliveryServiceImpl) toResponse(ctx context.Context, d delivery.Delivery) delivery.DeliveryResponse {
	workerNames := map[string]string{}
	if w, err := s.workerRepo.GetByID(ctx, d.WorkerID); err == nil {
		workerNames[w.ID] = w.Name
	}
	factoryNames := map[string]string{}
	if d.FactoryID != nil {
		if f, err := s.factoryRepo.GetByID(ctx, *d.FactoryID); err == nil {
			factoryNames[f.ID] = f.Name
		}
	}

	return buildResponse(d, workerNames, factoryNames)
}

func (s *DeliveryServiceImpl) nameLookups(ctx context.Context) (map[string]string, map[string]string, error) {
	workers, err := s.workerRepo.List(ctx, worker.WorkerFilter{})
	if err != nil {
		return nil, nil, err
	}
	factories, err := s.factoryRepo.List(ctx, false)
	if err != nil {
		return nil, nil, err
	}

	workerNames := make(map[string]string, len(workers))
	for _, w := range workers {
		workerNames[w.ID] = w.Name
	}
	factoryNames := make(map[string]string, len(factories))
	for _, f := range factories {
		factoryNames[f.ID] = f.Name
	}

	return workerNames, factoryNames, nil
}

func buildResponse(d delivery.Delivery, workerNames, factoryNames map[string]string) delivery.DeliveryResponse {
	workerName := "Unknown"
	if name, ok := workerNames[d.WorkerID]; ok {
		workerName = name
	}

	factoryName := "Not assigned"
	if d.FactoryID != nil {
		factoryName = "Unknown"
		if n, ok := factoryNames[*d.FactoryID]; ok {
			factoryName = n
		}
	}

	return delivery.DeliveryResponse{
		ID:                 d.ID,
		WorkerID:           d.WorkerID,
		WorkerName:         workerName,
		FactoryID:          d.FactoryID,
		FactoryName:        factoryName,
		QuantityKg:         d.QuantityKg,
		DeliveredAt:        d.DeliveredAt.Format(time.RFC3339),
		Comment:            d.Comment,
		WorkerRate:         d.WorkerRate,
		FactoryRate:        d.FactoryRate,
		TransportDeduction: d.TransportDeduction,
		WorkerPayment:      d.WorkerPayment,
		FactoryGross:       d.FactoryGross,
		FactoryNetToFarm:   d.FactoryNetToFarm,
		FarmProfit:         d.FarmProfit,
		Priced:             d.IsPriced(),
		CreatedAt:          d.CreatedAt.Format(time.RFC3339),
		UpdatedAt:          d.UpdatedAt.Format(time.RFC3339),
	}
}

func parseDateOrDateTime(s string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", s)
}
