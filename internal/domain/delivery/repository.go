package delivery

import (
	"context"
)

type DeliveryRepository interface {
	GetByID(ctx context.Context, id string) (Delivery, error)
	List(ctx context.Context, filter DeliveryFilter) ([]Delivery, error)
	Create(ctx context.Context, d Delivery) (Delivery, error)
	Update(ctx context.Context, req UpdateDeliveryRequest) (Delivery, error)
	// SetPricing stamps the pricing snapshot on an unpriced delivery.
	SetPricing(ctx context.Context, d Delivery) (Delivery, error)
	Delete(ctx context.Context, id string) error
}
