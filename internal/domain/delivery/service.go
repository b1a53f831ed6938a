package delivery

import (
	"context"
)

// DeliveryService defines business logic for delivery recording and pricing
type DeliveryService interface {
	GetDelivery(ctx context.Context, id string) (DeliveryResponse, error)
	ListDeliveries(ctx context.Context, filter DeliveryFilter) ([]DeliveryResponse, error)
	CreateDelivery(ctx context.Context, req CreateDeliveryRequest) (DeliveryResponse, error)
	UpdateDelivery(ctx context.Context, req UpdateDeliveryRequest) (DeliveryResponse, error)
	DeleteDelivery(ctx context.Context, id string) error

	// PriceDelivery stamps the pricing snapshot on one unpriced delivery.
	PriceDelivery(ctx context.Context, req PriceDeliveryRequest) (DeliveryResponse, error)
	// PriceUnpriced prices every unpriced delivery against the default
	// factory and returns how many were priced.
	PriceUnpriced(ctx context.Context) (int, error)
}
