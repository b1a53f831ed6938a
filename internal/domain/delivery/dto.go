package delivery

import (
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

// DeliveryResponse represents delivery data in API responses
type DeliveryResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	FactoryID   *string         `json:"factory_id,omitempty"`
	FactoryName string          `json:"factory_name"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	DeliveredAt string          `json:"delivered_at"`
	Comment     *string         `json:"comment,omitempty"`

	WorkerRate         *decimal.Decimal `json:"worker_rate,omitempty"`
	FactoryRate        *decimal.Decimal `json:"factory_rate,omitempty"`
	TransportDeduction *decimal.Decimal `json:"transport_deduction,omitempty"`
	WorkerPayment      *decimal.Decimal `json:"worker_payment,omitempty"`
	FactoryGross       *decimal.Decimal `json:"factory_gross,omitempty"`
	FactoryNetToFarm   *decimal.Decimal `json:"factory_net_to_farm,omitempty"`
	FarmProfit         *decimal.Decimal `json:"farm_profit,omitempty"`
	Priced             bool             `json:"priced"`

	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// CreateDeliveryRequest represents request to record a delivery
type CreateDeliveryRequest struct {
	WorkerID    string          `json:"worker_id"`
	FactoryID   *string         `json:"factory_id,omitempty"`
	QuantityKg  decimal.Decimal `json:"quantity_kg"`
	DeliveredAt *string         `json:"delivered_at,omitempty"`
	Comment     *string         `json:"comment,omitempty"`
}

func (r *CreateDeliveryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id is required",
		})
	} else if !validator.IsValidUUID(r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid UUID",
		})
	}

	if r.FactoryID != nil && !validator.IsValidUUID(*r.FactoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "factory_id",
			Message: "factory_id must be a valid UUID",
		})
	}

	if !r.QuantityKg.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity_kg",
			Message: "quantity_kg must be positive",
		})
	}

	if r.DeliveredAt != nil {
		if _, ok := validator.IsValidDateTime(*r.DeliveredAt); !ok {
			if _, ok := validator.IsValidDate(*r.DeliveredAt); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "delivered_at",
					Message: "delivered_at must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateDeliveryRequest represents request to update a delivery. Only the
// recording fields may change; the pricing snapshot is immutable.
type UpdateDeliveryRequest struct {
	ID          string           `json:"-"`
	WorkerID    *string          `json:"worker_id,omitempty"`
	QuantityKg  *decimal.Decimal `json:"quantity_kg,omitempty"`
	DeliveredAt *string          `json:"delivered_at,omitempty"`
	Comment     *string          `json:"comment,omitempty"`
}

func (r *UpdateDeliveryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.WorkerID != nil && !validator.IsValidUUID(*r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid UUID",
		})
	}

	if r.QuantityKg != nil && !r.QuantityKg.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "quantity_kg",
			Message: "quantity_kg must be positive",
		})
	}

	if r.DeliveredAt != nil {
		if _, ok := validator.IsValidDateTime(*r.DeliveredAt); !ok {
			if _, ok := validator.IsValidDate(*r.DeliveredAt); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "delivered_at",
					Message: "delivered_at must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// PriceDeliveryRequest prices a single delivery against a factory. FactoryID
// falls back to the delivery's own factory, then the default factory.
type PriceDeliveryRequest struct {
	ID        string  `json:"-"`
	FactoryID *string `json:"factory_id,omitempty"`
}

// DeliveryFilter narrows delivery listings
type DeliveryFilter struct {
	WorkerID *string
	Month    *int
	Year     *int
	Unpriced bool
}
