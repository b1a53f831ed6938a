package fertilizer

import (
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

// ObligationResponse represents fertilizer obligation data in API responses
type ObligationResponse struct {
	ID             string          `json:"id"`
	FactoryID      string          `json:"factory_id"`
	FactoryName    string          `json:"factory_name"`
	WorkerID       *string         `json:"worker_id,omitempty"`
	WorkerName     *string         `json:"worker_name,omitempty"`
	Bags           decimal.Decimal `json:"bags"`
	CostPerBag     decimal.Decimal `json:"cost_per_bag"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	PaymentMethod  string          `json:"payment_method"`
	Paid           bool            `json:"paid"`
	PaymentDate    *string         `json:"payment_date,omitempty"`
	ObligationDate string          `json:"obligation_date"`
	Notes          *string         `json:"notes,omitempty"`
	CreatedAt      string          `json:"created_at"`
	UpdatedAt      string          `json:"updated_at"`
}

// CreateObligationRequest represents request to record a fertilizer obligation
type CreateObligationRequest struct {
	FactoryID      string           `json:"factory_id"`
	WorkerID       *string          `json:"worker_id,omitempty"`
	Bags           decimal.Decimal  `json:"bags"`
	CostPerBag     *decimal.Decimal `json:"cost_per_bag,omitempty"`
	PaymentMethod  string           `json:"payment_method"`
	ObligationDate *string          `json:"obligation_date,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

func (r *CreateObligationRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FactoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "factory_id",
			Message: "factory_id is required",
		})
	} else if !validator.IsValidUUID(r.FactoryID) {
		errs = append(errs, validator.ValidationError{
			Field:   "factory_id",
			Message: "factory_id must be a valid UUID",
		})
	}

	if r.WorkerID != nil && !validator.IsValidUUID(*r.WorkerID) {
		errs = append(errs, validator.ValidationError{
			Field:   "worker_id",
			Message: "worker_id must be a valid UUID",
		})
	}

	if !r.Bags.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "bags",
			Message: "bags must be positive",
		})
	}

	if r.CostPerBag != nil && !r.CostPerBag.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "cost_per_bag",
			Message: "cost_per_bag must be positive",
		})
	}

	if validator.IsEmpty(r.PaymentMethod) {
		errs = append(errs, validator.ValidationError{
			Field:   "payment_method",
			Message: "payment_method is required",
		})
	} else {
		validMethods := []string{string(PaymentMethodTeaDelivery), string(PaymentMethodBonusDeduction)}
		if !validator.IsInSlice(r.PaymentMethod, validMethods) {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_method",
				Message: "payment_method must be tea_delivery or bonus_deduction",
			})
		}
	}

	if r.ObligationDate != nil {
		if _, ok := validator.IsValidDateTime(*r.ObligationDate); !ok {
			if _, ok := validator.IsValidDate(*r.ObligationDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "obligation_date",
					Message: "obligation_date must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateObligationRequest represents request to update an obligation. Only
// non-nil fields are applied; total_cost is recomputed from the resulting
// bags and cost_per_bag.
type UpdateObligationRequest struct {
	ID             string           `json:"-"`
	WorkerID       *string          `json:"worker_id,omitempty"`
	Bags           *decimal.Decimal `json:"bags,omitempty"`
	CostPerBag     *decimal.Decimal `json:"cost_per_bag,omitempty"`
	PaymentMethod  *string          `json:"payment_method,omitempty"`
	ObligationDate *string          `json:"obligation_date,omitempty"`
	Notes          *string          `json:"notes,omitempty"`
}

func (r *UpdateObligationRequest) Validate() error {
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

	if r.Bags != nil && !r.Bags.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "bags",
			Message: "bags must be positive",
		})
	}

	if r.CostPerBag != nil && !r.CostPerBag.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "cost_per_bag",
			Message: "cost_per_bag must be positive",
		})
	}

	if r.PaymentMethod != nil {
		validMethods := []string{string(PaymentMethodTeaDelivery), string(PaymentMethodBonusDeduction)}
		if !validator.IsInSlice(*r.PaymentMethod, validMethods) {
			errs = append(errs, validator.ValidationError{
				Field:   "payment_method",
				Message: "payment_method must be tea_delivery or bonus_deduction",
			})
		}
	}

	if r.ObligationDate != nil {
		if _, ok := validator.IsValidDateTime(*r.ObligationDate); !ok {
			if _, ok := validator.IsValidDate(*r.ObligationDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "obligation_date",
					Message: "obligation_date must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ObligationFilter narrows obligation listings
type ObligationFilter struct {
	FactoryID     *string
	WorkerID      *string
	PaymentMethod *string
	UnpaidOnly    bool
}

// SummaryResponse aggregates the whole fertilizer ledger
type SummaryResponse struct {
	TotalObligations     int             `json:"total_obligations"`
	TotalBags            decimal.Decimal `json:"total_bags"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	UnpaidAmount         decimal.Decimal `json:"unpaid_amount"`
	PaidAmount           decimal.Decimal `json:"paid_amount"`
	TeaDeliveryAmount    decimal.Decimal `json:"tea_delivery_amount"`
	BonusDeductionAmount decimal.Decimal `json:"bonus_deduction_amount"`
	UnpaidCount          int             `json:"unpaid_count"`
	PaidCount            int             `json:"paid_count"`
}

// FactorySummaryResponse aggregates one factory's fertilizer position
type FactorySummaryResponse struct {
	FactoryID            string          `json:"factory_id"`
	FactoryName          string          `json:"factory_name"`
	TotalBags            decimal.Decimal `json:"total_bags"`
	TotalCost            decimal.Decimal `json:"total_cost"`
	UnpaidAmount         decimal.Decimal `json:"unpaid_amount"`
	PaidAmount           decimal.Decimal `json:"paid_amount"`
	TeaDeliveryAmount    decimal.Decimal `json:"tea_delivery_amount"`
	BonusDeductionAmount decimal.Decimal `json:"bonus_deduction_amount"`
	UnpaidCount          int             `json:"unpaid_count"`
	PaidCount            int             `json:"paid_count"`
}
