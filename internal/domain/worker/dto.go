package worker

import (
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

// WorkerResponse represents worker data in API responses
type WorkerResponse struct {
	ID        string          `json:"id"`
	Name      string          `json:"name"`
	Role      string          `json:"role"`
	PayType   string          `json:"pay_type"`
	PayRate   decimal.Decimal `json:"pay_rate"`
	IsActive  bool            `json:"is_active"`
	CreatedAt string          `json:"created_at"`
	UpdatedAt string          `json:"updated_at"`
}

func ToWorkerResponse(w Worker) WorkerResponse {
	return WorkerResponse{
		ID:        w.ID,
		Name:      w.Name,
		Role:      w.Role,
		PayType:   string(w.PayType),
		PayRate:   w.PayRate,
		IsActive:  w.IsActive,
		CreatedAt: w.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt: w.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// CreateWorkerRequest represents request to create a new worker
type CreateWorkerRequest struct {
	Name    string           `json:"name"`
	Role    string           `json:"role"`
	PayType string           `json:"pay_type"`
	PayRate *decimal.Decimal `json:"pay_rate,omitempty"`
}

func (r *CreateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name is required",
		})
	}
	if len(r.Name) > 100 {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not exceed 100 characters",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	}

	if validator.IsEmpty(r.PayType) {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_type",
			Message: "pay_type is required",
		})
	} else {
		validTypes := []string{string(PayTypePerKilo), string(PayTypeMonthly)}
		if !validator.IsInSlice(r.PayType, validTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "pay_type",
				Message: "pay_type must be per_kilo or monthly",
			})
		}
	}

	if r.PayRate != nil && r.PayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_rate",
			Message: "pay_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateWorkerRequest represents request to update a worker. Only non-nil
// fields are applied.
type UpdateWorkerRequest struct {
	ID       string           `json:"-"`
	Name     *string          `json:"name,omitempty"`
	Role     *string          `json:"role,omitempty"`
	PayType  *string          `json:"pay_type,omitempty"`
	PayRate  *decimal.Decimal `json:"pay_rate,omitempty"`
	IsActive *bool            `json:"is_active,omitempty"`
}

func (r *UpdateWorkerRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil {
		if validator.IsEmpty(*r.Name) {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not be empty",
			})
		}
		if len(*r.Name) > 100 {
			errs = append(errs, validator.ValidationError{
				Field:   "name",
				Message: "name must not exceed 100 characters",
			})
		}
	}

	if r.PayType != nil {
		validTypes := []string{string(PayTypePerKilo), string(PayTypeMonthly)}
		if !validator.IsInSlice(*r.PayType, validTypes) {
			errs = append(errs, validator.ValidationError{
				Field:   "pay_type",
				Message: "pay_type must be per_kilo or monthly",
			})
		}
	}

	if r.PayRate != nil && r.PayRate.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "pay_rate",
			Message: "pay_rate must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// WorkerFilter narrows worker listings
type WorkerFilter struct {
	ActiveOnly bool
	PayType    *string
}
