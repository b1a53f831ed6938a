package factory

import (
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

// FactoryResponse represents factory data in API responses
type FactoryResponse struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	RatePerKg          decimal.Decimal `json:"rate_per_kg"`
	TransportDeduction decimal.Decimal `json:"transport_deduction"`
	Location           *string         `json:"location,omitempty"`
	Contact            *string         `json:"contact,omitempty"`
	IsActive           bool            `json:"is_active"`
	CreatedAt          string          `json:"created_at"`
	UpdatedAt          string          `json:"updated_at"`
}

func ToFactoryResponse(f Factory) FactoryResponse {
	return FactoryResponse{
		ID:                 f.ID,
		Name:               f.Name,
		RatePerKg:          f.RatePerKg,
		TransportDeduction: f.TransportDeduction,
		Location:           f.Location,
		Contact:            f.Contact,
		IsActive:           f.IsActive,
		CreatedAt:          f.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:          f.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// CreateFactoryRequest represents request to register a new factory
type CreateFactoryRequest struct {
	Name               string           `json:"name"`
	RatePerKg          decimal.Decimal  `json:"rate_per_kg"`
	TransportDeduction *decimal.Decimal `json:"transport_deduction,omitempty"`
	Location           *string          `json:"location,omitempty"`
	Contact            *string          `json:"contact,omitempty"`
}

func (r *CreateFactoryRequest) Validate() error {
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

	if !r.RatePerKg.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_per_kg",
			Message: "rate_per_kg must be positive",
		})
	}

	if r.TransportDeduction != nil && r.TransportDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "transport_deduction",
			Message: "transport_deduction must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateFactoryRequest represents request to update a factory. Only non-nil
// fields are applied.
type UpdateFactoryRequest struct {
	ID                 string           `json:"-"`
	Name               *string          `json:"name,omitempty"`
	RatePerKg          *decimal.Decimal `json:"rate_per_kg,omitempty"`
	TransportDeduction *decimal.Decimal `json:"transport_deduction,omitempty"`
	Location           *string          `json:"location,omitempty"`
	Contact            *string          `json:"contact,omitempty"`
	IsActive           *bool            `json:"is_active,omitempty"`
}

func (r *UpdateFactoryRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Name != nil && validator.IsEmpty(*r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "name must not be empty",
		})
	}

	if r.RatePerKg != nil && !r.RatePerKg.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "rate_per_kg",
			Message: "rate_per_kg must be positive",
		})
	}

	if r.TransportDeduction != nil && r.TransportDeduction.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "transport_deduction",
			Message: "transport_deduction must not be negative",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
