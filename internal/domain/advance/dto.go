package advance

import (
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

// AdvanceResponse represents advance data in API responses
type AdvanceResponse struct {
	ID          string          `json:"id"`
	WorkerID    string          `json:"worker_id"`
	WorkerName  string          `json:"worker_name"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	AdvanceDate string          `json:"advance_date"`
	Deducted    bool            `json:"deducted"`
	Notes       *string         `json:"notes,omitempty"`
	CreatedAt   string          `json:"created_at"`
	UpdatedAt   string          `json:"updated_at"`
}

// CreateAdvanceRequest represents request to record a cash advance
type CreateAdvanceRequest struct {
	WorkerID    string          `json:"worker_id"`
	Amount      decimal.Decimal `json:"amount"`
	Month       int             `json:"month"`
	Year        int             `json:"year"`
	AdvanceDate *string         `json:"advance_date,omitempty"`
	Notes       *string         `json:"notes,omitempty"`
}

func (r *CreateAdvanceRequest) Validate() error {
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

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if !validator.IsValidMonth(r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year < 2000 || r.Year > 2100 {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if r.AdvanceDate != nil {
		if _, ok := validator.IsValidDateTime(*r.AdvanceDate); !ok {
			if _, ok := validator.IsValidDate(*r.AdvanceDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "advance_date",
					Message: "advance_date must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateAdvanceRequest represents request to update an advance. Only non-nil
// fields are applied.
type UpdateAdvanceRequest struct {
	ID          string           `json:"-"`
	Amount      *decimal.Decimal `json:"amount,omitempty"`
	Month       *int             `json:"month,omitempty"`
	Year        *int             `json:"year,omitempty"`
	AdvanceDate *string          `json:"advance_date,omitempty"`
	Notes       *string          `json:"notes,omitempty"`
}

func (r *UpdateAdvanceRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if r.Month != nil && !validator.IsValidMonth(*r.Month) {
		errs = append(errs, validator.ValidationError{
			Field:   "month",
			Message: "month must be between 1 and 12",
		})
	}

	if r.Year != nil && (*r.Year < 2000 || *r.Year > 2100) {
		errs = append(errs, validator.ValidationError{
			Field:   "year",
			Message: "year is out of range",
		})
	}

	if r.AdvanceDate != nil {
		if _, ok := validator.IsValidDateTime(*r.AdvanceDate); !ok {
			if _, ok := validator.IsValidDate(*r.AdvanceDate); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "advance_date",
					Message: "advance_date must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// AdvanceFilter narrows advance listings
type AdvanceFilter struct {
	WorkerID    *string
	Month       *int
	Year        *int
	PendingOnly bool
}

// AdvanceSummaryResponse aggregates a period's advances
type AdvanceSummaryResponse struct {
	Month          int             `json:"month"`
	Year           int             `json:"year"`
	TotalAdvances  int             `json:"total_advances"`
	TotalAmount    decimal.Decimal `json:"total_amount"`
	PendingAmount  decimal.Decimal `json:"pending_amount"`
	DeductedAmount decimal.Decimal `json:"deducted_amount"`
	PendingCount   int             `json:"pending_count"`
	DeductedCount  int             `json:"deducted_count"`
}
