package bonus

import (
	"github.com/shopspring/decimal"

	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

// ReceiptResponse represents bonus receipt data in API responses
type ReceiptResponse struct {
	ID                   string          `json:"id"`
	FactoryID            string          `json:"factory_id"`
	FactoryName          string          `json:"factory_name"`
	Period               string          `json:"period"`
	Amount               decimal.Decimal `json:"amount"`
	FertilizerDeductions decimal.Decimal `json:"fertilizer_deductions"`
	NetBonus             decimal.Decimal `json:"net_bonus"`
	DateReceived         string          `json:"date_received"`
	Notes                *string         `json:"notes,omitempty"`
	CreatedAt            string          `json:"created_at"`
	UpdatedAt            string          `json:"updated_at"`
}

// CreateReceiptRequest represents request to record a bonus payout
type CreateReceiptRequest struct {
	FactoryID            string           `json:"factory_id"`
	Period               string           `json:"period"`
	Amount               decimal.Decimal  `json:"amount"`
	FertilizerDeductions *decimal.Decimal `json:"fertilizer_deductions,omitempty"`
	DateReceived         *string          `json:"date_received,omitempty"`
	Notes                *string          `json:"notes,omitempty"`
}

func (r *CreateReceiptRequest) Validate() error {
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

	if validator.IsEmpty(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period is required",
		})
	} else if !validator.IsValidBonusPeriod(r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be in YYYY-H1 or YYYY-H2 format",
		})
	}

	if !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if r.FertilizerDeductions != nil && r.FertilizerDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "fertilizer_deductions",
			Message: "fertilizer_deductions must not be negative",
		})
	}

	if r.DateReceived != nil {
		if _, ok := validator.IsValidDateTime(*r.DateReceived); !ok {
			if _, ok := validator.IsValidDate(*r.DateReceived); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "date_received",
					Message: "date_received must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateReceiptRequest represents request to update a bonus receipt. Only
// non-nil fields are applied; net_bonus is recomputed from the resulting
// amount and fertilizer_deductions.
type UpdateReceiptRequest struct {
	ID                   string           `json:"-"`
	Period               *string          `json:"period,omitempty"`
	Amount               *decimal.Decimal `json:"amount,omitempty"`
	FertilizerDeductions *decimal.Decimal `json:"fertilizer_deductions,omitempty"`
	DateReceived         *string          `json:"date_received,omitempty"`
	Notes                *string          `json:"notes,omitempty"`
}

func (r *UpdateReceiptRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if r.Period != nil && !validator.IsValidBonusPeriod(*r.Period) {
		errs = append(errs, validator.ValidationError{
			Field:   "period",
			Message: "period must be in YYYY-H1 or YYYY-H2 format",
		})
	}

	if r.Amount != nil && !r.Amount.IsPositive() {
		errs = append(errs, validator.ValidationError{
			Field:   "amount",
			Message: "amount must be positive",
		})
	}

	if r.FertilizerDeductions != nil && r.FertilizerDeductions.IsNegative() {
		errs = append(errs, validator.ValidationError{
			Field:   "fertilizer_deductions",
			Message: "fertilizer_deductions must not be negative",
		})
	}

	if r.DateReceived != nil {
		if _, ok := validator.IsValidDateTime(*r.DateReceived); !ok {
			if _, ok := validator.IsValidDate(*r.DateReceived); !ok {
				errs = append(errs, validator.ValidationError{
					Field:   "date_received",
					Message: "date_received must be an ISO8601 timestamp or YYYY-MM-DD date",
				})
			}
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ReceiptFilter narrows receipt listings. Year matches both halves of the
// year; Period matches one exactly.
type ReceiptFilter struct {
	FactoryID *string
	Period    *string
	Year      *int
}

// SummaryResponse aggregates the whole bonus ledger
type SummaryResponse struct {
	TotalBonuses              int             `json:"total_bonuses"`
	TotalAmount               decimal.Decimal `json:"total_amount"`
	TotalFertilizerDeductions decimal.Decimal `json:"total_fertilizer_deductions"`
	TotalNetBonus             decimal.Decimal `json:"total_net_bonus"`
}

// PeriodSummaryResponse aggregates a period's bonus payouts
type PeriodSummaryResponse struct {
	Period                    string          `json:"period"`
	TotalBonuses              int             `json:"total_bonuses"`
	TotalAmount               decimal.Decimal `json:"total_amount"`
	TotalFertilizerDeductions decimal.Decimal `json:"total_fertilizer_deductions"`
	TotalNetBonus             decimal.Decimal `json:"total_net_bonus"`
	Factories                 []string        `json:"factories"`
}

// FactorySummaryResponse aggregates one factory's bonus history
type FactorySummaryResponse struct {
	FactoryID                 string          `json:"factory_id"`
	FactoryName               string          `json:"factory_name"`
	TotalBonuses              int             `json:"total_bonuses"`
	TotalAmount               decimal.Decimal `json:"total_amount"`
	TotalFertilizerDeductions decimal.Decimal `json:"total_fertilizer_deductions"`
	TotalNetBonus             decimal.Decimal `json:"total_net_bonus"`
}
