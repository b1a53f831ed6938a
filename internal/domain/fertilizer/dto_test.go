package fertilizer

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestUpdateObligationRequestRejectsMalformedDate(t *testing.T) {
	req := UpdateObligationRequest{
		ID:             "b1946ac9-2d4e-4b6e-9d4c-0f3a2b1c4d5e",
		ObligationDate: strPtr("not-a-date"),
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "obligation_date")
}

func TestUpdateObligationRequestAcceptsDateFormats(t *testing.T) {
	bags := decimal.RequireFromString("5")

	for _, date := range []string{"2025-04-02", "2025-04-02T09:30:00Z"} {
		req := UpdateObligationRequest{
			ID:             "b1946ac9-2d4e-4b6e-9d4c-0f3a2b1c4d5e",
			Bags:           &bags,
			ObligationDate: strPtr(date),
		}
		assert.NoError(t, req.Validate(), date)
	}
}
