package bonus

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

func strPtr(s string) *string { return &s }

func TestUpdateReceiptRequestRejectsMalformedDate(t *testing.T) {
	req := UpdateReceiptRequest{
		ID:           "b1946ac9-2d4e-4b6e-9d4c-0f3a2b1c4d5e",
		DateReceived: strPtr("15/07/2025"),
	}

	err := req.Validate()
	require.Error(t, err)

	var errs validator.ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Contains(t, errs.ToMap(), "date_received")
}

func TestUpdateReceiptRequestAcceptsDateFormats(t *testing.T) {
	amount := decimal.RequireFromString("50000")

	for _, date := range []string{"2025-07-15", "2025-07-15T12:00:00Z"} {
		req := UpdateReceiptRequest{
			ID:           "b1946ac9-2d4e-4b6e-9d4c-0f3a2b1c4d5e",
			Amount:       &amount,
			DateReceived: strPtr(date),
		}
		assert.NoError(t, req.Validate(), date)
	}
}
