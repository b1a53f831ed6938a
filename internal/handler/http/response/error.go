package response

import (
	"errors"
	"net/http"

	"github.com/sambu-farm/farm-backend-go/internal/domain/advance"
	"github.com/sambu-farm/farm-backend-go/internal/domain/auth"
	"github.com/sambu-farm/farm-backend-go/internal/domain/bonus"
	"github.com/sambu-farm/farm-backend-go/internal/domain/delivery"
	"github.com/sambu-farm/farm-backend-go/internal/domain/factory"
	"github.com/sambu-farm/farm-backend-go/internal/domain/fertilizer"
	"github.com/sambu-farm/farm-backend-go/internal/domain/importer"
	"github.com/sambu-farm/farm-backend-go/internal/domain/payroll"
	"github.com/sambu-farm/farm-backend-go/internal/domain/user"
	"github.com/sambu-farm/farm-backend-go/internal/domain/worker"
	"github.com/sambu-farm/farm-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrUserInactive):
		Forbidden(w, "User account is inactive")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Roster and factory errors
	case errors.Is(err, worker.ErrWorkerNotFound):
		NotFound(w, "Worker not found")
	case errors.Is(err, factory.ErrFactoryNotFound):
		NotFound(w, "Factory not found")
	case errors.Is(err, factory.ErrFactoriesAlreadySeeded):
		Conflict(w, "Factories already initialized")
	case errors.Is(err, factory.ErrNoActiveFactoryConfigured):
		BadRequest(w, "No active factory configured", nil)

	// Ledger errors
	case errors.Is(err, delivery.ErrDeliveryNotFound):
		NotFound(w, "Delivery not found")
	case errors.Is(err, delivery.ErrDeliveryAlreadyPriced):
		Conflict(w, "Delivery already priced")
	case errors.Is(err, advance.ErrAdvanceNotFound):
		NotFound(w, "Advance not found")
	case errors.Is(err, fertilizer.ErrObligationNotFound):
		NotFound(w, "Fertilizer obligation not found")
	case errors.Is(err, bonus.ErrReceiptNotFound):
		NotFound(w, "Bonus receipt not found")

	// Payroll errors
	case errors.Is(err, payroll.ErrPayrollNotFound):
		NotFound(w, "Payroll not found")
	case errors.Is(err, payroll.ErrPayrollExists):
		Conflict(w, "Payroll already exists for this worker and period")
	case errors.Is(err, payroll.ErrInvalidMonth):
		ValidationError(w, map[string]string{"month": "month must be between 1 and 12"})

	// Import errors
	case errors.Is(err, importer.ErrInvalidFile):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, importer.ErrEmptyWorkbook):
		BadRequest(w, err.Error(), nil)

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
