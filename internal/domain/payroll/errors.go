package payroll

import "errors"

var (
	ErrPayrollNotFound = errors.New("payroll not found")
	ErrPayrollExists   = errors.New("payroll already exists for worker and period")
	ErrInvalidMonth    = errors.New("month must be between 1 and 12")
)
