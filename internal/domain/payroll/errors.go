package payroll

import "errors"

var (
	ErrInvalidWorkingDays = errors.New("working days must be greater than zero")
	ErrEmployeeNotFound   = errors.New("employee not found")
	ErrPayrollNotFound    = errors.New("payroll record not found")
)
