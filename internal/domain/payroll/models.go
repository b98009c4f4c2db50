package payroll

import "time"

// Record is an employee's latest generated payslip. One row is retained
// per employee: generating a payslip finds and overwrites the existing row
// rather than appending history.
type Record struct {
	Components

	ID              string    `json:"id"`
	EmployeeID      string    `json:"employeeId"`
	PayPeriod       string    `json:"payPeriod"`
	WorkingDays     float64   `json:"workingDays"`
	LOPDays         float64   `json:"lopDays"`
	PaidDays        float64   `json:"payDays"`
	PerDayWage      float64   `json:"perDayWage"`
	LOPAmount       float64   `json:"lopAmount"`
	GrossSalary     float64   `json:"grossSalary"`
	TotalDeductions float64   `json:"totalDeductions"`
	NetPay          float64   `json:"netPay"`
	PaymentMethod   string    `json:"paymentMethod,omitempty"`
	Remarks         string    `json:"remarks,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// GenerateRequest is the payroll form for one employee and period.
type GenerateRequest struct {
	EmployeeID    string
	PayPeriod     string
	WorkingDays   float64
	LOPDays       float64
	Components    Components
	PaymentMethod string
	Remarks       string
}
