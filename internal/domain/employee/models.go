package employee

import "time"

// Employee is the canonical master record. Salary-component fields are
// overwritten whenever payroll is processed for the employee.
type Employee struct {
	ID               string    `json:"id"`
	Name             string    `json:"name"`
	Department       string    `json:"department,omitempty"`
	Designation      string    `json:"designation,omitempty"`
	PANNo            string    `json:"panNo,omitempty"`
	BankName         string    `json:"bankName,omitempty"`
	AccountNo        string    `json:"accountNo,omitempty"`
	BasicSalary      float64   `json:"basicSalary"`
	HRA              float64   `json:"hra"`
	Conveyance       float64   `json:"conveyance"`
	MedReimb         float64   `json:"medReimb"`
	SpecialAllowance float64   `json:"specialAllowance"`
	ChildEdu         float64   `json:"childEdu"`
	ChildHostel      float64   `json:"childHostel"`
	PF               float64   `json:"pf"`
	ESI              float64   `json:"esi"`
	LWF              float64   `json:"lwf"`
	CreatedAt        time.Time `json:"createdAt"`
}
