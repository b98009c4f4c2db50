package payroll

import "math"

// Components are the fixed monthly earnings and statutory deductions read
// from the payroll form. Amounts already absorbed malformed input as zero
// at the parsing boundary.
type Components struct {
	BasicDA           float64 `json:"basicDA"`
	HRA               float64 `json:"hra"`
	Conveyance        float64 `json:"conveyance"`
	MedReimb          float64 `json:"medReimb"`
	SpecialAllowance  float64 `json:"specialAllowance"`
	ChildEdu          float64 `json:"childEdu"`
	ChildHostel       float64 `json:"childHostel"`
	Increment         float64 `json:"increment"`
	Arrears           float64 `json:"arrears"`
	OtherEarnings     float64 `json:"otherEarnings"`
	AllowanceIncrease float64 `json:"allowanceIncrease"`
	PF                float64 `json:"pf"`
	ESI               float64 `json:"esi"`
	LWF               float64 `json:"lwf"`
	Advance           float64 `json:"advance"`
}

type Input struct {
	WorkingDays float64 `json:"workingDays"`
	LOPDays     float64 `json:"lopDays"`
	Components
}

type Result struct {
	PaidDays        float64 `json:"paidDays"`
	PerDayWage      float64 `json:"perDayWage"`
	LOPAmount       float64 `json:"lopAmount"`
	GrossSalary     float64 `json:"grossSalary"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetPay          float64 `json:"netPay"`
}

// Compute derives gross, deductions and net pay from the fixed monthly
// components and the attendance shortfall. Earnings are not pro-rated by
// attendance; only the LOP amount, priced off the basic component's
// per-day wage, reduces pay for absence. Net pay may go negative when
// deductions exceed earnings; it is not clamped.
func Compute(in Input) (Result, error) {
	if in.WorkingDays <= 0 {
		return Result{}, ErrInvalidWorkingDays
	}

	perDayWage := round2(in.BasicDA / in.WorkingDays)
	lopAmount := round2(perDayWage * in.LOPDays)

	gross := in.BasicDA + in.HRA + in.Conveyance + in.MedReimb +
		in.SpecialAllowance + in.ChildEdu + in.ChildHostel +
		in.Increment + in.Arrears + in.OtherEarnings + in.AllowanceIncrease
	deductions := in.PF + in.ESI + in.LWF + in.Advance + lopAmount

	return Result{
		PaidDays:        in.WorkingDays - in.LOPDays,
		PerDayWage:      perDayWage,
		LOPAmount:       lopAmount,
		GrossSalary:     round2(gross),
		TotalDeductions: round2(deductions),
		NetPay:          round2(gross - deductions),
	}, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
