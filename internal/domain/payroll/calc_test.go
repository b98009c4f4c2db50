package payroll

import (
	"errors"
	"testing"
)

func TestComputeLOPFromBasic(t *testing.T) {
	result, err := Compute(Input{
		WorkingDays: 30,
		LOPDays:     2,
		Components:  Components{BasicDA: 30000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PerDayWage != 1000 {
		t.Fatalf("expected per-day wage 1000, got %v", result.PerDayWage)
	}
	if result.LOPAmount != 2000 {
		t.Fatalf("expected LOP amount 2000, got %v", result.LOPAmount)
	}
	if result.PaidDays != 28 {
		t.Fatalf("expected 28 paid days, got %v", result.PaidDays)
	}
}

func TestComputeGrossDeductionsNet(t *testing.T) {
	result, err := Compute(Input{
		WorkingDays: 30,
		LOPDays:     2,
		Components: Components{
			BasicDA:    30000,
			HRA:        5000,
			Conveyance: 1000,
			PF:         1800,
			ESI:        200,
		},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GrossSalary != 36000 {
		t.Fatalf("expected gross 36000, got %v", result.GrossSalary)
	}
	if result.TotalDeductions != 4000 {
		t.Fatalf("expected deductions 4000, got %v", result.TotalDeductions)
	}
	if result.NetPay != 32000 {
		t.Fatalf("expected net 32000, got %v", result.NetPay)
	}
}

func TestComputeDoesNotProRateAllowances(t *testing.T) {
	// Half the month lost to LOP: gross keeps the full HRA and allowances,
	// only the basic-derived LOP amount reduces pay.
	result, err := Compute(Input{
		WorkingDays: 30,
		LOPDays:     15,
		Components:  Components{BasicDA: 30000, HRA: 6000, SpecialAllowance: 3000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.GrossSalary != 39000 {
		t.Fatalf("expected un-prorated gross 39000, got %v", result.GrossSalary)
	}
	if result.LOPAmount != 15000 {
		t.Fatalf("expected LOP 15000, got %v", result.LOPAmount)
	}
	if result.NetPay != 24000 {
		t.Fatalf("expected net 24000, got %v", result.NetPay)
	}
}

func TestComputeNegativeNetIsNotClamped(t *testing.T) {
	result, err := Compute(Input{
		WorkingDays: 30,
		LOPDays:     0,
		Components:  Components{BasicDA: 1000, Advance: 5000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.NetPay != -4000 {
		t.Fatalf("expected net -4000, got %v", result.NetPay)
	}
}

func TestComputeRejectsInvalidWorkingDays(t *testing.T) {
	for _, days := range []float64{0, -5} {
		_, err := Compute(Input{WorkingDays: days, Components: Components{BasicDA: 30000}})
		if !errors.Is(err, ErrInvalidWorkingDays) {
			t.Fatalf("workingDays=%v: expected ErrInvalidWorkingDays, got %v", days, err)
		}
	}
}

func TestComputeRoundsToTwoDecimals(t *testing.T) {
	result, err := Compute(Input{
		WorkingDays: 31,
		LOPDays:     1,
		Components:  Components{BasicDA: 10000},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.PerDayWage != 322.58 {
		t.Fatalf("expected per-day wage 322.58, got %v", result.PerDayWage)
	}
	if result.LOPAmount != 322.58 {
		t.Fatalf("expected LOP 322.58, got %v", result.LOPAmount)
	}
	if result.NetPay != 9677.42 {
		t.Fatalf("expected net 9677.42, got %v", result.NetPay)
	}
}
