package payroll

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"
)

// PayslipPDF renders the employee's current payroll row to a PDF under dir
// and returns the file path.
func (s *Service) PayslipPDF(ctx context.Context, employeeID, dir string) (string, error) {
	var name, designation string
	err := s.store.DB.QueryRow(ctx, `
    SELECT name, COALESCE(designation, '') FROM employees WHERE id = $1
  `, employeeID).Scan(&name, &designation)
	if err != nil {
		return "", err
	}

	record, err := s.store.GetByEmployee(ctx, employeeID)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	filePath := filepath.Join(dir, record.ID+".pdf")

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)
	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", name))
	pdf.Ln(7)
	if designation != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Designation: %s", designation))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Pay period: %s", record.PayPeriod))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Pay days: %.1f of %.1f (LOP %.1f)", record.PaidDays, record.WorkingDays, record.LOPDays))
	pdf.Ln(10)
	pdf.Cell(0, 8, fmt.Sprintf("Gross salary: %.2f", record.GrossSalary))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %.2f (LOP %.2f)", record.TotalDeductions, record.LOPAmount))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %.2f", record.NetPay))

	if err := pdf.OutputFileAndClose(filePath); err != nil {
		return "", err
	}
	return filePath, nil
}
