package payroll

import (
	"context"
	"log/slog"
)

type Service struct {
	store *Store
}

func NewService(store *Store) *Service {
	return &Service{store: store}
}

// Generate computes and persists the payslip for one employee. The
// employee's payroll row is found-or-created by employee id alone, so a
// new payslip overwrites the previous one, and the submitted salary
// components overwrite the employee master in the same transaction.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (Record, error) {
	result, err := Compute(Input{
		WorkingDays: req.WorkingDays,
		LOPDays:     req.LOPDays,
		Components:  req.Components,
	})
	if err != nil {
		return Record{}, err
	}

	record := Record{
		Components:      req.Components,
		EmployeeID:      req.EmployeeID,
		PayPeriod:       req.PayPeriod,
		WorkingDays:     req.WorkingDays,
		LOPDays:         req.LOPDays,
		PaidDays:        result.PaidDays,
		PerDayWage:      result.PerDayWage,
		LOPAmount:       result.LOPAmount,
		GrossSalary:     result.GrossSalary,
		TotalDeductions: result.TotalDeductions,
		NetPay:          result.NetPay,
		PaymentMethod:   req.PaymentMethod,
		Remarks:         req.Remarks,
	}

	tx, err := s.store.BeginTx(ctx)
	if err != nil {
		return Record{}, err
	}

	rollback := func() {
		if rbErr := tx.Rollback(ctx); rbErr != nil {
			slog.Warn("payroll generate rollback failed", "err", rbErr)
		}
	}

	exists, err := s.store.EmployeeExistsTx(ctx, tx, req.EmployeeID)
	if err != nil {
		rollback()
		return Record{}, err
	}
	if !exists {
		rollback()
		return Record{}, ErrEmployeeNotFound
	}

	existingID, err := s.store.FindRecordIDByEmployeeTx(ctx, tx, req.EmployeeID)
	if err != nil {
		rollback()
		return Record{}, err
	}

	if existingID == "" {
		id, err := s.store.InsertRecordTx(ctx, tx, record)
		if err != nil {
			rollback()
			return Record{}, err
		}
		record.ID = id
	} else {
		if err := s.store.UpdateRecordTx(ctx, tx, existingID, record); err != nil {
			rollback()
			return Record{}, err
		}
		record.ID = existingID
	}

	if err := s.store.OverwriteEmployeeComponentsTx(ctx, tx, req.EmployeeID, req.Components); err != nil {
		rollback()
		return Record{}, err
	}

	if err := tx.Commit(ctx); err != nil {
		return Record{}, err
	}
	return record, nil
}

func (s *Service) ForEmployee(ctx context.Context, employeeID string) (Record, error) {
	return s.store.GetByEmployee(ctx, employeeID)
}

func (s *Service) List(ctx context.Context, limit, offset int) ([]Record, error) {
	return s.store.List(ctx, limit, offset)
}
