package payroll

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) BeginTx(ctx context.Context) (pgx.Tx, error) {
	return s.DB.BeginTx(ctx, pgx.TxOptions{})
}

func (s *Store) EmployeeExistsTx(ctx context.Context, tx pgx.Tx, employeeID string) (bool, error) {
	var count int
	if err := tx.QueryRow(ctx, "SELECT COUNT(1) FROM employees WHERE id = $1", employeeID).Scan(&count); err != nil {
		return false, err
	}
	return count > 0, nil
}

// FindRecordIDByEmployeeTx looks up the employee's payroll row with no
// period filter; the system keeps at most one row per employee.
func (s *Store) FindRecordIDByEmployeeTx(ctx context.Context, tx pgx.Tx, employeeID string) (string, error) {
	var id string
	err := tx.QueryRow(ctx, "SELECT id FROM payroll_records WHERE employee_id = $1", employeeID).Scan(&id)
	if errors.Is(err, pgx.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) InsertRecordTx(ctx context.Context, tx pgx.Tx, record Record) (string, error) {
	var id string
	err := tx.QueryRow(ctx, `
    INSERT INTO payroll_records
      (employee_id, pay_period, working_days, lop_days, paid_days, per_day_wage,
       basic_da, hra, conveyance, med_reimb, special_allowance, child_edu, child_hostel,
       increment, arrears, other_earnings, allowance_increase,
       pf, esi, lwf, advance, lop_amount,
       gross_salary, total_deductions, net_pay, payment_method, remarks)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24,$25,$26,$27)
    RETURNING id
  `, record.EmployeeID, record.PayPeriod, record.WorkingDays, record.LOPDays,
		record.PaidDays, record.PerDayWage,
		record.BasicDA, record.HRA, record.Conveyance, record.MedReimb,
		record.SpecialAllowance, record.ChildEdu, record.ChildHostel,
		record.Increment, record.Arrears, record.OtherEarnings, record.AllowanceIncrease,
		record.PF, record.ESI, record.LWF, record.Advance, record.LOPAmount,
		record.GrossSalary, record.TotalDeductions, record.NetPay,
		record.PaymentMethod, record.Remarks).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateRecordTx(ctx context.Context, tx pgx.Tx, id string, record Record) error {
	_, err := tx.Exec(ctx, `
    UPDATE payroll_records SET
      pay_period = $2, working_days = $3, lop_days = $4, paid_days = $5, per_day_wage = $6,
      basic_da = $7, hra = $8, conveyance = $9, med_reimb = $10, special_allowance = $11,
      child_edu = $12, child_hostel = $13, increment = $14, arrears = $15,
      other_earnings = $16, allowance_increase = $17,
      pf = $18, esi = $19, lwf = $20, advance = $21, lop_amount = $22,
      gross_salary = $23, total_deductions = $24, net_pay = $25,
      payment_method = $26, remarks = $27, updated_at = now()
    WHERE id = $1
  `, id, record.PayPeriod, record.WorkingDays, record.LOPDays, record.PaidDays,
		record.PerDayWage,
		record.BasicDA, record.HRA, record.Conveyance, record.MedReimb,
		record.SpecialAllowance, record.ChildEdu, record.ChildHostel,
		record.Increment, record.Arrears, record.OtherEarnings, record.AllowanceIncrease,
		record.PF, record.ESI, record.LWF, record.Advance, record.LOPAmount,
		record.GrossSalary, record.TotalDeductions, record.NetPay,
		record.PaymentMethod, record.Remarks)
	return err
}

// OverwriteEmployeeComponentsTx copies the submitted salary components onto
// the employee master. Latest payroll values become the permanent master
// values.
func (s *Store) OverwriteEmployeeComponentsTx(ctx context.Context, tx pgx.Tx, employeeID string, comps Components) error {
	_, err := tx.Exec(ctx, `
    UPDATE employees SET
      basic_salary = $2, hra = $3, conveyance = $4, med_reimb = $5,
      special_allowance = $6, child_edu = $7, child_hostel = $8,
      pf = $9, esi = $10, lwf = $11
    WHERE id = $1
  `, employeeID, comps.BasicDA, comps.HRA, comps.Conveyance, comps.MedReimb,
		comps.SpecialAllowance, comps.ChildEdu, comps.ChildHostel,
		comps.PF, comps.ESI, comps.LWF)
	return err
}

func (s *Store) GetByEmployee(ctx context.Context, employeeID string) (Record, error) {
	var record Record
	err := s.DB.QueryRow(ctx, `
    SELECT id, employee_id, pay_period, working_days, lop_days, paid_days, per_day_wage,
           basic_da, hra, conveyance, med_reimb, special_allowance, child_edu, child_hostel,
           increment, arrears, other_earnings, allowance_increase,
           pf, esi, lwf, advance, lop_amount,
           gross_salary, total_deductions, net_pay,
           COALESCE(payment_method, ''), COALESCE(remarks, ''), created_at, updated_at
    FROM payroll_records
    WHERE employee_id = $1
  `, employeeID).Scan(&record.ID, &record.EmployeeID, &record.PayPeriod,
		&record.WorkingDays, &record.LOPDays, &record.PaidDays, &record.PerDayWage,
		&record.BasicDA, &record.HRA, &record.Conveyance, &record.MedReimb,
		&record.SpecialAllowance, &record.ChildEdu, &record.ChildHostel,
		&record.Increment, &record.Arrears, &record.OtherEarnings, &record.AllowanceIncrease,
		&record.PF, &record.ESI, &record.LWF, &record.Advance, &record.LOPAmount,
		&record.GrossSalary, &record.TotalDeductions, &record.NetPay,
		&record.PaymentMethod, &record.Remarks, &record.CreatedAt, &record.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Record{}, ErrPayrollNotFound
	}
	if err != nil {
		return Record{}, err
	}
	return record, nil
}

func (s *Store) List(ctx context.Context, limit, offset int) ([]Record, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, employee_id, pay_period, working_days, lop_days, paid_days, per_day_wage,
           basic_da, hra, conveyance, med_reimb, special_allowance, child_edu, child_hostel,
           increment, arrears, other_earnings, allowance_increase,
           pf, esi, lwf, advance, lop_amount,
           gross_salary, total_deductions, net_pay,
           COALESCE(payment_method, ''), COALESCE(remarks, ''), created_at, updated_at
    FROM payroll_records
    ORDER BY updated_at DESC
    LIMIT $1 OFFSET $2
  `, limit, offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.EmployeeID, &record.PayPeriod,
			&record.WorkingDays, &record.LOPDays, &record.PaidDays, &record.PerDayWage,
			&record.BasicDA, &record.HRA, &record.Conveyance, &record.MedReimb,
			&record.SpecialAllowance, &record.ChildEdu, &record.ChildHostel,
			&record.Increment, &record.Arrears, &record.OtherEarnings, &record.AllowanceIncrease,
			&record.PF, &record.ESI, &record.LWF, &record.Advance, &record.LOPAmount,
			&record.GrossSalary, &record.TotalDeductions, &record.NetPay,
			&record.PaymentMethod, &record.Remarks, &record.CreatedAt, &record.UpdatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}
