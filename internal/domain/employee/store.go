package employee

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("employee not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

const employeeColumns = `
    id, name, COALESCE(department, ''), COALESCE(designation, ''),
    COALESCE(pan_no, ''), COALESCE(bank_name, ''), COALESCE(account_no, ''),
    basic_salary, hra, conveyance, med_reimb, special_allowance,
    child_edu, child_hostel, pf, esi, lwf, created_at`

func scanEmployee(row pgx.Row) (Employee, error) {
	var emp Employee
	err := row.Scan(&emp.ID, &emp.Name, &emp.Department, &emp.Designation,
		&emp.PANNo, &emp.BankName, &emp.AccountNo,
		&emp.BasicSalary, &emp.HRA, &emp.Conveyance, &emp.MedReimb,
		&emp.SpecialAllowance, &emp.ChildEdu, &emp.ChildHostel,
		&emp.PF, &emp.ESI, &emp.LWF, &emp.CreatedAt)
	return emp, err
}

func (s *Store) List(ctx context.Context) ([]Employee, error) {
	rows, err := s.DB.Query(ctx, "SELECT"+employeeColumns+" FROM employees ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []Employee
	for rows.Next() {
		emp, err := scanEmployee(rows)
		if err != nil {
			return nil, err
		}
		employees = append(employees, emp)
	}
	return employees, rows.Err()
}

func (s *Store) Get(ctx context.Context, id string) (Employee, error) {
	emp, err := scanEmployee(s.DB.QueryRow(ctx, "SELECT"+employeeColumns+" FROM employees WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return Employee{}, ErrNotFound
	}
	if err != nil {
		return Employee{}, err
	}
	return emp, nil
}

func (s *Store) Create(ctx context.Context, emp Employee) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO employees
      (name, department, designation, pan_no, bank_name, account_no,
       basic_salary, hra, conveyance, med_reimb, special_allowance,
       child_edu, child_hostel, pf, esi, lwf)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)
    RETURNING id
  `, emp.Name, emp.Department, emp.Designation, emp.PANNo, emp.BankName, emp.AccountNo,
		emp.BasicSalary, emp.HRA, emp.Conveyance, emp.MedReimb, emp.SpecialAllowance,
		emp.ChildEdu, emp.ChildHostel, emp.PF, emp.ESI, emp.LWF).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) Update(ctx context.Context, emp Employee) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE employees SET
      name = $2, department = $3, designation = $4, pan_no = $5,
      bank_name = $6, account_no = $7,
      basic_salary = $8, hra = $9, conveyance = $10, med_reimb = $11,
      special_allowance = $12, child_edu = $13, child_hostel = $14,
      pf = $15, esi = $16, lwf = $17
    WHERE id = $1
  `, emp.ID, emp.Name, emp.Department, emp.Designation, emp.PANNo,
		emp.BankName, emp.AccountNo,
		emp.BasicSalary, emp.HRA, emp.Conveyance, emp.MedReimb,
		emp.SpecialAllowance, emp.ChildEdu, emp.ChildHostel,
		emp.PF, emp.ESI, emp.LWF)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM employees WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
