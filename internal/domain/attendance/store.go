package attendance

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) LaborRate(ctx context.Context, laborID string) (float64, error) {
	var rate float64
	err := s.DB.QueryRow(ctx, `
    SELECT daily_rate FROM labors WHERE id = $1
  `, laborID).Scan(&rate)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, ErrLaborNotFound
	}
	if err != nil {
		return 0, err
	}
	return rate, nil
}

// UpsertDay inserts or replaces the record keyed by (labor, site, work date).
func (s *Store) UpsertDay(ctx context.Context, record Record) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO attendance_records
      (labor_id, site_id, engineer_id, work_date, time_in, time_out,
       day_status, attendance_value, wages_amount, payment_week, payment_status, remarks)
    VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
    ON CONFLICT (labor_id, site_id, work_date) DO UPDATE SET
      engineer_id = EXCLUDED.engineer_id,
      time_in = EXCLUDED.time_in,
      time_out = EXCLUDED.time_out,
      day_status = EXCLUDED.day_status,
      attendance_value = EXCLUDED.attendance_value,
      wages_amount = EXCLUDED.wages_amount,
      payment_week = EXCLUDED.payment_week,
      remarks = EXCLUDED.remarks
    RETURNING id
  `, record.LaborID, record.SiteID, nullIfEmpty(record.EngineerID), record.WorkDate,
		record.TimeIn, record.TimeOut, record.DayStatus, record.Value, record.Wages,
		record.Week, PaymentPending, record.Remarks).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) List(ctx context.Context, filter Filter) ([]Record, error) {
	query := `
    SELECT a.id, a.labor_id, COALESCE(l.name, ''),
           a.site_id, COALESCE(st.name, ''),
           COALESCE(a.engineer_id::text, ''), COALESCE(en.name, ''),
           a.work_date, a.time_in, a.time_out, a.day_status,
           a.attendance_value, a.wages_amount, a.payment_week, a.payment_status,
           a.remarks, a.created_at
    FROM attendance_records a
    LEFT JOIN labors l ON a.labor_id = l.id
    LEFT JOIN sites st ON a.site_id = st.id
    LEFT JOIN site_engineers en ON a.engineer_id = en.id
    WHERE 1=1`

	args := []any{}
	add := func(clause string, value any) {
		args = append(args, value)
		query += fmt.Sprintf(clause, len(args))
	}
	if filter.Week != "" {
		add(" AND a.payment_week = $%d", filter.Week)
	}
	if filter.LaborID != "" {
		add(" AND a.labor_id = $%d", filter.LaborID)
	}
	if filter.SiteID != "" {
		add(" AND a.site_id = $%d", filter.SiteID)
	}
	if filter.Status != "" {
		add(" AND a.payment_status = $%d", filter.Status)
	}
	if !filter.From.IsZero() {
		add(" AND a.work_date >= $%d", filter.From)
	}
	if !filter.To.IsZero() {
		add(" AND a.work_date <= $%d", filter.To)
	}
	query += " ORDER BY a.work_date, a.created_at"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var record Record
		if err := rows.Scan(&record.ID, &record.LaborID, &record.LaborName,
			&record.SiteID, &record.SiteName, &record.EngineerID, &record.EngineerName,
			&record.WorkDate, &record.TimeIn, &record.TimeOut, &record.DayStatus,
			&record.Value, &record.Wages, &record.Week, &record.Status,
			&record.Remarks, &record.CreatedAt); err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	return records, rows.Err()
}

// MarkPaid transitions every id to Paid in one transaction. If any id does
// not match a row the whole update rolls back.
func (s *Store) MarkPaid(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	tx, err := s.DB.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}

	tag, err := tx.Exec(ctx, `
    UPDATE attendance_records SET payment_status = $1 WHERE id = ANY($2::uuid[])
  `, PaymentPaid, ids)
	if err != nil {
		_ = tx.Rollback(ctx)
		return err
	}
	if tag.RowsAffected() != int64(len(ids)) {
		_ = tx.Rollback(ctx)
		return ErrMarkPaidMismatch
	}
	return tx.Commit(ctx)
}

func (s *Store) DeleteByIDs(ctx context.Context, ids []string) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}
	tag, err := s.DB.Exec(ctx, `
    DELETE FROM attendance_records WHERE id = ANY($1::uuid[])
  `, ids)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
