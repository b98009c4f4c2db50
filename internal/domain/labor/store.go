package labor

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("labor record not found")

type Store struct {
	DB *pgxpool.Pool
}

func NewStore(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

func (s *Store) ListLabors(ctx context.Context, siteID string) ([]Labor, error) {
	query := `
    SELECT id, name, COALESCE(phone, ''), COALESCE(site_id::text, ''),
           COALESCE(engineer_id::text, ''), daily_rate, status, created_at
    FROM labors`
	args := []any{}
	if siteID != "" {
		query += " WHERE site_id = $1"
		args = append(args, siteID)
	}
	query += " ORDER BY name"

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var labors []Labor
	for rows.Next() {
		var labor Labor
		if err := rows.Scan(&labor.ID, &labor.Name, &labor.Phone, &labor.SiteID,
			&labor.EngineerID, &labor.DailyRate, &labor.Status, &labor.CreatedAt); err != nil {
			return nil, err
		}
		labors = append(labors, labor)
	}
	return labors, rows.Err()
}

func (s *Store) GetLabor(ctx context.Context, id string) (Labor, error) {
	var labor Labor
	err := s.DB.QueryRow(ctx, `
    SELECT id, name, COALESCE(phone, ''), COALESCE(site_id::text, ''),
           COALESCE(engineer_id::text, ''), daily_rate, status, created_at
    FROM labors
    WHERE id = $1
  `, id).Scan(&labor.ID, &labor.Name, &labor.Phone, &labor.SiteID,
		&labor.EngineerID, &labor.DailyRate, &labor.Status, &labor.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return Labor{}, ErrNotFound
	}
	if err != nil {
		return Labor{}, err
	}
	return labor, nil
}

func (s *Store) CreateLabor(ctx context.Context, labor Labor) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO labors (name, phone, site_id, engineer_id, daily_rate, status)
    VALUES ($1,$2,$3,$4,$5,$6)
    RETURNING id
  `, labor.Name, labor.Phone, nullIfEmpty(labor.SiteID), nullIfEmpty(labor.EngineerID),
		labor.DailyRate, labor.Status).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) UpdateLabor(ctx context.Context, labor Labor) error {
	tag, err := s.DB.Exec(ctx, `
    UPDATE labors
    SET name = $2, phone = $3, site_id = $4, engineer_id = $5, daily_rate = $6, status = $7
    WHERE id = $1
  `, labor.ID, labor.Name, labor.Phone, nullIfEmpty(labor.SiteID),
		nullIfEmpty(labor.EngineerID), labor.DailyRate, labor.Status)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) DeleteLabor(ctx context.Context, id string) error {
	tag, err := s.DB.Exec(ctx, "DELETE FROM labors WHERE id = $1", id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *Store) ListSites(ctx context.Context) ([]Site, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(location, ''), created_at
    FROM sites
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sites []Site
	for rows.Next() {
		var site Site
		if err := rows.Scan(&site.ID, &site.Name, &site.Location, &site.CreatedAt); err != nil {
			return nil, err
		}
		sites = append(sites, site)
	}
	return sites, rows.Err()
}

func (s *Store) CreateSite(ctx context.Context, site Site) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO sites (name, location)
    VALUES ($1,$2)
    RETURNING id
  `, site.Name, site.Location).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *Store) ListEngineers(ctx context.Context) ([]Engineer, error) {
	rows, err := s.DB.Query(ctx, `
    SELECT id, name, COALESCE(phone, ''), created_at
    FROM site_engineers
    ORDER BY name
  `)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var engineers []Engineer
	for rows.Next() {
		var engineer Engineer
		if err := rows.Scan(&engineer.ID, &engineer.Name, &engineer.Phone, &engineer.CreatedAt); err != nil {
			return nil, err
		}
		engineers = append(engineers, engineer)
	}
	return engineers, rows.Err()
}

func (s *Store) CreateEngineer(ctx context.Context, engineer Engineer) (string, error) {
	var id string
	err := s.DB.QueryRow(ctx, `
    INSERT INTO site_engineers (name, phone)
    VALUES ($1,$2)
    RETURNING id
  `, engineer.Name, engineer.Phone).Scan(&id)
	if err != nil {
		return "", err
	}
	return id, nil
}

func nullIfEmpty(value string) any {
	if value == "" {
		return nil
	}
	return value
}
