package attendance

import (
	"context"
	"time"
)

type StoreAPI interface {
	LaborRate(ctx context.Context, laborID string) (float64, error)
	UpsertDay(ctx context.Context, record Record) (string, error)
	List(ctx context.Context, filter Filter) ([]Record, error)
	MarkPaid(ctx context.Context, ids []string) error
	DeleteByIDs(ctx context.Context, ids []string) (int64, error)
}

type Service struct {
	store StoreAPI
	slabs []Slab
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store, slabs: DefaultSlabs}
}

// SaveDay computes the derived fields for one labor's day and upserts the
// record keyed by (labor, site, work date). The labor's daily rate is read
// at save time, not frozen beyond the computed wage.
func (s *Service) SaveDay(ctx context.Context, entry DayEntry) (Record, error) {
	workDate, err := time.Parse("2006-01-02", entry.WorkDate)
	if err != nil {
		return Record{}, ErrInvalidWorkDate
	}

	rate, err := s.store.LaborRate(ctx, entry.LaborID)
	if err != nil {
		return Record{}, err
	}

	value := Value(entry.TimeIn, entry.TimeOut, s.slabs)
	record := Record{
		LaborID:    entry.LaborID,
		SiteID:     entry.SiteID,
		EngineerID: entry.EngineerID,
		WorkDate:   workDate,
		TimeIn:     entry.TimeIn,
		TimeOut:    entry.TimeOut,
		DayStatus:  dayStatusOrDefault(entry.DayStatus, value),
		Value:      value,
		Wages:      Wage(value, rate),
		Week:       WeekLabel(workDate),
		Status:     PaymentPending,
		Remarks:    entry.Remarks,
	}

	id, err := s.store.UpsertDay(ctx, record)
	if err != nil {
		return Record{}, err
	}
	record.ID = id
	return record, nil
}

// SaveBatch attempts every entry and reports per-entry failures. A batch
// with any failed entry returns ErrPartialSave alongside the result; an
// empty batch is a success, not a failure.
func (s *Service) SaveBatch(ctx context.Context, entries []DayEntry) (BatchResult, error) {
	var result BatchResult
	for _, entry := range entries {
		if _, err := s.SaveDay(ctx, entry); err != nil {
			result.Failures = append(result.Failures, BatchFailure{
				LaborID: entry.LaborID,
				Reason:  err.Error(),
			})
			continue
		}
		result.Saved++
	}
	if len(result.Failures) > 0 {
		return result, ErrPartialSave
	}
	return result, nil
}

func (s *Service) List(ctx context.Context, filter Filter) ([]Record, error) {
	return s.store.List(ctx, filter)
}

func (s *Service) WeeklyByLabor(ctx context.Context, filter Filter) ([]WeeklyGroup, error) {
	records, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return SummarizeByLabor(records), nil
}

func (s *Service) WeeklyBySite(ctx context.Context, filter Filter) ([]WeeklyGroup, error) {
	records, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return SummarizeBySite(records), nil
}

func (s *Service) WeeklyByEngineer(ctx context.Context, filter Filter) ([]WeeklyGroup, error) {
	records, err := s.store.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	return SummarizeByEngineer(records), nil
}

func (s *Service) MarkPaid(ctx context.Context, ids []string) error {
	return s.store.MarkPaid(ctx, ids)
}

func (s *Service) Delete(ctx context.Context, ids []string) (int64, error) {
	return s.store.DeleteByIDs(ctx, ids)
}

func dayStatusOrDefault(dayStatus string, value float64) string {
	if dayStatus != "" {
		return dayStatus
	}
	if value > 0 {
		return DayPresent
	}
	return DayAbsent
}
