package attendance

import "errors"

var (
	ErrLaborNotFound    = errors.New("labor not found")
	ErrInvalidWorkDate  = errors.New("work date must be a valid YYYY-MM-DD date")
	ErrPartialSave      = errors.New("some attendance entries failed to save")
	ErrMarkPaidMismatch = errors.New("not all attendance records could be marked paid")
)
