package attendance

import (
	"fmt"
	"time"
)

// WeekLabel returns the ISO-8601 payment-week label for a work date,
// formatted as "YYYY-Www". Dates near year boundaries take the ISO year,
// not the calendar year.
func WeekLabel(date time.Time) string {
	year, week := date.ISOWeek()
	return fmt.Sprintf("%d-W%02d", year, week)
}
