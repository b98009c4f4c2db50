package attendance

import (
	"math"
	"strconv"
	"strings"
)

// Slab is a time-of-day interval valued at a fixed rate of day-units per
// hour. Start and End are fractional hours from midnight, End exclusive.
type Slab struct {
	Start float64 `json:"start"`
	End   float64 `json:"end"`
	Rate  float64 `json:"rate"`
}

// DefaultSlabs blend to roughly one day-unit for a standard 09:30-18:30
// shift, with the early and late bands paying a higher hourly rate.
var DefaultSlabs = []Slab{
	{Start: 6.5, End: 9.5, Rate: 0.142},
	{Start: 9.5, End: 18.5, Rate: 0.111},
	{Start: 18.5, End: 24, Rate: 0.142},
}

// ParseClock converts an "HH:MM" 24-hour string to fractional hours.
// Values outside 00:00-24:00 are not range-checked here.
func ParseClock(value string) (float64, bool) {
	parts := strings.Split(strings.TrimSpace(value), ":")
	if len(parts) != 2 {
		return 0, false
	}
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, false
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, false
	}
	return float64(hours) + float64(minutes)/60, true
}

// Value converts a clock-in/clock-out pair into a fractional day value by
// summing each slab's overlap with the worked interval times its rate.
// Missing or unparseable times and non-positive durations yield zero;
// overnight shifts are not supported.
func Value(timeIn, timeOut string, slabs []Slab) float64 {
	in, ok := ParseClock(timeIn)
	if !ok {
		return 0
	}
	out, ok := ParseClock(timeOut)
	if !ok {
		return 0
	}
	if out <= in {
		return 0
	}

	var total float64
	for _, slab := range slabs {
		start := math.Max(in, slab.Start)
		end := math.Min(out, slab.End)
		if end > start {
			total += (end - start) * slab.Rate
		}
	}
	return round3(total)
}

// Wage derives the day's wage from the attendance value and the labor's
// current daily rate.
func Wage(value, dailyRate float64) float64 {
	return round2(value * dailyRate)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}
