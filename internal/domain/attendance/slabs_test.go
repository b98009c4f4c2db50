package attendance

import "testing"

func TestValueInvalidOrMissingTimes(t *testing.T) {
	cases := []struct {
		name    string
		timeIn  string
		timeOut string
	}{
		{"missing in", "", "18:00"},
		{"missing out", "09:00", ""},
		{"equal times", "09:00", "09:00"},
		{"out before in", "18:00", "09:00"},
		{"garbage in", "morning", "18:00"},
		{"garbage out", "09:00", "6pm"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Value(tc.timeIn, tc.timeOut, DefaultSlabs); got != 0 {
				t.Fatalf("expected 0, got %v", got)
			}
		})
	}
}

func TestValueClipsToSlabBoundaries(t *testing.T) {
	// 09:00-18:00 touches the early slab for half an hour before the
	// standard slab takes over at 09:30.
	got := Value("09:00", "18:00", DefaultSlabs)
	if got != 1.015 {
		t.Fatalf("expected 1.015, got %v", got)
	}
}

func TestValueSpansEarlyAndStandardSlabs(t *testing.T) {
	got := Value("06:30", "18:30", DefaultSlabs)
	if got != 1.425 {
		t.Fatalf("expected 1.425, got %v", got)
	}
}

func TestValueFullDayAcrossAllSlabs(t *testing.T) {
	// 3h early + 9h standard + 5h29m late.
	got := Value("06:30", "23:59", DefaultSlabs)
	if got != 2.204 {
		t.Fatalf("expected 2.204, got %v", got)
	}
}

func TestValueStandardSlabOnly(t *testing.T) {
	got := Value("09:30", "18:30", DefaultSlabs)
	if got != 0.999 {
		t.Fatalf("expected 0.999, got %v", got)
	}
}

func TestValueIsDeterministic(t *testing.T) {
	first := Value("08:15", "20:45", DefaultSlabs)
	second := Value("08:15", "20:45", DefaultSlabs)
	if first != second {
		t.Fatalf("expected identical results, got %v and %v", first, second)
	}
}

func TestWage(t *testing.T) {
	if got := Wage(1.0, 500); got != 500 {
		t.Fatalf("expected 500, got %v", got)
	}
	if got := Wage(0.944, 500); got != 472 {
		t.Fatalf("expected 472, got %v", got)
	}
	if got := Wage(1.2, 0); got != 0 {
		t.Fatalf("expected 0 wage for zero rate, got %v", got)
	}
}

func TestParseClock(t *testing.T) {
	if hours, ok := ParseClock("09:30"); !ok || hours != 9.5 {
		t.Fatalf("expected 9.5, got %v ok=%v", hours, ok)
	}
	if hours, ok := ParseClock("18:45"); !ok || hours != 18.75 {
		t.Fatalf("expected 18.75, got %v ok=%v", hours, ok)
	}
	if _, ok := ParseClock("0930"); ok {
		t.Fatal("expected parse failure for missing colon")
	}
	if _, ok := ParseClock("ab:cd"); ok {
		t.Fatal("expected parse failure for non-numeric parts")
	}
}
