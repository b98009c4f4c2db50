package shared

import "testing"

func TestParseDate(t *testing.T) {
	parsed, err := ParseDate("2025-03-06")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Format("2006-01-02") != "2025-03-06" {
		t.Fatalf("unexpected date: %v", parsed)
	}

	if _, err := ParseDate("06/03/2025"); err == nil {
		t.Fatal("expected error for unsupported format")
	}
}

func TestParseMonth(t *testing.T) {
	parsed, err := ParseMonth("2025-03")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if parsed.Year() != 2025 || int(parsed.Month()) != 3 {
		t.Fatalf("unexpected month: %v", parsed)
	}

	if _, err := ParseMonth("2025-3"); err == nil {
		t.Fatal("expected error for unpadded month")
	}
	if _, err := ParseMonth("March 2025"); err == nil {
		t.Fatal("expected error for free-text month")
	}
}
