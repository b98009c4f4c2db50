package attendance

import "testing"

func TestSummarizeByLaborSumsWagesAndDays(t *testing.T) {
	records := []Record{
		{ID: "a1", LaborID: "l1", LaborName: "Ravi", Week: "2025-W10", Wages: 500, DayStatus: DayPresent, Status: PaymentPaid},
		{ID: "a2", LaborID: "l1", LaborName: "Ravi", Week: "2025-W10", Wages: 700, DayStatus: DayHalf, Status: PaymentPending},
		{ID: "a3", LaborID: "l2", LaborName: "Suresh", Week: "2025-W10", Wages: 300, DayStatus: DayAbsent, Status: PaymentPaid},
	}

	groups := SummarizeByLabor(records)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}

	ravi := groups[0]
	if ravi.Key != "Ravi" {
		t.Fatalf("expected Ravi first, got %s", ravi.Key)
	}
	if ravi.TotalWages != 1200 {
		t.Fatalf("expected total wages 1200, got %v", ravi.TotalWages)
	}
	if ravi.DaysPresent != 1.5 {
		t.Fatalf("expected 1.5 days present, got %v", ravi.DaysPresent)
	}
	if ravi.Status != PaymentPending {
		t.Fatalf("one pending record must keep the group pending, got %s", ravi.Status)
	}
	if len(ravi.RecordIDs) != 2 {
		t.Fatalf("expected 2 record ids, got %v", ravi.RecordIDs)
	}

	suresh := groups[1]
	if suresh.DaysPresent != 0 {
		t.Fatalf("absent day must count 0, got %v", suresh.DaysPresent)
	}
	if suresh.Status != PaymentPaid {
		t.Fatalf("all-paid group must be paid, got %s", suresh.Status)
	}
}

func TestSummarizeSplitsWeeks(t *testing.T) {
	records := []Record{
		{ID: "a1", LaborID: "l1", LaborName: "Ravi", Week: "2025-W10", Wages: 500, DayStatus: DayPresent},
		{ID: "a2", LaborID: "l1", LaborName: "Ravi", Week: "2025-W11", Wages: 700, DayStatus: DayPresent},
	}

	groups := SummarizeByLabor(records)
	if len(groups) != 2 {
		t.Fatalf("expected per-week groups, got %d", len(groups))
	}
	if groups[0].Week != "2025-W10" || groups[1].Week != "2025-W11" {
		t.Fatalf("expected week-ordered groups, got %s then %s", groups[0].Week, groups[1].Week)
	}
}

func TestSummarizeBySiteDefaultsUnassigned(t *testing.T) {
	records := []Record{
		{ID: "a1", SiteID: "s1", SiteName: "East Yard", Week: "2025-W10", Wages: 400, DayStatus: DayPresent},
		{ID: "a2", SiteID: "", SiteName: "", Week: "2025-W10", Wages: 250, DayStatus: DayPresent},
	}

	groups := SummarizeBySite(records)
	if len(groups) != 2 {
		t.Fatalf("expected 2 groups, got %d", len(groups))
	}
	if groups[1].Key != "Unassigned Site" {
		t.Fatalf("expected Unassigned Site bucket, got %s", groups[1].Key)
	}
	if groups[1].TotalWages != 250 {
		t.Fatalf("expected 250 in unassigned bucket, got %v", groups[1].TotalWages)
	}
}

func TestSummarizeByEngineerDefaultsUnassigned(t *testing.T) {
	records := []Record{
		{ID: "a1", EngineerID: "", EngineerName: "", Week: "2025-W10", Wages: 100, DayStatus: DayPresent},
	}

	groups := SummarizeByEngineer(records)
	if len(groups) != 1 || groups[0].Key != "Unassigned Engineer" {
		t.Fatalf("expected Unassigned Engineer bucket, got %+v", groups)
	}
}
