package attendance

import "sort"

// WeeklyGroup is one grouping bucket in a weekly wage summary. Status is
// Paid only when every record in the bucket is paid; a single pending
// record keeps the whole bucket pending.
type WeeklyGroup struct {
	Week        string   `json:"week"`
	Key         string   `json:"key"`
	KeyID       string   `json:"keyId,omitempty"`
	TotalWages  float64  `json:"totalWages"`
	DaysPresent float64  `json:"daysPresent"`
	Status      string   `json:"paymentStatus"`
	RecordIDs   []string `json:"recordIds"`
}

// SummarizeByLabor groups records by (ISO week, labor), summing wages and
// categorical day counts.
func SummarizeByLabor(records []Record) []WeeklyGroup {
	return summarize(records, func(r Record) (string, string) {
		return r.LaborID, r.LaborName
	})
}

// SummarizeBySite groups by (ISO week, site name); records without a site
// fall into "Unassigned Site".
func SummarizeBySite(records []Record) []WeeklyGroup {
	return summarize(records, func(r Record) (string, string) {
		if r.SiteName == "" {
			return "", "Unassigned Site"
		}
		return r.SiteID, r.SiteName
	})
}

// SummarizeByEngineer groups by (ISO week, engineer name); records without
// an engineer fall into "Unassigned Engineer".
func SummarizeByEngineer(records []Record) []WeeklyGroup {
	return summarize(records, func(r Record) (string, string) {
		if r.EngineerName == "" {
			return "", "Unassigned Engineer"
		}
		return r.EngineerID, r.EngineerName
	})
}

func summarize(records []Record, keyFn func(Record) (string, string)) []WeeklyGroup {
	type bucketKey struct {
		week string
		id   string
		name string
	}

	buckets := map[bucketKey]*WeeklyGroup{}
	var order []bucketKey

	for _, record := range records {
		id, name := keyFn(record)
		key := bucketKey{week: record.Week, id: id, name: name}
		group, ok := buckets[key]
		if !ok {
			group = &WeeklyGroup{
				Week:   record.Week,
				Key:    name,
				KeyID:  id,
				Status: PaymentPaid,
			}
			buckets[key] = group
			order = append(order, key)
		}
		group.TotalWages += record.Wages
		group.DaysPresent += dayCount(record.DayStatus)
		group.RecordIDs = append(group.RecordIDs, record.ID)
		if record.Status != PaymentPaid {
			group.Status = PaymentPending
		}
	}

	out := make([]WeeklyGroup, 0, len(order))
	for _, key := range order {
		out = append(out, *buckets[key])
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Week == out[j].Week {
			return out[i].Key < out[j].Key
		}
		return out[i].Week < out[j].Week
	})
	return out
}

func dayCount(dayStatus string) float64 {
	switch dayStatus {
	case DayAbsent:
		return 0
	case DayHalf:
		return 0.5
	default:
		return 1
	}
}
