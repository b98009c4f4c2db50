package attendance

import "time"

const (
	PaymentPending = "Pending"
	PaymentPaid    = "Paid"

	DayPresent = "Present"
	DayHalf    = "Half Day"
	DayAbsent  = "Absent"
)

// Record is one labor's attendance for one site on one day. Value is the
// slab-derived fraction of a day; DayStatus is the separate categorical
// status used only for day counting in weekly summaries.
type Record struct {
	ID           string    `json:"id"`
	LaborID      string    `json:"laborId"`
	LaborName    string    `json:"laborName,omitempty"`
	SiteID       string    `json:"siteId"`
	SiteName     string    `json:"siteName,omitempty"`
	EngineerID   string    `json:"engineerId,omitempty"`
	EngineerName string    `json:"engineerName,omitempty"`
	WorkDate     time.Time `json:"workDate"`
	TimeIn       string    `json:"timeIn"`
	TimeOut      string    `json:"timeOut"`
	DayStatus    string    `json:"dayStatus"`
	Value        float64   `json:"attendanceValue"`
	Wages        float64   `json:"wagesAmount"`
	Week         string    `json:"paymentWeek"`
	Status       string    `json:"paymentStatus"`
	Remarks      string    `json:"remarks,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// DayEntry is the raw per-labor input for saving a day's attendance.
type DayEntry struct {
	LaborID    string `json:"laborId"`
	SiteID     string `json:"siteId"`
	EngineerID string `json:"engineerId,omitempty"`
	WorkDate   string `json:"workDate"`
	TimeIn     string `json:"timeIn"`
	TimeOut    string `json:"timeOut"`
	DayStatus  string `json:"dayStatus"`
	Remarks    string `json:"remarks,omitempty"`
}

type BatchFailure struct {
	LaborID string `json:"laborId"`
	Reason  string `json:"reason"`
}

type BatchResult struct {
	Saved    int            `json:"saved"`
	Failures []BatchFailure `json:"failures,omitempty"`
}

// Filter narrows record listings. Zero values match everything.
type Filter struct {
	Week    string
	LaborID string
	SiteID  string
	Status  string
	From    time.Time
	To      time.Time
}
