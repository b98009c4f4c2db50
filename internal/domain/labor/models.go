package labor

import "time"

const (
	StatusActive   = "Active"
	StatusInactive = "Inactive"
)

// Labor is a site worker; attendance records reference it by id and read
// DailyRate at valuation time.
type Labor struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Phone      string    `json:"phone,omitempty"`
	SiteID     string    `json:"siteId,omitempty"`
	EngineerID string    `json:"engineerId,omitempty"`
	DailyRate  float64   `json:"dailyRate"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"createdAt"`
}

type Site struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Location  string    `json:"location,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

type Engineer struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
