package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"laborpay/internal/app/server"
	"laborpay/internal/platform/config"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   json.RawMessage `json:"error"`
}

func newTestApp(t *testing.T) (*httptest.Server, func()) {
	t.Helper()

	dbURL := os.Getenv("TEST_DATABASE_URL")
	if dbURL == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}

	cfg := config.Config{
		DatabaseURL:       dbURL,
		JWTSecret:         "test-secret",
		TokenTTL:          time.Hour,
		Environment:       "test",
		SeedAdminEmail:    "admin@test.local",
		SeedAdminPassword: "ChangeMe123!",
		RunMigrations:     true,
		RunSeed:           true,
		MigrationsDir:     "../../../../migrations",
		PayslipDir:        t.TempDir(),
		MaxBodyBytes:      1048576,
	}

	app, err := server.New(context.Background(), cfg)
	if err != nil {
		t.Fatalf("failed to start app: %v", err)
	}

	ts := httptest.NewServer(app.Router)
	return ts, func() {
		ts.Close()
		app.Close()
	}
}

func request(t *testing.T, method, url, token string, body any) (int, envelope) {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}

	req, err := http.NewRequest(method, url, &buf)
	if err != nil {
		t.Fatalf("build request: %v", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, url, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		t.Fatalf("%s %s: decode envelope: %v", method, url, err)
	}
	return resp.StatusCode, env
}

func login(t *testing.T, baseURL string) string {
	t.Helper()

	status, env := request(t, http.MethodPost, baseURL+"/api/v1/auth/login", "", map[string]string{
		"email":    "admin@test.local",
		"password": "ChangeMe123!",
	})
	if status != http.StatusOK {
		t.Fatalf("login failed with status %d: %s", status, env.Error)
	}

	var data struct {
		Token string `json:"token"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.Token == "" {
		t.Fatalf("no token in login response: %s", env.Data)
	}
	return data.Token
}

func createID(t *testing.T, baseURL, token, path string, body any) string {
	t.Helper()

	status, env := request(t, http.MethodPost, baseURL+path, token, body)
	if status != http.StatusCreated {
		t.Fatalf("POST %s failed with status %d: %s", path, status, env.Error)
	}
	var data struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &data); err != nil || data.ID == "" {
		t.Fatalf("POST %s returned no id: %s", path, env.Data)
	}
	return data.ID
}

func TestAttendanceAndPayrollJourney(t *testing.T) {
	ts, teardown := newTestApp(t)
	defer teardown()

	token := login(t, ts.URL)

	siteID := createID(t, ts.URL, token, "/api/v1/sites", map[string]string{"name": "East Yard"})
	engineerID := createID(t, ts.URL, token, "/api/v1/engineers", map[string]string{"name": "Meena"})
	laborID := createID(t, ts.URL, token, "/api/v1/labors", map[string]string{
		"name":       "Ravi",
		"siteId":     siteID,
		"engineerId": engineerID,
		"dailyRate":  "500",
	})

	// Save a standard-shift day and verify the derived fields.
	status, env := request(t, http.MethodPost, ts.URL+"/api/v1/attendance", token, map[string]string{
		"laborId":  laborID,
		"siteId":   siteID,
		"workDate": "2025-03-06",
		"timeIn":   "09:30",
		"timeOut":  "18:30",
	})
	if status != http.StatusCreated {
		t.Fatalf("save attendance failed with status %d: %s", status, env.Error)
	}

	var record struct {
		ID    string  `json:"id"`
		Value float64 `json:"attendanceValue"`
		Wages float64 `json:"wagesAmount"`
		Week  string  `json:"paymentWeek"`
	}
	if err := json.Unmarshal(env.Data, &record); err != nil {
		t.Fatalf("decode attendance record: %v", err)
	}
	if record.Value != 0.999 {
		t.Fatalf("expected attendance value 0.999, got %v", record.Value)
	}
	if record.Wages != 499.5 {
		t.Fatalf("expected wages 499.50, got %v", record.Wages)
	}
	if record.Week != "2025-W10" {
		t.Fatalf("expected payment week 2025-W10, got %s", record.Week)
	}

	// Re-saving the same day must update in place, not duplicate.
	status, env = request(t, http.MethodPost, ts.URL+"/api/v1/attendance", token, map[string]string{
		"laborId":  laborID,
		"siteId":   siteID,
		"workDate": "2025-03-06",
		"timeIn":   "09:00",
		"timeOut":  "18:00",
	})
	if status != http.StatusCreated {
		t.Fatalf("re-save attendance failed with status %d: %s", status, env.Error)
	}
	var resaved struct {
		ID    string  `json:"id"`
		Value float64 `json:"attendanceValue"`
	}
	if err := json.Unmarshal(env.Data, &resaved); err != nil {
		t.Fatalf("decode re-saved record: %v", err)
	}
	if resaved.ID != record.ID {
		t.Fatalf("expected upsert to keep id %s, got %s", record.ID, resaved.ID)
	}
	if resaved.Value != 1.015 {
		t.Fatalf("expected attendance value 1.015, got %v", resaved.Value)
	}

	// A batch with one unknown labor reports partial failure.
	status, env = request(t, http.MethodPost, ts.URL+"/api/v1/attendance/batch", token, map[string]any{
		"entries": []map[string]string{
			{"laborId": laborID, "siteId": siteID, "workDate": "2025-03-07", "timeIn": "09:30", "timeOut": "18:30"},
			{"laborId": "00000000-0000-0000-0000-000000000000", "siteId": siteID, "workDate": "2025-03-07", "timeIn": "09:30", "timeOut": "18:30"},
		},
	})
	if status != http.StatusMultiStatus {
		t.Fatalf("expected 207 for partial batch, got %d: %s", status, env.Error)
	}
	var batch struct {
		Saved    int `json:"saved"`
		Failures []struct {
			LaborID string `json:"laborId"`
		} `json:"failures"`
	}
	if err := json.Unmarshal(env.Data, &batch); err != nil {
		t.Fatalf("decode batch result: %v", err)
	}
	if batch.Saved != 1 || len(batch.Failures) != 1 {
		t.Fatalf("expected 1 saved and 1 failure, got %+v", batch)
	}

	// Weekly summary groups the labor's two days.
	status, env = request(t, http.MethodGet, ts.URL+"/api/v1/attendance/summary/labor?week=2025-W10", token, nil)
	if status != http.StatusOK {
		t.Fatalf("summary failed with status %d: %s", status, env.Error)
	}
	type summaryGroup struct {
		Key        string   `json:"key"`
		KeyID      string   `json:"keyId"`
		TotalWages float64  `json:"totalWages"`
		Status     string   `json:"paymentStatus"`
		RecordIDs  []string `json:"recordIds"`
	}
	findGroup := func(groups []summaryGroup) summaryGroup {
		for _, group := range groups {
			if group.KeyID == laborID {
				return group
			}
		}
		t.Fatalf("no summary group for labor %s: %+v", laborID, groups)
		return summaryGroup{}
	}

	var groups []summaryGroup
	if err := json.Unmarshal(env.Data, &groups); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	group := findGroup(groups)
	if group.Key != "Ravi" {
		t.Fatalf("expected Ravi group, got %+v", group)
	}
	if group.Status != "Pending" {
		t.Fatalf("expected pending group, got %s", group.Status)
	}

	// Mark the whole group paid.
	status, env = request(t, http.MethodPost, ts.URL+"/api/v1/attendance/mark-paid", token, map[string]any{
		"ids": group.RecordIDs,
	})
	if status != http.StatusOK {
		t.Fatalf("mark paid failed with status %d: %s", status, env.Error)
	}

	status, env = request(t, http.MethodGet, ts.URL+"/api/v1/attendance/summary/labor?week=2025-W10", token, nil)
	if status != http.StatusOK {
		t.Fatalf("summary failed with status %d: %s", status, env.Error)
	}
	if err := json.Unmarshal(env.Data, &groups); err != nil {
		t.Fatalf("decode summary: %v", err)
	}
	if group = findGroup(groups); group.Status != "Paid" {
		t.Fatalf("expected paid group after mark-paid, got %s", group.Status)
	}

	// Payroll: generate, regenerate, verify single-row and master overwrite.
	employeeID := createID(t, ts.URL, token, "/api/v1/employees", map[string]string{
		"name":        "Asha",
		"basicSalary": "25000",
	})

	payload := map[string]string{
		"employeeId":  employeeID,
		"payPeriod":   "2025-03",
		"workingDays": "30",
		"lopDays":     "2",
		"basicDA":     "30000",
		"hra":         "5000",
		"conveyance":  "1000",
		"pf":          "1800",
		"esi":         "200",
	}
	status, env = request(t, http.MethodPost, ts.URL+"/api/v1/payroll/generate", token, payload)
	if status != http.StatusCreated {
		t.Fatalf("generate payroll failed with status %d: %s", status, env.Error)
	}
	var payslip struct {
		ID              string  `json:"id"`
		PerDayWage      float64 `json:"perDayWage"`
		LOPAmount       float64 `json:"lopAmount"`
		GrossSalary     float64 `json:"grossSalary"`
		TotalDeductions float64 `json:"totalDeductions"`
		NetPay          float64 `json:"netPay"`
	}
	if err := json.Unmarshal(env.Data, &payslip); err != nil {
		t.Fatalf("decode payslip: %v", err)
	}
	if payslip.PerDayWage != 1000 || payslip.LOPAmount != 2000 {
		t.Fatalf("unexpected LOP math: %+v", payslip)
	}
	if payslip.GrossSalary != 36000 || payslip.TotalDeductions != 4000 || payslip.NetPay != 32000 {
		t.Fatalf("unexpected totals: %+v", payslip)
	}

	payload["payPeriod"] = "2025-04"
	status, env = request(t, http.MethodPost, ts.URL+"/api/v1/payroll/generate", token, payload)
	if status != http.StatusCreated {
		t.Fatalf("regenerate payroll failed with status %d: %s", status, env.Error)
	}
	var second struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(env.Data, &second); err != nil {
		t.Fatalf("decode second payslip: %v", err)
	}
	if second.ID != payslip.ID {
		t.Fatalf("expected single payroll row per employee, got %s then %s", payslip.ID, second.ID)
	}

	// The submitted components became the employee master values.
	status, env = request(t, http.MethodGet, fmt.Sprintf("%s/api/v1/employees/%s", ts.URL, employeeID), token, nil)
	if status != http.StatusOK {
		t.Fatalf("get employee failed with status %d: %s", status, env.Error)
	}
	var master struct {
		BasicSalary float64 `json:"basicSalary"`
		HRA         float64 `json:"hra"`
	}
	if err := json.Unmarshal(env.Data, &master); err != nil {
		t.Fatalf("decode employee: %v", err)
	}
	if master.BasicSalary != 30000 || master.HRA != 5000 {
		t.Fatalf("expected master overwrite to 30000/5000, got %+v", master)
	}
}

func TestPayrollRejectsZeroWorkingDays(t *testing.T) {
	ts, teardown := newTestApp(t)
	defer teardown()

	token := login(t, ts.URL)
	employeeID := createID(t, ts.URL, token, "/api/v1/employees", map[string]string{"name": "Zero Days"})

	status, _ := request(t, http.MethodPost, ts.URL+"/api/v1/payroll/generate", token, map[string]string{
		"employeeId":  employeeID,
		"payPeriod":   "2025-03",
		"workingDays": "0",
		"basicDA":     "30000",
	})
	if status != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero working days, got %d", status)
	}
}

func TestUnauthenticatedRequestsRejected(t *testing.T) {
	ts, teardown := newTestApp(t)
	defer teardown()

	status, _ := request(t, http.MethodGet, ts.URL+"/api/v1/labors", "", nil)
	if status != http.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", status)
	}
}
