package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"

	"contractdesk-backend/handlers"
	"contractdesk-backend/repository"
)

func setupRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(handlers.RequestID())
	handlers.Register(r, repository.NewMemStore())
	return r
}

// helper to perform JSON requests against the router
func performRequest(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		b, _ := json.Marshal(body)
		reader = bytes.NewReader(b)
	}
	req, _ := http.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &out); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
	return out
}

func TestHealth(t *testing.T) {
	r := setupRouter()
	rec := performRequest(r, http.MethodGet, "/health", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("GET /health: status %d", rec.Code)
	}
}

func TestRequestIDHeader(t *testing.T) {
	r := setupRouter()
	rec := performRequest(r, http.MethodGet, "/health", nil)
	if rec.Header().Get("X-Request-ID") == "" {
		t.Error("missing X-Request-ID header")
	}
}

func TestClientCRUDFlow(t *testing.T) {
	r := setupRouter()

	// create; userId is filled with the demo user when absent
	rec := performRequest(r, http.MethodPost, "/api/clients", map[string]any{
		"name":  "Acme Advocacia",
		"phone": "+55 11 99999-0000",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create client: status %d body %s", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)
	if created["userId"] != float64(1) {
		t.Errorf("userId = %v, want 1 (demo user)", created["userId"])
	}
	id := int(created["id"].(float64))

	// list is scoped to the demo user and contains the new client
	rec = performRequest(r, http.MethodGet, "/api/clients", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list clients: status %d", rec.Code)
	}
	var list []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &list); err != nil {
		t.Fatalf("decode list: %v", err)
	}
	if len(list) != 1 {
		t.Fatalf("list length = %d, want 1", len(list))
	}

	// partial update changes only the supplied field
	rec = performRequest(r, http.MethodPut, fmt.Sprintf("/api/clients/%d", id), map[string]any{
		"name": "Acme Advocacia Ltda",
	})
	if rec.Code != http.StatusOK {
		t.Fatalf("update client: status %d", rec.Code)
	}
	updated := decodeBody(t, rec)
	if updated["name"] != "Acme Advocacia Ltda" {
		t.Errorf("name = %v", updated["name"])
	}
	if updated["phone"] != "+55 11 99999-0000" {
		t.Errorf("phone changed by partial update: %v", updated["phone"])
	}

	// delete, then the record is gone
	rec = performRequest(r, http.MethodDelete, fmt.Sprintf("/api/clients/%d", id), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("delete client: status %d", rec.Code)
	}
	if body := decodeBody(t, rec); body["success"] != true {
		t.Errorf("delete body = %v, want success:true", body)
	}
	rec = performRequest(r, http.MethodGet, fmt.Sprintf("/api/clients/%d", id), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("get after delete: status %d, want 404", rec.Code)
	}
	rec = performRequest(r, http.MethodDelete, fmt.Sprintf("/api/clients/%d", id), nil)
	if rec.Code != http.StatusNotFound {
		t.Errorf("second delete: status %d, want 404", rec.Code)
	}
}

func TestCreateClientValidation(t *testing.T) {
	r := setupRouter()
	rec := performRequest(r, http.MethodPost, "/api/clients", map[string]any{})
	if rec.Code != http.StatusBadRequest {
		t.Errorf("create without name: status %d, want 400", rec.Code)
	}
}

func TestInvalidIDParam(t *testing.T) {
	r := setupRouter()
	rec := performRequest(r, http.MethodGet, "/api/projects/abc", nil)
	if rec.Code != http.StatusBadRequest {
		t.Errorf("non-integer ID: status %d, want 400", rec.Code)
	}
}

func TestUserEndpoints(t *testing.T) {
	r := setupRouter()

	rec := performRequest(r, http.MethodPost, "/api/users", map[string]any{
		"username": "maria",
		"email":    "maria@example.com",
		"password": "s3cret",
		"name":     "Maria Silva",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create user: status %d body %s", rec.Code, rec.Body.String())
	}
	created := decodeBody(t, rec)
	if _, ok := created["password"]; ok {
		t.Error("password serialized in response")
	}
	if created["role"] != "user" || created["language"] != "pt" {
		t.Errorf("defaults not applied: role=%v language=%v", created["role"], created["language"])
	}

	// username collision with the seeded admin
	rec = performRequest(r, http.MethodPost, "/api/users", map[string]any{
		"username": "admin",
		"email":    "admin2@example.com",
		"password": "x",
		"name":     "Other Admin",
	})
	if rec.Code != http.StatusConflict {
		t.Errorf("duplicate username: status %d, want 409", rec.Code)
	}
}

func TestDashboardStatsEndpoint(t *testing.T) {
	r := setupRouter()

	rec := performRequest(r, http.MethodPost, "/api/projects", map[string]any{"name": "Case A"})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create project: status %d", rec.Code)
	}
	rec = performRequest(r, http.MethodPost, "/api/time-entries", map[string]any{
		"description": "hearing prep",
		"hours":       "3.5",
		"date":        time.Now().Format(time.RFC3339),
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create time entry: status %d body %s", rec.Code, rec.Body.String())
	}
	rec = performRequest(r, http.MethodPost, "/api/invoices", map[string]any{
		"invoiceNumber": "INV-001",
		"amount":        "100.00",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create invoice: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = performRequest(r, http.MethodGet, "/api/dashboard/stats", nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("stats: status %d", rec.Code)
	}
	stats := decodeBody(t, rec)
	if stats["totalProjects"] != float64(1) || stats["activeProjects"] != float64(1) {
		t.Errorf("project counts = %v/%v, want 1/1", stats["totalProjects"], stats["activeProjects"])
	}
	if stats["totalHours"] != 3.5 {
		t.Errorf("totalHours = %v, want 3.5", stats["totalHours"])
	}
	if stats["totalRevenue"] != 100.0 {
		t.Errorf("totalRevenue = %v, want 100", stats["totalRevenue"])
	}
	if stats["pendingInvoices"] != float64(1) {
		t.Errorf("pendingInvoices = %v, want 1", stats["pendingInvoices"])
	}
}

func TestInvoiceItemsEndpoints(t *testing.T) {
	r := setupRouter()

	rec := performRequest(r, http.MethodPost, "/api/invoices", map[string]any{
		"invoiceNumber": "INV-001",
		"amount":        "250.00",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create invoice: status %d", rec.Code)
	}
	invoiceID := int(decodeBody(t, rec)["id"].(float64))

	rec = performRequest(r, http.MethodPost, "/api/invoice-items", map[string]any{
		"invoiceId":   invoiceID,
		"description": "Contract drafting",
		"quantity":    2,
		"amount":      "125.00",
	})
	if rec.Code != http.StatusCreated {
		t.Fatalf("create item: status %d body %s", rec.Code, rec.Body.String())
	}

	rec = performRequest(r, http.MethodGet, fmt.Sprintf("/api/invoices/%d/items", invoiceID), nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("list items: status %d", rec.Code)
	}
	var items []map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &items); err != nil {
		t.Fatalf("decode items: %v", err)
	}
	if len(items) != 1 || items[0]["description"] != "Contract drafting" {
		t.Errorf("items = %+v", items)
	}
}
