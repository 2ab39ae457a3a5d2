package web

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/llpg-simpleaddress/internal/address"
	"github.com/llpg-simpleaddress/internal/config"
)

func TestServerRoutes(t *testing.T) {
	cfg := config.Default()
	cfg.Format.Separator = " / "
	server := NewServer(cfg, WithParser(func(string) address.PAFAddress {
		return address.PAFAddress{BuildingName: "ROSE COTTAGE", PostTown: "LEWES"}
	}))
	handler := server.Handler()

	tests := []struct {
		name       string
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{"health", http.MethodGet, "/health", "", http.StatusOK},
		{"compose paf", http.MethodPost, "/api/compose/paf", `{"building_name":"ROSE COTTAGE","post_town":"LEWES"}`, http.StatusOK},
		{"compose text", http.MethodPost, "/api/compose/text", `{"text":"rose cottage lewes"}`, http.StatusOK},
		{"wrong method", http.MethodGet, "/api/compose/paf", "", http.StatusMethodNotAllowed},
		{"llpg without database", http.MethodGet, "/api/llpg/100060000001", "", http.StatusServiceUnavailable},
		{"non numeric uprn", http.MethodGet, "/api/llpg/abc", "", http.StatusNotFound},
		{"preflight", http.MethodOptions, "/api/compose/paf", "", http.StatusNoContent},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if rec.Header().Get("X-Request-ID") == "" {
				t.Error("missing X-Request-ID header")
			}
		})
	}
}

func TestServerUsesConfiguredSeparator(t *testing.T) {
	cfg := config.Default()
	cfg.Format.Separator = " / "
	handler := NewServer(cfg).Handler()

	body := `{"organisation_name":"ACME LTD","department_name":"SALES","post_town":"LEWES"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/compose/paf", strings.NewReader(body)))

	var got struct {
		Lines []string `json:"lines"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&got); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(got.Lines) == 0 || got.Lines[0] != "Acme Ltd / Sales" {
		t.Errorf("lines = %q, want first line %q", got.Lines, "Acme Ltd / Sales")
	}
}

func TestServerAPIKey(t *testing.T) {
	cfg := config.Default()
	cfg.Server.APIKey = "secret"
	handler := NewServer(cfg).Handler()

	body := `{"post_town":"LEWES"}`
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/compose/paf", strings.NewReader(body)))
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status without key = %d, want 401", rec.Code)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/compose/paf", strings.NewReader(body))
	req.Header.Set("X-API-Key", "secret")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Errorf("status with key = %d, want 200", rec.Code)
	}

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	if rec.Code != http.StatusOK {
		t.Errorf("health status = %d, want 200", rec.Code)
	}
}
