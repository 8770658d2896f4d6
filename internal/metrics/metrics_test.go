package metrics

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestStatusBucket(t *testing.T) {
	tests := []struct {
		code int
		want string
	}{
		{100, "1xx"},
		{200, "2xx"},
		{201, "2xx"},
		{304, "3xx"},
		{400, "4xx"},
		{403, "4xx"},
		{500, "5xx"},
		{503, "5xx"},
	}

	for _, tt := range tests {
		if got := statusBucket(tt.code); got != tt.want {
			t.Errorf("statusBucket(%d) = %s, want %s", tt.code, got, tt.want)
		}
	}
}

func scrape(r *gin.Engine, apiKey string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/metrics", http.NoBody)
	if apiKey != "" {
		req.Header.Set("X-API-Key", apiKey)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandler(t *testing.T) {
	tests := []struct {
		name       string
		configured string
		presented  string
		wantStatus int
	}{
		{"open_when_unconfigured", "", "", http.StatusOK},
		{"valid_key", "scrape-key", "scrape-key", http.StatusOK},
		{"wrong_key", "scrape-key", "nope", http.StatusUnauthorized},
		{"missing_key", "scrape-key", "", http.StatusUnauthorized},
		{"partial_key", "scrape-key", "scrape", http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := gin.New()
			r.GET("/metrics", Handler(tt.configured))

			rec := scrape(r, tt.presented)
			if rec.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rec.Code, tt.wantStatus)
			}
		})
	}
}

func TestHandlerExposesDomainCounters(t *testing.T) {
	r := gin.New()
	r.GET("/metrics", Handler(""))

	AuditWritesTotal.WithLabelValues("SUBMITTED", "failed").Inc()
	DecisionsTotal.WithLabelValues("APPROVED").Inc()

	body := scrape(r, "").Body.String()
	for _, name := range []string{"approvals_audit_writes_total", "approvals_decisions_total"} {
		if !strings.Contains(body, name) {
			t.Errorf("expected metrics output to contain %s", name)
		}
	}
}
