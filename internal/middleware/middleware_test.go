package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"approvals/internal/config"
	apperrors "approvals/internal/errors"
	"approvals/internal/models"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type mockVerifier struct {
	VerifyFn func(ctx context.Context, credential string) (*models.Principal, error)
}

func (m *mockVerifier) Verify(ctx context.Context, credential string) (*models.Principal, error) {
	return m.VerifyFn(ctx, credential)
}

func parseBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var result map[string]interface{}
	if err := json.Unmarshal(rec.Body.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse response body: %v", err)
	}
	return result
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	errObj, ok := parseBody(t, rec)["error"].(map[string]interface{})
	if !ok {
		t.Fatalf("expected error object, got %s", rec.Body.String())
	}
	code, _ := errObj["code"].(string)
	return code
}

func TestAuthMiddleware(t *testing.T) {
	user := &models.Principal{ID: "u1", Email: "user@test.com", Role: models.RoleUser}
	verifier := &mockVerifier{
		VerifyFn: func(_ context.Context, credential string) (*models.Principal, error) {
			switch credential {
			case "good":
				return user, nil
			case "store-down":
				return nil, errors.New("connection refused")
			}
			return nil, apperrors.ErrInvalidToken
		},
	}

	router := gin.New()
	router.Use(AuthMiddleware(verifier))
	router.GET("/me", func(c *gin.Context) {
		c.JSON(http.StatusOK, PrincipalFrom(c))
	})

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantCode   string
	}{
		{name: "valid", header: "Bearer good", wantStatus: http.StatusOK},
		{name: "lowercase_scheme", header: "bearer good", wantStatus: http.StatusOK},
		{name: "missing_header", header: "", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "wrong_scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "extra_parts", header: "Bearer a b", wantStatus: http.StatusUnauthorized, wantCode: "UNAUTHORIZED"},
		{name: "invalid_token", header: "Bearer bad", wantStatus: http.StatusUnauthorized, wantCode: "INVALID_TOKEN"},
		{name: "untyped_failure", header: "Bearer store-down", wantStatus: http.StatusUnauthorized, wantCode: "IDENTITY_UNAVAILABLE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/me", http.NoBody)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d: %s", tt.wantStatus, rec.Code, rec.Body.String())
			}
			if tt.wantCode != "" {
				if code := errorCode(t, rec); code != tt.wantCode {
					t.Errorf("expected code %s, got %s", tt.wantCode, code)
				}
				return
			}
			if parseBody(t, rec)["id"] != user.ID {
				t.Errorf("expected principal in context, got %s", rec.Body.String())
			}
		})
	}
}

func TestRequireAdmin(t *testing.T) {
	setup := func(principal *models.Principal) *gin.Engine {
		r := gin.New()
		r.Use(func(c *gin.Context) {
			if principal != nil {
				c.Set(PrincipalKey, principal)
			}
			c.Next()
		})
		r.Use(RequireAdmin())
		r.GET("/admin", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	tests := []struct {
		name       string
		principal  *models.Principal
		wantStatus int
	}{
		{name: "admin", principal: &models.Principal{ID: "a", Role: models.RoleAdmin}, wantStatus: http.StatusOK},
		{name: "user", principal: &models.Principal{ID: "u", Role: models.RoleUser}, wantStatus: http.StatusForbidden},
		{name: "anonymous", principal: nil, wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			setup(tt.principal).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/admin", http.NoBody))
			if rec.Code != tt.wantStatus {
				t.Errorf("expected %d, got %d", tt.wantStatus, rec.Code)
			}
		})
	}
}

func TestErrorHandler(t *testing.T) {
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/app", func(c *gin.Context) {
		_ = c.Error(apperrors.Wrap(apperrors.ErrStoreUnavailable, errors.New("dial tcp")))
	})
	router.GET("/plain", func(c *gin.Context) {
		_ = c.Error(errors.New("boom"))
	})
	router.GET("/written", func(c *gin.Context) {
		c.JSON(http.StatusTeapot, gin.H{"ok": true})
		_ = c.Error(errors.New("late"))
	})

	t.Run("app_error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/app", http.NoBody))
		if rec.Code != http.StatusServiceUnavailable {
			t.Errorf("expected 503, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "STORE_UNAVAILABLE" {
			t.Errorf("expected STORE_UNAVAILABLE, got %s", code)
		}
	})

	t.Run("unexpected_error", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/plain", http.NoBody))
		if rec.Code != http.StatusInternalServerError {
			t.Errorf("expected 500, got %d", rec.Code)
		}
		if code := errorCode(t, rec); code != "INTERNAL_ERROR" {
			t.Errorf("expected INTERNAL_ERROR, got %s", code)
		}
	})

	t.Run("response_already_written", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/written", http.NoBody))
		if rec.Code != http.StatusTeapot {
			t.Errorf("expected handler status to stand, got %d", rec.Code)
		}
	})
}

func TestCORS(t *testing.T) {
	setup := func(origins ...string) *gin.Engine {
		r := gin.New()
		r.Use(CORS(&config.Config{AllowedOrigins: origins}))
		r.GET("/requests", func(c *gin.Context) {
			c.Status(http.StatusOK)
		})
		return r
	}

	t.Run("allowed_origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/requests", http.NoBody)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		setup("http://localhost:5173").ServeHTTP(rec, req)

		if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
			t.Errorf("expected origin echoed, got %q", got)
		}
		if rec.Header().Get("Access-Control-Allow-Credentials") != "true" {
			t.Error("expected credentials for explicit origin")
		}
	})

	t.Run("unknown_origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/requests", http.NoBody)
		req.Header.Set("Origin", "http://evil.test")
		rec := httptest.NewRecorder()
		setup("http://localhost:5173").ServeHTTP(rec, req)

		if rec.Header().Get("Access-Control-Allow-Origin") != "" {
			t.Error("expected no CORS headers for unknown origin")
		}
	})

	t.Run("wildcard_without_credentials", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/requests", http.NoBody)
		req.Header.Set("Origin", "http://anything.test")
		rec := httptest.NewRecorder()
		setup("*").ServeHTTP(rec, req)

		if rec.Header().Get("Access-Control-Allow-Origin") != "http://anything.test" {
			t.Error("expected wildcard to allow the origin")
		}
		if rec.Header().Get("Access-Control-Allow-Credentials") != "" {
			t.Error("expected no credentials with wildcard")
		}
	})

	t.Run("preflight", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/requests", http.NoBody)
		req.Header.Set("Origin", "http://localhost:5173")
		rec := httptest.NewRecorder()
		setup("http://localhost:5173").ServeHTTP(rec, req)

		if rec.Code != http.StatusNoContent {
			t.Errorf("expected 204, got %d", rec.Code)
		}
	})
}

func TestRequestLogging(t *testing.T) {
	router := gin.New()
	router.Use(RequestLogging())
	router.GET("/ping", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("generates_id", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ping", http.NoBody))
		if rec.Header().Get("X-Request-ID") == "" {
			t.Error("expected X-Request-ID header")
		}
	})

	t.Run("reuses_incoming_id", func(t *testing.T) {
		id := "0190f5a4-0000-7000-8000-000000000123"
		req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
		req.Header.Set("X-Request-ID", id)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Header().Get("X-Request-ID") != id {
			t.Errorf("expected %s, got %s", id, rec.Header().Get("X-Request-ID"))
		}
	})

	t.Run("replaces_malformed_id", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/ping", http.NoBody)
		req.Header.Set("X-Request-ID", "<script>")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		if rec.Header().Get("X-Request-ID") == "<script>" {
			t.Error("expected malformed id to be replaced")
		}
	})
}
