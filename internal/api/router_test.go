package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/transitpulse/transit-api/internal/core/domain"
	"github.com/transitpulse/transit-api/internal/core/token"
	"github.com/transitpulse/transit-api/internal/infrastructure/config"
	"github.com/transitpulse/transit-api/internal/infrastructure/db/memory"
)

var (
	routerOnce sync.Once
	testRouter *echo.Echo
)

// The router registers its Prometheus collectors with the default registry,
// which tolerates only one registration per process, so the test router is
// built once and shared across the package.
func newTestRouter(t *testing.T) *echo.Echo {
	t.Helper()
	routerOnce.Do(func() {
		store := memory.NewCredentialStore()
		if err := memory.SeedDefaults(context.Background(), store); err != nil {
			t.Fatalf("seed: %v", err)
		}
		cfg := &config.Config{
			Port:      "0",
			Env:       "test",
			JWTSecret: "test-secret",
			TokenTTL:  time.Hour,
		}
		testRouter = NewRouter(store, nil, cfg, zerolog.Nop())
	})
	return testRouter
}

func do(e *echo.Echo, method, path, body, bearer string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(method, path, nil)
	}
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, e *echo.Echo, username, password string) (token, role string) {
	t.Helper()
	rec := do(e, http.MethodPost, "/api/login", `{"username":"`+username+`","password":"`+password+`"}`, "")
	if rec.Code != http.StatusOK {
		t.Fatalf("login %s: expected 200, got %d (%s)", username, rec.Code, rec.Body.String())
	}
	var resp struct {
		AccessToken string `json:"access_token"`
		Role        string `json:"role"`
		Username    string `json:"username"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("login response: %v", err)
	}
	if resp.Username != username {
		t.Fatalf("expected username %s, got %s", username, resp.Username)
	}
	return resp.AccessToken, resp.Role
}

// Seeded account for each role can log in and gets a token bound to its role.
func TestRouter_LoginAllSeedAccounts(t *testing.T) {
	e := newTestRouter(t)

	for username, want := range map[string]string{
		"passenger1": domain.RolePassenger,
		"driver1":    domain.RoleDriver,
		"authority1": domain.RoleAuthority,
		"admin1":     domain.RoleAdmin,
	} {
		passwords := map[string]string{
			"passenger1": "pass123",
			"driver1":    "driver123",
			"authority1": "auth123",
			"admin1":     "admin123",
		}
		tok, role := login(t, e, username, passwords[username])
		if role != want {
			t.Fatalf("%s: expected role %s, got %s", username, want, role)
		}
		if tok == "" {
			t.Fatalf("%s: empty token", username)
		}
	}
}

func TestRouter_LoginBadCredentials(t *testing.T) {
	e := newTestRouter(t)

	wrongPass := do(e, http.MethodPost, "/api/login", `{"username":"driver1","password":"nope"}`, "")
	noUser := do(e, http.MethodPost, "/api/login", `{"username":"ghost","password":"nope"}`, "")

	if wrongPass.Code != http.StatusUnauthorized || noUser.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401/401, got %d/%d", wrongPass.Code, noUser.Code)
	}
	if wrongPass.Body.String() != noUser.Body.String() {
		t.Fatalf("bodies differ: %q vs %q", wrongPass.Body.String(), noUser.Body.String())
	}
}

// End to end: driver token on an admin route is forbidden, no token is
// unauthenticated, duplicate add-user is a 400.
func TestRouter_RoleGateScenario(t *testing.T) {
	e := newTestRouter(t)

	driverTok, role := login(t, e, "driver1", "driver123")
	if role != domain.RoleDriver {
		t.Fatalf("expected driver role, got %s", role)
	}

	if rec := do(e, http.MethodGet, "/api/admin/users", "", driverTok); rec.Code != http.StatusForbidden {
		t.Fatalf("driver on admin route: expected 403, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/api/admin/users", "", ""); rec.Code != http.StatusUnauthorized {
		t.Fatalf("no token: expected 401, got %d", rec.Code)
	}

	adminTok, _ := login(t, e, "admin1", "admin123")
	rec := do(e, http.MethodPost, "/api/admin/add-user", `{"username":"passenger1","password":"newpass","role":"passenger"}`, adminTok)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("duplicate add-user: expected 400, got %d", rec.Code)
	}
}

// Exact-match gates in the other direction: admin does not pass driver or
// authority gates.
func TestRouter_NoRoleHierarchy(t *testing.T) {
	e := newTestRouter(t)
	adminTok, _ := login(t, e, "admin1", "admin123")

	for _, path := range []string{"/api/driver/route-info", "/api/authority/analytics", "/api/monitor"} {
		if rec := do(e, http.MethodGet, path, "", adminTok); rec.Code != http.StatusForbidden {
			t.Fatalf("admin on %s: expected 403, got %d", path, rec.Code)
		}
	}
}

func TestRouter_AddUserThenLogin(t *testing.T) {
	e := newTestRouter(t)
	adminTok, _ := login(t, e, "admin1", "admin123")

	rec := do(e, http.MethodPost, "/api/admin/add-user", `{"username":"driver2","password":"driver456","role":"driver"}`, adminTok)
	if rec.Code != http.StatusOK {
		t.Fatalf("add-user: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}

	tok, role := login(t, e, "driver2", "driver456")
	if role != domain.RoleDriver {
		t.Fatalf("expected driver role, got %s", role)
	}
	if rec := do(e, http.MethodGet, "/api/driver/route-info", "", tok); rec.Code != http.StatusOK {
		t.Fatalf("new driver on driver route: expected 200, got %d", rec.Code)
	}
}

func TestRouter_SharedRoutesOpenToAllRoles(t *testing.T) {
	e := newTestRouter(t)
	passTok, _ := login(t, e, "passenger1", "pass123")
	driverTok, _ := login(t, e, "driver1", "driver123")

	for _, tok := range []string{passTok, driverTok} {
		for _, path := range []string{"/api/buses", "/api/alerts", "/api/profile", "/api/chat/R102"} {
			if rec := do(e, http.MethodGet, path, "", tok); rec.Code != http.StatusOK {
				t.Fatalf("GET %s: expected 200, got %d", path, rec.Code)
			}
		}
	}

	if rec := do(e, http.MethodPost, "/api/sos", `{"location":"IT Park"}`, passTok); rec.Code != http.StatusOK {
		t.Fatalf("sos: expected 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodPost, "/api/logout", "", driverTok); rec.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d", rec.Code)
	}
}

func TestRouter_ExpiredTokenRejected(t *testing.T) {
	e := newTestRouter(t)

	expired, err := token.NewCodec("test-secret").Issue(domain.IdentityClaim{Username: "admin1", Role: domain.RoleAdmin}, -time.Minute)
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	if rec := do(e, http.MethodGet, "/api/admin/users", "", expired); rec.Code != http.StatusUnauthorized {
		t.Fatalf("expired token: expected 401, got %d", rec.Code)
	}
}

func TestRouter_HealthAndMetricsOpen(t *testing.T) {
	e := newTestRouter(t)

	if rec := do(e, http.MethodGet, "/health", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("health: expected 200, got %d", rec.Code)
	}
	if rec := do(e, http.MethodGet, "/health/ready", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("ready without redis: expected 200, got %d (%s)", rec.Code, rec.Body.String())
	}
	if rec := do(e, http.MethodGet, "/metrics", "", ""); rec.Code != http.StatusOK {
		t.Fatalf("metrics: expected 200, got %d", rec.Code)
	}
}

// Requests are handled in parallel; concurrent logins and gated reads must
// not interfere.
func TestRouter_ConcurrentRequests(t *testing.T) {
	e := newTestRouter(t)
	driverTok, _ := login(t, e, "driver1", "driver123")

	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			if rec := do(e, http.MethodGet, "/api/buses", "", driverTok); rec.Code != http.StatusOK {
				t.Errorf("buses: expected 200, got %d", rec.Code)
			}
		}()
		go func() {
			defer wg.Done()
			rec := do(e, http.MethodPost, "/api/login", `{"username":"passenger1","password":"pass123"}`, "")
			if rec.Code != http.StatusOK {
				t.Errorf("login: expected 200, got %d", rec.Code)
			}
		}()
	}
	wg.Wait()
}
