package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"

	"tienda/internal/config"
	"tienda/internal/http/handlers"
	"tienda/internal/repos"
	"tienda/internal/token"
)

const testSecret = "test-secret"

// newTestApp wires the full API in local store mode against a throwaway
// data directory.
func newTestApp(t *testing.T) *fiber.App {
	t.Helper()
	cfg := config.Config{Env: "development", DataDir: t.TempDir(), JWTSecret: testSecret}
	products, users := repos.New(cfg, nil)

	app := fiber.New()
	deps := handlers.NewDeps(products, users, cfg)
	deps.Routes(app)
	return app
}

func doJSON(t *testing.T, app *fiber.App, method, path string, payload any, bearer string) (*http.Response, map[string]any) {
	t.Helper()
	var body *bytes.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("marshal payload: %v", err)
		}
		body = bytes.NewReader(raw)
	} else {
		body = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("%s %s: %v", method, path, err)
	}
	var decoded map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		t.Fatalf("%s %s: decode body: %v", method, path, err)
	}
	return resp, decoded
}

func dataField(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	data, ok := body["data"].(map[string]any)
	if !ok {
		t.Fatalf("response has no data object: %v", body)
	}
	return data
}

func TestRegisterIssuesDecodableToken(t *testing.T) {
	app := newTestApp(t)

	resp, body := doJSON(t, app, "POST", "/api/auth/register",
		map[string]any{"email": "alice@example.com", "password": "secret1", "name": "Alice"}, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%v", resp.StatusCode, body)
	}

	data := dataField(t, body)
	tok, _ := data["token"].(string)
	if tok == "" {
		t.Fatal("no token in register response")
	}
	user, _ := data["user"].(map[string]any)
	if user == nil || user["email"] != "alice@example.com" || user["name"] != "Alice" {
		t.Fatalf("unexpected user payload: %v", data["user"])
	}

	claims, err := token.NewManager(testSecret).Parse(tok)
	if err != nil {
		t.Fatalf("issued token does not verify: %v", err)
	}
	if claims.Email != "alice@example.com" || claims.UserID != user["id"] {
		t.Fatalf("token claims do not match the registered user: %+v", claims)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	app := newTestApp(t)
	creds := map[string]any{"email": "bob@example.com", "password": "secret1", "name": "Bob"}

	resp, _ := doJSON(t, app, "POST", "/api/auth/register", creds, "")
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("first register expected 201, got %d", resp.StatusCode)
	}

	resp, body := doJSON(t, app, "POST", "/api/auth/register", creds, "")
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("duplicate register expected 400, got %d", resp.StatusCode)
	}
	if body["error"] != "user_exists" {
		t.Fatalf("expected user_exists error, got %v", body["error"])
	}
}

func TestRegisterValidation(t *testing.T) {
	app := newTestApp(t)

	cases := []struct {
		name    string
		payload map[string]any
		code    string
	}{
		{"missing name", map[string]any{"email": "a@b.co", "password": "secret1"}, "missing_fields"},
		{"bad email", map[string]any{"email": "not-an-email", "password": "secret1", "name": "A"}, "invalid_email"},
		{"short password", map[string]any{"email": "a@b.co", "password": "12345", "name": "A"}, "invalid_password"},
	}
	for _, tc := range cases {
		resp, body := doJSON(t, app, "POST", "/api/auth/register", tc.payload, "")
		if resp.StatusCode != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %d", tc.name, resp.StatusCode)
		}
		if body["error"] != tc.code {
			t.Fatalf("%s: expected %s, got %v", tc.name, tc.code, body["error"])
		}
	}
}

func TestLogin(t *testing.T) {
	app := newTestApp(t)
	doJSON(t, app, "POST", "/api/auth/register",
		map[string]any{"email": "carol@example.com", "password": "secret1", "name": "Carol"}, "")

	resp, body := doJSON(t, app, "POST", "/api/auth/login",
		map[string]any{"email": "carol@example.com", "password": "secret1"}, "")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("login expected 200, got %d body=%v", resp.StatusCode, body)
	}
	data := dataField(t, body)
	tok, _ := data["token"].(string)
	if tok == "" {
		t.Fatal("no token in login response")
	}
	claims, err := token.NewManager(testSecret).Parse(tok)
	if err != nil || claims.Email != "carol@example.com" {
		t.Fatalf("login token does not verify to the same claims: %v %v", claims, err)
	}

	resp, body = doJSON(t, app, "POST", "/api/auth/login",
		map[string]any{"email": "carol@example.com", "password": "wrongpass"}, "")
	if resp.StatusCode != http.StatusUnauthorized || body["error"] != "invalid_credentials" {
		t.Fatalf("wrong password expected 401 invalid_credentials, got %d %v", resp.StatusCode, body["error"])
	}

	resp, body = doJSON(t, app, "POST", "/api/auth/login",
		map[string]any{"email": "nobody@example.com", "password": "secret1"}, "")
	if resp.StatusCode != http.StatusUnauthorized || body["error"] != "invalid_credentials" {
		t.Fatalf("unknown email expected 401 invalid_credentials, got %d %v", resp.StatusCode, body["error"])
	}
}
