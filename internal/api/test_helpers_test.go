// Filmlerim - Movie Catalog and Social Rating Service
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/filmlerim

package api

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/crypto/bcrypt"

	"github.com/tomtom215/filmlerim/internal/auth"
	"github.com/tomtom215/filmlerim/internal/authz"
	"github.com/tomtom215/filmlerim/internal/config"
	"github.com/tomtom215/filmlerim/internal/database"
	"github.com/tomtom215/filmlerim/internal/logging"
	"github.com/tomtom215/filmlerim/internal/models"
	"github.com/tomtom215/filmlerim/internal/tmdb"
)

const testAdminEmail = "admin@filmlerim.test"

// testDBSemaphore keeps DuckDB CGO work to one test at a time.
var testDBSemaphore = make(chan struct{}, 1)

// testEnv is a fully wired router over an in-memory database.
type testEnv struct {
	db      *database.DB
	cfg     *config.Config
	auth    *auth.Service
	handler *Handler
	server  http.Handler
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Environment: "test", StaticDir: "/nonexistent"},
		API: config.APIConfig{
			PageSize:        12,
			MaxPageSize:     60,
			HomeListSize:    8,
			DefaultTheme:    "light",
			DefaultLanguage: "tr",
		},
		Security: config.SecurityConfig{
			JWTSecret:         "test-secret-that-is-long-enough-for-hs256",
			SessionTimeout:    time.Hour,
			BcryptCost:        bcrypt.MinCost,
			AdminEmail:        testAdminEmail,
			AdminPassword:     "admin-bootstrap-pass",
			RateLimitDisabled: true,
		},
	}
}

// newTestEnv builds the router. tmdbAPI, when set, stands in for TMDB.
func newTestEnv(t *testing.T, tmdbAPI http.Handler) *testEnv {
	t.Helper()

	testDBSemaphore <- struct{}{}
	t.Cleanup(func() { <-testDBSemaphore })

	db, err := database.New(&config.DatabaseConfig{Path: ":memory:", MaxMemory: "1GB", Threads: 1})
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	cfg := testConfig()
	if tmdbAPI != nil {
		srv := httptest.NewServer(tmdbAPI)
		t.Cleanup(srv.Close)
		cfg.TMDB = config.TMDBConfig{
			APIKey:            "test-key",
			BaseURL:           srv.URL + "/3",
			ImageBaseURL:      "https://image.tmdb.org/t/p/w500",
			Language:          "tr-TR",
			Timeout:           5 * time.Second,
			RequestsPerSecond: 1000,
		}
	}

	svc, err := auth.NewService(db, auth.NewMemorySessionStore(), &cfg.Security,
		models.Preferences{Theme: cfg.API.DefaultTheme, Language: cfg.API.DefaultLanguage})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	svc.SetAudit(logging.NewAuthAuditWithLogger(logging.NewTestLogger(io.Discard)))
	authMw := auth.NewMiddleware(svc, false)

	enforcer, err := authz.NewEnforcer(authz.DefaultEnforcerConfig())
	if err != nil {
		t.Fatalf("NewEnforcer() error = %v", err)
	}
	t.Cleanup(enforcer.Close)

	handler := NewHandler(db, cfg, svc, authMw, nil, tmdb.NewClient(cfg.TMDB))
	router := NewRouter(handler, authMw, authz.NewMiddleware(enforcer))

	return &testEnv{
		db:      db,
		cfg:     cfg,
		auth:    svc,
		handler: handler,
		server:  router.SetupChi(),
	}
}

// signup creates an account and returns its bearer token.
func (e *testEnv) signup(t *testing.T, email string) string {
	t.Helper()
	result, err := e.auth.Signup(context.Background(), email, "secret123", "127.0.0.1")
	if err != nil {
		t.Fatalf("Signup(%s) error = %v", email, err)
	}
	return result.Token
}

// do sends a request through the full router. body, when not nil, is
// marshaled to JSON; a string body is sent verbatim.
func (e *testEnv) do(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.RemoteAddr = "192.0.2.1:1234"
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	e.server.ServeHTTP(rec, req)
	return rec
}

// envelope mirrors models.APIResponse with the data left raw.
type envelope struct {
	Status   string           `json:"status"`
	Data     json.RawMessage  `json:"data"`
	Metadata models.Metadata  `json:"metadata"`
	Error    *models.APIError `json:"error"`
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) envelope {
	t.Helper()
	var env envelope
	if err := json.Unmarshal(rec.Body.Bytes(), &env); err != nil {
		t.Fatalf("response is not an envelope: %v\nbody: %s", err, rec.Body.String())
	}
	return env
}

// decodeData unmarshals a success envelope's data into dst.
func decodeData(t *testing.T, rec *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	env := decodeEnvelope(t, rec)
	if env.Status != "success" {
		t.Fatalf("status = %q, error = %+v", env.Status, env.Error)
	}
	if err := json.Unmarshal(env.Data, dst); err != nil {
		t.Fatalf("decode data: %v\nbody: %s", err, rec.Body.String())
	}
}

// expectError checks the HTTP status and error code of an error envelope.
func expectError(t *testing.T, rec *httptest.ResponseRecorder, status int, code string) *models.APIError {
	t.Helper()
	if rec.Code != status {
		t.Fatalf("status = %d, want %d\nbody: %s", rec.Code, status, rec.Body.String())
	}
	env := decodeEnvelope(t, rec)
	if env.Status != "error" || env.Error == nil {
		t.Fatalf("expected error envelope, got %s", rec.Body.String())
	}
	if env.Error.Code != code {
		t.Errorf("error code = %q, want %q", env.Error.Code, code)
	}
	return env.Error
}

// createFilm inserts a catalog film directly.
func (e *testEnv) createFilm(t *testing.T, title string, genres ...string) *models.Film {
	t.Helper()
	film, err := e.db.CreateFilm(context.Background(), &models.FilmInput{
		Title:       title,
		Description: "A film used by the API tests.",
		PosterURL:   "https://example.com/poster.jpg",
		Genres:      genres,
	})
	if err != nil {
		t.Fatalf("CreateFilm(%s) error = %v", title, err)
	}
	return film
}
