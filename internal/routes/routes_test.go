package routes

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"jtaclogs/internal/auth"
	"jtaclogs/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		Port:                "8082",
		Environment:         "test",
		JWTSecret:           "dev",
		JWTExpiresInSeconds: 3600,
		ResetLinkBaseURL:    "http://localhost:3000",
	}
}

func TestRootEndpoint(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	router := SetupRoutes(db, testConfig(), &config.S3Config{})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", w.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["message"] == nil {
		t.Fatalf("expected a message, got %v", resp)
	}
}

func TestHealthEndpoint(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing()

	router := SetupRoutes(db, testConfig(), &config.S3Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp struct {
		Status string `json:"status"`
		DB     struct {
			Status string `json:"status"`
		} `json:"db"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp.Status != "ok" || resp.DB.Status != "ok" {
		t.Fatalf("unexpected health payload: %s", w.Body.String())
	}
}

func TestHealthEndpointDatabaseDown(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectPing().WillReturnError(sqlmock.ErrCancelled)

	router := SetupRoutes(db, testConfig(), &config.S3Config{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestProtectedRouteRejectsMissingToken(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	router := SetupRoutes(db, testConfig(), &config.S3Config{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites/u1", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestProtectedRouteRejectsForgedToken(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	router := SetupRoutes(db, testConfig(), &config.S3Config{})

	forged, err := auth.NewTokenIssuer("not-the-server-secret", time.Hour).Sign("u1", "ann@x.com")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites/u1", nil)
	req.Header.Set("Authorization", "Bearer "+forged)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestProtectedRouteAcceptsValidToken(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT 1 FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"?column?"}).AddRow(1))
	mock.ExpectQuery(`JOIN user_favorites uf ON uf\.favorite_id = f\.id`).
		WithArgs("u1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "nfid", "title", "synopsis", "year", "imdb_rating", "img", "creator_id"}))

	router := SetupRoutes(db, testConfig(), &config.S3Config{})

	token, err := auth.NewTokenIssuer("dev", time.Hour).Sign("u1", "ann@x.com")
	if err != nil {
		t.Fatalf("Sign: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/favorites/u1", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}
