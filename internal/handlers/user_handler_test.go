package handlers

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"

	"jtaclogs/internal/repository"
)

type fakeImageStore struct {
	lastKey string
}

func (f *fakeImageStore) Upload(ctx context.Context, key string, contentType string, body io.Reader) (string, error) {
	f.lastKey = key
	return "https://img.example/" + key, nil
}

func TestGetUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(userRow("u1", "Ann", "ann@x.com", "hash"))

	h := NewUserHandler(repository.NewUserRepository(db), &fakeImageStore{})

	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/v1/users/u1", nil), "u1")
	req = withURLParam(req, "uid", "u1")
	w := httptest.NewRecorder()
	h.GetUser(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	result, ok := resp["result"].(map[string]any)
	if !ok {
		t.Fatalf("expected result in response, got %v", resp)
	}
	if result["email"] != "ann@x.com" {
		t.Fatalf("expected email ann@x.com, got %v", result)
	}
	if _, leaked := result["password_hash"]; leaked {
		t.Fatal("password hash leaked in response")
	}
}

func TestGetUserNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	h := NewUserHandler(repository.NewUserRepository(db), &fakeImageStore{})

	req := asCaller(httptest.NewRequest(http.MethodGet, "/api/v1/users/ghost", nil), "u1")
	req = withURLParam(req, "uid", "ghost")
	w := httptest.NewRecorder()
	h.GetUser(w, req)

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUpdateUserForeignAccountRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := NewUserHandler(repository.NewUserRepository(db), &fakeImageStore{})

	b, _ := json.Marshal(map[string]any{"name": "New Name"})
	req := asCaller(httptest.NewRequest(http.MethodPatch, "/api/v1/users/u1", bytes.NewReader(b)), "intruder")
	req = withURLParam(req, "uid", "u1")
	w := httptest.NewRecorder()
	h.UpdateUser(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUpdateUser(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery(`UPDATE users\s+SET name = COALESCE`).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow("u1"))
	mock.ExpectQuery(`SELECT .+ FROM users WHERE id = \$1`).
		WithArgs("u1").
		WillReturnRows(userRow("u1", "New Name", "ann@x.com", "hash"))

	h := NewUserHandler(repository.NewUserRepository(db), &fakeImageStore{})

	b, _ := json.Marshal(map[string]any{"name": "New Name"})
	req := asCaller(httptest.NewRequest(http.MethodPatch, "/api/v1/users/u1", bytes.NewReader(b)), "u1")
	req = withURLParam(req, "uid", "u1")
	w := httptest.NewRecorder()
	h.UpdateUser(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	var resp map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	updated, ok := resp["updatedUser"].(map[string]any)
	if !ok {
		t.Fatalf("expected updatedUser in response, got %v", resp)
	}
	if updated["name"] != "New Name" {
		t.Fatalf("expected updated name, got %v", updated)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func multipartImage(t *testing.T, fieldFile string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("image", fieldFile)
	if err != nil {
		t.Fatalf("CreateFormFile: %v", err)
	}
	if _, err := fw.Write([]byte("not-a-real-image")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := mw.Close(); err != nil {
		t.Fatalf("close writer: %v", err)
	}
	return &buf, mw.FormDataContentType()
}

func TestUploadImage(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	mock.ExpectExec(`UPDATE users SET image = \$1`).
		WithArgs("https://img.example/images/u1.png", sqlmock.AnyArg(), "u1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	store := &fakeImageStore{}
	h := NewUserHandler(repository.NewUserRepository(db), store)

	body, contentType := multipartImage(t, "avatar.PNG")
	req := asCaller(httptest.NewRequest(http.MethodPut, "/api/v1/users/u1/image", body), "u1")
	req = withURLParam(req, "uid", "u1")
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.UploadImage(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d (%s)", w.Code, w.Body.String())
	}
	// Extension is normalized and the key is derived from the user id.
	if store.lastKey != "images/u1.png" {
		t.Fatalf("expected key images/u1.png, got %q", store.lastKey)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations: %v", err)
	}
}

func TestUploadImageRejectsUnknownExtension(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := NewUserHandler(repository.NewUserRepository(db), &fakeImageStore{})

	body, contentType := multipartImage(t, "payload.svg")
	req := asCaller(httptest.NewRequest(http.MethodPut, "/api/v1/users/u1/image", body), "u1")
	req = withURLParam(req, "uid", "u1")
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.UploadImage(w, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 got %d (%s)", w.Code, w.Body.String())
	}
}

func TestUploadImageForeignAccountRejected(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	defer db.Close()

	h := NewUserHandler(repository.NewUserRepository(db), &fakeImageStore{})

	body, contentType := multipartImage(t, "avatar.png")
	req := asCaller(httptest.NewRequest(http.MethodPut, "/api/v1/users/u1/image", body), "intruder")
	req = withURLParam(req, "uid", "u1")
	req.Header.Set("Content-Type", contentType)
	w := httptest.NewRecorder()
	h.UploadImage(w, req)

	if w.Code != http.StatusForbidden {
		t.Fatalf("expected 403 got %d (%s)", w.Code, w.Body.String())
	}
}
