package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type fakeAdministratorStore struct {
	created   *models.Administrator
	createErr error
	admins    []models.Administrator
	listErr   error
	got       *models.Administrator
	getErr    error
}

func (f *fakeAdministratorStore) CreateAdministrator(ctx context.Context, in models.AdministratorInput) (*models.Administrator, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeAdministratorStore) ListAdministrators(ctx context.Context) ([]models.Administrator, error) {
	return f.admins, f.listErr
}

func (f *fakeAdministratorStore) GetAdministrator(ctx context.Context, id string) (*models.Administrator, error) {
	return f.got, f.getErr
}

func administratorRouter(store AdministratorStore) *mux.Router {
	r := mux.NewRouter()
	NewAdministratorHandler(store, zap.NewNop()).Register(r)
	return r
}

func TestAdministratorCreate_PasswordNeverSerialized(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	admin := &models.Administrator{
		ID:           primitive.NewObjectID(),
		FirstNames:   "Ana",
		LastNames:    "García",
		Email:        "ana@example.com",
		PasswordHash: "$2a$10$abcdefghijklmnopqrstuv",
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	r := administratorRouter(&fakeAdministratorStore{created: admin})

	rec := doRequest(t, r, http.MethodPost, "/administrador",
		`{"first_names":"Ana","last_names":"García","email":"ana@example.com","password":"secret"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	for key := range payload {
		if strings.Contains(key, "password") {
			t.Fatalf("password material leaked in response field %q", key)
		}
	}
	if strings.Contains(rec.Body.String(), admin.PasswordHash) {
		t.Fatal("password hash leaked in response body")
	}
}

func TestAdministratorCreate_DuplicateEmail(t *testing.T) {
	r := administratorRouter(&fakeAdministratorStore{
		createErr: &models.UniquenessConflictError{Field: "email", Value: "ana@example.com"},
	})

	rec := doRequest(t, r, http.MethodPost, "/administrador",
		`{"first_names":"Ana","last_names":"García","email":"ana@example.com","password":"secret"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
}
