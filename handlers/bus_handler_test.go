package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/matahj/autobus-api/models"
)

type fakeBusStore struct {
	created   *models.Bus
	createErr error
	buses     []models.Bus
	listErr   error
	expanded  *models.BusExpanded
	getErr    error
}

func (f *fakeBusStore) CreateBus(ctx context.Context, in models.BusInput) (*models.Bus, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	if f.createErr != nil {
		return nil, f.createErr
	}
	return f.created, nil
}

func (f *fakeBusStore) ListBuses(ctx context.Context) ([]models.Bus, error) {
	return f.buses, f.listErr
}

func (f *fakeBusStore) GetBusExpanded(ctx context.Context, id string) (*models.BusExpanded, error) {
	return f.expanded, f.getErr
}

func busRouter(store BusStore) *mux.Router {
	r := mux.NewRouter()
	NewBusHandler(store, zap.NewNop()).Register(r)
	return r
}

func sampleBus() *models.Bus {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	return &models.Bus{
		ID:          primitive.NewObjectID(),
		PlateNumber: "ABC123",
		Model:       "Volvo",
		Year:        "2020",
		Active:      true,
		Terminal:    primitive.NewObjectID(),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func TestBusCreate_Success(t *testing.T) {
	bus := sampleBus()
	r := busRouter(&fakeBusStore{created: bus})

	rec := doRequest(t, r, http.MethodPost, "/autobus",
		`{"plate_number":"ABC123","model":"Volvo","year":"2020","terminal":"`+bus.Terminal.Hex()+`"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var got models.Bus
	if err := json.Unmarshal(rec.Body.Bytes(), &got); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}
	if !got.Active {
		t.Fatal("active flag should default to true")
	}
}

func TestBusCreate_TerminalDoesNotExist(t *testing.T) {
	r := busRouter(&fakeBusStore{
		createErr: &models.ReferenceNotFoundError{
			Field:  "terminal",
			Entity: models.EntityTerminal,
			ID:     "nonexistent-id",
		},
	})

	rec := doRequest(t, r, http.MethodPost, "/autobus",
		`{"plate_number":"XYZ999","model":"Volvo","year":"2020","terminal":"nonexistent-id"}`)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	body := decodeErrorBody(t, rec)
	if body.Error != "La terminal no existe." {
		t.Fatalf("unexpected message: %q", body.Error)
	}
	if body.Field != "terminal" {
		t.Fatalf("expected failing field terminal, got %q", body.Field)
	}
}

func TestBusCreate_DuplicatePlate(t *testing.T) {
	r := busRouter(&fakeBusStore{
		createErr: &models.UniquenessConflictError{Field: "plate_number", Value: "ABC123"},
	})

	rec := doRequest(t, r, http.MethodPost, "/autobus",
		`{"plate_number":"ABC123","model":"Volvo","year":"2020","terminal":"6569d3a1e5b0f2a4c8d9e001"}`)

	if rec.Code != http.StatusConflict {
		t.Fatalf("expected 409, got %d", rec.Code)
	}
	if body := decodeErrorBody(t, rec); body.Field != "plate_number" {
		t.Fatalf("expected conflicting field plate_number, got %q", body.Field)
	}
}

func TestBusCreate_PlateTooLong(t *testing.T) {
	r := busRouter(&fakeBusStore{created: sampleBus()})

	rec := doRequest(t, r, http.MethodPost, "/autobus",
		`{"plate_number":"ABCDEFGHIJK","model":"Volvo","year":"2020","terminal":"6569d3a1e5b0f2a4c8d9e001"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if body := decodeErrorBody(t, rec); body.Field != "plate_number" {
		t.Fatalf("expected failing field plate_number, got %q", body.Field)
	}
}

func TestBusGet_ExpandsTerminalWithoutID(t *testing.T) {
	bus := sampleBus()
	r := busRouter(&fakeBusStore{expanded: &models.BusExpanded{
		ID:          bus.ID,
		PlateNumber: bus.PlateNumber,
		Model:       bus.Model,
		Year:        bus.Year,
		Active:      bus.Active,
		Terminal:    models.TerminalSummary{Name: "Central", Address: "Main St", Status: "active"},
		CreatedAt:   bus.CreatedAt,
		UpdatedAt:   bus.UpdatedAt,
	}})

	rec := doRequest(t, r, http.MethodGet, "/autobus/"+bus.ID.Hex(), "")

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var payload map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &payload); err != nil {
		t.Fatalf("invalid response body: %v", err)
	}

	terminal, ok := payload["terminal"].(map[string]any)
	if !ok {
		t.Fatalf("terminal should be inlined, got %T", payload["terminal"])
	}
	if terminal["name"] != "Central" || terminal["address"] != "Main St" || terminal["status"] != "active" {
		t.Fatalf("unexpected terminal summary: %v", terminal)
	}
	if _, present := terminal["_id"]; present {
		t.Fatal("expanded terminal must omit its id")
	}
}

func TestBusGet_UnknownExpandField(t *testing.T) {
	r := busRouter(&fakeBusStore{expanded: &models.BusExpanded{}})

	rec := doRequest(t, r, http.MethodGet, "/autobus/6569d3a1e5b0f2a4c8d9e001?expand=driver", "")

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}
